package server

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/jrsteele09/go-auth-gateway/auth"
	"github.com/jrsteele09/go-auth-gateway/internal/config"
	"github.com/rs/zerolog/log"
)

// Route is a registered method and path, kept for the startup route table.
type Route struct {
	Method string
	Path   string
}

type Server struct {
	env            string // Environment (e.g., "DEV", "PROD")
	basePath       string
	mux            *http.ServeMux
	handler        http.HandlerFunc
	routes         []Route
	fileServer     http.Handler
	allowedOrigins config.AllowedOrigins
	allowedMethods string
	allowedHeaders string
	auth           *auth.AuthService
}

// New builds the HTTP surface. Configuration is read once here and never
// during request handling.
func New(cfg config.Config, authService *auth.AuthService) (*Server, error) {
	if authService == nil {
		return nil, fmt.Errorf("[Server New] auth service is required")
	}

	s := &Server{
		env:            cfg.GetEnv(),
		basePath:       cfg.GetBasePath(),
		mux:            http.NewServeMux(),
		allowedOrigins: cfg.GetAllowedOrigins(),
		allowedMethods: cfg.GetAllowedMethods(),
		allowedHeaders: cfg.GetAllowedHeaders(),
		auth:           authService,
	}
	s.fileServer = publicFileServer(cfg.GetPublicFolder())

	s.initRoutes()
	s.handler = ChainMiddleware(s.mux.ServeHTTP, s.GlobalMiddleware()...)
	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler(w, r)
}

func (s *Server) RegisterRouteHandler(method, path string, handler http.Handler) {
	fullPath := s.fullPath(path)
	s.routes = append(s.routes, Route{Method: method, Path: fullPath})
	s.mux.Handle(method+" "+fullPath, handler)
}

func (s *Server) RegisterRouteFunc(method, path string, handler func(http.ResponseWriter, *http.Request)) {
	s.RegisterRouteHandler(method, path, http.HandlerFunc(handler))
}

// Routes returns the registered API routes in registration order.
func (s *Server) Routes() []Route {
	return append([]Route(nil), s.routes...)
}

func (s *Server) fullPath(path string) string {
	if s.basePath == "/" {
		return path
	}
	return s.basePath + path
}

// PrintRoutes writes a METHOD / URL table for baseURL.
func (s *Server) PrintRoutes(w io.Writer, baseURL string) {
	fmt.Fprintln(w, Yellow+"METHOD"+ResetColor+"  "+Yellow+"URL"+ResetColor)
	for _, route := range s.routes {
		fmt.Fprintf(w, "%s  %s\n", colourMethod(fmt.Sprintf("%-6s", route.Method), route.Method), Cyan+baseURL+route.Path+ResetColor)
	}
}

// publicFileServer serves static assets from dir when it exists.
func publicFileServer(dir string) http.Handler {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil
	}
	log.Debug().Str("dir", dir).Msg("Serving static assets")
	return http.FileServer(http.Dir(dir))
}

func colourMethod(text, method string) string {
	color, ok := methodColors[strings.ToUpper(method)]
	if !ok {
		color = Magenta
	}
	return color + text + ResetColor
}
