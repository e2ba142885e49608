package server

import "net/http"

func (s *Server) initRoutes() {
	// AUTH
	s.RegisterRouteFunc(http.MethodPost, RouteAuthLogin, s.LoginHandler())
	s.RegisterRouteFunc(http.MethodPost, RouteAuthRefresh, s.RefreshHandler())

	// USERS (require a valid access token)
	s.RegisterRouteFunc(http.MethodGet, RouteUsers, ChainMiddleware(s.UsersListHandler(), s.RequireAuth()))
	s.RegisterRouteFunc(http.MethodGet, RouteUser, ChainMiddleware(s.UserHandler(), s.RequireAuth()))

	// Everything else: static assets when configured, otherwise a 404 envelope.
	s.mux.HandleFunc("/", s.fallbackHandler())
}

func (s *Server) fallbackHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.fileServer != nil && (r.Method == http.MethodGet || r.Method == http.MethodHead) {
			s.fileServer.ServeHTTP(w, r)
			return
		}
		sendError(w, "not found", http.StatusNotFound)
	}
}
