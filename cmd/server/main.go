package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/jrsteele09/go-auth-gateway/auth"
	"github.com/jrsteele09/go-auth-gateway/internal/config"
	"github.com/jrsteele09/go-auth-gateway/server"
	"github.com/jrsteele09/go-auth-gateway/token"
	"github.com/jrsteele09/go-auth-gateway/users"
	fakeuserrepo "github.com/jrsteele09/go-auth-gateway/users/repofake"
	"github.com/jrsteele09/go-auth-gateway/users/sqliterepo"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("Error running server")
	}
	log.Info().Msg("Server stopped")
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Bytes("stack", debug.Stack()).Msg("Recovered from panic")
			returnError = errors.New("panic recovered")
		}
	}()

	c := config.New()
	setupLogging(c)
	displayAppname(c.GetAppName())

	if config.UsesDefaultSecrets(c) {
		event := log.Warn()
		if c.GetEnv() != "DEV" {
			event = log.Error()
		}
		event.Str("env", c.GetEnv()).Msg("Using development token secrets, set ACCESS_TOKEN_SECRET and REFRESH_TOKEN_SECRET")
	}

	userRepo, closer, err := newUserRepo(c)
	if err != nil {
		return err
	}
	defer closer.Close()

	tokens, err := token.New(c.GetAccessTokenSecret(), c.GetRefreshTokenSecret(),
		token.WithTokenExpiry(c.GetAccessTokenExpiry(), c.GetRefreshTokenExpiry()))
	if err != nil {
		return fmt.Errorf("token.New: %w", err)
	}

	authService, err := auth.NewAuthService(userRepo, tokens)
	if err != nil {
		return err
	}

	handler, err := server.New(c, authService)
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:              c.GetPort(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	log.Info().Stringer("allowed_origins", c.GetAllowedOrigins()).Msg("CORS configured")
	printRoutes(handler, c.GetPort())

	errCh := make(chan error, 1)
	go func() { errCh <- listenAndServe(httpServer) }()

	select {
	case err := <-errCh:
		return err
	case <-waitForStopSignal():
	}
	return shutdown(httpServer)
}

func setupLogging(c config.EnvConfig) {
	level, err := zerolog.ParseLevel(c.GetLogLevel())
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if c.GetEnv() == "DEV" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func newUserRepo(c config.StoreConfig) (users.UserRepo, io.Closer, error) {
	switch c.GetUserStore() {
	case config.UserStoreMemory:
		log.Info().Msg("Using in-memory user store")
		return fakeuserrepo.NewFakeUserRepo(fakeuserrepo.DefaultUsers()...), nopCloser{}, nil
	case config.UserStoreSQLite:
		store, err := sqliterepo.NewStore(c.GetSQLiteDSN())
		if err != nil {
			return nil, nil, fmt.Errorf("sqliterepo.NewStore: %w", err)
		}
		log.Info().Str("dsn", c.GetSQLiteDSN()).Msg("Using sqlite user store")
		return store, store, nil
	default:
		return nil, nil, fmt.Errorf("unknown USER_STORE %q", c.GetUserStore())
	}
}

func printRoutes(s *server.Server, port string) {
	local, lans := server.Addresses(port)
	fmt.Println("Local:")
	s.PrintRoutes(os.Stdout, local)
	for _, lan := range lans {
		fmt.Printf("\nNetwork (%s):\n", lan)
		s.PrintRoutes(os.Stdout, lan)
	}
	fmt.Println()
}

func listenAndServe(server *http.Server) error {
	log.Info().Str("addr", server.Addr).Msg("Server listening")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server.ListenAndServe %w", err)
	}
	return nil
}

func waitForStopSignal() <-chan os.Signal {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	return stop
}

func shutdown(server *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
