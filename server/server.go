// Package server exposes the visualiser over HTTP: schema uploads are turned
// into the model JSON used by the diagram view, and highlight requests return
// the markup of the model under the editor cursor.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Config holds the HTTP server settings.
type Config struct {
	Host           string
	Port           string
	AssetsDir      string
	AllowedOrigins []string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
}

// Server handles the web interface and the JSON API.
type Server struct {
	config Config
	logger zerolog.Logger
	mux    *http.ServeMux
}

func New(config Config, logger zerolog.Logger) *Server {
	if config.Port == "" {
		config.Port = "8000"
	}
	if config.ReadTimeout == 0 {
		config.ReadTimeout = 30 * time.Second
	}
	if config.WriteTimeout == 0 {
		config.WriteTimeout = 30 * time.Second
	}

	s := &Server{
		config: config,
		logger: logger,
		mux:    http.NewServeMux(),
	}

	// Setup routes
	s.mux.HandleFunc("/", s.handleFiles)
	s.mux.HandleFunc("/api/v1/visualise", s.handleVisualise)
	s.mux.HandleFunc("/api/v1/code_highlight", s.handleCodeHighlight)
	return s
}

// Handler returns the routes wrapped with CORS and request logging.
func (s *Server) Handler() http.Handler {
	return s.logRequests(s.cors(s.mux))
}

func (s *Server) Addr() string {
	return net.JoinHostPort(s.config.Host, s.config.Port)
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.Addr(),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       s.config.ReadTimeout,
		WriteTimeout:      s.config.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info().Msg("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
