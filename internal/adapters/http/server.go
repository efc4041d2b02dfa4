package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"patientintake/internal/config"
	"patientintake/internal/platform/logger"
)

const defaultShutdownTimeout = 30 * time.Second

type Server struct {
	server          *http.Server
	logger          logger.Logger
	shutdownTimeout time.Duration
}

func NewServer(cfg *config.HttpConfig, log logger.Logger, handler http.Handler) *Server {
	shutdownTimeout := cfg.Server.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	return &Server{
		server: &http.Server{
			Addr:              cfg.Server.Addr(),
			Handler:           handler,
			ReadTimeout:       cfg.Server.ReadTimeout,
			ReadHeaderTimeout: cfg.Server.ReadTimeout,
			WriteTimeout:      cfg.Server.WriteTimeout,
			IdleTimeout:       cfg.Server.IdleTimeout,
		},
		logger:          log,
		shutdownTimeout: shutdownTimeout,
	}
}

// Addr reports the configured listen address, or the bound one once the
// server is listening on an ephemeral port.
func (s *Server) Addr() string {
	return s.server.Addr
}

func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		s.logger.Error("failed to listen", logger.Error(err))
		return err
	}
	s.server.Addr = ln.Addr().String()

	s.logger.Info("Starting HTTP server", logger.String("addr", s.server.Addr))

	errChan := make(chan error, 1)
	go func() {
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("failed to serve", logger.Error(err))
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		s.logger.Info("Server startup cancelled")
		return s.server.Shutdown(context.Background())
	default:
		return nil
	}
}

func (s *Server) Stop(ctx context.Context) error {
	if s.server == nil {
		return nil
	}

	s.logger.Info("Shutting down HTTP server", logger.Duration("timeout", s.shutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(ctx, s.shutdownTimeout)
	defer cancel()

	return s.server.Shutdown(shutdownCtx)
}
