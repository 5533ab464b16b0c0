package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/erpbridge/odoorest/logging"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namedLogger = "metrics"

// Server exposes the prometheus registry on its own listener.
type Server struct {
	log *logging.Logger
	cfg Config
	// built up front so that Stop always has a server to shut down
	srv *http.Server
}

func NewServer(log *logging.Logger, cfg Config) *Server {
	mux := http.NewServeMux()
	mux.Handle(cfg.Path, promhttp.Handler())

	return &Server{
		log: log.Named(namedLogger),
		cfg: cfg,
		srv: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Start blocks serving the registry until Stop is called. It returns
// immediately when metrics are disabled or when Stop was called first.
// Setup must have been called beforehand.
func (s *Server) Start() error {
	if !s.cfg.Enabled.Get() {
		s.log.Info("metrics are disabled")
		return nil
	}

	srv := s.srv
	s.log.Info("starting metrics server",
		logging.String("address", srv.Addr),
		logging.String("path", s.cfg.Path))

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve metrics: %w", err)
	}
	return nil
}

func (s *Server) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.srv.Shutdown(ctx); err != nil {
		s.log.Error("failed to stop metrics server", logging.Error(err))
	}
}
