package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync"

	"github.com/erpbridge/odoorest/gateway"
	vhttp "github.com/erpbridge/odoorest/libs/http"
	"github.com/erpbridge/odoorest/logging"
	"github.com/erpbridge/odoorest/metrics"

	"github.com/didip/tollbooth/v7"
	"github.com/klauspost/compress/gzhttp"
	"go.elastic.co/apm/module/apmhttp"
)

const namedLogger = "gateway"

// Server is the HTTP front of the gateway. It wraps the routes with the
// middlewares enabled in the configuration.
type Server struct {
	log *logging.Logger

	// built up front so that Stop always has a server to shut down
	srv *http.Server

	mu  sync.Mutex
	cfg gateway.Config
}

func New(log *logging.Logger, cfg gateway.Config, routes http.Handler) *Server {
	log = log.Named(namedLogger)
	log.SetLevel(cfg.Level.Get())

	return &Server{
		log: log,
		cfg: cfg,
		srv: &http.Server{
			Addr:         net.JoinHostPort(cfg.IP, strconv.Itoa(cfg.Port)),
			Handler:      buildHandler(log, cfg, routes),
			ReadTimeout:  cfg.Timeout.Get(),
			WriteTimeout: cfg.Timeout.Get(),
		},
	}
}

// buildHandler chains the middlewares, the first one applied being the
// outermost.
func buildHandler(log *logging.Logger, cfg gateway.Config, routes http.Handler) http.Handler {
	h := vhttp.CORSHandler(cfg.CORS, routes)
	if cfg.APM.Get() {
		h = apmhttp.Wrap(h)
	}
	if cfg.GZIP.Get() {
		h = gzhttp.GzipHandler(h)
	}
	if cfg.RateLimit.Enabled.Get() && cfg.RateLimit.Rate > 0 {
		h = globalLimit(cfg.RateLimit, h)
	}
	h = gateway.MetricCollectionMiddleware(h)
	h = gateway.RemoteAddrMiddleware(log, h)
	h = gateway.RequestIDMiddleware(h)
	return gateway.RecoverMiddleware(log, h)
}

func globalLimit(cfg gateway.GlobalRateLimitConfig, next http.Handler) http.Handler {
	lmt := tollbooth.NewLimiter(cfg.Rate, nil)
	if cfg.Burst > 0 {
		lmt.SetBurst(cfg.Burst)
	}
	lmt.SetMessageContentType("application/json")
	lmt.SetOnLimitReached(func(w http.ResponseWriter, r *http.Request) {
		metrics.RateLimited("global")
	})
	body, _ := gateway.MarshalError(http.StatusTooManyRequests, "Too many requests, please try again later")
	lmt.SetMessage(string(body))
	return tollbooth.LimitHandler(lmt, next)
}

// Handler returns the complete handler chain.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// ReloadConf applies the settings that can change while running. The
// listen address and the middlewares are only read at start.
func (s *Server) ReloadConf(cfg gateway.Config) {
	s.log.Info("reloading configuration")
	if s.log.GetLevel() != cfg.Level.Get() {
		s.log.Info("updating log level",
			logging.String("old", s.log.GetLevel().String()),
			logging.String("new", cfg.Level.String()),
		)
		s.log.SetLevel(cfg.Level.Get())
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if cfg.IP != s.cfg.IP || cfg.Port != s.cfg.Port {
		s.log.Warn("listen address changes are applied on restart",
			logging.String("address", s.srv.Addr))
	}
	s.cfg.Level = cfg.Level
}

// Start serves until Stop is called. It returns at once when Stop was
// called first.
func (s *Server) Start() error {
	s.log.Info("starting HTTP gateway", logging.String("address", s.srv.Addr))
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to listen and serve on %s: %w", s.srv.Addr, err)
	}
	return nil
}

// Stop closes the server gracefully.
func (s *Server) Stop(ctx context.Context) {
	s.log.Info("stopping HTTP gateway")
	if err := s.srv.Shutdown(ctx); err != nil {
		s.log.Error("failed to stop HTTP gateway cleanly", logging.Error(err))
	}
}
