package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const shutdownTimeout = 5 * time.Second

// Server serves ledger queries, read-model queries and tx routes over HTTP.
type Server struct {
	logger         zerolog.Logger
	ledger         Ledger
	readModel      ReadModel
	metricsEnabled bool
	now            func() time.Time
	server         *http.Server
}

// NewServer creates a new Server instance. readModel may be nil, in which
// case the indexer routes answer 503.
func NewServer(logger zerolog.Logger, port int, ledger Ledger, readModel ReadModel, metricsEnabled bool) *Server {
	s := &Server{
		logger:         logger.With().Str("component", "query_server").Logger(),
		ledger:         ledger,
		readModel:      readModel,
		metricsEnabled: metricsEnabled,
		now:            time.Now,
	}

	router := s.setupRoutes()

	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

// Start binds the listen address and serves in the background. A bind
// failure is returned to the caller.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("failed to bind query server to %s: %w", s.server.Addr, err)
	}
	s.logger.Info().Str("addr", ln.Addr().String()).Msg("Query server started")

	go func() {
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error().Err(err).Msg("Query server error")
			return
		}
		s.logger.Info().Msg("Query server closed")
	}()
	return nil
}

// Stop drains in-flight requests for up to shutdownTimeout.
func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Handler returns the router serving every route.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}
