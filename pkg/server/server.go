package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/wordnet/pkg/config"
	errs "github.com/matzehuels/wordnet/pkg/errors"
	"github.com/matzehuels/wordnet/pkg/outcast"
)

// Lexicon is the read side of a lexicon served over HTTP.
// *wordnet.WordNet satisfies it.
type Lexicon interface {
	Synsets(noun string) ([]int, error)
	Synset(id int) (string, error)
	Distance(noun1, noun2 string) (int, error)
	SCA(noun1, noun2 string) (string, error)
}

// Server routes HTTP requests to a Lexicon.
type Server struct {
	lex         Lexicon
	outcast     *outcast.Outcast
	logger      *log.Logger
	metrics     http.Handler
	parallelism int
	router      chi.Router
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger. Defaults to log.Default().
func WithLogger(l *log.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics mounts h at /metrics.
func WithMetrics(h http.Handler) Option {
	return func(s *Server) { s.metrics = h }
}

// WithParallelism bounds concurrent row sums per outcast request.
func WithParallelism(n int) Option {
	return func(s *Server) { s.parallelism = n }
}

// New creates a Server over lex. Returns NULL_INPUT if lex is nil.
func New(lex Lexicon, opts ...Option) (*Server, error) {
	if lex == nil {
		return nil, errs.New(errs.ErrCodeNullInput, "lexicon is nil")
	}
	s := &Server{lex: lex, logger: log.Default()}
	for _, opt := range opts {
		opt(s)
	}

	o, err := outcast.New(lex, outcast.WithParallelism(s.parallelism))
	if err != nil {
		return nil, err
	}
	s.outcast = o
	s.router = s.routes()
	return s, nil
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics)
	}
	r.Route("/v1", func(r chi.Router) {
		r.Get("/nouns/{noun}", s.handleNoun)
		r.Get("/distance", s.handleDistance)
		r.Get("/sca", s.handleSCA)
		r.Post("/outcast", s.handleOutcast)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeStatus(w, http.StatusNotFound, "NOT_FOUND", "no route for "+r.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeStatus(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", r.Method+" not allowed")
	})
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on cfg.Addr until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, cfg config.Server) error {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      s,
		ReadTimeout:  cfg.ReadTimeout.Duration,
		WriteTimeout: cfg.WriteTimeout.Duration,
		BaseContext:  func(_ net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return errs.Wrap(errs.ErrCodeInternal, err, "listen %s", cfg.Addr)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errs.Wrap(errs.ErrCodeInternal, err, "shutdown")
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errs.Wrap(errs.ErrCodeInternal, err, "serve")
	}
	return nil
}
