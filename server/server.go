package server

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/gorilla/mux"

	"github.com/katalvlaran/roadgraph/contraction"
	"github.com/katalvlaran/roadgraph/core"
)

// Server serves routing queries over one immutable graph.
type Server struct {
	g   *core.Graph
	cfg Config

	once   sync.Once
	idx    *contraction.Index
	idxErr error
}

// New wraps g; zero Config fields take DefaultConfig values.
func New(g *core.Graph, cfg Config) *Server {
	return &Server{g: g, cfg: cfg.withDefaults()}
}

// index builds the contraction hierarchy once.
func (s *Server) index() (*contraction.Index, error) {
	s.once.Do(func() {
		s.cfg.Logger.Printf("building contraction hierarchy over %d intersections", s.g.NumVertices())
		s.idx, s.idxErr = contraction.Build(s.g)
	})
	return s.idx, s.idxErr
}

// Router returns the HTTP routes.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/graph/stats", s.handleStats).Methods(http.MethodGet)
	r.HandleFunc("/route", s.handleRoute).Methods(http.MethodGet)
	r.HandleFunc("/route.geojson", s.handleRouteGeoJSON).Methods(http.MethodGet)
	r.Use(s.logRequests)
	return r
}

// Run listens on cfg.Addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.Router(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		s.cfg.Logger.Printf("listening on %s", s.cfg.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.cfg.Logger.Printf("server stopped")
	return nil
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.cfg.Logger.Printf("%s %s", r.Method, r.URL.RequestURI())
		next.ServeHTTP(w, r)
	})
}
