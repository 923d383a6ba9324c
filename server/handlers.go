package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/katalvlaran/roadgraph/export"
	"github.com/katalvlaran/roadgraph/geo"
	"github.com/katalvlaran/roadgraph/search"
)

// ErrBadQuery marks a request whose query parameters cannot be used.
var ErrBadQuery = errors.New("server: bad query")

// RouteResponse is the JSON body of /route.
type RouteResponse struct {
	Algorithm Algorithm      `json:"algorithm"`
	Path      []geo.Location `json:"path"`
	LengthKm  float64        `json:"length_km"`
	Hops      int            `json:"hops"`
	Visited   int            `json:"visited"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.g.Stats())
}

func (s *Server) handleRoute(w http.ResponseWriter, r *http.Request) {
	algo, res, err := s.routeFromQuery(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, RouteResponse{
		Algorithm: algo,
		Path:      res.Path,
		LengthKm:  res.Length,
		Hops:      res.Hops,
		Visited:   res.Visited,
	})
}

func (s *Server) handleRouteGeoJSON(w http.ResponseWriter, r *http.Request) {
	algo, res, err := s.routeFromQuery(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	body, err := export.MarshalRoute(s.g, res, string(algo))
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/geo+json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// routeFromQuery parses from, to and algorithm, then routes.
func (s *Server) routeFromQuery(r *http.Request) (Algorithm, *search.Result, error) {
	q := r.URL.Query()
	from, err := geo.Parse(q.Get("from"))
	if err != nil {
		return "", nil, fmt.Errorf("%w: from: %v", ErrBadQuery, err)
	}
	to, err := geo.Parse(q.Get("to"))
	if err != nil {
		return "", nil, fmt.Errorf("%w: to: %v", ErrBadQuery, err)
	}

	algo := s.cfg.DefaultAlgorithm
	if name := q.Get("algorithm"); name != "" {
		if algo, err = ParseAlgorithm(name); err != nil {
			return "", nil, fmt.Errorf("%w: %v", ErrBadQuery, err)
		}
	}

	res, err := s.Route(r.Context(), algo, from, to, nil)
	if err != nil {
		return "", nil, err
	}
	return algo, res, nil
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, ErrBadQuery):
		status = http.StatusBadRequest
	case errors.Is(err, search.ErrNotFound):
		status = http.StatusNotFound
	default:
		s.cfg.Logger.Printf("route failed: %v", err)
	}
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.cfg.Logger.Printf("encode response: %v", err)
	}
}
