package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/dgallion1/docsite/internal/search"
)

const (
	defaultSearchLimit = 10
	maxSearchLimit     = 50
)

func (s *Server) handleNav(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"categories": s.resolver.Table()})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if s.search == nil {
		jsonError(w, "search is disabled", http.StatusServiceUnavailable)
		return
	}

	q := r.URL.Query().Get("q")
	limit := defaultSearchLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			jsonError(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = min(n, maxSearchLimit)
	}

	results := s.search.Query(q, limit)
	if results == nil {
		results = []search.Result{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"query":   q,
		"results": results,
	})
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
