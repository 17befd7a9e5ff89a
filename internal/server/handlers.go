package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hyperjump/tantei/internal/models"
	"go.uber.org/zap"
)

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		s.respondError(w, http.StatusBadRequest, "q is required")
		return
	}
	s.logger.Debug("search request", zap.String("q", q))
	start := time.Now()

	response := models.ResolveResponse{
		Query:      q,
		Candidates: []models.Candidate{},
	}

	hits, err := s.searcher.Search(r.Context(), q, s.searchLimit)
	if err != nil {
		// A failed upstream search degrades to an empty result, not a 5xx:
		// the client renders "No results found" either way.
		s.logger.Warn("entity search failed", zap.String("q", q), zap.Error(err))
		response.QueryTime = time.Since(start).Milliseconds()
		s.respondJSON(w, http.StatusOK, response)
		return
	}

	candidates, committed := s.resolver.Resolve(r.Context(), hits)
	if !committed {
		response.Superseded = true
	} else if candidates != nil {
		response.Candidates = candidates
	}
	response.Total = len(response.Candidates)
	response.QueryTime = time.Since(start).Milliseconds()
	s.respondJSON(w, http.StatusOK, response)
}

func (s *Server) handlePerson(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.logger.Debug("person request", zap.String("id", id))
	detail := s.details.Lookup(r.Context(), id)
	s.respondJSON(w, http.StatusOK, detail)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
