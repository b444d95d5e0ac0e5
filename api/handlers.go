package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/dshills/Searchlight/catalog"
	"github.com/dshills/Searchlight/core/search"
)

// PhotoSearchRequest is the /search/photos request body.
type PhotoSearchRequest struct {
	Query   string               `json:"query"`
	Filters catalog.PhotoFilters `json:"filters"`
}

// ProjectSearchRequest is the /search/projects request body.
type ProjectSearchRequest struct {
	Query   string                 `json:"query"`
	Filters catalog.ProjectFilters `json:"filters"`
}

// SearchResponse wraps ranked results with request metadata.
type SearchResponse struct {
	Query    string      `json:"query"`
	Count    int         `json:"count"`
	Fallback bool        `json:"fallback"`
	Results  interface{} `json:"results"`
}

// StatsResponse reports per-domain search statistics.
type StatsResponse struct {
	Photos   *search.Stats `json:"photos,omitempty"`
	Projects *search.Stats `json:"projects,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondWithJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleSearchPhotos(w http.ResponseWriter, r *http.Request) {
	var req PhotoSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondWithError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	start := time.Now()
	results := s.photos.Search(r.Context(), req.Query, req.Filters)
	s.metrics.ObserveSearch("photos", time.Since(start))

	fallback := photoFallbackUsed(req.Query, results)
	if fallback {
		s.metrics.CountFallback("photos")
	}

	s.respondWithJSON(w, http.StatusOK, SearchResponse{
		Query:    req.Query,
		Count:    len(results),
		Fallback: fallback,
		Results:  results,
	})
}

func (s *Server) handleSearchProjects(w http.ResponseWriter, r *http.Request) {
	var req ProjectSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondWithError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	start := time.Now()
	results := s.projects.Search(r.Context(), req.Query, req.Filters)
	s.metrics.ObserveSearch("projects", time.Since(start))

	fallback := projectFallbackUsed(req.Query, results)
	if fallback {
		s.metrics.CountFallback("projects")
	}

	s.respondWithJSON(w, http.StatusOK, SearchResponse{
		Query:    req.Query,
		Count:    len(results),
		Fallback: fallback,
		Results:  results,
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	resp := StatsResponse{}
	if s.photos != nil {
		stats := s.photos.Stats()
		resp.Photos = &stats
	}
	if s.projects != nil {
		stats := s.projects.Stats()
		resp.Projects = &stats
	}
	s.respondWithJSON(w, http.StatusOK, resp)
}

// photoFallbackUsed reports whether a ranked response came from the
// semantic fallback: a non-blank query whose results all lack lexical
// matches.
func photoFallbackUsed(query string, results []catalog.PhotoResult) bool {
	if strings.TrimSpace(query) == "" || len(results) == 0 {
		return false
	}
	for _, r := range results {
		if r.BM25Score > 0 {
			return false
		}
	}
	return true
}

func projectFallbackUsed(query string, results []catalog.ProjectResult) bool {
	if strings.TrimSpace(query) == "" || len(results) == 0 {
		return false
	}
	for _, r := range results {
		if r.BM25Score > 0 {
			return false
		}
	}
	return true
}
