package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/Searchlight/catalog"
)

func testServer(t *testing.T) *Server {
	t.Helper()

	photos := []catalog.Photo{
		{
			ID:             "p1",
			NaturalCaption: "sunset over the ocean",
			AITags:         []string{"sunset", "ocean"},
			Camera:         "Fujifilm X-T4",
			Location:       catalog.Location{Country: "Portugal"},
		},
		{
			ID:             "p2",
			NaturalCaption: "snowy mountain peak",
			AITags:         []string{"mountain", "snow"},
			Camera:         "iPhone 15 Pro",
			Location:       catalog.Location{Country: "Switzerland"},
		},
	}
	projects := []catalog.Project{
		{
			ID:          "proj1",
			Title:       "Chat Server",
			Tagline:     "Realtime messaging",
			Description: "Websocket chat backend",
			TechStack:   []string{"go"},
			Category:    "backend",
			Metadata:    catalog.ProjectMetadata{Year: 2024, Status: "live"},
		},
	}

	photoSearcher := catalog.NewPhotoSearcher(photos, nil, nil, catalog.DefaultPhotoOptions(), nil)
	projectSearcher := catalog.NewProjectSearcher(projects, nil, nil, catalog.DefaultProjectOptions(), nil)

	return NewServer(photoSearcher, projectSearcher, DefaultServerConfig(), nil)
}

func TestHealthEndpoint(t *testing.T) {
	server := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestSearchPhotosEndpoint(t *testing.T) {
	server := testServer(t)

	payload, _ := json.Marshal(PhotoSearchRequest{Query: "sunset"})
	req := httptest.NewRequest(http.MethodPost, "/search/photos", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Query    string                `json:"query"`
		Count    int                   `json:"count"`
		Fallback bool                  `json:"fallback"`
		Results  []catalog.PhotoResult `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "sunset", resp.Query)
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "p1", resp.Results[0].ID)
	assert.False(t, resp.Fallback)
	assert.Greater(t, resp.Results[0].BM25Score, 0.0)
}

func TestSearchPhotosWithFilters(t *testing.T) {
	server := testServer(t)

	payload, _ := json.Marshal(PhotoSearchRequest{
		Filters: catalog.PhotoFilters{Country: "Switzerland"},
	})
	req := httptest.NewRequest(http.MethodPost, "/search/photos", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Count   int                   `json:"count"`
		Results []catalog.PhotoResult `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "p2", resp.Results[0].ID)
	// Blank query returns a listing with zero scores
	assert.Zero(t, resp.Results[0].BM25Score)
}

func TestSearchPhotosBadBody(t *testing.T) {
	server := testServer(t)

	req := httptest.NewRequest(http.MethodPost, "/search/photos", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchProjectsEndpoint(t *testing.T) {
	server := testServer(t)

	payload, _ := json.Marshal(ProjectSearchRequest{Query: "websocket chat"})
	req := httptest.NewRequest(http.MethodPost, "/search/projects", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Count   int                     `json:"count"`
		Results []catalog.ProjectResult `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "proj1", resp.Results[0].ID)
}

func TestStatsEndpoint(t *testing.T) {
	server := testServer(t)

	// Run one search so the counters move
	payload, _ := json.Marshal(PhotoSearchRequest{Query: "sunset"})
	searchReq := httptest.NewRequest(http.MethodPost, "/search/photos", bytes.NewReader(payload))
	server.ServeHTTP(httptest.NewRecorder(), searchReq)

	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp StatsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Photos)
	assert.Equal(t, int64(1), resp.Photos.TotalQueries)
}

func TestRequestIDHeader(t *testing.T) {
	server := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "given-id")
	rec = httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	assert.Equal(t, "given-id", rec.Header().Get("X-Request-ID"))
}
