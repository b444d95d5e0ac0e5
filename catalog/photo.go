package catalog

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/dshills/Searchlight/core"
	"github.com/dshills/Searchlight/core/ai"
	"github.com/dshills/Searchlight/core/search"
)

// Location holds where a photo was taken.
type Location struct {
	Country string `json:"country"`
}

// Photo is one gallery entry with its capture metadata and the
// caption/tag text produced by the ingest pipeline.
type Photo struct {
	ID             string   `json:"id"`
	Src            string   `json:"src"`
	NaturalCaption string   `json:"naturalCaption"`
	AITags         []string `json:"aiTags"`
	ManualTags     []string `json:"manualTags"`
	Camera         string   `json:"camera"`
	Trip           string   `json:"trip"`
	Date           string   `json:"date"`
	ISO            int      `json:"iso"`
	Aperture       float64  `json:"aperture"`
	Location       Location `json:"location"`
}

// SearchText builds the weighted lexical document for a photo.
// Manual tags and the caption carry triple weight, AI tags double,
// country and camera single.
func (p Photo) SearchText() string {
	var parts []string

	if p.NaturalCaption != "" {
		parts = append(parts, p.NaturalCaption, p.NaturalCaption, p.NaturalCaption)
	}
	if len(p.AITags) > 0 {
		tags := strings.Join(p.AITags, " ")
		parts = append(parts, tags, tags)
	}
	if len(p.ManualTags) > 0 {
		tags := strings.Join(p.ManualTags, " ")
		parts = append(parts, tags, tags, tags)
	}
	if p.Location.Country != "" {
		parts = append(parts, p.Location.Country)
	}
	if p.Camera != "" {
		parts = append(parts, p.Camera)
	}

	return strings.Join(parts, " ")
}

// DateRange is an inclusive date interval.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// IntRange is an inclusive integer interval.
type IntRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// FloatRange is an inclusive float interval.
type FloatRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// PhotoFilters narrows a photo corpus before ranking. Zero-valued
// fields are ignored.
type PhotoFilters struct {
	Camera    string      `json:"camera,omitempty"`
	Trip      string      `json:"trip,omitempty"`
	Country   string      `json:"country,omitempty"`
	DateRange *DateRange  `json:"dateRange,omitempty"`
	ISO       *IntRange   `json:"iso,omitempty"`
	Aperture  *FloatRange `json:"aperture,omitempty"`
}

// dateLayouts covers the capture timestamp formats the ingest
// pipeline produces (EXIF and ISO 8601).
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006:01:02 15:04:05",
	"2006-01-02",
}

func parsePhotoDate(value string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Apply returns the photos matching every active filter. Photos
// missing a field a filter needs (no date, zero ISO, zero aperture)
// are excluded when that filter is active.
func (f PhotoFilters) Apply(photos []Photo) []Photo {
	out := make([]Photo, 0, len(photos))

	for _, p := range photos {
		if f.Camera != "" && p.Camera != f.Camera {
			continue
		}
		if f.Trip != "" && p.Trip != f.Trip {
			continue
		}
		if f.Country != "" && p.Location.Country != f.Country {
			continue
		}
		if f.DateRange != nil {
			taken, ok := parsePhotoDate(p.Date)
			if !ok || taken.Before(f.DateRange.Start) || taken.After(f.DateRange.End) {
				continue
			}
		}
		if f.ISO != nil {
			if p.ISO == 0 || p.ISO < f.ISO.Min || p.ISO > f.ISO.Max {
				continue
			}
		}
		if f.Aperture != nil {
			if p.Aperture == 0 || p.Aperture < f.Aperture.Min || p.Aperture > f.Aperture.Max {
				continue
			}
		}
		out = append(out, p)
	}

	return out
}

// PhotoResult is one photo with its search scores. Scores are zero
// for blank-query listings.
type PhotoResult struct {
	Photo

	SemanticScore float64 `json:"semanticScore"`
	BM25Score     float64 `json:"bm25Score"`
	RRFScore      float64 `json:"rrfScore"`
}

// PhotoSearcher ranks a photo catalog with hybrid search.
type PhotoSearcher struct {
	photos     []Photo
	byID       map[string]Photo
	embeddings EmbeddingSet
	hybrid     *search.Searcher
}

// DefaultPhotoOptions returns the photo-domain search tuning.
func DefaultPhotoOptions() search.Options {
	return search.Options{
		Thesaurus:         PhotoSynonyms,
		FallbackThreshold: 0.6,
		FallbackLimit:     5,
	}
}

// NewPhotoSearcher creates a searcher over photos. embeddings may be
// nil when no precomputed vectors exist; engine may be nil for
// lexical-only operation.
func NewPhotoSearcher(photos []Photo, embeddings EmbeddingSet, engine ai.EmbeddingEngine, opts search.Options, logger *zap.Logger) *PhotoSearcher {
	byID := make(map[string]Photo, len(photos))
	for _, p := range photos {
		byID[p.ID] = p
	}

	return &PhotoSearcher{
		photos:     photos,
		byID:       byID,
		embeddings: embeddings,
		hybrid:     search.NewSearcher(engine, opts, logger),
	}
}

// Stats returns accumulated search statistics.
func (s *PhotoSearcher) Stats() search.Stats {
	return s.hybrid.Stats()
}

// Search filters and ranks the catalog. A blank query returns the
// filtered photos in catalog order with zero scores.
func (s *PhotoSearcher) Search(ctx context.Context, query string, filters PhotoFilters) []PhotoResult {
	filtered := filters.Apply(s.photos)

	if strings.TrimSpace(query) == "" {
		results := make([]PhotoResult, len(filtered))
		for i, p := range filtered {
			results[i] = PhotoResult{Photo: p}
		}
		return results
	}

	docs := make([]core.Document, len(filtered))
	for i, p := range filtered {
		docs[i] = core.Document{
			ID:         p.ID,
			SearchText: p.SearchText(),
			Embedding:  s.embeddings[p.ID],
		}
	}

	ranked := s.hybrid.Search(ctx, docs, query)

	results := make([]PhotoResult, 0, len(ranked))
	for _, r := range ranked {
		photo, ok := s.byID[r.ID]
		if !ok {
			continue
		}
		results = append(results, PhotoResult{
			Photo:         photo,
			SemanticScore: r.SemanticScore,
			BM25Score:     r.BM25Score,
			RRFScore:      r.RRFScore,
		})
	}

	return results
}
