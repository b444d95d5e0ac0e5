package catalog

import (
	"context"
	"strings"
	"testing"
	"time"
)

func testPhotos() []Photo {
	return []Photo{
		{
			ID:             "p1",
			NaturalCaption: "a golden retriever running on the beach at sunset",
			AITags:         []string{"dog", "beach", "sunset"},
			ManualTags:     []string{"golden hour"},
			Camera:         "Fujifilm X-T4",
			Trip:           "oregon-coast",
			Date:           "2023-07-14",
			ISO:            200,
			Aperture:       2.8,
			Location:       Location{Country: "USA"},
		},
		{
			ID:             "p2",
			NaturalCaption: "foggy mountain ridge above a pine forest",
			AITags:         []string{"mountain", "fog", "forest"},
			Camera:         "Fujifilm X-T4",
			Trip:           "alps-2022",
			Date:           "2022-09-03",
			ISO:            800,
			Aperture:       8,
			Location:       Location{Country: "Switzerland"},
		},
		{
			ID:             "p3",
			NaturalCaption: "city street at night with neon signs",
			AITags:         []string{"city", "night", "street"},
			Camera:         "iPhone 15 Pro",
			Trip:           "tokyo-2024",
			Date:           "2024-02-20",
			ISO:            3200,
			Aperture:       1.8,
			Location:       Location{Country: "Japan"},
		},
	}
}

func TestPhotoSearchTextWeighting(t *testing.T) {
	photo := testPhotos()[0]
	text := photo.SearchText()

	if got := strings.Count(text, "golden retriever"); got != 3 {
		t.Errorf("caption should appear 3 times, got %d", got)
	}
	if got := strings.Count(text, "golden hour"); got != 3 {
		t.Errorf("manual tags should appear 3 times, got %d", got)
	}
	if got := strings.Count(text, "dog beach sunset"); got != 2 {
		t.Errorf("AI tags should appear 2 times, got %d", got)
	}
	if got := strings.Count(text, "USA"); got != 1 {
		t.Errorf("country should appear once, got %d", got)
	}
	if got := strings.Count(text, "Fujifilm X-T4"); got != 1 {
		t.Errorf("camera should appear once, got %d", got)
	}
}

func TestPhotoSearchTextEmptyFields(t *testing.T) {
	text := Photo{ID: "bare"}.SearchText()
	if text != "" {
		t.Errorf("expected empty search text, got %q", text)
	}
}

func TestPhotoFilters(t *testing.T) {
	photos := testPhotos()

	tests := []struct {
		name    string
		filters PhotoFilters
		wantIDs []string
	}{
		{
			name:    "no filters",
			filters: PhotoFilters{},
			wantIDs: []string{"p1", "p2", "p3"},
		},
		{
			name:    "camera",
			filters: PhotoFilters{Camera: "Fujifilm X-T4"},
			wantIDs: []string{"p1", "p2"},
		},
		{
			name:    "trip",
			filters: PhotoFilters{Trip: "tokyo-2024"},
			wantIDs: []string{"p3"},
		},
		{
			name:    "country",
			filters: PhotoFilters{Country: "Switzerland"},
			wantIDs: []string{"p2"},
		},
		{
			name: "date range",
			filters: PhotoFilters{DateRange: &DateRange{
				Start: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
				End:   time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC),
			}},
			wantIDs: []string{"p1"},
		},
		{
			name:    "iso range inclusive",
			filters: PhotoFilters{ISO: &IntRange{Min: 200, Max: 800}},
			wantIDs: []string{"p1", "p2"},
		},
		{
			name:    "aperture range",
			filters: PhotoFilters{Aperture: &FloatRange{Min: 1.0, Max: 3.0}},
			wantIDs: []string{"p1", "p3"},
		},
		{
			name:    "combined",
			filters: PhotoFilters{Camera: "Fujifilm X-T4", Country: "USA"},
			wantIDs: []string{"p1"},
		},
		{
			name:    "no matches",
			filters: PhotoFilters{Camera: "Leica M11"},
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.filters.Apply(photos)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("expected %d photos, got %d", len(tt.wantIDs), len(got))
			}
			for i, p := range got {
				if p.ID != tt.wantIDs[i] {
					t.Errorf("position %d: expected %s, got %s", i, tt.wantIDs[i], p.ID)
				}
			}
		})
	}
}

func TestPhotoFiltersExcludeMissingFields(t *testing.T) {
	photos := []Photo{
		{ID: "no-date", ISO: 400, Aperture: 4},
		{ID: "no-iso", Date: "2023-05-01", Aperture: 4},
		{ID: "no-aperture", Date: "2023-05-01", ISO: 400},
	}

	dated := PhotoFilters{DateRange: &DateRange{
		Start: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC),
	}}.Apply(photos)
	if len(dated) != 2 {
		t.Errorf("date filter should drop the undated photo, got %d results", len(dated))
	}

	iso := PhotoFilters{ISO: &IntRange{Min: 100, Max: 1600}}.Apply(photos)
	if len(iso) != 2 {
		t.Errorf("ISO filter should drop the photo without ISO, got %d results", len(iso))
	}

	aperture := PhotoFilters{Aperture: &FloatRange{Min: 1, Max: 8}}.Apply(photos)
	if len(aperture) != 2 {
		t.Errorf("aperture filter should drop the photo without aperture, got %d results", len(aperture))
	}
}

func TestPhotoFiltersIdempotent(t *testing.T) {
	photos := testPhotos()
	filters := PhotoFilters{Camera: "Fujifilm X-T4"}

	once := filters.Apply(photos)
	twice := filters.Apply(once)

	if len(once) != len(twice) {
		t.Fatalf("filtering twice changed the result: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Errorf("position %d changed after second filter pass", i)
		}
	}
}

func TestPhotoSearcherBlankQuery(t *testing.T) {
	searcher := NewPhotoSearcher(testPhotos(), nil, nil, DefaultPhotoOptions(), nil)

	results := searcher.Search(context.Background(), "   ", PhotoFilters{Camera: "Fujifilm X-T4"})

	if len(results) != 2 {
		t.Fatalf("expected 2 filtered photos, got %d", len(results))
	}
	// Blank queries list the catalog without ranking
	if results[0].ID != "p1" || results[1].ID != "p2" {
		t.Errorf("expected catalog order p1, p2, got %s, %s", results[0].ID, results[1].ID)
	}
	for _, r := range results {
		if r.SemanticScore != 0 || r.BM25Score != 0 || r.RRFScore != 0 {
			t.Errorf("blank query should produce zero scores, got %+v", r)
		}
	}
}

func TestPhotoSearcherLexicalQuery(t *testing.T) {
	searcher := NewPhotoSearcher(testPhotos(), nil, nil, DefaultPhotoOptions(), nil)

	results := searcher.Search(context.Background(), "mountain fog", PhotoFilters{})

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].ID != "p2" {
		t.Errorf("expected p2, got %s", results[0].ID)
	}
	if results[0].BM25Score <= 0 {
		t.Errorf("expected positive lexical score, got %f", results[0].BM25Score)
	}
}

func TestPhotoSearcherSynonymExpansion(t *testing.T) {
	searcher := NewPhotoSearcher(testPhotos(), nil, nil, DefaultPhotoOptions(), nil)

	// "ocean" appears in no caption, but it expands to "beach", which
	// p1 mentions in both its caption and tags.
	results := searcher.Search(context.Background(), "ocean", PhotoFilters{})

	if len(results) == 0 {
		t.Fatal("expected ocean query to match through expansion")
	}
	if results[0].ID != "p1" {
		t.Errorf("expected p1 first, got %s", results[0].ID)
	}
}

func TestPhotoSearcherFiltersBeforeRanking(t *testing.T) {
	searcher := NewPhotoSearcher(testPhotos(), nil, nil, DefaultPhotoOptions(), nil)

	// p1 matches "beach" but is excluded by the country filter.
	results := searcher.Search(context.Background(), "beach", PhotoFilters{Country: "Japan"})

	for _, r := range results {
		if r.Location.Country != "Japan" {
			t.Errorf("filter leaked photo from %s", r.Location.Country)
		}
	}
}
