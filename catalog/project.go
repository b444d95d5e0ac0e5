package catalog

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/dshills/Searchlight/core"
	"github.com/dshills/Searchlight/core/ai"
	"github.com/dshills/Searchlight/core/search"
)

// ProjectMetadata holds a project's lifecycle fields.
type ProjectMetadata struct {
	Year   int    `json:"year"`
	Status string `json:"status"`
}

// Project is one portfolio entry.
type Project struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Tagline     string          `json:"tagline"`
	Description string          `json:"description"`
	TechStack   []string        `json:"techStack"`
	Category    string          `json:"category"`
	Metadata    ProjectMetadata `json:"metadata"`
}

// SearchText builds the weighted lexical document for a project.
// The title carries triple weight; tagline, description, and tech
// stack double; category, status, and year single.
func (p Project) SearchText() string {
	var parts []string

	parts = append(parts, p.Title, p.Title, p.Title)
	parts = append(parts, p.Tagline, p.Tagline)
	parts = append(parts, p.Description, p.Description)

	tech := strings.Join(p.TechStack, " ")
	parts = append(parts, tech, tech)

	parts = append(parts, p.Category)
	if p.Metadata.Status != "" {
		parts = append(parts, p.Metadata.Status)
	}
	if p.Metadata.Year != 0 {
		parts = append(parts, strconv.Itoa(p.Metadata.Year))
	}

	return strings.Join(parts, " ")
}

// ProjectFilters narrows a project corpus before ranking. Zero-valued
// fields are ignored. TechStack matches projects using any of the
// listed technologies.
type ProjectFilters struct {
	TechStack []string `json:"techStack,omitempty"`
	Category  string   `json:"category,omitempty"`
	Year      int      `json:"year,omitempty"`
	Status    string   `json:"status,omitempty"`
}

// Apply returns the projects matching every active filter.
func (f ProjectFilters) Apply(projects []Project) []Project {
	out := make([]Project, 0, len(projects))

	for _, p := range projects {
		if len(f.TechStack) > 0 && !usesAnyTech(p, f.TechStack) {
			continue
		}
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.Year != 0 && p.Metadata.Year != f.Year {
			continue
		}
		if f.Status != "" && p.Metadata.Status != f.Status {
			continue
		}
		out = append(out, p)
	}

	return out
}

func usesAnyTech(p Project, wanted []string) bool {
	for _, tech := range wanted {
		for _, have := range p.TechStack {
			if have == tech {
				return true
			}
		}
	}
	return false
}

// ProjectResult is one project with its search scores.
type ProjectResult struct {
	Project

	SemanticScore float64 `json:"semanticScore"`
	BM25Score     float64 `json:"bm25Score"`
	RRFScore      float64 `json:"rrfScore"`
}

// ProjectSearcher ranks a project catalog with hybrid search.
type ProjectSearcher struct {
	projects   []Project
	byID       map[string]Project
	embeddings EmbeddingSet
	hybrid     *search.Searcher
}

// DefaultProjectOptions returns the project-domain search tuning.
// The threshold sits lower than the photo domain's because project
// descriptions are longer and their embeddings spread further apart.
func DefaultProjectOptions() search.Options {
	return search.Options{
		Thesaurus:         ProjectSynonyms,
		FallbackThreshold: 0.5,
		FallbackLimit:     10,
	}
}

// NewProjectSearcher creates a searcher over projects.
func NewProjectSearcher(projects []Project, embeddings EmbeddingSet, engine ai.EmbeddingEngine, opts search.Options, logger *zap.Logger) *ProjectSearcher {
	byID := make(map[string]Project, len(projects))
	for _, p := range projects {
		byID[p.ID] = p
	}

	return &ProjectSearcher{
		projects:   projects,
		byID:       byID,
		embeddings: embeddings,
		hybrid:     search.NewSearcher(engine, opts, logger),
	}
}

// Stats returns accumulated search statistics.
func (s *ProjectSearcher) Stats() search.Stats {
	return s.hybrid.Stats()
}

// Search filters and ranks the catalog. A blank query returns the
// filtered projects in catalog order with zero scores.
func (s *ProjectSearcher) Search(ctx context.Context, query string, filters ProjectFilters) []ProjectResult {
	filtered := filters.Apply(s.projects)

	if strings.TrimSpace(query) == "" {
		results := make([]ProjectResult, len(filtered))
		for i, p := range filtered {
			results[i] = ProjectResult{Project: p}
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

	results := make([]ProjectResult, 0, len(ranked))
	for _, r := range ranked {
		project, ok := s.byID[r.ID]
		if !ok {
			continue
		}
		results = append(results, ProjectResult{
			Project:       project,
			SemanticScore: r.SemanticScore,
			BM25Score:     r.BM25Score,
			RRFScore:      r.RRFScore,
		})
	}

	return results
}
