package search

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/dshills/Searchlight/core"
	"github.com/dshills/Searchlight/core/ai"
	"github.com/dshills/Searchlight/core/text"
)

// Default fallback tuning. Callers usually override these per domain.
const (
	DefaultFallbackThreshold = 0.5
	DefaultFallbackLimit     = 10
)

// Options configures a hybrid Searcher.
type Options struct {
	// Thesaurus feeds query expansion. Nil disables expansion beyond
	// the original query words.
	Thesaurus text.Thesaurus

	// FallbackThreshold is the minimum cosine similarity for a
	// document to survive the semantic fallback.
	FallbackThreshold float64

	// FallbackLimit caps how many fallback results are returned.
	FallbackLimit int

	// BM25 parameters. Zero values select the defaults.
	K1 float64
	B  float64

	// RRFK is the rank-fusion constant. Zero selects the default.
	RRFK float64
}

// Result is one scored document from a hybrid search.
type Result struct {
	core.Document

	SemanticScore float64 `json:"semanticScore"`
	BM25Score     float64 `json:"bm25Score"`
	RRFScore      float64 `json:"rrfScore"`
}

// Searcher runs hybrid lexical plus semantic search over a document
// slice. Lexical scoring always works; semantic scoring needs an
// embedding engine and degrades gracefully without one.
type Searcher struct {
	engine ai.EmbeddingEngine
	opts   Options
	logger *zap.Logger
	stats  *Statistics
}

// NewSearcher creates a hybrid searcher. engine may be nil, in which
// case every query runs lexical-only.
func NewSearcher(engine ai.EmbeddingEngine, opts Options, logger *zap.Logger) *Searcher {
	if opts.FallbackThreshold == 0 {
		opts.FallbackThreshold = DefaultFallbackThreshold
	}
	if opts.FallbackLimit <= 0 {
		opts.FallbackLimit = DefaultFallbackLimit
	}
	if opts.K1 == 0 {
		opts.K1 = text.DefaultK1
	}
	if opts.B == 0 {
		opts.B = text.DefaultB
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Searcher{
		engine: engine,
		opts:   opts,
		logger: logger,
		stats:  NewStatistics(),
	}
}

// Stats returns accumulated search statistics.
func (s *Searcher) Stats() Stats {
	return s.stats.GetStats()
}

// Search ranks docs against query. It never fails: embedding errors
// degrade the query to lexical-only scoring.
//
// Results come back in fused relevance order. When at least one
// document has a positive lexical score, only lexically matching
// documents are returned; otherwise the method falls back to the
// semantically closest documents above the configured threshold.
func (s *Searcher) Search(ctx context.Context, docs []core.Document, query string) []Result {
	start := time.Now()

	expanded := text.ExpandQuery(query, s.opts.Thesaurus)

	queryVec, degraded := s.embedQuery(ctx, expanded)

	results := s.score(docs, expanded, queryVec)

	strict := make([]Result, 0, len(results))
	for _, r := range results {
		if r.BM25Score > 0 {
			strict = append(strict, r)
		}
	}

	fallback := len(strict) == 0
	if !fallback {
		s.logScores(query, strict)
		s.stats.RecordSearch(time.Since(start), false, degraded)
		return strict
	}

	out := s.semanticFallback(results)
	s.logger.Info("no lexical matches, using semantic fallback",
		zap.String("query", query),
		zap.Int("results", len(out)))
	s.logScores(query, out)
	s.stats.RecordSearch(time.Since(start), true, degraded)
	return out
}

// logScores emits the top result scores for debugging.
func (s *Searcher) logScores(query string, results []Result) {
	if len(results) == 0 {
		return
	}
	top := results
	if len(top) > 5 {
		top = top[:5]
	}
	fields := make([]zap.Field, 0, len(top)+2)
	fields = append(fields, zap.String("query", query), zap.Int("matches", len(results)))
	for _, r := range top {
		fields = append(fields, zap.Dict(r.ID,
			zap.Float64("semantic", r.SemanticScore),
			zap.Float64("bm25", r.BM25Score),
			zap.Float64("rrf", r.RRFScore)))
	}
	s.logger.Debug("search scores", fields...)
}

// embedQuery returns the query embedding, or nil plus degraded=true
// when no engine is configured or inference fails.
func (s *Searcher) embedQuery(ctx context.Context, query string) ([]float32, bool) {
	if s.engine == nil {
		return nil, true
	}

	vectors, err := s.engine.Embed(ctx, []string{query})
	if err != nil {
		s.logger.Warn("query embedding failed, degrading to lexical search",
			zap.String("query", query),
			zap.Error(err))
		return nil, true
	}
	if len(vectors) == 0 {
		return nil, true
	}
	return vectors[0], false
}

// score computes semantic, lexical, and fused scores for every
// document and returns them sorted by fused score.
func (s *Searcher) score(docs []core.Document, expandedQuery string, queryVec []float32) []Result {
	results := make([]Result, len(docs))
	for i, doc := range docs {
		results[i] = Result{Document: doc}
		if queryVec != nil && doc.HasEmbedding() {
			results[i].SemanticScore = core.CosineSimilarity(queryVec, doc.Embedding)
		}
	}

	semanticOrder := make([]int, len(results))
	for i := range semanticOrder {
		semanticOrder[i] = i
	}
	sort.SliceStable(semanticOrder, func(a, b int) bool {
		return results[semanticOrder[a]].SemanticScore > results[semanticOrder[b]].SemanticScore
	})

	semanticIDs := make([]string, len(semanticOrder))
	for rank, idx := range semanticOrder {
		semanticIDs[rank] = results[idx].ID
	}

	byID := make(map[string]*Result, len(results))
	for i := range results {
		byID[results[i].ID] = &results[i]
	}

	model := text.NewBM25(docs, s.opts.K1, s.opts.B)
	lexical := model.Search(expandedQuery, len(docs))
	bm25IDs := make([]string, len(lexical))
	for rank, scored := range lexical {
		bm25IDs[rank] = scored.Document.ID
		if r, ok := byID[scored.Document.ID]; ok {
			r.BM25Score = scored.Score
		}
	}

	for _, fused := range text.ReciprocalRankFusion([][]string{semanticIDs, bm25IDs}, s.opts.RRFK) {
		if r, ok := byID[fused.ID]; ok {
			r.RRFScore = fused.RRFScore
		}
	}

	sort.SliceStable(results, func(a, b int) bool {
		return results[a].RRFScore > results[b].RRFScore
	})

	return results
}

// semanticFallback keeps the documents above the similarity threshold
// in fused-rank order, capped at the configured limit.
func (s *Searcher) semanticFallback(results []Result) []Result {
	candidates := make([]Result, 0, len(results))
	for _, r := range results {
		if r.SemanticScore > s.opts.FallbackThreshold {
			candidates = append(candidates, r)
		}
	}

	if len(candidates) > s.opts.FallbackLimit {
		candidates = candidates[:s.opts.FallbackLimit]
	}
	return candidates
}
