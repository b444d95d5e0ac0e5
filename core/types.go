package core

// Document is a single searchable catalog entry. The caller owns the
// underlying record; the search core only needs a stable ID, the
// synthesized search text, and an optional precomputed embedding.
type Document struct {
	// ID uniquely identifies the document and is stable across calls.
	// It is the join key for rank fusion.
	ID string `json:"id"`

	// SearchText is synthesized by the caller from weighted fields.
	// Weighting is achieved through repetition (e.g. caption three
	// times, tags twice); the core never weights fields itself.
	SearchText string `json:"search_text"`

	// Embedding is the precomputed vector for this document, or nil
	// when no vector exists. A missing embedding ranks the document
	// with semantic score 0, never an error.
	Embedding []float32 `json:"embedding,omitempty"`
}

// HasEmbedding reports whether the document carries a precomputed vector.
func (d Document) HasEmbedding() bool {
	return len(d.Embedding) > 0
}
