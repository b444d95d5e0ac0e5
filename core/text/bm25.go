package text

import (
	"math"
	"sort"

	"github.com/dshills/Searchlight/core"
)

// Default BM25 parameters. k1 controls term-frequency saturation
// (1.2-2.0 typical), b controls document-length normalization
// (0 = none, 1 = full).
const (
	DefaultK1 = 1.5
	DefaultB  = 0.75
)

// BM25 is an immutable ranking model over a fixed corpus. It is built
// fresh for every search call: the average document length and IDF table
// are functions of the current (filtered) corpus and must never be
// reused across corpora with different composition.
type BM25 struct {
	docs       []core.Document
	corpus     [][]string       // tokenized search text per document
	termFreqs  []map[string]int // term -> frequency, per document
	docLengths []int
	docCount   int

	avgDocLength float64
	idf          map[string]float64

	k1 float64
	b  float64
}

// ScoredDocument pairs a document with its BM25 relevance score.
type ScoredDocument struct {
	core.Document
	Score float64
}

// NewBM25 builds the ranking model for the given corpus. Non-positive
// k1 or negative b fall back to the defaults. An empty corpus produces
// a model whose searches yield no results.
func NewBM25(docs []core.Document, k1, b float64) *BM25 {
	if k1 <= 0 {
		k1 = DefaultK1
	}
	if b < 0 {
		b = DefaultB
	}

	m := &BM25{
		docs:     docs,
		docCount: len(docs),
		k1:       k1,
		b:        b,
		idf:      make(map[string]float64),
	}

	if m.docCount == 0 {
		return m
	}

	m.corpus = make([][]string, m.docCount)
	m.termFreqs = make([]map[string]int, m.docCount)
	m.docLengths = make([]int, m.docCount)

	totalLength := 0
	for i, doc := range docs {
		tokens := Tokenize(doc.SearchText)
		m.corpus[i] = tokens
		m.docLengths[i] = len(tokens)
		totalLength += len(tokens)

		freqs := make(map[string]int, len(tokens))
		for _, term := range tokens {
			freqs[term]++
		}
		m.termFreqs[i] = freqs
	}
	m.avgDocLength = float64(totalLength) / float64(m.docCount)

	m.calculateIDF()

	return m
}

// calculateIDF computes the smoothed inverse document frequency for
// every term in the corpus:
//
//	idf(term) = ln((N - df + 0.5) / (df + 0.5) + 1.0)
//
// df counts documents containing the term at least once, not raw
// occurrences. The +1.0 inside the log keeps IDF strictly positive even
// for terms present in every document, so ubiquitous terms can never
// drag a score negative and trip the score > 0 result filter.
func (m *BM25) calculateIDF() {
	docFreq := make(map[string]int)
	for _, freqs := range m.termFreqs {
		for term := range freqs {
			docFreq[term]++
		}
	}

	n := float64(m.docCount)
	for term, df := range docFreq {
		m.idf[term] = math.Log((n-float64(df)+0.5)/(float64(df)+0.5) + 1.0)
	}
}

// AvgDocLength returns the mean token count across the corpus.
func (m *BM25) AvgDocLength() float64 {
	return m.avgDocLength
}

// IDF returns the smoothed inverse document frequency for term, or 0
// for terms unseen in the corpus.
func (m *BM25) IDF(term string) float64 {
	return m.idf[term]
}

// Score computes the BM25 score of the query tokens against the
// document at docIndex. Terms absent from the document contribute
// nothing; the result is never negative.
func (m *BM25) Score(queryTokens []string, docIndex int) float64 {
	if docIndex < 0 || docIndex >= m.docCount {
		return 0
	}

	freqs := m.termFreqs[docIndex]
	docLength := float64(m.docLengths[docIndex])

	var score float64
	for _, term := range queryTokens {
		tf := float64(freqs[term])
		if tf == 0 {
			continue
		}

		numerator := tf * (m.k1 + 1)
		denominator := tf + m.k1*(1-m.b+m.b*(docLength/m.avgDocLength))
		score += m.idf[term] * (numerator / denominator)
	}

	return score
}

// Search scores every document against the query and returns the topK
// matches sorted by descending score. Documents with no lexical overlap
// (score <= 0) are excluded. Ties keep the original corpus order.
// topK <= 0 means no truncation.
func (m *BM25) Search(query string, topK int) []ScoredDocument {
	queryTokens := Tokenize(query)
	if len(queryTokens) == 0 || m.docCount == 0 {
		return nil
	}

	results := make([]ScoredDocument, 0, m.docCount)
	for i, doc := range m.docs {
		score := m.Score(queryTokens, i)
		if score <= 0 {
			continue
		}
		results = append(results, ScoredDocument{Document: doc, Score: score})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if topK > 0 && len(results) > topK {
		results = results[:topK]
	}

	return results
}
