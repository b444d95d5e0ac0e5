package text

import "sort"

// DefaultRRFK is the Reciprocal Rank Fusion constant (standard value
// from Cormack et al. 2009).
const DefaultRRFK = 60

// FusedID is a document ID with its accumulated RRF score.
type FusedID struct {
	ID       string
	RRFScore float64
}

// ReciprocalRankFusion merges multiple ranked ID lists into a single
// consensus ranking. Each list contributes 1/(k + rank + 1) per entry
// (rank is 0-indexed; the +1 restores the classical 1-indexed formula),
// and contributions for the same ID sum across lists. An ID missing
// from a list simply contributes nothing for that list.
//
// RRF looks only at rank positions, never raw scores, so the cosine
// branch (roughly 0-1) and the BM25 branch (unbounded) can be fused
// without any normalization step.
//
// Output is sorted by descending score; ties keep first-seen order.
func ReciprocalRankFusion(rankedLists [][]string, k float64) []FusedID {
	if k <= 0 {
		k = DefaultRRFK
	}

	scores := make(map[string]float64)
	order := make([]string, 0)

	for _, rankedList := range rankedLists {
		for rank, id := range rankedList {
			if _, seen := scores[id]; !seen {
				order = append(order, id)
			}
			scores[id] += 1.0 / (k + float64(rank) + 1)
		}
	}

	fused := make([]FusedID, 0, len(order))
	for _, id := range order {
		fused = append(fused, FusedID{ID: id, RRFScore: scores[id]})
	}

	sort.SliceStable(fused, func(i, j int) bool {
		return fused[i].RRFScore > fused[j].RRFScore
	})

	return fused
}
