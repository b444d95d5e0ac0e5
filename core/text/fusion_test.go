package text

import (
	"math"
	"testing"
)

func TestReciprocalRankFusion(t *testing.T) {
	lists := [][]string{
		{"a", "b", "c"},
		{"c", "a", "b"},
	}

	fused := ReciprocalRankFusion(lists, DefaultRRFK)
	if len(fused) != 3 {
		t.Fatalf("expected 3 fused entries, got %d", len(fused))
	}

	scores := make(map[string]float64)
	for _, f := range fused {
		scores[f.ID] = f.RRFScore
	}

	// "a" holds ranks 0 and 1, "c" ranks 2 and 0: symmetric positions,
	// identical scores. "b" is worst in both lists and must come last.
	if math.Abs(scores["a"]-scores["c"]) > 1e-12 {
		t.Errorf("a and c should tie: %f vs %f", scores["a"], scores["c"])
	}
	if fused[2].ID != "b" {
		t.Errorf("b should rank last, got order %v", fused)
	}
	if scores["b"] >= scores["a"] {
		t.Errorf("b should score below a: %f vs %f", scores["b"], scores["a"])
	}

	wantA := 1.0/(60+0+1) + 1.0/(60+1+1)
	if math.Abs(scores["a"]-wantA) > 1e-12 {
		t.Errorf("score for a = %f, want %f", scores["a"], wantA)
	}
}

func TestReciprocalRankFusionSingleListMembership(t *testing.T) {
	lists := [][]string{
		{"x", "y"},
		{"y"},
	}

	fused := ReciprocalRankFusion(lists, DefaultRRFK)
	scores := make(map[string]float64)
	for _, f := range fused {
		scores[f.ID] = f.RRFScore
	}

	// x appears in only one list but still gets a nonzero contribution.
	if scores["x"] <= 0 {
		t.Errorf("x should have a nonzero score, got %f", scores["x"])
	}
	// y sums contributions from both lists and outranks x.
	if fused[0].ID != "y" {
		t.Errorf("y should rank first, got %v", fused)
	}
}

func TestReciprocalRankFusionRankOnly(t *testing.T) {
	// Fusion consumes rank positions only. Two runs over lists that
	// were produced from wildly different score scales but identical
	// orderings must fuse identically.
	ordering := [][]string{
		{"p1", "p2", "p3", "p4"},
		{"p3", "p1", "p4", "p2"},
	}

	first := ReciprocalRankFusion(ordering, DefaultRRFK)
	second := ReciprocalRankFusion(ordering, DefaultRRFK)

	if len(first) != len(second) {
		t.Fatalf("length mismatch: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("position %d differs: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestReciprocalRankFusionStableTies(t *testing.T) {
	// Disjoint single-item lists produce identical scores; first-seen
	// order must be preserved.
	lists := [][]string{{"m"}, {"n"}, {"o"}}

	fused := ReciprocalRankFusion(lists, DefaultRRFK)
	for i, want := range []string{"m", "n", "o"} {
		if fused[i].ID != want {
			t.Errorf("position %d: got %s, want %s", i, fused[i].ID, want)
		}
	}
}

func TestReciprocalRankFusionEmpty(t *testing.T) {
	if fused := ReciprocalRankFusion(nil, DefaultRRFK); len(fused) != 0 {
		t.Errorf("nil input should fuse to empty, got %v", fused)
	}
	if fused := ReciprocalRankFusion([][]string{{}, {}}, DefaultRRFK); len(fused) != 0 {
		t.Errorf("empty lists should fuse to empty, got %v", fused)
	}
}

func TestReciprocalRankFusionDefaultK(t *testing.T) {
	lists := [][]string{{"a", "b"}}

	withDefault := ReciprocalRankFusion(lists, 0)
	explicit := ReciprocalRankFusion(lists, DefaultRRFK)

	for i := range explicit {
		if withDefault[i] != explicit[i] {
			t.Errorf("k<=0 should fall back to default constant")
		}
	}
}
