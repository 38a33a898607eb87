package menuscan

import (
	"testing"
)

func TestSimilarityExact(t *testing.T) {
	if score := Similarity("Pad Thai", "pad thai"); score != 100 {
		t.Fatalf("case-insensitive exact match should score 100, got %d", score)
	}
	if score := Similarity("", ""); score != 100 {
		t.Fatalf("two empty strings should score 100, got %d", score)
	}
}

func TestSimilarityDisjoint(t *testing.T) {
	if score := Similarity("abc", "xyz"); score >= 50 {
		t.Fatalf("disjoint strings should score low, got %d", score)
	}
	if score := Similarity("anything", ""); score != 0 {
		t.Fatalf("empty vs non-empty should score 0, got %d", score)
	}
}

func TestSimilarityClose(t *testing.T) {
	score := Similarity("Margherita Pizza", "Margarita Pizza")
	if score < DefaultMatchThreshold {
		t.Fatalf("near-identical names should clear the threshold, got %d", score)
	}
}

func TestBestMatchThreshold(t *testing.T) {
	candidates := []string{"Caesar Salad", "Tom Yum Soup", "Pad Thai"}

	match, ok := BestMatch("Pad Tai", candidates, DefaultMatchThreshold)
	if !ok {
		t.Fatalf("expected a match for Pad Tai")
	}
	if match.Index != 2 || match.Name != "Pad Thai" {
		t.Fatalf("expected Pad Thai, got %+v", match)
	}

	if _, ok := BestMatch("Quantum Burger", candidates, DefaultMatchThreshold); ok {
		t.Fatalf("expected no match below threshold")
	}
}

func TestBestMatchFirstWins(t *testing.T) {
	candidates := []string{"House Curry", "House Curry"}

	match, ok := BestMatch("House Curry", candidates, DefaultMatchThreshold)
	if !ok || match.Index != 0 {
		t.Fatalf("tie should keep the first candidate, got %+v ok=%v", match, ok)
	}
}
