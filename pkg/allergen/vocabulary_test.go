package allergen

import (
	"testing"
)

func TestNormalizeAliases(t *testing.T) {
	got := Normalize([]string{"mozzarella cheese", "whole wheat flour", "shrimp"})

	want := []Category{Milk, Shellfish, Wheat}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestNormalizeCanonicalIdempotent(t *testing.T) {
	for _, category := range Vocabulary {
		got := Normalize([]string{string(category)})
		if len(got) != 1 || got[0] != category {
			t.Fatalf("normalizing %q should yield itself, got %v", category, got)
		}
	}
}

func TestNormalizeUnmatched(t *testing.T) {
	got := Normalize([]string{"water", "salt", ""})
	if len(got) != 0 {
		t.Fatalf("expected empty set for unmatched names, got %v", got)
	}
}

func TestNormalizeShellfishNotFish(t *testing.T) {
	got := Normalize([]string{"shellfish"})
	if len(got) != 1 || got[0] != Shellfish {
		t.Fatalf("expected only shellfish, got %v", got)
	}

	got = Normalize([]string{"cuttlefish ink"})
	for _, category := range got {
		if category == Fish {
			t.Fatalf("cuttlefish should not hit the fish category, got %v", got)
		}
	}
}

func TestNormalizeCrustaceanSpellings(t *testing.T) {
	// Both spellings of the same animal must land on Shellfish alone.
	for _, name := range []string{"crawfish", "crayfish", "crawfish etouffee"} {
		got := Normalize([]string{name})
		if len(got) != 1 || got[0] != Shellfish {
			t.Fatalf("%q should yield only shellfish, got %v", name, got)
		}
	}
}

func TestSortCanonicalOrder(t *testing.T) {
	got := SortCanonical([]Category{Garlic, Milk, Sesame, Eggs})
	want := []Category{Milk, Eggs, Sesame, Garlic}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestJoinSplitRoundTrip(t *testing.T) {
	stored := Join([]Category{Milk, Peanuts})
	got := Split(stored)
	if len(got) != 2 || got[0] != Milk || got[1] != Peanuts {
		t.Fatalf("round trip failed: %q -> %v", stored, got)
	}

	if out := Split(""); len(out) != 0 {
		t.Fatalf("expected empty split for empty storage, got %v", out)
	}
}
