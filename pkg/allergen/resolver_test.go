package allergen

import (
	"context"
	"errors"
	"testing"
)

type stubClassifier struct {
	raw []string
	err error
}

func (c *stubClassifier) ClassifyIngredient(_ context.Context, _ string) ([]string, error) {
	return c.raw, c.err
}

func TestResolveAllergensNormalizesOutput(t *testing.T) {
	resolver := NewResolver(&stubClassifier{raw: []string{"dairy", "made with wheat flour", "nonsense"}})

	got := resolver.ResolveAllergens(context.Background(), "bechamel sauce")

	want := []Category{Milk, Wheat}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestResolveAllergensDegradesToEmpty(t *testing.T) {
	resolver := NewResolver(&stubClassifier{err: errors.New("model unavailable")})

	if got := resolver.ResolveAllergens(context.Background(), "butter"); len(got) != 0 {
		t.Fatalf("classifier failure must yield an empty set, got %v", got)
	}
}
