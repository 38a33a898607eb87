package menu

import (
	"testing"

	"github.com/amaralmassoterapia2-wq/safedining-sub000/domain"
	"github.com/amaralmassoterapia2-wq/safedining-sub000/pkg/allergen"
)

func summaryWith(statuses map[allergen.Category]allergen.Status) allergen.Summary {
	full := make(map[allergen.Category]allergen.Status, len(allergen.Vocabulary))
	for _, category := range allergen.Vocabulary {
		full[category] = allergen.StatusNotPresent
	}
	for category, status := range statuses {
		full[category] = status
	}
	return allergen.Summary{Status: full}
}

func TestDishSafetySafe(t *testing.T) {
	summary := summaryWith(map[allergen.Category]allergen.Status{
		allergen.Milk: allergen.StatusCannotModify,
	})

	// Declared allergens absent from the dish leave it safe.
	if got := dishSafety(summary, []allergen.Category{allergen.Peanuts}); got != domain.DishSafetySafe {
		t.Fatalf("expected safe, got %s", got)
	}
	if got := dishSafety(summary, nil); got != domain.DishSafetySafe {
		t.Fatalf("no declared allergens should read safe, got %s", got)
	}
}

func TestDishSafetyModifiable(t *testing.T) {
	summary := summaryWith(map[allergen.Category]allergen.Status{
		allergen.Milk: allergen.StatusCanModify,
	})

	if got := dishSafety(summary, []allergen.Category{allergen.Milk}); got != domain.DishSafetyModifiable {
		t.Fatalf("expected modifiable, got %s", got)
	}
}

func TestDishSafetyUnsafeWins(t *testing.T) {
	summary := summaryWith(map[allergen.Category]allergen.Status{
		allergen.Milk:      allergen.StatusCanModify,
		allergen.Shellfish: allergen.StatusCannotModify,
	})

	got := dishSafety(summary, []allergen.Category{allergen.Milk, allergen.Shellfish})
	if got != domain.DishSafetyUnsafe {
		t.Fatalf("any cannot_modify declared allergen makes the dish unsafe, got %s", got)
	}
}
