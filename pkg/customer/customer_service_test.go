package customer

import (
	"testing"

	"github.com/amaralmassoterapia2-wq/safedining-sub000/entities"
	"github.com/amaralmassoterapia2-wq/safedining-sub000/pkg/allergen"
)

func TestDeclaredAllergensFromRestrictions(t *testing.T) {
	profile := &entities.CustomerProfile{
		Restrictions: "gluten-free,dairy-free",
	}

	got := declaredAllergens(profile)

	want := []allergen.Category{allergen.Milk, allergen.Wheat, allergen.Gluten}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestDeclaredAllergensFromCustomText(t *testing.T) {
	profile := &entities.CustomerProfile{
		CustomAllergens: "peanut butter,sesame oil",
	}

	got := declaredAllergens(profile)

	want := []allergen.Category{allergen.Peanuts, allergen.Sesame}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestDeclaredAllergensEmptyProfile(t *testing.T) {
	if got := declaredAllergens(&entities.CustomerProfile{}); len(got) != 0 {
		t.Fatalf("empty profile must have no declared allergens, got %v", got)
	}
}
