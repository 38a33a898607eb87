package dietary

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/amaralmassoterapia2-wq/safedining-sub000/pkg/allergen"
)

type stubJudge struct {
	verdicts []StyleVerdict
	err      error
	calls    int
}

func (j *stubJudge) JudgeDietaryStyle(_ context.Context, _ string, _ []StyleDishInput) ([]StyleVerdict, error) {
	j.calls++
	return j.verdicts, j.err
}

func plainDish(id string, contains ...allergen.Category) Dish {
	return Dish{
		ID:   id,
		Name: id,
		Links: []allergen.LinkInput{
			{IngredientName: "base", Contains: contains},
		},
	}
}

func TestClassifyShellfishFreeExcludes(t *testing.T) {
	dishes := []Dish{
		plainDish("salad"),
		plainDish("shrimp-pasta", allergen.Shellfish),
	}

	result := Classify(context.Background(), ShellfishFree, dishes, nil)

	if result.Status != StatusLimited {
		t.Fatalf("expected limited, got %s", result.Status)
	}
	if len(result.AvailableDishes) != 1 || result.AvailableDishes[0].ID != "salad" {
		t.Fatalf("expected only the salad to qualify, got %v", result.AvailableDishes)
	}
}

func TestClassifyDairyFreeSubstitution(t *testing.T) {
	dishes := []Dish{
		{
			ID: "alfredo",
			Links: []allergen.LinkInput{
				{
					IngredientName: "Cream",
					Contains:       []allergen.Category{allergen.Milk},
					Substitutable:  true,
					Substitutes: []allergen.SubstituteInput{
						{Name: "Oat Cream"},
					},
				},
			},
		},
	}

	result := Classify(context.Background(), DairyFree, dishes, nil)

	if len(result.AvailableDishes) != 1 {
		t.Fatalf("expected dish to qualify with modification, got %v", result.AvailableDishes)
	}
	qualified := result.AvailableDishes[0]
	if !qualified.RequiresModification {
		t.Fatalf("substituted dish must require modification")
	}
	if len(qualified.Modifications) != 1 || qualified.Modifications[0] != "Substitute Cream with Oat Cream" {
		t.Fatalf("unexpected modifications: %v", qualified.Modifications)
	}
}

func TestClassifyGlutenFreeBlocksWheat(t *testing.T) {
	dishes := []Dish{plainDish("sandwich", allergen.Wheat)}

	result := Classify(context.Background(), GlutenFree, dishes, nil)

	if result.Status != StatusUnavailable {
		t.Fatalf("wheat must disqualify gluten-free, got %s", result.Status)
	}
}

func TestClassifyStatusThresholds(t *testing.T) {
	var none []Dish
	result := Classify(context.Background(), EggFree, none, nil)
	if result.Status != StatusUnavailable {
		t.Fatalf("0 dishes: expected unavailable, got %s", result.Status)
	}

	four := make([]Dish, 4)
	for i := range four {
		four[i] = plainDish(fmt.Sprintf("dish-%d", i))
	}
	result = Classify(context.Background(), EggFree, four, nil)
	if result.Status != StatusLimited {
		t.Fatalf("4 dishes: expected limited, got %s", result.Status)
	}
	if result.Warning == "" {
		t.Fatalf("limited status should carry a warning")
	}

	five := append(four, plainDish("dish-4"))
	result = Classify(context.Background(), EggFree, five, nil)
	if result.Status != StatusAvailable {
		t.Fatalf("5 dishes: expected available, got %s", result.Status)
	}
}

func TestClassifyStyleUsesJudge(t *testing.T) {
	judge := &stubJudge{verdicts: []StyleVerdict{
		{DishID: "tofu-bowl", Safe: true},
		{DishID: "chicken-soup", Safe: false},
	}}
	dishes := []Dish{plainDish("tofu-bowl"), plainDish("chicken-soup")}

	result := Classify(context.Background(), Vegetarian, dishes, judge)

	if judge.calls != 1 {
		t.Fatalf("expected one judge call, got %d", judge.calls)
	}
	if len(result.AvailableDishes) != 1 || result.AvailableDishes[0].ID != "tofu-bowl" {
		t.Fatalf("expected only the safe verdict, got %v", result.AvailableDishes)
	}
}

func TestClassifyStyleFallbackOnJudgeError(t *testing.T) {
	judge := &stubJudge{err: errors.New("judge down")}
	dishes := []Dish{
		plainDish("veggie-bowl"),
		plainDish("fish-stew", allergen.Fish),
	}

	result := Classify(context.Background(), Vegan, dishes, judge)

	if len(result.AvailableDishes) != 1 || result.AvailableDishes[0].ID != "veggie-bowl" {
		t.Fatalf("fallback should keep only the animal-free dish, got %v", result.AvailableDishes)
	}
}

func TestClassifyNutritionFallback(t *testing.T) {
	dishes := []Dish{
		{ID: "steak", Nutrition: Nutrition{CarbsG: 5, SodiumMg: 400, Known: true}},
		{ID: "pasta", Nutrition: Nutrition{CarbsG: 80, SodiumMg: 900, Known: true}},
		{ID: "mystery", Nutrition: Nutrition{CarbsG: 0, SodiumMg: 0, Known: false}},
	}

	result := Classify(context.Background(), LowCarb, dishes, nil)
	if len(result.AvailableDishes) != 1 || result.AvailableDishes[0].ID != "steak" {
		t.Fatalf("low-carb fallback should keep only the steak, got %v", result.AvailableDishes)
	}

	result = Classify(context.Background(), LowSodium, dishes, nil)
	if len(result.AvailableDishes) != 1 || result.AvailableDishes[0].ID != "steak" {
		t.Fatalf("low-sodium fallback should keep only the steak, got %v", result.AvailableDishes)
	}
}
