package allergen

import (
	"testing"
)

func TestAggregateDescriptionCannotModify(t *testing.T) {
	summary := Aggregate(DishInput{DescriptionAllergens: []Category{Milk}}, nil, nil)

	if summary.Status[Milk] != StatusCannotModify {
		t.Fatalf("description allergen should be cannot_modify, got %s", summary.Status[Milk])
	}
	if len(summary.All) != 1 || summary.All[0] != Milk {
		t.Fatalf("expected [Milk], got %v", summary.All)
	}
}

func TestAggregateRemovableIngredient(t *testing.T) {
	links := []LinkInput{
		{IngredientName: "Butter", Contains: []Category{Milk}, Removable: true},
	}
	summary := Aggregate(DishInput{}, links, nil)

	if summary.Status[Milk] != StatusCanModify {
		t.Fatalf("removable ingredient should be can_modify, got %s", summary.Status[Milk])
	}
}

func TestAggregateCannotModifyWins(t *testing.T) {
	// The same allergen appears both in a removable ingredient and in the
	// description; cannot_modify must win regardless of source order.
	links := []LinkInput{
		{IngredientName: "Butter", Contains: []Category{Milk}, Removable: true},
	}
	summary := Aggregate(DishInput{DescriptionAllergens: []Category{Milk}}, links, nil)

	if summary.Status[Milk] != StatusCannotModify {
		t.Fatalf("cannot_modify must absorb can_modify, got %s", summary.Status[Milk])
	}
}

func TestAggregateNonRemovableIngredientWins(t *testing.T) {
	// A removable source records Milk as can_modify first; a second,
	// non-removable ingredient with the same allergen must force it down to
	// cannot_modify.
	links := []LinkInput{
		{IngredientName: "Cream", Contains: []Category{Milk}, Removable: true},
		{IngredientName: "Butter", Contains: []Category{Milk}},
	}
	summary := Aggregate(DishInput{}, links, nil)

	if summary.Status[Milk] != StatusCannotModify {
		t.Fatalf("a fixed ingredient must override a removable one, got %s", summary.Status[Milk])
	}

	// And in the opposite link order too.
	reversed := []LinkInput{links[1], links[0]}
	summary = Aggregate(DishInput{}, reversed, nil)
	if summary.Status[Milk] != StatusCannotModify {
		t.Fatalf("order of ingredient links must not matter, got %s", summary.Status[Milk])
	}
}

func TestAggregateStepCrossContact(t *testing.T) {
	steps := []StepInput{
		{Number: 1, CrossContact: []Category{Peanuts}},
		{Number: 2, CrossContact: []Category{Sesame}, Modifiable: true, ModifiableAllergens: []Category{Sesame}},
	}
	summary := Aggregate(DishInput{}, nil, steps)

	if summary.Status[Peanuts] != StatusCannotModify {
		t.Fatalf("fixed cross-contact should be cannot_modify, got %s", summary.Status[Peanuts])
	}
	if summary.Status[Sesame] != StatusCanModify {
		t.Fatalf("modifiable cross-contact should be can_modify, got %s", summary.Status[Sesame])
	}
}

func TestAggregateShrimpPasta(t *testing.T) {
	dish := DishInput{DescriptionAllergens: []Category{Shellfish}}
	links := []LinkInput{
		{IngredientName: "Shrimp", Contains: []Category{Shellfish}},
		{IngredientName: "Pasta", Contains: []Category{Wheat, Gluten}, Substitutable: true, Substitutes: []SubstituteInput{
			{Name: "Rice Noodles"},
		}},
		{IngredientName: "Parmesan", Contains: []Category{Milk}, Removable: true},
	}
	steps := []StepInput{
		{Number: 1, CrossContact: []Category{Fish}},
	}

	summary := Aggregate(dish, links, steps)

	want := map[Category]Status{
		Milk:      StatusCanModify,
		Fish:      StatusCannotModify,
		Shellfish: StatusCannotModify,
		Wheat:     StatusCanModify,
		Gluten:    StatusCanModify,
	}
	for category, status := range want {
		if summary.Status[category] != status {
			t.Fatalf("%s: expected %s, got %s", category, status, summary.Status[category])
		}
	}

	// All list follows vocabulary order.
	wantAll := []Category{Milk, Fish, Shellfish, Wheat, Gluten}
	if len(summary.All) != len(wantAll) {
		t.Fatalf("expected %v, got %v", wantAll, summary.All)
	}
	for i := range wantAll {
		if summary.All[i] != wantAll[i] {
			t.Fatalf("expected %v, got %v", wantAll, summary.All)
		}
	}
}

func TestAggregateIdempotent(t *testing.T) {
	links := []LinkInput{
		{IngredientName: "Soy Sauce", Contains: []Category{Soy, Wheat}},
	}

	first := Aggregate(DishInput{}, links, nil)
	second := Aggregate(DishInput{}, links, nil)

	for _, category := range Vocabulary {
		if first.Status[category] != second.Status[category] {
			t.Fatalf("aggregation not deterministic for %s", category)
		}
	}
}
