package dietary

import (
	"github.com/amaralmassoterapia2-wq/safedining-sub000/pkg/allergen"
)

// CategoryID identifies one dietary category shown on the customer menu.
type CategoryID string

const (
	ShellfishFree CategoryID = "shellfish-free"
	NutFree       CategoryID = "nut-free"
	PeanutFree    CategoryID = "peanut-free"
	DairyFree     CategoryID = "dairy-free"
	GlutenFree    CategoryID = "gluten-free"
	EggFree       CategoryID = "egg-free"
	SoyFree       CategoryID = "soy-free"
	FishFree      CategoryID = "fish-free"
	SesameFree    CategoryID = "sesame-free"

	Vegetarian CategoryID = "vegetarian"
	Vegan      CategoryID = "vegan"
	LowCarb    CategoryID = "low-carb"
	LowSodium  CategoryID = "low-sodium"
)

// Categories lists every dietary category in display order.
var Categories = []CategoryID{
	ShellfishFree, NutFree, PeanutFree, DairyFree, GlutenFree,
	EggFree, SoyFree, FishFree, SesameFree,
	Vegetarian, Vegan, LowCarb, LowSodium,
}

// allergenFree maps each mechanically computed category to its disqualifying
// allergens. Gluten-free disqualifies wheat as well as the gluten category
// itself; every other category maps to exactly one vocabulary member.
var allergenFree = map[CategoryID][]allergen.Category{
	ShellfishFree: {allergen.Shellfish},
	NutFree:       {allergen.TreeNuts},
	PeanutFree:    {allergen.Peanuts},
	DairyFree:     {allergen.Milk},
	GlutenFree:    {allergen.Gluten, allergen.Wheat},
	EggFree:       {allergen.Eggs},
	SoyFree:       {allergen.Soy},
	FishFree:      {allergen.Fish},
	SesameFree:    {allergen.Sesame},
}

// Animal-derived categories used when the external judge is unavailable and
// vegetarian/vegan fall back to local allergen reasoning.
var (
	vegetarianBlocking = []allergen.Category{
		allergen.Fish, allergen.Shellfish, allergen.Mollusks,
	}
	veganBlocking = []allergen.Category{
		allergen.Milk, allergen.Eggs, allergen.Fish, allergen.Shellfish, allergen.Mollusks,
	}
)

// BlockedAllergens returns the allergens a mechanically computed category
// excludes, or nil for style categories.
func BlockedAllergens(id CategoryID) []allergen.Category {
	return allergenFree[id]
}

// IsStyleCategory reports whether the category needs semantic judgment from
// the external classifier instead of local allergen-set reasoning.
func IsStyleCategory(id CategoryID) bool {
	switch id {
	case Vegetarian, Vegan, LowCarb, LowSodium:
		return true
	}
	return false
}

// IsKnownCategory reports whether the id is one of the fixed categories.
func IsKnownCategory(id CategoryID) bool {
	for _, c := range Categories {
		if c == id {
			return true
		}
	}
	return false
}
