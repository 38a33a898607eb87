package dietary

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/amaralmassoterapia2-wq/safedining-sub000/internal/utils/logging"
	"github.com/amaralmassoterapia2-wq/safedining-sub000/pkg/allergen"
)

// MenuStatus is the menu-level availability of one dietary category.
type MenuStatus string

const (
	StatusAvailable   MenuStatus = "available"
	StatusLimited     MenuStatus = "limited"
	StatusUnavailable MenuStatus = "unavailable"
)

// Menus with fewer qualifying dishes than limitedThreshold are unavailable;
// availableThreshold or more qualifying dishes make the category available
// with no message.
const (
	limitedThreshold   = 1
	availableThreshold = 5
)

// Fallback nutrition thresholds applied when the external judge cannot be
// reached. Carbs in grams, sodium in milligrams, per serving.
const (
	lowCarbMaxGrams        = 30.0
	lowSodiumMaxMilligrams = 600.0
)

type (
	// Dish is the denormalized read model the classifier works over. It
	// reuses the aggregator's link/step inputs so both views are derived
	// from the same joined rows.
	Dish struct {
		ID                   string
		Name                 string
		DescriptionAllergens []allergen.Category
		Links                []allergen.LinkInput
		Steps                []allergen.StepInput
		Nutrition            Nutrition
	}

	Nutrition struct {
		Calories int
		ProteinG float64
		CarbsG   float64
		SodiumMg float64
		Known    bool
	}

	// DishResult is one qualifying dish, with the modifications (if any)
	// required to make it qualify.
	DishResult struct {
		ID                   string   `json:"id"`
		RequiresModification bool     `json:"requires_modification"`
		Modifications        []string `json:"modifications,omitempty"`
	}

	// Result is the menu-level classification of one dietary category.
	Result struct {
		Status          MenuStatus   `json:"status"`
		AvailableDishes []DishResult `json:"available_dishes"`
		Reason          string       `json:"reason,omitempty"`
		Warning         string       `json:"warning,omitempty"`
	}

	// StyleDishInput is the structured dish data handed to the external
	// judge for dietary-style categories.
	StyleDishInput struct {
		ID          string               `json:"id"`
		Name        string               `json:"name"`
		Description string               `json:"description"`
		Ingredients []StyleIngredient    `json:"ingredients"`
		Nutrition   StyleNutritionFields `json:"nutrition"`
	}

	StyleIngredient struct {
		Name          string `json:"name"`
		Removable     bool   `json:"removable"`
		Substitutable bool   `json:"substitutable"`
	}

	StyleNutritionFields struct {
		Calories int     `json:"calories"`
		ProteinG float64 `json:"protein_g"`
		CarbsG   float64 `json:"carbs_g"`
		SodiumMg float64 `json:"sodium_mg"`
	}

	// StyleVerdict is the judge's per-dish answer.
	StyleVerdict struct {
		DishID               string   `json:"dish_id"`
		Safe                 bool     `json:"safe"`
		RequiresModification bool     `json:"requires_modification"`
		Modifications        []string `json:"modifications,omitempty"`
	}

	// StyleJudge is the external classification collaborator for categories
	// that need semantic judgment (is chicken broth vegetarian-breaking?).
	StyleJudge interface {
		JudgeDietaryStyle(ctx context.Context, category string, dishes []StyleDishInput) ([]StyleVerdict, error)
	}
)

// Classify computes which dishes qualify for the dietary category and the
// menu-level status. Allergen-free categories are computed locally;
// dietary-style categories are delegated to the judge, falling back to local
// allergen/nutrition reasoning when the judge fails.
func Classify(ctx context.Context, id CategoryID, dishes []Dish, judge StyleJudge) Result {
	var qualifying []DishResult

	switch {
	case !IsKnownCategory(id):
		return deriveStatus(id, nil)
	case IsStyleCategory(id):
		qualifying = classifyStyle(ctx, id, dishes, judge)
	default:
		qualifying = classifyAllergenFree(id, dishes)
	}

	return deriveStatus(id, qualifying)
}

func classifyAllergenFree(id CategoryID, dishes []Dish) []DishResult {
	disqualifying := allergenFree[id]
	var out []DishResult
	for _, dish := range dishes {
		if result, ok := evaluateDish(dish, disqualifying); ok {
			out = append(out, result)
		}
	}
	return out
}

// evaluateDish checks one dish against a set of disqualifying allergens. For
// every disqualifying allergen the dish must either not contain it, or each
// contributing source must have an escape: a removable ingredient, a
// substitute free of the allergen, or a cooking step marked modifiable for
// it. One source with no escape blocks the dish entirely.
func evaluateDish(dish Dish, disqualifying []allergen.Category) (DishResult, bool) {
	var modifications []string

	for _, bad := range disqualifying {
		if allergen.Contains(dish.DescriptionAllergens, bad) {
			// Description-level allergens have no modification escape.
			return DishResult{}, false
		}

		for _, link := range dish.Links {
			if !allergen.Contains(link.Contains, bad) {
				continue
			}
			switch {
			case link.Removable:
				modifications = append(modifications, fmt.Sprintf("Remove %s", link.IngredientName))
			case link.Substitutable:
				substitute, ok := safeSubstitute(link, bad)
				if !ok {
					return DishResult{}, false
				}
				modifications = append(modifications, fmt.Sprintf("Substitute %s with %s", link.IngredientName, substitute))
			default:
				return DishResult{}, false
			}
		}

		for _, step := range dish.Steps {
			if !allergen.Contains(step.CrossContact, bad) {
				continue
			}
			if !step.Modifiable || !allergen.Contains(step.ModifiableAllergens, bad) {
				return DishResult{}, false
			}
			if step.Note != "" {
				modifications = append(modifications, fmt.Sprintf("Step %d: %s", step.Number, step.Note))
			} else {
				modifications = append(modifications, fmt.Sprintf("Adjust step %d", step.Number))
			}
		}
	}

	return DishResult{
		ID:                   dish.ID,
		RequiresModification: len(modifications) > 0,
		Modifications:        dedupe(modifications),
	}, true
}

// safeSubstitute returns the first named substitute that is itself free of
// the disqualifying allergen.
func safeSubstitute(link allergen.LinkInput, bad allergen.Category) (string, bool) {
	for _, substitute := range link.Substitutes {
		if !allergen.Contains(substitute.Contains, bad) {
			return substitute.Name, true
		}
	}
	return "", false
}

func classifyStyle(ctx context.Context, id CategoryID, dishes []Dish, judge StyleJudge) []DishResult {
	if judge != nil {
		verdicts, err := judge.JudgeDietaryStyle(ctx, string(id), styleInputs(dishes))
		if err == nil {
			return resultsFromVerdicts(verdicts)
		}
		logging.LogWarn("dietary style judgment failed, using local fallback",
			zap.String("category", string(id)),
			zap.Error(err),
		)
	}
	return styleFallback(id, dishes)
}

func styleInputs(dishes []Dish) []StyleDishInput {
	out := make([]StyleDishInput, 0, len(dishes))
	for _, dish := range dishes {
		input := StyleDishInput{
			ID:   dish.ID,
			Name: dish.Name,
			Nutrition: StyleNutritionFields{
				Calories: dish.Nutrition.Calories,
				ProteinG: dish.Nutrition.ProteinG,
				CarbsG:   dish.Nutrition.CarbsG,
				SodiumMg: dish.Nutrition.SodiumMg,
			},
		}
		for _, link := range dish.Links {
			input.Ingredients = append(input.Ingredients, StyleIngredient{
				Name:          link.IngredientName,
				Removable:     link.Removable,
				Substitutable: link.Substitutable,
			})
		}
		out = append(out, input)
	}
	return out
}

func resultsFromVerdicts(verdicts []StyleVerdict) []DishResult {
	var out []DishResult
	for _, verdict := range verdicts {
		if !verdict.Safe || verdict.DishID == "" {
			continue
		}
		out = append(out, DishResult{
			ID:                   verdict.DishID,
			RequiresModification: verdict.RequiresModification,
			Modifications:        verdict.Modifications,
		})
	}
	return out
}

// styleFallback is local, conservative reasoning used when the judge is
// unreachable: vegetarian and vegan reduce to animal-derived allergen
// categories, low-carb and low-sodium to nutrition thresholds. Dishes with
// unknown nutrition never qualify for the nutrition-based categories.
func styleFallback(id CategoryID, dishes []Dish) []DishResult {
	switch id {
	case Vegetarian:
		return classifyBlocking(dishes, vegetarianBlocking)
	case Vegan:
		return classifyBlocking(dishes, veganBlocking)
	case LowCarb:
		return classifyNutrition(dishes, func(n Nutrition) bool {
			return n.CarbsG <= lowCarbMaxGrams
		})
	case LowSodium:
		return classifyNutrition(dishes, func(n Nutrition) bool {
			return n.SodiumMg <= lowSodiumMaxMilligrams
		})
	}
	return nil
}

func classifyBlocking(dishes []Dish, blocking []allergen.Category) []DishResult {
	var out []DishResult
	for _, dish := range dishes {
		if result, ok := evaluateDish(dish, blocking); ok {
			out = append(out, result)
		}
	}
	return out
}

func classifyNutrition(dishes []Dish, qualifies func(Nutrition) bool) []DishResult {
	var out []DishResult
	for _, dish := range dishes {
		if dish.Nutrition.Known && qualifies(dish.Nutrition) {
			out = append(out, DishResult{ID: dish.ID})
		}
	}
	return out
}

func deriveStatus(id CategoryID, qualifying []DishResult) Result {
	count := len(qualifying)
	switch {
	case count < limitedThreshold:
		return Result{
			Status: StatusUnavailable,
			Reason: fmt.Sprintf("No dishes on this menu currently meet the %s requirement.", id),
		}
	case count < availableThreshold:
		return Result{
			Status:          StatusLimited,
			AvailableDishes: qualifying,
			Warning:         fmt.Sprintf("Only %d dishes on this menu meet the %s requirement.", count, id),
		}
	default:
		return Result{
			Status:          StatusAvailable,
			AvailableDishes: qualifying,
		}
	}
}

func dedupe(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
