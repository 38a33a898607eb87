package allergen

// Status is the per-allergen modifiability of a single dish.
type Status string

const (
	StatusNotPresent   Status = "not_present"
	StatusCanModify    Status = "can_modify"
	StatusCannotModify Status = "cannot_modify"
)

type (
	// DishInput carries the dish-level allergen signals.
	DishInput struct {
		DescriptionAllergens []Category
	}

	// LinkInput is one dish-ingredient link with its modification flags and
	// named substitutes.
	LinkInput struct {
		IngredientName string
		Contains       []Category
		Removable      bool
		Substitutable  bool
		Substitutes    []SubstituteInput
	}

	SubstituteInput struct {
		Name     string
		Contains []Category
	}

	// StepInput is one cooking step with its cross-contact risks.
	StepInput struct {
		Number              int
		CrossContact        []Category
		Modifiable          bool
		ModifiableAllergens []Category
		Note                string
	}

	// Summary is the aggregated allergen view of a dish.
	Summary struct {
		All    []Category          `json:"all_allergens"`
		Status map[Category]Status `json:"per_allergen_status"`
	}
)

// Aggregate merges allergen signals from the dish description, its cooking
// steps and its ingredient links into one deduplicated summary.
//
// The source order is the correctness-critical part: description allergens
// and non-modifiable cross-contact risks are recorded as cannot_modify first,
// and cannot_modify is absorbing; ingredient-level signals may then raise an
// allergen to can_modify only when nothing has recorded it as cannot_modify,
// while a single non-modifiable ingredient always forces cannot_modify.
func Aggregate(dish DishInput, links []LinkInput, steps []StepInput) Summary {
	status := make(map[Category]Status, len(Vocabulary))
	for _, category := range Vocabulary {
		status[category] = StatusNotPresent
	}

	// Description-level allergens are never modifiable.
	for _, category := range dish.DescriptionAllergens {
		markCannotModify(status, category)
	}

	// Cross-contact is a fixed property of the process unless the step is
	// explicitly marked modifiable for that allergen.
	for _, step := range steps {
		for _, category := range step.CrossContact {
			if step.Modifiable && Contains(step.ModifiableAllergens, category) {
				markCanModify(status, category)
			} else {
				markCannotModify(status, category)
			}
		}
	}

	for _, link := range links {
		for _, category := range link.Contains {
			if link.Removable || link.Substitutable {
				markCanModify(status, category)
			} else {
				markCannotModify(status, category)
			}
		}
	}

	var all []Category
	for _, category := range Vocabulary {
		if status[category] != StatusNotPresent {
			all = append(all, category)
		}
	}

	return Summary{All: all, Status: status}
}

func markCannotModify(status map[Category]Status, category Category) {
	if _, ok := status[category]; !ok {
		return
	}
	status[category] = StatusCannotModify
}

// markCanModify upgrades an allergen to can_modify; an existing
// cannot_modify from another source is never downgraded.
func markCanModify(status map[Category]Status, category Category) {
	current, ok := status[category]
	if !ok || current == StatusCannotModify {
		return
	}
	status[category] = StatusCanModify
}
