package entities

import (
	"github.com/google/uuid"
)

type Dish struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RestaurantID uuid.UUID `json:"restaurant_id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Price        float64   `json:"price"`
	Description  string    `json:"description"`
	// DescriptionAllergens holds the comma-joined canonical categories
	// explicitly called out in the free-text description.
	DescriptionAllergens string  `gorm:"type:text" json:"description_allergens"`
	Calories             int     `json:"calories"`
	ProteinG             float64 `json:"protein_g"`
	CarbsG               float64 `json:"carbs_g"`
	SodiumMg             float64 `json:"sodium_mg"`
	NutritionKnown       bool    `json:"nutrition_known"`
	// Dishes are soft-deleted so historical links stay valid.
	IsActive bool `gorm:"default:true" json:"is_active"`

	Restaurant *Restaurant `gorm:"foreignKey:RestaurantID"`
	Timestamp
}

type DishIngredientLink struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	DishID          uuid.UUID `json:"dish_id"`
	IngredientID    uuid.UUID `json:"ingredient_id"`
	AmountValue     float64   `json:"amount_value"`
	AmountUnit      string    `json:"amount_unit"`
	IsRemovable     bool      `json:"is_removable"`
	IsSubstitutable bool      `json:"is_substitutable"`

	Dish        *Dish        `gorm:"foreignKey:DishID"`
	Ingredient  *Ingredient  `gorm:"foreignKey:IngredientID"`
	Substitutes []Substitute `gorm:"foreignKey:LinkID"`
	Timestamp
}

// Substitute names an alternative ingredient for a link; only meaningful
// when the link is substitutable.
type Substitute struct {
	ID                     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	LinkID                 uuid.UUID `json:"link_id"`
	SubstituteIngredientID uuid.UUID `json:"substitute_ingredient_id"`

	Ingredient *Ingredient `gorm:"foreignKey:SubstituteIngredientID"`
	Timestamp
}

type CookingStep struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	DishID uuid.UUID `json:"dish_id"`
	// StepNumber is 1-based and contiguous; deleting a step renumbers the
	// rest.
	StepNumber       int    `json:"step_number"`
	Description      string `gorm:"type:text" json:"description"`
	CrossContactRisk string `gorm:"type:text" json:"cross_contact_risk"`
	IsModifiable     bool   `json:"is_modifiable"`
	// ModifiableAllergens is the subset of risks avoidable when the step is
	// modified.
	ModifiableAllergens string `gorm:"type:text" json:"modifiable_allergens"`
	ModificationNote    string `gorm:"type:text" json:"modification_note"`

	Dish *Dish `gorm:"foreignKey:DishID"`
	Timestamp
}
