package entities

import (
	"github.com/google/uuid"
)

type Ingredient struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RestaurantID uuid.UUID `gorm:"uniqueIndex:idx_restaurant_ingredient" json:"restaurant_id"`
	Name         string    `json:"name"`
	// NameKey is the lowercased name backing the case-insensitive
	// per-restaurant uniqueness constraint.
	NameKey           string `gorm:"uniqueIndex:idx_restaurant_ingredient" json:"-"`
	ContainsAllergens string `gorm:"type:text" json:"contains_allergens"`

	Restaurant *Restaurant `gorm:"foreignKey:RestaurantID"`
	Timestamp
}
