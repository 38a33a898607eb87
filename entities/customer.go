package entities

import (
	"github.com/google/uuid"
)

// CustomerProfile is the anonymous, session-keyed record of a diner's
// declared restrictions. The session key is supplied by the caller on every
// request; no expiry is modeled.
type CustomerProfile struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	SessionKey string    `gorm:"uniqueIndex" json:"session_key"`
	// Restrictions holds comma-joined dietary-restriction names;
	// CustomAllergens holds raw free-text allergen strings the customer
	// typed in, normalized at read time.
	Restrictions    string `gorm:"type:text" json:"restrictions"`
	CustomAllergens string `gorm:"type:text" json:"custom_allergens"`

	Timestamp
}

// DietaryRestriction is a named restriction customers can pick from.
type DietaryRestriction struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name string    `gorm:"uniqueIndex" json:"name"`

	Timestamp
}
