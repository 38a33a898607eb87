package entities

import (
	"github.com/google/uuid"
)

// MenuScan is one uploaded menu photo and the dishes detected on it. The
// detected items are kept as raw JSON until the staff confirms or discards
// them.
type MenuScan struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RestaurantID  uuid.UUID `json:"restaurant_id"`
	ImageURL      string    `json:"image_url,omitempty"`
	Status        string    `json:"status"` // "Pending", "Detected", "Failed", "Completed"
	DetectedItems string    `gorm:"type:text" json:"detected_items,omitempty"`

	Restaurant *Restaurant `gorm:"foreignKey:RestaurantID"`
	Timestamp
}
