package entities

import (
	"github.com/google/uuid"
)

type Restaurant struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	OwnerID uuid.UUID `json:"owner_id"`
	Name    string    `json:"name"`
	// QRCode is the unique token customers scan; the menu is addressed only
	// as {origin}/?qr={qr_code}.
	QRCode              string `gorm:"uniqueIndex" json:"qr_code"`
	OwnerEmail          string `json:"owner_email,omitempty"`
	TermsAccepted       bool   `json:"terms_accepted"`
	OnboardingCompleted bool   `json:"onboarding_completed"`

	Timestamp
}
