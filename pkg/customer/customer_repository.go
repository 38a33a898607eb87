package customer

import (
	"context"

	"gorm.io/gorm"

	"github.com/amaralmassoterapia2-wq/safedining-sub000/entities"
)

type (
	CustomerRepository interface {
		GetProfileBySessionKey(ctx context.Context, sessionKey string) (*entities.CustomerProfile, error)
		CreateProfile(ctx context.Context, profile *entities.CustomerProfile) error
		UpdateProfile(ctx context.Context, profile *entities.CustomerProfile) error
		GetDietaryRestrictions(ctx context.Context) ([]*entities.DietaryRestriction, error)
	}

	customerRepository struct {
		db *gorm.DB
	}
)

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) GetProfileBySessionKey(ctx context.Context, sessionKey string) (*entities.CustomerProfile, error) {
	var profile entities.CustomerProfile
	if err := r.db.WithContext(ctx).Where("session_key = ?", sessionKey).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *customerRepository) CreateProfile(ctx context.Context, profile *entities.CustomerProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *customerRepository) UpdateProfile(ctx context.Context, profile *entities.CustomerProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *customerRepository) GetDietaryRestrictions(ctx context.Context) ([]*entities.DietaryRestriction, error) {
	var restrictions []*entities.DietaryRestriction
	if err := r.db.WithContext(ctx).Order("name asc").Find(&restrictions).Error; err != nil {
		return nil, err
	}
	return restrictions, nil
}
