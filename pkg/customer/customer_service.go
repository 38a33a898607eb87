package customer

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/amaralmassoterapia2-wq/safedining-sub000/domain"
	"github.com/amaralmassoterapia2-wq/safedining-sub000/entities"
	"github.com/amaralmassoterapia2-wq/safedining-sub000/pkg/allergen"
	"github.com/amaralmassoterapia2-wq/safedining-sub000/pkg/dietary"
)

type (
	CustomerService interface {
		SaveProfile(ctx context.Context, sessionKey string, req domain.SaveCustomerProfileRequest) (domain.CustomerProfileResponse, error)
		GetProfile(ctx context.Context, sessionKey string) (domain.CustomerProfileResponse, error)

		// DeclaredAllergens resolves the profile behind a session key into
		// the normalized allergen set used for menu filtering. A missing or
		// empty session key yields an empty set, never an error.
		DeclaredAllergens(ctx context.Context, sessionKey string) []allergen.Category
	}

	customerService struct {
		customerRepository CustomerRepository
	}
)

func NewCustomerService(customerRepository CustomerRepository) CustomerService {
	return &customerService{customerRepository: customerRepository}
}

func (s *customerService) SaveProfile(ctx context.Context, sessionKey string, req domain.SaveCustomerProfileRequest) (domain.CustomerProfileResponse, error) {
	sessionKey = strings.TrimSpace(sessionKey)
	if sessionKey == "" {
		return domain.CustomerProfileResponse{}, domain.ErrSessionKeyRequired
	}

	restrictions := strings.Join(cleanList(req.Restrictions), ",")
	customAllergens := strings.Join(cleanList(req.CustomAllergens), ",")

	profile, err := s.customerRepository.GetProfileBySessionKey(ctx, sessionKey)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CustomerProfileResponse{}, err
		}
		profile = &entities.CustomerProfile{
			ID:              uuid.New(),
			SessionKey:      sessionKey,
			Restrictions:    restrictions,
			CustomAllergens: customAllergens,
		}
		if err := s.customerRepository.CreateProfile(ctx, profile); err != nil {
			return domain.CustomerProfileResponse{}, err
		}
		return toProfileResponse(profile), nil
	}

	profile.Restrictions = restrictions
	profile.CustomAllergens = customAllergens
	if err := s.customerRepository.UpdateProfile(ctx, profile); err != nil {
		return domain.CustomerProfileResponse{}, err
	}
	return toProfileResponse(profile), nil
}

func (s *customerService) GetProfile(ctx context.Context, sessionKey string) (domain.CustomerProfileResponse, error) {
	sessionKey = strings.TrimSpace(sessionKey)
	if sessionKey == "" {
		return domain.CustomerProfileResponse{}, domain.ErrSessionKeyRequired
	}

	profile, err := s.customerRepository.GetProfileBySessionKey(ctx, sessionKey)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CustomerProfileResponse{}, domain.ErrProfileNotFound
		}
		return domain.CustomerProfileResponse{}, err
	}
	return toProfileResponse(profile), nil
}

func (s *customerService) DeclaredAllergens(ctx context.Context, sessionKey string) []allergen.Category {
	sessionKey = strings.TrimSpace(sessionKey)
	if sessionKey == "" {
		return nil
	}

	profile, err := s.customerRepository.GetProfileBySessionKey(ctx, sessionKey)
	if err != nil {
		return nil
	}
	return declaredAllergens(profile)
}

// declaredAllergens unions the allergens behind named restrictions with the
// normalized free-text allergens.
func declaredAllergens(profile *entities.CustomerProfile) []allergen.Category {
	set := make(map[allergen.Category]bool)
	for _, restriction := range splitStored(profile.Restrictions) {
		for _, category := range dietary.BlockedAllergens(dietary.CategoryID(strings.ToLower(restriction))) {
			set[category] = true
		}
		// Restriction names that are themselves allergens count too.
		for _, category := range allergen.Normalize([]string{restriction}) {
			set[category] = true
		}
	}
	for _, category := range allergen.Normalize(splitStored(profile.CustomAllergens)) {
		set[category] = true
	}

	out := make([]allergen.Category, 0, len(set))
	for category := range set {
		out = append(out, category)
	}
	return allergen.SortCanonical(out)
}

func toProfileResponse(profile *entities.CustomerProfile) domain.CustomerProfileResponse {
	return domain.CustomerProfileResponse{
		SessionKey:        profile.SessionKey,
		Restrictions:      splitStored(profile.Restrictions),
		CustomAllergens:   splitStored(profile.CustomAllergens),
		DeclaredAllergens: allergen.CategoryStrings(declaredAllergens(profile)),
	}
}

func cleanList(values []string) []string {
	var out []string
	for _, value := range values {
		if v := strings.TrimSpace(value); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func splitStored(stored string) []string {
	if strings.TrimSpace(stored) == "" {
		return []string{}
	}
	return strings.Split(stored, ",")
}
