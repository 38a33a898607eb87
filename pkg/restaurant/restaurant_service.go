package restaurant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/amaralmassoterapia2-wq/safedining-sub000/domain"
	"github.com/amaralmassoterapia2-wq/safedining-sub000/entities"
	"github.com/amaralmassoterapia2-wq/safedining-sub000/internal/utils"
)

type (
	RestaurantService interface {
		OnboardRestaurant(ctx context.Context, req domain.OnboardRestaurantRequest, ownerID string) (domain.RestaurantResponse, error)
		GetRestaurant(ctx context.Context, id string, ownerID string) (domain.RestaurantResponse, error)
		GetOwnedRestaurants(ctx context.Context, ownerID string) ([]domain.RestaurantResponse, error)
		AcceptTerms(ctx context.Context, id string, ownerID string) error
		CompleteOnboarding(ctx context.Context, id string, ownerID string) error
		GetMenuURL(ctx context.Context, id string, ownerID string) (domain.MenuURLResponse, error)

		// RequireOwned resolves a restaurant and enforces owner access; used
		// by the other feature services.
		RequireOwned(ctx context.Context, id string, ownerID string) (*entities.Restaurant, error)
	}

	restaurantService struct {
		restaurantRepository RestaurantRepository
	}
)

func NewRestaurantService(restaurantRepository RestaurantRepository) RestaurantService {
	return &restaurantService{restaurantRepository: restaurantRepository}
}

func (s *restaurantService) OnboardRestaurant(ctx context.Context, req domain.OnboardRestaurantRequest, ownerID string) (domain.RestaurantResponse, error) {
	ownerUUID, err := uuid.Parse(ownerID)
	if err != nil {
		return domain.RestaurantResponse{}, domain.ErrParseUUID
	}

	restaurant := &entities.Restaurant{
		ID:         uuid.New(),
		OwnerID:    ownerUUID,
		Name:       req.Name,
		OwnerEmail: req.OwnerEmail,
		// The qr token is the only way customers address the menu.
		QRCode: strings.ReplaceAll(uuid.New().String(), "-", ""),
	}

	if err := s.restaurantRepository.CreateRestaurant(ctx, restaurant); err != nil {
		return domain.RestaurantResponse{}, err
	}

	return toRestaurantResponse(restaurant), nil
}

func (s *restaurantService) GetRestaurant(ctx context.Context, id string, ownerID string) (domain.RestaurantResponse, error) {
	restaurant, err := s.RequireOwned(ctx, id, ownerID)
	if err != nil {
		return domain.RestaurantResponse{}, err
	}
	return toRestaurantResponse(restaurant), nil
}

func (s *restaurantService) GetOwnedRestaurants(ctx context.Context, ownerID string) ([]domain.RestaurantResponse, error) {
	restaurants, err := s.restaurantRepository.GetRestaurantsByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	var response []domain.RestaurantResponse
	for _, restaurant := range restaurants {
		response = append(response, toRestaurantResponse(restaurant))
	}
	return response, nil
}

func (s *restaurantService) AcceptTerms(ctx context.Context, id string, ownerID string) error {
	restaurant, err := s.RequireOwned(ctx, id, ownerID)
	if err != nil {
		return err
	}

	restaurant.TermsAccepted = true
	return s.restaurantRepository.UpdateRestaurant(ctx, restaurant)
}

func (s *restaurantService) CompleteOnboarding(ctx context.Context, id string, ownerID string) error {
	restaurant, err := s.RequireOwned(ctx, id, ownerID)
	if err != nil {
		return err
	}

	if !restaurant.TermsAccepted {
		return domain.ErrTermsNotAccepted
	}
	if restaurant.OnboardingCompleted {
		return domain.ErrOnboardingAlreadyCompleted
	}

	restaurant.OnboardingCompleted = true
	return s.restaurantRepository.UpdateRestaurant(ctx, restaurant)
}

func (s *restaurantService) GetMenuURL(ctx context.Context, id string, ownerID string) (domain.MenuURLResponse, error) {
	restaurant, err := s.RequireOwned(ctx, id, ownerID)
	if err != nil {
		return domain.MenuURLResponse{}, err
	}

	return domain.MenuURLResponse{
		QRCode:  restaurant.QRCode,
		MenuURL: fmt.Sprintf("%s/?qr=%s", strings.TrimRight(utils.GetConfig("APP_URL"), "/"), restaurant.QRCode),
	}, nil
}

func (s *restaurantService) RequireOwned(ctx context.Context, id string, ownerID string) (*entities.Restaurant, error) {
	restaurant, err := s.restaurantRepository.GetRestaurantByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRestaurantNotFound
		}
		return nil, err
	}

	if restaurant.OwnerID.String() != ownerID {
		return nil, domain.ErrUnauthorizedRestaurant
	}

	return restaurant, nil
}

func toRestaurantResponse(restaurant *entities.Restaurant) domain.RestaurantResponse {
	return domain.RestaurantResponse{
		ID:                  restaurant.ID.String(),
		Name:                restaurant.Name,
		QRCode:              restaurant.QRCode,
		OwnerEmail:          restaurant.OwnerEmail,
		TermsAccepted:       restaurant.TermsAccepted,
		OnboardingCompleted: restaurant.OnboardingCompleted,
	}
}
