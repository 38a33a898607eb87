package ingredient

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/amaralmassoterapia2-wq/safedining-sub000/domain"
	"github.com/amaralmassoterapia2-wq/safedining-sub000/entities"
	"github.com/amaralmassoterapia2-wq/safedining-sub000/pkg/allergen"
	"github.com/amaralmassoterapia2-wq/safedining-sub000/pkg/restaurant"
)

type (
	IngredientService interface {
		AddIngredient(ctx context.Context, restaurantID string, ownerID string, req domain.AddIngredientRequest) (domain.IngredientResponse, error)
		GetIngredients(ctx context.Context, restaurantID string, ownerID string) ([]domain.IngredientResponse, error)
		UpdateIngredient(ctx context.Context, restaurantID string, ingredientID string, ownerID string, req domain.UpdateIngredientRequest) (domain.IngredientResponse, error)
		DeleteIngredient(ctx context.Context, restaurantID string, ingredientID string, ownerID string) error
	}

	ingredientService struct {
		ingredientRepository IngredientRepository
		restaurantService    restaurant.RestaurantService
		resolver             allergen.Resolver
	}
)

func NewIngredientService(
	ingredientRepository IngredientRepository,
	restaurantService restaurant.RestaurantService,
	resolver allergen.Resolver,
) IngredientService {
	return &ingredientService{
		ingredientRepository: ingredientRepository,
		restaurantService:    restaurantService,
		resolver:             resolver,
	}
}

func (s *ingredientService) AddIngredient(ctx context.Context, restaurantID string, ownerID string, req domain.AddIngredientRequest) (domain.IngredientResponse, error) {
	owned, err := s.restaurantService.RequireOwned(ctx, restaurantID, ownerID)
	if err != nil {
		return domain.IngredientResponse{}, err
	}

	name := strings.TrimSpace(req.Name)

	var allergens []allergen.Category
	if len(req.Allergens) > 0 {
		allergens = allergen.Normalize(req.Allergens)
	} else {
		allergens = s.resolver.ResolveAllergens(ctx, name)
	}

	ingredient := &entities.Ingredient{
		ID:                uuid.New(),
		RestaurantID:      owned.ID,
		Name:              name,
		NameKey:           strings.ToLower(name),
		ContainsAllergens: allergen.Join(allergens),
	}

	if err := s.ingredientRepository.CreateIngredient(ctx, ingredient); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Name collision: surface the pre-existing row instead of failing.
			existing, lookupErr := s.ingredientRepository.GetIngredientByName(ctx, restaurantID, name)
			if lookupErr != nil {
				return domain.IngredientResponse{}, err
			}
			response := toIngredientResponse(existing)
			response.AlreadyExisted = true
			return response, nil
		}
		return domain.IngredientResponse{}, err
	}

	return toIngredientResponse(ingredient), nil
}

func (s *ingredientService) GetIngredients(ctx context.Context, restaurantID string, ownerID string) ([]domain.IngredientResponse, error) {
	if _, err := s.restaurantService.RequireOwned(ctx, restaurantID, ownerID); err != nil {
		return nil, err
	}

	ingredients, err := s.ingredientRepository.GetIngredients(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.IngredientResponse, 0, len(ingredients))
	for _, ingredient := range ingredients {
		response = append(response, toIngredientResponse(ingredient))
	}
	return response, nil
}

func (s *ingredientService) UpdateIngredient(ctx context.Context, restaurantID string, ingredientID string, ownerID string, req domain.UpdateIngredientRequest) (domain.IngredientResponse, error) {
	if _, err := s.restaurantService.RequireOwned(ctx, restaurantID, ownerID); err != nil {
		return domain.IngredientResponse{}, err
	}

	ingredient, err := s.getOwnedIngredient(ctx, restaurantID, ingredientID)
	if err != nil {
		return domain.IngredientResponse{}, err
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		ingredient.Name = name
		ingredient.NameKey = strings.ToLower(name)
	}
	if req.Allergens != nil {
		ingredient.ContainsAllergens = allergen.Join(allergen.Normalize(req.Allergens))
	}

	if err := s.ingredientRepository.UpdateIngredient(ctx, ingredient); err != nil {
		return domain.IngredientResponse{}, err
	}
	return toIngredientResponse(ingredient), nil
}

func (s *ingredientService) DeleteIngredient(ctx context.Context, restaurantID string, ingredientID string, ownerID string) error {
	if _, err := s.restaurantService.RequireOwned(ctx, restaurantID, ownerID); err != nil {
		return err
	}

	ingredient, err := s.getOwnedIngredient(ctx, restaurantID, ingredientID)
	if err != nil {
		return err
	}

	links, err := s.ingredientRepository.CountLinksForIngredient(ctx, ingredientID)
	if err != nil {
		return err
	}
	if links > 0 {
		return domain.ErrIngredientInUse
	}

	return s.ingredientRepository.DeleteIngredient(ctx, ingredient.ID.String())
}

func (s *ingredientService) getOwnedIngredient(ctx context.Context, restaurantID string, ingredientID string) (*entities.Ingredient, error) {
	ingredient, err := s.ingredientRepository.GetIngredientByID(ctx, ingredientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrIngredientNotFound
		}
		return nil, err
	}
	if ingredient.RestaurantID.String() != restaurantID {
		return nil, domain.ErrIngredientNotFound
	}
	return ingredient, nil
}

func toIngredientResponse(ingredient *entities.Ingredient) domain.IngredientResponse {
	return domain.IngredientResponse{
		ID:                ingredient.ID.String(),
		Name:              ingredient.Name,
		ContainsAllergens: allergen.CategoryStrings(allergen.Split(ingredient.ContainsAllergens)),
	}
}
