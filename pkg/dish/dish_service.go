package dish

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/amaralmassoterapia2-wq/safedining-sub000/domain"
	"github.com/amaralmassoterapia2-wq/safedining-sub000/entities"
	"github.com/amaralmassoterapia2-wq/safedining-sub000/pkg/allergen"
	"github.com/amaralmassoterapia2-wq/safedining-sub000/pkg/ingredient"
	"github.com/amaralmassoterapia2-wq/safedining-sub000/pkg/restaurant"
)

type (
	DishService interface {
		AddDish(ctx context.Context, restaurantID string, ownerID string, req domain.AddDishRequest) (domain.DishResponse, error)
		GetDishes(ctx context.Context, restaurantID string, ownerID string) ([]domain.DishResponse, error)
		GetDishDetail(ctx context.Context, restaurantID string, dishID string, ownerID string) (domain.DishDetailResponse, error)
		UpdateDish(ctx context.Context, restaurantID string, dishID string, ownerID string, req domain.UpdateDishRequest) (domain.DishResponse, error)
		DeactivateDish(ctx context.Context, restaurantID string, dishID string, ownerID string) error
		GetDishAllergenSummary(ctx context.Context, restaurantID string, dishID string, ownerID string) (domain.DishAllergenSummaryResponse, error)

		AddIngredientLink(ctx context.Context, restaurantID string, dishID string, ownerID string, req domain.AddIngredientLinkRequest) (domain.IngredientLinkResponse, error)
		UpdateIngredientLink(ctx context.Context, restaurantID string, dishID string, linkID string, ownerID string, req domain.UpdateIngredientLinkRequest) (domain.IngredientLinkResponse, error)
		RemoveIngredientLink(ctx context.Context, restaurantID string, dishID string, linkID string, ownerID string) error
		AddSubstitute(ctx context.Context, restaurantID string, dishID string, linkID string, ownerID string, req domain.AddSubstituteRequest) (domain.IngredientLinkResponse, error)
		RemoveSubstitute(ctx context.Context, restaurantID string, dishID string, linkID string, substituteID string, ownerID string) error

		AddCookingStep(ctx context.Context, restaurantID string, dishID string, ownerID string, req domain.AddCookingStepRequest) (domain.CookingStepResponse, error)
		UpdateCookingStep(ctx context.Context, restaurantID string, dishID string, stepID string, ownerID string, req domain.UpdateCookingStepRequest) (domain.CookingStepResponse, error)
		DeleteCookingStep(ctx context.Context, restaurantID string, dishID string, stepID string, ownerID string) error

		// AggregateAllergens builds the aggregation inputs for a dish from
		// its stored links and steps.
		AggregateAllergens(ctx context.Context, dish *entities.Dish) (allergen.Summary, error)
	}

	dishService struct {
		dishRepository       DishRepository
		ingredientRepository ingredient.IngredientRepository
		restaurantService    restaurant.RestaurantService
	}
)

func NewDishService(
	dishRepository DishRepository,
	ingredientRepository ingredient.IngredientRepository,
	restaurantService restaurant.RestaurantService,
) DishService {
	return &dishService{
		dishRepository:       dishRepository,
		ingredientRepository: ingredientRepository,
		restaurantService:    restaurantService,
	}
}

func (s *dishService) AddDish(ctx context.Context, restaurantID string, ownerID string, req domain.AddDishRequest) (domain.DishResponse, error) {
	owned, err := s.restaurantService.RequireOwned(ctx, restaurantID, ownerID)
	if err != nil {
		return domain.DishResponse{}, err
	}
	if req.Price < 0 {
		return domain.DishResponse{}, domain.ErrInvalidPrice
	}

	dish := &entities.Dish{
		ID:                   uuid.New(),
		RestaurantID:         owned.ID,
		Name:                 strings.TrimSpace(req.Name),
		Category:             strings.TrimSpace(req.Category),
		Price:                req.Price,
		Description:          req.Description,
		DescriptionAllergens: allergen.Join(allergen.Normalize(req.DescriptionAllergens)),
		Calories:             req.Calories,
		ProteinG:             req.ProteinG,
		CarbsG:               req.CarbsG,
		SodiumMg:             req.SodiumMg,
		NutritionKnown:       req.NutritionKnown,
		IsActive:             true,
	}

	if err := s.dishRepository.CreateDish(ctx, dish); err != nil {
		return domain.DishResponse{}, err
	}
	return toDishResponse(dish), nil
}

func (s *dishService) GetDishes(ctx context.Context, restaurantID string, ownerID string) ([]domain.DishResponse, error) {
	if _, err := s.restaurantService.RequireOwned(ctx, restaurantID, ownerID); err != nil {
		return nil, err
	}

	dishes, err := s.dishRepository.GetDishes(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.DishResponse, 0, len(dishes))
	for _, dish := range dishes {
		response = append(response, toDishResponse(dish))
	}
	return response, nil
}

func (s *dishService) GetDishDetail(ctx context.Context, restaurantID string, dishID string, ownerID string) (domain.DishDetailResponse, error) {
	if _, err := s.restaurantService.RequireOwned(ctx, restaurantID, ownerID); err != nil {
		return domain.DishDetailResponse{}, err
	}

	dish, err := s.getOwnedDish(ctx, restaurantID, dishID)
	if err != nil {
		return domain.DishDetailResponse{}, err
	}

	links, err := s.dishRepository.GetLinksByDish(ctx, dishID)
	if err != nil {
		return domain.DishDetailResponse{}, err
	}
	steps, err := s.dishRepository.GetStepsByDish(ctx, dishID)
	if err != nil {
		return domain.DishDetailResponse{}, err
	}

	detail := domain.DishDetailResponse{
		DishResponse: toDishResponse(dish),
		Ingredients:  make([]domain.IngredientLinkResponse, 0, len(links)),
		Steps:        make([]domain.CookingStepResponse, 0, len(steps)),
	}
	for _, link := range links {
		detail.Ingredients = append(detail.Ingredients, toLinkResponse(link))
	}
	for _, step := range steps {
		detail.Steps = append(detail.Steps, toStepResponse(step))
	}
	return detail, nil
}

func (s *dishService) UpdateDish(ctx context.Context, restaurantID string, dishID string, ownerID string, req domain.UpdateDishRequest) (domain.DishResponse, error) {
	if _, err := s.restaurantService.RequireOwned(ctx, restaurantID, ownerID); err != nil {
		return domain.DishResponse{}, err
	}

	dish, err := s.getOwnedDish(ctx, restaurantID, dishID)
	if err != nil {
		return domain.DishResponse{}, err
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		dish.Name = name
	}
	if category := strings.TrimSpace(req.Category); category != "" {
		dish.Category = category
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return domain.DishResponse{}, domain.ErrInvalidPrice
		}
		dish.Price = *req.Price
	}
	if req.Description != "" {
		dish.Description = req.Description
	}
	if req.DescriptionAllergens != nil {
		dish.DescriptionAllergens = allergen.Join(allergen.Normalize(req.DescriptionAllergens))
	}
	if req.Calories != nil {
		dish.Calories = *req.Calories
	}
	if req.ProteinG != nil {
		dish.ProteinG = *req.ProteinG
	}
	if req.CarbsG != nil {
		dish.CarbsG = *req.CarbsG
	}
	if req.SodiumMg != nil {
		dish.SodiumMg = *req.SodiumMg
	}
	if req.NutritionKnown != nil {
		dish.NutritionKnown = *req.NutritionKnown
	}

	if err := s.dishRepository.UpdateDish(ctx, dish); err != nil {
		return domain.DishResponse{}, err
	}
	return toDishResponse(dish), nil
}

func (s *dishService) DeactivateDish(ctx context.Context, restaurantID string, dishID string, ownerID string) error {
	if _, err := s.restaurantService.RequireOwned(ctx, restaurantID, ownerID); err != nil {
		return err
	}

	dish, err := s.getOwnedDish(ctx, restaurantID, dishID)
	if err != nil {
		return err
	}

	dish.IsActive = false
	return s.dishRepository.UpdateDish(ctx, dish)
}

func (s *dishService) GetDishAllergenSummary(ctx context.Context, restaurantID string, dishID string, ownerID string) (domain.DishAllergenSummaryResponse, error) {
	if _, err := s.restaurantService.RequireOwned(ctx, restaurantID, ownerID); err != nil {
		return domain.DishAllergenSummaryResponse{}, err
	}

	dish, err := s.getOwnedDish(ctx, restaurantID, dishID)
	if err != nil {
		return domain.DishAllergenSummaryResponse{}, err
	}

	summary, err := s.AggregateAllergens(ctx, dish)
	if err != nil {
		return domain.DishAllergenSummaryResponse{}, err
	}

	perAllergen := make(map[string]string, len(summary.Status))
	for category, status := range summary.Status {
		perAllergen[string(category)] = string(status)
	}

	return domain.DishAllergenSummaryResponse{
		DishID:            dish.ID.String(),
		AllAllergens:      allergen.CategoryStrings(summary.All),
		PerAllergenStatus: perAllergen,
	}, nil
}

func (s *dishService) AggregateAllergens(ctx context.Context, dish *entities.Dish) (allergen.Summary, error) {
	links, err := s.dishRepository.GetLinksByDish(ctx, dish.ID.String())
	if err != nil {
		return allergen.Summary{}, err
	}
	steps, err := s.dishRepository.GetStepsByDish(ctx, dish.ID.String())
	if err != nil {
		return allergen.Summary{}, err
	}
	return allergen.Aggregate(toAggregateInputs(dish, links, steps)), nil
}

func (s *dishService) AddIngredientLink(ctx context.Context, restaurantID string, dishID string, ownerID string, req domain.AddIngredientLinkRequest) (domain.IngredientLinkResponse, error) {
	if _, err := s.restaurantService.RequireOwned(ctx, restaurantID, ownerID); err != nil {
		return domain.IngredientLinkResponse{}, err
	}

	dish, err := s.getOwnedDish(ctx, restaurantID, dishID)
	if err != nil {
		return domain.IngredientLinkResponse{}, err
	}

	linked, err := s.getOwnedIngredient(ctx, restaurantID, req.IngredientID)
	if err != nil {
		return domain.IngredientLinkResponse{}, err
	}

	link := &entities.DishIngredientLink{
		ID:              uuid.New(),
		DishID:          dish.ID,
		IngredientID:    linked.ID,
		AmountValue:     req.AmountValue,
		AmountUnit:      req.AmountUnit,
		IsRemovable:     req.IsRemovable,
		IsSubstitutable: req.IsSubstitutable,
	}

	if err := s.dishRepository.CreateLink(ctx, link); err != nil {
		return domain.IngredientLinkResponse{}, err
	}
	link.Ingredient = linked
	return toLinkResponse(link), nil
}

func (s *dishService) UpdateIngredientLink(ctx context.Context, restaurantID string, dishID string, linkID string, ownerID string, req domain.UpdateIngredientLinkRequest) (domain.IngredientLinkResponse, error) {
	if _, err := s.restaurantService.RequireOwned(ctx, restaurantID, ownerID); err != nil {
		return domain.IngredientLinkResponse{}, err
	}

	link, err := s.getOwnedLink(ctx, restaurantID, dishID, linkID)
	if err != nil {
		return domain.IngredientLinkResponse{}, err
	}

	if req.AmountValue != nil {
		link.AmountValue = *req.AmountValue
	}
	if req.AmountUnit != "" {
		link.AmountUnit = req.AmountUnit
	}
	if req.IsRemovable != nil {
		link.IsRemovable = *req.IsRemovable
	}
	if req.IsSubstitutable != nil {
		link.IsSubstitutable = *req.IsSubstitutable
		// A link that stops being substitutable sheds its substitutes.
		if !link.IsSubstitutable && len(link.Substitutes) > 0 {
			if err := s.dishRepository.DeleteSubstitutesByLink(ctx, linkID); err != nil {
				return domain.IngredientLinkResponse{}, err
			}
			link.Substitutes = nil
		}
	}

	if err := s.dishRepository.UpdateLink(ctx, link); err != nil {
		return domain.IngredientLinkResponse{}, err
	}
	return toLinkResponse(link), nil
}

func (s *dishService) RemoveIngredientLink(ctx context.Context, restaurantID string, dishID string, linkID string, ownerID string) error {
	if _, err := s.restaurantService.RequireOwned(ctx, restaurantID, ownerID); err != nil {
		return err
	}

	link, err := s.getOwnedLink(ctx, restaurantID, dishID, linkID)
	if err != nil {
		return err
	}
	return s.dishRepository.DeleteLink(ctx, link.ID.String())
}

func (s *dishService) AddSubstitute(ctx context.Context, restaurantID string, dishID string, linkID string, ownerID string, req domain.AddSubstituteRequest) (domain.IngredientLinkResponse, error) {
	if _, err := s.restaurantService.RequireOwned(ctx, restaurantID, ownerID); err != nil {
		return domain.IngredientLinkResponse{}, err
	}

	link, err := s.getOwnedLink(ctx, restaurantID, dishID, linkID)
	if err != nil {
		return domain.IngredientLinkResponse{}, err
	}
	if !link.IsSubstitutable {
		return domain.IngredientLinkResponse{}, domain.ErrLinkNotSubstitutable
	}

	substituteIngredient, err := s.getOwnedIngredient(ctx, restaurantID, req.SubstituteIngredientID)
	if err != nil {
		return domain.IngredientLinkResponse{}, err
	}

	substitute := &entities.Substitute{
		ID:                     uuid.New(),
		LinkID:                 link.ID,
		SubstituteIngredientID: substituteIngredient.ID,
	}
	if err := s.dishRepository.CreateSubstitute(ctx, substitute); err != nil {
		return domain.IngredientLinkResponse{}, err
	}

	refreshed, err := s.dishRepository.GetLinkByID(ctx, linkID)
	if err != nil {
		return domain.IngredientLinkResponse{}, err
	}
	return toLinkResponse(refreshed), nil
}

func (s *dishService) RemoveSubstitute(ctx context.Context, restaurantID string, dishID string, linkID string, substituteID string, ownerID string) error {
	if _, err := s.restaurantService.RequireOwned(ctx, restaurantID, ownerID); err != nil {
		return err
	}

	link, err := s.getOwnedLink(ctx, restaurantID, dishID, linkID)
	if err != nil {
		return err
	}

	substitute, err := s.dishRepository.GetSubstituteByID(ctx, substituteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrSubstituteNotFound
		}
		return err
	}
	if substitute.LinkID != link.ID {
		return domain.ErrSubstituteNotFound
	}
	return s.dishRepository.DeleteSubstitute(ctx, substituteID)
}

func (s *dishService) AddCookingStep(ctx context.Context, restaurantID string, dishID string, ownerID string, req domain.AddCookingStepRequest) (domain.CookingStepResponse, error) {
	if _, err := s.restaurantService.RequireOwned(ctx, restaurantID, ownerID); err != nil {
		return domain.CookingStepResponse{}, err
	}

	dish, err := s.getOwnedDish(ctx, restaurantID, dishID)
	if err != nil {
		return domain.CookingStepResponse{}, err
	}

	existing, err := s.dishRepository.GetStepsByDish(ctx, dishID)
	if err != nil {
		return domain.CookingStepResponse{}, err
	}

	step := &entities.CookingStep{
		ID:                  uuid.New(),
		DishID:              dish.ID,
		StepNumber:          len(existing) + 1,
		Description:         req.Description,
		CrossContactRisk:    allergen.Join(allergen.Normalize(req.CrossContactRisk)),
		IsModifiable:        req.IsModifiable,
		ModifiableAllergens: allergen.Join(allergen.Normalize(req.ModifiableAllergens)),
		ModificationNote:    req.ModificationNote,
	}

	if err := s.dishRepository.CreateStep(ctx, step); err != nil {
		return domain.CookingStepResponse{}, err
	}
	return toStepResponse(step), nil
}

func (s *dishService) UpdateCookingStep(ctx context.Context, restaurantID string, dishID string, stepID string, ownerID string, req domain.UpdateCookingStepRequest) (domain.CookingStepResponse, error) {
	if _, err := s.restaurantService.RequireOwned(ctx, restaurantID, ownerID); err != nil {
		return domain.CookingStepResponse{}, err
	}

	step, err := s.getOwnedStep(ctx, restaurantID, dishID, stepID)
	if err != nil {
		return domain.CookingStepResponse{}, err
	}

	if req.Description != "" {
		step.Description = req.Description
	}
	if req.CrossContactRisk != nil {
		step.CrossContactRisk = allergen.Join(allergen.Normalize(req.CrossContactRisk))
	}
	if req.IsModifiable != nil {
		step.IsModifiable = *req.IsModifiable
	}
	if req.ModifiableAllergens != nil {
		step.ModifiableAllergens = allergen.Join(allergen.Normalize(req.ModifiableAllergens))
	}
	if req.ModificationNote != "" {
		step.ModificationNote = req.ModificationNote
	}

	if err := s.dishRepository.UpdateStep(ctx, step); err != nil {
		return domain.CookingStepResponse{}, err
	}
	return toStepResponse(step), nil
}

func (s *dishService) DeleteCookingStep(ctx context.Context, restaurantID string, dishID string, stepID string, ownerID string) error {
	if _, err := s.restaurantService.RequireOwned(ctx, restaurantID, ownerID); err != nil {
		return err
	}

	step, err := s.getOwnedStep(ctx, restaurantID, dishID, stepID)
	if err != nil {
		return err
	}
	return s.dishRepository.DeleteStepAndRenumber(ctx, step)
}

func (s *dishService) getOwnedDish(ctx context.Context, restaurantID string, dishID string) (*entities.Dish, error) {
	dish, err := s.dishRepository.GetDishByID(ctx, dishID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDishNotFound
		}
		return nil, err
	}
	if dish.RestaurantID.String() != restaurantID {
		return nil, domain.ErrDishNotFound
	}
	return dish, nil
}

func (s *dishService) getOwnedIngredient(ctx context.Context, restaurantID string, ingredientID string) (*entities.Ingredient, error) {
	linked, err := s.ingredientRepository.GetIngredientByID(ctx, ingredientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrIngredientNotFound
		}
		return nil, err
	}
	if linked.RestaurantID.String() != restaurantID {
		return nil, domain.ErrIngredientNotFound
	}
	return linked, nil
}

func (s *dishService) getOwnedStep(ctx context.Context, restaurantID string, dishID string, stepID string) (*entities.CookingStep, error) {
	if _, err := s.getOwnedDish(ctx, restaurantID, dishID); err != nil {
		return nil, err
	}

	step, err := s.dishRepository.GetStepByID(ctx, stepID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrStepNotFound
		}
		return nil, err
	}
	if step.DishID.String() != dishID {
		return nil, domain.ErrStepNotFound
	}
	return step, nil
}

func (s *dishService) getOwnedLink(ctx context.Context, restaurantID string, dishID string, linkID string) (*entities.DishIngredientLink, error) {
	if _, err := s.getOwnedDish(ctx, restaurantID, dishID); err != nil {
		return nil, err
	}

	link, err := s.dishRepository.GetLinkByID(ctx, linkID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLinkNotFound
		}
		return nil, err
	}
	if link.DishID.String() != dishID {
		return nil, domain.ErrLinkNotFound
	}
	return link, nil
}

// toAggregateInputs converts stored rows into aggregation inputs.
func toAggregateInputs(dish *entities.Dish, links []*entities.DishIngredientLink, steps []*entities.CookingStep) (allergen.DishInput, []allergen.LinkInput, []allergen.StepInput) {
	dishInput := allergen.DishInput{
		DescriptionAllergens: allergen.Split(dish.DescriptionAllergens),
	}

	linkInputs := make([]allergen.LinkInput, 0, len(links))
	for _, link := range links {
		input := allergen.LinkInput{
			Removable:     link.IsRemovable,
			Substitutable: link.IsSubstitutable,
		}
		if link.Ingredient != nil {
			input.IngredientName = link.Ingredient.Name
			input.Contains = allergen.Split(link.Ingredient.ContainsAllergens)
		}
		for _, substitute := range link.Substitutes {
			if substitute.Ingredient == nil {
				continue
			}
			input.Substitutes = append(input.Substitutes, allergen.SubstituteInput{
				Name:     substitute.Ingredient.Name,
				Contains: allergen.Split(substitute.Ingredient.ContainsAllergens),
			})
		}
		linkInputs = append(linkInputs, input)
	}

	stepInputs := make([]allergen.StepInput, 0, len(steps))
	for _, step := range steps {
		stepInputs = append(stepInputs, allergen.StepInput{
			Number:              step.StepNumber,
			CrossContact:        allergen.Split(step.CrossContactRisk),
			Modifiable:          step.IsModifiable,
			ModifiableAllergens: allergen.Split(step.ModifiableAllergens),
			Note:                step.ModificationNote,
		})
	}

	return dishInput, linkInputs, stepInputs
}

func toDishResponse(dish *entities.Dish) domain.DishResponse {
	return domain.DishResponse{
		ID:                   dish.ID.String(),
		Name:                 dish.Name,
		Category:             dish.Category,
		Price:                dish.Price,
		Description:          dish.Description,
		DescriptionAllergens: allergen.CategoryStrings(allergen.Split(dish.DescriptionAllergens)),
		Calories:             dish.Calories,
		ProteinG:             dish.ProteinG,
		CarbsG:               dish.CarbsG,
		SodiumMg:             dish.SodiumMg,
		IsActive:             dish.IsActive,
	}
}

func toLinkResponse(link *entities.DishIngredientLink) domain.IngredientLinkResponse {
	response := domain.IngredientLinkResponse{
		ID:              link.ID.String(),
		IngredientID:    link.IngredientID.String(),
		AmountValue:     link.AmountValue,
		AmountUnit:      link.AmountUnit,
		IsRemovable:     link.IsRemovable,
		IsSubstitutable: link.IsSubstitutable,
	}
	if link.Ingredient != nil {
		response.IngredientName = link.Ingredient.Name
		response.ContainsAllergens = allergen.CategoryStrings(allergen.Split(link.Ingredient.ContainsAllergens))
	}
	for _, substitute := range link.Substitutes {
		sub := domain.SubstituteResponse{
			ID:           substitute.ID.String(),
			IngredientID: substitute.SubstituteIngredientID.String(),
		}
		if substitute.Ingredient != nil {
			sub.IngredientName = substitute.Ingredient.Name
			sub.ContainsAllergens = allergen.CategoryStrings(allergen.Split(substitute.Ingredient.ContainsAllergens))
		}
		response.Substitutes = append(response.Substitutes, sub)
	}
	return response
}

func toStepResponse(step *entities.CookingStep) domain.CookingStepResponse {
	return domain.CookingStepResponse{
		ID:                  step.ID.String(),
		StepNumber:          step.StepNumber,
		Description:         step.Description,
		CrossContactRisk:    allergen.CategoryStrings(allergen.Split(step.CrossContactRisk)),
		IsModifiable:        step.IsModifiable,
		ModifiableAllergens: allergen.CategoryStrings(allergen.Split(step.ModifiableAllergens)),
		ModificationNote:    step.ModificationNote,
	}
}
