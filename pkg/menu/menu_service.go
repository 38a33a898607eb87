package menu

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/amaralmassoterapia2-wq/safedining-sub000/domain"
	"github.com/amaralmassoterapia2-wq/safedining-sub000/entities"
	"github.com/amaralmassoterapia2-wq/safedining-sub000/internal/utils/mailing"
	"github.com/amaralmassoterapia2-wq/safedining-sub000/pkg/allergen"
	"github.com/amaralmassoterapia2-wq/safedining-sub000/pkg/customer"
	"github.com/amaralmassoterapia2-wq/safedining-sub000/pkg/dietary"
	"github.com/amaralmassoterapia2-wq/safedining-sub000/pkg/dish"
	"github.com/amaralmassoterapia2-wq/safedining-sub000/pkg/restaurant"
)

type (
	MenuService interface {
		// GetCustomerMenu resolves the qr token and returns the active
		// dishes with per-dish safety relative to the caller's profile.
		GetCustomerMenu(ctx context.Context, qrCode string, sessionKey string) (domain.CustomerMenuResponse, error)
		GetDietaryAvailability(ctx context.Context, qrCode string, filter string) (domain.DietaryAvailabilityResponse, error)

		GetAllergenMatrix(ctx context.Context, restaurantID string, ownerID string) (domain.AllergenMatrixResponse, error)
		ExportMenuCSV(ctx context.Context, restaurantID string, ownerID string) ([]byte, string, error)
		EmailMenuExport(ctx context.Context, restaurantID string, ownerID string, req domain.EmailExportRequest) error
	}

	menuService struct {
		restaurantRepository restaurant.RestaurantRepository
		restaurantService    restaurant.RestaurantService
		dishRepository       dish.DishRepository
		dishService          dish.DishService
		customerService      customer.CustomerService
		styleJudge           dietary.StyleJudge
	}
)

func NewMenuService(
	restaurantRepository restaurant.RestaurantRepository,
	restaurantService restaurant.RestaurantService,
	dishRepository dish.DishRepository,
	dishService dish.DishService,
	customerService customer.CustomerService,
	styleJudge dietary.StyleJudge,
) MenuService {
	return &menuService{
		restaurantRepository: restaurantRepository,
		restaurantService:    restaurantService,
		dishRepository:       dishRepository,
		dishService:          dishService,
		customerService:      customerService,
		styleJudge:           styleJudge,
	}
}

func (s *menuService) GetCustomerMenu(ctx context.Context, qrCode string, sessionKey string) (domain.CustomerMenuResponse, error) {
	found, err := s.resolveQR(ctx, qrCode)
	if err != nil {
		return domain.CustomerMenuResponse{}, err
	}

	dishes, err := s.dishRepository.GetActiveDishes(ctx, found.ID.String())
	if err != nil {
		return domain.CustomerMenuResponse{}, err
	}

	declared := s.customerService.DeclaredAllergens(ctx, sessionKey)

	response := domain.CustomerMenuResponse{
		RestaurantID:      found.ID.String(),
		RestaurantName:    found.Name,
		DeclaredAllergens: allergen.CategoryStrings(declared),
		Dishes:            make([]domain.CustomerMenuDish, 0, len(dishes)),
	}

	for _, d := range dishes {
		summary, err := s.dishService.AggregateAllergens(ctx, d)
		if err != nil {
			return domain.CustomerMenuResponse{}, err
		}

		perAllergen := make(map[string]string, len(summary.Status))
		for category, status := range summary.Status {
			perAllergen[string(category)] = string(status)
		}

		response.Dishes = append(response.Dishes, domain.CustomerMenuDish{
			ID:                d.ID.String(),
			Name:              d.Name,
			Category:          d.Category,
			Price:             d.Price,
			Description:       d.Description,
			AllAllergens:      allergen.CategoryStrings(summary.All),
			PerAllergenStatus: perAllergen,
			Safety:            dishSafety(summary, declared),
		})
	}
	return response, nil
}

func (s *menuService) GetDietaryAvailability(ctx context.Context, qrCode string, filter string) (domain.DietaryAvailabilityResponse, error) {
	found, err := s.resolveQR(ctx, qrCode)
	if err != nil {
		return domain.DietaryAvailabilityResponse{}, err
	}

	categories := dietary.Categories
	if filter != "" {
		id := dietary.CategoryID(strings.ToLower(strings.TrimSpace(filter)))
		if !dietary.IsKnownCategory(id) {
			return domain.DietaryAvailabilityResponse{}, domain.ErrUnknownDietaryFilter
		}
		categories = []dietary.CategoryID{id}
	}

	dishes, err := s.loadClassifierDishes(ctx, found.ID.String())
	if err != nil {
		return domain.DietaryAvailabilityResponse{}, err
	}

	response := domain.DietaryAvailabilityResponse{
		RestaurantID: found.ID.String(),
		Categories:   make([]domain.DietaryAvailabilityEntry, 0, len(categories)),
	}
	for _, id := range categories {
		result := dietary.Classify(ctx, id, dishes, s.styleJudge)

		entry := domain.DietaryAvailabilityEntry{
			Category: string(id),
			Status:   string(result.Status),
			Reason:   result.Reason,
			Warning:  result.Warning,
		}
		for _, qualified := range result.AvailableDishes {
			entry.AvailableDishes = append(entry.AvailableDishes, domain.DietaryDishEntry{
				ID:                   qualified.ID,
				RequiresModification: qualified.RequiresModification,
				Modifications:        qualified.Modifications,
			})
		}
		response.Categories = append(response.Categories, entry)
	}
	return response, nil
}

func (s *menuService) GetAllergenMatrix(ctx context.Context, restaurantID string, ownerID string) (domain.AllergenMatrixResponse, error) {
	if _, err := s.restaurantService.RequireOwned(ctx, restaurantID, ownerID); err != nil {
		return domain.AllergenMatrixResponse{}, err
	}

	dishes, err := s.dishRepository.GetActiveDishes(ctx, restaurantID)
	if err != nil {
		return domain.AllergenMatrixResponse{}, err
	}

	response := domain.AllergenMatrixResponse{
		Vocabulary: allergen.CategoryStrings(allergen.Vocabulary),
		Rows:       make([]domain.AllergenMatrixRow, 0, len(dishes)),
	}
	for _, d := range dishes {
		summary, err := s.dishService.AggregateAllergens(ctx, d)
		if err != nil {
			return domain.AllergenMatrixResponse{}, err
		}

		statuses := make(map[string]string, len(summary.Status))
		for category, status := range summary.Status {
			statuses[string(category)] = string(status)
		}
		response.Rows = append(response.Rows, domain.AllergenMatrixRow{
			DishID:   d.ID.String(),
			DishName: d.Name,
			Statuses: statuses,
		})
	}
	return response, nil
}

func (s *menuService) ExportMenuCSV(ctx context.Context, restaurantID string, ownerID string) ([]byte, string, error) {
	owned, err := s.restaurantService.RequireOwned(ctx, restaurantID, ownerID)
	if err != nil {
		return nil, "", err
	}

	rows, err := s.loadExportRows(ctx, restaurantID)
	if err != nil {
		return nil, "", err
	}

	data, err := WriteCSV(rows)
	if err != nil {
		return nil, "", err
	}
	return data, exportFilename(owned.Name), nil
}

func (s *menuService) EmailMenuExport(ctx context.Context, restaurantID string, ownerID string, req domain.EmailExportRequest) error {
	owned, err := s.restaurantService.RequireOwned(ctx, restaurantID, ownerID)
	if err != nil {
		return err
	}

	toEmail := strings.TrimSpace(req.Email)
	if toEmail == "" {
		toEmail = owned.OwnerEmail
	}
	if toEmail == "" {
		return domain.ErrNoOwnerEmail
	}

	rows, err := s.loadExportRows(ctx, restaurantID)
	if err != nil {
		return err
	}
	data, err := WriteCSV(rows)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Menu export for %s", owned.Name)
	body := fmt.Sprintf("<p>Attached is the current menu export for <b>%s</b>, including allergen and modification details per dish.</p>", owned.Name)
	return mailing.SendMailWithAttachment(toEmail, subject, body, exportFilename(owned.Name), data)
}

func (s *menuService) resolveQR(ctx context.Context, qrCode string) (*entities.Restaurant, error) {
	qrCode = strings.TrimSpace(qrCode)
	if qrCode == "" {
		return nil, domain.ErrQRCodeRequired
	}

	found, err := s.restaurantRepository.GetRestaurantByQRCode(ctx, qrCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUnknownQRCode
		}
		return nil, err
	}
	if !found.OnboardingCompleted {
		return nil, domain.ErrMenuNotPublished
	}
	return found, nil
}

// loadClassifierDishes builds the denormalized read models the dietary
// classifier works over.
func (s *menuService) loadClassifierDishes(ctx context.Context, restaurantID string) ([]dietary.Dish, error) {
	dishes, err := s.dishRepository.GetActiveDishes(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	out := make([]dietary.Dish, 0, len(dishes))
	for _, d := range dishes {
		links, steps, err := s.loadAggregateRows(ctx, d.ID.String())
		if err != nil {
			return nil, err
		}
		out = append(out, dietary.Dish{
			ID:                   d.ID.String(),
			Name:                 d.Name,
			DescriptionAllergens: allergen.Split(d.DescriptionAllergens),
			Links:                links,
			Steps:                steps,
			Nutrition: dietary.Nutrition{
				Calories: d.Calories,
				ProteinG: d.ProteinG,
				CarbsG:   d.CarbsG,
				SodiumMg: d.SodiumMg,
				Known:    d.NutritionKnown,
			},
		})
	}
	return out, nil
}

func (s *menuService) loadAggregateRows(ctx context.Context, dishID string) ([]allergen.LinkInput, []allergen.StepInput, error) {
	links, err := s.dishRepository.GetLinksByDish(ctx, dishID)
	if err != nil {
		return nil, nil, err
	}
	steps, err := s.dishRepository.GetStepsByDish(ctx, dishID)
	if err != nil {
		return nil, nil, err
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
	return linkInputs, stepInputs, nil
}

// dishSafety buckets one dish against the customer's declared allergens:
// safe when none are present, modifiable when every declared allergen in the
// dish can be modified away, unsafe otherwise.
func dishSafety(summary allergen.Summary, declared []allergen.Category) string {
	safety := domain.DishSafetySafe
	for _, category := range declared {
		switch summary.Status[category] {
		case allergen.StatusCannotModify:
			return domain.DishSafetyUnsafe
		case allergen.StatusCanModify:
			safety = domain.DishSafetyModifiable
		}
	}
	return safety
}

func exportFilename(restaurantName string) string {
	slug := strings.ToLower(strings.TrimSpace(restaurantName))
	slug = strings.ReplaceAll(slug, " ", "-")
	if slug == "" {
		slug = "menu"
	}
	return fmt.Sprintf("%s-menu-export.csv", slug)
}
