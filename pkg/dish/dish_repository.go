package dish

import (
	"context"

	"gorm.io/gorm"

	"github.com/amaralmassoterapia2-wq/safedining-sub000/entities"
)

type (
	DishRepository interface {
		CreateDish(ctx context.Context, dish *entities.Dish) error
		GetDishByID(ctx context.Context, id string) (*entities.Dish, error)
		GetDishes(ctx context.Context, restaurantID string) ([]*entities.Dish, error)
		GetActiveDishes(ctx context.Context, restaurantID string) ([]*entities.Dish, error)
		UpdateDish(ctx context.Context, dish *entities.Dish) error

		CreateLink(ctx context.Context, link *entities.DishIngredientLink) error
		GetLinkByID(ctx context.Context, id string) (*entities.DishIngredientLink, error)
		GetLinksByDish(ctx context.Context, dishID string) ([]*entities.DishIngredientLink, error)
		UpdateLink(ctx context.Context, link *entities.DishIngredientLink) error
		DeleteLink(ctx context.Context, id string) error

		CreateSubstitute(ctx context.Context, substitute *entities.Substitute) error
		GetSubstituteByID(ctx context.Context, id string) (*entities.Substitute, error)
		DeleteSubstitute(ctx context.Context, id string) error
		DeleteSubstitutesByLink(ctx context.Context, linkID string) error

		CreateStep(ctx context.Context, step *entities.CookingStep) error
		GetStepByID(ctx context.Context, id string) (*entities.CookingStep, error)
		GetStepsByDish(ctx context.Context, dishID string) ([]*entities.CookingStep, error)
		UpdateStep(ctx context.Context, step *entities.CookingStep) error
		DeleteStepAndRenumber(ctx context.Context, step *entities.CookingStep) error
	}

	dishRepository struct {
		db *gorm.DB
	}
)

func NewDishRepository(db *gorm.DB) DishRepository {
	return &dishRepository{db: db}
}

func (r *dishRepository) CreateDish(ctx context.Context, dish *entities.Dish) error {
	return r.db.WithContext(ctx).Create(dish).Error
}

func (r *dishRepository) GetDishByID(ctx context.Context, id string) (*entities.Dish, error) {
	var dish entities.Dish
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&dish).Error; err != nil {
		return nil, err
	}
	return &dish, nil
}

func (r *dishRepository) GetDishes(ctx context.Context, restaurantID string) ([]*entities.Dish, error) {
	var dishes []*entities.Dish
	if err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("name asc").
		Find(&dishes).Error; err != nil {
		return nil, err
	}
	return dishes, nil
}

func (r *dishRepository) GetActiveDishes(ctx context.Context, restaurantID string) ([]*entities.Dish, error) {
	var dishes []*entities.Dish
	if err := r.db.WithContext(ctx).
		Where("restaurant_id = ? AND is_active = ?", restaurantID, true).
		Order("category asc, name asc").
		Find(&dishes).Error; err != nil {
		return nil, err
	}
	return dishes, nil
}

func (r *dishRepository) UpdateDish(ctx context.Context, dish *entities.Dish) error {
	return r.db.WithContext(ctx).Save(dish).Error
}

func (r *dishRepository) CreateLink(ctx context.Context, link *entities.DishIngredientLink) error {
	return r.db.WithContext(ctx).Create(link).Error
}

func (r *dishRepository) GetLinkByID(ctx context.Context, id string) (*entities.DishIngredientLink, error) {
	var link entities.DishIngredientLink
	if err := r.db.WithContext(ctx).
		Preload("Ingredient").
		Preload("Substitutes.Ingredient").
		Where("id = ?", id).
		First(&link).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *dishRepository) GetLinksByDish(ctx context.Context, dishID string) ([]*entities.DishIngredientLink, error) {
	var links []*entities.DishIngredientLink
	if err := r.db.WithContext(ctx).
		Preload("Ingredient").
		Preload("Substitutes.Ingredient").
		Where("dish_id = ?", dishID).
		Order("created_at asc").
		Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

func (r *dishRepository) UpdateLink(ctx context.Context, link *entities.DishIngredientLink) error {
	return r.db.WithContext(ctx).Save(link).Error
}

func (r *dishRepository) DeleteLink(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("link_id = ?", id).Delete(&entities.Substitute{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.DishIngredientLink{}).Error
	})
}

func (r *dishRepository) CreateSubstitute(ctx context.Context, substitute *entities.Substitute) error {
	return r.db.WithContext(ctx).Create(substitute).Error
}

func (r *dishRepository) GetSubstituteByID(ctx context.Context, id string) (*entities.Substitute, error) {
	var substitute entities.Substitute
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&substitute).Error; err != nil {
		return nil, err
	}
	return &substitute, nil
}

func (r *dishRepository) DeleteSubstitute(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Substitute{}).Error
}

func (r *dishRepository) DeleteSubstitutesByLink(ctx context.Context, linkID string) error {
	return r.db.WithContext(ctx).Where("link_id = ?", linkID).Delete(&entities.Substitute{}).Error
}

func (r *dishRepository) CreateStep(ctx context.Context, step *entities.CookingStep) error {
	return r.db.WithContext(ctx).Create(step).Error
}

func (r *dishRepository) GetStepByID(ctx context.Context, id string) (*entities.CookingStep, error) {
	var step entities.CookingStep
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&step).Error; err != nil {
		return nil, err
	}
	return &step, nil
}

func (r *dishRepository) GetStepsByDish(ctx context.Context, dishID string) ([]*entities.CookingStep, error) {
	var steps []*entities.CookingStep
	if err := r.db.WithContext(ctx).
		Where("dish_id = ?", dishID).
		Order("step_number asc").
		Find(&steps).Error; err != nil {
		return nil, err
	}
	return steps, nil
}

func (r *dishRepository) UpdateStep(ctx context.Context, step *entities.CookingStep) error {
	return r.db.WithContext(ctx).Save(step).Error
}

// DeleteStepAndRenumber removes a step and closes the gap so step numbers
// stay 1-based and contiguous.
func (r *dishRepository) DeleteStepAndRenumber(ctx context.Context, step *entities.CookingStep) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", step.ID).Delete(&entities.CookingStep{}).Error; err != nil {
			return err
		}
		return tx.Model(&entities.CookingStep{}).
			Where("dish_id = ? AND step_number > ?", step.DishID, step.StepNumber).
			Update("step_number", gorm.Expr("step_number - 1")).Error
	})
}
