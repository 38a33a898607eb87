package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/amaralmassoterapia2-wq/safedining-sub000/domain"
	"github.com/amaralmassoterapia2-wq/safedining-sub000/internal/api/presenters"
	"github.com/amaralmassoterapia2-wq/safedining-sub000/pkg/dish"
)

type (
	DishHandler interface {
		AddDish(c *fiber.Ctx) error
		GetDishes(c *fiber.Ctx) error
		GetDishDetail(c *fiber.Ctx) error
		UpdateDish(c *fiber.Ctx) error
		DeactivateDish(c *fiber.Ctx) error
		GetDishAllergenSummary(c *fiber.Ctx) error

		AddIngredientLink(c *fiber.Ctx) error
		UpdateIngredientLink(c *fiber.Ctx) error
		RemoveIngredientLink(c *fiber.Ctx) error
		AddSubstitute(c *fiber.Ctx) error
		RemoveSubstitute(c *fiber.Ctx) error

		AddCookingStep(c *fiber.Ctx) error
		UpdateCookingStep(c *fiber.Ctx) error
		DeleteCookingStep(c *fiber.Ctx) error
	}

	dishHandler struct {
		dishService dish.DishService
		validator   *validator.Validate
	}
)

func NewDishHandler(dishService dish.DishService, validator *validator.Validate) DishHandler {
	return &dishHandler{
		dishService: dishService,
		validator:   validator,
	}
}

func (h *dishHandler) AddDish(c *fiber.Ctx) error {
	ownerID := c.Locals("user_id").(string)
	restaurantID := c.Params("restaurant_id")

	req := new(domain.AddDishRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.dishService.AddDish(c.Context(), restaurantID, ownerID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddDish, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddDish)
}

func (h *dishHandler) GetDishes(c *fiber.Ctx) error {
	ownerID := c.Locals("user_id").(string)
	restaurantID := c.Params("restaurant_id")

	res, err := h.dishService.GetDishes(c.Context(), restaurantID, ownerID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDishes, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDishes)
}

func (h *dishHandler) GetDishDetail(c *fiber.Ctx) error {
	ownerID := c.Locals("user_id").(string)
	restaurantID := c.Params("restaurant_id")
	dishID := c.Params("dish_id")

	res, err := h.dishService.GetDishDetail(c.Context(), restaurantID, dishID, ownerID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForDishErr(err), domain.MessageFailedGetDishes, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDishDetail)
}

func (h *dishHandler) UpdateDish(c *fiber.Ctx) error {
	ownerID := c.Locals("user_id").(string)
	restaurantID := c.Params("restaurant_id")
	dishID := c.Params("dish_id")

	req := new(domain.UpdateDishRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.dishService.UpdateDish(c.Context(), restaurantID, dishID, ownerID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusForDishErr(err), domain.MessageFailedUpdateDish, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateDish)
}

func (h *dishHandler) DeactivateDish(c *fiber.Ctx) error {
	ownerID := c.Locals("user_id").(string)
	restaurantID := c.Params("restaurant_id")
	dishID := c.Params("dish_id")

	if err := h.dishService.DeactivateDish(c.Context(), restaurantID, dishID, ownerID); err != nil {
		return presenters.ErrorResponse(c, statusForDishErr(err), domain.MessageFailedDeleteDish, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteDish)
}

func (h *dishHandler) GetDishAllergenSummary(c *fiber.Ctx) error {
	ownerID := c.Locals("user_id").(string)
	restaurantID := c.Params("restaurant_id")
	dishID := c.Params("dish_id")

	res, err := h.dishService.GetDishAllergenSummary(c.Context(), restaurantID, dishID, ownerID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForDishErr(err), domain.MessageFailedGetDishAllergens, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDishAllergens)
}

func (h *dishHandler) AddIngredientLink(c *fiber.Ctx) error {
	ownerID := c.Locals("user_id").(string)
	restaurantID := c.Params("restaurant_id")
	dishID := c.Params("dish_id")

	req := new(domain.AddIngredientLinkRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.dishService.AddIngredientLink(c.Context(), restaurantID, dishID, ownerID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusForDishErr(err), domain.MessageFailedAddIngredientLink, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddIngredientLink)
}

func (h *dishHandler) UpdateIngredientLink(c *fiber.Ctx) error {
	ownerID := c.Locals("user_id").(string)
	restaurantID := c.Params("restaurant_id")
	dishID := c.Params("dish_id")
	linkID := c.Params("link_id")

	req := new(domain.UpdateIngredientLinkRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.dishService.UpdateIngredientLink(c.Context(), restaurantID, dishID, linkID, ownerID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusForDishErr(err), domain.MessageFailedUpdateLink, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateLink)
}

func (h *dishHandler) RemoveIngredientLink(c *fiber.Ctx) error {
	ownerID := c.Locals("user_id").(string)
	restaurantID := c.Params("restaurant_id")
	dishID := c.Params("dish_id")
	linkID := c.Params("link_id")

	if err := h.dishService.RemoveIngredientLink(c.Context(), restaurantID, dishID, linkID, ownerID); err != nil {
		return presenters.ErrorResponse(c, statusForDishErr(err), domain.MessageFailedRemoveLink, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveLink)
}

func (h *dishHandler) AddSubstitute(c *fiber.Ctx) error {
	ownerID := c.Locals("user_id").(string)
	restaurantID := c.Params("restaurant_id")
	dishID := c.Params("dish_id")
	linkID := c.Params("link_id")

	req := new(domain.AddSubstituteRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.dishService.AddSubstitute(c.Context(), restaurantID, dishID, linkID, ownerID, *req)
	if err != nil {
		code := statusForDishErr(err)
		if err == domain.ErrLinkNotSubstitutable {
			code = fiber.StatusConflict
		}
		return presenters.ErrorResponse(c, code, domain.MessageFailedAddSubstitute, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddSubstitute)
}

func (h *dishHandler) RemoveSubstitute(c *fiber.Ctx) error {
	ownerID := c.Locals("user_id").(string)
	restaurantID := c.Params("restaurant_id")
	dishID := c.Params("dish_id")
	linkID := c.Params("link_id")
	substituteID := c.Params("substitute_id")

	if err := h.dishService.RemoveSubstitute(c.Context(), restaurantID, dishID, linkID, substituteID, ownerID); err != nil {
		return presenters.ErrorResponse(c, statusForDishErr(err), domain.MessageFailedRemoveSubstitute, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveSubstitute)
}

func (h *dishHandler) AddCookingStep(c *fiber.Ctx) error {
	ownerID := c.Locals("user_id").(string)
	restaurantID := c.Params("restaurant_id")
	dishID := c.Params("dish_id")

	req := new(domain.AddCookingStepRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.dishService.AddCookingStep(c.Context(), restaurantID, dishID, ownerID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusForDishErr(err), domain.MessageFailedAddStep, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddStep)
}

func (h *dishHandler) UpdateCookingStep(c *fiber.Ctx) error {
	ownerID := c.Locals("user_id").(string)
	restaurantID := c.Params("restaurant_id")
	dishID := c.Params("dish_id")
	stepID := c.Params("step_id")

	req := new(domain.UpdateCookingStepRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.dishService.UpdateCookingStep(c.Context(), restaurantID, dishID, stepID, ownerID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusForDishErr(err), domain.MessageFailedUpdateStep, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateStep)
}

func (h *dishHandler) DeleteCookingStep(c *fiber.Ctx) error {
	ownerID := c.Locals("user_id").(string)
	restaurantID := c.Params("restaurant_id")
	dishID := c.Params("dish_id")
	stepID := c.Params("step_id")

	if err := h.dishService.DeleteCookingStep(c.Context(), restaurantID, dishID, stepID, ownerID); err != nil {
		return presenters.ErrorResponse(c, statusForDishErr(err), domain.MessageFailedDeleteStep, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteStep)
}

func statusForDishErr(err error) int {
	switch err {
	case domain.ErrDishNotFound, domain.ErrLinkNotFound, domain.ErrStepNotFound,
		domain.ErrSubstituteNotFound, domain.ErrIngredientNotFound, domain.ErrRestaurantNotFound:
		return fiber.StatusNotFound
	case domain.ErrUnauthorizedRestaurant:
		return fiber.StatusForbidden
	}
	return fiber.StatusBadRequest
}
