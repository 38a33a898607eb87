package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/amaralmassoterapia2-wq/safedining-sub000/domain"
	"github.com/amaralmassoterapia2-wq/safedining-sub000/internal/api/presenters"
	"github.com/amaralmassoterapia2-wq/safedining-sub000/pkg/ingredient"
)

type (
	IngredientHandler interface {
		AddIngredient(c *fiber.Ctx) error
		GetIngredients(c *fiber.Ctx) error
		UpdateIngredient(c *fiber.Ctx) error
		DeleteIngredient(c *fiber.Ctx) error
	}

	ingredientHandler struct {
		ingredientService ingredient.IngredientService
		validator         *validator.Validate
	}
)

func NewIngredientHandler(ingredientService ingredient.IngredientService, validator *validator.Validate) IngredientHandler {
	return &ingredientHandler{
		ingredientService: ingredientService,
		validator:         validator,
	}
}

func (h *ingredientHandler) AddIngredient(c *fiber.Ctx) error {
	ownerID := c.Locals("user_id").(string)
	restaurantID := c.Params("restaurant_id")

	req := new(domain.AddIngredientRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.ingredientService.AddIngredient(c.Context(), restaurantID, ownerID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddIngredient, err)
	}

	code := fiber.StatusCreated
	if res.AlreadyExisted {
		code = fiber.StatusOK
	}
	return presenters.SuccessResponse(c, res, code, domain.MessageSuccessAddIngredient)
}

func (h *ingredientHandler) GetIngredients(c *fiber.Ctx) error {
	ownerID := c.Locals("user_id").(string)
	restaurantID := c.Params("restaurant_id")

	res, err := h.ingredientService.GetIngredients(c.Context(), restaurantID, ownerID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetIngredients, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetIngredients)
}

func (h *ingredientHandler) UpdateIngredient(c *fiber.Ctx) error {
	ownerID := c.Locals("user_id").(string)
	restaurantID := c.Params("restaurant_id")
	ingredientID := c.Params("ingredient_id")

	req := new(domain.UpdateIngredientRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.ingredientService.UpdateIngredient(c.Context(), restaurantID, ingredientID, ownerID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateIngredient, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateIngredient)
}

func (h *ingredientHandler) DeleteIngredient(c *fiber.Ctx) error {
	ownerID := c.Locals("user_id").(string)
	restaurantID := c.Params("restaurant_id")
	ingredientID := c.Params("ingredient_id")

	if err := h.ingredientService.DeleteIngredient(c.Context(), restaurantID, ingredientID, ownerID); err != nil {
		code := fiber.StatusBadRequest
		if err == domain.ErrIngredientNotFound {
			code = fiber.StatusNotFound
		}
		if err == domain.ErrIngredientInUse {
			code = fiber.StatusConflict
		}
		return presenters.ErrorResponse(c, code, domain.MessageFailedDeleteIngredient, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteIngredient)
}
