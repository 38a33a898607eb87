package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/amaralmassoterapia2-wq/safedining-sub000/domain"
	"github.com/amaralmassoterapia2-wq/safedining-sub000/internal/api/presenters"
	"github.com/amaralmassoterapia2-wq/safedining-sub000/pkg/restaurant"
)

type (
	RestaurantHandler interface {
		OnboardRestaurant(c *fiber.Ctx) error
		GetRestaurants(c *fiber.Ctx) error
		GetRestaurant(c *fiber.Ctx) error
		AcceptTerms(c *fiber.Ctx) error
		CompleteOnboarding(c *fiber.Ctx) error
		GetMenuURL(c *fiber.Ctx) error
	}

	restaurantHandler struct {
		restaurantService restaurant.RestaurantService
		validator         *validator.Validate
	}
)

func NewRestaurantHandler(restaurantService restaurant.RestaurantService, validator *validator.Validate) RestaurantHandler {
	return &restaurantHandler{
		restaurantService: restaurantService,
		validator:         validator,
	}
}

func (h *restaurantHandler) OnboardRestaurant(c *fiber.Ctx) error {
	ownerID := c.Locals("user_id").(string)

	req := new(domain.OnboardRestaurantRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.restaurantService.OnboardRestaurant(c.Context(), *req, ownerID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedOnboardRestaurant, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessOnboardRestaurant)
}

func (h *restaurantHandler) GetRestaurants(c *fiber.Ctx) error {
	ownerID := c.Locals("user_id").(string)

	res, err := h.restaurantService.GetOwnedRestaurants(c.Context(), ownerID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRestaurant, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRestaurant)
}

func (h *restaurantHandler) GetRestaurant(c *fiber.Ctx) error {
	ownerID := c.Locals("user_id").(string)
	restaurantID := c.Params("restaurant_id")

	res, err := h.restaurantService.GetRestaurant(c.Context(), restaurantID, ownerID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForRestaurantErr(err), domain.MessageFailedGetRestaurant, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRestaurant)
}

func (h *restaurantHandler) AcceptTerms(c *fiber.Ctx) error {
	ownerID := c.Locals("user_id").(string)
	restaurantID := c.Params("restaurant_id")

	if err := h.restaurantService.AcceptTerms(c.Context(), restaurantID, ownerID); err != nil {
		return presenters.ErrorResponse(c, statusForRestaurantErr(err), domain.MessageFailedAcceptTerms, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessAcceptTerms)
}

func (h *restaurantHandler) CompleteOnboarding(c *fiber.Ctx) error {
	ownerID := c.Locals("user_id").(string)
	restaurantID := c.Params("restaurant_id")

	if err := h.restaurantService.CompleteOnboarding(c.Context(), restaurantID, ownerID); err != nil {
		return presenters.ErrorResponse(c, statusForRestaurantErr(err), domain.MessageFailedCompleteOnboarding, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessCompleteOnboarding)
}

func (h *restaurantHandler) GetMenuURL(c *fiber.Ctx) error {
	ownerID := c.Locals("user_id").(string)
	restaurantID := c.Params("restaurant_id")

	res, err := h.restaurantService.GetMenuURL(c.Context(), restaurantID, ownerID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForRestaurantErr(err), domain.MessageFailedGetMenuURL, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMenuURL)
}

func statusForRestaurantErr(err error) int {
	switch err {
	case domain.ErrRestaurantNotFound:
		return fiber.StatusNotFound
	case domain.ErrUnauthorizedRestaurant:
		return fiber.StatusForbidden
	}
	return fiber.StatusBadRequest
}
