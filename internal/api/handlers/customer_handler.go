package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/amaralmassoterapia2-wq/safedining-sub000/domain"
	"github.com/amaralmassoterapia2-wq/safedining-sub000/internal/api/presenters"
	"github.com/amaralmassoterapia2-wq/safedining-sub000/pkg/customer"
)

type (
	CustomerHandler interface {
		SaveProfile(c *fiber.Ctx) error
		GetProfile(c *fiber.Ctx) error
	}

	customerHandler struct {
		customerService customer.CustomerService
		validator       *validator.Validate
	}
)

func NewCustomerHandler(customerService customer.CustomerService, validator *validator.Validate) CustomerHandler {
	return &customerHandler{
		customerService: customerService,
		validator:       validator,
	}
}

func (h *customerHandler) SaveProfile(c *fiber.Ctx) error {
	sessionKey := c.Get("X-Session-Key")

	req := new(domain.SaveCustomerProfileRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.customerService.SaveProfile(c.Context(), sessionKey, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveProfile, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSaveProfile)
}

func (h *customerHandler) GetProfile(c *fiber.Ctx) error {
	sessionKey := c.Get("X-Session-Key")

	res, err := h.customerService.GetProfile(c.Context(), sessionKey)
	if err != nil {
		code := fiber.StatusBadRequest
		if err == domain.ErrProfileNotFound {
			code = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, code, domain.MessageFailedGetProfile, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetProfile)
}
