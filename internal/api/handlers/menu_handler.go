package handlers

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/amaralmassoterapia2-wq/safedining-sub000/domain"
	"github.com/amaralmassoterapia2-wq/safedining-sub000/internal/api/presenters"
	"github.com/amaralmassoterapia2-wq/safedining-sub000/pkg/menu"
)

type (
	MenuHandler interface {
		GetCustomerMenu(c *fiber.Ctx) error
		GetDietaryAvailability(c *fiber.Ctx) error
		GetAllergenMatrix(c *fiber.Ctx) error
		ExportMenuCSV(c *fiber.Ctx) error
		EmailMenuExport(c *fiber.Ctx) error
	}

	menuHandler struct {
		menuService menu.MenuService
		validator   *validator.Validate
	}
)

func NewMenuHandler(menuService menu.MenuService, validator *validator.Validate) MenuHandler {
	return &menuHandler{
		menuService: menuService,
		validator:   validator,
	}
}

// GetCustomerMenu is the public entry point; the qr token is the only
// addressing and the session key is optional.
func (h *menuHandler) GetCustomerMenu(c *fiber.Ctx) error {
	qrCode := c.Query("qr")
	sessionKey := c.Get("X-Session-Key")

	res, err := h.menuService.GetCustomerMenu(c.Context(), qrCode, sessionKey)
	if err != nil {
		return presenters.ErrorResponse(c, statusForMenuErr(err), domain.MessageFailedGetCustomerMenu, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCustomerMenu)
}

func (h *menuHandler) GetDietaryAvailability(c *fiber.Ctx) error {
	qrCode := c.Query("qr")
	filter := c.Query("category")

	res, err := h.menuService.GetDietaryAvailability(c.Context(), qrCode, filter)
	if err != nil {
		return presenters.ErrorResponse(c, statusForMenuErr(err), domain.MessageFailedGetDietary, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDietary)
}

func (h *menuHandler) GetAllergenMatrix(c *fiber.Ctx) error {
	ownerID := c.Locals("user_id").(string)
	restaurantID := c.Params("restaurant_id")

	res, err := h.menuService.GetAllergenMatrix(c.Context(), restaurantID, ownerID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForMenuErr(err), domain.MessageFailedGetMatrix, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMatrix)
}

func (h *menuHandler) ExportMenuCSV(c *fiber.Ctx) error {
	ownerID := c.Locals("user_id").(string)
	restaurantID := c.Params("restaurant_id")

	data, filename, err := h.menuService.ExportMenuCSV(c.Context(), restaurantID, ownerID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForMenuErr(err), domain.MessageFailedExportMenu, err)
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(data)
}

func (h *menuHandler) EmailMenuExport(c *fiber.Ctx) error {
	ownerID := c.Locals("user_id").(string)
	restaurantID := c.Params("restaurant_id")

	req := new(domain.EmailExportRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.menuService.EmailMenuExport(c.Context(), restaurantID, ownerID, *req); err != nil {
		return presenters.ErrorResponse(c, statusForMenuErr(err), domain.MessageFailedEmailExport, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessEmailExport)
}

func statusForMenuErr(err error) int {
	switch err {
	case domain.ErrUnknownQRCode, domain.ErrRestaurantNotFound:
		return fiber.StatusNotFound
	case domain.ErrUnauthorizedRestaurant:
		return fiber.StatusForbidden
	case domain.ErrMenuNotPublished:
		return fiber.StatusConflict
	}
	return fiber.StatusBadRequest
}
