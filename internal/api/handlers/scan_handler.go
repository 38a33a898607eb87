package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/amaralmassoterapia2-wq/safedining-sub000/domain"
	"github.com/amaralmassoterapia2-wq/safedining-sub000/internal/api/presenters"
	"github.com/amaralmassoterapia2-wq/safedining-sub000/pkg/menuscan"
)

type (
	ScanHandler interface {
		UploadMenuPhoto(c *fiber.Ctx) error
		GetScan(c *fiber.Ctx) error
		ConfirmScan(c *fiber.Ctx) error
	}

	scanHandler struct {
		scanService menuscan.ScanService
		validator   *validator.Validate
	}
)

func NewScanHandler(scanService menuscan.ScanService, validator *validator.Validate) ScanHandler {
	return &scanHandler{
		scanService: scanService,
		validator:   validator,
	}
}

func (h *scanHandler) UploadMenuPhoto(c *fiber.Ctx) error {
	ownerID := c.Locals("user_id").(string)
	restaurantID := c.Params("restaurant_id")

	photo, err := c.FormFile("photo")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.scanService.UploadMenuPhoto(c.Context(), restaurantID, ownerID, photo)
	if err != nil {
		return presenters.ErrorResponse(c, statusForScanErr(err), domain.MessageFailedUploadMenuPhoto, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessUploadMenuPhoto)
}

func (h *scanHandler) GetScan(c *fiber.Ctx) error {
	ownerID := c.Locals("user_id").(string)
	restaurantID := c.Params("restaurant_id")
	scanID := c.Params("scan_id")

	res, err := h.scanService.GetScan(c.Context(), restaurantID, scanID, ownerID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForScanErr(err), domain.MessageFailedGetScan, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetScan)
}

func (h *scanHandler) ConfirmScan(c *fiber.Ctx) error {
	ownerID := c.Locals("user_id").(string)
	restaurantID := c.Params("restaurant_id")
	scanID := c.Params("scan_id")

	req := new(domain.ConfirmScanRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.scanService.ConfirmScan(c.Context(), restaurantID, scanID, ownerID, *req)
	if err != nil {
		code := statusForScanErr(err)
		if err == domain.ErrScanAlreadyResolved {
			code = fiber.StatusConflict
		}
		return presenters.ErrorResponse(c, code, domain.MessageFailedConfirmScan, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessConfirmScan)
}

func statusForScanErr(err error) int {
	switch err {
	case domain.ErrScanNotFound, domain.ErrRestaurantNotFound, domain.ErrDishNotFound:
		return fiber.StatusNotFound
	case domain.ErrUnauthorizedRestaurant:
		return fiber.StatusForbidden
	}
	return fiber.StatusBadRequest
}
