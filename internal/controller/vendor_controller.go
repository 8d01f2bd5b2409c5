package controller

import (
	"fintech-admin-be/internal/dto"
	"fintech-admin-be/internal/pkg/serverutils"
	"fintech-admin-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IVendorController interface {
	RegisterRoutes(r fiber.Router)
	Callback(ctx *fiber.Ctx) error
}

type vendorController struct {
	vendorService service.VendorService
}

func NewVendorController(vendorService service.VendorService) IVendorController {
	return &vendorController{
		vendorService: vendorService,
	}
}

func (c *vendorController) RegisterRoutes(r fiber.Router) {
	// Webhook from the payment vendor, authenticated by signature, not JWT.
	h := r.Group("/vendor/v1")
	h.Post("callback", c.Callback)
}

func (c *vendorController) Callback(ctx *fiber.Ctx) error {
	var req dto.VendorCallbackRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.vendorService.HandleCallback(ctx.Context(), &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Callback processed", nil))
}
