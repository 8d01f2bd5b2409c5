package controller

import (
	"fintech-admin-be/internal/dto"
	"fintech-admin-be/internal/pkg/serverutils"
	"fintech-admin-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IKycController interface {
	RegisterRoutes(r fiber.Router)
	GetKycs(ctx *fiber.Ctx) error
	GetKyc(ctx *fiber.Ctx) error
	CreateKyc(ctx *fiber.Ctx) error
	UpdateKyc(ctx *fiber.Ctx) error
	DeleteKyc(ctx *fiber.Ctx) error
	GetDetails(ctx *fiber.Ctx) error
	CreateDetail(ctx *fiber.Ctx) error
	UpdateDetail(ctx *fiber.Ctx) error
	DeleteDetail(ctx *fiber.Ctx) error
	GetLevels(ctx *fiber.Ctx) error
	CreateLevel(ctx *fiber.Ctx) error
	UpdateLevel(ctx *fiber.Ctx) error
	DeleteLevel(ctx *fiber.Ctx) error
}

type kycController struct {
	kycService service.KycService
}

func NewKycController(kycService service.KycService) IKycController {
	return &kycController{
		kycService: kycService,
	}
}

func (c *kycController) RegisterRoutes(r fiber.Router) {
	kycs := r.Group("/user-kycs/v1")
	kycs.Use(serverutils.JwtMiddleware)
	kycs.Get("", c.GetKycs)
	kycs.Post("", c.CreateKyc)
	kycs.Get(":id", c.GetKyc)
	kycs.Put(":id", c.UpdateKyc)
	kycs.Delete(":id", c.DeleteKyc)

	details := r.Group("/user-kyc-details/v1")
	details.Use(serverutils.JwtMiddleware)
	details.Get("", c.GetDetails)
	details.Post("", c.CreateDetail)
	details.Put(":id", c.UpdateDetail)
	details.Delete(":id", c.DeleteDetail)

	levels := r.Group("/kyc-levels/v1")
	levels.Use(serverutils.JwtMiddleware)
	levels.Get("", c.GetLevels)
	levels.Post("", c.CreateLevel)
	levels.Put(":id", c.UpdateLevel)
	levels.Delete(":id", c.DeleteLevel)
}

func (c *kycController) GetKycs(ctx *fiber.Ctx) error {
	var req dto.ListRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, degraded, err := c.kycService.ListKycs(ctx.Context(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list user kycs", dto.NewListResponse(res, degraded)))
}

func (c *kycController) GetKyc(ctx *fiber.Ctx) error {
	id, err := idParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.kycService.GetKyc(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show user kyc", res))
}

func (c *kycController) CreateKyc(ctx *fiber.Ctx) error {
	var input map[string]any
	if err := ctx.BodyParser(&input); err != nil {
		return err
	}

	res, err := c.kycService.CreateKyc(ctx.Context(), input)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create user kyc", res))
}

func (c *kycController) UpdateKyc(ctx *fiber.Ctx) error {
	id, err := idParam(ctx)
	if err != nil {
		return err
	}

	var input map[string]any
	if err := ctx.BodyParser(&input); err != nil {
		return err
	}

	res, err := c.kycService.UpdateKyc(ctx.Context(), id, input)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update user kyc", res))
}

func (c *kycController) DeleteKyc(ctx *fiber.Ctx) error {
	id, err := idParam(ctx)
	if err != nil {
		return err
	}

	if err := c.kycService.DeleteKyc(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete user kyc", nil))
}

func (c *kycController) GetDetails(ctx *fiber.Ctx) error {
	var req dto.ListRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, degraded, err := c.kycService.ListDetails(ctx.Context(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list user kyc details", dto.NewListResponse(res, degraded)))
}

func (c *kycController) CreateDetail(ctx *fiber.Ctx) error {
	var input map[string]any
	if err := ctx.BodyParser(&input); err != nil {
		return err
	}

	res, err := c.kycService.CreateDetail(ctx.Context(), input)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create user kyc detail", res))
}

func (c *kycController) UpdateDetail(ctx *fiber.Ctx) error {
	id, err := idParam(ctx)
	if err != nil {
		return err
	}

	var input map[string]any
	if err := ctx.BodyParser(&input); err != nil {
		return err
	}

	res, err := c.kycService.UpdateDetail(ctx.Context(), id, input)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update user kyc detail", res))
}

func (c *kycController) DeleteDetail(ctx *fiber.Ctx) error {
	id, err := idParam(ctx)
	if err != nil {
		return err
	}

	if err := c.kycService.DeleteDetail(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete user kyc detail", nil))
}

func (c *kycController) GetLevels(ctx *fiber.Ctx) error {
	var req dto.ListRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, degraded, err := c.kycService.ListLevels(ctx.Context(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list kyc levels", dto.NewListResponse(res, degraded)))
}

func (c *kycController) CreateLevel(ctx *fiber.Ctx) error {
	var input map[string]any
	if err := ctx.BodyParser(&input); err != nil {
		return err
	}

	res, err := c.kycService.CreateLevel(ctx.Context(), input)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create kyc level", res))
}

func (c *kycController) UpdateLevel(ctx *fiber.Ctx) error {
	id, err := idParam(ctx)
	if err != nil {
		return err
	}

	var input map[string]any
	if err := ctx.BodyParser(&input); err != nil {
		return err
	}

	res, err := c.kycService.UpdateLevel(ctx.Context(), id, input)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update kyc level", res))
}

func (c *kycController) DeleteLevel(ctx *fiber.Ctx) error {
	id, err := idParam(ctx)
	if err != nil {
		return err
	}

	if err := c.kycService.DeleteLevel(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete kyc level", nil))
}
