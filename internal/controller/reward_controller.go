package controller

import (
	"fintech-admin-be/internal/dto"
	"fintech-admin-be/internal/pkg/serverutils"
	"fintech-admin-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IRewardController interface {
	RegisterRoutes(r fiber.Router)
	GetCriteria(ctx *fiber.Ctx) error
	GetCriterion(ctx *fiber.Ctx) error
	CreateCriterion(ctx *fiber.Ctx) error
	UpdateCriterion(ctx *fiber.Ctx) error
	DeleteCriterion(ctx *fiber.Ctx) error
}

type rewardController struct {
	rewardService service.RewardService
}

func NewRewardController(rewardService service.RewardService) IRewardController {
	return &rewardController{
		rewardService: rewardService,
	}
}

func (c *rewardController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/reward-criteria/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.GetCriteria)
	h.Post("", c.CreateCriterion)
	h.Get(":id", c.GetCriterion)
	h.Put(":id", c.UpdateCriterion)
	h.Delete(":id", c.DeleteCriterion)
}

func (c *rewardController) GetCriteria(ctx *fiber.Ctx) error {
	var req dto.ListRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, degraded, err := c.rewardService.ListCriteria(ctx.Context(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list reward criteria", dto.NewListResponse(res, degraded)))
}

func (c *rewardController) GetCriterion(ctx *fiber.Ctx) error {
	id, err := idParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.rewardService.GetCriterion(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show reward criterion", res))
}

func (c *rewardController) CreateCriterion(ctx *fiber.Ctx) error {
	var input map[string]any
	if err := ctx.BodyParser(&input); err != nil {
		return err
	}

	res, err := c.rewardService.CreateCriterion(ctx.Context(), input)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create reward criterion", res))
}

func (c *rewardController) UpdateCriterion(ctx *fiber.Ctx) error {
	id, err := idParam(ctx)
	if err != nil {
		return err
	}

	var input map[string]any
	if err := ctx.BodyParser(&input); err != nil {
		return err
	}

	res, err := c.rewardService.UpdateCriterion(ctx.Context(), id, input)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update reward criterion", res))
}

func (c *rewardController) DeleteCriterion(ctx *fiber.Ctx) error {
	id, err := idParam(ctx)
	if err != nil {
		return err
	}

	if err := c.rewardService.DeleteCriterion(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete reward criterion", nil))
}
