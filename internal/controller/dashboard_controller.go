package controller

import (
	"fintech-admin-be/internal/pkg/serverutils"
	"fintech-admin-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDashboardController interface {
	RegisterRoutes(r fiber.Router)
	GetStats(ctx *fiber.Ctx) error
	GetLogs(ctx *fiber.Ctx) error
	GetLogDetail(ctx *fiber.Ctx) error
}

type dashboardController struct {
	dashboardService service.DashboardService
}

func NewDashboardController(dashboardService service.DashboardService) IDashboardController {
	return &dashboardController{
		dashboardService: dashboardService,
	}
}

func (c *dashboardController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/dashboard/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("stats", c.GetStats)
	h.Get("logs", c.GetLogs)
	h.Get("logs/:id", c.GetLogDetail)
}

func (c *dashboardController) GetStats(ctx *fiber.Ctx) error {
	res, err := c.dashboardService.GetStats(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get dashboard stats", res))
}

func (c *dashboardController) GetLogs(ctx *fiber.Ctx) error {
	level := ctx.Query("level", "")
	limit := ctx.QueryInt("limit", 50)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.dashboardService.GetLogs(level, limit, offset)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get logs", res))
}

func (c *dashboardController) GetLogDetail(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	res, err := c.dashboardService.GetLogById(id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get log detail", res))
}
