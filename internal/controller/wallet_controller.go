package controller

import (
	"fintech-admin-be/internal/dto"
	"fintech-admin-be/internal/pkg/serverutils"
	"fintech-admin-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IWalletController interface {
	RegisterRoutes(r fiber.Router)
	GetWallets(ctx *fiber.Ctx) error
	GetWallet(ctx *fiber.Ctx) error
	CreateWallet(ctx *fiber.Ctx) error
	UpdateWallet(ctx *fiber.Ctx) error
	DeleteWallet(ctx *fiber.Ctx) error
	GetHistories(ctx *fiber.Ctx) error
	CreateHistory(ctx *fiber.Ctx) error
	UpdateHistory(ctx *fiber.Ctx) error
	DeleteHistory(ctx *fiber.Ctx) error
}

type walletController struct {
	walletService service.WalletService
}

func NewWalletController(walletService service.WalletService) IWalletController {
	return &walletController{
		walletService: walletService,
	}
}

func (c *walletController) RegisterRoutes(r fiber.Router) {
	wallets := r.Group("/wallets/v1")
	wallets.Use(serverutils.JwtMiddleware)
	wallets.Get("", c.GetWallets)
	wallets.Post("", c.CreateWallet)
	wallets.Get(":id", c.GetWallet)
	wallets.Put(":id", c.UpdateWallet)
	wallets.Delete(":id", c.DeleteWallet)

	histories := r.Group("/wallet-histories/v1")
	histories.Use(serverutils.JwtMiddleware)
	histories.Get("", c.GetHistories)
	histories.Post("", c.CreateHistory)
	histories.Put(":id", c.UpdateHistory)
	histories.Delete(":id", c.DeleteHistory)
}

func (c *walletController) GetWallets(ctx *fiber.Ctx) error {
	var req dto.ListRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, degraded, err := c.walletService.ListWallets(ctx.Context(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list wallets", dto.NewListResponse(res, degraded)))
}

func (c *walletController) GetWallet(ctx *fiber.Ctx) error {
	id, err := idParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.walletService.GetWallet(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show wallet", res))
}

func (c *walletController) CreateWallet(ctx *fiber.Ctx) error {
	var input map[string]any
	if err := ctx.BodyParser(&input); err != nil {
		return err
	}

	res, err := c.walletService.CreateWallet(ctx.Context(), input)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create wallet", res))
}

func (c *walletController) UpdateWallet(ctx *fiber.Ctx) error {
	id, err := idParam(ctx)
	if err != nil {
		return err
	}

	var input map[string]any
	if err := ctx.BodyParser(&input); err != nil {
		return err
	}

	res, err := c.walletService.UpdateWallet(ctx.Context(), id, input)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update wallet", res))
}

func (c *walletController) DeleteWallet(ctx *fiber.Ctx) error {
	id, err := idParam(ctx)
	if err != nil {
		return err
	}

	if err := c.walletService.DeleteWallet(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete wallet", nil))
}

func (c *walletController) GetHistories(ctx *fiber.Ctx) error {
	var req dto.ListRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, degraded, err := c.walletService.ListHistories(ctx.Context(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list wallet histories", dto.NewListResponse(res, degraded)))
}

func (c *walletController) CreateHistory(ctx *fiber.Ctx) error {
	var input map[string]any
	if err := ctx.BodyParser(&input); err != nil {
		return err
	}

	res, err := c.walletService.CreateHistory(ctx.Context(), input)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create wallet history", res))
}

func (c *walletController) UpdateHistory(ctx *fiber.Ctx) error {
	id, err := idParam(ctx)
	if err != nil {
		return err
	}

	var input map[string]any
	if err := ctx.BodyParser(&input); err != nil {
		return err
	}

	res, err := c.walletService.UpdateHistory(ctx.Context(), id, input)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update wallet history", res))
}

func (c *walletController) DeleteHistory(ctx *fiber.Ctx) error {
	id, err := idParam(ctx)
	if err != nil {
		return err
	}

	if err := c.walletService.DeleteHistory(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete wallet history", nil))
}
