package controller

import (
	"fintech-admin-be/internal/dto"
	"fintech-admin-be/internal/pkg/serverutils"
	"fintech-admin-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ITransactionController interface {
	RegisterRoutes(r fiber.Router)
	GetTransactions(ctx *fiber.Ctx) error
	GetTransaction(ctx *fiber.Ctx) error
	CreateTransaction(ctx *fiber.Ctx) error
	UpdateTransaction(ctx *fiber.Ctx) error
	DeleteTransaction(ctx *fiber.Ctx) error
	GetEntries(ctx *fiber.Ctx) error
	CreateEntry(ctx *fiber.Ctx) error
	UpdateEntry(ctx *fiber.Ctx) error
	DeleteEntry(ctx *fiber.Ctx) error
	GetTrails(ctx *fiber.Ctx) error
}

type transactionController struct {
	transactionService service.TransactionService
}

func NewTransactionController(transactionService service.TransactionService) ITransactionController {
	return &transactionController{
		transactionService: transactionService,
	}
}

func (c *transactionController) RegisterRoutes(r fiber.Router) {
	txs := r.Group("/transactions/v1")
	txs.Use(serverutils.JwtMiddleware)
	txs.Get("", c.GetTransactions)
	txs.Post("", c.CreateTransaction)
	txs.Get(":id", c.GetTransaction)
	txs.Put(":id", c.UpdateTransaction)
	txs.Delete(":id", c.DeleteTransaction)

	entries := r.Group("/transaction-entries/v1")
	entries.Use(serverutils.JwtMiddleware)
	entries.Get("", c.GetEntries)
	entries.Post("", c.CreateEntry)
	entries.Put(":id", c.UpdateEntry)
	entries.Delete(":id", c.DeleteEntry)

	// Vendor trails are evidence, the admin surface only reads them.
	trails := r.Group("/vendor-responses/v1")
	trails.Use(serverutils.JwtMiddleware)
	trails.Get("", c.GetTrails)
}

func (c *transactionController) GetTransactions(ctx *fiber.Ctx) error {
	var req dto.ListRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, degraded, err := c.transactionService.ListTransactions(ctx.Context(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list transactions", dto.NewListResponse(res, degraded)))
}

func (c *transactionController) GetTransaction(ctx *fiber.Ctx) error {
	id, err := idParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.transactionService.GetTransaction(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show transaction", res))
}

func (c *transactionController) CreateTransaction(ctx *fiber.Ctx) error {
	var input map[string]any
	if err := ctx.BodyParser(&input); err != nil {
		return err
	}

	res, err := c.transactionService.CreateTransaction(ctx.Context(), input)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create transaction", res))
}

func (c *transactionController) UpdateTransaction(ctx *fiber.Ctx) error {
	id, err := idParam(ctx)
	if err != nil {
		return err
	}

	var input map[string]any
	if err := ctx.BodyParser(&input); err != nil {
		return err
	}

	res, err := c.transactionService.UpdateTransaction(ctx.Context(), id, input)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update transaction", res))
}

func (c *transactionController) DeleteTransaction(ctx *fiber.Ctx) error {
	id, err := idParam(ctx)
	if err != nil {
		return err
	}

	if err := c.transactionService.DeleteTransaction(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete transaction", nil))
}

func (c *transactionController) GetEntries(ctx *fiber.Ctx) error {
	var req dto.ListRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, degraded, err := c.transactionService.ListEntries(ctx.Context(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list transaction entries", dto.NewListResponse(res, degraded)))
}

func (c *transactionController) CreateEntry(ctx *fiber.Ctx) error {
	var input map[string]any
	if err := ctx.BodyParser(&input); err != nil {
		return err
	}

	res, err := c.transactionService.CreateEntry(ctx.Context(), input)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create transaction entry", res))
}

func (c *transactionController) UpdateEntry(ctx *fiber.Ctx) error {
	id, err := idParam(ctx)
	if err != nil {
		return err
	}

	var input map[string]any
	if err := ctx.BodyParser(&input); err != nil {
		return err
	}

	res, err := c.transactionService.UpdateEntry(ctx.Context(), id, input)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update transaction entry", res))
}

func (c *transactionController) DeleteEntry(ctx *fiber.Ctx) error {
	id, err := idParam(ctx)
	if err != nil {
		return err
	}

	if err := c.transactionService.DeleteEntry(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete transaction entry", nil))
}

func (c *transactionController) GetTrails(ctx *fiber.Ctx) error {
	var req dto.ListRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, degraded, err := c.transactionService.ListTrails(ctx.Context(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list vendor responses", dto.NewListResponse(res, degraded)))
}
