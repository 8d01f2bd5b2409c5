package controller

import (
	"fintech-admin-be/internal/dto"
	"fintech-admin-be/internal/pkg/serverutils"
	"fintech-admin-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router)
	GetUsers(ctx *fiber.Ctx) error
	GetUser(ctx *fiber.Ctx) error
	CreateUser(ctx *fiber.Ctx) error
	UpdateUser(ctx *fiber.Ctx) error
	DeleteUser(ctx *fiber.Ctx) error
	GetAuths(ctx *fiber.Ctx) error
	CreateAuth(ctx *fiber.Ctx) error
	UpdateAuth(ctx *fiber.Ctx) error
	DeleteAuth(ctx *fiber.Ctx) error
	GetActivities(ctx *fiber.Ctx) error
	CreateActivity(ctx *fiber.Ctx) error
	UpdateActivity(ctx *fiber.Ctx) error
	DeleteActivity(ctx *fiber.Ctx) error
	GetReferrals(ctx *fiber.Ctx) error
	CreateReferral(ctx *fiber.Ctx) error
	UpdateReferral(ctx *fiber.Ctx) error
	DeleteReferral(ctx *fiber.Ctx) error
}

type userController struct {
	userService service.UserService
}

func NewUserController(userService service.UserService) IUserController {
	return &userController{
		userService: userService,
	}
}

func (c *userController) RegisterRoutes(r fiber.Router) {
	users := r.Group("/users/v1")
	users.Use(serverutils.JwtMiddleware)
	users.Get("", c.GetUsers)
	users.Post("", c.CreateUser)
	users.Get(":id", c.GetUser)
	users.Put(":id", c.UpdateUser)
	users.Delete(":id", c.DeleteUser)

	auths := r.Group("/user-auths/v1")
	auths.Use(serverutils.JwtMiddleware)
	auths.Get("", c.GetAuths)
	auths.Post("", c.CreateAuth)
	auths.Put(":id", c.UpdateAuth)
	auths.Delete(":id", c.DeleteAuth)

	activities := r.Group("/recent-activities/v1")
	activities.Use(serverutils.JwtMiddleware)
	activities.Get("", c.GetActivities)
	activities.Post("", c.CreateActivity)
	activities.Put(":id", c.UpdateActivity)
	activities.Delete(":id", c.DeleteActivity)

	referrals := r.Group("/user-referrals/v1")
	referrals.Use(serverutils.JwtMiddleware)
	referrals.Get("", c.GetReferrals)
	referrals.Post("", c.CreateReferral)
	referrals.Put(":id", c.UpdateReferral)
	referrals.Delete(":id", c.DeleteReferral)
}

func (c *userController) GetUsers(ctx *fiber.Ctx) error {
	var req dto.ListRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, degraded, err := c.userService.ListUsers(ctx.Context(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list users", dto.NewListResponse(res, degraded)))
}

func (c *userController) GetUser(ctx *fiber.Ctx) error {
	id, err := idParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.userService.GetUser(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show user", res))
}

func (c *userController) CreateUser(ctx *fiber.Ctx) error {
	var input map[string]any
	if err := ctx.BodyParser(&input); err != nil {
		return err
	}

	res, err := c.userService.CreateUser(ctx.Context(), input)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create user", res))
}

func (c *userController) UpdateUser(ctx *fiber.Ctx) error {
	id, err := idParam(ctx)
	if err != nil {
		return err
	}

	var input map[string]any
	if err := ctx.BodyParser(&input); err != nil {
		return err
	}

	res, err := c.userService.UpdateUser(ctx.Context(), id, input)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update user", res))
}

func (c *userController) DeleteUser(ctx *fiber.Ctx) error {
	id, err := idParam(ctx)
	if err != nil {
		return err
	}

	if err := c.userService.DeleteUser(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete user", nil))
}

func (c *userController) GetAuths(ctx *fiber.Ctx) error {
	var req dto.ListRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, degraded, err := c.userService.ListAuths(ctx.Context(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list user auths", dto.NewListResponse(res, degraded)))
}

func (c *userController) CreateAuth(ctx *fiber.Ctx) error {
	var input map[string]any
	if err := ctx.BodyParser(&input); err != nil {
		return err
	}

	res, err := c.userService.CreateAuth(ctx.Context(), input)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create user auth", res))
}

func (c *userController) UpdateAuth(ctx *fiber.Ctx) error {
	id, err := idParam(ctx)
	if err != nil {
		return err
	}

	var input map[string]any
	if err := ctx.BodyParser(&input); err != nil {
		return err
	}

	res, err := c.userService.UpdateAuth(ctx.Context(), id, input)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update user auth", res))
}

func (c *userController) DeleteAuth(ctx *fiber.Ctx) error {
	id, err := idParam(ctx)
	if err != nil {
		return err
	}

	if err := c.userService.DeleteAuth(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete user auth", nil))
}

func (c *userController) GetActivities(ctx *fiber.Ctx) error {
	var req dto.ListRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, degraded, err := c.userService.ListActivities(ctx.Context(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list recent activities", dto.NewListResponse(res, degraded)))
}

func (c *userController) CreateActivity(ctx *fiber.Ctx) error {
	var input map[string]any
	if err := ctx.BodyParser(&input); err != nil {
		return err
	}

	res, err := c.userService.CreateActivity(ctx.Context(), input)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create recent activity", res))
}

func (c *userController) UpdateActivity(ctx *fiber.Ctx) error {
	id, err := idParam(ctx)
	if err != nil {
		return err
	}

	var input map[string]any
	if err := ctx.BodyParser(&input); err != nil {
		return err
	}

	res, err := c.userService.UpdateActivity(ctx.Context(), id, input)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update recent activity", res))
}

func (c *userController) DeleteActivity(ctx *fiber.Ctx) error {
	id, err := idParam(ctx)
	if err != nil {
		return err
	}

	if err := c.userService.DeleteActivity(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete recent activity", nil))
}

func (c *userController) GetReferrals(ctx *fiber.Ctx) error {
	var req dto.ListRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, degraded, err := c.userService.ListReferrals(ctx.Context(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list user referrals", dto.NewListResponse(res, degraded)))
}

func (c *userController) CreateReferral(ctx *fiber.Ctx) error {
	var input map[string]any
	if err := ctx.BodyParser(&input); err != nil {
		return err
	}

	res, err := c.userService.CreateReferral(ctx.Context(), input)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create user referral", res))
}

func (c *userController) UpdateReferral(ctx *fiber.Ctx) error {
	id, err := idParam(ctx)
	if err != nil {
		return err
	}

	var input map[string]any
	if err := ctx.BodyParser(&input); err != nil {
		return err
	}

	res, err := c.userService.UpdateReferral(ctx.Context(), id, input)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update user referral", res))
}

func (c *userController) DeleteReferral(ctx *fiber.Ctx) error {
	id, err := idParam(ctx)
	if err != nil {
		return err
	}

	if err := c.userService.DeleteReferral(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete user referral", nil))
}
