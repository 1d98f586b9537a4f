package controller

import (
	"ai-study-tutor-be/internal/dto"
	"ai-study-tutor-be/internal/pkg/apperror"
	"ai-study-tutor-be/internal/pkg/serverutils"
	"ai-study-tutor-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IConversationController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	ListForDemoUser(ctx *fiber.Ctx) error
	ListByUser(ctx *fiber.Ctx) error
	ListMessages(ctx *fiber.Ctx) error
}

type conversationController struct {
	service    service.IConversationService
	demoUserId string
}

func NewConversationController(service service.IConversationService, demoUserId string) IConversationController {
	return &conversationController{service: service, demoUserId: demoUserId}
}

func (c *conversationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/conversations")
	h.Post("/", c.Create)
	h.Get("/", c.ListForDemoUser)
	h.Get("/:conversationId/messages", c.ListMessages)
	h.Get("/:userId", c.ListByUser)
}

func (c *conversationController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateConversationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *conversationController) ListForDemoUser(ctx *fiber.Ctx) error {
	res, err := c.service.ListByUser(ctx.UserContext(), c.demoUserId)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *conversationController) ListByUser(ctx *fiber.Ctx) error {
	res, err := c.service.ListByUser(ctx.UserContext(), ctx.Params("userId"))
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *conversationController) ListMessages(ctx *fiber.Ctx) error {
	res, err := c.service.ListMessages(ctx.UserContext(), ctx.Params("conversationId"))
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
