package controller

import (
	"ai-study-tutor-be/internal/dto"
	"ai-study-tutor-be/internal/pkg/apperror"
	"ai-study-tutor-be/internal/pkg/serverutils"
	"ai-study-tutor-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IMessageController interface {
	RegisterRoutes(r fiber.Router)
	Send(ctx *fiber.Ctx) error
}

type messageController struct {
	service service.IMessageService
}

func NewMessageController(service service.IMessageService) IMessageController {
	return &messageController{service: service}
}

func (c *messageController) RegisterRoutes(r fiber.Router) {
	r.Post("/messages", c.Send)
}

func (c *messageController) Send(ctx *fiber.Ctx) error {
	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Send(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
