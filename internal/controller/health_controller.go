package controller

import (
	"ai-study-tutor-be/internal/dto"

	"github.com/gofiber/fiber/v2"
)

type IHealthController interface {
	RegisterRoutes(r fiber.Router)
	Health(ctx *fiber.Ctx) error
}

type healthController struct {
	storageDriver string
	providerName  string
}

func NewHealthController(storageDriver, providerName string) IHealthController {
	return &healthController{storageDriver: storageDriver, providerName: providerName}
}

func (c *healthController) RegisterRoutes(r fiber.Router) {
	r.Get("/health", c.Health)
}

func (c *healthController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(dto.HealthResponse{
		Status:   "ok",
		Storage:  c.storageDriver,
		Provider: c.providerName,
	})
}
