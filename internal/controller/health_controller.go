package controller

import (
	"time"

	"it-helpdesk-be/internal/dto"

	"github.com/gofiber/fiber/v2"
)

type IHealthController interface {
	RegisterRoutes(r fiber.Router)
	Health(ctx *fiber.Ctx) error
}

type healthController struct {
	providerMode string
	startedAt    time.Time
}

func NewHealthController(providerMode string) IHealthController {
	return &healthController{
		providerMode: providerMode,
		startedAt:    time.Now(),
	}
}

func (c *healthController) RegisterRoutes(r fiber.Router) {
	r.Get("/health", c.Health)
}

func (c *healthController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(dto.HealthResponse{
		Status:   "ok",
		Provider: c.providerMode,
		Uptime:   time.Since(c.startedAt).Round(time.Second).String(),
	})
}
