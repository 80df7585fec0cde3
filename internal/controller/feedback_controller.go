package controller

import (
	"it-helpdesk-be/internal/dto"
	"it-helpdesk-be/internal/pkg/serverutils"
	"it-helpdesk-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IFeedbackController interface {
	RegisterRoutes(r fiber.Router)
	Submit(ctx *fiber.Ctx) error
}

type feedbackController struct {
	feedbackService service.IFeedbackService
}

func NewFeedbackController(feedbackService service.IFeedbackService) IFeedbackController {
	return &feedbackController{feedbackService: feedbackService}
}

func (c *feedbackController) RegisterRoutes(r fiber.Router) {
	r.Post("/feedback", c.Submit)
}

func (c *feedbackController) Submit(ctx *fiber.Ctx) error {
	var req dto.FeedbackRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("Invalid request body"))
	}

	return ctx.JSON(c.feedbackService.Submit(ctx.Context(), &req))
}
