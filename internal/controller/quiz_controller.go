package controller

import (
	"it-helpdesk-be/internal/dto"
	"it-helpdesk-be/internal/pkg/serverutils"
	"it-helpdesk-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IQuizController interface {
	RegisterRoutes(r fiber.Router)
	Generate(ctx *fiber.Ctx) error
}

type quizController struct {
	quizService service.IQuizService
}

func NewQuizController(quizService service.IQuizService) IQuizController {
	return &quizController{quizService: quizService}
}

func (c *quizController) RegisterRoutes(r fiber.Router) {
	r.Post("/quiz/generate", c.Generate)
}

func (c *quizController) Generate(ctx *fiber.Ctx) error {
	var req dto.GenerateQuizRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("Invalid request body"))
	}

	return ctx.JSON(c.quizService.Generate(ctx.Context(), &req))
}
