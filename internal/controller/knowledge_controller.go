package controller

import (
	"it-helpdesk-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IKnowledgeController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Search(ctx *fiber.Ctx) error
}

type knowledgeController struct {
	knowledgeService service.IKnowledgeService
}

func NewKnowledgeController(knowledgeService service.IKnowledgeService) IKnowledgeController {
	return &knowledgeController{knowledgeService: knowledgeService}
}

func (c *knowledgeController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/knowledge-base")
	h.Get("/search", c.Search)
	h.Get("", c.List)
}

func (c *knowledgeController) List(ctx *fiber.Ctx) error {
	return ctx.JSON(c.knowledgeService.GetAll())
}

func (c *knowledgeController) Search(ctx *fiber.Ctx) error {
	query := ctx.Query("q")
	category := ctx.Query("category")
	return ctx.JSON(c.knowledgeService.Search(query, category))
}
