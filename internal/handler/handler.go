package handler

import (
	"github.com/gofiber/fiber/v2"

	"star-home/internal/middleware"
	"star-home/internal/service"
)

type Handlers struct {
	Comment *CommentHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Comment: NewCommentHandler(services.Comment),
	}
}

// RegisterRoutes mounts the API. Listing is public; writes need a member token.
func RegisterRoutes(app *fiber.App, h *Handlers, services *service.Services) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1")

	comments := v1.Group("/boards/:boardId/comments")
	comments.Get("/", h.Comment.List)

	requireMember := middleware.AuthRequired(services.Auth)
	comments.Post("/", requireMember, h.Comment.Create)
	comments.Put("/:commentId", requireMember, h.Comment.Update)
	comments.Delete("/:commentId", requireMember, h.Comment.Delete)
}
