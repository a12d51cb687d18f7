package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"star-home/internal/domain"
	"star-home/internal/middleware"
	"star-home/internal/service/comment"
)

type CommentHandler struct {
	commentService comment.Service
}

func NewCommentHandler(commentService comment.Service) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

type createCommentResponse struct {
	ID int64 `json:"id"`
}

func (h *CommentHandler) Create(c *fiber.Ctx) error {
	memberID, err := middleware.GetMemberID(c)
	if err != nil {
		return err
	}

	boardID, err := paramID(c, "boardId")
	if err != nil {
		return middleware.BadRequest("Invalid board ID")
	}

	var input domain.CreateCommentInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	id, err := h.commentService.Create(c.UserContext(), boardID, memberID, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(createCommentResponse{ID: id})
}

func (h *CommentHandler) List(c *fiber.Ctx) error {
	boardID, err := paramID(c, "boardId")
	if err != nil {
		return middleware.BadRequest("Invalid board ID")
	}

	forest, err := h.commentService.List(c.UserContext(), boardID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(forest)
}

func (h *CommentHandler) Update(c *fiber.Ctx) error {
	memberID, err := middleware.GetMemberID(c)
	if err != nil {
		return err
	}

	boardID, err := paramID(c, "boardId")
	if err != nil {
		return middleware.BadRequest("Invalid board ID")
	}
	commentID, err := paramID(c, "commentId")
	if err != nil {
		return middleware.BadRequest("Invalid comment ID")
	}

	var input domain.UpdateCommentInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	if err := h.commentService.Update(c.UserContext(), boardID, commentID, memberID, input); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	memberID, err := middleware.GetMemberID(c)
	if err != nil {
		return err
	}

	boardID, err := paramID(c, "boardId")
	if err != nil {
		return middleware.BadRequest("Invalid board ID")
	}
	commentID, err := paramID(c, "commentId")
	if err != nil {
		return middleware.BadRequest("Invalid comment ID")
	}

	if err := h.commentService.SoftDelete(c.UserContext(), boardID, commentID, memberID); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func paramID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, strconv.ErrRange
	}
	return id, nil
}
