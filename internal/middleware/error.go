package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"star-home/internal/domain"
	"star-home/internal/pkg/logger"
)

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	TraceID string `json:"trace_id,omitempty"`
}

func ErrorHandler(c *fiber.Ctx, err error) error {
	code, errorCode, message := classify(err)

	traceID := uuid.New().String()[:8]

	if code >= fiber.StatusInternalServerError {
		logger.LogWithContext("http", "error").WithError(err).WithFields(logrus.Fields{
			"trace_id": traceID,
			"method":   c.Method(),
			"path":     c.Path(),
		}).Error("Request failed")
	}

	return c.Status(code).JSON(ErrorResponse{
		Code:    errorCode,
		Message: message,
		TraceID: traceID,
	})
}

func classify(err error) (int, string, string) {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code, fiberErrorCode(fe.Code), fe.Message
	}

	switch {
	case errors.Is(err, domain.ErrInvalidContent):
		return fiber.StatusBadRequest, "VALIDATION_ERROR", domain.ErrInvalidContent.Error()
	case errors.Is(err, domain.ErrCommentNotFound):
		return fiber.StatusBadRequest, "INVALID_COMMENT_ID", domain.ErrCommentNotFound.Error()
	case errors.Is(err, domain.ErrNotAuthor):
		return fiber.StatusForbidden, "NOT_AUTHOR", domain.ErrNotAuthor.Error()
	case errors.Is(err, domain.ErrBoardNotFound):
		return fiber.StatusNotFound, "BOARD_NOT_FOUND", domain.ErrBoardNotFound.Error()
	}

	return fiber.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error"
}

func fiberErrorCode(code int) string {
	switch code {
	case fiber.StatusBadRequest:
		return "BAD_REQUEST"
	case fiber.StatusUnauthorized:
		return "UNAUTHORIZED"
	case fiber.StatusForbidden:
		return "FORBIDDEN"
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusConflict:
		return "CONFLICT"
	case fiber.StatusUnprocessableEntity:
		return "VALIDATION_ERROR"
	}
	if code >= fiber.StatusInternalServerError {
		return "INTERNAL_ERROR"
	}
	return "ERROR"
}

func BadRequest(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusBadRequest, message)
}

func Unauthorized(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusUnauthorized, message)
}
