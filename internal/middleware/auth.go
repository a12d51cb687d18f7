package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"star-home/internal/service/auth"
)

const MemberIDContextKey = "member_id"

func AuthRequired(authService auth.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return Unauthorized("Missing authorization header")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return Unauthorized("Invalid authorization header format")
		}

		claims, err := authService.ValidateAccessToken(parts[1])
		if err != nil {
			return Unauthorized("Invalid or expired token")
		}

		c.Locals(MemberIDContextKey, claims.MemberID)

		return c.Next()
	}
}

func GetMemberID(c *fiber.Ctx) (int64, error) {
	memberID, ok := c.Locals(MemberIDContextKey).(int64)
	if !ok || memberID <= 0 {
		return 0, Unauthorized("Authentication required")
	}
	return memberID, nil
}
