package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/senda-infinita/internal/domain"
	"github.com/senda-infinita/internal/pkg/errors"
	"github.com/senda-infinita/internal/pkg/utils"
)

const userLocalsKey = "auth_user"

// Auth resolves the bearer token to a domain.AuthUser and stores it in the
// request locals. Requests without a valid token are rejected with 401.
func Auth(secret string, logger *zap.Logger) fiber.Handler {
	key := []byte(secret)

	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			return utils.SendError(c, errors.ErrUnauthorized)
		}
		raw := strings.TrimPrefix(header, "Bearer ")

		token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.ErrUnauthorized
			}
			return key, nil
		})
		if err != nil || !token.Valid {
			logger.Debug("Rejected bearer token", zap.Error(err))
			return utils.SendError(c, errors.ErrUnauthorized)
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return utils.SendError(c, errors.ErrUnauthorized)
		}

		sub, ok := claims["sub"].(float64)
		if !ok {
			return utils.SendError(c, errors.ErrUnauthorized)
		}

		user := domain.AuthUser{ID: int64(sub)}
		if name, ok := claims["name"].(string); ok {
			user.Name = name
		}
		if email, ok := claims["email"].(string); ok {
			user.Email = email
		}
		if role, ok := claims["role"].(string); ok {
			user.Role = role
		}

		c.Locals(userLocalsKey, user)
		return c.Next()
	}
}

// AdminOnly gates a route on the admin role. Must run after Auth.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := c.Locals(userLocalsKey).(domain.AuthUser)
		if !ok {
			return utils.SendError(c, errors.ErrUnauthorized)
		}
		if !user.IsAdmin() {
			return utils.SendError(c, errors.ErrForbidden)
		}
		return c.Next()
	}
}

// CurrentUser returns the identity resolved by Auth.
func CurrentUser(c *fiber.Ctx) (domain.AuthUser, bool) {
	user, ok := c.Locals(userLocalsKey).(domain.AuthUser)
	return user, ok
}
