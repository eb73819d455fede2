package middleware

import (
	"errors"
	"strings"

	"crewmatch/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
)

const (
	CtxUserIDKey = "user_id"
	CtxEmailKey  = "email"
)

// AuthMiddleware resolves the candidate session from a bearer access token
// and stores the candidate's identity in request locals.
type AuthMiddleware struct {
	tokens jwt.Service
}

func NewAuthMiddleware(tokens jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		scheme, raw, found := strings.Cut(strings.TrimSpace(c.Get("Authorization")), " ")
		if !found || !strings.EqualFold(scheme, "Bearer") {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}

		claims, err := m.tokens.ValidateToken(raw)
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return NewAppError(fiber.StatusUnauthorized, "Token expired", nil, err)
		case err != nil:
			return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, err)
		}

		// Refresh tokens mint new sessions at /auth/refresh; they never
		// authorize API calls directly.
		if m.tokens.IsRefreshToken(claims) {
			return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, nil)
		}

		c.Locals(CtxUserIDKey, claims.UserID)
		c.Locals(CtxEmailKey, claims.Email)

		return c.Next()
	}
}
