package middleware

import (
	"net/http/httptest"
	"testing"

	"crewmatch/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type stubTokenService struct {
	claims jwt.Claims
	err    error
}

func (s stubTokenService) GenerateAccessToken(uuid.UUID, string) (string, error) { return "", nil }

func (s stubTokenService) GenerateRefreshToken(uuid.UUID) (string, error) { return "", nil }

func (s stubTokenService) ValidateToken(string) (jwt.Claims, error) { return s.claims, s.err }

func (s stubTokenService) IsRefreshToken(c jwt.Claims) bool {
	return c.TokenType == jwt.TokenTypeRefresh
}

func newAuthTestApp(tokens jwt.Service) *fiber.App {
	app := fiber.New()
	app.Use(NewErrorMiddleware().Middleware())
	mw := NewAuthMiddleware(tokens)
	app.Get("/protected", mw.Middleware(), func(c fiber.Ctx) error {
		id, ok := c.Locals(CtxUserIDKey).(uuid.UUID)
		if !ok || id == uuid.Nil {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestAuthMiddleware_AccessTokenPasses(t *testing.T) {
	userID := uuid.New()
	app := newAuthTestApp(stubTokenService{claims: jwt.Claims{UserID: userID, TokenType: jwt.TokenTypeAccess}})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer good-token")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	app := newAuthTestApp(stubTokenService{})

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestAuthMiddleware_WrongScheme(t *testing.T) {
	app := newAuthTestApp(stubTokenService{claims: jwt.Claims{UserID: uuid.New(), TokenType: jwt.TokenTypeAccess}})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	app := newAuthTestApp(stubTokenService{err: jwt.ErrTokenExpired})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer stale-token")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestAuthMiddleware_RefreshTokenRejected(t *testing.T) {
	app := newAuthTestApp(stubTokenService{claims: jwt.Claims{UserID: uuid.New(), TokenType: jwt.TokenTypeRefresh}})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer refresh-token")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}
