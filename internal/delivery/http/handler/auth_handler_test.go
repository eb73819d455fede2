package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"crewmatch/internal/delivery/http/middleware"
	"crewmatch/internal/domain/user"
	"crewmatch/internal/pkg/response"
	"crewmatch/internal/usecase"
	ucauth "crewmatch/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type mockAuthUsecase struct {
	account     user.User
	registerErr error
	loginErr    error
	refreshErr  error
}

func (m mockAuthUsecase) Register(_ context.Context, _ ucauth.RegisterInput) (user.User, string, string, error) {
	if m.registerErr != nil {
		return user.User{}, "", "", m.registerErr
	}
	return m.account, "access-1", "refresh-1", nil
}

func (m mockAuthUsecase) Login(_ context.Context, _ ucauth.LoginInput) (user.User, string, string, error) {
	if m.loginErr != nil {
		return user.User{}, "", "", m.loginErr
	}
	return m.account, "access-1", "refresh-1", nil
}

func (m mockAuthUsecase) Refresh(_ context.Context, _ string) (string, string, error) {
	if m.refreshErr != nil {
		return "", "", m.refreshErr
	}
	return "access-2", "refresh-2", nil
}

func newAuthTestApp(uc usecase.AuthUsecase) *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware().Middleware())
	NewAuthHandler(uc).RegisterRoutes(app.Group("/auth"))
	return app
}

func TestRegister_ReturnsAccountAndTokens(t *testing.T) {
	acct := user.User{ID: uuid.New(), Email: "crew@example.com", CreatedAt: time.Now().UTC()}
	app := newAuthTestApp(mockAuthUsecase{account: acct})

	req := httptest.NewRequest("POST", "/auth/register", strings.NewReader(`{"email":"crew@example.com","password":"seaworthy1"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	var envelope struct {
		Status int `json:"status"`
		Data   struct {
			Account struct {
				ID    uuid.UUID `json:"id"`
				Email string    `json:"email"`
			} `json:"account"`
			AccessToken  string `json:"access_token"`
			RefreshToken string `json:"refresh_token"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if envelope.Data.Account.ID != acct.ID || envelope.Data.Account.Email != acct.Email {
		t.Fatalf("account not echoed: %+v", envelope.Data.Account)
	}
	if envelope.Data.AccessToken != "access-1" || envelope.Data.RefreshToken != "refresh-1" {
		t.Fatalf("tokens missing from payload: %+v", envelope.Data)
	}
}

func TestRegister_DuplicateEmailConflicts(t *testing.T) {
	app := newAuthTestApp(mockAuthUsecase{registerErr: ucauth.ErrEmailAlreadyRegistered})

	req := httptest.NewRequest("POST", "/auth/register", strings.NewReader(`{"email":"crew@example.com","password":"seaworthy1"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.StatusCode)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	app := newAuthTestApp(mockAuthUsecase{loginErr: ucauth.ErrInvalidCredentials})

	req := httptest.NewRequest("POST", "/auth/login", strings.NewReader(`{"email":"crew@example.com","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}

	var envelope response.SemanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if envelope.Message != "Unauthorized" {
		t.Fatalf("unexpected message: %q", envelope.Message)
	}
}

func TestRefresh_AcceptsBodyToken(t *testing.T) {
	app := newAuthTestApp(mockAuthUsecase{})

	req := httptest.NewRequest("POST", "/auth/refresh", strings.NewReader(`{"refresh_token":"refresh-1"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var envelope struct {
		Data struct {
			AccessToken  string `json:"access_token"`
			RefreshToken string `json:"refresh_token"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if envelope.Data.AccessToken != "access-2" || envelope.Data.RefreshToken != "refresh-2" {
		t.Fatalf("rotated tokens missing: %+v", envelope.Data)
	}
}

func TestRefresh_FallsBackToBearerHeader(t *testing.T) {
	app := newAuthTestApp(mockAuthUsecase{})

	req := httptest.NewRequest("POST", "/auth/refresh", nil)
	req.Header.Set("Authorization", "Bearer refresh-1")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestRefresh_MissingTokenUnauthorized(t *testing.T) {
	app := newAuthTestApp(mockAuthUsecase{})

	resp, err := app.Test(httptest.NewRequest("POST", "/auth/refresh", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}
