package auth

import (
	"context"
	"errors"
	"testing"

	"crewmatch/internal/domain/user"

	"github.com/google/uuid"
)

type memUserRepo struct {
	byID    map[uuid.UUID]user.User
	byEmail map[string]user.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{
		byID:    make(map[uuid.UUID]user.User),
		byEmail: make(map[string]user.User),
	}
}

func (m *memUserRepo) Create(_ context.Context, u user.User) error {
	m.byID[u.ID] = u
	m.byEmail[u.Email] = u
	return nil
}

func (m *memUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *memUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *memUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := m.byEmail[email]
	return ok, nil
}

func TestRegister_ThenLogin(t *testing.T) {
	svc := NewService(newMemUserRepo())

	u, err := svc.Register(context.Background(), RegisterInput{Email: "Crew@Example.com", Password: "seaworthy1"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if u.Email != "crew@example.com" {
		t.Fatalf("email not normalized: %q", u.Email)
	}
	if u.PasswordHash != "" {
		t.Fatalf("password hash leaked in returned user")
	}

	logged, err := svc.Login(context.Background(), LoginInput{Email: "crew@example.com", Password: "seaworthy1"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if logged.ID != u.ID {
		t.Fatalf("login returned a different user")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewService(repo)

	if _, err := svc.Register(context.Background(), RegisterInput{Email: "crew@example.com", Password: "seaworthy1"}); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	_, err := svc.Register(context.Background(), RegisterInput{Email: "crew@example.com", Password: "seaworthy2"})
	if !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestRegister_RejectsWeakPassword(t *testing.T) {
	svc := NewService(newMemUserRepo())
	_, err := svc.Register(context.Background(), RegisterInput{Email: "crew@example.com", Password: "short"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := NewService(newMemUserRepo())
	if _, err := svc.Register(context.Background(), RegisterInput{Email: "crew@example.com", Password: "seaworthy1"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	_, err := svc.Login(context.Background(), LoginInput{Email: "crew@example.com", Password: "wrongpass1"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
