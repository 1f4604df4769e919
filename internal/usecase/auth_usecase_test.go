package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"talentmatch/internal/domain/client"
	"talentmatch/internal/pkg/jwt"
	ucauth "talentmatch/internal/usecase/auth"
)

type memClientRepo struct {
	byID    map[uuid.UUID]client.Client
	byEmail map[string]client.Client
}

func newMemClientRepo() *memClientRepo {
	return &memClientRepo{
		byID:    map[uuid.UUID]client.Client{},
		byEmail: map[string]client.Client{},
	}
}

func (m *memClientRepo) Create(_ context.Context, c client.Client) error {
	if _, ok := m.byEmail[c.Email]; ok {
		return errors.New("duplicate email")
	}
	c.CreatedAt = time.Now().UTC()
	c.UpdatedAt = c.CreatedAt
	m.byID[c.ID] = c
	m.byEmail[c.Email] = c
	return nil
}

func (m *memClientRepo) GetByID(_ context.Context, id uuid.UUID) (client.Client, error) {
	c, ok := m.byID[id]
	if !ok {
		return client.Client{}, client.ErrNotFound
	}
	return c, nil
}

func (m *memClientRepo) GetByEmail(_ context.Context, email string) (client.Client, error) {
	c, ok := m.byEmail[email]
	if !ok {
		return client.Client{}, client.ErrNotFound
	}
	return c, nil
}

func (m *memClientRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := m.byEmail[email]
	return ok, nil
}

func newTestAuth() *Auth {
	jwtSvc := jwt.NewHMACService("access", "refresh", time.Minute, time.Hour)
	return NewAuthUsecase(newMemClientRepo(), jwtSvc)
}

func TestAuth_RegisterLoginRefresh(t *testing.T) {
	uc := newTestAuth()
	ctx := context.Background()

	c, access, refresh, err := uc.Register(ctx, ucauth.RegisterInput{
		Email:       "Buyer@Example.com",
		Password:    "supersecret",
		CompanyName: "Acme",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if c.Email != "buyer@example.com" {
		t.Fatalf("email not normalized: %s", c.Email)
	}
	if c.PasswordHash != "" {
		t.Fatal("password hash leaked")
	}
	if access == "" || refresh == "" {
		t.Fatal("missing tokens")
	}

	_, access2, _, err := uc.Login(ctx, ucauth.LoginInput{Email: "buyer@example.com", Password: "supersecret"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if access2 == "" {
		t.Fatal("missing access token")
	}

	newAccess, newRefresh, err := uc.Refresh(ctx, refresh)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if newAccess == "" || newRefresh == "" {
		t.Fatal("missing rotated tokens")
	}

	// An access token must not pass as a refresh token.
	if _, _, err := uc.Refresh(ctx, access); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
}

func TestAuth_RegisterValidation(t *testing.T) {
	uc := newTestAuth()
	ctx := context.Background()

	if _, _, _, err := uc.Register(ctx, ucauth.RegisterInput{Email: "", Password: "supersecret"}); !errors.Is(err, ucauth.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, _, _, err := uc.Register(ctx, ucauth.RegisterInput{Email: "a@b.c", Password: "short"}); !errors.Is(err, ucauth.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	if _, _, _, err := uc.Register(ctx, ucauth.RegisterInput{Email: "dup@b.c", Password: "supersecret"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, _, _, err := uc.Register(ctx, ucauth.RegisterInput{Email: "dup@b.c", Password: "supersecret"}); !errors.Is(err, ucauth.ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestAuth_LoginWrongPassword(t *testing.T) {
	uc := newTestAuth()
	ctx := context.Background()

	if _, _, _, err := uc.Register(ctx, ucauth.RegisterInput{Email: "a@b.c", Password: "supersecret"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, _, _, err := uc.Login(ctx, ucauth.LoginInput{Email: "a@b.c", Password: "wrongpass"}); !errors.Is(err, ucauth.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuth_Profile(t *testing.T) {
	uc := newTestAuth()
	ctx := context.Background()

	c, _, _, err := uc.Register(ctx, ucauth.RegisterInput{Email: "a@b.c", Password: "supersecret"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	got, err := uc.Profile(ctx, c.ID)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if got.Email != "a@b.c" || got.PasswordHash != "" {
		t.Fatalf("unexpected profile: %+v", got)
	}

	if _, err := uc.Profile(ctx, uuid.New()); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
