package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"talentmatch/internal/domain/client"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidInput           = errors.New("invalid input")
	ErrInternal               = errors.New("internal error")
)

type RegisterInput struct {
	Email       string
	Password    string
	CompanyName string
}

type LoginInput struct {
	Email    string
	Password string
}

type Service struct {
	clients client.Repository
}

func NewService(clients client.Repository) *Service {
	return &Service{clients: clients}
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (client.Client, error) {
	email := normalizeEmail(in.Email)
	if email == "" {
		return client.Client{}, ErrInvalidInput
	}
	if !isValidPassword(in.Password) {
		return client.Client{}, ErrInvalidInput
	}

	exists, err := s.clients.ExistsByEmail(ctx, email)
	if err != nil {
		return client.Client{}, ErrInternal
	}
	if exists {
		return client.Client{}, ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return client.Client{}, ErrInternal
	}

	c := client.Client{
		ID:           uuid.New(),
		Email:        email,
		CompanyName:  strings.TrimSpace(in.CompanyName),
		PasswordHash: string(hash),
	}

	if err := s.clients.Create(ctx, c); err != nil {
		// A concurrent registration may have won the unique constraint.
		exists, exErr := s.clients.ExistsByEmail(ctx, email)
		if exErr == nil && exists {
			return client.Client{}, ErrEmailAlreadyRegistered
		}
		return client.Client{}, ErrInternal
	}

	created, err := s.clients.GetByID(ctx, c.ID)
	if err != nil {
		return client.Client{}, ErrInternal
	}
	return sanitize(created), nil
}

func (s *Service) Login(ctx context.Context, in LoginInput) (client.Client, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return client.Client{}, ErrInvalidCredentials
	}

	c, err := s.clients.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			return client.Client{}, ErrInvalidCredentials
		}
		return client.Client{}, ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(in.Password)); err != nil {
		return client.Client{}, ErrInvalidCredentials
	}

	return sanitize(c), nil
}

func normalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return ""
	}
	return strings.ToLower(email)
}

func isValidPassword(pw string) bool {
	return len(strings.TrimSpace(pw)) >= 8
}

func sanitize(c client.Client) client.Client {
	c.PasswordHash = ""
	return c
}
