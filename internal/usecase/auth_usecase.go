package usecase

import (
	"context"
	"errors"

	"talentmatch/internal/domain/client"
	"talentmatch/internal/pkg/jwt"
	ucauth "talentmatch/internal/usecase/auth"

	"github.com/google/uuid"
)

type AuthUsecase interface {
	Register(ctx context.Context, in ucauth.RegisterInput) (client.Client, string, string, error)
	Login(ctx context.Context, in ucauth.LoginInput) (client.Client, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
	Profile(ctx context.Context, id uuid.UUID) (client.Client, error)
}

type Auth struct {
	authSvc *ucauth.Service
	clients client.Repository
	jwt     jwt.Service
}

func NewAuthUsecase(clients client.Repository, jwtSvc jwt.Service) *Auth {
	return &Auth{authSvc: ucauth.NewService(clients), clients: clients, jwt: jwtSvc}
}

func (u *Auth) Register(ctx context.Context, in ucauth.RegisterInput) (client.Client, string, string, error) {
	c, err := u.authSvc.Register(ctx, in)
	if err != nil {
		return client.Client{}, "", "", err
	}
	return u.withTokens(c)
}

func (u *Auth) Login(ctx context.Context, in ucauth.LoginInput) (client.Client, string, string, error) {
	c, err := u.authSvc.Login(ctx, in)
	if err != nil {
		return client.Client{}, "", "", err
	}
	return u.withTokens(c)
}

func (u *Auth) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	if refreshToken == "" {
		return "", "", ErrUnauthorized
	}

	claims, err := u.jwt.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", ErrRefreshTokenExpired
		}
		return "", "", ErrInvalidRefreshToken
	}
	if !u.jwt.IsRefreshToken(claims) {
		return "", "", ErrInvalidRefreshToken
	}

	c, err := u.clients.GetByID(ctx, claims.ClientID)
	if err != nil {
		return "", "", ErrInternal
	}

	access, err := u.jwt.GenerateAccessToken(c.ID, c.Email)
	if err != nil {
		return "", "", ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken(c.ID)
	if err != nil {
		return "", "", ErrInternal
	}
	return access, refresh, nil
}

func (u *Auth) Profile(ctx context.Context, id uuid.UUID) (client.Client, error) {
	c, err := u.clients.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			return client.Client{}, ErrUnauthorized
		}
		return client.Client{}, ErrInternal
	}
	c.PasswordHash = ""
	return c, nil
}

func (u *Auth) withTokens(c client.Client) (client.Client, string, string, error) {
	access, err := u.jwt.GenerateAccessToken(c.ID, c.Email)
	if err != nil {
		return client.Client{}, "", "", ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken(c.ID)
	if err != nil {
		return client.Client{}, "", "", ErrInternal
	}
	return c, access, refresh, nil
}
