package client

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("client not found")

type Repository interface {
	Create(ctx context.Context, c Client) error
	GetByID(ctx context.Context, id uuid.UUID) (Client, error)
	GetByEmail(ctx context.Context, email string) (Client, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
