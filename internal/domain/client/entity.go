package client

import (
	"time"

	"github.com/google/uuid"
)

// Client is an account that browses and hires freelancers.
type Client struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	CompanyName  string    `json:"company_name,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
