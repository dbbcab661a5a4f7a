package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	errs "github.com/sohhamm/personal-finance-app/internal/domain/error"
	coreport "github.com/sohhamm/personal-finance-app/internal/domain/port/core"
)

// User represents an account holder. It owns every other entity by foreign key.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new user with normalized email
func NewUser(name, email, passwordHash string, timeProvider coreport.TimeProvider) (*User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" || email == "" || !strings.Contains(email, "@") {
		return nil, errs.ErrValidation
	}
	if passwordHash == "" {
		return nil, errs.ErrValidation
	}

	now := timeProvider.Now()
	return &User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}
