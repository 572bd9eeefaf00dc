package user

//go:generate mockgen -source=interfaces.go -destination=../mock/user_mock.go -package=mock -mock_names=Store=MockUserStore

import (
	"context"

	"github.com/google/uuid"
)

// Store is the subset of Repository the profile service needs
type Store interface {
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, changes ProfileChanges) (*User, error)
}

// Invalidator drops cached copies of a principal after it changes
type Invalidator interface {
	Invalidate(ctx context.Context, id uuid.UUID) error
}
