package category

//go:generate mockgen -source=interfaces.go -destination=../mock/category_mock.go -package=mock -mock_names=Store=MockCategoryStore

import (
	"context"

	"github.com/google/uuid"
)

// Store persists categories. Insert reports a unique index violation as ErrDuplicate.
type Store interface {
	Insert(ctx context.Context, c *Category) error
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	FindBySlug(ctx context.Context, slug string) (*Category, error)
	ListOrderedByCreation(ctx context.Context) ([]Category, error)
}
