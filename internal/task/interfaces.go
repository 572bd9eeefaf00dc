package task

//go:generate mockgen -source=interfaces.go -destination=../mock/task_mock.go -package=mock -mock_names=Store=MockTaskStore

import (
	"context"

	"github.com/google/uuid"

	"github.com/redmonkez12/go-task-api/internal/category"
)

// Store persists tasks without looking at their category
type Store interface {
	Insert(ctx context.Context, t *Task) error
	FindByID(ctx context.Context, id uuid.UUID) (*Task, error)
	Update(ctx context.Context, id uuid.UUID, changes Changes) (*Task, error)
	Delete(ctx context.Context, id uuid.UUID) (*Task, error)
	FindMany(ctx context.Context, filter Filter) ([]Task, error)
}

// CategoryResolver looks up a category, returning category.ErrNotFound when absent
type CategoryResolver interface {
	Get(ctx context.Context, id uuid.UUID) (*category.Category, error)
}
