package category

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/redmonkez12/go-task-api/internal/database"
)

// Repository handles category persistence
type Repository struct {
	db *bun.DB
}

func NewRepository(db *bun.DB) *Repository {
	return &Repository{db: db}
}

// Insert stores c, filling in its id and timestamps
func (r *Repository) Insert(ctx context.Context, c *Category) error {
	now := time.Now().UTC()
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.CreatedAt = now
	c.UpdatedAt = now

	_, err := r.db.NewInsert().
		Model(mapModelToDBCategory(c)).
		Exec(ctx)

	if err != nil {
		if database.IsUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create category: %w", err)
	}

	return nil
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*Category, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *Repository) FindBySlug(ctx context.Context, slug string) (*Category, error) {
	return r.findOne(ctx, "slug = ?", slug)
}

func (r *Repository) findOne(ctx context.Context, where string, arg any) (*Category, error) {
	dbCategory := new(database.Category)
	err := r.db.NewSelect().
		Model(dbCategory).
		Where(where, arg).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	return mapDBCategoryToModel(dbCategory), nil
}

// ListOrderedByCreation returns all categories, oldest first
func (r *Repository) ListOrderedByCreation(ctx context.Context) ([]Category, error) {
	var dbCategories []database.Category
	err := r.db.NewSelect().
		Model(&dbCategories).
		Order("created_at ASC", "id ASC").
		Scan(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	categories := make([]Category, 0, len(dbCategories))
	for i := range dbCategories {
		categories = append(categories, *mapDBCategoryToModel(&dbCategories[i]))
	}
	return categories, nil
}

func mapDBCategoryToModel(dbc *database.Category) *Category {
	return &Category{
		ID:        dbc.ID,
		Name:      dbc.Name,
		Slug:      dbc.Slug,
		IsSystem:  dbc.IsSystem,
		CreatedAt: dbc.CreatedAt,
		UpdatedAt: dbc.UpdatedAt,
	}
}

func mapModelToDBCategory(c *Category) *database.Category {
	return &database.Category{
		ID:        c.ID,
		Name:      c.Name,
		Slug:      c.Slug,
		IsSystem:  c.IsSystem,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
