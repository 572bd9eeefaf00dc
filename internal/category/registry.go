package category

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/redmonkez12/go-task-api/internal/logging"
)

const (
	maxNameLength = 100
	maxSlugLength = 100
)

// Defaults are the system categories ensured at start-up
var Defaults = []Category{
	{Name: "Daily tasks", Slug: "daily-tasks"},
	{Name: "Sports tasks", Slug: "sports-tasks"},
	{Name: "Reading tasks", Slug: "reading-tasks"},
	{Name: "Creativity tasks", Slug: "creativity-tasks"},
	{Name: "Coding tasks", Slug: "coding-tasks"},
}

// Registry owns the category set. It has no mutation path after creation.
type Registry struct {
	store  Store
	logger *logging.Logger
}

func NewRegistry(store Store, logger *logging.Logger) *Registry {
	return &Registry{store: store, logger: logger}
}

// NormalizeSlug is applied to every slug, seeded or user supplied
func NormalizeSlug(slug string) string {
	return strings.ToLower(strings.TrimSpace(slug))
}

// SeedDefaults creates each default category whose slug is absent. Running
// it again, or concurrently in another process, is harmless.
func (r *Registry) SeedDefaults(ctx context.Context) error {
	created := 0
	for _, def := range Defaults {
		slug := NormalizeSlug(def.Slug)

		_, err := r.store.FindBySlug(ctx, slug)
		if err == nil {
			continue
		}
		if !errors.Is(err, ErrNotFound) {
			return fmt.Errorf("failed to look up default category %q: %w", slug, err)
		}

		c := &Category{Name: def.Name, Slug: slug, IsSystem: true}
		if err := r.store.Insert(ctx, c); err != nil {
			if errors.Is(err, ErrDuplicate) {
				continue
			}
			return fmt.Errorf("failed to seed category %q: %w", slug, err)
		}
		created++
	}

	r.logger.Info("default categories ensured", "created", created, "total", len(Defaults))
	return nil
}

func (r *Registry) List(ctx context.Context) ([]Category, error) {
	return r.store.ListOrderedByCreation(ctx)
}

func (r *Registry) Get(ctx context.Context, id uuid.UUID) (*Category, error) {
	return r.store.FindByID(ctx, id)
}

// Create adds a user category. Uniqueness of name and slug is left to the
// store's unique indexes.
func (r *Registry) Create(ctx context.Context, name, slug string) (*Category, error) {
	name = strings.TrimSpace(name)
	slug = NormalizeSlug(slug)
	if name == "" || slug == "" {
		return nil, ErrNameSlugRequired
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return nil, ErrNameTooLong
	}
	if utf8.RuneCountInString(slug) > maxSlugLength {
		return nil, ErrSlugTooLong
	}

	c := &Category{Name: name, Slug: slug, IsSystem: false}
	if err := r.store.Insert(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Update always fails: categories are immutable once created
func (r *Registry) Update(context.Context, string) error {
	return ErrUpdateNotAllowed
}

// Delete always fails: categories are never removed
func (r *Registry) Delete(context.Context, string) error {
	return ErrDeleteNotAllowed
}
