package task

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/redmonkez12/go-task-api/internal/category"
	"github.com/redmonkez12/go-task-api/internal/logging"
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 1000
)

// Guard is the only write path for tasks. Every write naming a category is
// checked against the registry before the store is touched, and every read
// comes back with the category record attached.
type Guard struct {
	store      Store
	categories CategoryResolver
	logger     *logging.Logger
}

func NewGuard(store Store, categories CategoryResolver, logger *logging.Logger) *Guard {
	return &Guard{
		store:      store,
		categories: categories,
		logger:     logger,
	}
}

// Create validates in, resolves its category and only then inserts
func (g *Guard) Create(ctx context.Context, in Input) (*Detail, error) {
	changes, err := validate(in)
	if err != nil {
		return nil, err
	}
	if changes.Title == nil {
		return nil, ErrTitleRequired
	}
	if in.Category == nil || strings.TrimSpace(*in.Category) == "" {
		return nil, ErrCategoryRequired
	}

	c, err := g.resolveCategory(ctx, *in.Category)
	if err != nil {
		return nil, err
	}

	t := &Task{
		Title:      *changes.Title,
		Status:     StatusPending,
		Priority:   PriorityMedium,
		CategoryID: c.ID,
	}
	if changes.Description != nil {
		t.Description = *changes.Description
	}
	if changes.Status != nil {
		t.Status = *changes.Status
	}
	if changes.Priority != nil {
		t.Priority = *changes.Priority
	}

	if err := g.store.Insert(ctx, t); err != nil {
		return nil, err
	}

	return newDetail(t, c), nil
}

// Update applies the present fields of in. A present category is checked
// exactly as on create; an absent one keeps the current reference.
func (g *Guard) Update(ctx context.Context, id uuid.UUID, in Input) (*Detail, error) {
	changes, err := validate(in)
	if err != nil {
		return nil, err
	}

	var resolved *category.Category
	if in.Category != nil {
		resolved, err = g.resolveCategory(ctx, *in.Category)
		if err != nil {
			return nil, err
		}
		changes.CategoryID = &resolved.ID
	}

	t, err := g.store.Update(ctx, id, changes)
	if err != nil {
		return nil, err
	}

	if resolved != nil {
		return newDetail(t, resolved), nil
	}
	return g.enrich(ctx, t, nil)
}

func (g *Guard) Get(ctx context.Context, id uuid.UUID) (*Detail, error) {
	t, err := g.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return g.enrich(ctx, t, nil)
}

// List returns matching tasks, newest first. Each category is looked up once.
func (g *Guard) List(ctx context.Context, filter Filter) ([]Detail, error) {
	tasks, err := g.store.FindMany(ctx, filter)
	if err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]*category.Category)
	details := make([]Detail, 0, len(tasks))
	for i := range tasks {
		d, err := g.enrich(ctx, &tasks[i], seen)
		if err != nil {
			return nil, err
		}
		details = append(details, *d)
	}
	return details, nil
}

// Delete removes the task and returns it
func (g *Guard) Delete(ctx context.Context, id uuid.UUID) (*Detail, error) {
	t, err := g.store.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	return g.enrich(ctx, t, nil)
}

// ParseFilter builds a Filter from list query values
func ParseFilter(categoryID, status, priority string) (Filter, error) {
	var f Filter
	if categoryID != "" {
		id, err := uuid.Parse(categoryID)
		if err != nil {
			return Filter{}, ErrInvalidCategory
		}
		f.CategoryID = &id
	}
	if status != "" {
		if !statuses[status] {
			return Filter{}, ErrInvalidStatus
		}
		f.Status = status
	}
	if priority != "" {
		if !priorities[priority] {
			return Filter{}, ErrInvalidPriority
		}
		f.Priority = priority
	}
	return f, nil
}

func (g *Guard) resolveCategory(ctx context.Context, raw string) (*category.Category, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, ErrInvalidCategory
	}

	c, err := g.categories.Get(ctx, id)
	if err != nil {
		if errors.Is(err, category.ErrNotFound) {
			return nil, ErrInvalidCategory
		}
		return nil, fmt.Errorf("failed to resolve category: %w", err)
	}
	return c, nil
}

// enrich attaches the task's category. A reference that no longer resolves
// is returned with a nil category rather than failing the read.
func (g *Guard) enrich(ctx context.Context, t *Task, seen map[uuid.UUID]*category.Category) (*Detail, error) {
	if c, ok := seen[t.CategoryID]; ok {
		return newDetail(t, c), nil
	}

	c, err := g.categories.Get(ctx, t.CategoryID)
	if err != nil {
		if !errors.Is(err, category.ErrNotFound) {
			return nil, fmt.Errorf("failed to resolve category: %w", err)
		}
		g.logger.Warn("task references missing category", "task_id", t.ID.String(), "category_id", t.CategoryID.String())
		c = nil
	}

	if seen != nil {
		seen[t.CategoryID] = c
	}
	return newDetail(t, c), nil
}

// validate checks every present field. Title is trimmed and may not be
// blank when given.
func validate(in Input) (Changes, error) {
	var ch Changes

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return Changes{}, ErrTitleRequired
		}
		if utf8.RuneCountInString(title) > maxTitleLength {
			return Changes{}, ErrTitleTooLong
		}
		ch.Title = &title
	}

	if in.Description != nil {
		description := strings.TrimSpace(*in.Description)
		if utf8.RuneCountInString(description) > maxDescriptionLength {
			return Changes{}, ErrDescriptionTooLong
		}
		ch.Description = &description
	}

	if in.Status != nil {
		if !statuses[*in.Status] {
			return Changes{}, ErrInvalidStatus
		}
		ch.Status = in.Status
	}

	if in.Priority != nil {
		if !priorities[*in.Priority] {
			return Changes{}, ErrInvalidPriority
		}
		ch.Priority = in.Priority
	}

	return ch, nil
}
