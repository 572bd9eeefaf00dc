package task

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

// Repository handles task persistence
type Repository struct {
	db *bun.DB
}

func NewRepository(db *bun.DB) *Repository {
	return &Repository{db: db}
}

// Insert stores t, filling in its id and timestamps
func (r *Repository) Insert(ctx context.Context, t *Task) error {
	now := time.Now().UTC()
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	t.CreatedAt = now
	t.UpdatedAt = now

	_, err := r.db.NewInsert().
		Model(mapModelToDBTask(t)).
		Exec(ctx)

	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	return nil
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*Task, error) {
	dbTask := new(database.Task)
	err := r.db.NewSelect().
		Model(dbTask).
		Where("id = ?", id).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return mapDBTaskToModel(dbTask), nil
}

// Update applies the non-nil changes and returns the updated task
func (r *Repository) Update(ctx context.Context, id uuid.UUID, changes Changes) (*Task, error) {
	q := r.db.NewUpdate().
		Model((*database.Task)(nil)).
		Set("updated_at = ?", time.Now().UTC()).
		Where("id = ?", id)

	if changes.Title != nil {
		q = q.Set("title = ?", *changes.Title)
	}
	if changes.Description != nil {
		q = q.Set("description = ?", *changes.Description)
	}
	if changes.Status != nil {
		q = q.Set("status = ?", *changes.Status)
	}
	if changes.Priority != nil {
		q = q.Set("priority = ?", *changes.Priority)
	}
	if changes.CategoryID != nil {
		q = q.Set("category_id = ?", *changes.CategoryID)
	}

	result, err := q.Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	if err := requireAffected(result); err != nil {
		return nil, err
	}

	return r.FindByID(ctx, id)
}

// Delete removes the task and returns it as it was
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) (*Task, error) {
	t, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	result, err := r.db.NewDelete().
		Model((*database.Task)(nil)).
		Where("id = ?", id).
		Exec(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to delete task: %w", err)
	}
	if err := requireAffected(result); err != nil {
		return nil, err
	}

	return t, nil
}

// FindMany lists matching tasks, newest first
func (r *Repository) FindMany(ctx context.Context, filter Filter) ([]Task, error) {
	var dbTasks []database.Task
	q := r.db.NewSelect().
		Model(&dbTasks).
		Order("created_at DESC", "id DESC")

	if filter.CategoryID != nil {
		q = q.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" {
		q = q.Where("priority = ?", filter.Priority)
	}

	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	tasks := make([]Task, 0, len(dbTasks))
	for i := range dbTasks {
		tasks = append(tasks, *mapDBTaskToModel(&dbTasks[i]))
	}
	return tasks, nil
}

func requireAffected(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func mapDBTaskToModel(dbt *database.Task) *Task {
	return &Task{
		ID:          dbt.ID,
		Title:       dbt.Title,
		Description: dbt.Description,
		Status:      dbt.Status,
		Priority:    dbt.Priority,
		CategoryID:  dbt.CategoryID,
		CreatedAt:   dbt.CreatedAt,
		UpdatedAt:   dbt.UpdatedAt,
	}
}

func mapModelToDBTask(t *Task) *database.Task {
	return &database.Task{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		Priority:    t.Priority,
		CategoryID:  t.CategoryID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
