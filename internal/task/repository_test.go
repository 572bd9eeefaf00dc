package task

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redmonkez12/go-task-api/internal/category"
	"github.com/redmonkez12/go-task-api/internal/database/dbtest"
)

func newTestRepository(t *testing.T) (*Repository, uuid.UUID) {
	t.Helper()
	db := dbtest.New(t)

	c := &category.Category{Name: "Chores", Slug: "chores"}
	require.NoError(t, category.NewRepository(db).Insert(context.Background(), c))

	return NewRepository(db), c.ID
}

func TestRepository_InsertAndFind(t *testing.T) {
	repo, categoryID := newTestRepository(t)
	ctx := context.Background()

	in := &Task{Title: "Water plants", Status: StatusPending, Priority: PriorityHigh, CategoryID: categoryID}
	require.NoError(t, repo.Insert(ctx, in))
	assert.NotEqual(t, uuid.Nil, in.ID)

	got, err := repo.FindByID(ctx, in.ID)
	require.NoError(t, err)
	assert.Equal(t, "Water plants", got.Title)
	assert.Equal(t, PriorityHigh, got.Priority)
	assert.Equal(t, categoryID, got.CategoryID)
}

func TestRepository_UpdateKeepsAbsentFields(t *testing.T) {
	repo, categoryID := newTestRepository(t)
	ctx := context.Background()

	in := &Task{Title: "Water plants", Description: "balcony", Status: StatusPending, Priority: PriorityLow, CategoryID: categoryID}
	require.NoError(t, repo.Insert(ctx, in))

	status := StatusCompleted
	got, err := repo.Update(ctx, in.ID, Changes{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, StatusCompleted, got.Status)
	assert.Equal(t, "Water plants", got.Title)
	assert.Equal(t, "balcony", got.Description)
	assert.Equal(t, PriorityLow, got.Priority)
	assert.Equal(t, categoryID, got.CategoryID)
}

func TestRepository_UnknownID(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()
	id := uuid.New()

	_, err := repo.FindByID(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)

	title := "x"
	_, err = repo.Update(ctx, id, Changes{Title: &title})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.Delete(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepository_DeleteReturnsTask(t *testing.T) {
	repo, categoryID := newTestRepository(t)
	ctx := context.Background()

	in := &Task{Title: "Read", Status: StatusPending, Priority: PriorityMedium, CategoryID: categoryID}
	require.NoError(t, repo.Insert(ctx, in))

	deleted, err := repo.Delete(ctx, in.ID)
	require.NoError(t, err)
	assert.Equal(t, "Read", deleted.Title)

	_, err = repo.FindByID(ctx, in.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepository_FindMany(t *testing.T) {
	repo, categoryID := newTestRepository(t)
	ctx := context.Background()
	otherCategory := uuid.New()

	seed := []Task{
		{Title: "oldest", Status: StatusPending, Priority: PriorityLow, CategoryID: categoryID},
		{Title: "middle", Status: StatusCompleted, Priority: PriorityHigh, CategoryID: otherCategory},
		{Title: "newest", Status: StatusCompleted, Priority: PriorityLow, CategoryID: categoryID},
	}
	for i := range seed {
		require.NoError(t, repo.Insert(ctx, &seed[i]))
		time.Sleep(2 * time.Millisecond)
	}

	titles := func(tasks []Task) []string {
		out := make([]string, 0, len(tasks))
		for _, t := range tasks {
			out = append(out, t.Title)
		}
		return out
	}

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{name: "all newest first", filter: Filter{}, want: []string{"newest", "middle", "oldest"}},
		{name: "by category", filter: Filter{CategoryID: &categoryID}, want: []string{"newest", "oldest"}},
		{name: "by status", filter: Filter{Status: StatusCompleted}, want: []string{"newest", "middle"}},
		{name: "by priority and category", filter: Filter{CategoryID: &categoryID, Priority: PriorityLow}, want: []string{"newest", "oldest"}},
		{name: "no match", filter: Filter{Priority: PriorityMedium}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.FindMany(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, titles(got))
		})
	}
}
