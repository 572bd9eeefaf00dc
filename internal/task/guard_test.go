package task_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/redmonkez12/go-task-api/internal/category"
	"github.com/redmonkez12/go-task-api/internal/logging"
	"github.com/redmonkez12/go-task-api/internal/mock"
	"github.com/redmonkez12/go-task-api/internal/task"
)

func ptr[T any](v T) *T { return &v }

func newTestGuard(t *testing.T) (*task.Guard, *mock.MockTaskStore, *mock.MockCategoryResolver) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := mock.NewMockTaskStore(ctrl)
	categories := mock.NewMockCategoryResolver(ctrl)
	return task.NewGuard(store, categories, logging.Nop()), store, categories
}

func newCategory() *category.Category {
	return &category.Category{ID: uuid.New(), Name: "Coding tasks", Slug: "coding-tasks", IsSystem: true}
}

func TestGuard_Create_AppliesDefaultsAndEnriches(t *testing.T) {
	guard, store, categories := newTestGuard(t)
	ctx := context.Background()
	c := newCategory()

	gomock.InOrder(
		categories.EXPECT().Get(ctx, c.ID).Return(c, nil),
		store.EXPECT().Insert(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, tk *task.Task) error {
			assert.Equal(t, "Write tests", tk.Title)
			assert.Equal(t, task.StatusPending, tk.Status)
			assert.Equal(t, task.PriorityMedium, tk.Priority)
			assert.Equal(t, c.ID, tk.CategoryID)
			tk.ID = uuid.New()
			return nil
		}),
	)

	got, err := guard.Create(ctx, task.Input{Title: ptr("  Write tests "), Category: ptr(c.ID.String())})
	require.NoError(t, err)
	assert.Equal(t, c, got.Category)
	assert.Equal(t, c.ID, got.CategoryID)
}

func TestGuard_Create_RejectsBeforeWriting(t *testing.T) {
	c := newCategory()

	tests := []struct {
		name    string
		in      task.Input
		setup   func(categories *mock.MockCategoryResolver)
		wantErr error
	}{
		{name: "missing title", in: task.Input{Category: ptr(c.ID.String())}, wantErr: task.ErrTitleRequired},
		{name: "blank title", in: task.Input{Title: ptr("   "), Category: ptr(c.ID.String())}, wantErr: task.ErrTitleRequired},
		{name: "long title", in: task.Input{Title: ptr(strings.Repeat("t", 201)), Category: ptr(c.ID.String())}, wantErr: task.ErrTitleTooLong},
		{
			name:    "long description",
			in:      task.Input{Title: ptr("t"), Description: ptr(strings.Repeat("d", 1001)), Category: ptr(c.ID.String())},
			wantErr: task.ErrDescriptionTooLong,
		},
		{name: "bad status", in: task.Input{Title: ptr("t"), Status: ptr("done"), Category: ptr(c.ID.String())}, wantErr: task.ErrInvalidStatus},
		{name: "bad priority", in: task.Input{Title: ptr("t"), Priority: ptr("urgent"), Category: ptr(c.ID.String())}, wantErr: task.ErrInvalidPriority},
		{name: "missing category", in: task.Input{Title: ptr("t")}, wantErr: task.ErrCategoryRequired},
		{name: "unparseable category", in: task.Input{Title: ptr("t"), Category: ptr("not-an-id")}, wantErr: task.ErrInvalidCategory},
		{
			name: "unknown category",
			in:   task.Input{Title: ptr("t"), Category: ptr(c.ID.String())},
			setup: func(categories *mock.MockCategoryResolver) {
				categories.EXPECT().Get(gomock.Any(), c.ID).Return(nil, category.ErrNotFound)
			},
			wantErr: task.ErrInvalidCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guard, _, categories := newTestGuard(t)
			if tt.setup != nil {
				tt.setup(categories)
			}

			_, err := guard.Create(context.Background(), tt.in)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGuard_Create_CategoryLookupFailureIsNotValidation(t *testing.T) {
	guard, _, categories := newTestGuard(t)
	c := newCategory()
	boom := errors.New("connection reset")

	categories.EXPECT().Get(gomock.Any(), c.ID).Return(nil, boom)

	_, err := guard.Create(context.Background(), task.Input{Title: ptr("t"), Category: ptr(c.ID.String())})
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, task.ErrInvalidCategory)
}

func TestGuard_Update_RevalidatesPresentCategory(t *testing.T) {
	guard, _, categories := newTestGuard(t)
	missing := uuid.New()

	categories.EXPECT().Get(gomock.Any(), missing).Return(nil, category.ErrNotFound)

	_, err := guard.Update(context.Background(), uuid.New(), task.Input{Category: ptr(missing.String())})
	assert.ErrorIs(t, err, task.ErrInvalidCategory)
}

func TestGuard_Update_WithCategory(t *testing.T) {
	guard, store, categories := newTestGuard(t)
	ctx := context.Background()
	c := newCategory()
	id := uuid.New()

	categories.EXPECT().Get(ctx, c.ID).Return(c, nil)
	store.EXPECT().Update(ctx, id, task.Changes{CategoryID: &c.ID}).
		Return(&task.Task{ID: id, Title: "t", CategoryID: c.ID}, nil)

	got, err := guard.Update(ctx, id, task.Input{Category: ptr(c.ID.String())})
	require.NoError(t, err)
	assert.Equal(t, c, got.Category)
}

func TestGuard_Update_WithoutCategoryKeepsReference(t *testing.T) {
	guard, store, categories := newTestGuard(t)
	ctx := context.Background()
	c := newCategory()
	id := uuid.New()

	store.EXPECT().Update(ctx, id, task.Changes{Status: ptr(task.StatusCompleted)}).
		Return(&task.Task{ID: id, Status: task.StatusCompleted, CategoryID: c.ID}, nil)
	categories.EXPECT().Get(ctx, c.ID).Return(c, nil)

	got, err := guard.Update(ctx, id, task.Input{Status: ptr(task.StatusCompleted)})
	require.NoError(t, err)
	assert.Equal(t, task.StatusCompleted, got.Status)
	assert.Equal(t, c, got.Category)
}

func TestGuard_Update_UnknownTask(t *testing.T) {
	guard, store, _ := newTestGuard(t)

	store.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, task.ErrNotFound)

	_, err := guard.Update(context.Background(), uuid.New(), task.Input{Title: ptr("t")})
	assert.ErrorIs(t, err, task.ErrNotFound)
}

func TestGuard_List_ResolvesEachCategoryOnce(t *testing.T) {
	guard, store, categories := newTestGuard(t)
	ctx := context.Background()
	a, b := newCategory(), newCategory()

	store.EXPECT().FindMany(ctx, task.Filter{}).Return([]task.Task{
		{ID: uuid.New(), CategoryID: a.ID},
		{ID: uuid.New(), CategoryID: b.ID},
		{ID: uuid.New(), CategoryID: a.ID},
	}, nil)
	categories.EXPECT().Get(ctx, a.ID).Return(a, nil).Times(1)
	categories.EXPECT().Get(ctx, b.ID).Return(b, nil).Times(1)

	got, err := guard.List(ctx, task.Filter{})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, a, got[0].Category)
	assert.Equal(t, b, got[1].Category)
	assert.Equal(t, a, got[2].Category)
}

func TestGuard_Get_MissingCategoryStillReturnsTask(t *testing.T) {
	guard, store, categories := newTestGuard(t)
	ctx := context.Background()
	id, categoryID := uuid.New(), uuid.New()

	store.EXPECT().FindByID(ctx, id).Return(&task.Task{ID: id, CategoryID: categoryID}, nil)
	categories.EXPECT().Get(ctx, categoryID).Return(nil, category.ErrNotFound)

	got, err := guard.Get(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got.Category)
	assert.Equal(t, categoryID, got.CategoryID)
}

func TestGuard_Delete(t *testing.T) {
	guard, store, categories := newTestGuard(t)
	ctx := context.Background()
	c := newCategory()
	id := uuid.New()

	store.EXPECT().Delete(ctx, id).Return(&task.Task{ID: id, Title: "gone", CategoryID: c.ID}, nil)
	categories.EXPECT().Get(ctx, c.ID).Return(c, nil)

	got, err := guard.Delete(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "gone", got.Title)

	store.EXPECT().Delete(ctx, id).Return(nil, task.ErrNotFound)
	_, err = guard.Delete(ctx, id)
	assert.ErrorIs(t, err, task.ErrNotFound)
}

func TestParseFilter(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name                       string
		category, status, priority string
		want                       task.Filter
		wantErr                    error
	}{
		{name: "empty", want: task.Filter{}},
		{name: "all set", category: id.String(), status: "in-progress", priority: "high", want: task.Filter{CategoryID: &id, Status: "in-progress", Priority: "high"}},
		{name: "bad category", category: "abc", wantErr: task.ErrInvalidCategory},
		{name: "bad status", status: "archived", wantErr: task.ErrInvalidStatus},
		{name: "bad priority", priority: "critical", wantErr: task.ErrInvalidPriority},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := task.ParseFilter(tt.category, tt.status, tt.priority)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
