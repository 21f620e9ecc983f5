package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/tasktracker/internal/domain/model"
	"github.com/ericfisherdev/tasktracker/internal/domain/port/driven"
)

func TestTaskRepo_AddAndList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepo(db)
	ctx := context.Background()

	added, err := repo.Add(ctx, "Buy milk", model.DefaultDescription)
	require.NoError(t, err)
	assert.NotZero(t, added.ID)
	assert.Equal(t, "Buy milk", added.Title)
	assert.False(t, added.Completed)
	assert.False(t, added.CreatedAt.IsZero())

	tasks, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, added.ID, tasks[0].ID)
	assert.Equal(t, model.DefaultDescription, tasks[0].Description)
	assert.False(t, tasks[0].Completed)
}

func TestTaskRepo_ListOrderedByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepo(db)
	ctx := context.Background()

	for _, title := range []string{"first", "second", "third"} {
		_, err := repo.Add(ctx, title, "desc")
		require.NoError(t, err)
	}

	tasks, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "first", tasks[0].Title)
	assert.Equal(t, "second", tasks[1].Title)
	assert.Equal(t, "third", tasks[2].Title)
	assert.Less(t, tasks[0].ID, tasks[1].ID)
	assert.Less(t, tasks[1].ID, tasks[2].ID)
}

func TestTaskRepo_ListEmpty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepo(db)

	tasks, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestTaskRepo_RejectsEmptyDescription(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepo(db)

	_, err := repo.Add(context.Background(), "Buy milk", "")
	assert.Error(t, err, "the schema forbids empty descriptions")
}

func TestTaskRepo_UpdateKeepsTitle(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepo(db)
	ctx := context.Background()

	added, err := repo.Add(ctx, "Write report", "draft")
	require.NoError(t, err)

	err = repo.Update(ctx, added.ID, "final version", true)
	require.NoError(t, err)

	got, err := repo.Get(ctx, added.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Write report", got.Title)
	assert.Equal(t, "final version", got.Description)
	assert.True(t, got.Completed)
}

func TestTaskRepo_UpdateMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepo(db)

	err := repo.Update(context.Background(), 42, "anything", true)
	assert.ErrorIs(t, err, driven.ErrTaskNotFound)
}

func TestTaskRepo_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepo(db)
	ctx := context.Background()

	added, err := repo.Add(ctx, "Buy milk", "desc")
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, added.ID))

	got, err := repo.Get(ctx, added.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestTaskRepo_DeleteTwiceReportsNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepo(db)
	ctx := context.Background()

	keep, err := repo.Add(ctx, "keep me", "desc")
	require.NoError(t, err)
	gone, err := repo.Add(ctx, "delete me", "desc")
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, gone.ID))

	err = repo.Delete(ctx, gone.ID)
	assert.ErrorIs(t, err, driven.ErrTaskNotFound)

	tasks, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, keep.ID, tasks[0].ID)
}

func TestTaskRepo_IDsNotReusedAfterDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepo(db)
	ctx := context.Background()

	first, err := repo.Add(ctx, "one", "desc")
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, first.ID))

	second, err := repo.Add(ctx, "two", "desc")
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)
}

func TestTaskRepo_GetMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepo(db)

	got, err := repo.Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Nil(t, got)
}
