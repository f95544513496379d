package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"taskapi/domain/apperr"
	"taskapi/domain/models"
	"taskapi/domain/repositories"
)

// newTestDB opens an in-memory SQLite database. The repository only depends
// on *gorm.DB, so the same implementation runs against Postgres in
// production and SQLite here.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A second pooled connection would see a different in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, Migrate(db))
	return db
}

func newTestRepo(t *testing.T) repositories.TaskRepository {
	t.Helper()
	return NewTaskRepository(newTestDB(t))
}

func seedTask(t *testing.T, repo repositories.TaskRepository, title string, status models.TaskStatus, priority models.TaskPriority) *models.Task {
	t.Helper()
	task := &models.Task{
		Title:    title,
		Status:   status,
		Priority: priority,
	}
	require.NoError(t, repo.Create(context.Background(), task))
	return task
}

func TestCreateAssignsIDAndTimestamps(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first := seedTask(t, repo, "first", models.StatusPending, models.PriorityMedium)
	second := seedTask(t, repo, "second", models.StatusPending, models.PriorityMedium)

	assert.Greater(t, first.ID, int64(0))
	assert.Greater(t, second.ID, first.ID, "ids are monotonically increasing")
	assert.False(t, first.CreatedAt.IsZero())
	assert.False(t, first.UpdatedAt.Before(first.CreatedAt))

	got, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "first", got.Title)
}

func TestGetByIDNotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetByID(context.Background(), 42)
	assert.True(t, errors.Is(err, apperr.ErrTaskNotFound))
}

func TestListFilterOrderingAndPagination(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for i := 0; i < 6; i++ {
		status := models.StatusPending
		priority := models.PriorityLow
		if i%2 == 0 {
			status = models.StatusCompleted
			priority = models.PriorityHigh
		}
		seedTask(t, repo, "task", status, priority)
	}

	all, err := repo.List(ctx, repositories.TaskFilter{}, 0, 100)
	require.NoError(t, err)
	require.Len(t, all, 6)
	for i := 1; i < len(all); i++ {
		assert.Greater(t, all[i].ID, all[i-1].ID, "list is ordered by id ascending")
	}

	pending := models.StatusPending
	filtered, err := repo.List(ctx, repositories.TaskFilter{Status: &pending}, 0, 100)
	require.NoError(t, err)
	assert.Len(t, filtered, 3)
	for _, task := range filtered {
		assert.Equal(t, models.StatusPending, task.Status)
	}

	high := models.PriorityHigh
	byPriority, err := repo.List(ctx, repositories.TaskFilter{Priority: &high}, 0, 100)
	require.NoError(t, err)
	assert.Len(t, byPriority, 3)

	// Combined filter.
	both, err := repo.List(ctx, repositories.TaskFilter{Status: &pending, Priority: &high}, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, both)

	// Pagination windows are deterministic across calls.
	page1, err := repo.List(ctx, repositories.TaskFilter{}, 0, 2)
	require.NoError(t, err)
	page2, err := repo.List(ctx, repositories.TaskFilter{}, 2, 2)
	require.NoError(t, err)
	require.Len(t, page1, 2)
	require.Len(t, page2, 2)
	assert.Equal(t, all[2].ID, page2[0].ID)

	count, err := repo.Count(ctx, repositories.TaskFilter{Status: &pending})
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
}

func TestUpdatePersistsMergedState(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	task := seedTask(t, repo, "before", models.StatusPending, models.PriorityMedium)
	created := task.CreatedAt

	task.Title = "after"
	task.Status = models.StatusCompleted
	task.Description = ""
	require.NoError(t, repo.Update(ctx, task))

	got, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "after", got.Title)
	assert.Equal(t, models.StatusCompleted, got.Status)
	assert.Equal(t, created.Unix(), got.CreatedAt.Unix(), "created_at is immutable")
	assert.True(t, task.UpdatedAt.Equal(got.UpdatedAt), "Update hands back the stored state")
}

func TestUpdateCanClearZeroValues(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	due := time.Now().Add(time.Hour).Round(time.Second)
	task := &models.Task{
		Title:      "with extras",
		Status:     models.StatusPending,
		Priority:   models.PriorityMedium,
		DueDate:    &due,
		AssignedTo: "alice",
	}
	require.NoError(t, repo.Create(ctx, task))

	// The repository writes the full merged row, zero values included; the
	// partial-merge decision lives in the service, not here.
	task.AssignedTo = ""
	require.NoError(t, repo.Update(ctx, task))

	got, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Empty(t, got.AssignedTo)
	require.NotNil(t, got.DueDate)
}

func TestUpdateNotFound(t *testing.T) {
	repo := newTestRepo(t)

	err := repo.Update(context.Background(), &models.Task{
		ID:       42,
		Title:    "ghost",
		Status:   models.StatusPending,
		Priority: models.PriorityMedium,
	})
	assert.True(t, errors.Is(err, apperr.ErrTaskNotFound))
}

func TestDeleteRemovesRow(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	task := seedTask(t, repo, "doomed", models.StatusPending, models.PriorityMedium)

	require.NoError(t, repo.Delete(ctx, task.ID))

	_, err := repo.GetByID(ctx, task.ID)
	assert.True(t, errors.Is(err, apperr.ErrTaskNotFound))

	assert.True(t, errors.Is(repo.Delete(ctx, task.ID), apperr.ErrTaskNotFound))
}

func TestListOverdue(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	overduePending := &models.Task{Title: "late", Status: models.StatusPending, Priority: models.PriorityHigh, DueDate: &past}
	require.NoError(t, repo.Create(ctx, overduePending))

	overdueDone := &models.Task{Title: "late but done", Status: models.StatusCompleted, Priority: models.PriorityLow, DueDate: &past}
	require.NoError(t, repo.Create(ctx, overdueDone))

	onTime := &models.Task{Title: "on time", Status: models.StatusPending, Priority: models.PriorityLow, DueDate: &future}
	require.NoError(t, repo.Create(ctx, onTime))

	noDue := &models.Task{Title: "no due date", Status: models.StatusPending, Priority: models.PriorityLow}
	require.NoError(t, repo.Create(ctx, noDue))

	overdue, err := repo.ListOverdue(ctx, now)
	require.NoError(t, err)
	require.Len(t, overdue, 1)
	assert.Equal(t, overduePending.ID, overdue[0].ID)
}
