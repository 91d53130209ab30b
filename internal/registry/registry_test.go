package registry

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timekeep/internal/config"
	"timekeep/internal/domain"
	"timekeep/internal/storage/sqlite"
)

func setupRegistry(t *testing.T) *Registry {
	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	reg := New(store)
	require.NoError(t, reg.Load(context.Background()))
	return reg
}

func TestRegistry_LoadSeedsDefaults(t *testing.T) {
	reg := setupRegistry(t)

	tasks := reg.Tasks()
	require.Len(t, tasks, 5)
	assert.Equal(t, "Sleep", tasks[0].Name)
	assert.Equal(t, "#2196F3", tasks[0].Color)
	assert.Equal(t, "Cook", tasks[4].Name)
	for _, task := range tasks {
		assert.Zero(t, task.AccumulatedMs)
	}
}

func TestRegistry_LoadPersistsSeed(t *testing.T) {
	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	ctx := context.Background()

	first := New(store)
	require.NoError(t, first.Load(ctx))
	_, err = first.AddTask(ctx, "Reading", "")
	require.NoError(t, err)

	// A second registry over the same store reads the same state back.
	second := New(store)
	require.NoError(t, second.Load(ctx))
	assert.Len(t, second.Tasks(), 6)

	task, found := second.FindTask(6)
	require.True(t, found)
	assert.Equal(t, "Reading", task.Name)
}

func TestRegistry_AddTask(t *testing.T) {
	tests := []struct {
		name          string
		taskName      string
		color         string
		expectedName  string
		expectedColor string
		errorContains string
	}{
		{
			name:          "should create task with explicit color",
			taskName:      "Reading",
			color:         "#2196F3",
			expectedName:  "Reading",
			expectedColor: "#2196F3",
		},
		{
			name:          "should apply default color when omitted",
			taskName:      "Writing",
			color:         "",
			expectedName:  "Writing",
			expectedColor: DefaultColor,
		},
		{
			name:          "should trim whitespace from name",
			taskName:      "  Exercise  ",
			color:         "",
			expectedName:  "Exercise",
			expectedColor: DefaultColor,
		},
		{
			name:          "should reject empty name",
			taskName:      "",
			errorContains: "name",
		},
		{
			name:          "should reject whitespace-only name",
			taskName:      "   ",
			errorContains: "name",
		},
		{
			name:          "should reject malformed color",
			taskName:      "Reading",
			color:         "blue",
			errorContains: "color",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := setupRegistry(t)

			task, err := reg.AddTask(context.Background(), tt.taskName, tt.color)

			if tt.errorContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
				assert.Len(t, reg.Tasks(), 5)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(6), task.ID)
			assert.Equal(t, tt.expectedName, task.Name)
			assert.Equal(t, tt.expectedColor, task.Color)
			assert.Len(t, reg.Tasks(), 6)
		})
	}
}

func TestRegistry_AddTaskHonorsConfiguredNameLimits(t *testing.T) {
	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	ctx := context.Background()

	cfg := config.NewConfig()
	cfg.Validation.TaskNameMaxLength = 5

	reg := NewWithConfig(store, cfg)
	require.NoError(t, reg.Load(ctx))

	_, err = reg.AddTask(ctx, strings.Repeat("x", 50), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "between 1 and 5 characters")
	assert.Len(t, reg.Tasks(), 5)

	task, err := reg.AddTask(ctx, "Gym", "")
	require.NoError(t, err)
	assert.Equal(t, "Gym", task.Name)
}

func TestRegistry_AddTaskAssignsSequentialIDs(t *testing.T) {
	reg := setupRegistry(t)
	ctx := context.Background()

	first, err := reg.AddTask(ctx, "Reading", "")
	require.NoError(t, err)
	second, err := reg.AddTask(ctx, "Writing", "")
	require.NoError(t, err)

	assert.Equal(t, first.ID+1, second.ID)
}

func TestRegistry_FindTask(t *testing.T) {
	reg := setupRegistry(t)

	task, found := reg.FindTask(2)
	require.True(t, found)
	assert.Equal(t, "Office", task.Name)

	_, found = reg.FindTask(99)
	assert.False(t, found)
}

func TestRegistry_RecomputeAccumulated(t *testing.T) {
	reg := setupRegistry(t)
	ctx := context.Background()

	task, found := reg.FindTask(2)
	require.True(t, found)

	now := time.Now()
	entries := []*domain.TimeEntry{
		{ID: 1, TaskID: 2, DurationMs: 3_600_000},
		{ID: 2, TaskID: 3, DurationMs: 1_800_000},
		{ID: 3, TaskID: 2, DurationMs: 900_000},
	}
	sessions := []domain.Session{
		{TaskID: 2, DurationMs: 60_000, StartedAt: now, EndedAt: now},
	}

	require.NoError(t, reg.RecomputeAccumulated(ctx, task, entries, sessions))
	assert.Equal(t, int64(4_560_000), task.AccumulatedMs)

	// A second recomputation over the same inputs is idempotent.
	require.NoError(t, reg.RecomputeAccumulated(ctx, task, entries, sessions))
	assert.Equal(t, int64(4_560_000), task.AccumulatedMs)
}
