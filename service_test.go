package gotodo_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/sicko7947/gotodo"
	"github.com/sicko7947/gotodo/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(opts ...gotodo.ServiceOption) *gotodo.Service {
	opts = append([]gotodo.ServiceOption{gotodo.WithLogger(zerolog.Nop())}, opts...)
	return gotodo.NewService(store.NewMemoryStore(), opts...)
}

func TestService_Create_RoundTrip(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, "Buy milk")
	require.NoError(t, err)
	assert.Equal(t, gotodo.HashID("Buy milk"), created.ID)
	assert.Equal(t, "Buy milk", created.Task)
	assert.False(t, created.Done)

	fetched, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
}

func TestService_Create_DuplicateTaskOverwrites(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	first, err := svc.Create(ctx, "Buy milk")
	require.NoError(t, err)

	// Mark it done, then create the same task again
	_, err = svc.Update(ctx, first.ID, gotodo.PartialTodo{Task: "Buy milk", Done: true})
	require.NoError(t, err)

	second, err := svc.Create(ctx, "Buy milk")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	// The fresh record replaced the completed one under the same key
	fetched, err := svc.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.False(t, fetched.Done)

	todos, err := svc.List(ctx, 0, 10)
	require.NoError(t, err)
	assert.Len(t, todos, 1)
}

func TestService_WithRandomIDs_RetriesOnCollision(t *testing.T) {
	// Deterministic generator: first two draws collide
	draws := []uint32{7, 7, 8}
	gen := func(string) uint32 {
		id := draws[0]
		if len(draws) > 1 {
			draws = draws[1:]
		}
		return id
	}

	svc := newTestService(gotodo.WithRandomIDs(), gotodo.WithIDGenerator(gen))
	ctx := context.Background()

	first, err := svc.Create(ctx, "Buy milk")
	require.NoError(t, err)
	assert.Equal(t, uint32(7), first.ID)

	second, err := svc.Create(ctx, "Buy milk")
	require.NoError(t, err)
	assert.Equal(t, uint32(8), second.ID)

	todos, err := svc.List(ctx, 0, 10)
	require.NoError(t, err)
	assert.Len(t, todos, 2)
}

func TestService_GetByID_NotFound(t *testing.T) {
	svc := newTestService()

	_, err := svc.GetByID(context.Background(), 12345)
	assert.True(t, gotodo.IsNotFound(err))
}

func TestService_List_DefaultLimit(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		_, err := svc.Create(ctx, fmt.Sprintf("task %d", i))
		require.NoError(t, err)
	}

	todos, err := svc.List(ctx, 0, 0)
	require.NoError(t, err)
	assert.Len(t, todos, int(gotodo.DefaultListLimit))
}

func TestService_List_PaginationCompleteness(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	const n = 25
	inserted := make([]uint32, 0, n)
	for i := 0; i < n; i++ {
		todo, err := svc.Create(ctx, fmt.Sprintf("task %d", i))
		require.NoError(t, err)
		inserted = append(inserted, todo.ID)
	}

	// Concatenating pages enumerates every record exactly once, in
	// insertion order
	var listed []uint32
	for offset := uint32(0); ; offset += 10 {
		page, err := svc.List(ctx, offset, 10)
		require.NoError(t, err)
		if len(page) == 0 {
			break
		}
		assert.LessOrEqual(t, len(page), 10)
		for _, todo := range page {
			listed = append(listed, todo.ID)
		}
	}

	assert.Equal(t, inserted, listed)
}

func TestService_List_OffsetPastSize(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, "only task")
	require.NoError(t, err)

	todos, err := svc.List(ctx, 100, 10)
	require.NoError(t, err)
	assert.Empty(t, todos)
}

func TestService_Update_Idempotent(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, "Buy milk")
	require.NoError(t, err)

	partial := gotodo.PartialTodo{Task: "Buy oat milk", Done: true}

	once, err := svc.Update(ctx, created.ID, partial)
	require.NoError(t, err)

	twice, err := svc.Update(ctx, created.ID, partial)
	require.NoError(t, err)
	assert.Equal(t, once, twice)

	stored, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, once, stored)
}

func TestService_Update_NotFound(t *testing.T) {
	svc := newTestService()

	_, err := svc.Update(context.Background(), 999, gotodo.PartialTodo{Task: "x", Done: true})
	assert.True(t, gotodo.IsNotFound(err))
}

func TestService_Delete_ThenGet(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, "Buy milk")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.GetByID(ctx, created.ID)
	assert.True(t, gotodo.IsNotFound(err))
}

func TestService_Delete_AbsentID(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, "Buy milk")
	require.NoError(t, err)

	// Deleting a non-existent id succeeds with no observable change
	require.NoError(t, svc.Delete(ctx, 424242))

	todos, err := svc.List(ctx, 0, 10)
	require.NoError(t, err)
	assert.Len(t, todos, 1)
}

func TestService_DrinkWaterScenario(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, "Drink water")
	require.NoError(t, err)
	assert.Equal(t, gotodo.HashID("Drink water"), created.ID)
	assert.Equal(t, "Drink water", created.Task)
	assert.False(t, created.Done)

	updated, err := svc.Update(ctx, created.ID, gotodo.PartialTodo{Task: "Drink nothing", Done: true})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Drink nothing", updated.Task)
	assert.True(t, updated.Done)

	fetched, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, fetched)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.GetByID(ctx, created.ID)
	assert.True(t, gotodo.IsNotFound(err))
}
