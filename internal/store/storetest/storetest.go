// Package storetest holds a behavioural test suite that every
// store.TaskStore implementation must pass.
package storetest

import (
	"context"
	"testing"
	"time"

	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Factory returns an empty store for a single subtest. Cleanup must be
// registered on t.
type Factory func(t *testing.T) store.TaskStore

// MissingID is an ID no test ever creates. It is large so that sequences
// advanced by earlier runs cannot reach it.
const MissingID int64 = 1 << 40

// Today is the fixed reference day used by the seed data.
var Today = domain.Date{Year: 2026, Month: time.October, Day: 18}

// Seed holds the three reference tasks inserted by SeedTasks.
type Seed struct {
	A, B, C *domain.Task
}

// SeedTasks inserts the reference data set:
// A{"Study X", today, Pending}, B{"Study Y", today, Done}, C{"Project", tomorrow, Pending}.
func SeedTasks(t *testing.T, ctx context.Context, s store.TaskStore) Seed {
	t.Helper()

	tomorrow := Today.AddDays(1)
	today := Today

	var seed Seed
	var err error
	seed.A, err = s.Create(ctx, domain.NewTask("Study X", "", &today, domain.StatusPending))
	require.NoError(t, err)
	seed.B, err = s.Create(ctx, domain.NewTask("Study Y", "", &today, domain.StatusDone))
	require.NoError(t, err)
	seed.C, err = s.Create(ctx, domain.NewTask("Project", "", &tomorrow, domain.StatusPending))
	require.NoError(t, err)
	return seed
}

// Run executes the full suite against stores produced by newStore.
func Run(t *testing.T, newStore Factory) {
	t.Run("CreateAssignsID", func(t *testing.T) { testCreateAssignsID(t, newStore(t)) })
	t.Run("CreateIgnoresPayloadID", func(t *testing.T) { testCreateIgnoresPayloadID(t, newStore(t)) })
	t.Run("GetByID", func(t *testing.T) { testGetByID(t, newStore(t)) })
	t.Run("GetByIDNotFound", func(t *testing.T) { testGetByIDNotFound(t, newStore(t)) })
	t.Run("ReturnedTaskIsCopy", func(t *testing.T) { testReturnedTaskIsCopy(t, newStore(t)) })
	t.Run("Update", func(t *testing.T) { testUpdate(t, newStore(t)) })
	t.Run("UpdateClearsDueDate", func(t *testing.T) { testUpdateClearsDueDate(t, newStore(t)) })
	t.Run("UpdateNotFound", func(t *testing.T) { testUpdateNotFound(t, newStore(t)) })
	t.Run("Delete", func(t *testing.T) { testDelete(t, newStore(t)) })
	t.Run("DeleteNotFound", func(t *testing.T) { testDeleteNotFound(t, newStore(t)) })
	t.Run("ListEmpty", func(t *testing.T) { testListEmpty(t, newStore(t)) })
	t.Run("ListOrder", func(t *testing.T) { testListOrder(t, newStore(t)) })
	t.Run("FindByTitle", func(t *testing.T) { testFindByTitle(t, newStore(t)) })
	t.Run("FindByDueDate", func(t *testing.T) { testFindByDueDate(t, newStore(t)) })
	t.Run("FindByStatus", func(t *testing.T) { testFindByStatus(t, newStore(t)) })
	t.Run("ReferenceScenarios", func(t *testing.T) { testReferenceScenarios(t, newStore(t)) })
}

func ids(tasks []*domain.Task) []int64 {
	out := make([]int64, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, task.ID)
	}
	return out
}

func testCreateAssignsID(t *testing.T, s store.TaskStore) {
	ctx := context.Background()
	due := Today

	first, err := s.Create(ctx, domain.NewTask("Write report", "quarterly", &due, domain.StatusPending))
	require.NoError(t, err)
	second, err := s.Create(ctx, domain.NewTask("Write report", "quarterly", nil, domain.StatusDone))
	require.NoError(t, err)

	assert.Positive(t, first.ID)
	assert.Positive(t, second.ID)
	assert.NotEqual(t, first.ID, second.ID, "identical payloads must get distinct IDs")

	assert.Equal(t, "Write report", first.Title)
	assert.Equal(t, "quarterly", first.Description)
	require.NotNil(t, first.DueDate)
	assert.Equal(t, Today, *first.DueDate)
	assert.Equal(t, domain.StatusPending, first.Status)
	assert.Nil(t, second.DueDate)
	assert.Equal(t, domain.StatusDone, second.Status)
}

func testCreateIgnoresPayloadID(t *testing.T, s store.TaskStore) {
	ctx := context.Background()

	existing, err := s.Create(ctx, domain.NewTask("existing", "", nil, domain.StatusPending))
	require.NoError(t, err)

	payload := domain.NewTask("new", "", nil, domain.StatusPending)
	payload.ID = existing.ID
	created, err := s.Create(ctx, payload)
	require.NoError(t, err)

	assert.NotEqual(t, existing.ID, created.ID)
	got, err := s.GetByID(ctx, existing.ID)
	require.NoError(t, err)
	assert.Equal(t, "existing", got.Title, "create must never overwrite another task")
}

func testGetByID(t *testing.T, s store.TaskStore) {
	ctx := context.Background()
	due := Today

	created, err := s.Create(ctx, domain.NewTask("", "empty title is allowed", &due, domain.StatusDone))
	require.NoError(t, err)

	got, err := s.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func testGetByIDNotFound(t *testing.T, s store.TaskStore) {
	_, err := s.GetByID(context.Background(), MissingID)

	assert.ErrorIs(t, err, store.ErrTaskNotFound)
	assert.True(t, store.IsNotFoundError(err))
}

func testReturnedTaskIsCopy(t *testing.T, s store.TaskStore) {
	ctx := context.Background()
	due := Today

	created, err := s.Create(ctx, domain.NewTask("original", "", &due, domain.StatusPending))
	require.NoError(t, err)

	created.Title = "mutated"
	created.DueDate.Day = 1

	got, err := s.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "original", got.Title)
	assert.Equal(t, Today, *got.DueDate)
}

func testUpdate(t *testing.T, s store.TaskStore) {
	ctx := context.Background()
	due := Today
	newDue := Today.AddDays(7)

	created, err := s.Create(ctx, domain.NewTask("before", "old", &due, domain.StatusPending))
	require.NoError(t, err)

	payload := domain.NewTask("after", "new", &newDue, domain.StatusDone)
	payload.ID = created.ID + 1000
	updated, err := s.Update(ctx, created.ID, payload)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID, "update must keep the path ID")
	assert.Equal(t, "after", updated.Title)
	assert.Equal(t, "new", updated.Description)
	require.NotNil(t, updated.DueDate)
	assert.Equal(t, newDue, *updated.DueDate)
	assert.Equal(t, domain.StatusDone, updated.Status)

	got, err := s.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)

	all, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func testUpdateClearsDueDate(t *testing.T, s store.TaskStore) {
	ctx := context.Background()
	due := Today

	created, err := s.Create(ctx, domain.NewTask("dated", "", &due, domain.StatusPending))
	require.NoError(t, err)

	updated, err := s.Update(ctx, created.ID, domain.NewTask("undated", "", nil, domain.StatusPending))
	require.NoError(t, err)
	assert.Nil(t, updated.DueDate)

	matches, err := s.FindByDueDate(ctx, Today)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func testUpdateNotFound(t *testing.T, s store.TaskStore) {
	ctx := context.Background()

	_, err := s.Update(ctx, MissingID, domain.NewTask("ghost", "", nil, domain.StatusDone))
	assert.ErrorIs(t, err, store.ErrTaskNotFound)

	all, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all, "a failed update must not create a task")
}

func testDelete(t *testing.T, s store.TaskStore) {
	ctx := context.Background()

	keep, err := s.Create(ctx, domain.NewTask("keep", "", nil, domain.StatusPending))
	require.NoError(t, err)
	drop, err := s.Create(ctx, domain.NewTask("drop", "", nil, domain.StatusPending))
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, drop.ID))

	_, err = s.GetByID(ctx, drop.ID)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)

	assert.ErrorIs(t, s.Delete(ctx, drop.ID), store.ErrTaskNotFound, "second delete reports not found")

	all, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{keep.ID}, ids(all))
}

func testDeleteNotFound(t *testing.T, s store.TaskStore) {
	assert.ErrorIs(t, s.Delete(context.Background(), MissingID), store.ErrTaskNotFound)
}

func testListEmpty(t *testing.T, s store.TaskStore) {
	ctx := context.Background()

	all, err := s.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)

	byTitle, err := s.FindByTitle(ctx, "anything")
	require.NoError(t, err)
	assert.NotNil(t, byTitle)

	byDate, err := s.FindByDueDate(ctx, Today)
	require.NoError(t, err)
	assert.NotNil(t, byDate)

	byStatus, err := s.FindByStatus(ctx, domain.StatusDone)
	require.NoError(t, err)
	assert.NotNil(t, byStatus)
}

func testListOrder(t *testing.T, s store.TaskStore) {
	seed := SeedTasks(t, context.Background(), s)

	all, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int64{seed.A.ID, seed.B.ID, seed.C.ID}, ids(all))
	assert.Equal(t, seed.B, all[1])
}

func testFindByTitle(t *testing.T, s store.TaskStore) {
	ctx := context.Background()
	seed := SeedTasks(t, ctx, s)
	percent, err := s.Create(ctx, domain.NewTask("100% done", "", nil, domain.StatusDone))
	require.NoError(t, err)

	tests := []struct {
		name      string
		substring string
		want      []int64
	}{
		{name: "prefix", substring: "Study", want: []int64{seed.A.ID, seed.B.ID}},
		{name: "suffix", substring: "ject", want: []int64{seed.C.ID}},
		{name: "case sensitive", substring: "study", want: []int64{}},
		{name: "empty matches all", substring: "", want: []int64{seed.A.ID, seed.B.ID, seed.C.ID, percent.ID}},
		{name: "percent is literal", substring: "%", want: []int64{percent.ID}},
		{name: "underscore is literal", substring: "Study_", want: []int64{}},
		{name: "no match", substring: "Nope", want: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.FindByTitle(ctx, tt.substring)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func testFindByDueDate(t *testing.T, s store.TaskStore) {
	ctx := context.Background()
	seed := SeedTasks(t, ctx, s)
	_, err := s.Create(ctx, domain.NewTask("someday", "", nil, domain.StatusPending))
	require.NoError(t, err)

	today, err := s.FindByDueDate(ctx, Today)
	require.NoError(t, err)
	assert.Equal(t, []int64{seed.A.ID, seed.B.ID}, ids(today))

	tomorrow, err := s.FindByDueDate(ctx, Today.AddDays(1))
	require.NoError(t, err)
	assert.Equal(t, []int64{seed.C.ID}, ids(tomorrow))

	yesterday, err := s.FindByDueDate(ctx, Today.AddDays(-1))
	require.NoError(t, err)
	assert.Empty(t, yesterday)
}

func testFindByStatus(t *testing.T, s store.TaskStore) {
	ctx := context.Background()
	seed := SeedTasks(t, ctx, s)

	pending, err := s.FindByStatus(ctx, domain.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, []int64{seed.A.ID, seed.C.ID}, ids(pending))

	done, err := s.FindByStatus(ctx, domain.StatusDone)
	require.NoError(t, err)
	assert.Equal(t, []int64{seed.B.ID}, ids(done))
}

func testReferenceScenarios(t *testing.T, s store.TaskStore) {
	ctx := context.Background()
	seed := SeedTasks(t, ctx, s)

	got, err := s.GetByID(ctx, seed.A.ID)
	require.NoError(t, err)
	assert.Equal(t, seed.A, got)

	_, err = s.GetByID(ctx, MissingID)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)

	byTitle, err := s.FindByTitle(ctx, "Study")
	require.NoError(t, err)
	assert.ElementsMatch(t, []*domain.Task{seed.A, seed.B}, byTitle)

	byDate, err := s.FindByDueDate(ctx, Today)
	require.NoError(t, err)
	assert.ElementsMatch(t, []*domain.Task{seed.A, seed.B}, byDate)

	byStatus, err := s.FindByStatus(ctx, domain.StatusPending)
	require.NoError(t, err)
	assert.ElementsMatch(t, []*domain.Task{seed.A, seed.C}, byStatus)

	require.NoError(t, s.Delete(ctx, seed.A.ID))
	_, err = s.GetByID(ctx, seed.A.ID)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)
}
