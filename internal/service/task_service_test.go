package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, opts ...Option) (TaskService, *MockTaskStore) {
	t.Helper()

	tasks := new(MockTaskStore)
	svc, err := NewTaskService(tasks, nil, opts...)
	require.NoError(t, err)
	return svc, tasks
}

func TestNewTaskService_NilStore(t *testing.T) {
	svc, err := NewTaskService(nil, nil)

	assert.Nil(t, svc)
	var svcErr *TaskServiceError
	require.True(t, errors.As(err, &svcErr))
	assert.Equal(t, "create_service", svcErr.Operation)
}

func TestTaskService_GetTask(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		svc, tasks := newTestService(t)
		want := &domain.Task{ID: 1, Title: "Study X"}
		tasks.On("GetByID", ctx, int64(1)).Return(want, nil)

		got, err := svc.GetTask(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, want, got)
		tasks.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		svc, tasks := newTestService(t)
		tasks.On("GetByID", ctx, int64(999)).Return(nil, store.ErrTaskNotFound)

		_, err := svc.GetTask(ctx, 999)

		assert.ErrorIs(t, err, ErrTaskNotFound)
	})

	t.Run("store failure", func(t *testing.T) {
		svc, tasks := newTestService(t)
		tasks.On("GetByID", ctx, int64(2)).Return(nil, errors.New("connection refused"))

		_, err := svc.GetTask(ctx, 2)

		var svcErr *TaskServiceError
		require.True(t, errors.As(err, &svcErr))
		assert.Equal(t, "get_task", svcErr.Operation)
	})
}

func TestTaskService_CreateTask(t *testing.T) {
	ctx := context.Background()
	due := domain.Date{Year: 2026, Month: time.October, Day: 18}

	t.Run("success", func(t *testing.T) {
		svc, tasks := newTestService(t)
		payload := domain.NewTask("Study X", "", &due, domain.StatusPending)
		created := payload.Clone()
		created.ID = 7
		tasks.On("Create", ctx, payload).Return(created, nil)

		got, err := svc.CreateTask(ctx, payload)

		require.NoError(t, err)
		assert.Equal(t, int64(7), got.ID)
		tasks.AssertExpectations(t)
	})

	t.Run("nil payload", func(t *testing.T) {
		svc, tasks := newTestService(t)

		_, err := svc.CreateTask(ctx, nil)

		assert.ErrorIs(t, err, ErrInvalidTask)
		tasks.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unknown status code", func(t *testing.T) {
		svc, tasks := newTestService(t)

		_, err := svc.CreateTask(ctx, &domain.Task{Title: "x", Status: domain.Status(4)})

		assert.ErrorIs(t, err, ErrInvalidTask)
		tasks.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestTaskService_UpdateTask(t *testing.T) {
	ctx := context.Background()
	payload := domain.NewTask("renamed", "", nil, domain.StatusDone)

	t.Run("success", func(t *testing.T) {
		svc, tasks := newTestService(t)
		updated := payload.Clone()
		updated.ID = 3
		tasks.On("Update", ctx, int64(3), payload).Return(updated, nil)

		got, err := svc.UpdateTask(ctx, 3, payload)

		require.NoError(t, err)
		assert.Equal(t, updated, got)
	})

	t.Run("not found", func(t *testing.T) {
		svc, tasks := newTestService(t)
		tasks.On("Update", ctx, int64(999), payload).Return(nil, store.ErrTaskNotFound)

		_, err := svc.UpdateTask(ctx, 999, payload)

		assert.ErrorIs(t, err, ErrTaskNotFound)
		tasks.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestTaskService_DeleteTask(t *testing.T) {
	ctx := context.Background()
	svc, tasks := newTestService(t)
	tasks.On("Delete", ctx, int64(4)).Return(nil)
	tasks.On("Delete", ctx, int64(999)).Return(store.ErrTaskNotFound)

	assert.NoError(t, svc.DeleteTask(ctx, 4))
	assert.ErrorIs(t, svc.DeleteTask(ctx, 999), ErrTaskNotFound)
	tasks.AssertExpectations(t)
}

func TestTaskService_ListAndSearch(t *testing.T) {
	ctx := context.Background()
	today := domain.Date{Year: 2026, Month: time.October, Day: 18}
	a := &domain.Task{ID: 1, Title: "Study X", DueDate: &today}
	b := &domain.Task{ID: 2, Title: "Study Y", DueDate: &today, Status: domain.StatusDone}

	svc, tasks := newTestService(t)
	tasks.On("List", ctx).Return([]*domain.Task{a, b}, nil)
	tasks.On("FindByTitle", ctx, "Study").Return([]*domain.Task{a, b}, nil)
	tasks.On("FindByTitle", ctx, "none").Return([]*domain.Task{}, nil)
	tasks.On("FindByDueDate", ctx, today).Return([]*domain.Task{a, b}, nil)

	all, err := svc.ListTasks(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	byTitle, err := svc.SearchByTitle(ctx, "Study")
	require.NoError(t, err)
	assert.Len(t, byTitle, 2)

	none, err := svc.SearchByTitle(ctx, "none")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	byDate, err := svc.SearchByDate(ctx, today)
	require.NoError(t, err)
	assert.Equal(t, []*domain.Task{a, b}, byDate)

	tasks.AssertExpectations(t)
}

func TestTaskService_SearchByStatus(t *testing.T) {
	ctx := context.Background()
	pending := []*domain.Task{{ID: 1}, {ID: 3}}
	done := []*domain.Task{{ID: 2, Status: domain.StatusDone}}

	t.Run("strict", func(t *testing.T) {
		tests := []struct {
			label   string
			want    []*domain.Task
			wantErr error
		}{
			{label: "Pending", want: pending},
			{label: "Pendente", want: pending},
			{label: "Done", want: done},
			{label: "Finalizado", want: done},
			{label: "pending", wantErr: ErrInvalidStatus},
			{label: "Archived", wantErr: ErrInvalidStatus},
			{label: "", wantErr: ErrInvalidStatus},
		}

		for _, tt := range tests {
			t.Run(tt.label, func(t *testing.T) {
				svc, tasks := newTestService(t)
				tasks.On("FindByStatus", ctx, domain.StatusPending).Return(pending, nil).Maybe()
				tasks.On("FindByStatus", ctx, domain.StatusDone).Return(done, nil).Maybe()

				got, err := svc.SearchByStatus(ctx, tt.label)

				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
					tasks.AssertNotCalled(t, "FindByStatus", mock.Anything, mock.Anything)
					return
				}
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			})
		}
	})

	t.Run("lenient", func(t *testing.T) {
		svc, tasks := newTestService(t, WithLenientStatusFilter(true))
		tasks.On("FindByStatus", ctx, domain.StatusPending).Return(pending, nil)
		tasks.On("FindByStatus", ctx, domain.StatusDone).Return(done, nil)

		got, err := svc.SearchByStatus(ctx, "Pending")
		require.NoError(t, err)
		assert.Equal(t, pending, got)

		got, err = svc.SearchByStatus(ctx, "Archived")
		require.NoError(t, err)
		assert.Equal(t, done, got, "unknown labels fall back to Done")
	})
}
