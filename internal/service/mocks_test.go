package service

import (
	"context"

	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockTaskStore mocks the store.TaskStore interface
type MockTaskStore struct {
	mock.Mock
}

func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	args := m.Called(ctx, task)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *MockTaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *MockTaskStore) Update(
	ctx context.Context,
	id int64,
	task *domain.Task,
) (*domain.Task, error) {
	args := m.Called(ctx, id, task)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *MockTaskStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTaskStore) List(ctx context.Context) ([]*domain.Task, error) {
	args := m.Called(ctx)
	return tasksArg(args)
}

func (m *MockTaskStore) FindByTitle(ctx context.Context, substring string) ([]*domain.Task, error) {
	args := m.Called(ctx, substring)
	return tasksArg(args)
}

func (m *MockTaskStore) FindByDueDate(ctx context.Context, date domain.Date) ([]*domain.Task, error) {
	args := m.Called(ctx, date)
	return tasksArg(args)
}

func (m *MockTaskStore) FindByStatus(
	ctx context.Context,
	status domain.Status,
) ([]*domain.Task, error) {
	args := m.Called(ctx, status)
	return tasksArg(args)
}

func tasksArg(args mock.Arguments) ([]*domain.Task, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Task), args.Error(1)
}
