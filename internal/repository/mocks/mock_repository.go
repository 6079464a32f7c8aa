package mocks

import (
	"context"

	"portfolioapi/internal/model"
	"portfolioapi/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockClientRepository) List(ctx context.Context, limit int) ([]model.Client, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Client), args.Error(1)
}

func (m *MockClientRepository) Create(ctx context.Context, c *model.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockClientRepository) CreateMany(ctx context.Context, cs []model.Client) (int, error) {
	args := m.Called(ctx, cs)
	return args.Int(0), args.Error(1)
}

type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) Create(ctx context.Context, s *model.ContactSubmission) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockContactRepository) ListNewestFirst(ctx context.Context, limit int) ([]model.ContactSubmission, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ContactSubmission), args.Error(1)
}

// MockStore hands out the embedded repository mocks.
type MockStore struct {
	mock.Mock
	ClientRepo  *MockClientRepository
	ContactRepo *MockContactRepository
}

func NewMockStore() *MockStore {
	return &MockStore{
		ClientRepo:  new(MockClientRepository),
		ContactRepo: new(MockContactRepository),
	}
}

func (m *MockStore) Clients() repository.ClientRepository   { return m.ClientRepo }
func (m *MockStore) Contacts() repository.ContactRepository { return m.ContactRepo }

func (m *MockStore) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStore) Close(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
