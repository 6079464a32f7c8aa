package mocks

import (
	"context"
	"io"

	"portfolioapi/internal/model"
	"portfolioapi/internal/service"
	"portfolioapi/internal/storage"

	"github.com/stretchr/testify/mock"
)

type MockPortfolioService struct {
	mock.Mock
}

func (m *MockPortfolioService) Stats(ctx context.Context) (*model.PortfolioStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PortfolioStats), args.Error(1)
}

func (m *MockPortfolioService) ListClients(ctx context.Context) ([]model.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Client), args.Error(1)
}

func (m *MockPortfolioService) CreateClient(ctx context.Context, c model.Client) (*model.Client, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Client), args.Error(1)
}

func (m *MockPortfolioService) Seed(ctx context.Context) (*service.SeedResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SeedResult), args.Error(1)
}

type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) Submit(ctx context.Context, in model.ContactSubmissionCreate) (*model.ContactSubmission, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ContactSubmission), args.Error(1)
}

func (m *MockContactService) List(ctx context.Context) ([]model.ContactSubmission, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ContactSubmission), args.Error(1)
}

type MockImageService struct {
	mock.Mock
}

func (m *MockImageService) Upload(ctx context.Context, r io.Reader, originalFilename, contentType string, size int64) (*model.Image, error) {
	args := m.Called(ctx, r, originalFilename, contentType, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Image), args.Error(1)
}

func (m *MockImageService) Open(ctx context.Context, name string) (io.ReadCloser, storage.ObjectInfo, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Get(1).(storage.ObjectInfo), args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(storage.ObjectInfo), args.Error(2)
}
