package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"portfolioapi/internal/model"
	"portfolioapi/internal/repository"
	repoMocks "portfolioapi/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func sequentialIDs() func() string {
	ids := []string{"id-1", "id-2", "id-3", "id-4"}
	i := 0
	return func() string {
		id := ids[i%len(ids)]
		i++
		return id
	}
}

func TestPortfolioService_Stats(t *testing.T) {
	ctx := context.Background()

	t.Run("uses live count", func(t *testing.T) {
		mRepo := new(repoMocks.MockClientRepository)
		mRepo.On("Count", ctx).Return(int64(7), nil)
		svc := NewPortfolioService(mRepo)

		stats, err := svc.Stats(ctx)

		require.NoError(t, err)
		assert.Equal(t, &model.PortfolioStats{
			TotalClients:    7,
			TotalReach:      "50K+",
			SuccessRate:     "100%",
			ExperienceYears: 3,
		}, stats)
		mRepo.AssertExpectations(t)
	})

	t.Run("store error", func(t *testing.T) {
		mRepo := new(repoMocks.MockClientRepository)
		mRepo.On("Count", ctx).Return(int64(0), errors.New("timeout"))
		svc := NewPortfolioService(mRepo)

		stats, err := svc.Stats(ctx)

		assert.Nil(t, stats)
		assert.EqualError(t, err, "count clients: timeout")
	})
}

func TestPortfolioService_ListClients(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		repoRes []model.Client
		repoErr error
		wantLen int
		wantErr bool
	}{
		{name: "returns clients", repoRes: []model.Client{{ID: "a"}, {ID: "b"}}, wantLen: 2},
		{name: "nil becomes empty", repoRes: nil, wantLen: 0},
		{name: "store error", repoErr: errors.New("down"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockClientRepository)
			if tt.repoErr != nil {
				mRepo.On("List", ctx, MaxListSize).Return(nil, tt.repoErr)
			} else {
				mRepo.On("List", ctx, MaxListSize).Return(tt.repoRes, nil)
			}
			svc := NewPortfolioService(mRepo)

			items, err := svc.ListClients(ctx)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, items)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, items)
			assert.Len(t, items, tt.wantLen)
			mRepo.AssertExpectations(t)
		})
	}
}

func TestPortfolioService_CreateClient(t *testing.T) {
	ctx := context.Background()

	t.Run("fills defaults", func(t *testing.T) {
		mRepo := new(repoMocks.MockClientRepository)
		mRepo.On("Create", ctx, mock.AnythingOfType("*model.Client")).Return(nil)
		svc := NewPortfolioService(mRepo, WithClock(fixedClock), WithIDGenerator(sequentialIDs()))

		got, err := svc.CreateClient(ctx, model.Client{Name: "acme", DisplayName: "Acme", Description: "d", Period: "p"})

		require.NoError(t, err)
		assert.Equal(t, "id-1", got.ID)
		assert.Equal(t, fixedNow, got.CreatedAt)
		assert.Equal(t, model.DefaultProjectType, got.ProjectType)
		assert.Equal(t, []string{}, got.AnalyticsImages)
		assert.Equal(t, []model.ProjectMetric{}, got.Metrics)
		assert.Nil(t, got.Testimonial)
		mRepo.AssertExpectations(t)
	})

	t.Run("keeps caller values", func(t *testing.T) {
		at := time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC)
		in := model.Client{
			ID:              "given",
			Name:            "acme",
			ProjectType:     "branding",
			AnalyticsImages: []string{"/api/portfolio/images/x.png"},
			CreatedAt:       at,
		}
		mRepo := new(repoMocks.MockClientRepository)
		mRepo.On("Create", ctx, mock.MatchedBy(func(c *model.Client) bool {
			return c.ID == "given" && c.ProjectType == "branding" && c.CreatedAt.Equal(at)
		})).Return(nil)
		svc := NewPortfolioService(mRepo, WithClock(fixedClock))

		got, err := svc.CreateClient(ctx, in)

		require.NoError(t, err)
		assert.Equal(t, in.AnalyticsImages, got.AnalyticsImages)
		mRepo.AssertExpectations(t)
	})

	t.Run("nothing inserted", func(t *testing.T) {
		mRepo := new(repoMocks.MockClientRepository)
		mRepo.On("Create", ctx, mock.Anything).Return(repository.ErrNotInserted)
		svc := NewPortfolioService(mRepo)

		got, err := svc.CreateClient(ctx, model.Client{Name: "acme"})

		assert.Nil(t, got)
		assert.ErrorIs(t, err, repository.ErrNotInserted)
	})
}

func TestPortfolioService_Seed(t *testing.T) {
	ctx := context.Background()

	t.Run("inserts three clients into an empty store", func(t *testing.T) {
		mRepo := new(repoMocks.MockClientRepository)
		mRepo.On("Count", ctx).Return(int64(0), nil)
		mRepo.On("CreateMany", ctx, mock.MatchedBy(func(cs []model.Client) bool {
			if len(cs) != 3 {
				return false
			}
			for _, c := range cs {
				if c.ID == "" || !c.CreatedAt.Equal(fixedNow) || c.ProjectType != model.DefaultProjectType {
					return false
				}
			}
			return cs[0].DisplayName == "CoreMars Asset Management" &&
				cs[1].DisplayName == "Yellow Atlas Properties" &&
				cs[2].DisplayName == "Bosah Oak Roe"
		})).Return(3, nil)
		svc := NewPortfolioService(mRepo, WithClock(fixedClock))

		res, err := svc.Seed(ctx)

		require.NoError(t, err)
		assert.Equal(t, "Initialized 3 clients", res.Message)
		assert.Equal(t, 3, res.Inserted)
		mRepo.AssertExpectations(t)
	})

	t.Run("skips when data exists", func(t *testing.T) {
		mRepo := new(repoMocks.MockClientRepository)
		mRepo.On("Count", ctx).Return(int64(1), nil)
		svc := NewPortfolioService(mRepo)

		res, err := svc.Seed(ctx)

		require.NoError(t, err)
		assert.Equal(t, "Portfolio data already exists", res.Message)
		mRepo.AssertNotCalled(t, "CreateMany", mock.Anything, mock.Anything)
	})

	t.Run("insert error", func(t *testing.T) {
		mRepo := new(repoMocks.MockClientRepository)
		mRepo.On("Count", ctx).Return(int64(0), nil)
		mRepo.On("CreateMany", ctx, mock.Anything).Return(0, errors.New("write conflict"))
		svc := NewPortfolioService(mRepo)

		res, err := svc.Seed(ctx)

		assert.Nil(t, res)
		assert.EqualError(t, err, "insert seed clients: write conflict")
	})
}

func TestSeedClients(t *testing.T) {
	cs := seedClients(sequentialIDs(), fixedNow)

	require.Len(t, cs, 3)
	assert.Equal(t, []string{"id-1", "id-2", "id-3"}, []string{cs[0].ID, cs[1].ID, cs[2].ID})
	assert.Len(t, cs[0].Metrics, 4)
	assert.Len(t, cs[1].Metrics, 5)
	assert.Len(t, cs[2].Metrics, 3)
	assert.Equal(t, "1,200+", cs[0].Metrics[3].Value)
	assert.Equal(t, "0 to 10k", cs[2].Metrics[0].Value)
	for _, c := range cs {
		assert.NotNil(t, c.Testimonial)
		assert.NotNil(t, c.TestimonialAuthor)
		assert.Nil(t, c.ImageURL)
		assert.Equal(t, []string{}, c.AnalyticsImages)
	}
}
