package service

import (
	"context"
	"fmt"

	"portfolioapi/internal/model"
	"portfolioapi/internal/repository"
)

const (
	totalReach      = "50K+"
	successRate     = "100%"
	experienceYears = 3
)

// SeedResult reports the outcome of a seed run.
type SeedResult struct {
	Message  string `json:"message"`
	Inserted int    `json:"-"`
}

// PortfolioService defines the use cases for client case studies.
type PortfolioService interface {
	// Stats counts the stored clients and adds the fixed headline figures.
	Stats(ctx context.Context) (*model.PortfolioStats, error)

	// ListClients returns up to MaxListSize clients in insertion order.
	ListClients(ctx context.Context) ([]model.Client, error)

	// CreateClient fills in id, created_at and defaults, then stores the client.
	CreateClient(ctx context.Context, c model.Client) (*model.Client, error)

	// Seed inserts the demonstration clients unless any client already exists.
	Seed(ctx context.Context) (*SeedResult, error)
}

type portfolioService struct {
	repo repository.ClientRepository
	opts options
}

// NewPortfolioService constructs a new PortfolioService.
func NewPortfolioService(repo repository.ClientRepository, opts ...Option) PortfolioService {
	return &portfolioService{repo: repo, opts: applyOptions(opts)}
}

func (s *portfolioService) Stats(ctx context.Context) (*model.PortfolioStats, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count clients: %w", err)
	}
	return &model.PortfolioStats{
		TotalClients:    int(n),
		TotalReach:      totalReach,
		SuccessRate:     successRate,
		ExperienceYears: experienceYears,
	}, nil
}

func (s *portfolioService) ListClients(ctx context.Context) ([]model.Client, error) {
	items, err := s.repo.List(ctx, MaxListSize)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	if items == nil {
		items = []model.Client{}
	}
	return items, nil
}

func (s *portfolioService) CreateClient(ctx context.Context, c model.Client) (*model.Client, error) {
	if c.ID == "" {
		c.ID = s.opts.newID()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = s.opts.now()
	}
	if c.ProjectType == "" {
		c.ProjectType = model.DefaultProjectType
	}
	if c.AnalyticsImages == nil {
		c.AnalyticsImages = []string{}
	}
	if c.Metrics == nil {
		c.Metrics = []model.ProjectMetric{}
	}

	if err := s.repo.Create(ctx, &c); err != nil {
		return nil, fmt.Errorf("insert client: %w", err)
	}
	return &c, nil
}

func (s *portfolioService) Seed(ctx context.Context) (*SeedResult, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count clients: %w", err)
	}
	if n > 0 {
		s.opts.log.Info().Int64("clients", n).Msg("portfolio data already exists, skipping initialization")
		return &SeedResult{Message: "Portfolio data already exists"}, nil
	}

	inserted, err := s.repo.CreateMany(ctx, seedClients(s.opts.newID, s.opts.now()))
	if err != nil {
		return nil, fmt.Errorf("insert seed clients: %w", err)
	}
	s.opts.log.Info().Int("clients", inserted).Msg("portfolio data initialized")
	return &SeedResult{
		Message:  fmt.Sprintf("Initialized %d clients", inserted),
		Inserted: inserted,
	}, nil
}
