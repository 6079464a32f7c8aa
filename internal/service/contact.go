package service

import (
	"context"
	"fmt"

	"portfolioapi/internal/model"
	"portfolioapi/internal/repository"
)

// ContactService defines the use cases for the contact form.
type ContactService interface {
	// Submit stores a new submission with a server-assigned id and UTC timestamp.
	Submit(ctx context.Context, in model.ContactSubmissionCreate) (*model.ContactSubmission, error)

	// List returns up to MaxListSize submissions, newest first.
	List(ctx context.Context) ([]model.ContactSubmission, error)
}

type contactService struct {
	repo repository.ContactRepository
	opts options
}

// NewContactService constructs a new ContactService.
func NewContactService(repo repository.ContactRepository, opts ...Option) ContactService {
	return &contactService{repo: repo, opts: applyOptions(opts)}
}

func (s *contactService) Submit(ctx context.Context, in model.ContactSubmissionCreate) (*model.ContactSubmission, error) {
	sub := &model.ContactSubmission{
		ID:        s.opts.newID(),
		Name:      in.Name,
		Email:     in.Email,
		Message:   in.Message,
		Timestamp: s.opts.now(),
	}
	if err := s.repo.Create(ctx, sub); err != nil {
		return nil, fmt.Errorf("insert contact submission: %w", err)
	}
	s.opts.log.Info().Str("email", sub.Email).Str("id", sub.ID).Msg("contact submission received")
	return sub, nil
}

func (s *contactService) List(ctx context.Context) ([]model.ContactSubmission, error) {
	items, err := s.repo.ListNewestFirst(ctx, MaxListSize)
	if err != nil {
		return nil, fmt.Errorf("list contact submissions: %w", err)
	}
	if items == nil {
		items = []model.ContactSubmission{}
	}
	return items, nil
}
