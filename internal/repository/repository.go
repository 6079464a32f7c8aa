// Package repository contains data access layer abstractions.
// Implementations live in subpackages (mongodb, sqldoc) inside this directory.
package repository

import (
	"context"
	"errors"

	"portfolioapi/internal/model"
)

// ErrNotInserted is returned when the store acknowledged the write but stored nothing.
var ErrNotInserted = errors.New("no document inserted")

// ClientRepository is the clients collection. Persistence only, no business rules.
type ClientRepository interface {
	// Count returns the number of stored clients.
	Count(ctx context.Context) (int64, error)

	// List returns at most limit clients in insertion order.
	List(ctx context.Context, limit int) ([]model.Client, error)

	// Create inserts one client as given.
	Create(ctx context.Context, c *model.Client) error

	// CreateMany inserts all clients and returns how many were stored.
	CreateMany(ctx context.Context, cs []model.Client) (int, error)
}

// ContactRepository is the contact_submissions collection.
type ContactRepository interface {
	// Create inserts one submission as given.
	Create(ctx context.Context, s *model.ContactSubmission) error

	// ListNewestFirst returns at most limit submissions sorted by timestamp descending.
	ListNewestFirst(ctx context.Context, limit int) ([]model.ContactSubmission, error)
}

// Store is one open document store connection and its collections.
// It is opened once at startup and closed once at shutdown.
type Store interface {
	Clients() ClientRepository
	Contacts() ContactRepository
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
