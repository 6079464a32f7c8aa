package sqldoc

import (
	"context"
	"database/sql"

	"portfolioapi/internal/repository"
)

// Store keeps portfolio documents as JSON in SQL tables. It works on PostgreSQL
// (doc JSONB) and SQLite (doc TEXT) since both accept the same $n placeholders.
type Store struct {
	db       *sql.DB
	clients  *ClientRepository
	contacts *ContactRepository
}

// NewStore wraps an open database. The tables must already exist, see migration.EnsureMigrated.
func NewStore(db *sql.DB) *Store {
	return &Store{
		db:       db,
		clients:  NewClientRepository(db),
		contacts: NewContactRepository(db),
	}
}

var _ repository.Store = (*Store)(nil)

func (s *Store) Clients() repository.ClientRepository   { return s.clients }
func (s *Store) Contacts() repository.ContactRepository { return s.contacts }

// Ping checks the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the connection pool.
func (s *Store) Close(context.Context) error {
	return s.db.Close()
}
