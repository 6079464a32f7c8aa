package sqldoc

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"portfolioapi/internal/model"
	"portfolioapi/internal/repository"
)

// ClientRepository is a database/sql implementation of repository.ClientRepository.
// Each row holds the full client as a JSON document plus the columns used for ordering.
type ClientRepository struct {
	db *sql.DB
}

// NewClientRepository creates a new ClientRepository.
func NewClientRepository(db *sql.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

var _ repository.ClientRepository = (*ClientRepository)(nil)

const insertClient = `
		INSERT INTO clients (id, doc, created_at)
		VALUES ($1, $2, $3)
	`

// Count returns the number of rows in clients.
func (r *ClientRepository) Count(ctx context.Context) (int64, error) {
	const q = `SELECT COUNT(*) FROM clients`
	var n int64
	if err := r.db.QueryRowContext(ctx, q).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// List returns up to limit clients in insertion order.
func (r *ClientRepository) List(ctx context.Context, limit int) ([]model.Client, error) {
	const q = `
		SELECT doc
		FROM clients
		ORDER BY created_at ASC, id ASC
		LIMIT $1
	`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Client, 0)
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var c model.Client
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, fmt.Errorf("decode client document: %w", err)
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Create inserts a single client document.
func (r *ClientRepository) Create(ctx context.Context, c *model.Client) error {
	doc, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode client document: %w", err)
	}
	res, err := r.db.ExecContext(ctx, insertClient, c.ID, string(doc), c.CreatedAt)
	if err != nil {
		return err
	}
	return requireInserted(res)
}

// CreateMany inserts all clients in one transaction.
func (r *ClientRepository) CreateMany(ctx context.Context, cs []model.Client) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	inserted := 0
	for i := range cs {
		doc, err := json.Marshal(&cs[i])
		if err != nil {
			return 0, fmt.Errorf("encode client document: %w", err)
		}
		res, err := tx.ExecContext(ctx, insertClient, cs[i].ID, string(doc), cs[i].CreatedAt)
		if err != nil {
			return 0, err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, err
		}
		inserted += int(n)
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return inserted, nil
}

func requireInserted(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotInserted
	}
	return nil
}
