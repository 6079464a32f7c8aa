package sqldoc

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"portfolioapi/internal/model"
	"portfolioapi/internal/repository"
)

// ContactRepository is a database/sql implementation of repository.ContactRepository.
type ContactRepository struct {
	db *sql.DB
}

// NewContactRepository creates a new ContactRepository.
func NewContactRepository(db *sql.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

var _ repository.ContactRepository = (*ContactRepository)(nil)

// Create inserts a single submission document.
func (r *ContactRepository) Create(ctx context.Context, s *model.ContactSubmission) error {
	const q = `
		INSERT INTO contact_submissions (id, doc, created_at)
		VALUES ($1, $2, $3)
	`
	doc, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode contact document: %w", err)
	}
	res, err := r.db.ExecContext(ctx, q, s.ID, string(doc), s.Timestamp)
	if err != nil {
		return err
	}
	return requireInserted(res)
}

// ListNewestFirst returns up to limit submissions, latest timestamp first.
func (r *ContactRepository) ListNewestFirst(ctx context.Context, limit int) ([]model.ContactSubmission, error) {
	const q = `
		SELECT doc
		FROM contact_submissions
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ContactSubmission, 0)
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var s model.ContactSubmission
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("decode contact document: %w", err)
		}
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
