package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Dialect selects the DDL flavour.
type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = map[Dialect][]migrationStep{
	Postgres: {
		{
			Name: "create_table_clients",
			SQL: `CREATE TABLE IF NOT EXISTS clients (
  id         TEXT        PRIMARY KEY,
  doc        JSONB       NOT NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
		},
		{
			Name: "create_table_contact_submissions",
			SQL: `CREATE TABLE IF NOT EXISTS contact_submissions (
  id         TEXT        PRIMARY KEY,
  doc        JSONB       NOT NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
		},
	},
	SQLite: {
		{
			Name: "create_table_clients",
			SQL: `CREATE TABLE IF NOT EXISTS clients (
  id         TEXT      PRIMARY KEY,
  doc        TEXT      NOT NULL,
  created_at TIMESTAMP NOT NULL
);`,
		},
		{
			Name: "create_table_contact_submissions",
			SQL: `CREATE TABLE IF NOT EXISTS contact_submissions (
  id         TEXT      PRIMARY KEY,
  doc        TEXT      NOT NULL,
  created_at TIMESTAMP NOT NULL
);`,
		},
	},
}

var sentinelQuery = map[Dialect]string{
	Postgres: "SELECT to_regclass('public.contact_submissions') IS NOT NULL",
	SQLite:   "SELECT COUNT(*) > 0 FROM sqlite_master WHERE type = 'table' AND name = 'contact_submissions'",
}

// EnsureMigrated checks if the 'contact_submissions' table exists and creates the
// document tables if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, dialect Dialect, log zerolog.Logger) error {
	query, ok := sentinelQuery[dialect]
	if !ok {
		return fmt.Errorf("unsupported dialect: %s", dialect)
	}

	start := time.Now()
	log = log.With().Str("component", "database").Str("dialect", string(dialect)).Logger()

	log.Info().Str("event", "db_migration_check").Str("status", "starting").Send()

	var exists bool
	if err := db.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		log.Error().
			Str("event", "db_migration_failed").
			Str("status", "error").
			Err(err).
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("failed to check sentinel table")
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info().
			Str("event", "db_migration_skip").
			Str("status", "success").
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("schema already exists, skipping migration")
		return nil
	}

	log.Info().Str("event", "db_migration_start").Str("status", "in_progress").Send()

	for _, step := range steps[dialect] {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error().
				Str("event", "db_migration_failed").
				Str("status", "error").
				Str("migration_step", step.Name).
				Err(err).
				Int64("duration_ms", time.Since(start).Milliseconds()).
				Int64("step_duration_ms", time.Since(stepStart).Milliseconds()).
				Send()
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Info().
			Str("event", "db_migration_step").
			Str("status", "success").
			Str("migration_step", step.Name).
			Int64("step_duration_ms", time.Since(stepStart).Milliseconds()).
			Send()
	}

	log.Info().
		Str("event", "db_migration_success").
		Str("status", "success").
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Send()

	return nil
}
