package migration

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureMigrated(t *testing.T) {
	ctx := context.Background()

	t.Run("runs every step when schema is missing", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT to_regclass").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS clients").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS contact_submissions").
			WillReturnResult(sqlmock.NewResult(0, 0))

		var buf bytes.Buffer
		err = EnsureMigrated(ctx, db, Postgres, zerolog.New(&buf))

		assert.NoError(t, err)
		assert.Contains(t, buf.String(), "db_migration_success")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("skips when schema exists", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT COUNT\\(\\*\\) > 0 FROM sqlite_master").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		var buf bytes.Buffer
		err = EnsureMigrated(ctx, db, SQLite, zerolog.New(&buf))

		assert.NoError(t, err)
		assert.Contains(t, buf.String(), "db_migration_skip")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("sentinel error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT to_regclass").WillReturnError(errors.New("conn refused"))

		err = EnsureMigrated(ctx, db, Postgres, zerolog.Nop())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to check sentinel table: conn refused")
	})

	t.Run("step error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT to_regclass").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS clients").
			WillReturnError(errors.New("permission denied"))

		err = EnsureMigrated(ctx, db, Postgres, zerolog.Nop())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "migration step create_table_clients failed")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown dialect", func(t *testing.T) {
		err := EnsureMigrated(ctx, nil, Dialect("oracle"), zerolog.Nop())
		assert.Error(t, err)
	})
}
