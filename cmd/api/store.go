package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"portfolioapi/internal/config"
	"portfolioapi/internal/database"
	"portfolioapi/internal/database/migration"
	"portfolioapi/internal/repository"
	"portfolioapi/internal/repository/mongodb"
	"portfolioapi/internal/repository/sqldoc"
)

// openStore connects the document store selected by cfg.Driver. SQL backends
// get their tables created before the store is returned.
func openStore(ctx context.Context, cfg config.StoreConfig, log zerolog.Logger) (repository.Store, error) {
	switch cfg.Driver {
	case config.DriverMongo:
		cli, err := database.NewMongo(cfg.Mongo)
		if err != nil {
			return nil, err
		}
		return mongodb.NewStore(cli, cfg.Mongo.Name), nil

	case config.DriverPostgres:
		db, err := database.NewPostgres(cfg.Postgres)
		if err != nil {
			return nil, err
		}
		if err := migration.EnsureMigrated(ctx, db, migration.Postgres, log); err != nil {
			_ = db.Close()
			return nil, err
		}
		return sqldoc.NewStore(db), nil

	case config.DriverSQLite:
		db, err := database.NewSQLite(cfg.SQLite)
		if err != nil {
			return nil, err
		}
		if err := migration.EnsureMigrated(ctx, db, migration.SQLite, log); err != nil {
			_ = db.Close()
			return nil, err
		}
		return sqldoc.NewStore(db), nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}
