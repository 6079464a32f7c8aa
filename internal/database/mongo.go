package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.opentelemetry.io/contrib/instrumentation/go.mongodb.org/mongo-driver/mongo/otelmongo"

	"portfolioapi/internal/config"
)

var mongoConnect = mongo.Connect

// ValidateMongoConfig checks the connection string and database name are usable.
func ValidateMongoConfig(c config.MongoConfig) error {
	if c.URL == "" || c.Name == "" {
		return fmt.Errorf("invalid mongo config: url and database name are required")
	}
	if !strings.HasPrefix(c.URL, "mongodb://") && !strings.HasPrefix(c.URL, "mongodb+srv://") {
		return fmt.Errorf("invalid mongo config: url must use the mongodb:// or mongodb+srv:// scheme")
	}
	return nil
}

// NewMongo connects the shared MongoDB client, instruments it with OpenTelemetry
// and verifies the primary is reachable.
func NewMongo(c config.MongoConfig) (*mongo.Client, error) {
	if err := ValidateMongoConfig(c); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Client().
		ApplyURI(c.URL).
		SetMonitor(otelmongo.NewMonitor()).
		SetServerSelectionTimeout(5 * time.Second)

	cli, err := mongoConnect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := cli.Ping(ctx, readpref.Primary()); err != nil {
		_ = cli.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return cli, nil
}
