package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	connectTimeout = 10 * time.Second
	// defaultTimeout bounds individual repository operations.
	defaultTimeout = 5 * time.Second
)

// Config selects the MongoDB deployment and database the repositories use.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect dials the deployment named by cfg.URI and pings a primary before
// handing back the client and database, so a bad URI fails at startup rather
// than on the first query. Timeout falls back to ten seconds when unset.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = connectTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opts := options.Client().ApplyURI(cfg.URI).SetConnectTimeout(timeout)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, fmt.Errorf("pinging mongo: %w", err)
	}

	return client, client.Database(cfg.Database), nil
}
