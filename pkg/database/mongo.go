// Package database owns the MongoDB connection shared by the repositories.
package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shashiranjanraj/ridewithme/config"
)

var (
	client *mongo.Client
	db     *mongo.Database
)

// Collection names, one document collection per entity.
const (
	CarsCollection     = "cars"
	UsersCollection    = "users"
	CountersCollection = "counters"
)

// Connect opens the MongoDB client, pings it, and selects the configured
// database. Returns an error instead of calling log.Fatal so the caller can
// shut down gracefully.
func Connect(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	clientOpts := options.Client().ApplyURI(config.MongoURI()).
		SetConnectTimeout(5 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetMaxPoolSize(25)

	c, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return fmt.Errorf("database: connect: %w", err)
	}

	if err := c.Ping(ctx, nil); err != nil {
		_ = c.Disconnect(context.Background())
		return fmt.Errorf("database: ping: %w", err)
	}

	client = c
	db = c.Database(config.MongoDatabase())
	return nil
}

// Disconnect closes the client. Safe to call when Connect never succeeded.
func Disconnect(ctx context.Context) error {
	if client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return client.Disconnect(ctx)
}

// DB returns the selected database. Panics when Connect has not run;
// repositories are only constructed after a successful boot.
func DB() *mongo.Database {
	if db == nil {
		panic("database: not connected — call database.Connect first")
	}
	return db
}

// Ping verifies the connection is live, for health checks.
func Ping(ctx context.Context) error {
	if client == nil {
		return fmt.Errorf("database: not connected")
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return client.Ping(ctx, nil)
}
