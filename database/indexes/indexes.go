// Package indexes declares the collection indexes the application
// depends on and brings the id counter in line with seeded data.
package indexes

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shashiranjanraj/ridewithme/app/repositories"
	"github.com/shashiranjanraj/ridewithme/pkg/database"
	"github.com/shashiranjanraj/ridewithme/pkg/logger"
)

// Ensure creates all required indexes. Index creation is idempotent, so
// this runs on every boot.
func Ensure(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(database.CarsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "price", Value: 1}}},
		{Keys: bson.D{{Key: "ownerId", Value: 1}}},
		{Keys: bson.D{{Key: "owner", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("cars indexes: %w", err)
	}

	_, err = db.Collection(database.UsersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("users indexes: %w", err)
	}

	// Seeded catalogs carry explicit ids; the counter must never fall
	// behind them or a create would collide with the unique index.
	if err := repositories.NewCarRepository(db).SyncCounter(ctx); err != nil {
		return err
	}

	logger.Info("indexes ensured")
	return nil
}
