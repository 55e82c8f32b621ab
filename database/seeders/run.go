// Package seeders fills the database with demo data for local
// development. Each seeder registers itself in an init function and
// `ridewithme db:seed` runs them all.
package seeders

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/ridewithme/pkg/logger"
)

// Seeder replaces one collection's content with fixture data.
type Seeder struct {
	Name string
	Run  func(ctx context.Context, db *mongo.Database) error
}

var registry []Seeder

func register(s Seeder) {
	registry = append(registry, s)
}

// RunAll executes every registered seeder in registration order.
func RunAll(ctx context.Context, db *mongo.Database) error {
	for _, s := range registry {
		if err := s.Run(ctx, db); err != nil {
			return fmt.Errorf("seeder %s: %w", s.Name, err)
		}
		logger.Info("seeder finished", "seeder", s.Name)
	}
	return nil
}
