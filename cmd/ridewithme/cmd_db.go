package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/ridewithme/config"
	"github.com/shashiranjanraj/ridewithme/database/indexes"
	"github.com/shashiranjanraj/ridewithme/database/seeders"
	"github.com/shashiranjanraj/ridewithme/pkg/database"
)

// bootDB loads config and opens the database connection.
func bootDB(ctx context.Context) error {
	config.Load()
	return database.Connect(ctx)
}

// ridewithme db:index
var dbIndexCmd = &cobra.Command{
	Use:   "db:index",
	Short: "Create collection indexes and sync the id counter",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if err := bootDB(ctx); err != nil {
			return err
		}
		defer database.Disconnect(context.Background())

		return indexes.Ensure(ctx, database.DB())
	},
}

// ridewithme db:seed
var dbSeedCmd = &cobra.Command{
	Use:   "db:seed",
	Short: "Replace collections with demo data",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
		defer cancel()

		if err := bootDB(ctx); err != nil {
			return err
		}
		defer database.Disconnect(context.Background())

		if err := seeders.RunAll(ctx, database.DB()); err != nil {
			return err
		}
		// Seed data carries explicit ids, so the counter must catch up.
		return indexes.Ensure(ctx, database.DB())
	},
}
