// marketctl runs operational tasks against the marketplace database:
// schema migration and data seeding.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/Man-HUAJI/Second-hand-Trading/internal/config"
	"github.com/Man-HUAJI/Second-hand-Trading/internal/database"
	"github.com/Man-HUAJI/Second-hand-Trading/internal/logging"
	"github.com/Man-HUAJI/Second-hand-Trading/internal/seed"
	"github.com/urfave/cli/v3"
	"gorm.io/gorm"
)

func main() {
	logging.Setup()

	cmd := &cli.Command{
		Name:  "marketctl",
		Usage: "Marketplace database management",
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "Run database migration",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := openDB()
					if err != nil {
						return err
					}
					if err := database.Migrate(db); err != nil {
						return err
					}
					slog.Info("migration complete")
					return nil
				},
			},
			{
				Name:  "seed",
				Usage: "Seed the default categories",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := openDB()
					if err != nil {
						return err
					}
					if err := database.Migrate(db); err != nil {
						return err
					}
					return seed.Categories(db)
				},
			},
			{
				Name:  "seed-demo",
				Usage: "Seed categories plus a demo user with sample items and reviews",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := openDB()
					if err != nil {
						return err
					}
					if err := database.Migrate(db); err != nil {
						return err
					}
					return seed.Demo(db)
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func openDB() (*gorm.DB, error) {
	cfg := config.Load()
	return database.Connect(cfg)
}
