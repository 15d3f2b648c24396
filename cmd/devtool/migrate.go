package main

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/alion/internal/database"
)

type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Apply or inspect the embedded database migrations (up, status)"
}

func (c *MigrateCommand) Run(args []string) error {
	if len(args) < 1 {
		return usageError("migrate <up|status>")
	}

	ctx := context.Background()
	pool, err := database.NewPool(databaseURL(), 2, time.Minute, 5*time.Minute)
	if err != nil {
		return err
	}
	defer pool.Close()

	switch args[0] {
	case "up":
		PrintHeader("Applying migrations")
		if err := database.Migrate(ctx, pool); err != nil {
			return err
		}
		PrintSuccess("Database is up to date")
		return nil
	case "status":
		statuses, err := database.MigrationStatus(ctx, pool)
		if err != nil {
			return err
		}
		PrintHeader("Migration status")
		for _, st := range statuses {
			applied := "pending"
			if !st.AppliedAt.IsZero() {
				applied = st.AppliedAt.Format(time.RFC3339)
			}
			fmt.Printf("  %-8s %-40s %s\n", st.State, st.Source.Path, applied)
		}
		return nil
	default:
		return usageError("migrate <up|status>")
	}
}
