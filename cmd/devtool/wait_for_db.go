package main

import (
	"fmt"
	"time"

	"github.com/osse101/alion/internal/database"
)

type WaitForDBCommand struct{}

func (c *WaitForDBCommand) Name() string {
	return "wait-for-db"
}

func (c *WaitForDBCommand) Description() string {
	return "Wait for database to be ready (with retries)"
}

func (c *WaitForDBCommand) Run(args []string) error {
	PrintHeader("Waiting for database...")

	dbURL := databaseURL()
	PrintInfo("Target: %s", redactPassword(dbURL))

	const (
		maxRetries    = 30
		retryInterval = 2 * time.Second
	)

	for i := 0; i < maxRetries; i++ {
		pool, err := database.NewPool(dbURL, 1, time.Minute, time.Minute)
		if err == nil {
			pool.Close()
			PrintSuccess("Database is ready")
			return nil
		}

		fmt.Printf("Database not ready (%d/%d): %v\n", i+1, maxRetries, err)
		time.Sleep(retryInterval)
	}

	return fmt.Errorf("database failed to become ready after %d attempts", maxRetries)
}

