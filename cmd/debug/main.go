package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/osse101/alion/internal/config"
	"github.com/osse101/alion/internal/database"
	"github.com/osse101/alion/internal/database/postgres"
	"github.com/osse101/alion/internal/resource"
)

// debug dumps every user with their villages, showing stored and projected resources
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	dbPool, err := database.NewPool(cfg.GetDBConnString(), 2, time.Minute, 5*time.Minute)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	ctx := context.Background()
	villages := postgres.NewVillageRepository(dbPool)
	engine := resource.NewEngine()
	now := time.Now().UTC()

	rows, err := dbPool.Query(ctx, "SELECT user_id::text, username, tribe_id FROM users ORDER BY created_at")
	if err != nil {
		log.Fatalf("Failed to query users: %v", err)
	}

	type userRow struct {
		id, username string
		tribeID      *int32
	}
	var users []userRow
	for rows.Next() {
		var u userRow
		if err := rows.Scan(&u.id, &u.username, &u.tribeID); err != nil {
			log.Fatalf("Failed to scan user: %v", err)
		}
		users = append(users, u)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		log.Fatalf("Failed to read users: %v", err)
	}

	for _, u := range users {
		tribe := "-"
		if u.tribeID != nil {
			tribe = fmt.Sprint(*u.tribeID)
		}
		fmt.Printf("\n--- %s (%s) tribe=%s ---\n", u.username, u.id, tribe)

		list, err := villages.ListVillagesByUser(ctx, u.id)
		if err != nil {
			log.Printf("Failed to list villages: %v", err)
			continue
		}
		for _, v := range list {
			projected, _ := engine.Reconcile(v.Resources, now)
			fmt.Printf("  %s %q (%d|%d) v%d stored=%+v projected=%+v last=%s\n",
				v.ID, v.Name, v.CoordinateX, v.CoordinateY, v.Version,
				v.Resources.Levels, projected.Levels, v.Resources.LastUpdate.Format(time.RFC3339))
		}
	}
}
