package main

import (
	"log"
	"os"

	"github.com/waris/faraid-engine/internal/api"
	"github.com/waris/faraid-engine/internal/batch"
	"github.com/waris/faraid-engine/internal/db"
)

func main() {
	log.Println("Starting Faraid Estate-Partition Engine...")

	// ─── Configuration ───────────────────────────────────────────────────
	// Persistence is optional: the engine runs calculations without a
	// database, it just cannot serve history endpoints. PORT falls back
	// to 5339; an unset API_AUTH_TOKEN (read by the API layer) leaves the
	// protected routes open.
	// ───────────────────────────────────────────────────────────────────

	var dbConn *db.PostgresStore
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		conn, err := db.Connect(dbURL)
		if err != nil {
			log.Printf("Warning: Failed to connect to PostgreSQL, continuing without calculation history. Error: %v", err)
		} else {
			dbConn = conn
			defer dbConn.Close()
			if err := dbConn.InitSchema(); err != nil {
				log.Printf("Warning: DB schema init failed: %v", err)
			}
		}
	} else {
		log.Println("DATABASE_URL not set — running without calculation history persistence")
	}

	// Setup WebSocket Hub for batch-completion notifications.
	wsHub := api.NewHub()
	go wsHub.Run()

	batchManager := batch.NewManager()

	r := api.SetupRouter(dbConn, wsHub, batchManager)

	port := getEnvOrDefault("PORT", "5339")

	log.Printf("Engine running on :%s\n", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// getEnvOrDefault returns the env var value or a safe default for non-secret settings.
func getEnvOrDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
