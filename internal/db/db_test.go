package db

import (
	"os"
	"testing"
)

// TestConnectPostgres exercises the Postgres connection when DATABASE_URL
// points at a live database.
func TestConnectPostgres(t *testing.T) {
	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	pool := ConnectPostgres()
	defer pool.Close()

	if err := pool.Ping(t.Context()); err != nil {
		t.Fatalf("ping failed: %v", err)
	}
}
