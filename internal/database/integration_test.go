package database

import (
	"path/filepath"
	"testing"

	"learnsafe/internal/config"
)

// TestDatabaseIntegration tests the complete sqlite lifecycle: open,
// migrate, and verify the schema the profile store depends on.
func TestDatabaseIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	cfg := &config.Config{
		DatabaseType: "sqlite",
		DatabasePath: filepath.Join(t.TempDir(), "test_integration.db"),
	}

	db, err := Initialize(cfg)
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping database: %v", err)
	}

	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	// Migrations must have created the profiles table.
	for _, table := range []string{"migrations", "profiles"} {
		var name string
		query := "SELECT name FROM sqlite_master WHERE type='table' AND name=?"
		if err := db.QueryRow(query, table).Scan(&name); err != nil {
			t.Errorf("Table %s not found: %v", table, err)
		}
	}

	// Running migrations again is a no-op, not an error.
	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Errorf("Second migration run failed: %v", err)
	}
}

func TestInitializeRejectsUnknownType(t *testing.T) {
	cfg := &config.Config{DatabaseType: "oracle"}
	if _, err := Initialize(cfg); err == nil {
		t.Fatal("expected error for unsupported database type")
	}
}

func TestDatabaseUpsertProfile(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	cfg := &config.Config{
		DatabaseType: "sqlite",
		DatabasePath: filepath.Join(t.TempDir(), "test_upsert.db"),
	}

	db, err := Initialize(cfg)
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	upsert := db.Dialect.UpsertProfileQuery()
	if _, err := db.Exec(upsert, "current_user", `{"id":"a"}`); err != nil {
		t.Fatalf("First upsert failed: %v", err)
	}
	if _, err := db.Exec(upsert, "current_user", `{"id":"b"}`); err != nil {
		t.Fatalf("Second upsert failed: %v", err)
	}

	// The second write replaced the first; there is still one row.
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM profiles").Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("profiles rows = %d, want 1", count)
	}

	var payload string
	if err := db.QueryRow("SELECT payload FROM profiles WHERE storage_key = ?", "current_user").Scan(&payload); err != nil {
		t.Fatal(err)
	}
	if payload != `{"id":"b"}` {
		t.Errorf("payload = %s, want replaced value", payload)
	}
}
