// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"servicereports/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// SeedRates installs a named rate table and marks it active.
func SeedRates(t *testing.T, app *pocketbase.PocketBase, straight, overtime, double float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("rate_tables")
	if err != nil {
		t.Fatalf("failed to find rate_tables collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", "test rates")
	record.Set("active", true)
	record.Set("straight", straight)
	record.Set("overtime", overtime)
	record.Set("double", double)
	record.Set("weekday_travel", 100.0)
	record.Set("saturday_travel", 150.0)
	record.Set("sunday_travel", 200.0)
	record.Set("per_diem", 75.0)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test rate table: %v", err)
	}

	return record
}
