// Package migrations holds idempotent startup migrations for the mongo store.
package migrations

import (
	"context"
	"fmt"

	"MediSure/config/db"

	"go.mongodb.org/mongo-driver/mongo"
)

type migration struct {
	name string
	run  func(ctx context.Context, database *mongo.Database) error
}

var all = []migration{
	{"001_create_user_email_index", CreateUserEmailIndex},
	{"002_create_session_ttl_index", CreateSessionTTLIndex},
	{"003_create_scan_report_index", CreateScanReportIndexes},
	{"004_backfill_scan_type", BackfillScanType},
}

// Run applies every migration in order against the connected database.
func Run(ctx context.Context) error {
	if db.DB == nil {
		return db.ErrNotConnected
	}
	for _, m := range all {
		if err := m.run(ctx, db.DB); err != nil {
			return fmt.Errorf("migration %s: %w", m.name, err)
		}
	}
	return nil
}

// Names lists the migrations in the order Run applies them.
func Names() []string {
	out := make([]string, 0, len(all))
	for _, m := range all {
		out = append(out, m.name)
	}
	return out
}
