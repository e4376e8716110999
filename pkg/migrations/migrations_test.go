package migrations

import (
	"context"
	"testing"

	"github.com/uptrace/bun/migrate"

	"github.com/hastrology/hastrology/pkg/migrations/apidb"
	"github.com/hastrology/hastrology/pkg/pgutil"
)

func TestAPIDBMigrations_Apply(t *testing.T) {
	db := pgutil.SetupTestDB(t)
	ctx := context.Background()

	migrator := migrate.NewMigrator(db, apidb.Migrations)

	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}

	group, err := migrator.Migrate(ctx)
	if err != nil {
		t.Fatalf("Migrate() failed: %v", err)
	}
	if group.IsZero() {
		t.Error("Expected migrations to run, but none were applied")
	}

	for _, table := range []string{"users", "horoscopes", "bun_migrations"} {
		pgutil.AssertTableExists(t, db, table)
	}
	pgutil.AssertIndexExists(t, db, "horoscopes_wallet_address_date_key")
	pgutil.AssertIndexExists(t, db, "horoscopes_payment_signature_key")
}

func TestMigrations_Idempotency(t *testing.T) {
	db := pgutil.SetupTestDB(t)
	ctx := context.Background()

	migrator := migrate.NewMigrator(db, apidb.Migrations)
	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}

	if _, err := migrator.Migrate(ctx); err != nil {
		t.Fatalf("First Migrate() failed: %v", err)
	}

	group, err := migrator.Migrate(ctx)
	if err != nil {
		t.Fatalf("Second Migrate() failed: %v", err)
	}
	if !group.IsZero() {
		t.Error("Expected no new migrations on second run")
	}
}

func TestMigrations_Rollback(t *testing.T) {
	db := pgutil.SetupTestDB(t)
	ctx := context.Background()

	migrator := migrate.NewMigrator(db, apidb.Migrations)
	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		t.Fatalf("Migrate() failed: %v", err)
	}

	group, err := migrator.Rollback(ctx)
	if err != nil {
		t.Fatalf("Rollback() failed: %v", err)
	}
	if group.IsZero() {
		t.Fatal("Expected a migration group to be rolled back")
	}

	pgutil.AssertTableNotExists(t, db, "horoscopes")
	pgutil.AssertTableNotExists(t, db, "users")
}
