package migrations

import (
	"context"
	"testing"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"
	"go.uber.org/zap"

	"github.com/hastrology/hastrology/pkg/pgutil"
)

type noteDao struct {
	bun.BaseModel `bun:"table:notes"`
	ID            int64  `bun:",pk,autoincrement"`
	Body          string `bun:",notnull,type:varchar(100)"`
}

func TestCreateSchemaAndDropTables(t *testing.T) {
	db := pgutil.SetupTestDB(t)
	ctx := context.Background()

	if err := CreateSchema(ctx, db, &noteDao{}); err != nil {
		t.Fatalf("CreateSchema() failed: %v", err)
	}
	pgutil.AssertTableExists(t, db, "notes")

	// A second call is a no-op.
	if err := CreateSchema(ctx, db, &noteDao{}); err != nil {
		t.Fatalf("CreateSchema() second call failed: %v", err)
	}

	if err := DropTables(ctx, db, &noteDao{}); err != nil {
		t.Fatalf("DropTables() failed: %v", err)
	}
	pgutil.AssertTableNotExists(t, db, "notes")

	if err := DropTables(ctx, db, &noteDao{}); err != nil {
		t.Fatalf("DropTables() on missing table failed: %v", err)
	}
}

func newNotesMigrator(db *bun.DB) *migrate.Migrator {
	ms := migrate.NewMigrations()
	ms.MustRegister(func(ctx context.Context, db *bun.DB) error {
		return CreateSchema(ctx, db, &noteDao{})
	}, func(ctx context.Context, db *bun.DB) error {
		return DropTables(ctx, db, &noteDao{})
	})
	return migrate.NewMigrator(db, ms)
}

func TestRunMigrations_Commands(t *testing.T) {
	db := pgutil.SetupTestDB(t)
	ctx := context.Background()
	migrator := newNotesMigrator(db)
	logger := zap.NewNop()

	for _, cmd := range []string{"init", "up", "status"} {
		if err := RunMigrations(ctx, migrator, logger, cmd); err != nil {
			t.Fatalf("%s failed: %v", cmd, err)
		}
	}
	pgutil.AssertTableExists(t, db, "notes")

	// Nothing left to apply.
	if err := RunMigrations(ctx, migrator, logger, "up"); err != nil {
		t.Fatalf("second up failed: %v", err)
	}

	if err := RunMigrations(ctx, migrator, logger, "down"); err != nil {
		t.Fatalf("down failed: %v", err)
	}
	pgutil.AssertTableNotExists(t, db, "notes")
}

func TestRunMigrations_BadArguments(t *testing.T) {
	db := pgutil.SetupTestDB(t)
	ctx := context.Background()
	migrator := newNotesMigrator(db)

	if err := RunMigrations(ctx, migrator, zap.NewNop()); err == nil {
		t.Fatal("expected error without a command")
	}
	if err := RunMigrations(ctx, migrator, zap.NewNop(), "sideways"); err == nil {
		t.Fatal("expected error for unknown command")
	}
}
