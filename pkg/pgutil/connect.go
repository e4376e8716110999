package pgutil

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/hastrology/hastrology/pkg/config"
)

// ConnectDB creates a connection to the specified database. A non-empty
// cfg.URL is used as the DSN and the discrete fields are ignored.
func ConnectDB(ctx context.Context, cfg *config.DatabaseConfig) (*bun.DB, error) {
	db := bun.NewDB(sql.OpenDB(newConnector(cfg)), pgdialect.New())

	// Test connection
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close() // Close connection to prevent resource leak
		return nil, fmt.Errorf("failed to connect to database %s: %w", describe(cfg), err)
	}

	return db, nil
}

func newConnector(cfg *config.DatabaseConfig) *pgdriver.Connector {
	if cfg.URL != "" {
		return pgdriver.NewConnector(pgdriver.WithDSN(cfg.URL))
	}

	// Build connector using functional options to properly escape special characters
	return pgdriver.NewConnector(
		pgdriver.WithNetwork("tcp"),
		pgdriver.WithAddr(fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)),
		pgdriver.WithUser(cfg.User),
		pgdriver.WithPassword(cfg.Password),
		pgdriver.WithDatabase(cfg.Database),
		pgdriver.WithInsecure(cfg.SSLMode == "disable"),
	)
}

// describe names the target database without leaking credentials.
func describe(cfg *config.DatabaseConfig) string {
	if cfg.URL != "" {
		return "from url"
	}
	return cfg.Database
}
