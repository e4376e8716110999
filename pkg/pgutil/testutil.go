package pgutil

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/uptrace/bun"

	"github.com/hastrology/hastrology/pkg/config"
)

const (
	testImage          = "postgres:15-alpine"
	testStartupTimeout = 60 * time.Second
	testConnectTimeout = 30 * time.Second
)

// RequireDockerAccess skips the test when no docker daemon socket answers.
func RequireDockerAccess(t *testing.T) {
	t.Helper()

	for _, sock := range []string{
		"/var/run/docker.sock",
		filepath.Join(os.Getenv("HOME"), ".docker/run/docker.sock"),
	} {
		if _, err := os.Stat(sock); err != nil {
			continue
		}
		conn, err := (&net.Dialer{Timeout: time.Second}).Dial("unix", sock)
		if err == nil {
			_ = conn.Close()
			return
		}
	}

	t.Skip("docker daemon socket is not accessible; skipping testcontainer-backed tests")
}

// SetupTestDB starts a throwaway Postgres container and returns a connection
// to it. Both are released when the test finishes.
func SetupTestDB(t *testing.T) *bun.DB {
	t.Helper()
	RequireDockerAccess(t)
	ctx := context.Background()

	container, err := postgres.Run(ctx, testImage,
		postgres.WithDatabase("hastrology_test"),
		postgres.WithUsername("hastrology"),
		postgres.WithPassword("hastrology"),
		testcontainers.WithWaitStrategy(
			// Postgres logs readiness once for the init run and once for the real start.
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(testStartupTimeout),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	db := connectWithRetry(t, &config.DatabaseConfig{URL: dsn})
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// connectWithRetry backs off exponentially until the container accepts
// connections or testConnectTimeout passes.
func connectWithRetry(t *testing.T, cfg *config.DatabaseConfig) *bun.DB {
	t.Helper()

	deadline := time.Now().Add(testConnectTimeout)
	backoff := 100 * time.Millisecond
	for {
		db, err := ConnectDB(context.Background(), cfg)
		if err == nil {
			return db
		}
		if time.Now().Add(backoff).After(deadline) {
			t.Fatalf("failed to connect to test database within %s: %v", testConnectTimeout, err)
		}
		time.Sleep(backoff)
		backoff *= 2
	}
}

// AssertTableExists checks if a table exists in the public schema
func AssertTableExists(t *testing.T, db *bun.DB, tableName string) {
	t.Helper()
	if !tableExists(t, db, tableName) {
		t.Errorf("table %s does not exist", tableName)
	}
}

// AssertTableNotExists checks if a table is absent from the public schema
func AssertTableNotExists(t *testing.T, db *bun.DB, tableName string) {
	t.Helper()
	if tableExists(t, db, tableName) {
		t.Errorf("table %s should not exist but it does", tableName)
	}
}

// AssertIndexExists checks for an index or unique constraint by name
func AssertIndexExists(t *testing.T, db *bun.DB, indexName string) {
	t.Helper()
	if !exists(t, db, "SELECT 1 FROM pg_indexes WHERE schemaname = 'public' AND indexname = ?", indexName) {
		t.Errorf("index %s does not exist", indexName)
	}
}

// AssertRowCount checks if a table has the expected number of rows
func AssertRowCount(t *testing.T, db *bun.DB, tableName string, expected int) {
	t.Helper()

	count, err := db.NewSelect().TableExpr("?", bun.Ident(tableName)).Count(context.Background())
	if err != nil {
		t.Fatalf("failed to count rows in table %s: %v", tableName, err)
	}
	if count != expected {
		t.Errorf("table %s: expected %d rows, got %d", tableName, expected, count)
	}
}

func tableExists(t *testing.T, db *bun.DB, tableName string) bool {
	t.Helper()
	return exists(t, db, "SELECT 1 FROM information_schema.tables WHERE table_schema = 'public' AND table_name = ?", tableName)
}

func exists(t *testing.T, db *bun.DB, query string, args ...any) bool {
	t.Helper()

	var found bool
	if err := db.NewRaw("SELECT EXISTS ("+query+")", args...).Scan(context.Background(), &found); err != nil {
		t.Fatalf("existence check failed: %v", err)
	}
	return found
}
