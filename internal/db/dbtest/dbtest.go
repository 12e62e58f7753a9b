// Package dbtest provisions PostgreSQL databases for integration tests.
package dbtest

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/daniilsolovey/blog-cms/internal/db"
)

const (
	// DatabaseURLEnv points tests at an existing database instead of a container.
	DatabaseURLEnv = "TEST_DATABASE_URL"
	// MigrationsDir is relative to packages two levels below the module root.
	MigrationsDir = "../../docs/patches"

	postgresImage = "postgres:16-alpine"
)

// Tables is the list of tables the migrations must create.
var Tables = []string{"users", "articles", "tags", "articleTags", "comments", "projects", "profiles"}

// Setup returns a connection to a database with a fresh schema and fixtures.
// The returned function closes the connection and stops the container, if any.
func Setup(ctx context.Context) (*pg.DB, func(), error) {
	url, stop, err := databaseURL(ctx)
	if err != nil {
		return nil, nil, err
	}

	opt, err := pg.ParseURL(url)
	if err != nil {
		stop()
		return nil, nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	database := pg.Connect(opt)
	cleanup := func() {
		_ = database.Close()
		stop()
	}

	if err := database.Ping(ctx); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to connect to test database: %w", err)
	}

	if err := ResetPublicSchema(ctx, database); err != nil {
		cleanup()
		return nil, nil, err
	}

	if err := RunMigrations(ctx, url, MigrationsDir); err != nil {
		cleanup()
		return nil, nil, err
	}

	if err := EnsureTablesExist(ctx, database, Tables); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("schema verification failed: %w", err)
	}

	if err := LoadTestData(ctx, database); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to load test data: %w", err)
	}

	return database, cleanup, nil
}

func databaseURL(ctx context.Context) (string, func(), error) {
	if url := os.Getenv(DatabaseURLEnv); url != "" {
		return url, func() {}, nil
	}

	container, err := postgres.Run(ctx,
		postgresImage,
		postgres.WithDatabase("blog_test"),
		postgres.WithUsername("test_user"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		return "", nil, fmt.Errorf("failed to start postgres container: %w", err)
	}

	stop := func() {
		_ = container.Terminate(context.Background())
	}

	url, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		stop()
		return "", nil, fmt.Errorf("failed to get connection string: %w", err)
	}

	return url, stop, nil
}

// ResetPublicSchema drops and recreates the public schema
func ResetPublicSchema(ctx context.Context, database *pg.DB) error {
	_, err := database.ExecContext(ctx, `DROP SCHEMA IF EXISTS public CASCADE; CREATE SCHEMA public;`)
	if err != nil {
		return fmt.Errorf("reset public schema: %w", err)
	}
	return nil
}

// RunMigrations applies all migrations from migrationsDir
func RunMigrations(ctx context.Context, url, migrationsDir string) error {
	migrator, err := db.NewMigratorFromURL(url, migrationsDir, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		return err
	}
	defer migrator.Close()

	return migrator.Up(ctx)
}

// EnsureTablesExist verifies that the specified tables exist in the database
func EnsureTablesExist(ctx context.Context, database *pg.DB, tables []string) error {
	for _, tbl := range tables {
		var exists bool
		_, err := database.QueryOneContext(ctx, pg.Scan(&exists), `
			SELECT EXISTS (
				SELECT 1
				FROM information_schema.tables
				WHERE table_schema = 'public' AND table_name = ?
			)`, tbl)
		if err != nil {
			return fmt.Errorf("check table %s exists: %w", tbl, err)
		}
		if !exists {
			return fmt.Errorf("table %q does not exist after migrations", tbl)
		}
	}
	return nil
}
