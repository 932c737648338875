package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"
	_ "github.com/duckdb/duckdb-go/v2"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

const (
	DriverDuckDB = "duckdb"
	DriverSQLite = "sqlite"

	memoryPath = ":memory:"
)

// NewDB opens a DuckDB database at path. ":memory:" opens an in-memory database.
func NewDB(path string) (*sql.DB, error) {
	return NewDBWithDriver(context.Background(), DriverDuckDB, path, 0)
}

// NewDBWithDriver opens a database with the given driver. A file held by
// another process is retried with exponential backoff until timeout elapses;
// a zero timeout tries once.
func NewDBWithDriver(ctx context.Context, driver, path string, timeout time.Duration) (*sql.DB, error) {
	dsn, err := dataSourceName(driver, path)
	if err != nil {
		return nil, err
	}

	open := func() (*sql.DB, error) {
		db, err := sql.Open(driver, dsn)
		if err != nil {
			return nil, err
		}
		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, err
		}
		return db, nil
	}

	var db *sql.DB
	if timeout <= 0 {
		db, err = open()
	} else {
		db, err = backoff.Retry(ctx, open,
			backoff.WithBackOff(backoff.NewExponentialBackOff()),
			backoff.WithMaxElapsedTime(timeout),
			backoff.WithNotify(func(err error, next time.Duration) {
				zap.S().Named("store").Warnw("database not ready, retrying", "driver", driver, "path", path, "next", next, "error", err)
			}),
		)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database %q: %w", driver, path, err)
	}

	if driver == DriverSQLite {
		// one connection keeps :memory: databases shared and serializes sqlite writers
		db.SetMaxOpenConns(1)
		if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to configure sqlite: %w", err)
		}
	}

	return db, nil
}

func dataSourceName(driver, path string) (string, error) {
	switch driver {
	case DriverDuckDB:
		if path == memoryPath {
			return "", nil
		}
		return path, nil
	case DriverSQLite:
		return path, nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", driver)
	}
}
