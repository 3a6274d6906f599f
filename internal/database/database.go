package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/XSAM/otelsql"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	_ "modernc.org/sqlite"

	"faultapi/internal/config"
)

var sqlOpen = sql.Open

// NewSQLite opens an embedded sqlite database through the otelsql wrapper and
// applies pooling settings. The default DSN is ":memory:"; in that mode every
// connection would see its own database, so the pool is pinned to one connection.
func NewSQLite(c config.DatabaseConfig) (*sql.DB, error) {
	if c.Path == "" {
		return nil, fmt.Errorf("invalid database config: path is required")
	}

	driverName, err := otelsql.Register("sqlite",
		otelsql.WithAttributes(semconv.DBSystemSqlite),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to register otelsql: %w", err)
	}

	db, err := sqlOpen(driverName, c.Path)
	if err != nil {
		return nil, fmt.Errorf("sql open: %w", err)
	}

	if strings.Contains(c.Path, ":memory:") {
		db.SetMaxOpenConns(1)
	} else if c.MaxOpenConns > 0 {
		db.SetMaxOpenConns(c.MaxOpenConns)
	}
	if c.MaxIdleConns > 0 {
		db.SetMaxIdleConns(c.MaxIdleConns)
	}
	if c.ConnMaxLifetimeSec > 0 {
		db.SetConnMaxLifetime(time.Duration(c.ConnMaxLifetimeSec) * time.Second)
	}

	// Verify connectivity with a short timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}

	return db, nil
}
