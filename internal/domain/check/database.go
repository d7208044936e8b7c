// Package check provides the built-in health checks wired up from
// application properties: database, redis, queue, remote HTTP and the
// warm-up simulation. Each implements health.Check and reports failures
// through its result rather than by escaping errors.
package check

import (
	"context"
	"database/sql"

	"gorm.io/gorm"

	"go-health/internal/domain/model"
)

// DatabaseCheck pings the Postgres pool behind a gorm handle.
type DatabaseCheck struct {
	db *gorm.DB
}

// NewDatabaseCheck creates a check for the given gorm handle.
func NewDatabaseCheck(db *gorm.DB) *DatabaseCheck {
	return &DatabaseCheck{db: db}
}

func (c *DatabaseCheck) Check(ctx context.Context) model.CheckResult {
	sqlDB, err := c.db.DB()
	if err != nil {
		return model.DownResult(err, nil)
	}
	return pingPool(ctx, sqlDB)
}

// SQLDatabaseCheck pings a raw database/sql handle. It exists alongside
// DatabaseCheck so deployments that keep a plain lib/pq pool can probe it
// without going through gorm.
type SQLDatabaseCheck struct {
	db *sql.DB
}

// NewSQLDatabaseCheck creates a check for the given database/sql handle.
func NewSQLDatabaseCheck(db *sql.DB) *SQLDatabaseCheck {
	return &SQLDatabaseCheck{db: db}
}

func (c *SQLDatabaseCheck) Check(ctx context.Context) model.CheckResult {
	return pingPool(ctx, c.db)
}

func pingPool(ctx context.Context, db *sql.DB) model.CheckResult {
	if err := db.PingContext(ctx); err != nil {
		return model.DownResult(err, nil)
	}

	stats := db.Stats()
	return model.UpResult(map[string]any{
		"open_connections": stats.OpenConnections,
		"in_use":           stats.InUse,
		"idle":             stats.Idle,
	})
}
