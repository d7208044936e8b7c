package sql

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"go-health/pkg/resource"
)

// Open creates a lazy database/sql handle against the app.db properties.
// sql.Open validates the DSN without dialing, so the handle can be built
// even while the database is unreachable; the first Ping decides health.
func Open() (*sql.DB, error) {
	host := resource.GetString("app.db.host")
	port := resource.GetString("app.db.port")
	username := resource.GetString("app.db.username")
	password := resource.GetString("app.db.password")
	database := resource.GetString("app.db.database")
	schema := resource.GetString("app.db.schema")

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable search_path=%s",
		host, port, username, password, database, schema)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return db, nil
}
