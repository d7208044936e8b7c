package gorm

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"go-health/pkg/resource"
)

// Connect opens the Postgres pool described by the app.db properties.
// Unlike a normal application bootstrap, failure to connect is returned
// rather than fatal: in a health service the database being down is a
// condition to report, not a reason to refuse to start.
func Connect() (*gorm.DB, error) {
	host := resource.GetString("app.db.host")
	port := resource.GetString("app.db.port")
	username := resource.GetString("app.db.username")
	password := resource.GetString("app.db.password")
	database := resource.GetString("app.db.database")
	schema := resource.GetString("app.db.schema")

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable search_path=%s",
		host, username, password, database, port, schema)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	return db, nil
}
