package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// New opens a GORM handle over Postgres. Schema is managed with AutoMigrate
// at startup; there is no separate migration tooling.
func New(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}
