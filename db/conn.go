// Package db opens the relational database selected by configuration
package db

import (
	"fmt"

	"cliptrace/match-api/model"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// New opens the configured relational backend and migrates the schema.
// storage.backend decides the driver; call sites never branch on it again.
func New() (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch backend := viper.GetString("storage.backend"); backend {
	case "sqlite":
		dialector = sqlite.Open(viper.GetString("storage.sqlite_path"))
	case "postgres":
		dialector = postgres.Open(viper.GetString("storage.postgres_dsn"))
	default:
		return nil, fmt.Errorf("backend %q is not database-backed", backend)
	}

	db, err := gorm.Open(dialector)
	if err != nil {
		return nil, fmt.Errorf("failed to open database, %w", err)
	}

	err = db.AutoMigrate(model.User{}, model.Movie{}, model.Scene{}, model.SearchHistory{}, model.VideoUpload{})
	if err != nil {
		return nil, fmt.Errorf("failed to automigrate tables, %w", err)
	}

	return db, nil
}
