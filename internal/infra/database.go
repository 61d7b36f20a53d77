package infra

import (
	"fmt"
	"strings"

	"inventory/internal/model"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase opens the store named by databaseURL and creates any missing
// tables. Supported forms:
//
//	sqlite://inventory.db   SQLite file (default)
//	sqlite://:memory:       private in-memory SQLite store (tests)
//	postgres://...          Postgres
//
// A bare path without a scheme is treated as a SQLite file.
//
// SQLite runs on exactly one connection held for the process lifetime, so
// statements are serialized by the store itself.
func NewDatabase(databaseURL string) (*gorm.DB, error) {
	dialector, isSQLite, err := dialectorFor(databaseURL)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if isSQLite {
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(0)
	} else {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
	}

	if err := EnsureSchema(db); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return db, nil
}

// EnsureSchema creates the five tables when absent. Existing tables are
// left as they are; there is no migration history.
func EnsureSchema(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Supplier{},
		&model.SKU{},
		&model.Product{},
		&model.Order{},
		&model.Sale{},
	)
}

// Close releases the connection pool behind db.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func dialectorFor(databaseURL string) (gorm.Dialector, bool, error) {
	switch {
	case databaseURL == "":
		return nil, false, fmt.Errorf("database url is empty")
	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		return postgres.Open(databaseURL), false, nil
	case strings.HasPrefix(databaseURL, "sqlite://"):
		return sqlite.Open(strings.TrimPrefix(databaseURL, "sqlite://")), true, nil
	case strings.Contains(databaseURL, "://"):
		return nil, false, fmt.Errorf("unsupported database url scheme in %q", databaseURL)
	default:
		return sqlite.Open(databaseURL), true, nil
	}
}
