package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-user-directory/internal/config"
	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/migrations"
	"github.com/Masterminds/squirrel"
)

const (
	maxOpenConns = 10
	maxIdleConns = 4
)

// DB is a database/sql handle bound to the driver it was opened with.
type DB struct {
	*sql.DB
	driver             string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the database selected by cfg.Driver.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}

// Driver returns the database/sql driver name of the connection.
func (db *DB) Driver() string {
	return db.driver
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// statementBuilder returns a squirrel builder using the placeholder syntax of
// the driver.
func (db *DB) statementBuilder() squirrel.StatementBuilderType {
	if db.driver == config.DriverPostgres {
		return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	}
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
}

// classify maps err through the driver classifier and wraps it with the
// resulting sentinel, if any.
func (db *DB) classify(err error) error {
	if db.errorClassificator == nil {
		return nil
	}
	if sentinel := db.errorClassificator.Classify(err); sentinel != nil {
		return fmt.Errorf("%w: %w", sentinel, err)
	}
	return nil
}
