// Package store persists account snapshots and the operation journal.
// The client uses a sqlite file, the gateway may point at postgres; both
// share one schema and the same squirrel-built queries.
package store

import (
	"context"
	"database/sql"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-sol-vault/internal/config"
	"github.com/MKhiriev/go-sol-vault/internal/logger"
	"github.com/MKhiriev/go-sol-vault/migrations"
)

// Dialect selects the SQL flavour and the goose dialect of a connection.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite3"
	DialectPostgres Dialect = "postgres"
)

type DB struct {
	*sql.DB
	dialect            Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens a postgres connection for postgres:// DSNs and a sqlite
// file otherwise.
func NewConnect(ctx context.Context, cfg config.ClientDB, log *logger.Logger) (*DB, error) {
	if DialectFromDSN(cfg.DSN) == DialectPostgres {
		return NewConnectPostgres(ctx, cfg, log)
	}
	return NewConnectSQLite(ctx, cfg, log)
}

func DialectFromDSN(dsn string) Dialect {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return DialectPostgres
	}
	return DialectSQLite
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect))
}

// builder returns a statement builder using the placeholder style of the
// connected database.
func (db *DB) builder() sq.StatementBuilderType {
	if db.dialect == DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}
