package store

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sol-vault/internal/logger"
)

var testOwner = solana.MustPublicKeyFromBase58("67vHA8qZGCJKw1UNGUJZME4MwEWDRGWzp7MGvsut43A8")

func newMockDB(t *testing.T, dialect Dialect) (*DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)

	db := &DB{DB: conn, dialect: dialect, logger: logger.Nop()}
	switch dialect {
	case DialectPostgres:
		db.errorClassificator = NewPostgresErrorClassifier()
	default:
		db.errorClassificator = NewSQLiteErrorClassifier()
	}
	return db, mock, conn
}
