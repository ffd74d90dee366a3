package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	snapshotsTable  = "account_snapshots"
	operationsTable = "operations"
)

var operationColumns = []string{"id", "owner", "action", "status", "signature", "message", "created_at"}

func buildUpsertSnapshotQuery(b sq.StatementBuilderType, owner string, payload []byte, fetchedAt time.Time, stale bool) (string, []any, error) {
	return b.Insert(snapshotsTable).
		Columns("owner", "payload", "fetched_at", "stale").
		Values(owner, string(payload), fetchedAt.UTC(), stale).
		Suffix("ON CONFLICT (owner) DO UPDATE SET payload = excluded.payload, fetched_at = excluded.fetched_at, stale = excluded.stale").
		ToSql()
}

func buildSelectSnapshotQuery(b sq.StatementBuilderType, owner string) (string, []any, error) {
	return b.Select("payload", "fetched_at", "stale").
		From(snapshotsTable).
		Where(sq.Eq{"owner": owner}).
		ToSql()
}

func buildMarkStaleQuery(b sq.StatementBuilderType, owner string) (string, []any, error) {
	return b.Update(snapshotsTable).
		Set("stale", true).
		Where(sq.Eq{"owner": owner}).
		ToSql()
}

func buildInsertOperationQuery(b sq.StatementBuilderType, id, owner, action, status, signature, message string, createdAt time.Time) (string, []any, error) {
	return b.Insert(operationsTable).
		Columns(operationColumns...).
		Values(id, owner, action, status, signature, message, createdAt.UTC()).
		ToSql()
}

// buildSelectOperationsQuery lists the newest entries first. An empty owner
// selects every owner; a zero limit means no limit.
func buildSelectOperationsQuery(b sq.StatementBuilderType, owner string, limit uint64) (string, []any, error) {
	query := b.Select(operationColumns...).
		From(operationsTable).
		OrderBy("created_at DESC", "id DESC")
	if owner != "" {
		query = query.Where(sq.Eq{"owner": owner})
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	return query.ToSql()
}
