package store

import "errors"

var (
	// ErrSnapshotNotFound is returned when no snapshot was ever stored for an owner.
	ErrSnapshotNotFound = errors.New("account snapshot not found")
	// ErrOperationNotSaved is returned when a journal insert affected no rows.
	ErrOperationNotSaved = errors.New("operation was not saved")
)

var (
	ErrBuildingSQLQuery = errors.New("error building sql query")
	ErrExecutingQuery   = errors.New("error executing sql query")
	ErrScanningRow      = errors.New("failed to scan row")
	ErrScanningRows     = errors.New("failed to scan rows")
	ErrDecodingSnapshot = errors.New("failed to decode snapshot payload")
)
