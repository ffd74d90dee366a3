package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-sol-vault/internal/config"
	"github.com/MKhiriev/go-sol-vault/internal/logger"
)

// Storages groups the repositories handed to the service layer.
type Storages struct {
	SnapshotRepository  SnapshotRepository
	OperationRepository OperationRepository

	db *DB
}

// NewStorages connects to the configured database, applies migrations and
// builds the repositories.
func NewStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnect(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		SnapshotRepository:  NewSnapshotRepository(db, logger),
		OperationRepository: NewOperationRepository(db, logger),
		db:                  db,
	}, nil
}

func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
