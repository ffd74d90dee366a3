package store

import (
	"context"

	"github.com/gagliardetto/solana-go"

	"github.com/MKhiriev/go-sol-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SnapshotRepository stores the last known accounts view per owner.
type SnapshotRepository interface {
	SaveSnapshot(ctx context.Context, snapshot models.AccountsSnapshot) error
	GetSnapshot(ctx context.Context, owner solana.PublicKey) (models.AccountsSnapshot, error)
	MarkStale(ctx context.Context, owner solana.PublicKey) error
}

// OperationRepository is the append-only operation journal.
type OperationRepository interface {
	SaveOperation(ctx context.Context, op models.Operation) error
	ListOperations(ctx context.Context, owner string, limit uint64) ([]models.Operation, error)
}
