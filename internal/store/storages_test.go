package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sol-vault/internal/config"
	"github.com/MKhiriev/go-sol-vault/internal/logger"
	"github.com/MKhiriev/go-sol-vault/models"
)

// TestStorages_SQLite runs both repositories against a real sqlite file.
func TestStorages_SQLite(t *testing.T) {
	ctx := context.Background()
	cfg := config.ClientStorage{DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "data", "client.db")}}

	storages, err := NewStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	defer storages.Close()

	_, err = storages.SnapshotRepository.GetSnapshot(ctx, testOwner)
	require.ErrorIs(t, err, ErrSnapshotNotFound)

	snapshot := testSnapshot()
	require.NoError(t, storages.SnapshotRepository.SaveSnapshot(ctx, snapshot))
	require.NoError(t, storages.SnapshotRepository.MarkStale(ctx, testOwner))

	got, err := storages.SnapshotRepository.GetSnapshot(ctx, testOwner)
	require.NoError(t, err)
	assert.True(t, got.Stale)
	assert.True(t, snapshot.FetchedAt.Equal(got.FetchedAt))
	assert.Equal(t, snapshot.Vault.Balance, got.Vault.Balance)

	snapshot.Stale = false
	snapshot.FetchedAt = snapshot.FetchedAt.Add(time.Minute)
	require.NoError(t, storages.SnapshotRepository.SaveSnapshot(ctx, snapshot))
	got, err = storages.SnapshotRepository.GetSnapshot(ctx, testOwner)
	require.NoError(t, err)
	assert.False(t, got.Stale)

	first := testOperation()
	second := testOperation()
	second.ID = "0195f2a4-7c3e-7b1a-9f00-000000000002"
	second.Action = models.ActionVaultWithdraw
	second.CreatedAt = first.CreatedAt.Add(time.Second)
	require.NoError(t, storages.OperationRepository.SaveOperation(ctx, first))
	require.NoError(t, storages.OperationRepository.SaveOperation(ctx, second))

	ops, err := storages.OperationRepository.ListOperations(ctx, testOwner.String(), 1)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, second.ID, ops[0].ID)
	assert.Equal(t, models.ActionVaultWithdraw, ops[0].Action)
	assert.Equal(t, models.StatusSuccess, ops[0].Status)

	ops, err = storages.OperationRepository.ListOperations(ctx, "", 0)
	require.NoError(t, err)
	assert.Len(t, ops, 2)
}

func TestStorages_CloseNil(t *testing.T) {
	var s *Storages
	assert.NoError(t, s.Close())
}
