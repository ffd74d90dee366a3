package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"

	"github.com/MKhiriev/go-sol-vault/internal/logger"
	"github.com/MKhiriev/go-sol-vault/models"
)

// snapshotRepository keeps one JSON-encoded [models.AccountsSnapshot] per
// owner. fetched_at and stale live in their own columns so MarkStale does
// not need to rewrite the payload.
type snapshotRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewSnapshotRepository(db *DB, logger *logger.Logger) SnapshotRepository {
	logger.Debug().Msg("creating snapshot repository")
	return &snapshotRepository{db: db, logger: logger}
}

func (r *snapshotRepository) SaveSnapshot(ctx context.Context, snapshot models.AccountsSnapshot) error {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	query, args, err := buildUpsertSnapshotQuery(r.db.builder(), snapshot.Owner.String(), payload, snapshot.FetchedAt, snapshot.Stale)
	if err != nil {
		log.Err(err).Str("func", "*snapshotRepository.SaveSnapshot").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func() error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "*snapshotRepository.SaveSnapshot").
			Str("owner", snapshot.Owner.String()).
			Msg("failed to upsert snapshot")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *snapshotRepository) GetSnapshot(ctx context.Context, owner solana.PublicKey) (models.AccountsSnapshot, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSnapshotQuery(r.db.builder(), owner.String())
	if err != nil {
		return models.AccountsSnapshot{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		payload   string
		fetchedAt time.Time
		stale     bool
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&payload, &fetchedAt, &stale)
	if errors.Is(err, sql.ErrNoRows) {
		return models.AccountsSnapshot{}, ErrSnapshotNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*snapshotRepository.GetSnapshot").
			Str("owner", owner.String()).
			Msg("failed to read snapshot")
		return models.AccountsSnapshot{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	var snapshot models.AccountsSnapshot
	if err = json.Unmarshal([]byte(payload), &snapshot); err != nil {
		log.Err(err).
			Str("func", "*snapshotRepository.GetSnapshot").
			Str("owner", owner.String()).
			Msg("stored snapshot payload is corrupt")
		return models.AccountsSnapshot{}, fmt.Errorf("%w: %w", ErrDecodingSnapshot, err)
	}
	snapshot.Owner = owner
	snapshot.FetchedAt = fetchedAt
	snapshot.Stale = stale

	return snapshot, nil
}

// MarkStale flags the owner's snapshot. Owners without a snapshot are left alone.
func (r *snapshotRepository) MarkStale(ctx context.Context, owner solana.PublicKey) error {
	log := logger.FromContext(ctx)

	query, args, err := buildMarkStaleQuery(r.db.builder(), owner.String())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func() error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "*snapshotRepository.MarkStale").
			Str("owner", owner.String()).
			Msg("failed to mark snapshot stale")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
