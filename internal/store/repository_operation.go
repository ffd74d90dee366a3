package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-sol-vault/internal/logger"
	"github.com/MKhiriev/go-sol-vault/models"
)

type operationRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewOperationRepository(db *DB, logger *logger.Logger) OperationRepository {
	logger.Debug().Msg("creating operation repository")
	return &operationRepository{db: db, logger: logger}
}

func (r *operationRepository) SaveOperation(ctx context.Context, op models.Operation) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertOperationQuery(r.db.builder(),
		op.ID,
		op.Owner,
		string(op.Action),
		op.Status.String(),
		op.Signature,
		op.Message,
		op.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var affected int64
	err = r.db.withRetry(ctx, func() error {
		res, execErr := r.db.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		affected, execErr = res.RowsAffected()
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "*operationRepository.SaveOperation").
			Str("id", op.ID).
			Str("action", string(op.Action)).
			Msg("failed to insert operation")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrOperationNotSaved
	}

	return nil
}

func (r *operationRepository) ListOperations(ctx context.Context, owner string, limit uint64) ([]models.Operation, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectOperationsQuery(r.db.builder(), owner, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*operationRepository.ListOperations").Msg("failed to query operations")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ops := make([]models.Operation, 0)
	for rows.Next() {
		var (
			op     models.Operation
			action string
			status string
		)
		if err = rows.Scan(&op.ID, &op.Owner, &action, &status, &op.Signature, &op.Message, &op.CreatedAt); err != nil {
			log.Err(err).Str("func", "*operationRepository.ListOperations").Msg("failed to scan operation")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		op.Action = models.Action(action)
		op.Status = models.ParseOperationStatus(status)
		ops = append(ops, op)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ops, nil
}
