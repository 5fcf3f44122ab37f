package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"sogsync/internal/logger"
	"sogsync/models"
)

// blindedKeyRepository is the sqlite-backed implementation of
// [BlindedKeyRepository]. The table is the durable side of the in-memory
// blinded-identity cache: it is read fully at resolver construction and
// written through on every proven mapping.
type blindedKeyRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewBlindedKeyRepository(db *DB, logger *logger.Logger) BlindedKeyRepository {
	logger.Debug().Msg("creating blinded key repository")
	return &blindedKeyRepository{db: db, logger: logger}
}

func (r *blindedKeyRepository) GetAll(ctx context.Context) ([]models.BlindedKeyMapping, error) {
	rows, err := r.db.QueryContext(ctx, selectAllBlindedKeys)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var mappings []models.BlindedKeyMapping
	for rows.Next() {
		var m models.BlindedKeyMapping
		if err := rows.Scan(&m.ServerPublicKey, &m.BlindedID, &m.RealID); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrScanningRows, err)
		}
		mappings = append(mappings, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScanningRows, err)
	}
	return mappings, nil
}

// Save inserts a proven mapping. An existing mapping for the same
// (server, blinded id) is left untouched; if it points at a different real id
// the insert reports [ErrMappingConflict] instead of overwriting it.
func (r *blindedKeyRepository) Save(ctx context.Context, mapping models.BlindedKeyMapping) error {
	if _, err := r.db.ExecContext(ctx, insertBlindedKey,
		mapping.ServerPublicKey, mapping.BlindedID, mapping.RealID); err != nil {
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	var existing string
	err := r.db.QueryRowContext(ctx, selectBlindedKey, mapping.ServerPublicKey, mapping.BlindedID).Scan(&existing)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrScanningRow, err)
	}
	if existing != mapping.RealID {
		return fmt.Errorf("%w: %s already mapped", ErrMappingConflict, mapping.BlindedID)
	}
	return nil
}
