package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"sogsync/internal/logger"
	"sogsync/models"
)

// messageRepository is the sqlite-backed implementation of
// [MessageRepository].
type messageRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewMessageRepository(db *DB, logger *logger.Logger) MessageRepository {
	logger.Debug().Msg("creating message repository")
	return &messageRepository{db: db, logger: logger}
}

func (r *messageRepository) SaveMessage(ctx context.Context, conversationID string, serverID int64, sender, data string, postedAtMs int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, insertMessage, conversationID, serverID, sender, data, postedAtMs)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}
	return id, nil
}

// GetLocalIDsByServerIDs translates server message ids into local row ids.
// Server ids with no local row are skipped, not errors: a deletion may target
// a message that was never stored or is already gone.
func (r *messageRepository) GetLocalIDsByServerIDs(ctx context.Context, conversationID string, serverIDs []int64) ([]int64, error) {
	localIDs := make([]int64, 0, len(serverIDs))
	for _, serverID := range serverIDs {
		var localID int64
		err := r.db.QueryRowContext(ctx, selectMessageIDByServerID, conversationID, serverID).Scan(&localID)
		if errors.Is(err, sql.ErrNoRows) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrScanningRow, err)
		}
		localIDs = append(localIDs, localID)
	}
	return localIDs, nil
}

func (r *messageRepository) RemoveMessage(ctx context.Context, localID int64) error {
	res, err := r.db.ExecContext(ctx, deleteMessage, localID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrMessageNotFound
	}
	return nil
}

func (r *messageRepository) FilterSeen(ctx context.Context, pairs []models.SenderDataPair) ([]models.SenderDataPair, error) {
	var seen []models.SenderDataPair
	for _, pair := range pairs {
		var one int
		err := r.db.QueryRowContext(ctx, selectSeenPair, pair.Sender, pair.Data).Scan(&one)
		if errors.Is(err, sql.ErrNoRows) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrScanningRow, err)
		}
		seen = append(seen, pair)
	}
	return seen, nil
}
