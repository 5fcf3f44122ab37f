package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"sogsync/internal/logger"
	"sogsync/models"
)

// conversationRepository is the sqlite-backed implementation of
// [ConversationRepository]. GetOrCreate is idempotent: a concurrent or
// repeated create of the same id returns the existing record unchanged.
type conversationRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewConversationRepository(db *DB, logger *logger.Logger) ConversationRepository {
	logger.Debug().Msg("creating conversation repository")
	return &conversationRepository{db: db, logger: logger}
}

func (r *conversationRepository) Get(ctx context.Context, id string) (models.Conversation, error) {
	var convo models.Conversation
	err := r.db.QueryRowContext(ctx, selectConversation, id).
		Scan(&convo.ID, &convo.Type, &convo.OriginConversationID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Conversation{}, ErrConversationNotFound
	}
	if err != nil {
		return models.Conversation{}, fmt.Errorf("%w: %v", ErrScanningRow, err)
	}
	return convo, nil
}

func (r *conversationRepository) GetOrCreate(ctx context.Context, id string, convoType models.ConversationType) (models.Conversation, error) {
	if _, err := r.db.ExecContext(ctx, insertConversation, id, string(convoType)); err != nil {
		return models.Conversation{}, fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}
	return r.Get(ctx, id)
}

func (r *conversationRepository) SetOriginConversationID(ctx context.Context, id, originID string) error {
	res, err := r.db.ExecContext(ctx, updateConversationOrigin, originID, id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrConversationNotFound
	}
	return nil
}

func (r *conversationRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, deleteConversation, id); err != nil {
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}
	return nil
}
