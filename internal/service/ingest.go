package service

import (
	"context"
	"encoding/base64"
	"fmt"

	"sogsync/internal/crypto"
	"sogsync/internal/logger"
	"sogsync/internal/store"
	"sogsync/models"
)

// StoreIngestor is the built-in ingestion pipeline: it persists everything the
// sync engine delivers into local storage. Embedders with their own content
// pipeline substitute their ContentIngestor and OutboxApplier instead.
type StoreIngestor struct {
	messages      store.MessageRepository
	conversations store.ConversationRepository
	keyPair       *crypto.KeyPair
	logger        *logger.Logger
}

func NewStoreIngestor(
	messages store.MessageRepository,
	conversations store.ConversationRepository,
	keyPair *crypto.KeyPair,
	log *logger.Logger,
) *StoreIngestor {
	return &StoreIngestor{
		messages:      messages,
		conversations: conversations,
		keyPair:       keyPair,
		logger:        log,
	}
}

// IngestRoomMessage stores one verified room message under the room's
// community conversation.
func (s *StoreIngestor) IngestRoomMessage(ctx context.Context, msg models.Message, room models.RoomContext) error {
	conversationID := models.CommunityConversationID(room.ServerURL, room.RoomID)
	if conversationID == "" {
		return fmt.Errorf("room context is incomplete: %q / %q", room.ServerURL, room.RoomID)
	}
	if _, err := s.conversations.GetOrCreate(ctx, conversationID, models.ConversationCommunity); err != nil {
		return fmt.Errorf("get or create community conversation: %w", err)
	}

	// Posted is already in milliseconds here, the sync handler normalizes
	// the wire seconds before handing messages over
	localID, err := s.messages.SaveMessage(ctx, conversationID, msg.ID, msg.SessionID, *msg.Data, int64(msg.Posted))
	if err != nil {
		return fmt.Errorf("save room message: %w", err)
	}
	s.logger.Debug().Int64("local_id", localID).Int64("server_id", msg.ID).Msg("room message stored")
	return nil
}

// IngestEnvelope stores one decrypted inbox message in the private
// conversation with its sender. Envelopes have no server-side message id, the
// dedup key is the (sender, data) pair.
func (s *StoreIngestor) IngestEnvelope(ctx context.Context, envelope models.Envelope) error {
	if _, err := s.conversations.GetOrCreate(ctx, envelope.SenderIdentity, models.ConversationPrivate); err != nil {
		return fmt.Errorf("get or create private conversation: %w", err)
	}

	data := base64.StdEncoding.EncodeToString(envelope.Content)
	if _, err := s.messages.SaveMessage(ctx, envelope.SenderIdentity, 0, envelope.SenderIdentity, data, envelope.TimestampMs); err != nil {
		return fmt.Errorf("save envelope: %w", err)
	}
	return nil
}

// ApplySentMessage stores a message this account sent from another device, so
// the local conversation history matches what the other device sees.
func (s *StoreIngestor) ApplySentMessage(ctx context.Context, msg models.SyntheticMessage, content []byte, sentAtMs int64, conversation models.Conversation) error {
	data := base64.StdEncoding.EncodeToString(content)
	if _, err := s.messages.SaveMessage(ctx, conversation.ID, 0, s.keyPair.SessionID(), data, sentAtMs); err != nil {
		return fmt.Errorf("save sent message: %w", err)
	}
	s.logger.Debug().Str("conversation", conversation.ID).Str("synthetic_id", msg.ID).Msg("sent message applied")
	return nil
}
