package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/google/uuid"

	"sogsync/internal/crypto"
	"sogsync/internal/logger"
	"sogsync/internal/store"
	"sogsync/models"
)

// InboxOutboxHandler decrypts the server-wide encrypted direct-message
// channel, proves sender identities where possible, and splices the content
// into the normal ingestion paths.
type InboxOutboxHandler struct {
	rooms         store.RoomRepository
	conversations store.ConversationRepository
	resolver      *BlindedResolver
	ingestor      ContentIngestor
	outbox        OutboxApplier
	keyPair       *crypto.KeyPair
	logger        *logger.Logger
	now           func() time.Time
}

func NewInboxOutboxHandler(
	rooms store.RoomRepository,
	conversations store.ConversationRepository,
	resolver *BlindedResolver,
	ingestor ContentIngestor,
	outbox OutboxApplier,
	keyPair *crypto.KeyPair,
	log *logger.Logger,
) *InboxOutboxHandler {
	return &InboxOutboxHandler{
		rooms:         rooms,
		conversations: conversations,
		resolver:      resolver,
		ingestor:      ingestor,
		outbox:        outbox,
		keyPair:       keyPair,
		logger:        log,
		now:           time.Now,
	}
}

// Handle processes one inbox or outbox sub-response for serverURL. Missing
// trust context (no room with a server key, or no keypair) refuses the whole
// call; within the loop each item is an isolated failure domain.
func (h *InboxOutboxHandler) Handle(ctx context.Context, items []models.InboxOutboxItem, serverURL string, isOutbox bool) error {
	if len(items) == 0 {
		return nil
	}

	rooms, err := h.rooms.GetRoomsByServer(ctx, serverURL)
	if err != nil {
		return fmt.Errorf("load rooms for %s: %w", serverURL, err)
	}
	if len(rooms) == 0 || rooms[0].ServerPublicKey == "" {
		return fmt.Errorf("%w: no room with a server public key for %s", ErrMissingTrustContext, serverURL)
	}
	if h.keyPair == nil {
		return fmt.Errorf("%w: no local signing keypair", ErrMissingTrustContext)
	}
	serverPubKey := rooms[0].ServerPublicKey

	// make sure our own blinded id for this server is cached before the loop
	if _, err := h.resolver.OwnBlindedID(serverPubKey); err != nil {
		return fmt.Errorf("cache own blinded id: %w", err)
	}

	for _, item := range items {
		if err := h.handleItem(ctx, item, rooms[0], serverPubKey, isOutbox); err != nil {
			h.logger.Warn().Err(err).Int64("item_id", item.ID).Bool("outbox", isOutbox).
				Msg("inbox/outbox item failed")
		}
	}

	maxID := maxItemID(items)
	if maxID > 0 {
		if err := h.rooms.SetInboxOutboxCursor(ctx, serverURL, maxID, isOutbox); err != nil {
			return fmt.Errorf("persist inbox/outbox cursor: %w", err)
		}
	}
	return nil
}

func (h *InboxOutboxHandler) handleItem(ctx context.Context, item models.InboxOutboxItem, serverRoom models.Room, serverPubKey string, isOutbox bool) error {
	ciphertext, err := base64.StdEncoding.DecodeString(item.Message)
	if err != nil {
		return fmt.Errorf("decode item payload: %w", err)
	}
	postedAtMs := item.PostedAtMillis()

	otherBlindedID := item.Sender
	if isOutbox {
		otherBlindedID = item.Recipient
	}

	decrypted, err := crypto.DecryptBlinded(ciphertext, isOutbox, otherBlindedID, serverPubKey, h.keyPair)
	if err != nil {
		return fmt.Errorf("decrypt item: %w", err)
	}
	content := crypto.RemoveMessagePadding(decrypted.Plaintext)

	if isOutbox {
		return h.handleOutboxItem(ctx, item, serverRoom, serverPubKey, content, postedAtMs)
	}
	return h.handleInboxItem(ctx, item, serverPubKey, decrypted.SenderRealID, content, postedAtMs)
}

// handleOutboxItem materializes a message this account sent from another
// device through the community's private channel. The private conversation is
// keyed by the recipient's real identity when we already know it, otherwise
// by the blinded one, and is stamped with the community it originated from so
// replies can be routed.
func (h *InboxOutboxHandler) handleOutboxItem(ctx context.Context, item models.InboxOutboxItem, serverRoom models.Room, serverPubKey string, content []byte, postedAtMs int64) error {
	conversationKey := item.Recipient
	if real, ok := h.resolver.ResolveRealFromBlinded(serverPubKey, item.Recipient); ok {
		conversationKey = real
	}

	conversation, err := h.conversations.GetOrCreate(ctx, conversationKey, models.ConversationPrivate)
	if err != nil {
		return fmt.Errorf("get or create outbox conversation: %w", err)
	}
	if serverRoom.ConversationID == "" {
		return fmt.Errorf("server conversation id needs to exist")
	}
	if err := h.conversations.SetOriginConversationID(ctx, conversationKey, serverRoom.ConversationID); err != nil {
		return fmt.Errorf("stamp origin conversation: %w", err)
	}

	synthetic := models.SyntheticMessage{
		ID:             uuid.NewString(),
		ConversationID: conversationKey,
		SentAtMs:       postedAtMs,
	}
	if err := h.outbox.ApplySentMessage(ctx, synthetic, content, postedAtMs, conversation); err != nil {
		return fmt.Errorf("apply sent message: %w", err)
	}
	return nil
}

// handleInboxItem proves the sender's identity when possible and always
// delivers: a failed blinding proof skips only the cache write, the message
// itself still reaches ingestion tagged with the decrypted unblinded sender.
func (h *InboxOutboxHandler) handleInboxItem(ctx context.Context, item models.InboxOutboxItem, serverPubKey, senderRealID string, content []byte, postedAtMs int64) error {
	if !h.resolver.ProveAndCache(ctx, item.Sender, senderRealID, serverPubKey) {
		h.logger.Warn().Str("blinded_sender", item.Sender).Msg("could not prove inbox sender identity")
	}

	envelope := models.Envelope{
		ID:             uuid.NewString(),
		Source:         senderRealID,
		SenderIdentity: senderRealID,
		Content:        content,
		TimestampMs:    postedAtMs,
		ReceivedAtMs:   h.now().UnixMilli(),
	}
	if err := h.ingestor.IngestEnvelope(ctx, envelope); err != nil {
		return fmt.Errorf("ingest inbox envelope: %w", err)
	}
	return nil
}

func maxItemID(items []models.InboxOutboxItem) int64 {
	var max int64
	for _, item := range items {
		if item.ID > max {
			max = item.ID
		}
	}
	return max
}
