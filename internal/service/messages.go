package service

import (
	"context"
	"errors"
	"time"

	"sogsync/internal/logger"
	"sogsync/internal/store"
	"sogsync/models"
)

// MessageSyncHandler normalizes, filters, deduplicates and ingests one room's
// message window, then advances the per-room poll cursor.
type MessageSyncHandler struct {
	rooms    store.RoomRepository
	messages store.MessageRepository
	verifier SignatureVerifier
	resolver *BlindedResolver
	ingestor ContentIngestor
	logger   *logger.Logger
	now      func() time.Time
}

func NewMessageSyncHandler(
	rooms store.RoomRepository,
	messages store.MessageRepository,
	verifier SignatureVerifier,
	resolver *BlindedResolver,
	ingestor ContentIngestor,
	log *logger.Logger,
) *MessageSyncHandler {
	return &MessageSyncHandler{
		rooms:    rooms,
		messages: messages,
		verifier: verifier,
		resolver: resolver,
		ingestor: ingestor,
		logger:   log,
		now:      time.Now,
	}
}

// Handle processes one messages sub-response for the room named in sub.
//
// The cursor advances over the maximum seqno of the *unfiltered* window: the
// server delivered those entries, so refetching them would only replay the
// same rejected messages forever. Ingestion failures and filtered messages do
// not hold the cursor back.
func (h *MessageSyncHandler) Handle(ctx context.Context, messages []models.Message, serverURL string, sub models.MessagesRequest, stillPolled RoomSet) error {
	if sub.RoomID == "" {
		h.logger.Error().Msg("messages subresponse is missing its room id")
		return ErrInvalidResponseShape
	}
	if !stillPolled.Has(sub.RoomID) {
		// unsubscribe race: results are stale, drop without noise
		return nil
	}

	room, err := h.rooms.GetRoom(ctx, serverURL, sub.RoomID)
	if err != nil {
		h.logger.Info().Err(err).Str("room", sub.RoomID).Msg("messages for unknown room")
		return nil
	}

	// wire timestamps are in seconds, everything downstream expects ms
	window := make([]models.Message, len(messages))
	copy(window, messages)
	for i := range window {
		window[i].Posted = float64(window[i].PostedMillis())
	}

	content, err := h.handleDeletions(ctx, window, room)
	if err != nil {
		h.logger.Warn().Err(err).Str("room", sub.RoomID).Msg("handling deletions failed")
	}

	verified, err := h.filterInvalidSignatures(ctx, content)
	if err != nil {
		h.logger.Warn().Err(err).Str("room", sub.RoomID).Msg("signature verification failed")
		return err
	}

	fresh, err := h.filterDuplicates(ctx, verified)
	if err != nil {
		h.logger.Warn().Err(err).Str("room", sub.RoomID).Msg("dedup lookup failed")
		return err
	}

	// if a blinded sender is provably us, rewrite to our real identity so
	// linked-device messages land in the right place
	for i := range fresh {
		real, ok := h.resolver.ResolveRealFromBlinded(room.ServerPublicKey, fresh[i].SessionID)
		if ok && h.resolver.IsUs(real) {
			fresh[i].SessionID = real
		}
	}

	roomCtx := models.RoomContext{ServerURL: serverURL, RoomID: sub.RoomID}
	for _, msg := range fresh {
		if err := h.ingestor.IngestRoomMessage(ctx, msg, roomCtx); err != nil {
			h.logger.Warn().Err(err).Int64("server_id", msg.ID).Msg("content ingestion failed for message")
		}
	}

	return h.advanceCursor(ctx, serverURL, sub.RoomID, maxSeqno(messages))
}

// handleDeletions removes locally stored copies of deleted messages and
// returns the remaining content messages. A deletion with no local row is
// fine: the message was never stored or is already gone.
func (h *MessageSyncHandler) handleDeletions(ctx context.Context, window []models.Message, room models.Room) ([]models.Message, error) {
	var (
		deletedServerIDs []int64
		content          []models.Message
	)
	for _, msg := range window {
		if msg.IsDeletion() {
			deletedServerIDs = append(deletedServerIDs, msg.ID)
		} else {
			content = append(content, msg)
		}
	}
	if len(deletedServerIDs) == 0 {
		return content, nil
	}

	localIDs, err := h.messages.GetLocalIDsByServerIDs(ctx, room.ConversationID, deletedServerIDs)
	if err != nil {
		return content, err
	}
	for _, localID := range localIDs {
		if err := h.messages.RemoveMessage(ctx, localID); err != nil && !errors.Is(err, store.ErrMessageNotFound) {
			h.logger.Warn().Err(err).Int64("local_id", localID).Msg("failed to remove deleted message")
		}
	}
	return content, nil
}

func (h *MessageSyncHandler) filterInvalidSignatures(ctx context.Context, window []models.Message) ([]models.Message, error) {
	if len(window) == 0 {
		return nil, nil
	}

	items := make([]models.SignedItem, 0, len(window))
	for _, msg := range window {
		items = append(items, models.SignedItem{
			Sender:    msg.SessionID,
			Signature: msg.Signature,
			Data:      *msg.Data,
		})
	}

	start := time.Now()
	validItems, err := h.verifier.VerifyAll(ctx, items)
	if err != nil {
		return nil, err
	}
	h.logger.Debug().Dur("took", time.Since(start)).Int("valid", len(validItems)).Msg("batch signature verification done")

	// keyed by (sender, data): two senders may post identical data and only
	// the one with the valid signature may pass
	validSet := make(map[models.SenderDataPair]struct{}, len(validItems))
	for _, item := range validItems {
		validSet[models.SenderDataPair{Sender: item.Sender, Data: item.Data}] = struct{}{}
	}

	var verified []models.Message
	for _, msg := range window {
		if _, ok := validSet[models.SenderDataPair{Sender: msg.SessionID, Data: *msg.Data}]; ok {
			verified = append(verified, msg)
		}
	}
	return verified, nil
}

func (h *MessageSyncHandler) filterDuplicates(ctx context.Context, window []models.Message) ([]models.Message, error) {
	if len(window) == 0 {
		return nil, nil
	}

	pairs := make([]models.SenderDataPair, 0, len(window))
	for _, msg := range window {
		pairs = append(pairs, models.SenderDataPair{Sender: msg.SessionID, Data: *msg.Data})
	}
	seen, err := h.messages.FilterSeen(ctx, pairs)
	if err != nil {
		return nil, err
	}
	seenSet := make(map[models.SenderDataPair]struct{}, len(seen))
	for _, pair := range seen {
		seenSet[pair] = struct{}{}
	}

	var fresh []models.Message
	for _, msg := range window {
		if _, ok := seenSet[models.SenderDataPair{Sender: msg.SessionID, Data: *msg.Data}]; !ok {
			fresh = append(fresh, msg)
		}
	}
	return fresh, nil
}

// advanceCursor writes only the cursor columns. The store keeps the cursor
// monotonic, so handing in a seqno behind the stored one is harmless.
func (h *MessageSyncHandler) advanceCursor(ctx context.Context, serverURL, roomID string, windowMax int64) error {
	if err := h.rooms.SetMessageCursor(ctx, serverURL, roomID, windowMax, h.now().UnixMilli()); err != nil {
		h.logger.Error().Err(err).Str("room", roomID).Msg("failed to persist poll cursor")
		return err
	}
	return nil
}

func maxSeqno(messages []models.Message) int64 {
	var max int64
	for _, msg := range messages {
		if msg.Seqno > max {
			max = msg.Seqno
		}
	}
	return max
}
