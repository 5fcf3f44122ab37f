package service

import (
	"context"
	"encoding/json"
	"net/http"

	"sogsync/internal/logger"
	"sogsync/internal/store"
	"sogsync/models"
)

// PollInfoHandler merges room metadata sub-responses into the local room
// record. Every failed precondition is a logged no-op: a bad poll-info entry
// must never abort sibling sub-responses.
type PollInfoHandler struct {
	rooms         store.RoomRepository
	conversations store.ConversationRepository
	logger        *logger.Logger
}

func NewPollInfoHandler(rooms store.RoomRepository, conversations store.ConversationRepository, log *logger.Logger) *PollInfoHandler {
	return &PollInfoHandler{rooms: rooms, conversations: conversations, logger: log}
}

// Handle applies one poll-info sub-response for serverURL.
func (h *PollInfoHandler) Handle(ctx context.Context, statusCode int, body json.RawMessage, serverURL string, stillPolled RoomSet) error {
	if statusCode != http.StatusOK {
		h.logger.Info().Int("code", statusCode).Msg("poll info subrequest status code is not 200")
		return nil
	}

	var info models.PollInfo
	if err := json.Unmarshal(body, &info); err != nil {
		h.logger.Info().Err(err).Msg("poll info body is not an object")
		return nil
	}
	if info.Token == "" || serverURL == "" {
		h.logger.Info().Msg("poll info token and server url must be set")
		return nil
	}

	if !stillPolled.Has(info.Token) {
		// unsubscribe race, not an error
		return nil
	}

	room, err := h.rooms.GetRoom(ctx, serverURL, info.Token)
	if err != nil {
		h.logger.Info().Err(err).Str("room", info.Token).Msg("poll info for unknown room")
		return nil
	}
	if _, err := h.conversations.Get(ctx, room.ConversationID); err != nil {
		h.logger.Info().Err(err).Str("conversation", room.ConversationID).Msg("poll info without local conversation")
		return nil
	}

	// field-scoped write: a whole-row save here could carry cursor values
	// read before a concurrent messages branch advanced them
	meta := models.RoomMetadata{
		Read:            info.Read,
		Write:           info.Write,
		Upload:          info.Upload,
		SubscriberCount: info.ActiveUsers,
		Admins:          info.Details.Admins,
		ImageID:         info.Details.ImageID,
	}
	if err := h.rooms.SetRoomMetadata(ctx, serverURL, info.Token, meta); err != nil {
		h.logger.Error().Err(err).Str("room", info.Token).Msg("failed to save poll info")
		return err
	}
	return nil
}
