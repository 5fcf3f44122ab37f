package service

import (
	"context"
	"encoding/json"
	"net/http"

	"sogsync/internal/logger"
	"sogsync/internal/store"
	"sogsync/models"
)

// CapabilitiesHandler persists the server's capability list onto every room
// row of the server. It runs before everything else in a poll cycle because
// capabilities decide how the remaining sub-responses are interpreted.
type CapabilitiesHandler struct {
	rooms  store.RoomRepository
	logger *logger.Logger
}

func NewCapabilitiesHandler(rooms store.RoomRepository, log *logger.Logger) *CapabilitiesHandler {
	return &CapabilitiesHandler{rooms: rooms, logger: log}
}

// Handle locates the capabilities entry among the batch positions and stores
// its list. A missing or malformed entry leaves the previous capabilities in
// place.
func (h *CapabilitiesHandler) Handle(ctx context.Context, requests []models.SubRequest, response models.BatchResponse, serverURL string) error {
	index := -1
	for i, req := range requests {
		if _, ok := req.(models.CapabilitiesRequest); ok {
			index = i
			break
		}
	}
	if index < 0 {
		return nil
	}
	if index >= len(response.Body) {
		h.logger.Error().Int("index", index).Msg("no response entry for capabilities subrequest")
		return ErrResponseTruncated
	}

	sub := response.Body[index]
	if sub.Code != http.StatusOK {
		h.logger.Info().Int("code", sub.Code).Msg("capabilities subrequest status code is not 200")
		return nil
	}

	var body models.CapabilitiesBody
	if err := json.Unmarshal(sub.Body, &body); err != nil {
		h.logger.Info().Err(err).Msg("capabilities body did not decode")
		return ErrInvalidResponseShape
	}

	if err := h.rooms.SetCapabilities(ctx, serverURL, body.Capabilities); err != nil {
		h.logger.Error().Err(err).Msg("failed to persist capabilities")
		return err
	}

	h.logger.Debug().Strs("capabilities", body.Capabilities).Str("server", serverURL).Msg("capabilities updated")
	return nil
}
