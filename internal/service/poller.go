package service

import (
	"context"
	"fmt"
	"slices"

	"sogsync/internal/adapter"
	"sogsync/internal/logger"
	"sogsync/internal/store"
	"sogsync/models"
)

// blindCapability gates the inbox/outbox sub-requests: the encrypted channel
// only exists on servers that advertise blinding.
const blindCapability = "blind"

// PollService runs complete poll cycles: it derives the sub-request list from
// local room state, executes the batch call, and dispatches the response.
// Cycles for different servers are independent.
type PollService struct {
	client     adapter.BatchClient
	rooms      store.RoomRepository
	dispatcher *BatchDispatcher
	logger     *logger.Logger
}

func NewPollService(client adapter.BatchClient, rooms store.RoomRepository, dispatcher *BatchDispatcher, log *logger.Logger) *PollService {
	return &PollService{client: client, rooms: rooms, dispatcher: dispatcher, logger: log}
}

// PollServer performs one poll cycle against serverURL. The set of rooms
// present at request-build time doubles as the still-polled set: anything
// that disappears mid-flight is discarded on dispatch.
func (s *PollService) PollServer(ctx context.Context, serverURL string) error {
	rooms, err := s.rooms.GetRoomsByServer(ctx, serverURL)
	if err != nil {
		return fmt.Errorf("load rooms for poll: %w", err)
	}
	if len(rooms) == 0 {
		s.logger.Debug().Str("server", serverURL).Msg("no rooms joined, skipping poll")
		return nil
	}

	requests := buildSubRequests(rooms)

	response, err := s.client.BatchPoll(ctx, serverURL, requests)
	if err != nil {
		return fmt.Errorf("batch poll %s: %w", serverURL, err)
	}

	// refresh the still-polled set after the network round trip: the user
	// may have left rooms while the request was in flight
	current, err := s.rooms.GetRoomsByServer(ctx, serverURL)
	if err != nil {
		return fmt.Errorf("refresh rooms after poll: %w", err)
	}
	stillPolled := make(RoomSet, len(current))
	for _, room := range current {
		stillPolled[room.RoomToken] = struct{}{}
	}

	return s.dispatcher.ProcessBatch(ctx, serverURL, requests, response, stillPolled)
}

// buildSubRequests assembles the ordered sub-request list for one cycle:
// capabilities first, then messages and poll info per room, then the
// server-wide inbox and outbox when the server supports blinding.
func buildSubRequests(rooms []models.Room) []models.SubRequest {
	requests := []models.SubRequest{models.CapabilitiesRequest{}}

	for _, room := range rooms {
		requests = append(requests,
			models.MessagesRequest{RoomID: room.RoomToken, SinceSeqno: room.MaxMessageFetchedSeqno},
			models.PollInfoRequest{RoomID: room.RoomToken},
		)
	}

	if slices.Contains(rooms[0].Capabilities, blindCapability) {
		requests = append(requests,
			models.InboxRequest{SinceID: rooms[0].LastInboxIDFetched},
			models.OutboxRequest{SinceID: rooms[0].LastOutboxIDFetched},
		)
	}

	return requests
}
