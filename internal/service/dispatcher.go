package service

import (
	"context"
	"encoding/json"

	"golang.org/x/sync/errgroup"

	"sogsync/internal/logger"
	"sogsync/models"
)

// BatchDispatcher routes the positional sub-responses of one batch poll to
// their handlers. Response order equals request order by server contract; the
// dispatcher only indexes defensively, so a truncated response skips the
// missing positions instead of crashing.
type BatchDispatcher struct {
	capabilities *CapabilitiesHandler
	pollInfo     *PollInfoHandler
	messages     *MessageSyncHandler
	inboxOutbox  *InboxOutboxHandler
	logger       *logger.Logger
}

func NewBatchDispatcher(
	capabilities *CapabilitiesHandler,
	pollInfo *PollInfoHandler,
	messages *MessageSyncHandler,
	inboxOutbox *InboxOutboxHandler,
	log *logger.Logger,
) *BatchDispatcher {
	return &BatchDispatcher{
		capabilities: capabilities,
		pollInfo:     pollInfo,
		messages:     messages,
		inboxOutbox:  inboxOutbox,
		logger:       log,
	}
}

// ProcessBatch handles one poll cycle's response. Capabilities go first and
// synchronously, since they change how everything else is interpreted; the
// remaining entries are fanned out, one task per entry, and all tasks are
// joined before returning. A failing task never cancels its siblings; the
// first error is reported after every branch finished.
func (d *BatchDispatcher) ProcessBatch(ctx context.Context, serverURL string, requests []models.SubRequest, response models.BatchResponse, stillPolled RoomSet) error {
	if err := d.capabilities.Handle(ctx, requests, response, serverURL); err != nil {
		d.logger.Warn().Err(err).Str("server", serverURL).Msg("capabilities handling failed")
	}

	var g errgroup.Group
	for i, request := range requests {
		if i >= len(response.Body) {
			d.logger.Error().Int("index", i).Msg("no response entry for subrequest position")
			continue
		}
		sub := response.Body[i]

		switch req := request.(type) {
		case models.CapabilitiesRequest:
			// handled above, before the fan-out

		case models.MessagesRequest:
			g.Go(func() error {
				var messages []models.Message
				if err := json.Unmarshal(sub.Body, &messages); err != nil {
					d.logger.Error().Err(err).Str("room", req.RoomID).Msg("messages subresponse did not decode")
					return ErrInvalidResponseShape
				}
				return d.messages.Handle(ctx, messages, serverURL, req, stillPolled)
			})

		case models.PollInfoRequest:
			g.Go(func() error {
				return d.pollInfo.Handle(ctx, sub.Code, sub.Body, serverURL, stillPolled)
			})

		case models.InboxRequest:
			g.Go(func() error {
				return d.handleInboxOutbox(ctx, sub, serverURL, false)
			})

		case models.OutboxRequest:
			g.Go(func() error {
				return d.handleInboxOutbox(ctx, sub, serverURL, true)
			})

		default:
			// unreachable while models.SubRequest stays sealed
			d.logger.Error().Int("index", i).Msg("no matching handler for subrequest type")
		}
	}

	return g.Wait()
}

func (d *BatchDispatcher) handleInboxOutbox(ctx context.Context, sub models.SubResponse, serverURL string, isOutbox bool) error {
	// a 404 inbox/outbox body is normal on servers without blinding
	if len(sub.Body) == 0 || string(sub.Body) == "null" {
		return nil
	}
	var items []models.InboxOutboxItem
	if err := json.Unmarshal(sub.Body, &items); err != nil {
		d.logger.Error().Err(err).Bool("outbox", isOutbox).Msg("inbox/outbox subresponse did not decode")
		return ErrInvalidResponseShape
	}
	return d.inboxOutbox.Handle(ctx, items, serverURL, isOutbox)
}
