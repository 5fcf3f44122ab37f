// Package adapter implements the outbound HTTP transport to community
// servers: the batch poll endpoint that answers every sub-request of a poll
// cycle in one round trip.
package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"sogsync/internal/logger"
	"sogsync/models"
)

type sogsBatchClient struct {
	client *resty.Client
	logger *logger.Logger
}

// NewBatchClient constructs a [BatchClient] over resty with the given request
// timeout.
func NewBatchClient(requestTimeout time.Duration, log *logger.Logger) BatchClient {
	client := resty.New().
		SetTimeout(requestTimeout).
		SetHeader("Content-Type", "application/json")

	return &sogsBatchClient{client: client, logger: log}
}

// batchRow is one entry of the /batch request body.
type batchRow struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

// BatchPoll implements [BatchClient]. The response array is positionally
// aligned with requests; the caller owns interpretation of each entry.
func (c *sogsBatchClient) BatchPoll(ctx context.Context, serverURL string, requests []models.SubRequest) (models.BatchResponse, error) {
	base, err := normalizeBaseURL(serverURL)
	if err != nil {
		return models.BatchResponse{}, fmt.Errorf("invalid server url: %w", err)
	}

	rows := make([]batchRow, 0, len(requests))
	for _, req := range requests {
		rows = append(rows, encodeSubRequest(req))
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(rows).
		Post(base + "/batch")
	if err != nil {
		return models.BatchResponse{}, fmt.Errorf("batch poll request: %w", err)
	}
	if resp.StatusCode() != 200 {
		return models.BatchResponse{}, fmt.Errorf("batch poll: unexpected status %d", resp.StatusCode())
	}

	var entries []models.SubResponse
	if err := json.Unmarshal(resp.Body(), &entries); err != nil {
		return models.BatchResponse{}, fmt.Errorf("batch poll: decode response: %w", err)
	}

	c.logger.Debug().
		Str("server", base).
		Int("subresponses", len(entries)).
		Msg("batch poll completed")

	return models.BatchResponse{Body: entries}, nil
}

// encodeSubRequest maps a sub-request variant onto its endpoint path. The
// switch is exhaustive over the sealed models.SubRequest type.
func encodeSubRequest(req models.SubRequest) batchRow {
	switch r := req.(type) {
	case models.CapabilitiesRequest:
		return batchRow{Method: "GET", Path: "/capabilities"}
	case models.MessagesRequest:
		return batchRow{Method: "GET", Path: fmt.Sprintf("/room/%s/messages/since/%d", url.PathEscape(r.RoomID), r.SinceSeqno)}
	case models.PollInfoRequest:
		return batchRow{Method: "GET", Path: fmt.Sprintf("/room/%s/pollInfo/0", url.PathEscape(r.RoomID))}
	case models.InboxRequest:
		return batchRow{Method: "GET", Path: fmt.Sprintf("/inbox/since/%d", r.SinceID)}
	case models.OutboxRequest:
		return batchRow{Method: "GET", Path: fmt.Sprintf("/outbox/since/%d", r.SinceID)}
	default:
		// unreachable while models.SubRequest stays sealed
		return batchRow{}
	}
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
