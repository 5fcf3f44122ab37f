package adapter

import (
	"context"

	"sogsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// BatchClient performs one batch poll against a community server: it encodes
// the ordered sub-request list, executes the call, and returns the positional
// sub-responses. Retry and backoff policy is deliberately left to callers.
type BatchClient interface {
	BatchPoll(ctx context.Context, serverURL string, requests []models.SubRequest) (models.BatchResponse, error)
}
