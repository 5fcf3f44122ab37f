package service

import (
	"context"

	"sogsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ContentIngestor is the external content-ingestion pipeline. The sync engine
// hands over verified room messages and decrypted inbox envelopes; decoding
// the inner content format is the pipeline's business.
type ContentIngestor interface {
	// IngestRoomMessage processes one verified, deduplicated room message.
	// A failure affects only that message.
	IngestRoomMessage(ctx context.Context, msg models.Message, room models.RoomContext) error

	// IngestEnvelope processes one synthetic envelope built from a decrypted
	// inbox item.
	IngestEnvelope(ctx context.Context, envelope models.Envelope) error
}

// OutboxApplier is the outgoing-message application path: it records a
// message this account sent from another device so local state matches what
// the other device saw.
type OutboxApplier interface {
	ApplySentMessage(ctx context.Context, msg models.SyntheticMessage, content []byte, sentAtMs int64, conversation models.Conversation) error
}

// SignatureVerifier batch-validates message authenticity and returns the
// items whose signatures verify, in input order. One bad item drops only
// that item.
type SignatureVerifier interface {
	VerifyAll(ctx context.Context, items []models.SignedItem) ([]models.SignedItem, error)
}

// RoomSet is the set of room tokens a poll cycle still cares about. Results
// for any room outside the set are stale and must be discarded.
type RoomSet map[string]struct{}

// NewRoomSet builds a RoomSet from tokens.
func NewRoomSet(tokens ...string) RoomSet {
	set := make(RoomSet, len(tokens))
	for _, token := range tokens {
		set[token] = struct{}{}
	}
	return set
}

// Has reports whether token is still polled.
func (s RoomSet) Has(token string) bool {
	_, ok := s[token]
	return ok
}
