package service

import "errors"

var (
	// ErrInvalidResponseShape is returned when a sub-response body does not
	// decode into the shape its sub-request type requires. It aborts only the
	// branch that saw it.
	ErrInvalidResponseShape = errors.New("invalid sub-response shape")

	// ErrMissingTrustContext is returned when inbox/outbox processing cannot
	// establish its trust context: no room with a server public key, or no
	// local signing keypair. The whole call is refused.
	ErrMissingTrustContext = errors.New("missing trust context for encrypted channel")

	// ErrResponseTruncated is returned when the batch response carries fewer
	// entries than the sub-request list. Only the positions beyond the end
	// are skipped.
	ErrResponseTruncated = errors.New("batch response shorter than request list")
)
