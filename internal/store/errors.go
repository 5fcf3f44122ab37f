package store

import "errors"

// Sentinel errors returned by repository methods. Callers match them with
// [errors.Is].
var (
	// ErrRoomNotFound is returned when no room row matches the requested
	// (server_url, room_token) pair.
	ErrRoomNotFound = errors.New("room not found")

	// ErrConversationNotFound is returned when a lookup targets a
	// conversation id with no local record.
	ErrConversationNotFound = errors.New("conversation not found")

	// ErrMessageNotFound is returned when a removal targets a local message
	// id that does not exist.
	ErrMessageNotFound = errors.New("message not found")

	// ErrMappingConflict is returned when a blinded-key insert would replace
	// an existing mapping with a different real id. Proven mappings are never
	// silently overwritten.
	ErrMappingConflict = errors.New("blinded key mapping conflict")
)

// Low-level database operation errors, wrapped around driver failures.
var (
	ErrExecutingQuery     = errors.New("error executing sql query")
	ErrExecutingStatement = errors.New("failed to execute statement")
	ErrScanningRow        = errors.New("failed to scan row")
	ErrScanningRows       = errors.New("failed to scan rows")
)
