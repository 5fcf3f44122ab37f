package models

import "encoding/json"

// SubRequest is one typed entry of a batch poll request. It is a sealed sum
// type: the concrete variants below are the only implementations, so a type
// switch over SubRequest is exhaustive and the compiler flags any variant a
// dispatcher forgets to handle.
type SubRequest interface {
	subRequest()
}

// CapabilitiesRequest asks the server for its capability list.
type CapabilitiesRequest struct{}

// MessagesRequest asks for the message stream of one room, starting after
// SinceSeqno.
type MessagesRequest struct {
	RoomID     string
	SinceSeqno int64
}

// PollInfoRequest asks for a room's metadata (permissions, subscriber count,
// admin list).
type PollInfoRequest struct {
	RoomID string
}

// InboxRequest asks for the server-wide encrypted inbox after SinceID.
type InboxRequest struct {
	SinceID int64
}

// OutboxRequest asks for the server-wide encrypted outbox after SinceID.
type OutboxRequest struct {
	SinceID int64
}

func (CapabilitiesRequest) subRequest() {}
func (MessagesRequest) subRequest()     {}
func (PollInfoRequest) subRequest()     {}
func (InboxRequest) subRequest()        {}
func (OutboxRequest) subRequest()       {}

// SubResponse is one positional entry of a batch poll response. Body is kept
// raw: its shape depends on the sub-request at the same index and is only
// decoded by the handler that owns that type.
type SubResponse struct {
	Code int             `json:"code"`
	Body json.RawMessage `json:"body"`
}

// BatchResponse is the full server answer to one batch poll. Body is
// positionally aligned with the sub-request list that produced it.
type BatchResponse struct {
	Body []SubResponse `json:"body"`
}
