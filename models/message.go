package models

// Message is one entry of a room's message stream as returned by the server.
//
// Data is a pointer because the server reports deletions explicitly: a null
// data field means the message was removed and the client must drop its local
// copy. Posted is expressed in seconds (possibly fractional) on the wire; the
// rest of the application works in milliseconds, see PostedMillis.
type Message struct {
	ID        int64   `json:"id"`
	SessionID string  `json:"session_id"`
	Data      *string `json:"data"`
	Signature string  `json:"signature"`
	Seqno     int64   `json:"seqno"`
	Posted    float64 `json:"posted"`
}

// IsDeletion reports whether this entry marks a deleted message.
func (m Message) IsDeletion() bool {
	return m.Data == nil
}

// PostedMillis converts the server-side seconds timestamp to integer
// milliseconds by truncation.
func (m Message) PostedMillis() int64 {
	return int64(m.Posted * 1000)
}

// InboxOutboxItem is one entry of the server-wide encrypted direct-message
// channel. Recipient is only set for outbox items. IDs are monotonic per
// direction and server-wide, not per room.
type InboxOutboxItem struct {
	ID        int64   `json:"id"`
	Sender    string  `json:"sender"`
	Recipient string  `json:"recipient,omitempty"`
	PostedAt  float64 `json:"posted_at"`
	Message   string  `json:"message"`
}

// PostedAtMillis converts the seconds timestamp to integer milliseconds.
func (i InboxOutboxItem) PostedAtMillis() int64 {
	return int64(i.PostedAt * 1000)
}

// SenderDataPair identifies a message for deduplication purposes: the same
// (sender, data) pair re-delivered in an overlapping poll window must be
// ingested only once.
type SenderDataPair struct {
	Sender string
	Data   string
}
