package models

// Envelope is the in-memory wrapper handed to the content-ingestion pipeline.
//
// For messages decrypted from the inbox/outbox channel the envelope is
// synthetic: it is built locally from the decrypted item, never persisted as
// is, and carries the unblinded source identity plus the original send
// timestamp rather than anything the server asserted.
type Envelope struct {
	ID             string `json:"id"`
	Source         string `json:"source"`
	SenderIdentity string `json:"sender_identity"`
	Content        []byte `json:"content"`
	TimestampMs    int64  `json:"timestamp_ms"`
	ReceivedAtMs   int64  `json:"received_at_ms"`
}

// RoomContext identifies the room a message was ingested from.
type RoomContext struct {
	ServerURL string `json:"server_url"`
	RoomID    string `json:"room_id"`
}

// SyntheticMessage is a locally fabricated "sent by us" message built from a
// decrypted outbox item, so a linked device can materialize messages it never
// sent itself. SentAtMs preserves the original send time, not the poll time.
type SyntheticMessage struct {
	ID             string `json:"id"`
	ConversationID string `json:"conversation_id"`
	SentAtMs       int64  `json:"sent_at_ms"`
}

// SignedItem is one entry of a batched signature verification request.
// Signature and Data are base64 as received from the server.
type SignedItem struct {
	Sender    string `json:"sender"`
	Signature string `json:"signature"`
	Data      string `json:"data"`
}
