package models

// Room is the locally persisted record for one joined community room,
// identified by (ServerURL, RoomToken).
//
// MaxMessageFetchedSeqno is the per-room poll cursor and never decreases,
// even when every message in a fetched window is later rejected. The inbox
// and outbox cursors are server-wide: the encrypted direct-message channel is
// scoped to the server, not to a room, so the same value is duplicated onto
// every room row of that server.
type Room struct {
	ServerURL string `json:"server_url"`
	RoomToken string `json:"room_token"`

	ServerPublicKey string `json:"server_public_key"`
	ConversationID  string `json:"conversation_id"`

	Capabilities    []string `json:"capabilities,omitempty"`
	Read            bool     `json:"read"`
	Write           bool     `json:"write"`
	Upload          bool     `json:"upload"`
	SubscriberCount int64    `json:"subscriber_count"`
	Admins          []string `json:"admins,omitempty"`
	ImageID         int64    `json:"image_id"`

	MaxMessageFetchedSeqno int64 `json:"max_message_fetched_seqno"`
	LastFetchTimestampMs   int64 `json:"last_fetch_timestamp_ms"`
	LastInboxIDFetched     int64 `json:"last_inbox_id_fetched"`
	LastOutboxIDFetched    int64 `json:"last_outbox_id_fetched"`
}

// RoomMetadata is the subset of room fields owned by the poll-info merge.
// Keeping it separate from Room means a metadata write cannot carry stale
// cursor values read before a concurrent cursor advance.
type RoomMetadata struct {
	Read            bool     `json:"read"`
	Write           bool     `json:"write"`
	Upload          bool     `json:"upload"`
	SubscriberCount int64    `json:"subscriber_count"`
	Admins          []string `json:"admins,omitempty"`
	ImageID         int64    `json:"image_id"`
}

// PollInfo is a room metadata sub-response body.
type PollInfo struct {
	ActiveUsers int64           `json:"active_users"`
	Read        bool            `json:"read"`
	Write       bool            `json:"write"`
	Upload      bool            `json:"upload"`
	Token       string          `json:"token"`
	Details     PollInfoDetails `json:"details"`
}

// PollInfoDetails carries the nested room details of a poll-info response.
// Only admins and image_id are merged locally.
type PollInfoDetails struct {
	Admins  []string `json:"admins,omitempty"`
	ImageID int64    `json:"image_id"`
}

// CapabilitiesBody is a capabilities sub-response body.
type CapabilitiesBody struct {
	Capabilities []string `json:"capabilities"`
}

// BlindedKeyMapping links a per-server pseudonymous identity to the real one.
// A mapping exists only after a blinding proof succeeded; once proven it is
// never silently replaced by a different real id.
type BlindedKeyMapping struct {
	ServerPublicKey string `json:"server_public_key"`
	BlindedID       string `json:"blinded_id"`
	RealID          string `json:"real_id"`
}
