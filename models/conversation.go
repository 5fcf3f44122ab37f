package models

// ConversationType distinguishes the two conversation kinds this subsystem
// touches: the community room itself and one-to-one conversations created
// from the encrypted inbox/outbox channel.
type ConversationType string

const (
	ConversationCommunity ConversationType = "community"
	ConversationPrivate   ConversationType = "private"
)

// Conversation is the minimal conversation record the sync engine needs from
// the conversation store. ID is the counterpart identity for private
// conversations and the derived community id for rooms.
//
// OriginConversationID is stamped on private conversations that were first
// seen through a community's outbox channel, so a linked device knows which
// community to route replies through.
type Conversation struct {
	ID                   string           `json:"id"`
	Type                 ConversationType `json:"type"`
	OriginConversationID string           `json:"origin_conversation_id,omitempty"`
}

// CommunityConversationID builds the canonical conversation id for a room.
func CommunityConversationID(serverURL, roomToken string) string {
	if serverURL == "" || roomToken == "" {
		return ""
	}
	return serverURL + "/" + roomToken
}
