package store

import (
	"context"

	"sogsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// RoomRepository persists the per-room sync state: metadata, permission
// flags, and the poll cursors.
type RoomRepository interface {
	GetRoom(ctx context.Context, serverURL, roomToken string) (models.Room, error)
	GetRoomsByServer(ctx context.Context, serverURL string) ([]models.Room, error)
	SaveRoom(ctx context.Context, room models.Room) error
	DeleteRoom(ctx context.Context, serverURL, roomToken string) error

	// SetRoomMetadata updates only the poll-info metadata columns of one
	// room, leaving cursors and identity fields untouched.
	SetRoomMetadata(ctx context.Context, serverURL, roomToken string, meta models.RoomMetadata) error

	// SetMessageCursor advances the per-room message cursor and stamps the
	// fetch time. The cursor never moves backwards.
	SetMessageCursor(ctx context.Context, serverURL, roomToken string, seqno, fetchedAtMs int64) error

	// SetCapabilities stores the server's capability list on every room row
	// of that server.
	SetCapabilities(ctx context.Context, serverURL string, capabilities []string) error

	// SetInboxOutboxCursor writes the server-wide inbox or outbox cursor to
	// every room row of the server. Rows already at the given value are left
	// untouched.
	SetInboxOutboxCursor(ctx context.Context, serverURL string, id int64, outbox bool) error
}

// ConversationRepository is the conversation-lifecycle collaborator: the sync
// engine only needs lookup, idempotent creation, and origin stamping.
type ConversationRepository interface {
	Get(ctx context.Context, id string) (models.Conversation, error)
	GetOrCreate(ctx context.Context, id string, convoType models.ConversationType) (models.Conversation, error)
	SetOriginConversationID(ctx context.Context, id, originID string) error
	Delete(ctx context.Context, id string) error
}

// MessageRepository stores ingested room messages and answers the two
// questions the sync engine asks: which server ids map to local rows
// (deletions) and which (sender, data) pairs were already ingested (dedup).
type MessageRepository interface {
	SaveMessage(ctx context.Context, conversationID string, serverID int64, sender, data string, postedAtMs int64) (int64, error)
	GetLocalIDsByServerIDs(ctx context.Context, conversationID string, serverIDs []int64) ([]int64, error)
	RemoveMessage(ctx context.Context, localID int64) error

	// FilterSeen returns the subset of pairs already present in storage.
	FilterSeen(ctx context.Context, pairs []models.SenderDataPair) ([]models.SenderDataPair, error)
}

// BlindedKeyRepository is the persisted side of the blinded-identity cache.
type BlindedKeyRepository interface {
	GetAll(ctx context.Context) ([]models.BlindedKeyMapping, error)
	Save(ctx context.Context, mapping models.BlindedKeyMapping) error
}
