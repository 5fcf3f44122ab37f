package service

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"sogsync/internal/logger"
	"sogsync/internal/mock"
	"sogsync/models"
)

type ingestFixture struct {
	messages      *mock.MockMessageRepository
	conversations *mock.MockConversationRepository
	ingestor      *StoreIngestor
}

func newIngestFixture(t *testing.T, ctrl *gomock.Controller) *ingestFixture {
	t.Helper()
	f := &ingestFixture{
		messages:      mock.NewMockMessageRepository(ctrl),
		conversations: mock.NewMockConversationRepository(ctrl),
	}
	f.ingestor = NewStoreIngestor(f.messages, f.conversations, newTestKeyPair(t), logger.Nop())
	return f
}

func TestStoreIngestor_IngestRoomMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newIngestFixture(t, ctrl)

	kp := newTestKeyPair(t)
	msg := signedRoomMessage(t, kp, 5, 2, "hello room", 1_700_000_000)
	// the sync handler normalizes wire seconds before handing messages over
	msg.Posted = 1_700_000_000_500
	conversationID := models.CommunityConversationID(testServer, testRoomToken)

	f.conversations.EXPECT().
		GetOrCreate(gomock.Any(), conversationID, models.ConversationCommunity).
		Return(models.Conversation{ID: conversationID, Type: models.ConversationCommunity}, nil)
	f.messages.EXPECT().
		SaveMessage(gomock.Any(), conversationID, int64(5), kp.SessionID(), *msg.Data, int64(1_700_000_000_500)).
		Return(int64(101), nil)

	err := f.ingestor.IngestRoomMessage(context.Background(), msg, models.RoomContext{ServerURL: testServer, RoomID: testRoomToken})
	require.NoError(t, err)
}

// End to end through the sync handler: a message posted at wire seconds must
// be stored with a millisecond timestamp, converted exactly once.
func TestMessageSync_StoresWireSecondsAsMillis(t *testing.T) {
	ctrl := gomock.NewController(t)
	kp := newTestKeyPair(t)

	rooms := mock.NewMockRoomRepository(ctrl)
	messages := mock.NewMockMessageRepository(ctrl)
	conversations := mock.NewMockConversationRepository(ctrl)
	ingestor := NewStoreIngestor(messages, conversations, kp, logger.Nop())

	handler := NewMessageSyncHandler(
		rooms, messages,
		NewSignatureVerifier(logger.Nop()),
		newTestResolver(t, ctrl, kp, nil),
		ingestor, logger.Nop(),
	)

	room := testRoom()
	msg := signedRoomMessage(t, kp, 60, 9, "timestamped", 1_700_000_000)
	conversationID := models.CommunityConversationID(testServer, testRoomToken)

	rooms.EXPECT().GetRoom(gomock.Any(), testServer, testRoomToken).Return(room, nil)
	messages.EXPECT().FilterSeen(gomock.Any(), gomock.Any()).Return(nil, nil)
	conversations.EXPECT().
		GetOrCreate(gomock.Any(), conversationID, models.ConversationCommunity).
		Return(models.Conversation{ID: conversationID, Type: models.ConversationCommunity}, nil)
	messages.EXPECT().
		SaveMessage(gomock.Any(), conversationID, int64(60), kp.SessionID(), *msg.Data, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ int64, _, _ string, postedAtMs int64) (int64, error) {
			assert.Equal(t, int64(1_700_000_000_000), postedAtMs)
			return 104, nil
		})
	rooms.EXPECT().SetMessageCursor(gomock.Any(), testServer, testRoomToken, int64(9), gomock.Any()).Return(nil)

	err := handler.Handle(context.Background(), []models.Message{msg}, testServer,
		models.MessagesRequest{RoomID: testRoomToken},
		NewRoomSet(testRoomToken))
	require.NoError(t, err)
}

func TestStoreIngestor_IngestRoomMessage_IncompleteContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newIngestFixture(t, ctrl)

	kp := newTestKeyPair(t)
	msg := signedRoomMessage(t, kp, 1, 1, "x", 1)

	err := f.ingestor.IngestRoomMessage(context.Background(), msg, models.RoomContext{ServerURL: testServer})
	assert.Error(t, err)
}

func TestStoreIngestor_IngestEnvelope(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newIngestFixture(t, ctrl)

	sender := newTestKeyPair(t)
	envelope := models.Envelope{
		ID:             "env-1",
		Source:         sender.SessionID(),
		SenderIdentity: sender.SessionID(),
		Content:        []byte("direct hello"),
		TimestampMs:    1_700_000_000_000,
	}

	f.conversations.EXPECT().
		GetOrCreate(gomock.Any(), sender.SessionID(), models.ConversationPrivate).
		Return(models.Conversation{ID: sender.SessionID(), Type: models.ConversationPrivate}, nil)
	f.messages.EXPECT().
		SaveMessage(gomock.Any(), sender.SessionID(), int64(0), sender.SessionID(),
			base64.StdEncoding.EncodeToString(envelope.Content), envelope.TimestampMs).
		Return(int64(102), nil)

	require.NoError(t, f.ingestor.IngestEnvelope(context.Background(), envelope))
}

func TestStoreIngestor_ApplySentMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newIngestFixture(t, ctrl)

	conversation := models.Conversation{ID: "05abcd", Type: models.ConversationPrivate}
	content := []byte("sent from my other device")

	f.messages.EXPECT().
		SaveMessage(gomock.Any(), conversation.ID, int64(0), f.ingestor.keyPair.SessionID(),
			base64.StdEncoding.EncodeToString(content), int64(1_700_000_001_000)).
		Return(int64(103), nil)

	err := f.ingestor.ApplySentMessage(context.Background(),
		models.SyntheticMessage{ID: "syn-1", ConversationID: conversation.ID, SentAtMs: 1_700_000_001_000},
		content, 1_700_000_001_000, conversation)
	require.NoError(t, err)
}
