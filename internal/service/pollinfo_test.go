package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"sogsync/internal/logger"
	"sogsync/internal/mock"
	"sogsync/internal/store"
	"sogsync/models"
)

type pollInfoFixture struct {
	rooms         *mock.MockRoomRepository
	conversations *mock.MockConversationRepository
	handler       *PollInfoHandler
}

func newPollInfoFixture(t *testing.T, ctrl *gomock.Controller) *pollInfoFixture {
	t.Helper()
	f := &pollInfoFixture{
		rooms:         mock.NewMockRoomRepository(ctrl),
		conversations: mock.NewMockConversationRepository(ctrl),
	}
	f.handler = NewPollInfoHandler(f.rooms, f.conversations, logger.Nop())
	return f
}

func pollInfoBody(t *testing.T, info models.PollInfo) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(info)
	require.NoError(t, err)
	return raw
}

func TestPollInfo_MergesMetadata(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newPollInfoFixture(t, ctrl)

	room := testRoom()
	room.Read = true
	room.Write = true
	room.MaxMessageFetchedSeqno = 42

	info := models.PollInfo{
		Token:       testRoomToken,
		ActiveUsers: 17,
		Read:        true,
		Write:       false, // revoked server-side, must override the local true
		Upload:      true,
		Details: models.PollInfoDetails{
			Admins:  []string{"05aa", "05bb"},
			ImageID: 3,
		},
	}

	f.rooms.EXPECT().GetRoom(gomock.Any(), testServer, testRoomToken).Return(room, nil)
	f.conversations.EXPECT().Get(gomock.Any(), room.ConversationID).
		Return(models.Conversation{ID: room.ConversationID, Type: models.ConversationCommunity}, nil)
	// field-scoped metadata write: the cursor columns stay out of reach,
	// so a cursor advanced between the read and this write survives
	f.rooms.EXPECT().
		SetRoomMetadata(gomock.Any(), testServer, testRoomToken, models.RoomMetadata{
			Read:            true,
			Write:           false,
			Upload:          true,
			SubscriberCount: 17,
			Admins:          []string{"05aa", "05bb"},
			ImageID:         3,
		}).
		Return(nil)

	err := f.handler.Handle(context.Background(), 200, pollInfoBody(t, info), testServer, NewRoomSet(testRoomToken))
	require.NoError(t, err)
}

func TestPollInfo_Non200IsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newPollInfoFixture(t, ctrl)

	// no repository expectations: a 404 must not mutate anything
	err := f.handler.Handle(context.Background(), 404, json.RawMessage(`{}`), testServer, NewRoomSet(testRoomToken))
	require.NoError(t, err)
}

func TestPollInfo_MalformedBodyIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newPollInfoFixture(t, ctrl)

	err := f.handler.Handle(context.Background(), 200, json.RawMessage(`[1,2]`), testServer, NewRoomSet(testRoomToken))
	require.NoError(t, err)
}

func TestPollInfo_MissingTokenIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newPollInfoFixture(t, ctrl)

	err := f.handler.Handle(context.Background(), 200, json.RawMessage(`{"active_users":5}`), testServer, NewRoomSet(testRoomToken))
	require.NoError(t, err)
}

func TestPollInfo_RoomNoLongerPolled(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newPollInfoFixture(t, ctrl)

	body := pollInfoBody(t, models.PollInfo{Token: testRoomToken})
	err := f.handler.Handle(context.Background(), 200, body, testServer, NewRoomSet("another-room"))
	require.NoError(t, err)
}

func TestPollInfo_UnknownRoomIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newPollInfoFixture(t, ctrl)

	f.rooms.EXPECT().GetRoom(gomock.Any(), testServer, testRoomToken).
		Return(models.Room{}, store.ErrRoomNotFound)

	body := pollInfoBody(t, models.PollInfo{Token: testRoomToken})
	err := f.handler.Handle(context.Background(), 200, body, testServer, NewRoomSet(testRoomToken))
	require.NoError(t, err)
}

func TestPollInfo_MissingConversationIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newPollInfoFixture(t, ctrl)

	room := testRoom()
	f.rooms.EXPECT().GetRoom(gomock.Any(), testServer, testRoomToken).Return(room, nil)
	f.conversations.EXPECT().Get(gomock.Any(), room.ConversationID).
		Return(models.Conversation{}, store.ErrConversationNotFound)

	body := pollInfoBody(t, models.PollInfo{Token: testRoomToken})
	err := f.handler.Handle(context.Background(), 200, body, testServer, NewRoomSet(testRoomToken))
	require.NoError(t, err)
}

func TestPollInfo_SaveFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newPollInfoFixture(t, ctrl)

	room := testRoom()
	f.rooms.EXPECT().GetRoom(gomock.Any(), testServer, testRoomToken).Return(room, nil)
	f.conversations.EXPECT().Get(gomock.Any(), room.ConversationID).
		Return(models.Conversation{ID: room.ConversationID}, nil)
	f.rooms.EXPECT().SetRoomMetadata(gomock.Any(), testServer, testRoomToken, gomock.Any()).Return(assert.AnError)

	body := pollInfoBody(t, models.PollInfo{Token: testRoomToken})
	err := f.handler.Handle(context.Background(), 200, body, testServer, NewRoomSet(testRoomToken))
	assert.ErrorIs(t, err, assert.AnError)
}
