package store

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sogsync/internal/logger"
	"sogsync/models"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &DB{DB: db, logger: logger.Nop()}, mock
}

var roomColumns = []string{
	"server_url", "room_token", "server_public_key", "conversation_id", "capabilities",
	"can_read", "can_write", "can_upload", "subscriber_count", "admins", "image_id",
	"max_message_fetched_seqno", "last_fetch_timestamp_ms",
	"last_inbox_id_fetched", "last_outbox_id_fetched",
}

func roomRow(room models.Room, capabilities, admins string) *sqlmock.Rows {
	return sqlmock.NewRows(roomColumns).AddRow(
		room.ServerURL, room.RoomToken, room.ServerPublicKey, room.ConversationID, capabilities,
		room.Read, room.Write, room.Upload, room.SubscriberCount, admins, room.ImageID,
		room.MaxMessageFetchedSeqno, room.LastFetchTimestampMs,
		room.LastInboxIDFetched, room.LastOutboxIDFetched,
	)
}

func TestRoomRepository_GetRoom(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRoomRepository(db, logger.Nop())
	ctx := context.Background()

	stored := models.Room{
		ServerURL:              "https://sogs.example.org",
		RoomToken:              "lobby",
		ServerPublicKey:        "aa",
		ConversationID:         "https://sogs.example.org/lobby",
		Read:                   true,
		Write:                  true,
		SubscriberCount:        12,
		MaxMessageFetchedSeqno: 42,
	}
	mock.ExpectQuery(regexp.QuoteMeta(selectRoom)).
		WithArgs("https://sogs.example.org", "lobby").
		WillReturnRows(roomRow(stored, "sogs,blind", `["05aa"]`))

	room, err := repo.GetRoom(ctx, "https://sogs.example.org", "lobby")
	require.NoError(t, err)
	assert.Equal(t, []string{"sogs", "blind"}, room.Capabilities)
	assert.Equal(t, []string{"05aa"}, room.Admins)
	assert.EqualValues(t, 42, room.MaxMessageFetchedSeqno)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomRepository_GetRoom_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRoomRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta(selectRoom)).
		WithArgs("https://sogs.example.org", "ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetRoom(context.Background(), "https://sogs.example.org", "ghost")
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestRoomRepository_SaveRoom(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRoomRepository(db, logger.Nop())

	room := models.Room{
		ServerURL:              "https://sogs.example.org",
		RoomToken:              "lobby",
		Capabilities:           []string{"sogs", "blind"},
		Admins:                 []string{"05aa"},
		Read:                   true,
		MaxMessageFetchedSeqno: 7,
	}
	mock.ExpectExec(regexp.QuoteMeta(upsertRoom)).
		WithArgs(
			room.ServerURL, room.RoomToken, "", "", "sogs,blind",
			true, false, false, int64(0), `["05aa"]`, int64(0),
			int64(7), int64(0), int64(0), int64(0),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.SaveRoom(context.Background(), room))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomRepository_SetRoomMetadata(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRoomRepository(db, logger.Nop())

	// the statement must not name any cursor column, so a concurrent cursor
	// advance can never be rolled back by a metadata write
	assert.NotContains(t, updateRoomMetadata, "max_message_fetched_seqno")
	assert.NotContains(t, updateRoomMetadata, "last_inbox_id_fetched")
	assert.NotContains(t, updateRoomMetadata, "last_outbox_id_fetched")

	mock.ExpectExec(regexp.QuoteMeta(updateRoomMetadata)).
		WithArgs(true, false, true, int64(17), `["05aa","05bb"]`, int64(3),
			"https://sogs.example.org", "lobby").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SetRoomMetadata(context.Background(), "https://sogs.example.org", "lobby", models.RoomMetadata{
		Read:            true,
		Upload:          true,
		SubscriberCount: 17,
		Admins:          []string{"05aa", "05bb"},
		ImageID:         3,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomRepository_SetMessageCursor(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRoomRepository(db, logger.Nop())

	// MAX() in the statement keeps the cursor monotonic at the database
	// level, a stale writer cannot move it backwards
	assert.Contains(t, updateMessageCursor, "MAX(max_message_fetched_seqno, ?)")

	mock.ExpectExec(regexp.QuoteMeta(updateMessageCursor)).
		WithArgs(int64(55), int64(1_700_000_999_000), "https://sogs.example.org", "lobby").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SetMessageCursor(context.Background(), "https://sogs.example.org", "lobby", 55, 1_700_000_999_000)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomRepository_SetInboxOutboxCursor(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRoomRepository(db, logger.Nop())
	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta(updateInboxCursor)).
		WithArgs(int64(99), "https://sogs.example.org", int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	require.NoError(t, repo.SetInboxOutboxCursor(ctx, "https://sogs.example.org", 99, false))

	mock.ExpectExec(regexp.QuoteMeta(updateOutboxCursor)).
		WithArgs(int64(120), "https://sogs.example.org", int64(120)).
		WillReturnResult(sqlmock.NewResult(0, 0)) // already at 120: no row written
	require.NoError(t, repo.SetInboxOutboxCursor(ctx, "https://sogs.example.org", 120, true))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomRepository_SetCapabilities(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRoomRepository(db, logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta(updateRoomCapabilities)).
		WithArgs("sogs,blind,reactions", "https://sogs.example.org").
		WillReturnResult(sqlmock.NewResult(0, 2))

	err := repo.SetCapabilities(context.Background(), "https://sogs.example.org", []string{"sogs", "blind", "reactions"})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
