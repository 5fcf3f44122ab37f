package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"sogsync/internal/logger"
	"sogsync/models"
)

// roomRepository is the sqlite-backed implementation of [RoomRepository].
//
// SaveRoom writes the whole row and is reserved for room creation and
// bootstrap. Everything the sync engine updates mid-poll goes through a
// field-scoped UPDATE so concurrent writers cannot clobber each other's
// columns: metadata, the message cursor, capabilities, and the server-wide
// inbox/outbox cursors each touch only the fields they own.
type roomRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewRoomRepository(db *DB, logger *logger.Logger) RoomRepository {
	logger.Debug().Msg("creating room repository")
	return &roomRepository{db: db, logger: logger}
}

func (r *roomRepository) GetRoom(ctx context.Context, serverURL, roomToken string) (models.Room, error) {
	row := r.db.QueryRowContext(ctx, selectRoom, serverURL, roomToken)
	room, err := scanRoom(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Room{}, ErrRoomNotFound
	}
	if err != nil {
		return models.Room{}, fmt.Errorf("%w: %v", ErrScanningRow, err)
	}
	return room, nil
}

func (r *roomRepository) GetRoomsByServer(ctx context.Context, serverURL string) ([]models.Room, error) {
	rows, err := r.db.QueryContext(ctx, selectRoomsByServer, serverURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var rooms []models.Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrScanningRows, err)
		}
		rooms = append(rooms, room)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScanningRows, err)
	}
	return rooms, nil
}

func (r *roomRepository) SaveRoom(ctx context.Context, room models.Room) error {
	admins, err := json.Marshal(room.Admins)
	if err != nil {
		return fmt.Errorf("encode admins: %w", err)
	}

	_, err = r.db.ExecContext(ctx, upsertRoom,
		room.ServerURL, room.RoomToken, room.ServerPublicKey, room.ConversationID,
		strings.Join(room.Capabilities, ","),
		room.Read, room.Write, room.Upload, room.SubscriberCount, string(admins), room.ImageID,
		room.MaxMessageFetchedSeqno, room.LastFetchTimestampMs,
		room.LastInboxIDFetched, room.LastOutboxIDFetched,
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}
	return nil
}

func (r *roomRepository) DeleteRoom(ctx context.Context, serverURL, roomToken string) error {
	if _, err := r.db.ExecContext(ctx, deleteRoom, serverURL, roomToken); err != nil {
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}
	return nil
}

func (r *roomRepository) SetRoomMetadata(ctx context.Context, serverURL, roomToken string, meta models.RoomMetadata) error {
	admins, err := json.Marshal(meta.Admins)
	if err != nil {
		return fmt.Errorf("encode admins: %w", err)
	}
	_, err = r.db.ExecContext(ctx, updateRoomMetadata,
		meta.Read, meta.Write, meta.Upload, meta.SubscriberCount, string(admins), meta.ImageID,
		serverURL, roomToken,
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}
	return nil
}

func (r *roomRepository) SetMessageCursor(ctx context.Context, serverURL, roomToken string, seqno, fetchedAtMs int64) error {
	// MAX() in the query keeps the cursor monotonic even if a stale
	// writer hands in a smaller seqno
	_, err := r.db.ExecContext(ctx, updateMessageCursor, seqno, fetchedAtMs, serverURL, roomToken)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}
	return nil
}

func (r *roomRepository) SetCapabilities(ctx context.Context, serverURL string, capabilities []string) error {
	_, err := r.db.ExecContext(ctx, updateRoomCapabilities, strings.Join(capabilities, ","), serverURL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}
	return nil
}

func (r *roomRepository) SetInboxOutboxCursor(ctx context.Context, serverURL string, id int64, outbox bool) error {
	query := updateInboxCursor
	if outbox {
		query = updateOutboxCursor
	}
	// the <> guard in the query makes an unchanged cursor a no-op write
	if _, err := r.db.ExecContext(ctx, query, id, serverURL, id); err != nil {
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRoom(row rowScanner) (models.Room, error) {
	var (
		room         models.Room
		capabilities string
		admins       string
	)
	err := row.Scan(
		&room.ServerURL, &room.RoomToken, &room.ServerPublicKey, &room.ConversationID,
		&capabilities,
		&room.Read, &room.Write, &room.Upload, &room.SubscriberCount, &admins, &room.ImageID,
		&room.MaxMessageFetchedSeqno, &room.LastFetchTimestampMs,
		&room.LastInboxIDFetched, &room.LastOutboxIDFetched,
	)
	if err != nil {
		return models.Room{}, err
	}
	if capabilities != "" {
		room.Capabilities = strings.Split(capabilities, ",")
	}
	if admins != "" {
		if err := json.Unmarshal([]byte(admins), &room.Admins); err != nil {
			return models.Room{}, fmt.Errorf("decode admins: %w", err)
		}
	}
	return room, nil
}
