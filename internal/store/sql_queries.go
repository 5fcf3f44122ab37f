package store

// Queries for the rooms table.
const (
	selectRoom = `SELECT server_url, room_token, server_public_key, conversation_id, capabilities,
       can_read, can_write, can_upload, subscriber_count, admins, image_id,
       max_message_fetched_seqno, last_fetch_timestamp_ms, last_inbox_id_fetched, last_outbox_id_fetched
  FROM rooms WHERE server_url = ? AND room_token = ?`

	selectRoomsByServer = `SELECT server_url, room_token, server_public_key, conversation_id, capabilities,
       can_read, can_write, can_upload, subscriber_count, admins, image_id,
       max_message_fetched_seqno, last_fetch_timestamp_ms, last_inbox_id_fetched, last_outbox_id_fetched
  FROM rooms WHERE server_url = ? ORDER BY room_token`

	upsertRoom = `INSERT INTO rooms (server_url, room_token, server_public_key, conversation_id, capabilities,
       can_read, can_write, can_upload, subscriber_count, admins, image_id,
       max_message_fetched_seqno, last_fetch_timestamp_ms, last_inbox_id_fetched, last_outbox_id_fetched)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (server_url, room_token) DO UPDATE SET
       server_public_key = excluded.server_public_key,
       conversation_id = excluded.conversation_id,
       capabilities = excluded.capabilities,
       can_read = excluded.can_read,
       can_write = excluded.can_write,
       can_upload = excluded.can_upload,
       subscriber_count = excluded.subscriber_count,
       admins = excluded.admins,
       image_id = excluded.image_id,
       max_message_fetched_seqno = excluded.max_message_fetched_seqno,
       last_fetch_timestamp_ms = excluded.last_fetch_timestamp_ms,
       last_inbox_id_fetched = excluded.last_inbox_id_fetched,
       last_outbox_id_fetched = excluded.last_outbox_id_fetched`

	deleteRoom = `DELETE FROM rooms WHERE server_url = ? AND room_token = ?`

	updateRoomCapabilities = `UPDATE rooms SET capabilities = ? WHERE server_url = ?`

	updateRoomMetadata = `UPDATE rooms SET can_read = ?, can_write = ?, can_upload = ?,
       subscriber_count = ?, admins = ?, image_id = ?
 WHERE server_url = ? AND room_token = ?`

	updateMessageCursor = `UPDATE rooms SET max_message_fetched_seqno = MAX(max_message_fetched_seqno, ?),
       last_fetch_timestamp_ms = ?
 WHERE server_url = ? AND room_token = ?`

	updateInboxCursor = `UPDATE rooms SET last_inbox_id_fetched = ?
 WHERE server_url = ? AND last_inbox_id_fetched <> ?`

	updateOutboxCursor = `UPDATE rooms SET last_outbox_id_fetched = ?
 WHERE server_url = ? AND last_outbox_id_fetched <> ?`
)

// Queries for the conversations table.
const (
	selectConversation = `SELECT id, type, origin_conversation_id FROM conversations WHERE id = ?`

	insertConversation = `INSERT INTO conversations (id, type, origin_conversation_id)
VALUES (?, ?, '') ON CONFLICT (id) DO NOTHING`

	updateConversationOrigin = `UPDATE conversations SET origin_conversation_id = ? WHERE id = ?`

	deleteConversation = `DELETE FROM conversations WHERE id = ?`
)

// Queries for the messages table.
const (
	insertMessage = `INSERT INTO messages (conversation_id, server_id, sender, data, posted_at_ms)
VALUES (?, ?, ?, ?, ?)`

	selectMessageIDByServerID = `SELECT id FROM messages WHERE conversation_id = ? AND server_id = ?`

	deleteMessage = `DELETE FROM messages WHERE id = ?`

	selectSeenPair = `SELECT 1 FROM messages WHERE sender = ? AND data = ? LIMIT 1`
)

// Queries for the blinded_keys table.
const (
	selectAllBlindedKeys = `SELECT server_public_key, blinded_id, real_id FROM blinded_keys`

	selectBlindedKey = `SELECT real_id FROM blinded_keys WHERE server_public_key = ? AND blinded_id = ?`

	insertBlindedKey = `INSERT INTO blinded_keys (server_public_key, blinded_id, real_id)
VALUES (?, ?, ?) ON CONFLICT (server_public_key, blinded_id) DO NOTHING`
)
