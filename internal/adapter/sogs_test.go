package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sogsync/internal/logger"
	"sogsync/models"
)

func TestBatchPoll_EncodesRequestsInOrder(t *testing.T) {
	var gotRows []batchRow
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/batch", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotRows))

		_, _ = w.Write([]byte(`[
			{"code": 200, "body": {"capabilities": ["sogs", "blind"]}},
			{"code": 200, "body": []},
			{"code": 404, "body": null}
		]`))
	}))
	defer srv.Close()

	client := NewBatchClient(5*time.Second, logger.Nop())
	resp, err := client.BatchPoll(context.Background(), srv.URL, []models.SubRequest{
		models.CapabilitiesRequest{},
		models.MessagesRequest{RoomID: "lobby", SinceSeqno: 42},
		models.PollInfoRequest{RoomID: "lobby"},
	})
	require.NoError(t, err)

	require.Len(t, gotRows, 3)
	assert.Equal(t, "/capabilities", gotRows[0].Path)
	assert.Equal(t, "/room/lobby/messages/since/42", gotRows[1].Path)
	assert.Equal(t, "/room/lobby/pollInfo/0", gotRows[2].Path)

	require.Len(t, resp.Body, 3)
	assert.Equal(t, 200, resp.Body[0].Code)
	assert.Equal(t, 404, resp.Body[2].Code)
}

func TestBatchPoll_InboxOutboxPaths(t *testing.T) {
	assert.Equal(t, "/inbox/since/7", encodeSubRequest(models.InboxRequest{SinceID: 7}).Path)
	assert.Equal(t, "/outbox/since/9", encodeSubRequest(models.OutboxRequest{SinceID: 9}).Path)
}

func TestBatchPoll_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewBatchClient(5*time.Second, logger.Nop())
	_, err := client.BatchPoll(context.Background(), srv.URL, []models.SubRequest{models.CapabilitiesRequest{}})
	assert.Error(t, err)
}

func TestBatchPoll_InvalidServerURL(t *testing.T) {
	client := NewBatchClient(time.Second, logger.Nop())
	_, err := client.BatchPoll(context.Background(), "   ", nil)
	assert.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	got, err := normalizeBaseURL("sogs.example.org")
	require.NoError(t, err)
	assert.Equal(t, "http://sogs.example.org", got)

	got, err = normalizeBaseURL("https://sogs.example.org/")
	require.NoError(t, err)
	assert.Equal(t, "https://sogs.example.org", got)
}
