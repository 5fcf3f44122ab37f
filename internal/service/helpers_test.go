package service

import (
	"context"
	"crypto/ed25519"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"sogsync/internal/crypto"
	"sogsync/internal/logger"
	"sogsync/internal/mock"
	"sogsync/models"
)

const (
	testServer    = "https://open.example.org"
	testServerKey = "bac6e71efd7dfa4a83c98ed24f254ab2c267f9ccdb172a5280a0444ad24e89cc"
	testRoomToken = "lobby"
)

func newTestKeyPair(t *testing.T) *crypto.KeyPair {
	t.Helper()
	kp, err := crypto.GenerateKeyPair()
	require.NoError(t, err)
	return kp
}

// newTestResolver builds a resolver over a mocked repository, pre-warmed with
// the given persisted mappings. Save calls are tolerated by default since
// most tests only care about the resulting cache state.
func newTestResolver(t *testing.T, ctrl *gomock.Controller, kp *crypto.KeyPair, persisted []models.BlindedKeyMapping) *BlindedResolver {
	t.Helper()
	repo := mock.NewMockBlindedKeyRepository(ctrl)
	repo.EXPECT().GetAll(gomock.Any()).Return(persisted, nil)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	resolver, err := NewBlindedResolver(context.Background(), repo, kp, logger.Nop())
	require.NoError(t, err)
	return resolver
}

func testRoom() models.Room {
	return models.Room{
		ServerURL:       testServer,
		RoomToken:       testRoomToken,
		ServerPublicKey: testServerKey,
		ConversationID:  models.CommunityConversationID(testServer, testRoomToken),
	}
}

// signedRoomMessage builds a room message whose signature genuinely verifies
// under the key pair's real identity.
func signedRoomMessage(t *testing.T, kp *crypto.KeyPair, id, seqno int64, payload string, postedSec float64) models.Message {
	t.Helper()
	data := base64.StdEncoding.EncodeToString([]byte(payload))
	sig := ed25519.Sign(kp.PrivateKey, []byte(payload))
	return models.Message{
		ID:        id,
		SessionID: kp.SessionID(),
		Data:      &data,
		Signature: base64.StdEncoding.EncodeToString(sig),
		Seqno:     seqno,
		Posted:    postedSec,
	}
}

// blindSignedRoomMessage is signedRoomMessage under the per-server blinded
// identity instead of the real one.
func blindSignedRoomMessage(t *testing.T, kp *crypto.KeyPair, serverPubKey string, id, seqno int64, payload string, postedSec float64) models.Message {
	t.Helper()
	blinded, err := crypto.DeriveBlindedKeyPair(serverPubKey, kp)
	require.NoError(t, err)
	sig, err := crypto.SignBlinded(kp, serverPubKey, []byte(payload))
	require.NoError(t, err)

	data := base64.StdEncoding.EncodeToString([]byte(payload))
	return models.Message{
		ID:        id,
		SessionID: blinded.ID(),
		Data:      &data,
		Signature: base64.StdEncoding.EncodeToString(sig),
		Seqno:     seqno,
		Posted:    postedSec,
	}
}

func deletionMessage(id, seqno int64) models.Message {
	return models.Message{ID: id, Seqno: seqno}
}

func blindedIDFor(t *testing.T, kp *crypto.KeyPair, serverPubKey string) string {
	t.Helper()
	blinded, err := crypto.DeriveBlindedKeyPair(serverPubKey, kp)
	require.NoError(t, err)
	return blinded.ID()
}
