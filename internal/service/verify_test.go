package service

import (
	"context"
	"crypto/ed25519"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sogsync/internal/crypto"
	"sogsync/internal/logger"
	"sogsync/models"
)

func signedItem(t *testing.T, kp *crypto.KeyPair, payload string) models.SignedItem {
	t.Helper()
	return models.SignedItem{
		Sender:    kp.SessionID(),
		Signature: base64.StdEncoding.EncodeToString(ed25519.Sign(kp.PrivateKey, []byte(payload))),
		Data:      base64.StdEncoding.EncodeToString([]byte(payload)),
	}
}

func TestVerifyAll_AcceptsValidAndPreservesOrder(t *testing.T) {
	kp := newTestKeyPair(t)
	v := NewSignatureVerifier(logger.Nop())

	first := signedItem(t, kp, "first")
	second := signedItem(t, kp, "second")
	third := signedItem(t, kp, "third")

	valid, err := v.VerifyAll(context.Background(), []models.SignedItem{first, second, third})
	require.NoError(t, err)
	assert.Equal(t, []models.SignedItem{first, second, third}, valid)
}

func TestVerifyAll_DropsTamperedAndMalformed(t *testing.T) {
	kp := newTestKeyPair(t)
	v := NewSignatureVerifier(logger.Nop())

	good := signedItem(t, kp, "good")

	tampered := signedItem(t, kp, "original")
	tampered.Data = base64.StdEncoding.EncodeToString([]byte("modified"))

	badSig := signedItem(t, kp, "x")
	badSig.Signature = "%%% not base64 %%%"

	badData := signedItem(t, kp, "y")
	badData.Data = "%%% not base64 %%%"

	valid, err := v.VerifyAll(context.Background(), []models.SignedItem{tampered, good, badSig, badData})
	require.NoError(t, err)
	assert.Equal(t, []models.SignedItem{good}, valid)
}

func TestVerifyAll_AcceptsBlindedSignatures(t *testing.T) {
	kp := newTestKeyPair(t)
	v := NewSignatureVerifier(logger.Nop())

	payload := []byte("blinded hello")
	sig, err := crypto.SignBlinded(kp, testServerKey, payload)
	require.NoError(t, err)

	item := models.SignedItem{
		Sender:    blindedIDFor(t, kp, testServerKey),
		Signature: base64.StdEncoding.EncodeToString(sig),
		Data:      base64.StdEncoding.EncodeToString(payload),
	}

	valid, err := v.VerifyAll(context.Background(), []models.SignedItem{item})
	require.NoError(t, err)
	assert.Equal(t, []models.SignedItem{item}, valid)
}

func TestVerifyAll_EmptyInput(t *testing.T) {
	v := NewSignatureVerifier(logger.Nop())

	valid, err := v.VerifyAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, valid)
}
