package crypto

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"filippo.io/edwards25519"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/chacha20poly1305"
)

const blindedEnvelopeVersion = 0x00

var (
	ErrCiphertextTooShort = errors.New("blinded ciphertext too short")
	ErrBadEnvelopeVersion = errors.New("unsupported blinded envelope version")
	ErrDecryptFailed      = errors.New("blinded envelope decryption failed")
	ErrMissingSenderKey   = errors.New("decrypted payload misses trailing sender key")
)

// DecryptedEnvelope is the result of opening one inbox/outbox item: the inner
// plaintext (still transport-padded) and the unblinded identity of whoever
// authored it. For an outbox item the author is the local user.
type DecryptedEnvelope struct {
	Plaintext    []byte
	SenderRealID string
}

// DecryptBlinded opens one item of the encrypted inbox/outbox channel.
//
// isOutgoing selects the direction: true for outbox items (authored by us,
// counterpart is the recipient), false for inbox items (counterpart is the
// sender). otherBlindedID is that counterpart's blinded identity on this
// server.
//
// Wire layout: version byte, XChaCha20-Poly1305 ciphertext, 24-byte nonce at
// the tail. The symmetric key is BLAKE2b-256 over the ECDH shared point
// followed by the sender's and recipient's blinded public keys, in that
// order. The decrypted payload carries the author's 32-byte Ed25519 public
// key as a suffix, from which the unblinded identity is rebuilt.
func DecryptBlinded(ciphertext []byte, isOutgoing bool, otherBlindedID, serverPubKey string, kp *KeyPair) (*DecryptedEnvelope, error) {
	ours, err := DeriveBlindedKeyPair(serverPubKey, kp)
	if err != nil {
		return nil, err
	}
	otherPoint, err := blindedPoint(otherBlindedID)
	if err != nil {
		return nil, err
	}

	senderKA, recipientKA := ours.Point.Bytes(), otherPoint.Bytes()
	if !isOutgoing {
		senderKA, recipientKA = recipientKA, senderKA
	}
	key := sharedKey(ours.Scalar, otherPoint, senderKA, recipientKA)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("init aead: %w", err)
	}
	minLen := 1 + aead.Overhead() + aead.NonceSize()
	if len(ciphertext) < minLen {
		return nil, ErrCiphertextTooShort
	}
	if ciphertext[0] != blindedEnvelopeVersion {
		return nil, fmt.Errorf("%w: 0x%02x", ErrBadEnvelopeVersion, ciphertext[0])
	}

	nonce := ciphertext[len(ciphertext)-aead.NonceSize():]
	body := ciphertext[1 : len(ciphertext)-aead.NonceSize()]
	plaintext, err := aead.Open(nil, nonce, body, nil)
	if err != nil {
		return nil, ErrDecryptFailed
	}
	if len(plaintext) < 32 {
		return nil, ErrMissingSenderKey
	}

	senderKey := plaintext[len(plaintext)-32:]
	return &DecryptedEnvelope{
		Plaintext:    plaintext[:len(plaintext)-32],
		SenderRealID: PrefixStandard + hex.EncodeToString(senderKey),
	}, nil
}

// EncryptBlinded is the inverse of DecryptBlinded for the sending side: it
// seals plaintext for recipientBlindedID on serverPubKey, appending our real
// Ed25519 public key so the recipient can learn and prove our identity.
func EncryptBlinded(plaintext []byte, recipientBlindedID, serverPubKey string, kp *KeyPair) ([]byte, error) {
	ours, err := DeriveBlindedKeyPair(serverPubKey, kp)
	if err != nil {
		return nil, err
	}
	recipientPoint, err := blindedPoint(recipientBlindedID)
	if err != nil {
		return nil, err
	}

	key := sharedKey(ours.Scalar, recipientPoint, ours.Point.Bytes(), recipientPoint.Bytes())
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("init aead: %w", err)
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	inner := make([]byte, 0, len(plaintext)+32)
	inner = append(inner, plaintext...)
	inner = append(inner, kp.PublicKey...)

	out := make([]byte, 0, 1+len(inner)+aead.Overhead()+len(nonce))
	out = append(out, blindedEnvelopeVersion)
	out = aead.Seal(out, nonce, inner, nil)
	out = append(out, nonce...)
	return out, nil
}

func blindedPoint(blindedID string) (*edwards25519.Point, error) {
	prefix, raw, err := ParseID(blindedID)
	if err != nil {
		return nil, err
	}
	if prefix != PrefixBlinded {
		return nil, fmt.Errorf("%w: %q is not a blinded id", ErrInvalidID, blindedID)
	}
	point, err := new(edwards25519.Point).SetBytes(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: not a curve point: %v", ErrInvalidID, err)
	}
	return point, nil
}

// sharedKey derives the symmetric channel key. The ECDH product ka*otherKA is
// symmetric between the two parties; appending sender and recipient public
// keys in a fixed order binds the key to the direction.
func sharedKey(ourScalar *edwards25519.Scalar, otherPoint *edwards25519.Point, senderKA, recipientKA []byte) []byte {
	shared := new(edwards25519.Point).ScalarMult(ourScalar, otherPoint)

	h, _ := blake2b.New256(nil)
	h.Write(shared.Bytes())
	h.Write(senderKA)
	h.Write(recipientKA)
	return h.Sum(nil)
}
