// Package crypto implements the identity and blinding primitives the sync
// engine needs: per-server blinded key derivation, blinding proofs, blinded
// signatures, and the XChaCha20-Poly1305 scheme protecting the server-relayed
// inbox/outbox channel.
//
// Identities are hex strings with a two-character prefix: "05" followed by a
// 32-byte Ed25519 public key for a real identity, "15" followed by a 32-byte
// curve point for a per-server blinded identity.
package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"

	"filippo.io/edwards25519"
)

const (
	// PrefixStandard marks a real (unblinded) identity.
	PrefixStandard = "05"
	// PrefixBlinded marks a per-server blinded identity.
	PrefixBlinded = "15"

	// IDLength is the length of a prefixed hex identity string.
	IDLength = 2 + 2*32
)

var (
	ErrInvalidID          = errors.New("invalid identity string")
	ErrInvalidPubKeySize  = errors.New("invalid public key size: expected 32 bytes")
	ErrInvalidPrivKeySize = errors.New("invalid private key size: expected 64 bytes")
	ErrInvalidServerKey   = errors.New("invalid server public key")
)

// KeyPair holds the user's long-term Ed25519 identity keys.
type KeyPair struct {
	PublicKey  ed25519.PublicKey  // 32 bytes
	PrivateKey ed25519.PrivateKey // 64 bytes
}

// GenerateKeyPair generates a fresh Ed25519 identity key pair.
func GenerateKeyPair() (*KeyPair, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to generate key pair: %w", err)
	}
	return &KeyPair{PublicKey: pub, PrivateKey: priv}, nil
}

// KeyPairFromPrivateKey reconstructs a KeyPair from a 64-byte Ed25519 private
// key (standard Go format, public key in the last 32 bytes).
func KeyPairFromPrivateKey(privKey []byte) (*KeyPair, error) {
	if len(privKey) != ed25519.PrivateKeySize {
		return nil, ErrInvalidPrivKeySize
	}
	priv := ed25519.PrivateKey(make([]byte, ed25519.PrivateKeySize))
	copy(priv, privKey)
	pub := priv.Public().(ed25519.PublicKey)
	return &KeyPair{PublicKey: pub, PrivateKey: priv}, nil
}

// SessionID returns the real identity string for this key pair.
func (kp *KeyPair) SessionID() string {
	return PrefixStandard + hex.EncodeToString(kp.PublicKey)
}

// privateScalar expands the Ed25519 seed into the RFC 8032 secret scalar.
func (kp *KeyPair) privateScalar() (*edwards25519.Scalar, error) {
	h := sha512.Sum512(kp.PrivateKey.Seed())
	return new(edwards25519.Scalar).SetBytesWithClamping(h[:32])
}

// noncePrefix returns the upper half of the expanded seed, used as the
// deterministic nonce input for blinded signatures.
func (kp *KeyPair) noncePrefix() []byte {
	h := sha512.Sum512(kp.PrivateKey.Seed())
	return h[32:]
}

// ParseID splits a prefixed identity string into its prefix and raw 32 key
// bytes.
func ParseID(id string) (prefix string, key []byte, err error) {
	if len(id) != IDLength {
		return "", nil, fmt.Errorf("%w: bad length %d", ErrInvalidID, len(id))
	}
	prefix = id[:2]
	if prefix != PrefixStandard && prefix != PrefixBlinded {
		return "", nil, fmt.Errorf("%w: unknown prefix %q", ErrInvalidID, prefix)
	}
	key, err = hex.DecodeString(id[2:])
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrInvalidID, err)
	}
	return prefix, key, nil
}

// IsBlinded reports whether id carries the blinded prefix. Malformed ids
// report false.
func IsBlinded(id string) bool {
	return len(id) == IDLength && id[:2] == PrefixBlinded
}

func decodeServerKey(serverPubKey string) ([]byte, error) {
	raw, err := hex.DecodeString(serverPubKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidServerKey, err)
	}
	if len(raw) != 32 {
		return nil, fmt.Errorf("%w: bad length %d", ErrInvalidServerKey, len(raw))
	}
	return raw, nil
}
