package crypto

import (
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"filippo.io/edwards25519"
	"golang.org/x/crypto/blake2b"
)

// BlindedKeyPair is the per-server derivation of a user's identity: the
// blinded secret scalar ka = k*a and the blinded public point kA = k*A, where
// k is the server's blinding factor.
type BlindedKeyPair struct {
	Scalar *edwards25519.Scalar
	Point  *edwards25519.Point
}

// ID returns the blinded identity string for this key pair.
func (b *BlindedKeyPair) ID() string {
	return PrefixBlinded + hex.EncodeToString(b.Point.Bytes())
}

// blindingFactor computes the per-server scalar k = reduce(BLAKE2b-512(S))
// where S is the server's 32-byte public key.
func blindingFactor(serverPubKey string) (*edwards25519.Scalar, error) {
	raw, err := decodeServerKey(serverPubKey)
	if err != nil {
		return nil, err
	}
	digest := blake2b.Sum512(raw)
	k, err := new(edwards25519.Scalar).SetUniformBytes(digest[:])
	if err != nil {
		return nil, fmt.Errorf("reduce blinding factor: %w", err)
	}
	return k, nil
}

// DeriveBlindedKeyPair derives the user's blinded key pair for one server.
// The derivation is deterministic; callers are expected to memoize the result
// per server rather than re-derive on every call.
func DeriveBlindedKeyPair(serverPubKey string, kp *KeyPair) (*BlindedKeyPair, error) {
	k, err := blindingFactor(serverPubKey)
	if err != nil {
		return nil, err
	}
	a, err := kp.privateScalar()
	if err != nil {
		return nil, fmt.Errorf("expand private scalar: %w", err)
	}
	ka := new(edwards25519.Scalar).Multiply(k, a)
	kA := new(edwards25519.Point).ScalarBaseMult(ka)
	return &BlindedKeyPair{Scalar: ka, Point: kA}, nil
}

// VerifyBlindingProof checks that blindedID is the blinding of realID under
// the given server key. Both signs of the blinded point are accepted: the
// original key conversion loses the sign bit, so a legitimate peer may present
// either candidate.
//
// A false return with a nil error means the inputs were well-formed but the
// identities are not linked.
func VerifyBlindingProof(blindedID, realID, serverPubKey string) (bool, error) {
	blindedPrefix, blindedBytes, err := ParseID(blindedID)
	if err != nil {
		return false, err
	}
	if blindedPrefix != PrefixBlinded {
		return false, fmt.Errorf("%w: %q is not a blinded id", ErrInvalidID, blindedID)
	}
	realPrefix, realBytes, err := ParseID(realID)
	if err != nil {
		return false, err
	}
	if realPrefix != PrefixStandard {
		return false, fmt.Errorf("%w: %q is not a real id", ErrInvalidID, realID)
	}

	k, err := blindingFactor(serverPubKey)
	if err != nil {
		return false, err
	}
	realPoint, err := new(edwards25519.Point).SetBytes(realBytes)
	if err != nil {
		return false, fmt.Errorf("%w: real id is not a curve point: %v", ErrInvalidID, err)
	}

	candidate := new(edwards25519.Point).ScalarMult(k, realPoint)
	if subtle.ConstantTimeCompare(candidate.Bytes(), blindedBytes) == 1 {
		return true, nil
	}
	negated := new(edwards25519.Point).Negate(candidate)
	return subtle.ConstantTimeCompare(negated.Bytes(), blindedBytes) == 1, nil
}

// SignBlinded signs message with the user's blinded key for serverPubKey.
// The signature verifies under the standard Ed25519 equation with the blinded
// public point as the verification key, so recipients need no special scheme.
func SignBlinded(kp *KeyPair, serverPubKey string, message []byte) ([]byte, error) {
	blinded, err := DeriveBlindedKeyPair(serverPubKey, kp)
	if err != nil {
		return nil, err
	}
	kA := blinded.Point.Bytes()

	// Deterministic nonce bound to the blinded key and the message.
	rh := sha512.New()
	rh.Write(kp.noncePrefix())
	rh.Write(kA)
	rh.Write(message)
	r, err := new(edwards25519.Scalar).SetUniformBytes(rh.Sum(nil))
	if err != nil {
		return nil, fmt.Errorf("derive signature nonce: %w", err)
	}
	sigR := new(edwards25519.Point).ScalarBaseMult(r)

	hh := sha512.New()
	hh.Write(sigR.Bytes())
	hh.Write(kA)
	hh.Write(message)
	hram, err := new(edwards25519.Scalar).SetUniformBytes(hh.Sum(nil))
	if err != nil {
		return nil, fmt.Errorf("derive signature challenge: %w", err)
	}

	sigS := new(edwards25519.Scalar).MultiplyAdd(hram, blinded.Scalar, r)

	sig := make([]byte, 0, 64)
	sig = append(sig, sigR.Bytes()...)
	sig = append(sig, sigS.Bytes()...)
	return sig, nil
}
