package crypto

import "crypto/ed25519"

// VerifySignature checks an Ed25519 signature over data under the key
// embedded in senderID.
//
// Both identity kinds verify with the standard equation: a standard id embeds
// the signer's real public key, while a blinded id embeds the blinded point
// the signer used as verification key (see SignBlinded). Malformed ids or
// signatures report false.
func VerifySignature(senderID string, data, signature []byte) bool {
	_, key, err := ParseID(senderID)
	if err != nil {
		return false
	}
	if len(signature) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(key), data, signature)
}
