package crypto

// Transport padding: the plaintext is extended with a 0x80 marker byte
// followed by zeros up to the next bucket boundary, hiding the true message
// length from the relay.

const paddingBucket = 160

// AddMessagePadding pads data to the next multiple of the padding bucket.
// The result is always strictly longer than the input.
func AddMessagePadding(data []byte) []byte {
	padded := len(data) + 1
	if rem := padded % paddingBucket; rem != 0 {
		padded += paddingBucket - rem
	}
	out := make([]byte, padded)
	copy(out, data)
	out[len(data)] = 0x80
	return out
}

// RemoveMessagePadding strips the trailing padding, if any. Data without a
// padding marker is returned unchanged: old peers sent unpadded payloads.
func RemoveMessagePadding(data []byte) []byte {
	for i := len(data) - 1; i >= 0; i-- {
		switch data[i] {
		case 0x00:
			continue
		case 0x80:
			return data[:i]
		default:
			return data
		}
	}
	return data
}
