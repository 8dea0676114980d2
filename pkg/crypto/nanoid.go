package crypto

import "crypto/rand"

const (
	idAlphabet string = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_-"
	idSize     int    = 22 // 22 * 6 = 132 bits (uuid is 128 bits) of entropy
)

// NewID generates a nanoid-style random identifier from a 64-character
// alphabet. Used for store-assigned record and session IDs.
func NewID() (string, error) {
	// 64 characters fit a 6-bit mask exactly, so no rejection loop is needed.
	const mask = 63

	buffer := make([]byte, idSize)
	if _, err := rand.Read(buffer); err != nil {
		return "", err
	}

	id := make([]byte, idSize)
	for i, b := range buffer {
		id[i] = idAlphabet[b&mask]
	}

	return string(id), nil
}
