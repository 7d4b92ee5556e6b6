package room

import (
	"crypto/rand"
	"encoding/binary"
	"strconv"
)

// newCode generates a five-digit numeric room code from a
// cryptographically secure source.
func newCode() (string, error) {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	n := binary.BigEndian.Uint32(b)%90000 + 10000
	return strconv.Itoa(int(n)), nil
}
