package session

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
)

// idLength is the entropy, in bytes, behind one session id.
const idLength = 128

// NewID mints a session identifier: 128 cryptographically random bytes
// encoded as URL-safe base64.
func NewID() (string, error) {
	b := make([]byte, idLength)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrIDGeneration, err)
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
