package crypt

import "errors"

var (
	// ErrKeyTooShort is returned by New for passphrases under 16 bytes.
	// The message is part of the store contract and must not change.
	ErrKeyTooShort = errors.New("encryption key length must >= 16")
	// ErrInvalidToken is returned when a token is not valid base64 or is too
	// short to contain a nonce.
	ErrInvalidToken = errors.New("crypt: malformed token")
	// ErrDecryptFailed is returned when authentication of the ciphertext
	// fails, including any tampering with the token.
	ErrDecryptFailed = errors.New("crypt: decryption failed")
)
