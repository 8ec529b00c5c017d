package crypt

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// minKeyLength is the shortest passphrase New accepts.
const minKeyLength = 16

// hkdfInfo domain-separates the derived keys from any other use of the same
// passphrase.
var hkdfInfo = []byte("authgate.crypt.v1")

// Codec encrypts and decrypts short UTF-8 payloads with AES-256-GCM.
// A Codec is safe for concurrent use.
type Codec struct {
	aead   cipher.AEAD
	macKey []byte
}

// New derives the cipher and nonce keys from the passphrase and returns a
// ready codec. Passphrases shorter than 16 bytes are rejected with
// ErrKeyTooShort.
func New(key string) (*Codec, error) {
	if len(key) < minKeyLength {
		return nil, ErrKeyTooShort
	}

	kdf := hkdf.New(sha256.New, []byte(key), nil, hkdfInfo)

	encKey := make([]byte, 32)
	if _, err := io.ReadFull(kdf, encKey); err != nil {
		return nil, fmt.Errorf("crypt: derive keys: %w", err)
	}
	macKey := make([]byte, 32)
	if _, err := io.ReadFull(kdf, macKey); err != nil {
		return nil, fmt.Errorf("crypt: derive keys: %w", err)
	}

	block, err := aes.NewCipher(encKey)
	if err != nil {
		return nil, fmt.Errorf("crypt: init cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("crypt: init cipher: %w", err)
	}

	return &Codec{aead: aead, macKey: macKey}, nil
}

// Encrypt seals text and renders the result as standard base64. The nonce is
// an HMAC of the plaintext, so equal inputs produce equal tokens across calls
// and across process restarts.
func (c *Codec) Encrypt(text string) string {
	plaintext := []byte(text)
	nonce := c.nonce(plaintext)
	sealed := c.aead.Seal(nonce, nonce, plaintext, nil)
	return base64.StdEncoding.EncodeToString(sealed)
}

// Decrypt reverses Encrypt. Malformed base64 or truncated tokens yield
// ErrInvalidToken; a failed authentication tag yields ErrDecryptFailed.
func (c *Codec) Decrypt(token string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return "", ErrInvalidToken
	}
	if len(raw) < c.aead.NonceSize() {
		return "", ErrInvalidToken
	}

	nonce, sealed := raw[:c.aead.NonceSize()], raw[c.aead.NonceSize():]
	plaintext, err := c.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", ErrDecryptFailed
	}
	return string(plaintext), nil
}

// nonce derives the GCM nonce from the plaintext under the MAC key.
func (c *Codec) nonce(plaintext []byte) []byte {
	mac := hmac.New(sha256.New, c.macKey)
	mac.Write(plaintext)
	return mac.Sum(nil)[:c.aead.NonceSize()]
}
