// Package crypt implements the symmetric codec used to protect session data
// at rest. Plaintext goes in, a standard-base64 token comes out, and only the
// same codec (same passphrase) can turn the token back into plaintext.
//
// The scheme is AES-256-GCM with keys derived from the passphrase via
// HKDF-SHA256. The nonce is synthesized from the plaintext with a separate
// derived MAC key, which makes encryption deterministic: equal plaintexts
// always yield equal tokens. The remote session store relies on this to
// encrypt a lookup key at read time and find the entry it wrote earlier.
//
//	codec, err := crypt.New(cfg.EncryptionKey)
//	if err != nil { ... }
//
//	token := codec.Encrypt("payload")
//	text, err := codec.Decrypt(token)
package crypt
