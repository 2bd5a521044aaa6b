// Package vault encrypts per-user tracker tokens at rest. The symmetric key
// is derived once from the configured secret at startup and injected; there is
// no ambient global state. Plaintext tokens must never be logged or echoed in
// error payloads.
package vault

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"io"

	apperrors "projects-manager-backend/internal/errors"
)

// Vault performs AES-256-GCM encryption of credential material
type Vault struct {
	aead cipher.AEAD
}

// New derives the AES key from the configured secret and returns a ready
// vault. An empty secret is a configuration error the caller treats as fatal.
func New(secret string) (*Vault, error) {
	if secret == "" {
		return nil, apperrors.NewValidationError("vault_key", "encryption secret is required")
	}

	key := sha256.Sum256([]byte(secret))
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &Vault{aead: aead}, nil
}

// Encrypt seals a plaintext token. Output layout is nonce || ciphertext.
func (v *Vault) Encrypt(token string) ([]byte, error) {
	if token == "" {
		return nil, apperrors.ErrEmptyToken
	}

	nonce := make([]byte, v.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	return v.aead.Seal(nonce, nonce, []byte(token), nil), nil
}

// Decrypt opens a previously sealed token. Corrupt ciphertext or a rotated
// key yields ErrDecryptFailure, which callers degrade to the
// credential_unavailable substate rather than crashing.
func (v *Vault) Decrypt(sealed []byte) (string, error) {
	if len(sealed) < v.aead.NonceSize() {
		return "", apperrors.ErrDecryptFailure
	}

	nonce := sealed[:v.aead.NonceSize()]
	plaintext, err := v.aead.Open(nil, nonce, sealed[v.aead.NonceSize():], nil)
	if err != nil {
		return "", apperrors.ErrDecryptFailure
	}
	return string(plaintext), nil
}
