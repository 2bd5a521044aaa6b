package vault_test

import (
	"testing"

	apperrors "projects-manager-backend/internal/errors"
	"projects-manager-backend/internal/vault"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_EmptySecret(t *testing.T) {
	v, err := vault.New("")
	assert.Error(t, err)
	assert.Nil(t, v)
}

func TestEncryptDecrypt_Roundtrip(t *testing.T) {
	v, err := vault.New("unit-test-secret")
	require.NoError(t, err)

	sealed, err := v.Encrypt("ghp_sometoken123")
	require.NoError(t, err)
	assert.NotContains(t, string(sealed), "ghp_sometoken123")

	plain, err := v.Decrypt(sealed)
	require.NoError(t, err)
	assert.Equal(t, "ghp_sometoken123", plain)
}

func TestEncrypt_EmptyToken(t *testing.T) {
	v, err := vault.New("unit-test-secret")
	require.NoError(t, err)

	_, err = v.Encrypt("")
	assert.ErrorIs(t, err, apperrors.ErrEmptyToken)
}

func TestEncrypt_NonDeterministicNonce(t *testing.T) {
	v, err := vault.New("unit-test-secret")
	require.NoError(t, err)

	a, err := v.Encrypt("same-token")
	require.NoError(t, err)
	b, err := v.Encrypt("same-token")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestDecrypt_TamperedCiphertext(t *testing.T) {
	v, err := vault.New("unit-test-secret")
	require.NoError(t, err)

	sealed, err := v.Encrypt("ghp_sometoken123")
	require.NoError(t, err)

	sealed[len(sealed)-1] ^= 0xFF

	plain, err := v.Decrypt(sealed)
	assert.ErrorIs(t, err, apperrors.ErrDecryptFailure)
	assert.Empty(t, plain)
}

func TestDecrypt_WrongKey(t *testing.T) {
	v1, err := vault.New("secret-one")
	require.NoError(t, err)
	v2, err := vault.New("secret-two")
	require.NoError(t, err)

	sealed, err := v1.Encrypt("ghp_sometoken123")
	require.NoError(t, err)

	plain, err := v2.Decrypt(sealed)
	assert.ErrorIs(t, err, apperrors.ErrDecryptFailure)
	assert.Empty(t, plain)
}

func TestDecrypt_TooShort(t *testing.T) {
	v, err := vault.New("unit-test-secret")
	require.NoError(t, err)

	_, err = v.Decrypt([]byte{0x01, 0x02, 0x03})
	assert.ErrorIs(t, err, apperrors.ErrDecryptFailure)
}
