package cryptox

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	SetPepperPath(filepath.Join(t.TempDir(), "pepper"))

	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"))

	require.NoError(t, VerifyPassword("correct horse battery staple", hash))
	require.ErrorIs(t, VerifyPassword("wrong password", hash), ErrPasswordMismatch)
}

func TestHashPasswordProducesUniqueSalts(t *testing.T) {
	SetPepperPath(filepath.Join(t.TempDir(), "pepper"))

	h1, err := HashPassword("same input")
	require.NoError(t, err)
	h2, err := HashPassword("same input")
	require.NoError(t, err)

	require.NotEqual(t, h1, h2, "salted hashes of the same input must differ")
}

func TestVerifyPasswordRejectsMalformedHashes(t *testing.T) {
	SetPepperPath(filepath.Join(t.TempDir(), "pepper"))

	for _, encoded := range []string{
		"",
		"$argon2id$v=19$m=19456,t=2,p=1$onlyfourparts",
		"$bcrypt$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=18$m=19456,t=2,p=1$c2FsdA$aGFzaA",
	} {
		require.Error(t, VerifyPassword("anything", encoded))
	}
}

func TestGenerateNumericCode(t *testing.T) {
	code, err := GenerateNumericCode(6)
	require.NoError(t, err)
	require.Len(t, code, 6)
	for _, r := range code {
		require.True(t, r >= '0' && r <= '9')
	}

	_, err = GenerateNumericCode(0)
	require.Error(t, err)
}
