package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("sonrisa-2025")
	require.NoError(t, err)

	ok, err := VerifyPassword("sonrisa-2025", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("otra", hash)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = VerifyPassword("x", "not-a-hash")
	assert.ErrorIs(t, err, ErrInvalidHash)
}

func TestHashPasswordRejectsEmpty(t *testing.T) {
	_, err := HashPassword("")
	assert.ErrorIs(t, err, ErrEmptyPassword)
}

func TestVerifyPasswordMalformedHashes(t *testing.T) {
	tests := []struct {
		name string
		hash string
		want error
	}{
		{"wrong algorithm", "$argon2i$v=19$m=65536,t=1,p=4$c2FsdA$a2V5", ErrInvalidHash},
		{"old version", "$argon2id$v=16$m=65536,t=1,p=4$c2FsdA$a2V5", ErrIncompatibleVersion},
		{"unknown parameter", "$argon2id$v=19$m=65536,x=1,p=4$c2FsdA$a2V5", ErrInvalidHash},
		{"zero threads", "$argon2id$v=19$m=65536,t=1,p=0$c2FsdA$a2V5", ErrInvalidHash},
		{"empty key", "$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$", ErrInvalidHash},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := VerifyPassword("x", tt.hash)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestHashPasswordWithCustomParams(t *testing.T) {
	light := Argon2Params{Memory: 8 * 1024, Iterations: 1, Threads: 1, SaltLen: 8, KeyLen: 16}
	hash, err := HashPasswordWith("sonrisa-2025", light)
	require.NoError(t, err)
	assert.Contains(t, hash, "$m=8192,t=1,p=1$")

	ok, err := VerifyPassword("sonrisa-2025", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	assert.True(t, NeedsRehash(hash, DefaultArgon2Params))
	assert.False(t, NeedsRehash(hash, light))
	assert.True(t, NeedsRehash("garbage", light))
}

func TestTokenManagerRoundTrip(t *testing.T) {
	m, err := NewTokenManager("secret", time.Hour)
	require.NoError(t, err)

	token, err := m.NewAccessToken("recepcion", "reception")
	require.NoError(t, err)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "recepcion", claims.Subject)
	assert.Equal(t, "reception", claims.Role)
}

func TestTokenManagerRejectsExpiredAndForeignTokens(t *testing.T) {
	m, err := NewTokenManager("secret", time.Minute)
	require.NoError(t, err)

	token, err := m.NewAccessToken("recepcion", "reception")
	require.NoError(t, err)

	m.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	_, err = m.Parse(token)
	assert.True(t, errors.Is(err, ErrInvalidToken))

	other, err := NewTokenManager("other", time.Minute)
	require.NoError(t, err)
	foreign, err := other.NewAccessToken("x", "admin")
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Parse(foreign)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = NewTokenManager("", time.Minute)
	assert.Error(t, err)
}
