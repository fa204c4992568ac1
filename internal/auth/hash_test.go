package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordFormat(t *testing.T) {
	stored := HashPassword("alice", "secret1")

	salt, digest, ok := strings.Cut(stored, ",")
	require.True(t, ok, "stored hash must be salt,hexdigest")
	assert.Len(t, salt, 5)
	assert.Len(t, digest, 64, "sha256 hex digest")
	for _, r := range salt {
		assert.True(t, (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'),
			"salt must be alphabetic, got %q", salt)
	}
}

func TestHashPasswordDeterministicGivenSalt(t *testing.T) {
	a := HashPasswordWithSalt("alice", "secret1", "AbCdE")
	b := HashPasswordWithSalt("alice", "secret1", "AbCdE")
	assert.Equal(t, a, b)

	c := HashPasswordWithSalt("alice", "secret1", "eDcBa")
	assert.NotEqual(t, a, c)
}

func TestCheckPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"alice", "secret1"},
		{"bob", "p"},
		{"under_score-name", "longer password with spaces"},
	}

	for _, tt := range tests {
		stored := HashPassword(tt.name, tt.password)

		assert.True(t, CheckPassword(tt.name, tt.password, stored))
		assert.False(t, CheckPassword(tt.name, tt.password+"x", stored))
		assert.False(t, CheckPassword(tt.name, "", stored))
		// The username is part of the digest
		assert.False(t, CheckPassword(tt.name+"x", tt.password, stored))
	}
}

func TestCheckPasswordMalformedStored(t *testing.T) {
	assert.False(t, CheckPassword("alice", "secret1", ""))
	assert.False(t, CheckPassword("alice", "secret1", "no-comma-here"))
}
