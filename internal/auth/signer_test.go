package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignVerifyRoundtrip(t *testing.T) {
	s := NewSigner("test-secret")

	for _, value := range []string{"1", "42", "9999999", "alice"} {
		token := s.Sign(value)

		require.True(t, strings.HasPrefix(token, value+"|"))

		got, ok := s.Verify(token)
		require.True(t, ok)
		assert.Equal(t, value, got)
	}
}

func TestVerifyRejectsMutations(t *testing.T) {
	s := NewSigner("test-secret")
	token := s.Sign("42")

	// Flipping any single character invalidates the token
	for i := 0; i < len(token); i++ {
		mutated := []byte(token)
		if mutated[i] == 'x' {
			mutated[i] = 'y'
		} else {
			mutated[i] = 'x'
		}

		_, ok := s.Verify(string(mutated))
		assert.False(t, ok, "mutation at index %d must not verify", i)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	s := NewSigner("test-secret")

	for _, token := range []string{"", "42", "|", "42|", "|deadbeef"} {
		_, ok := s.Verify(token)
		assert.False(t, ok, "token %q must not verify", token)
	}
}

func TestVerifyRejectsOtherSecret(t *testing.T) {
	token := NewSigner("secret-a").Sign("42")

	_, ok := NewSigner("secret-b").Verify(token)
	assert.False(t, ok)

	got, ok := NewSigner("secret-a").Verify(token)
	require.True(t, ok)
	assert.Equal(t, "42", got)
}
