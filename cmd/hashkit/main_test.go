package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveKey(t *testing.T) {
	reset := func() { hmacKey, hmacKeyHex = "", "" }

	t.Run("literal", func(t *testing.T) {
		defer reset()
		hmacKey = "secret"
		key, err := resolveKey()
		require.NoError(t, err)
		assert.Equal(t, []byte("secret"), key)
	})

	t.Run("hex", func(t *testing.T) {
		defer reset()
		hmacKeyHex = "deadbeef"
		key, err := resolveKey()
		require.NoError(t, err)
		assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, key)
	})

	t.Run("invalid hex", func(t *testing.T) {
		defer reset()
		hmacKeyHex = "zz"
		_, err := resolveKey()
		require.Error(t, err)
	})

	t.Run("mutually exclusive", func(t *testing.T) {
		defer reset()
		hmacKey, hmacKeyHex = "a", "62"
		_, err := resolveKey()
		require.Error(t, err)
	})
}
