package hash

import (
	"crypto/rand"
	"encoding/binary"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"
)

func TestHashType(t *testing.T) {
	h := Hash{0xde, 0xad, 0xbe, 0xef}
	assert.Equal(t, "deadbeef", h.Hex())
	assert.Equal(t, "deadbeef", h.String())
	assert.True(t, h.Equal(Hash{0xde, 0xad, 0xbe, 0xef}))
	assert.False(t, h.Equal(Hash{0xde, 0xad}))
}

func TestRegistry(t *testing.T) {
	t.Run("by algorithm", func(t *testing.T) {
		for _, algo := range []HashingAlgorithm{
			SHA2_224, SHA2_256, SHA2_384, SHA2_512, SHA2_512_224, SHA2_512_256,
			SHA3_256, SHA3_384, XXH64,
		} {
			h, err := NewHasher(algo)
			require.NoError(t, err)
			assert.Equal(t, algo, h.Algorithm())
			assert.Equal(t, OutputSize(algo), h.Size())
		}
	})

	t.Run("by name", func(t *testing.T) {
		for _, name := range SupportedNames() {
			h, err := NewHasherByName(name)
			require.NoError(t, err)
			assert.Equal(t, h.Size(), len(h.ComputeHash([]byte("x"))))
		}
		// lookup is case-insensitive
		h, err := NewHasherByName("SHA2_256")
		require.NoError(t, err)
		assert.Equal(t, SHA2_256, h.Algorithm())
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := NewHasher(UnknownHashingAlgorithm)
		require.Error(t, err)
		assert.True(t, IsInvalidInputsError(err))

		_, err = NewHasherByName("md5")
		require.Error(t, err)
		assert.True(t, IsInvalidInputsError(err))

		assert.Equal(t, 0, OutputSize(UnknownHashingAlgorithm))
	})
}

// TestSha3Wrapper cross-checks the wrapped hashers against x/crypto.
func TestSha3Wrapper(t *testing.T) {
	data := make([]byte, 500)
	_, err := rand.Read(data)
	require.NoError(t, err)

	expected := sha3.Sum256(data)
	assert.Equal(t, expected[:], []byte(NewSHA3_256().ComputeHash(data)))

	expected384 := sha3.Sum384(data)
	assert.Equal(t, expected384[:], []byte(NewSHA3_384().ComputeHash(data)))

	h := NewSHA3_256()
	assert.Equal(t, HashLenSha3_256, h.Size())
	assert.Equal(t, 136, h.BlockSize())
}

// TestXXH64Wrapper cross-checks the wrapped hasher against the xxhash
// one-shot function.
func TestXXH64Wrapper(t *testing.T) {
	data := make([]byte, 500)
	_, err := rand.Read(data)
	require.NoError(t, err)

	h := NewXXH64()
	sum := h.ComputeHash(data)
	require.Equal(t, HashLenXXH64, len(sum))
	// the canonical xxhash byte form is big-endian
	assert.Equal(t, xxhash.Sum64(data), binary.BigEndian.Uint64(sum))
}
