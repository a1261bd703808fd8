package hash

import (
	"bytes"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	gohash "hash"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"
)

// TestHmacRfc4231 checks the published RFC 4231 test vectors for the
// four main SHA-2 variants.
func TestHmacRfc4231(t *testing.T) {
	cases := []struct {
		name     string
		key      []byte
		data     []byte
		expected map[HashingAlgorithm]string
	}{
		{
			// test case 1, key shorter than one block
			name: "short key",
			key:  bytes.Repeat([]byte{0x0b}, 20),
			data: []byte("Hi There"),
			expected: map[HashingAlgorithm]string{
				SHA2_224: "896fb1128abbdf196832107cd49df33f47b4b1169912ba4f53684b22",
				SHA2_256: "b0344c61d8db38535ca8afceaf0bf12b881dc200c9833da726e9376c2e32cff7",
				SHA2_384: "afd03944d84895626b0825f4ab46907f15f9dadbe4101ec682aa034c7cebc59c" +
					"faea9ea9076ede7f4af152e8b2fa9cb6",
				SHA2_512: "87aa7cdea5ef619d4ff0b4241a1d6cb02379f4e2ce4ec2787ad0b30545e17cde" +
					"daa833b7d6b8a702038b274eaea3f4e4be9d914eeb61f1702e696c203a126854",
			},
		},
		{
			// test case 2, a key shorter than the digest size
			name: "jefe",
			key:  []byte("Jefe"),
			data: []byte("what do ya want for nothing?"),
			expected: map[HashingAlgorithm]string{
				SHA2_224: "a30e01098bc6dbbf45690f3a7e9e6d0f8bbea2a39e6148008fd05e44",
				SHA2_256: "5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843",
				SHA2_384: "af45d2e376484031617f78d2b58a6b1b9c7ef464f5a01b47e42ec3736322445e" +
					"8e2240ca5e69e2c78b3239ecfab21649",
				SHA2_512: "164b7a7bfcf819e2e395fbe73b56e0a387bd64222e831fd610270cd7ea250554" +
					"9758bf75c05a994a6d034f65f8f0e6fdcaeab1a34d4a6b4b636e070a38bce737",
			},
		},
		{
			// test case 6, key longer than one block, hashed down first
			name: "long key",
			key:  bytes.Repeat([]byte{0xaa}, 131),
			data: []byte("Test Using Larger Than Block-Size Key - Hash Key First"),
			expected: map[HashingAlgorithm]string{
				SHA2_224: "95e9a0db962095adaebe9b2d6f0dbce2d499f112f2d2b7273fa6870e",
				SHA2_256: "60e431591ee0b67f0d8a26aacbf5b77f8e0bc6213728c5140546040f0ee37f54",
				SHA2_384: "4ece084485813e9088d2c63a041bc5b44f9ef1012a2b588f3cd11f05033ac4c6" +
					"0c2ef6ab4030fe8296248df163f44952",
				SHA2_512: "80b24263c7c1a3ebb71493c1dd7be8b49b46d1f41b4aeec1121b013783f8f352" +
					"6b56d037e05f2598bd0fd2215d6a1e5295e64f73f63f0aec8b915a985d786598",
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for algo, expected := range tc.expected {
				h, err := NewHMAC(algo, tc.key)
				require.NoError(t, err)
				assert.Equal(t, expected, h.ComputeHash(tc.data).Hex(), "algorithm %s", algo)
			}
		})
	}
}

// TestHmacAgainstStdlib cross-checks the composition against
// crypto/hmac for key lengths below, at and above one block.
func TestHmacAgainstStdlib(t *testing.T) {
	variants := []struct {
		algo      HashingAlgorithm
		newStdlib func() gohash.Hash
		blockSize int
	}{
		{SHA2_224, sha256.New224, BlockSizeSha2_256},
		{SHA2_256, sha256.New, BlockSizeSha2_256},
		{SHA2_384, sha512.New384, BlockSizeSha2_512},
		{SHA2_512, sha512.New, BlockSizeSha2_512},
		{SHA2_512_224, sha512.New512_224, BlockSizeSha2_512},
		{SHA2_512_256, sha512.New512_256, BlockSizeSha2_512},
	}

	data := make([]byte, 300)
	_, err := rand.Read(data)
	require.NoError(t, err)

	for _, variant := range variants {
		t.Run(variant.algo.String(), func(t *testing.T) {
			for _, keyLen := range []int{0, 1, 20, variant.blockSize - 1, variant.blockSize, variant.blockSize + 1, 200} {
				key := make([]byte, keyLen)
				_, err := rand.Read(key)
				require.NoError(t, err)

				expected := hmac.New(variant.newStdlib, key)
				_, _ = expected.Write(data)

				h, err := NewHMAC(variant.algo, key)
				require.NoError(t, err)
				require.Equal(t, expected.Sum(nil), []byte(h.ComputeHash(data)), "key length %d", keyLen)
			}
		})
	}
}

// TestHmacStreaming checks that the context satisfies the same
// streaming contract as a plain hasher.
func TestHmacStreaming(t *testing.T) {
	key := []byte("streaming key")
	h, err := NewHMAC(SHA2_256, key)
	require.NoError(t, err)

	oneShot := h.ComputeHash([]byte("hello world"))

	h.Reset()
	_, _ = h.Write([]byte("hello"))
	_, _ = h.Write([]byte(" world"))
	assert.Equal(t, oneShot, h.SumHash())

	// SumHash leaves the context writable
	_, _ = h.Write([]byte("!"))
	assert.Equal(t, h.ComputeHash([]byte("hello world!")), h.SumHash())
}

func TestHmacSizes(t *testing.T) {
	h, err := NewHMAC(SHA2_384, []byte("key"))
	require.NoError(t, err)
	assert.Equal(t, SHA2_384, h.Algorithm())
	assert.Equal(t, HashLenSha2_384, h.Size())
	assert.Equal(t, BlockSizeSha2_512, h.BlockSize())
}

// TestHmacFromSeed checks the seed convenience constructor against the
// explicit little-endian key bytes.
func TestHmacFromSeed(t *testing.T) {
	seeded, err := NewHMACFromSeed(SHA2_256, 0x0123456789abcdef)
	require.NoError(t, err)
	keyed, err := NewHMAC(SHA2_256, []byte{0xef, 0xcd, 0xab, 0x89, 0x67, 0x45, 0x23, 0x01})
	require.NoError(t, err)
	assert.Equal(t, keyed.ComputeHash([]byte("data")), seeded.ComputeHash([]byte("data")))

	// a zero seed is the empty-key default
	zero, err := NewHMACFromSeed(SHA2_256, 0)
	require.NoError(t, err)
	empty, err := NewHMAC(SHA2_256, nil)
	require.NoError(t, err)
	assert.Equal(t, empty.ComputeHash([]byte("data")), zero.ComputeHash([]byte("data")))
}

func TestHmacUnknownAlgorithm(t *testing.T) {
	_, err := NewHMAC(UnknownHashingAlgorithm, []byte("key"))
	require.Error(t, err)
	assert.True(t, IsInvalidInputsError(err))
}

// TestHmacOverSha3 composes the HMAC construction with a wrapped
// x/crypto backend.
func TestHmacOverSha3(t *testing.T) {
	key := []byte("sha3 key")
	data := []byte("payload")

	expected := hmac.New(sha3.New256, key)
	_, _ = expected.Write(data)

	h, err := NewHMAC(SHA3_256, key)
	require.NoError(t, err)
	assert.Equal(t, expected.Sum(nil), []byte(h.ComputeHash(data)))
}
