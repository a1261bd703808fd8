package hash

import (
	"bytes"
	"encoding/hex"
	"io"
)

// HashingAlgorithm is an identifier for a hashing algorithm.
type HashingAlgorithm int

const (
	// Supported hashing algorithms
	UnknownHashingAlgorithm HashingAlgorithm = iota
	SHA2_224
	SHA2_256
	SHA2_384
	SHA2_512
	SHA2_512_224
	SHA2_512_256
	SHA3_256
	SHA3_384
	XXH64
)

// String returns the string representation of this hashing algorithm.
func (f HashingAlgorithm) String() string {
	return [...]string{
		"UNKNOWN",
		"SHA2_224",
		"SHA2_256",
		"SHA2_384",
		"SHA2_512",
		"SHA2_512_224",
		"SHA2_512_256",
		"SHA3_256",
		"SHA3_384",
		"XXH64",
	}[f]
}

const (
	// Lengths of hash outputs in bytes
	HashLenSha2_224     = 28
	HashLenSha2_256     = 32
	HashLenSha2_384     = 48
	HashLenSha2_512     = 64
	HashLenSha2_512_224 = 28
	HashLenSha2_512_256 = 32
	HashLenSha3_256     = 32
	HashLenSha3_384     = 48
	HashLenXXH64        = 8

	// Input block sizes in bytes
	BlockSizeSha2_256 = 64
	BlockSizeSha2_512 = 128
)

// Hash is the hash algorithms output types
type Hash []byte

// Equal checks if a hash is equal to a given hash
func (h Hash) Equal(input Hash) bool {
	return bytes.Equal(h, input)
}

// Hex returns the hex string representation of the hash.
func (h Hash) Hex() string {
	return hex.EncodeToString(h)
}

// String returns the hex string representation of the hash.
func (h Hash) String() string {
	return h.Hex()
}

// Hasher interface
type Hasher interface {
	// Algorithm returns the hashing algorithm of the hasher.
	Algorithm() HashingAlgorithm
	// Size returns the hash output length in bytes.
	Size() int
	// BlockSize returns the hash algorithm internal block size in bytes.
	BlockSize() int
	// ComputeHash resets the state and returns the hash of the input byte array.
	ComputeHash([]byte) Hash
	// Write (via the io.Writer interface) adds more bytes to the
	// current hash state. It never returns an error.
	io.Writer
	// SumHash returns the hash of the data written so far.
	// It does not reset the state to allow further writing.
	SumHash() Hash
	// Reset resets the hash state.
	Reset()
}
