package hash

import (
	"hash"

	"golang.org/x/crypto/sha3"
)

// SHA-3 variants are served by x/crypto, wrapped into the Hasher
// contract. The embedded state already provides Write, Reset, Size
// and BlockSize.

// sha3_256Algo, embeds the x/crypto sponge state
type sha3_256Algo struct {
	hash.Hash
}

// NewSHA3_256 returns a new instance of SHA3-256 hasher
func NewSHA3_256() Hasher {
	return &sha3_256Algo{
		Hash: sha3.New256()}
}

func (s *sha3_256Algo) Algorithm() HashingAlgorithm {
	return SHA3_256
}

// ComputeHash calculates and returns the SHA3-256 output of input byte array.
// It does not reset the state to allow further writing.
func (s *sha3_256Algo) ComputeHash(data []byte) Hash {
	s.Reset()
	_, _ = s.Write(data)
	return s.Sum(nil)
}

// SumHash returns the SHA3-256 output.
// It does not reset the state to allow further writing.
func (s *sha3_256Algo) SumHash() Hash {
	return s.Sum(nil)
}

// sha3_384Algo, embeds the x/crypto sponge state
type sha3_384Algo struct {
	hash.Hash
}

// NewSHA3_384 returns a new instance of SHA3-384 hasher
func NewSHA3_384() Hasher {
	return &sha3_384Algo{
		Hash: sha3.New384()}
}

func (s *sha3_384Algo) Algorithm() HashingAlgorithm {
	return SHA3_384
}

// ComputeHash calculates and returns the SHA3-384 output of input byte array.
// It does not reset the state to allow further writing.
func (s *sha3_384Algo) ComputeHash(data []byte) Hash {
	s.Reset()
	_, _ = s.Write(data)
	return s.Sum(nil)
}

// SumHash returns the SHA3-384 output.
// It does not reset the state to allow further writing.
func (s *sha3_384Algo) SumHash() Hash {
	return s.Sum(nil)
}
