package hash

import (
	"github.com/cespare/xxhash/v2"
)

// xxh64Algo, embeds the xxhash streaming state. XXH64 is the
// non-cryptographic default for short inputs such as container keys.
type xxh64Algo struct {
	*xxhash.Digest
}

// NewXXH64 returns a new instance of XXH64 hasher
func NewXXH64() Hasher {
	return &xxh64Algo{
		Digest: xxhash.New()}
}

func (s *xxh64Algo) Algorithm() HashingAlgorithm {
	return XXH64
}

// ComputeHash calculates and returns the XXH64 output of input byte array.
// It does not reset the state to allow further writing.
func (s *xxh64Algo) ComputeHash(data []byte) Hash {
	s.Reset()
	_, _ = s.Write(data)
	return s.Sum(nil)
}

// SumHash returns the XXH64 output in canonical big-endian form.
// It does not reset the state to allow further writing.
func (s *xxh64Algo) SumHash() Hash {
	return s.Sum(nil)
}
