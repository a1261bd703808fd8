package hash

import "encoding/binary"

// HMAC keyed-hash composition, RFC 2104 / FIPS 198-1.
//
// The context owns an inner hasher seeded with the key XOR ipad and
// derives the outer computation on demand, so it satisfies the same
// streaming Hasher contract as the wrapped algorithm and can be used
// anywhere a plain hasher is accepted.

const (
	hmacInnerPad = 0x36
	hmacOuterPad = 0x5c
)

type hmacAlgo struct {
	newHasher func() Hasher
	inner     Hasher
	ipad      []byte // key XOR 0x36.., one block, fixed for the context lifetime
	opad      []byte // key XOR 0x5c.., one block, fixed for the context lifetime
}

// NewKeyedHasher wraps the hasher built by newHasher into an HMAC context
// keyed with key. A key longer than one block is hashed down to digest
// size first, a nil or empty key yields the all-zero-key default.
func NewKeyedHasher(newHasher func() Hasher, key []byte) Hasher {
	base := newHasher()
	blockSize := base.BlockSize()
	if len(key) > blockSize {
		key = base.ComputeHash(key)
	}
	ipad := make([]byte, blockSize)
	opad := make([]byte, blockSize)
	copy(ipad, key)
	copy(opad, key)
	for i := 0; i < blockSize; i++ {
		ipad[i] ^= hmacInnerPad
		opad[i] ^= hmacOuterPad
	}

	base.Reset()
	h := &hmacAlgo{
		newHasher: newHasher,
		inner:     base,
		ipad:      ipad,
		opad:      opad,
	}
	_, _ = h.inner.Write(h.ipad)
	return h
}

// NewHMAC returns an HMAC context over the given registered algorithm.
func NewHMAC(algo HashingAlgorithm, key []byte) (Hasher, error) {
	def := algo2hash[algo]
	if def == nil {
		return nil, newInvalidInputsError("hashing algorithm %s is not supported", algo)
	}
	return NewKeyedHasher(def.newFunc, key), nil
}

// NewHMACFromSeed returns an HMAC context keyed with the 8 little-endian
// bytes of seed. A zero seed is equivalent to the empty-key default.
func NewHMACFromSeed(algo HashingAlgorithm, seed uint64) (Hasher, error) {
	var key []byte
	if seed != 0 {
		key = make([]byte, 8)
		binary.LittleEndian.PutUint64(key, seed)
	}
	return NewHMAC(algo, key)
}

// Algorithm returns the identity of the underlying digest. The enum
// names digest algorithms only, so a keyed context is not
// distinguishable from a plain hasher through it.
func (h *hmacAlgo) Algorithm() HashingAlgorithm {
	return h.inner.Algorithm()
}

// Size returns the hash output length in bytes.
func (h *hmacAlgo) Size() int { return h.inner.Size() }

// BlockSize returns the block size of the wrapped algorithm in bytes.
func (h *hmacAlgo) BlockSize() int { return h.inner.BlockSize() }

// Write forwards the input to the inner hasher.
func (h *hmacAlgo) Write(p []byte) (int, error) {
	return h.inner.Write(p)
}

// SumHash returns the HMAC of the data written so far.
// It does not reset the state to allow further writing.
func (h *hmacAlgo) SumHash() Hash {
	innerSum := h.inner.SumHash()
	outer := h.newHasher()
	_, _ = outer.Write(h.opad)
	_, _ = outer.Write(innerSum)
	return outer.SumHash()
}

// Reset restores the context to its freshly keyed state,
// the key-derived pads are kept.
func (h *hmacAlgo) Reset() {
	h.inner.Reset()
	_, _ = h.inner.Write(h.ipad)
}

// ComputeHash resets the context and returns the HMAC of the input byte array.
func (h *hmacAlgo) ComputeHash(data []byte) Hash {
	h.Reset()
	_, _ = h.Write(data)
	return h.SumHash()
}
