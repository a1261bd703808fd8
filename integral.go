package hashkit

import (
	"encoding/binary"

	"github.com/cadmean-labs/hashkit/hash"
)

// IntegralResult folds a finished digest into an unsigned integer
// usable as a container bucket index. The first 8 digest bytes are
// taken little-endian, shorter digests are zero-extended.
func IntegralResult(h hash.Hash) uint64 {
	var b [8]byte
	copy(b[:], h)
	return binary.LittleEndian.Uint64(b[:])
}

// Sum64 hashes v with XXH64 under the given flavor and folds the
// digest into a uint64, the common container-key path.
func Sum64(v interface{}, f Flavor) (uint64, error) {
	h := hash.NewXXH64()
	if err := HashAppend(h, f, v); err != nil {
		return 0, err
	}
	return IntegralResult(h.SumHash()), nil
}
