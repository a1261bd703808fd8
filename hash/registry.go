package hash

import (
	"sort"
	"strings"
)

// The registry maps algorithm identifiers and names to constructors.
// It backs NewHasher, NewHMAC and the command line tooling.

type hashDefinition struct {
	algorithm HashingAlgorithm
	name      string
	size      int
	blockSize int
	newFunc   func() Hasher
}

var (
	algo2hash = map[HashingAlgorithm]*hashDefinition{}
	name2hash = map[string]*hashDefinition{}
)

// RegisterHash adds a hashing algorithm to the registry under the
// given lowercase name.
func RegisterHash(algo HashingAlgorithm, name string, size, blockSize int, newFunc func() Hasher) {
	definition := &hashDefinition{
		algorithm: algo,
		name:      name,
		size:      size,
		blockSize: blockSize,
		newFunc:   newFunc,
	}
	algo2hash[algo] = definition
	name2hash[name] = definition
}

func init() {
	RegisterHash(SHA2_224, "sha2_224", HashLenSha2_224, BlockSizeSha2_256, NewSHA2_224)
	RegisterHash(SHA2_256, "sha2_256", HashLenSha2_256, BlockSizeSha2_256, NewSHA2_256)
	RegisterHash(SHA2_384, "sha2_384", HashLenSha2_384, BlockSizeSha2_512, NewSHA2_384)
	RegisterHash(SHA2_512, "sha2_512", HashLenSha2_512, BlockSizeSha2_512, NewSHA2_512)
	RegisterHash(SHA2_512_224, "sha2_512_224", HashLenSha2_512_224, BlockSizeSha2_512, NewSHA2_512_224)
	RegisterHash(SHA2_512_256, "sha2_512_256", HashLenSha2_512_256, BlockSizeSha2_512, NewSHA2_512_256)
	RegisterHash(SHA3_256, "sha3_256", HashLenSha3_256, 136, NewSHA3_256)
	RegisterHash(SHA3_384, "sha3_384", HashLenSha3_384, 104, NewSHA3_384)
	RegisterHash(XXH64, "xxh64", HashLenXXH64, 32, NewXXH64)
}

// NewHasher returns a new instance of the given registered algorithm.
func NewHasher(algo HashingAlgorithm) (Hasher, error) {
	def := algo2hash[algo]
	if def == nil {
		return nil, newInvalidInputsError("hashing algorithm %s is not supported", algo)
	}
	return def.newFunc(), nil
}

// NewHasherByName returns a new instance of the algorithm registered
// under name. The lookup is case-insensitive.
func NewHasherByName(name string) (Hasher, error) {
	def := name2hash[strings.ToLower(name)]
	if def == nil {
		return nil, newInvalidInputsError("unknown hashing algorithm %q", name)
	}
	return def.newFunc(), nil
}

// OutputSize returns the digest length in bytes of a registered
// algorithm, or 0 if the algorithm is unknown.
func OutputSize(algo HashingAlgorithm) int {
	if def := algo2hash[algo]; def != nil {
		return def.size
	}
	return 0
}

// SupportedNames returns the sorted names of all registered algorithms.
func SupportedNames() []string {
	names := make([]string, 0, len(name2hash))
	for name := range name2hash {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
