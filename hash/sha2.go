package hash

import (
	"encoding/binary"
	"math/bits"
)

// SHA-2 message digest family, implemented from FIPS 180-4
// (https://csrc.nist.gov/pubs/fips/180-4/upd1/final) and RFC 6234.
//
// The six variants share two incremental states: digest256 for the
// 64-byte-block members (SHA-224, SHA-256) and digest512 for the
// 128-byte-block members (SHA-384, SHA-512, SHA-512/224, SHA-512/256).
// Variants differ only in initialization vector and output truncation.

// digest256 is the incremental hashing state of the 256-bit-block family.
type digest256 struct {
	algo       HashingAlgorithm
	outputSize int
	h          [8]uint32
	x          [BlockSizeSha2_256]byte
	nx         int    // buffered byte count, always equals len % block size
	len        uint64 // total bytes written
}

// NewSHA2_224 returns a new instance of SHA2-224 hasher
func NewSHA2_224() Hasher {
	d := &digest256{algo: SHA2_224, outputSize: HashLenSha2_224}
	d.Reset()
	return d
}

// NewSHA2_256 returns a new instance of SHA2-256 hasher
func NewSHA2_256() Hasher {
	d := &digest256{algo: SHA2_256, outputSize: HashLenSha2_256}
	d.Reset()
	return d
}

func (d *digest256) Algorithm() HashingAlgorithm {
	return d.algo
}

// Size returns the hash output length in bytes.
func (d *digest256) Size() int { return d.outputSize }

// BlockSize returns the block size of the compression function in bytes.
func (d *digest256) BlockSize() int { return BlockSizeSha2_256 }

// Reset sets the state back to the algorithm initialization vector.
func (d *digest256) Reset() {
	switch d.algo {
	case SHA2_224:
		d.h = [8]uint32{
			0xc1059ed8, 0x367cd507, 0x3070dd17, 0xf70e5939,
			0xffc00b31, 0x68581511, 0x64f98fa7, 0xbefa4fa4,
		}
	default:
		d.h = [8]uint32{
			0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
			0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
		}
	}
	d.nx = 0
	d.len = 0
}

// Write absorbs more data into the hash state. Full blocks are
// compressed straight from the input without copying, only the
// trailing partial block is buffered.
func (d *digest256) Write(p []byte) (int, error) {
	n := len(p)
	d.len += uint64(n)
	if d.nx > 0 {
		c := copy(d.x[d.nx:], p)
		d.nx += c
		if d.nx == BlockSizeSha2_256 {
			block256(&d.h, d.x[:])
			d.nx = 0
		}
		p = p[c:]
	}
	if len(p) >= BlockSizeSha2_256 {
		k := len(p) &^ (BlockSizeSha2_256 - 1)
		block256(&d.h, p[:k])
		p = p[k:]
	}
	if len(p) > 0 {
		d.nx = copy(d.x[:], p)
	}
	return n, nil
}

// SumHash returns the hash of the data written so far.
// It does not reset the state to allow further writing.
func (d *digest256) SumHash() Hash {
	// finalization works on a copy so the receiver stays writable
	dd := *d
	var tmp [BlockSizeSha2_256]byte
	tmp[0] = 0x80
	l := dd.len
	if l%64 < 56 {
		_, _ = dd.Write(tmp[0 : 56-l%64])
	} else {
		_, _ = dd.Write(tmp[0 : 64+56-l%64])
	}
	// the message bit length lands the stream exactly on a block boundary
	binary.BigEndian.PutUint64(tmp[0:8], l<<3)
	_, _ = dd.Write(tmp[0:8])
	if dd.nx != 0 {
		panic("hash: sha2 padding left a partial block")
	}

	var out [HashLenSha2_256]byte
	for i, s := range dd.h {
		binary.BigEndian.PutUint32(out[i*4:], s)
	}
	sum := make(Hash, d.outputSize)
	copy(sum, out[:])
	return sum
}

// ComputeHash resets the state and returns the hash of the input byte array.
func (d *digest256) ComputeHash(data []byte) Hash {
	d.Reset()
	_, _ = d.Write(data)
	return d.SumHash()
}

// digest512 is the incremental hashing state of the 512-bit-block family.
type digest512 struct {
	algo       HashingAlgorithm
	outputSize int
	h          [8]uint64
	x          [BlockSizeSha2_512]byte
	nx         int    // buffered byte count, always equals len % block size
	len        uint64 // total bytes written
}

// NewSHA2_384 returns a new instance of SHA2-384 hasher
func NewSHA2_384() Hasher {
	d := &digest512{algo: SHA2_384, outputSize: HashLenSha2_384}
	d.Reset()
	return d
}

// NewSHA2_512 returns a new instance of SHA2-512 hasher
func NewSHA2_512() Hasher {
	d := &digest512{algo: SHA2_512, outputSize: HashLenSha2_512}
	d.Reset()
	return d
}

// NewSHA2_512_224 returns a new instance of SHA2-512/224 hasher
func NewSHA2_512_224() Hasher {
	d := &digest512{algo: SHA2_512_224, outputSize: HashLenSha2_512_224}
	d.Reset()
	return d
}

// NewSHA2_512_256 returns a new instance of SHA2-512/256 hasher
func NewSHA2_512_256() Hasher {
	d := &digest512{algo: SHA2_512_256, outputSize: HashLenSha2_512_256}
	d.Reset()
	return d
}

func (d *digest512) Algorithm() HashingAlgorithm {
	return d.algo
}

// Size returns the hash output length in bytes.
func (d *digest512) Size() int { return d.outputSize }

// BlockSize returns the block size of the compression function in bytes.
func (d *digest512) BlockSize() int { return BlockSizeSha2_512 }

// Reset sets the state back to the algorithm initialization vector.
func (d *digest512) Reset() {
	switch d.algo {
	case SHA2_384:
		d.h = [8]uint64{
			0xcbbb9d5dc1059ed8, 0x629a292a367cd507, 0x9159015a3070dd17, 0x152fecd8f70e5939,
			0x67332667ffc00b31, 0x8eb44a8768581511, 0xdb0c2e0d64f98fa7, 0x47b5481dbefa4fa4,
		}
	case SHA2_512_224:
		d.h = [8]uint64{
			0x8c3d37c819544da2, 0x73e1996689dcd4d6, 0x1dfab7ae32ff9c82, 0x679dd514582f9fcf,
			0x0f6d2b697bd44da8, 0x77e36f7304c48942, 0x3f9d85a86a1d36c8, 0x1112e6ad91d692a1,
		}
	case SHA2_512_256:
		d.h = [8]uint64{
			0x22312194fc2bf72c, 0x9f555fa3c84c64c2, 0x2393b86b6f53b151, 0x963877195940eabd,
			0x96283ee2a88effe3, 0xbe5e1e2553863992, 0x2b0199fc2c85b8aa, 0x0eb72ddc81c52ca2,
		}
	default:
		d.h = [8]uint64{
			0x6a09e667f3bcc908, 0xbb67ae8584caa73b, 0x3c6ef372fe94f82b, 0xa54ff53a5f1d36f1,
			0x510e527fade682d1, 0x9b05688c2b3e6c1f, 0x1f83d9abfb41bd6b, 0x5be0cd19137e2179,
		}
	}
	d.nx = 0
	d.len = 0
}

// Write absorbs more data into the hash state. Full blocks are
// compressed straight from the input without copying, only the
// trailing partial block is buffered.
func (d *digest512) Write(p []byte) (int, error) {
	n := len(p)
	d.len += uint64(n)
	if d.nx > 0 {
		c := copy(d.x[d.nx:], p)
		d.nx += c
		if d.nx == BlockSizeSha2_512 {
			block512(&d.h, d.x[:])
			d.nx = 0
		}
		p = p[c:]
	}
	if len(p) >= BlockSizeSha2_512 {
		k := len(p) &^ (BlockSizeSha2_512 - 1)
		block512(&d.h, p[:k])
		p = p[k:]
	}
	if len(p) > 0 {
		d.nx = copy(d.x[:], p)
	}
	return n, nil
}

// SumHash returns the hash of the data written so far.
// It does not reset the state to allow further writing.
func (d *digest512) SumHash() Hash {
	// finalization works on a copy so the receiver stays writable
	dd := *d
	var tmp [BlockSizeSha2_512]byte
	tmp[0] = 0x80
	l := dd.len
	if l%128 < 112 {
		_, _ = dd.Write(tmp[0 : 112-l%128])
	} else {
		_, _ = dd.Write(tmp[0 : 128+112-l%128])
	}
	// 128-bit big-endian bit length, high 64 bits are always zero
	tmp = [BlockSizeSha2_512]byte{}
	binary.BigEndian.PutUint64(tmp[8:16], l<<3)
	_, _ = dd.Write(tmp[0:16])
	if dd.nx != 0 {
		panic("hash: sha2 padding left a partial block")
	}

	var out [HashLenSha2_512]byte
	for i, s := range dd.h {
		binary.BigEndian.PutUint64(out[i*8:], s)
	}
	// truncated variants keep a digest-size prefix of the big-endian state,
	// which covers the SHA-512/224 half-word rule as well
	sum := make(Hash, d.outputSize)
	copy(sum, out[:])
	return sum
}

// ComputeHash resets the state and returns the hash of the input byte array.
func (d *digest512) ComputeHash(data []byte) Hash {
	d.Reset()
	_, _ = d.Write(data)
	return d.SumHash()
}

// round constants, FIPS 180-4 section 4.2.2
var k256 = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5, 0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3, 0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc, 0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7, 0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13, 0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3, 0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5, 0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208, 0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

// round constants, FIPS 180-4 section 4.2.3
var k512 = [80]uint64{
	0x428a2f98d728ae22, 0x7137449123ef65cd, 0xb5c0fbcfec4d3b2f, 0xe9b5dba58189dbbc,
	0x3956c25bf348b538, 0x59f111f1b605d019, 0x923f82a4af194f9b, 0xab1c5ed5da6d8118,
	0xd807aa98a3030242, 0x12835b0145706fbe, 0x243185be4ee4b28c, 0x550c7dc3d5ffb4e2,
	0x72be5d74f27b896f, 0x80deb1fe3b1696b1, 0x9bdc06a725c71235, 0xc19bf174cf692694,
	0xe49b69c19ef14ad2, 0xefbe4786384f25e3, 0x0fc19dc68b8cd5b5, 0x240ca1cc77ac9c65,
	0x2de92c6f592b0275, 0x4a7484aa6ea6e483, 0x5cb0a9dcbd41fbd4, 0x76f988da831153b5,
	0x983e5152ee66dfab, 0xa831c66d2db43210, 0xb00327c898fb213f, 0xbf597fc7beef0ee4,
	0xc6e00bf33da88fc2, 0xd5a79147930aa725, 0x06ca6351e003826f, 0x142929670a0e6e70,
	0x27b70a8546d22ffc, 0x2e1b21385c26c926, 0x4d2c6dfc5ac42aed, 0x53380d139d95b3df,
	0x650a73548baf63de, 0x766a0abb3c77b2a8, 0x81c2c92e47edaee6, 0x92722c851482353b,
	0xa2bfe8a14cf10364, 0xa81a664bbc423001, 0xc24b8b70d0f89791, 0xc76c51a30654be30,
	0xd192e819d6ef5218, 0xd69906245565a910, 0xf40e35855771202a, 0x106aa07032bbd1b8,
	0x19a4c116b8d2d0c8, 0x1e376c085141ab53, 0x2748774cdf8eeb99, 0x34b0bcb5e19b48a8,
	0x391c0cb3c5c95a63, 0x4ed8aa4ae3418acb, 0x5b9cca4f7763e373, 0x682e6ff3d6b2b8a3,
	0x748f82ee5defb2fc, 0x78a5636f43172f60, 0x84c87814a1f0ab72, 0x8cc702081a6439ec,
	0x90befffa23631e28, 0xa4506cebde82bde9, 0xbef9a3f7b2c67915, 0xc67178f2e372532b,
	0xca273eceea26619c, 0xd186b8c721c0c207, 0xeada7dd6cde0eb1e, 0xf57d4f7fee6ed178,
	0x06f067aa72176fba, 0x0a637dc5a2c898a6, 0x113f9804bef90dae, 0x1b710b35131c471b,
	0x28db77f523047d84, 0x32caab7b40c72493, 0x3c9ebe0a15c9bebc, 0x431d67c49c100d4c,
	0x4cc5d4becb3e42b6, 0x597f299cfc657e2a, 0x5fcb6fab3ad6faec, 0x6c44198c4a475817,
}

// block256 runs the SHA-256 compression function over as many full
// 64-byte blocks as p contains.
func block256(st *[8]uint32, p []byte) {
	var w [64]uint32
	for len(p) >= BlockSizeSha2_256 {
		for t := 0; t < 16; t++ {
			w[t] = binary.BigEndian.Uint32(p[t*4:])
		}
		for t := 16; t < 64; t++ {
			s0 := bits.RotateLeft32(w[t-15], -7) ^ bits.RotateLeft32(w[t-15], -18) ^ (w[t-15] >> 3)
			s1 := bits.RotateLeft32(w[t-2], -17) ^ bits.RotateLeft32(w[t-2], -19) ^ (w[t-2] >> 10)
			w[t] = s1 + w[t-7] + s0 + w[t-16]
		}

		a, b, c, d := st[0], st[1], st[2], st[3]
		e, f, g, h := st[4], st[5], st[6], st[7]

		for t := 0; t < 64; t++ {
			S1 := bits.RotateLeft32(e, -6) ^ bits.RotateLeft32(e, -11) ^ bits.RotateLeft32(e, -25)
			ch := (e & f) ^ (^e & g)
			t1 := h + S1 + ch + k256[t] + w[t]
			S0 := bits.RotateLeft32(a, -2) ^ bits.RotateLeft32(a, -13) ^ bits.RotateLeft32(a, -22)
			maj := (a & b) ^ (a & c) ^ (b & c)
			t2 := S0 + maj

			h = g
			g = f
			f = e
			e = d + t1
			d = c
			c = b
			b = a
			a = t1 + t2
		}

		st[0] += a
		st[1] += b
		st[2] += c
		st[3] += d
		st[4] += e
		st[5] += f
		st[6] += g
		st[7] += h

		p = p[BlockSizeSha2_256:]
	}
}

// block512 runs the SHA-512 compression function over as many full
// 128-byte blocks as p contains.
func block512(st *[8]uint64, p []byte) {
	var w [80]uint64
	for len(p) >= BlockSizeSha2_512 {
		for t := 0; t < 16; t++ {
			w[t] = binary.BigEndian.Uint64(p[t*8:])
		}
		for t := 16; t < 80; t++ {
			s0 := bits.RotateLeft64(w[t-15], -1) ^ bits.RotateLeft64(w[t-15], -8) ^ (w[t-15] >> 7)
			s1 := bits.RotateLeft64(w[t-2], -19) ^ bits.RotateLeft64(w[t-2], -61) ^ (w[t-2] >> 6)
			w[t] = s1 + w[t-7] + s0 + w[t-16]
		}

		a, b, c, d := st[0], st[1], st[2], st[3]
		e, f, g, h := st[4], st[5], st[6], st[7]

		for t := 0; t < 80; t++ {
			S1 := bits.RotateLeft64(e, -14) ^ bits.RotateLeft64(e, -18) ^ bits.RotateLeft64(e, -41)
			ch := (e & f) ^ (^e & g)
			t1 := h + S1 + ch + k512[t] + w[t]
			S0 := bits.RotateLeft64(a, -28) ^ bits.RotateLeft64(a, -34) ^ bits.RotateLeft64(a, -39)
			maj := (a & b) ^ (a & c) ^ (b & c)
			t2 := S0 + maj

			h = g
			g = f
			f = e
			e = d + t1
			d = c
			c = b
			b = a
			a = t1 + t2
		}

		st[0] += a
		st[1] += b
		st[2] += c
		st[3] += d
		st[4] += e
		st[5] += f
		st[6] += g
		st[7] += h

		p = p[BlockSizeSha2_512:]
	}
}
