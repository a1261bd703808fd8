// Package hashkit feeds arbitrary Go values into a streaming hasher
// in a deterministic, flavor-controlled byte order, so that equal
// values always produce equal digests regardless of how they are laid
// out in memory.
package hashkit

import "encoding/binary"

// ByteOrder selects how multi-byte scalars are serialized for hashing.
type ByteOrder uint8

const (
	// NativeEndian serializes scalars in the host byte order.
	NativeEndian ByteOrder = iota
	// LittleEndian serializes scalars least significant byte first.
	LittleEndian
	// BigEndian serializes scalars most significant byte first.
	BigEndian
)

// String returns the string representation of this byte order.
func (o ByteOrder) String() string {
	return [...]string{"NATIVE", "LITTLE_ENDIAN", "BIG_ENDIAN"}[o]
}

func (o ByteOrder) order() binary.ByteOrder {
	switch o {
	case LittleEndian:
		return binary.LittleEndian
	case BigEndian:
		return binary.BigEndian
	default:
		return binary.NativeEndian
	}
}

// Flavor describes how scalar and composite values are serialized into
// bytes before hashing. It is an immutable value, created once by the
// caller and passed into every dispatch call.
type Flavor struct {
	// Order is the byte order applied to multi-byte scalars.
	Order ByteOrder
	// SizeWidth is the width in bits (32 or 64) of the length prefix
	// absorbed for variable-size containers.
	SizeWidth int
}

var (
	// DefaultFlavor matches the host byte order. Digests produced with
	// it are only comparable between hosts of the same endianness.
	DefaultFlavor = Flavor{Order: NativeEndian, SizeWidth: 64}

	// LittleEndianFlavor produces platform-independent digests with
	// least-significant-byte-first scalars.
	LittleEndianFlavor = Flavor{Order: LittleEndian, SizeWidth: 64}

	// BigEndianFlavor produces platform-independent digests with
	// most-significant-byte-first scalars.
	BigEndianFlavor = Flavor{Order: BigEndian, SizeWidth: 64}
)
