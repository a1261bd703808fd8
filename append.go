package hashkit

import (
	"encoding/binary"
	"math"
	"reflect"

	"github.com/pkg/errors"

	"github.com/cadmean-labs/hashkit/hash"
)

// Hashable is the extension point of the dispatch: a type implementing
// it defines its own canonical byte representation and takes precedence
// over every built-in rule.
type Hashable interface {
	AppendHash(h hash.Hasher, f Flavor) error
}

var (
	// ErrUnsupportedType is returned when a value's type has no hashing
	// rule. It is detected before any bytes of the value are absorbed.
	ErrUnsupportedType = errors.New("type has no hashing rule")

	// ErrNilValue is returned for nil interfaces and nil pointers, which
	// have no content to serialize.
	ErrNilValue = errors.New("cannot hash a nil value")
)

var hashableType = reflect.TypeOf((*Hashable)(nil)).Elem()

// HashAppend feeds h with a canonical byte representation of v, leaving
// finalization to the caller. The representation is a total function of
// the value content and the flavor: pointer identity, capacity, and host
// endianness (for the non-native flavors) do not influence it.
//
// Dispatch resolves the most specific applicable rule:
//  1. a Hashable implementation on the value's type,
//  2. fundamental scalars, serialized at canonical width in the flavor
//     byte order (int and uint always take 8 bytes),
//  3. strings and byte slices, absorbed as a length prefix followed by
//     the raw bytes,
//  4. slices, arrays and structs, decomposed recursively in declaration
//     order; variable-size containers absorb their element count first
//     so that []string{"ab","c"} and []string{"a","bc"} cannot
//     collide; fixed-size arrays carry no count,
//  5. anything else (maps, channels, functions) is rejected with
//     ErrUnsupportedType before any hashing occurs.
//
// Unexported struct fields are skipped. Pointers hash the value they
// point to, a nil pointer is an error. Self-referential types are
// supported, but a value whose pointer graph contains a cycle does not
// terminate; callers pass acyclic data.
func HashAppend(h hash.Hasher, f Flavor, v interface{}) error {
	if v == nil {
		return ErrNilValue
	}
	if hv, ok := v.(Hashable); ok {
		return hv.AppendHash(h, f)
	}

	// fast paths for the most common shapes
	switch x := v.(type) {
	case []byte:
		appendSize(h, f, len(x))
		_, _ = h.Write(x)
		return nil
	case string:
		appendString(h, f, x)
		return nil
	}

	rv := reflect.ValueOf(v)
	if err := checkHashable(rv.Type(), nil); err != nil {
		return err
	}
	return appendValue(h, f, rv)
}

// checkHashable rejects unsupported types before any bytes are
// absorbed, the closest rendition of the original static dispatch
// failure. Every composite type is recorded before recursing, so
// self-referential types (a tree node holding a slice of itself, a
// linked list through a pointer) terminate.
func checkHashable(t reflect.Type, visited map[reflect.Type]bool) error {
	if t.Implements(hashableType) {
		return nil
	}
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128,
		reflect.String:
		return nil
	case reflect.Slice, reflect.Array, reflect.Pointer:
		if visited[t] {
			return nil
		}
		if visited == nil {
			visited = map[reflect.Type]bool{}
		}
		visited[t] = true
		return checkHashable(t.Elem(), visited)
	case reflect.Struct:
		if visited[t] {
			return nil
		}
		if visited == nil {
			visited = map[reflect.Type]bool{}
		}
		visited[t] = true
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			if err := checkHashable(field.Type, visited); err != nil {
				return err
			}
		}
		return nil
	case reflect.Interface:
		// the dynamic type is only known per value
		return nil
	default:
		return errors.Wrapf(ErrUnsupportedType, "type %s", t)
	}
}

func appendValue(h hash.Hasher, f Flavor, rv reflect.Value) error {
	switch rv.Kind() {
	case reflect.Bool:
		var b byte
		if rv.Bool() {
			b = 1
		}
		appendUint(h, f, uint64(b), 1)
	case reflect.Int8:
		appendUint(h, f, uint64(rv.Int()), 1)
	case reflect.Int16:
		appendUint(h, f, uint64(rv.Int()), 2)
	case reflect.Int32:
		appendUint(h, f, uint64(rv.Int()), 4)
	case reflect.Int64, reflect.Int:
		// int always hashes at canonical 64-bit width
		appendUint(h, f, uint64(rv.Int()), 8)
	case reflect.Uint8:
		appendUint(h, f, rv.Uint(), 1)
	case reflect.Uint16:
		appendUint(h, f, rv.Uint(), 2)
	case reflect.Uint32:
		appendUint(h, f, rv.Uint(), 4)
	case reflect.Uint64, reflect.Uint:
		appendUint(h, f, rv.Uint(), 8)
	case reflect.Float32:
		appendUint(h, f, uint64(math.Float32bits(float32(normalizeZero(rv.Float())))), 4)
	case reflect.Float64:
		appendUint(h, f, math.Float64bits(normalizeZero(rv.Float())), 8)
	case reflect.Complex64:
		c := rv.Complex()
		appendUint(h, f, uint64(math.Float32bits(float32(normalizeZero(real(c))))), 4)
		appendUint(h, f, uint64(math.Float32bits(float32(normalizeZero(imag(c))))), 4)
	case reflect.Complex128:
		c := rv.Complex()
		appendUint(h, f, math.Float64bits(normalizeZero(real(c))), 8)
		appendUint(h, f, math.Float64bits(normalizeZero(imag(c))), 8)
	case reflect.String:
		appendString(h, f, rv.String())
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 && !rv.Type().Elem().Implements(hashableType) {
			appendSize(h, f, rv.Len())
			_, _ = h.Write(rv.Bytes())
			return nil
		}
		appendSize(h, f, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			if err := appendElem(h, f, rv.Index(i)); err != nil {
				return err
			}
		}
	case reflect.Array:
		// fixed-size, the count is part of the type
		for i := 0; i < rv.Len(); i++ {
			if err := appendElem(h, f, rv.Index(i)); err != nil {
				return err
			}
		}
	case reflect.Struct:
		t := rv.Type()
		for i := 0; i < t.NumField(); i++ {
			if !t.Field(i).IsExported() {
				continue
			}
			if err := appendElem(h, f, rv.Field(i)); err != nil {
				return err
			}
		}
	case reflect.Pointer:
		if rv.IsNil() {
			return errors.Wrapf(ErrNilValue, "type %s", rv.Type())
		}
		return appendElem(h, f, rv.Elem())
	case reflect.Interface:
		if rv.IsNil() {
			return errors.Wrapf(ErrNilValue, "type %s", rv.Type())
		}
		return HashAppend(h, f, rv.Elem().Interface())
	default:
		return errors.Wrapf(ErrUnsupportedType, "type %s", rv.Type())
	}
	return nil
}

// appendElem dispatches one container element or struct field,
// honoring a Hashable implementation on the element type.
func appendElem(h hash.Hasher, f Flavor, rv reflect.Value) error {
	if rv.Type().Implements(hashableType) && rv.CanInterface() {
		return rv.Interface().(Hashable).AppendHash(h, f)
	}
	return appendValue(h, f, rv)
}

func appendString(h hash.Hasher, f Flavor, s string) {
	appendSize(h, f, len(s))
	_, _ = h.Write([]byte(s))
}

// appendSize absorbs a container length prefix at the flavor's
// declared width. The prefix is always little-endian so that values
// without multi-byte scalars hash identically under every byte order.
func appendSize(h hash.Hasher, f Flavor, n int) {
	var buf [8]byte
	if f.SizeWidth == 32 {
		binary.LittleEndian.PutUint32(buf[:4], uint32(n))
		_, _ = h.Write(buf[:4])
		return
	}
	binary.LittleEndian.PutUint64(buf[:8], uint64(n))
	_, _ = h.Write(buf[:8])
}

func appendUint(h hash.Hasher, f Flavor, u uint64, width int) {
	var buf [8]byte
	switch width {
	case 1:
		buf[0] = byte(u)
	case 2:
		f.Order.order().PutUint16(buf[:2], uint16(u))
	case 4:
		f.Order.order().PutUint32(buf[:4], uint32(u))
	default:
		f.Order.order().PutUint64(buf[:8], u)
	}
	_, _ = h.Write(buf[:width])
}

// normalizeZero folds negative zero into positive zero so both
// serialize identically.
func normalizeZero(v float64) float64 {
	if v == 0 {
		return 0
	}
	return v
}
