// Package inplace provides a fixed-capacity string whose storage lives
// entirely inside the value.
//
// A String[A, C] holds its code units in a single inline backing array;
// there is no heap pointer, no shared state, and no teardown. The
// capacity is carried by the backing array type and is never stored at
// runtime: a String[[14]byte, byte] holds up to 13 bytes, with the last
// slot reserved for the terminator.
//
// # Backing arrays
//
// The type parameter A must be an array of the code unit type C with at
// least one slot. The capacity is len(A) - 1; the final slot always
// holds the zero unit. Declaring a named alias keeps call sites tidy:
//
//	type Tag = inplace.String[[33]byte, byte]
//
//	tag, err := inplace.FromString[[33]byte]("user.created")
//
// Instantiating String with anything that is not an array of C is a
// plumbing error and panics on first use.
//
// # Value semantics
//
// Strings are plain values: assignment copies the content, the zero
// value is the empty string, and two values of the same type with equal
// content compare equal with ==, so they work directly as map keys.
// Everything past the logical length is kept zeroed to make that hold.
//
// A value must not be shared across goroutines while one of them
// mutates it; copy it instead.
//
// # Codecs
//
// Strings implement encoding.TextMarshaler and TextUnmarshaler, so
// they serialize as their logical content. The subpackages json, xml,
// yaml and msgpack provide Codec implementations that bridge those
// interfaces explicitly; Encode and Decode wrap any Codec with capitan
// signals.
//
// # Errors
//
// Mutators that would exceed the capacity fail with a CapacityError
// before writing anything, and checked access past the logical length
// fails with a RangeError. Both unwrap to package sentinels for
// errors.Is. A failed call never leaves partial writes behind.
package inplace

import (
	"fmt"
	"iter"
	"reflect"
	"unsafe"
)

// CodeUnit constrains the fixed-width element types a String can hold:
// byte strings, 16-bit wide strings, and rune strings.
type CodeUnit interface {
	~uint8 | ~uint16 | ~int32
}

// String is a fixed-capacity string stored inline in an array of type A
// with code units of type C. A must be [N+1]C for some N >= 0; the
// extra slot holds the terminator. The zero value is the empty string.
type String[A any, C CodeUnit] struct {
	buf A
	n   int
}

// slots reports how many code-unit slots the backing array type holds,
// terminator included.
func slots[A any, C CodeUnit]() int {
	var a A
	var c C
	return int(unsafe.Sizeof(a) / unsafe.Sizeof(c))
}

// checkBacking panics unless A is a non-empty array of C. It is the
// gate in front of every buffer reinterpretation.
func checkBacking[A any, C CodeUnit]() {
	t := reflect.TypeFor[A]()
	if t.Kind() != reflect.Array || t.Elem() != reflect.TypeFor[C]() || t.Len() < 1 {
		panic(fmt.Sprintf("inplace: backing type %v is not a non-empty array of %v", t, reflect.TypeFor[C]()))
	}
}

// backing reinterprets the inline array as its code-unit slots,
// terminator slot included.
func (s *String[A, C]) backing() []C {
	checkBacking[A, C]()
	return unsafe.Slice((*C)(unsafe.Pointer(&s.buf)), slots[A, C]())
}

// Cap returns the capacity: the maximum number of code units the string
// can hold. It is a property of the type, not of the value.
func (s String[A, C]) Cap() int {
	checkBacking[A, C]()
	return slots[A, C]() - 1
}

// Len returns the number of code units currently held.
func (s String[A, C]) Len() int { return s.n }

// Empty reports whether the string holds no code units.
func (s String[A, C]) Empty() bool { return s.n == 0 }

// Fill returns a string holding count copies of unit.
// It fails with a CapacityError if count exceeds the capacity.
func Fill[A any, C CodeUnit](count int, unit C) (String[A, C], error) {
	var s String[A, C]
	b := s.backing()
	if count < 0 {
		return String[A, C]{}, &RangeError{Op: "fill", Index: count, Size: s.n}
	}
	if count > len(b)-1 {
		return String[A, C]{}, &CapacityError{Op: "fill", Projected: count, Max: len(b) - 1}
	}
	for i := 0; i < count; i++ {
		b[i] = unit
	}
	s.n = count
	return s, nil
}

// FromUnits returns a string holding a copy of units. Every element of
// the slice becomes content, including zero units. It fails with a
// CapacityError if the slice is longer than the capacity.
func FromUnits[A any, C CodeUnit](units []C) (String[A, C], error) {
	var s String[A, C]
	b := s.backing()
	if len(units) > len(b)-1 {
		return String[A, C]{}, &CapacityError{Op: "from units", Projected: len(units), Max: len(b) - 1}
	}
	s.n = copy(b, units)
	return s, nil
}

// FromTerminated copies units up to (not including) the first zero
// unit, or the whole slice if no zero unit occurs. It fails with a
// CapacityError if the delimited run is longer than the capacity.
func FromTerminated[A any, C CodeUnit](units []C) (String[A, C], error) {
	var zero C
	for i, u := range units {
		if u == zero {
			units = units[:i]
			break
		}
	}
	return FromUnits[A](units)
}

// Collect drains seq into a new string. It fails with a CapacityError
// as soon as the sequence yields more units than the capacity.
func Collect[A any, C CodeUnit](seq iter.Seq[C]) (String[A, C], error) {
	var s String[A, C]
	b := s.backing()
	max := len(b) - 1
	for u := range seq {
		if s.n == max {
			return String[A, C]{}, &CapacityError{Op: "collect", Projected: s.n + 1, Max: max}
		}
		b[s.n] = u
		s.n++
	}
	return s, nil
}

// Parse builds a string from Go text. For byte strings each input byte
// becomes one unit, unchanged. For wide and rune strings the input is
// decoded as UTF-8 and each decoded rune becomes one unit; a rune that
// does not fit the unit width fails with a UnitError. Capacity overflow
// fails with a CapacityError.
func Parse[A any, C CodeUnit](str string) (String[A, C], error) {
	var s String[A, C]
	b := s.backing()
	n, err := decodeText[C](b[:len(b)-1], 0, str, "parse")
	if err != nil {
		return String[A, C]{}, err
	}
	s.n = n
	return s, nil
}

// FromString builds a byte string from str, one unit per byte.
func FromString[A any](str string) (String[A, byte], error) {
	return Parse[A, byte](str)
}

// MustFromString is FromString for literals whose length is known to
// fit the capacity. It panics instead of returning an error.
func MustFromString[A any](str string) String[A, byte] {
	s, err := FromString[A](str)
	if err != nil {
		panic(err)
	}
	return s
}
