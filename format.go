package inplace

import (
	"unicode/utf8"
	"unsafe"
)

// Text conversion rules: byte strings pass through Go text one byte per
// unit, unchanged. Wide and rune strings cross the text boundary as
// UTF-8; inside the string they remain raw fixed-width units.

// String renders the logical content. Capacity and tail never appear.
func (s String[A, C]) String() string {
	b := (&s).backing()[:s.n]
	var zero C
	if unsafe.Sizeof(zero) == 1 {
		out := make([]byte, len(b))
		for i, u := range b {
			out[i] = byte(u)
		}
		return string(out)
	}
	out := make([]byte, 0, len(b))
	for _, u := range b {
		out = utf8.AppendRune(out, rune(u))
	}
	return string(out)
}

// MarshalText implements encoding.TextMarshaler, rendering the logical
// content only.
func (s String[A, C]) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler under the same
// rules as Parse. On failure the receiver is left unchanged.
func (s *String[A, C]) UnmarshalText(data []byte) error {
	t, err := Parse[A, C](string(data))
	if err != nil {
		return err
	}
	*s = t
	return nil
}

// decodeText fills dst (the free window of a buffer) from str. used is
// the number of units already occupied before dst, so capacity errors
// report whole-string lengths. It returns the number of units written.
func decodeText[C CodeUnit](dst []C, used int, str, op string) (int, error) {
	var zero C
	if unsafe.Sizeof(zero) == 1 {
		if len(str) > len(dst) {
			return 0, &CapacityError{Op: op, Projected: used + len(str), Max: used + len(dst)}
		}
		for i := 0; i < len(str); i++ {
			dst[i] = C(str[i])
		}
		return len(str), nil
	}
	bits := int(unsafe.Sizeof(zero)) * 8
	n := 0
	for _, r := range str {
		if bits == 16 && r > 0xFFFF {
			return n, &UnitError{Op: op, Rune: r, Bits: bits}
		}
		if n == len(dst) {
			return n, &CapacityError{Op: op, Projected: used + n + 1, Max: used + len(dst)}
		}
		dst[n] = C(r)
		n++
	}
	return n, nil
}
