package inplace

import "iter"

// At returns the code unit at pos. It fails with a RangeError if pos is
// not a valid content index.
func (s String[A, C]) At(pos int) (C, error) {
	if pos < 0 || pos >= s.n {
		var zero C
		return zero, &RangeError{Op: "at", Index: pos, Size: s.n}
	}
	return (&s).backing()[pos], nil
}

// Unit returns the code unit at pos without validating pos against
// Len. The caller must ensure pos <= Cap; positions between Len and Cap
// read the zeroed tail, positions past the backing array panic.
func (s String[A, C]) Unit(pos int) C {
	return (&s).backing()[pos]
}

// Front returns the first code unit. The string must not be empty.
func (s String[A, C]) Front() C {
	if s.n == 0 {
		panic("inplace: Front on empty string")
	}
	return (&s).backing()[0]
}

// Back returns the last code unit. The string must not be empty.
func (s String[A, C]) Back() C {
	if s.n == 0 {
		panic("inplace: Back on empty string")
	}
	return (&s).backing()[s.n-1]
}

// View returns the logical content as a slice into the backing array.
// The slice is a borrow: it must not be written through, and it is only
// valid until the next mutation of s.
func (s *String[A, C]) View() []C {
	return s.backing()[:s.n:s.n]
}

// All returns a forward iterator over index/unit pairs of the content.
// It iterates a snapshot taken when All is called.
func (s String[A, C]) All() iter.Seq2[int, C] {
	return func(yield func(int, C) bool) {
		b := (&s).backing()
		for i := 0; i < s.n; i++ {
			if !yield(i, b[i]) {
				return
			}
		}
	}
}

// Backward returns a reverse iterator over index/unit pairs of the
// content, last unit first. It iterates a snapshot taken when Backward
// is called.
func (s String[A, C]) Backward() iter.Seq2[int, C] {
	return func(yield func(int, C) bool) {
		b := (&s).backing()
		for i := s.n - 1; i >= 0; i-- {
			if !yield(i, b[i]) {
				return
			}
		}
	}
}
