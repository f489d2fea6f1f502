package inplace

// Equal reports whether a and b hold the same content, unit by unit.
// The capacities of the two strings need not match. Strings of the same
// type can also be compared with == directly.
func Equal[A1, A2 any, C CodeUnit](a String[A1, C], b String[A2, C]) bool {
	if a.n != b.n {
		return false
	}
	ab := (&a).backing()
	bb := (&b).backing()
	for i := 0; i < a.n; i++ {
		if ab[i] != bb[i] {
			return false
		}
	}
	return true
}

// Compare orders a and b lexicographically by content, returning -1, 0
// or +1. Unused capacity never participates.
func Compare[A1, A2 any, C CodeUnit](a String[A1, C], b String[A2, C]) int {
	ab := (&a).backing()
	bb := (&b).backing()
	n := min(a.n, b.n)
	for i := 0; i < n; i++ {
		switch {
		case ab[i] < bb[i]:
			return -1
		case ab[i] > bb[i]:
			return 1
		}
	}
	switch {
	case a.n < b.n:
		return -1
	case a.n > b.n:
		return 1
	}
	return 0
}

// EqualUnits reports whether the content equals view, unit by unit.
func (s String[A, C]) EqualUnits(view []C) bool {
	if s.n != len(view) {
		return false
	}
	b := (&s).backing()
	for i, u := range view {
		if b[i] != u {
			return false
		}
	}
	return true
}
