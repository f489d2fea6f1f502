package inplace

// NotFound is returned by the search methods when no match exists in
// the window.
const NotFound = -1

// Find returns the lowest index >= from where sub occurs, or NotFound.
// An empty sub matches at any position up to Len. Positions past the
// content simply yield NotFound.
func (s String[A, C]) Find(sub []C, from int) int {
	if from < 0 {
		from = 0
	}
	if len(sub) == 0 {
		if from <= s.n {
			return from
		}
		return NotFound
	}
	b := (&s).backing()
	// Subtraction form so a huge from cannot overflow the bound.
	for i := from; i <= s.n-len(sub); i++ {
		if matchAt(b, i, sub) {
			return i
		}
	}
	return NotFound
}

// FindLast returns the highest index <= before where sub occurs, or
// NotFound. Pass Len (or any larger value) to search the whole string.
func (s String[A, C]) FindLast(sub []C, before int) int {
	if before < 0 {
		return NotFound
	}
	if len(sub) == 0 {
		return min(before, s.n)
	}
	start := min(before, s.n-len(sub))
	b := (&s).backing()
	for i := start; i >= 0; i-- {
		if matchAt(b, i, sub) {
			return i
		}
	}
	return NotFound
}

// FindUnit returns the lowest index >= from holding unit, or NotFound.
func (s String[A, C]) FindUnit(unit C, from int) int {
	if from < 0 {
		from = 0
	}
	b := (&s).backing()
	for i := from; i < s.n; i++ {
		if b[i] == unit {
			return i
		}
	}
	return NotFound
}

// FindLastUnit returns the highest index <= before holding unit, or
// NotFound.
func (s String[A, C]) FindLastUnit(unit C, before int) int {
	if before < 0 {
		return NotFound
	}
	b := (&s).backing()
	for i := min(before, s.n-1); i >= 0; i-- {
		if b[i] == unit {
			return i
		}
	}
	return NotFound
}

// FindAny returns the lowest index >= from holding any unit of set, or
// NotFound.
func (s String[A, C]) FindAny(set []C, from int) int {
	if from < 0 {
		from = 0
	}
	b := (&s).backing()
	for i := from; i < s.n; i++ {
		for _, u := range set {
			if b[i] == u {
				return i
			}
		}
	}
	return NotFound
}

func matchAt[C CodeUnit](b []C, at int, sub []C) bool {
	for j, u := range sub {
		if b[at+j] != u {
			return false
		}
	}
	return true
}
