package inplace

import "fmt"

// Concat returns the concatenation of a and b as a new string backed by
// AR. The capacity of AR must be exactly Cap(A1) + Cap(A2), which makes
// the operation total: the result always fits by construction. A
// mismatched result type is a plumbing error and panics.
//
//	a := inplace.MustFromString[[8]byte]("Hello, ")
//	b := inplace.MustFromString[[7]byte]("World!")
//	c := inplace.Concat[[14]byte](a, b) // capacity 7+6 = 13
func Concat[AR, A1, A2 any, C CodeUnit](a String[A1, C], b String[A2, C]) String[AR, C] {
	var r String[AR, C]
	rb := r.backing()
	want := (slots[A1, C]() - 1) + (slots[A2, C]() - 1)
	if len(rb)-1 != want {
		panic(fmt.Sprintf("inplace: Concat result capacity %d, want %d", len(rb)-1, want))
	}
	n := copy(rb, (&a).backing()[:a.n])
	n += copy(rb[n:], (&b).backing()[:b.n])
	r.n = n
	return r
}
