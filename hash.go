package inplace

import (
	"hash/maphash"
	"unsafe"
)

// contentSeed keys every content hash produced in this process. A fresh
// seed per process keeps the hash unpredictable without sacrificing the
// equal-content, equal-hash guarantee.
var contentSeed = maphash.MakeSeed()

// Hash returns a 64-bit hash of the logical content. Two strings with
// equal content hash identically regardless of their capacities; the
// unused tail never participates. The value is stable within a process
// only.
func (s String[A, C]) Hash() uint64 {
	if s.n == 0 {
		return maphash.Bytes(contentSeed, nil)
	}
	b := (&s).backing()
	raw := unsafe.Slice((*byte)(unsafe.Pointer(&b[0])), s.n*int(unsafe.Sizeof(b[0])))
	return maphash.Bytes(contentSeed, raw)
}
