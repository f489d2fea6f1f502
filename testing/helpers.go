// Package testing provides test utilities for inplace strings.
package testing

import (
	"github.com/zoobzio/inplace"
)

// Word is a capacity-13 byte string, sized for the "Hello, World!"
// scenarios used across the test suites.
type Word = inplace.String[[14]byte, byte]

// WideWord is the capacity-13 rune-string counterpart of Word.
type WideWord = inplace.String[[14]rune, rune]

// HelloWorld returns a Word holding "Hello, World!", filling its
// capacity exactly.
func HelloWorld() Word {
	return inplace.MustFromString[[14]byte]("Hello, World!")
}

// Units converts Go text to byte units for search and append arguments.
func Units(s string) []byte {
	return []byte(s)
}

// WideUnits converts Go text to rune units.
func WideUnits(s string) []rune {
	return []rune(s)
}
