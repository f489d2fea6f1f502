package inplace_test

import (
	"testing"

	"github.com/zoobzio/inplace"
)

func TestEqual_CrossCapacity(t *testing.T) {
	a, _ := inplace.FromString[[14]byte]("Hello")
	b, _ := inplace.FromString[[32]byte]("Hello")
	c, _ := inplace.FromString[[32]byte]("World")

	if !inplace.Equal(a, b) {
		t.Error("equal content across capacities should compare equal")
	}
	if inplace.Equal(a, c) {
		t.Error("different content should not compare equal")
	}
}

func TestCompare_Lexicographic(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"a", "", 1},
		{"", "a", -1},
		{"abc", "abc", 0},
		{"abc", "abd", -1},
		{"abd", "abc", 1},
		{"ab", "abc", -1},
		{"abc", "ab", 1},
	}
	for _, tt := range tests {
		a, err := inplace.FromString[[8]byte](tt.a)
		if err != nil {
			t.Fatalf("FromString(%q) error: %v", tt.a, err)
		}
		b, err := inplace.FromString[[16]byte](tt.b)
		if err != nil {
			t.Fatalf("FromString(%q) error: %v", tt.b, err)
		}
		if got := inplace.Compare(a, b); got != tt.want {
			t.Errorf("Compare(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestEqualUnits(t *testing.T) {
	s := helloWorld(t)

	if !s.EqualUnits([]byte("Hello, World!")) {
		t.Error("EqualUnits should match the content")
	}
	if s.EqualUnits([]byte("Hello, World")) {
		t.Error("EqualUnits should reject a prefix")
	}
}
