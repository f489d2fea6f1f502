package inplace

// Mutators validate the projected length before touching the buffer: a
// failed call leaves the receiver exactly as it was. Every successful
// call leaves the terminator slot and the whole tail zeroed.

// Clear removes all content. It never fails.
func (s *String[A, C]) Clear() {
	b := s.backing()
	var zero C
	for i := 0; i < s.n; i++ {
		b[i] = zero
	}
	s.n = 0
}

// Insert inserts count copies of unit at index, shifting the content at
// and after index right. It fails with a RangeError if index is not in
// [0, Len] or count is negative, and with a CapacityError if the
// projected length exceeds the capacity.
func (s *String[A, C]) Insert(index, count int, unit C) error {
	b := s.backing()
	if index < 0 || index > s.n || count < 0 {
		return &RangeError{Op: "insert", Index: index, Size: s.n}
	}
	// Subtraction form so a huge count cannot overflow past the guard.
	if count > len(b)-1-s.n {
		return &CapacityError{Op: "insert", Projected: s.n + count, Max: len(b) - 1}
	}
	projected := s.n + count
	copy(b[index+count:projected], b[index:s.n])
	for i := index; i < index+count; i++ {
		b[i] = unit
	}
	s.n = projected
	return nil
}

// Erase removes exactly count units starting at index, shifting the
// rest left. It fails with a RangeError unless the whole window
// [index, index+count) lies within the content; Erase(Len(), 0) is a
// legal no-op. Use EraseFrom to drop everything after an index.
func (s *String[A, C]) Erase(index, count int) error {
	if index < 0 || count < 0 || index > s.n || count > s.n-index {
		return &RangeError{Op: "erase", Index: index, Size: s.n}
	}
	b := s.backing()
	copy(b[index:], b[index+count:s.n])
	var zero C
	for i := s.n - count; i < s.n; i++ {
		b[i] = zero
	}
	s.n -= count
	return nil
}

// EraseFrom removes every unit at or after index. It fails with a
// RangeError if index is not in [0, Len].
func (s *String[A, C]) EraseFrom(index int) error {
	if index < 0 || index > s.n {
		return &RangeError{Op: "erase", Index: index, Size: s.n}
	}
	b := s.backing()
	var zero C
	for i := index; i < s.n; i++ {
		b[i] = zero
	}
	s.n = index
	return nil
}

// Push appends one unit. It fails with a CapacityError if the string is
// full.
func (s *String[A, C]) Push(unit C) error {
	b := s.backing()
	if s.n == len(b)-1 {
		return &CapacityError{Op: "push", Projected: s.n + 1, Max: len(b) - 1}
	}
	b[s.n] = unit
	s.n++
	return nil
}

// Pop removes and returns the last unit. The string must not be empty.
func (s *String[A, C]) Pop() C {
	if s.n == 0 {
		panic("inplace: Pop on empty string")
	}
	b := s.backing()
	u := b[s.n-1]
	var zero C
	b[s.n-1] = zero
	s.n--
	return u
}

// Append appends the units of view. Passing another string's View
// appends that string, whatever its capacity. It fails with a
// CapacityError if the projected length exceeds the capacity.
func (s *String[A, C]) Append(view []C) error {
	b := s.backing()
	projected := s.n + len(view)
	if projected > len(b)-1 {
		return &CapacityError{Op: "append", Projected: projected, Max: len(b) - 1}
	}
	copy(b[s.n:], view)
	s.n = projected
	return nil
}

// AppendString appends Go text under the same decoding rules as Parse.
// Nothing is written if the text does not fit.
func (s *String[A, C]) AppendString(str string) error {
	b := s.backing()
	n, err := decodeText[C](b[s.n:len(b)-1], s.n, str, "append")
	if err != nil {
		// decodeText stops before writing the overflowing unit, but may
		// have written earlier ones; restore the zero tail.
		var zero C
		for i := s.n; i < len(b)-1; i++ {
			b[i] = zero
		}
		return err
	}
	s.n += n
	return nil
}

// Resize sets the length to count, filling new slots with the zero unit
// when growing. It fails with a CapacityError if count exceeds the
// capacity and with a RangeError if count is negative.
func (s *String[A, C]) Resize(count int) error {
	var zero C
	return s.ResizeFill(count, zero)
}

// ResizeFill sets the length to count, filling new slots with unit when
// growing.
func (s *String[A, C]) ResizeFill(count int, unit C) error {
	b := s.backing()
	if count < 0 {
		return &RangeError{Op: "resize", Index: count, Size: s.n}
	}
	if count > len(b)-1 {
		return &CapacityError{Op: "resize", Projected: count, Max: len(b) - 1}
	}
	if count > s.n {
		for i := s.n; i < count; i++ {
			b[i] = unit
		}
	} else {
		var zero C
		for i := count; i < s.n; i++ {
			b[i] = zero
		}
	}
	s.n = count
	return nil
}

// Swap exchanges the contents of s and other. It never fails; only
// strings of the same capacity share a type, so no bound can be broken.
func (s *String[A, C]) Swap(other *String[A, C]) {
	s.buf, other.buf = other.buf, s.buf
	s.n, other.n = other.n, s.n
}

// Reserve validates that newCap fits the fixed capacity. The storage
// cannot grow; the method exists so the type can stand in for a
// growable string. It fails with a CapacityError if newCap exceeds Cap.
func (s *String[A, C]) Reserve(newCap int) error {
	if max := slots[A, C]() - 1; newCap > max {
		return &CapacityError{Op: "reserve", Projected: newCap, Max: max}
	}
	return nil
}

// Clip is a no-op; the capacity is fixed by the backing array type.
func (s *String[A, C]) Clip() {}
