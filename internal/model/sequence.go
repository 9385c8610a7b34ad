package model

// Sequence hands out monotonically increasing order and shift numbers.
// The session owns one Sequence per aggregate kind and passes the drawn
// number into the constructor, so numbering is explicit and deterministic
// instead of living in hidden package-level state.  Numbers start at 1
// and are never reused within a run.
type Sequence struct {
	last uint64
}

// Next returns the next number in the sequence.
func (s *Sequence) Next() uint64 {
	s.last++
	return s.last
}
