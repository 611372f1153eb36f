package ssztypes

import "fmt"

// LengthError reports a sequence length that violates a container's capacity
// invariant. For failed appends Len is the attempted new length, not the
// length before the append.
type LengthError struct {
	Len uint64 // offending or attempted length
	Max uint64 // the container's capacity or limit
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("ssztypes: length %d out of bounds for capacity %d", e.Len, e.Max)
}
