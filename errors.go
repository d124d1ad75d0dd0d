package outline

import (
	"errors"
	"fmt"
)

// ErrStructuralViolation is wrapped by errors reporting that an edit would
// have produced an invalid contour.
var ErrStructuralViolation = errors.New("outline: structural violation")

// StructuralError describes an edit that was refused because the contour
// doesn't have the structure the edit requires. The contour is left
// unmodified.
type StructuralError struct {
	Op string
	// Index of the offending segment.
	Index  int
	Reason string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("outline: %s: segment %d: %s", e.Op, e.Index, e.Reason)
}

func (e *StructuralError) Unwrap() error {
	return ErrStructuralViolation
}
