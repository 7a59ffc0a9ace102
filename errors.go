package xlshift

import "fmt"

// MalformedRefError reports a string that failed to parse as a cell or
// range reference.
type MalformedRefError struct {
	Ref    string
	Reason string
}

func (e *MalformedRefError) Error() string {
	return fmt.Sprintf("malformed reference %q: %s", e.Ref, e.Reason)
}

func malformed(ref, reason string) *MalformedRefError {
	return &MalformedRefError{Ref: ref, Reason: reason}
}

// MissingCellError reports a read of a cell reference that holds no cell.
type MissingCellError struct {
	Ref string
}

func (e *MissingCellError) Error() string {
	return fmt.Sprintf("no cell at %s", e.Ref)
}
