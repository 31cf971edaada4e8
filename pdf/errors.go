package pdf

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInputNotFound indicates the source path does not exist or is not readable.
	ErrInputNotFound = errors.New("input file not found")

	// ErrInvalidInputType indicates the source path exists but is not a PDF document.
	ErrInvalidInputType = errors.New("input file is not a PDF document")
)

// RangeError reports a page range that cannot be satisfied by the source
// document. It carries the offending bounds and the actual page count so
// callers can build an actionable message.
type RangeError struct {
	Start      int
	End        int
	TotalPages int
	Reason     string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid page range %d-%d: %s (total pages: %d)", e.Start, e.End, e.Reason, e.TotalPages)
}

// SourcePageError reports a source page that could not be read. Index is
// the 0-indexed page position in the source document.
type SourcePageError struct {
	Index int
	Err   error
}

func (e *SourcePageError) Error() string {
	return fmt.Sprintf("could not read source page at index %d: %v", e.Index, e.Err)
}

func (e *SourcePageError) Unwrap() error {
	return e.Err
}

// OutputWriteError reports a destination that could not be created or written.
type OutputWriteError struct {
	Path string
	Err  error
}

func (e *OutputWriteError) Error() string {
	return fmt.Sprintf("could not write output file '%s': %v", e.Path, e.Err)
}

func (e *OutputWriteError) Unwrap() error {
	return e.Err
}
