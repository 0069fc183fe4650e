package document

import (
	"errors"
	"fmt"
)

// ErrInvalidInput covers empty files and missing or extension-less filenames.
// It is always raised before any extraction work happens.
var ErrInvalidInput = errors.New("invalid input")

// UnsupportedFormatError is returned when a filename carries an extension
// that no extractor handles.
type UnsupportedFormatError struct {
	Ext string // without leading dot
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported document type: .%s", e.Ext)
}

// ExtractionError wraps a parser failure for one of the supported formats.
type ExtractionError struct {
	Format Format
	Err    error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract %s content: %v", e.Format, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }
