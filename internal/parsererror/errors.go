// Package parsererror defines the typed errors produced by the conversion
// pipeline. Handlers map these to exit codes and HTTP statuses.
package parsererror

import "fmt"

// ValidationError represents a rejected input before any conversion work,
// typically a file that is not a PDF. The HTTP layer surfaces it as a 400.
type ValidationError struct {
	FileName string
	Reason   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.FileName, e.Reason)
}

// ExtractionError represents a PDF that could not be opened or parsed.
type ExtractionError struct {
	FilePath string
	Err      error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract tables from '%s': %v", e.FilePath, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// DataError represents extracted data that cannot be transformed, such as
// a raw-row sequence with no header row to index columns by.
type DataError struct {
	Reason string
}

func (e *DataError) Error() string {
	return fmt.Sprintf("invalid statement data: %s", e.Reason)
}

// ConversionError wraps any failure of the end-to-end conversion with the
// underlying cause. It is the error the orchestrator returns to callers.
type ConversionError struct {
	FilePath string
	Msg      string
	Err      error
}

func (e *ConversionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("conversion failed for '%s': %s: %v", e.FilePath, e.Msg, e.Err)
	}
	return fmt.Sprintf("conversion failed for '%s': %s", e.FilePath, e.Msg)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}
