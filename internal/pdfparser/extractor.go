package pdfparser

// TableExtractor defines the interface for extracting table rows from PDF
// files. This interface allows for dependency injection and makes the
// conversion pipeline testable by providing different implementations for
// production and testing.
type TableExtractor interface {
	// ExtractTables extracts all detected table rows from the PDF at the
	// given path, flattened across every page in document order. Each row
	// is an ordered slice of cell strings, including table header rows.
	// An empty result is not an error; failing to open or parse the file is.
	ExtractTables(pdfPath string) ([][]string, error)
}

// MockTableExtractor implements TableExtractor for testing purposes.
// It returns predefined rows instead of reading a PDF file.
type MockTableExtractor struct {
	MockRows [][]string
	MockErr  error
}

// NewMockTableExtractor creates a new MockTableExtractor with the given rows.
func NewMockTableExtractor(rows [][]string, err error) *MockTableExtractor {
	return &MockTableExtractor{
		MockRows: rows,
		MockErr:  err,
	}
}

// ExtractTables returns the predefined rows or error.
func (e *MockTableExtractor) ExtractTables(pdfPath string) ([][]string, error) {
	if e.MockErr != nil {
		return nil, e.MockErr
	}
	return e.MockRows, nil
}
