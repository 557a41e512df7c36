// Package pdfparser extracts tabular rows from PDF bank statements.
package pdfparser

import (
	"fmt"
	"strings"

	"github.com/dslipak/pdf"

	"fjacquet/pdf2firefly/internal/logging"
	"fjacquet/pdf2firefly/internal/parsererror"
)

// DefaultCellGap is the horizontal distance, in PDF points, that separates
// two text fragments into different table cells. Statement layouts in the
// wild keep columns well over this far apart.
const DefaultCellGap = 12.0

// wordGap is the fragment distance treated as a space inside a single cell.
const wordGap = 1.5

// Extractor extracts table rows from PDF files using in-process text
// positioning. Fragments on the same visual row are clustered into cells
// by the horizontal gaps between them.
type Extractor struct {
	cellGap float64
	log     logging.Logger
}

// NewExtractor creates an Extractor with the default cell gap.
func NewExtractor(log logging.Logger) *Extractor {
	return NewExtractorWithGap(log, DefaultCellGap)
}

// NewExtractorWithGap creates an Extractor with a custom cell gap. A gap of
// zero or less falls back to the default.
func NewExtractorWithGap(log logging.Logger, cellGap float64) *Extractor {
	if cellGap <= 0 {
		cellGap = DefaultCellGap
	}
	if log == nil {
		log = logging.GetLogger()
	}
	return &Extractor{cellGap: cellGap, log: log}
}

// ExtractTables opens the PDF at pdfPath, walks every page and returns all
// detected table rows flattened into one ordered sequence. Header rows of
// each table are included; the caller decides what to do with them.
//
// An unreadable or unparsable file yields a *parsererror.ExtractionError.
// A readable PDF with no tabular text yields an empty slice and no error.
func (e *Extractor) ExtractTables(pdfPath string) (rows [][]string, err error) {
	// The underlying reader panics on some malformed files instead of
	// returning an error.
	defer func() {
		if r := recover(); r != nil {
			rows = nil
			err = &parsererror.ExtractionError{
				FilePath: pdfPath,
				Err:      fmt.Errorf("malformed PDF: %v", r),
			}
		}
	}()

	reader, err := pdf.Open(pdfPath)
	if err != nil {
		return nil, &parsererror.ExtractionError{FilePath: pdfPath, Err: err}
	}

	totalPages := reader.NumPage()
	e.log.Debug("Scanning PDF pages",
		logging.Field{Key: logging.FieldFile, Value: pdfPath},
		logging.Field{Key: logging.FieldPages, Value: totalPages})

	for pageNum := 1; pageNum <= totalPages; pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		pageRows, err := page.GetTextByRow()
		if err != nil {
			return nil, &parsererror.ExtractionError{
				FilePath: pdfPath,
				Err:      fmt.Errorf("page %d: %w", pageNum, err),
			}
		}

		for _, row := range pageRows {
			cells := e.clusterCells(row.Content)
			if len(cells) > 0 {
				rows = append(rows, cells)
			}
		}
	}

	e.log.Info("Extracted rows from PDF",
		logging.Field{Key: logging.FieldFile, Value: pdfPath},
		logging.Field{Key: logging.FieldRows, Value: len(rows)})

	return rows, nil
}

// clusterCells groups the positioned text fragments of one visual row into
// cells. Fragments arrive sorted by X; a horizontal gap wider than the cell
// gap starts a new cell, a smaller gap becomes a space within the cell.
func (e *Extractor) clusterCells(fragments []pdf.Text) []string {
	var cells []string
	var cell strings.Builder
	prevEnd := 0.0

	flush := func() {
		text := strings.TrimSpace(cell.String())
		if text != "" {
			cells = append(cells, text)
		}
		cell.Reset()
	}

	for i, frag := range fragments {
		if i > 0 {
			gap := frag.X - prevEnd
			if gap > e.cellGap {
				flush()
			} else if gap > wordGap {
				cell.WriteByte(' ')
			}
		}
		cell.WriteString(frag.S)
		prevEnd = frag.X + frag.W
	}
	flush()

	return cells
}
