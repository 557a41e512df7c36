// Package converter orchestrates the PDF statement conversion pipeline:
// table extraction, row transformation, category refinement and CSV output.
package converter

import (
	"path/filepath"
	"strings"

	"fjacquet/pdf2firefly/internal/categorizer"
	"fjacquet/pdf2firefly/internal/common"
	"fjacquet/pdf2firefly/internal/logging"
	"fjacquet/pdf2firefly/internal/models"
	"fjacquet/pdf2firefly/internal/parsererror"
	"fjacquet/pdf2firefly/internal/pdfparser"
	"fjacquet/pdf2firefly/internal/statement"
)

// OutputSuffix is appended to the input file stem to form the default
// output file name.
const OutputSuffix = "_firefly.csv"

// Converter converts PDF bank statements into Firefly III import CSVs.
// Each conversion is independent; the Converter holds no per-file state and
// may be shared across concurrent requests.
type Converter struct {
	extractor pdfparser.TableExtractor
	cats      *categorizer.Categorizer
	log       logging.Logger
}

// New creates a Converter. A nil extractor gets the real PDF extractor and a
// nil categorizer passes categories through unchanged.
func New(extractor pdfparser.TableExtractor, cats *categorizer.Categorizer, log logging.Logger) *Converter {
	if log == nil {
		log = logging.GetLogger()
	}
	if extractor == nil {
		extractor = pdfparser.NewExtractor(log)
	}
	if cats == nil {
		cats = categorizer.NewCategorizer(nil, log)
	}
	return &Converter{extractor: extractor, cats: cats, log: log}
}

// DefaultOutputPath returns "<input stem>_firefly.csv" beside the input file.
func DefaultOutputPath(inputFile string) string {
	dir := filepath.Dir(inputFile)
	base := filepath.Base(inputFile)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, stem+OutputSuffix)
}

// Convert runs the full pipeline for one statement and writes the resulting
// records to outputFile. The records are also returned so callers that need
// them (the JSON endpoint) do not have to read the file back.
//
// Extraction failures propagate as *parsererror.ExtractionError. Zero
// extracted rows and any transformation or write failure yield a
// *parsererror.ConversionError.
func (c *Converter) Convert(inputFile, outputFile string) ([]models.Transaction, error) {
	c.log.Info("Processing statement",
		logging.Field{Key: logging.FieldInputFile, Value: inputFile})

	rawRows, err := c.extractor.ExtractTables(inputFile)
	if err != nil {
		return nil, err
	}

	if len(rawRows) == 0 {
		return nil, &parsererror.ConversionError{
			FilePath: inputFile,
			Msg:      "No tables found in PDF",
		}
	}

	c.log.Info("Extracted rows from PDF",
		logging.Field{Key: logging.FieldRows, Value: len(rawRows)})

	table, err := statement.NewTable(rawRows)
	if err != nil {
		return nil, &parsererror.ConversionError{
			FilePath: inputFile,
			Msg:      "failed to transform extracted data",
			Err:      err,
		}
	}

	transactions := table.Transactions()
	c.cats.Apply(transactions)

	c.log.Info("Processed transactions",
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})

	if err := common.WriteTransactionsToCSV(transactions, outputFile); err != nil {
		return nil, &parsererror.ConversionError{
			FilePath: inputFile,
			Msg:      "failed to write output CSV",
			Err:      err,
		}
	}

	c.log.Info("Saved output CSV",
		logging.Field{Key: logging.FieldOutputFile, Value: outputFile})

	return transactions, nil
}
