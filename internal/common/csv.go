// Package common provides the shared CSV reading and writing used by the
// converter and the HTTP layer.
package common

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"

	"fjacquet/pdf2firefly/internal/logging"
	"fjacquet/pdf2firefly/internal/models"
)

var log = logging.GetLogger()

// Delimiter is the CSV output delimiter. Comma by default; configurable via
// SetDelimiter for consumers that import semicolon-delimited files.
var Delimiter rune = ','

// SetDelimiter sets the delimiter for CSV output.
func SetDelimiter(delim rune) {
	Delimiter = delim
}

// SetLogger sets a configured logger for this package.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// WriteTransactionsToCSV writes transactions to a CSV file in the fixed
// Firefly III column order (Date, Description, Withdrawal, Deposit,
// Category, Notes). Parent directories are created as needed.
func WriteTransactionsToCSV(transactions []models.Transaction, csvFile string) error {
	if transactions == nil {
		return fmt.Errorf("cannot write nil transactions to CSV")
	}

	log.Info("Writing transactions to CSV file",
		logging.Field{Key: logging.FieldFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		log.WithError(err).Error("Failed to create directory")
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		log.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(transactions, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		log.WithError(err).Error("Failed to marshal transactions to CSV")
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	return nil
}

// MarshalTransactionsToString renders transactions as CSV text using the
// configured delimiter. The JSON endpoint builds its csv_content field from
// this, so the embedded CSV always matches the records in the same response.
func MarshalTransactionsToString(transactions []models.Transaction) (string, error) {
	var sb strings.Builder
	csvWriter := csv.NewWriter(&sb)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(transactions, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return "", fmt.Errorf("error marshalling CSV data: %w", err)
	}
	return sb.String(), nil
}
