// Package convert handles the single-file conversion command
package convert

import (
	"fjacquet/pdf2firefly/cmd/root"
	"fjacquet/pdf2firefly/internal/converter"
	"fjacquet/pdf2firefly/internal/fileutils"

	"github.com/spf13/cobra"
)

// Cmd represents the convert command
var Cmd = &cobra.Command{
	Use:   "convert <input_pdf> [output_csv]",
	Short: "Convert a PDF bank statement to CSV",
	Long: `Convert a single PDF bank statement to a Firefly III import CSV.

When no output path is given the CSV is written beside the input as
<input stem>_firefly.csv.

Example:
  pdf2firefly convert statement.pdf
  pdf2firefly convert statement.pdf out/statement.csv`,
	Args: cobra.RangeArgs(1, 2),
	Run:  convertFunc,
}

func convertFunc(cmd *cobra.Command, args []string) {
	inputFile := args[0]

	outputFile := converter.DefaultOutputPath(inputFile)
	if len(args) > 1 {
		outputFile = args[1]
	}

	if !fileutils.FileExists(inputFile) {
		root.Log.Fatalf("Input file does not exist: %s", inputFile)
	}

	root.Log.Infof("Processing: %s", inputFile)

	conv := root.NewConverter()
	transactions, err := conv.Convert(inputFile, outputFile)
	if err != nil {
		root.Log.Fatalf("Error converting to CSV: %v", err)
	}

	root.Log.Infof("Processed %d transactions", len(transactions))
	root.Log.Infof("Saved to: %s", outputFile)
}
