// Package batch handles batch processing of statement files
package batch

import (
	"path/filepath"

	"fjacquet/pdf2firefly/cmd/root"
	"fjacquet/pdf2firefly/internal/converter"
	"fjacquet/pdf2firefly/internal/fileutils"

	"github.com/spf13/cobra"
)

var (
	inputDir  string
	outputDir string
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Convert every PDF statement in a directory",
	Long: `Convert all PDF files in an input directory, writing one
<stem>_firefly.csv per statement into the output directory.

Example:
  pdf2firefly batch -i statements/ -o csv/`,
	Run: batchFunc,
}

func init() {
	Cmd.Flags().StringVarP(&inputDir, "input", "i", "", "Directory containing PDF statements")
	Cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Directory to write CSV files into")
	_ = Cmd.MarkFlagRequired("input")
	_ = Cmd.MarkFlagRequired("output")
}

func batchFunc(cmd *cobra.Command, args []string) {
	files, err := fileutils.ListFilesWithExtension(inputDir, ".pdf")
	if err != nil {
		root.Log.Fatalf("Error listing input directory: %v", err)
	}
	if len(files) == 0 {
		root.Log.Fatalf("No PDF files found in %s", inputDir)
	}

	if err := fileutils.EnsureDirectoryExists(outputDir); err != nil {
		root.Log.Fatalf("Error creating output directory: %v", err)
	}

	conv := root.NewConverter()
	failed := 0

	for _, inputFile := range files {
		outputFile := filepath.Join(outputDir, fileutils.Stem(inputFile)+converter.OutputSuffix)

		root.Log.Infof("Processing: %s", inputFile)
		if _, err := conv.Convert(inputFile, outputFile); err != nil {
			root.Log.Errorf("Failed to convert %s: %v", inputFile, err)
			failed++
			continue
		}
		root.Log.Infof("Saved to: %s", outputFile)
	}

	if failed > 0 {
		root.Log.Fatalf("Batch finished with %d of %d files failed", failed, len(files))
	}
	root.Log.Infof("Batch finished: %d files converted", len(files))
}
