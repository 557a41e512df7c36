// Package root contains the root command for the application
package root

import (
	"fjacquet/pdf2firefly/internal/categorizer"
	"fjacquet/pdf2firefly/internal/common"
	"fjacquet/pdf2firefly/internal/config"
	"fjacquet/pdf2firefly/internal/converter"
	"fjacquet/pdf2firefly/internal/fileutils"
	"fjacquet/pdf2firefly/internal/logging"
	"fjacquet/pdf2firefly/internal/pdfparser"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the application configuration loaded before any command runs
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "pdf2firefly",
		Short: "Convert PDF bank statements to Firefly III import CSV files.",
		Long: `pdf2firefly extracts transaction tables from PDF bank statements and
writes them as CSV files in the Firefly III import format. It can run as a
one-shot converter or as an HTTP service accepting uploads.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to pdf2firefly!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			var err error
			Cfg, err = config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
			}

			Log = config.ConfigureLoggingFromConfig(Cfg)
			common.SetLogger(logging.NewLogrusAdapterFromLogger(Log))
			fileutils.SetLogger(Log)

			if Cfg.CSV.Delimiter != "" {
				common.SetDelimiter([]rune(Cfg.CSV.Delimiter)[0])
			}
		},
	}
)

// GetLogger returns the shared logger wrapped in the logging abstraction.
func GetLogger() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}

// NewConverter builds the converter configured by the loaded Cfg: the real
// PDF extractor with the configured cell gap and, when enabled, the keyword
// categorizer loaded from the configured rules file.
func NewConverter() *converter.Converter {
	log := GetLogger()
	extractor := pdfparser.NewExtractorWithGap(log, Cfg.PDF.CellGap)

	var cats *categorizer.Categorizer
	if Cfg.Categories.Enabled {
		rules, err := categorizer.LoadRules(Cfg.Categories.File)
		if err != nil {
			Log.Warnf("Failed to load category rules, categories pass through unchanged: %v", err)
		} else {
			cats = categorizer.NewCategorizer(rules, log)
		}
	}

	return converter.New(extractor, cats, log)
}

// Init initializes the root command. Subcommands register themselves from
// main to keep this package free of import cycles.
func Init() {
	Cmd.CompletionOptions.DisableDefaultCmd = true
}
