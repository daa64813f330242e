// Package root contains the root command for the application
package root

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"pigapp/cib-statement/internal/categorizer"
	"pigapp/cib-statement/internal/cibparser"
	"pigapp/cib-statement/internal/config"
	"pigapp/cib-statement/internal/fileutils"
	"pigapp/cib-statement/internal/logging"
	"pigapp/cib-statement/internal/models"
	"pigapp/cib-statement/internal/pdftext"
	"pigapp/cib-statement/internal/store"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the loaded application configuration
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "cib-statement",
		Short: "A CLI tool to parse CIB bank statement PDFs into categorized summaries.",
		Long: `cib-statement parses CIB bank statement PDFs into structured
transaction records, categorizes them by keyword scoring and produces
per-statement aggregate summaries.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to cib-statement!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.WithError(err).Fatal("Invalid configuration")
			}
			Cfg = cfg
			Log = config.ConfigureLoggingFromConfig(cfg)
			logging.SetLogger(logging.NewLogrusAdapterFromLogger(Log))
			fileutils.SetLogger(Log)
		},
	}

	// SharedFlags are accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input PDF file or directory")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file (default: stdout)")
}

// Logger returns the shared logger behind the logging abstraction.
func Logger() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}

// NewCategorizer builds the categorizer from configuration: the YAML
// keyword table when one is configured, the built-in table otherwise,
// and the Gemini fallback when enabled.
func NewCategorizer() *categorizer.Categorizer {
	logger := Logger()

	var table []models.CategoryKeywords
	if Cfg != nil && Cfg.Categories.File != "" {
		loaded, err := store.NewKeywordStore(Cfg.Categories.File, logger).LoadCategories()
		if err != nil {
			logger.WithError(err).Warn("Failed to load category keyword table, using built-in table")
		} else {
			table = loaded
		}
	}

	cat := categorizer.New(table, logger)

	if Cfg != nil && Cfg.AI.Enabled {
		strategy, err := categorizer.NewGeminiStrategy(
			Cfg.AI.APIKey,
			Cfg.AI.Model,
			cat.Labels(),
			time.Duration(Cfg.AI.TimeoutSeconds)*time.Second,
			logger)
		if err != nil {
			logger.WithError(err).Warn("AI fallback unavailable, keyword scoring only")
		} else {
			cat.SetFallback(strategy)
		}
	}

	return cat
}

// NewStatementParser wires the production statement parser.
func NewStatementParser() *cibparser.Parser {
	logger := Logger()
	return cibparser.New(pdftext.NewLibraryExtractor(logger), NewCategorizer(), logger)
}
