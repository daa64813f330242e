// Package parse handles the statement parsing command
package parse

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pigapp/cib-statement/cmd/root"
	"pigapp/cib-statement/internal/fileutils"
)

// Cmd represents the parse command
var Cmd = &cobra.Command{
	Use:   "parse [path]",
	Short: "Parse a statement PDF or directory into summary JSON",
	Long: `Parse a CIB statement PDF, or every PDF in a directory, into a
categorized summary. A single PDF yields one summary; a directory yields
a mapping from file base name to summary.`,
	Run: parseFunc,
}

func parseFunc(cmd *cobra.Command, args []string) {
	input := root.SharedFlags.Input
	if input == "" && len(args) > 0 {
		input = args[0]
	}
	if input == "" {
		root.Log.Fatal("No input given, use --input or pass a path")
	}

	parser := root.NewStatementParser()

	summaries, err := parser.ParsePath(input)
	if err != nil {
		root.Log.WithError(err).Fatal("Parsing failed")
	}

	// A single PDF yields the bare summary rather than a one-entry map.
	var payload interface{} = summaries
	if !fileutils.DirectoryExists(input) {
		for _, s := range summaries {
			payload = s
		}
	}

	if err := writeJSON(payload, root.SharedFlags.Output); err != nil {
		root.Log.WithError(err).Fatal("Failed to write output")
	}
	root.Log.Info("Statement parsing completed successfully!")
}

func writeJSON(payload interface{}, outputFile string) error {
	var (
		data []byte
		err  error
	)
	if root.Cfg == nil || root.Cfg.Output.Indent {
		data, err = json.MarshalIndent(payload, "", "  ")
	} else {
		data, err = json.Marshal(payload)
	}
	if err != nil {
		return fmt.Errorf("error marshaling summary: %w", err)
	}

	if outputFile == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(outputFile, data, 0600); err != nil {
		return fmt.Errorf("error writing output file: %w", err)
	}
	return nil
}
