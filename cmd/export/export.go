// Package export handles the transaction CSV export command
package export

import (
	"sort"

	"github.com/spf13/cobra"

	"pigapp/cib-statement/cmd/root"
	csvexport "pigapp/cib-statement/internal/export"
	"pigapp/cib-statement/internal/models"
)

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export [path]",
	Short: "Export parsed transactions to CSV",
	Long: `Parse a CIB statement PDF, or every PDF in a directory, and write
all transaction records to a flat CSV file for downstream finance tooling.`,
	Run: exportFunc,
}

func exportFunc(cmd *cobra.Command, args []string) {
	input := root.SharedFlags.Input
	if input == "" && len(args) > 0 {
		input = args[0]
	}
	if input == "" {
		root.Log.Fatal("No input given, use --input or pass a path")
	}

	output := root.SharedFlags.Output
	if output == "" {
		output = "transactions.csv"
	}

	parser := root.NewStatementParser()
	summaries, err := parser.ParsePath(input)
	if err != nil {
		root.Log.WithError(err).Fatal("Parsing failed")
	}

	// Stable file order so repeated exports are byte-identical.
	names := make([]string, 0, len(summaries))
	for name := range summaries {
		names = append(names, name)
	}
	sort.Strings(names)

	var records []models.TransactionRecord
	for _, name := range names {
		records = append(records, summaries[name].AllTransactions...)
	}

	if err := csvexport.WriteTransactionsToCSV(records, output, root.Logger()); err != nil {
		root.Log.WithError(err).Fatal("CSV export failed")
	}
	root.Log.WithField("file", output).Info("Transaction export completed successfully!")
}
