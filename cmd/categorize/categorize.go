// Package categorize handles the one-off categorization command
package categorize

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"pigapp/cib-statement/cmd/root"
)

var (
	// Description is the transaction description to categorize
	Description string

	// Extra1 and Extra2 are optional continuation lines included in the
	// keyword scoring, as during statement parsing
	Extra1 string
	Extra2 string
)

// Cmd represents the categorize command
var Cmd = &cobra.Command{
	Use:   "categorize [description]",
	Short: "Categorize a single transaction description",
	Long: `Categorize a transaction description with the same keyword table
used during statement parsing. Useful for checking how a transaction
would be classified.`,
	Run: categorizeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&Description, "description", "d", "", "Transaction description")
	Cmd.Flags().StringVar(&Extra1, "extra1", "", "First continuation line")
	Cmd.Flags().StringVar(&Extra2, "extra2", "", "Second continuation line")
}

func categorizeFunc(cmd *cobra.Command, args []string) {
	if Description == "" && len(args) > 0 {
		Description = strings.Join(args, " ")
	}
	if Description == "" {
		root.Log.Fatal("No description given, use --description or pass it as an argument")
	}

	cat := root.NewCategorizer()
	label := cat.Categorize(Description, Extra1, Extra2)
	fmt.Printf("Category: %s\n", label)
}
