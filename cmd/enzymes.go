package cmd

import (
	"ggfid/internal/ggfid"

	"github.com/spf13/cobra"
)

// enzymesCmd is for listing out all the enzymes with ligation data. Useful
// for if the user doesn't know which enzymes are available
var enzymesCmd = &cobra.Command{
	Use:   "enzymes",
	Short: "List enzymes with ligation-frequency data",
	Long: `Lists the enzymes in the ligation dataset along with their synonyms and the
number of overhangs each can generate.

	<Name>: <Aliases>: <Overhang count>`,
	Run: ggfid.EnzymesCmd,
}

func init() {
	rootCmd.AddCommand(enzymesCmd)
}
