package cmd

import (
	"ggfid/internal/ggfid"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// swapCmd represents the swap command
var swapCmd = &cobra.Command{
	Use:   "swap [overhangs]",
	Short: "Suggest replacement overhangs for a weak junction",
	Long: `Search the enzyme's full overhang universe for replacements for the overhang
at --index. Each candidate is scored by re-running the whole-assembly fidelity
computation with the substitution in place, since changing one overhang
changes every other junction's interaction totals.

Candidates already in the set, their reverse complements, and palindromic
overhangs are excluded.`,
	Example: "  ggfid swap GGAG AATG GCTT --index 1 --enzyme BsaI --top 5",
	Run:     ggfid.SwapCmd,
}

// set flags
func init() {
	rootCmd.AddCommand(swapCmd)

	swapCmd.Flags().IntP("index", "i", 0, "position of the overhang to replace")
	swapCmd.Flags().IntP("top", "t", 5, "number of alternatives to suggest")

	viper.BindPFlag("index", swapCmd.Flags().Lookup("index"))
	viper.BindPFlag("top", swapCmd.Flags().Lookup("top"))
}
