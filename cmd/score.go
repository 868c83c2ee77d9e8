package cmd

import (
	"ggfid/internal/ggfid"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// scoreCmd represents the score command
var scoreCmd = &cobra.Command{
	Use:   "score [overhangs]",
	Short: "Score per-junction and whole-assembly fidelity",
	Long: `Score each overhang's odds of ligating its intended partner rather than
anything else in the set, then multiply the per-junction fidelities into a
whole-assembly success estimate. Also estimates how many colonies to screen
to find a correct assembly.`,
	Example: "  ggfid score GGAG AATG GCTT --enzyme BsaI",
	Run:     ggfid.ScoreCmd,
}

// set flags
func init() {
	rootCmd.AddCommand(scoreCmd)

	scoreCmd.Flags().Int("screening-factor", 10, "colonies per unit of inverse fidelity")

	viper.BindPFlag("screening-factor", scoreCmd.Flags().Lookup("screening-factor"))
}
