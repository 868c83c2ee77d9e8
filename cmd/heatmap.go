package cmd

import (
	"ggfid/internal/ggfid"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// heatmapCmd represents the heatmap command
var heatmapCmd = &cobra.Command{
	Use:   "heatmap [overhangs]",
	Short: "Build the cross-ligation heatmap for an overhang set",
	Long: `Build the pairwise ligation-frequency matrix for the overhangs passed as
arguments. Each row is an overhang attempting ligation, each column is the
reverse-complement strand another overhang contributes. Off-diagonal signal
is cross-ligation: fragments joining in the wrong order.

Cross-ligations above 1% of the row's correct frequency are flagged, worst
first. Pass --out to also write the heatmap and its renderable geometry
(cells, labels, legend) as JSON for a downstream renderer.`,
	Example: "  ggfid heatmap GGAG AATG GCTT --enzyme BsaI --out heatmap.json",
	Run:     ggfid.HeatmapCmd,
}

// set flags
func init() {
	rootCmd.AddCommand(heatmapCmd)

	heatmapCmd.Flags().StringP("scale", "s", "viridis", "color scale: viridis or stoplight")
	heatmapCmd.Flags().Float64("cell-size", 40, "cell edge length in renderer units")
	heatmapCmd.Flags().Float64("padding", 2, "gap between cells in renderer units")

	viper.BindPFlag("scale", heatmapCmd.Flags().Lookup("scale"))
	viper.BindPFlag("cell-size", heatmapCmd.Flags().Lookup("cell-size"))
	viper.BindPFlag("padding", heatmapCmd.Flags().Lookup("padding"))
}
