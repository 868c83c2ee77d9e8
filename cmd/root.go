// Package cmd is for command line interactions with the ggfid application
package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "ggfid",
	Short: `Check Golden Gate overhang sets against measured ligation frequencies.
Score junction fidelity, spot cross-ligation, and find better overhangs`,
	Version: "0.1.0",
}

// set flags shared by every subcommand
func init() {
	rootCmd.PersistentFlags().StringP("enzyme", "e", "BsaI", "enzyme generating the overhangs")
	rootCmd.PersistentFlags().StringP("out", "o", "", "path to write a JSON result to")

	viper.BindPFlag("enzyme", rootCmd.PersistentFlags().Lookup("enzyme"))
	viper.BindPFlag("out", rootCmd.PersistentFlags().Lookup("out"))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}
