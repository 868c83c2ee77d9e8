package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// docsCmd regenerates the Markdown CLI documentation under ./docs
var docsCmd = &cobra.Command{
	Use:    "docs",
	Short:  "Generate Markdown docs for every command",
	Hidden: true,
	Run: func(cmd *cobra.Command, args []string) {
		if err := doc.GenMarkdownTree(rootCmd, "./docs"); err != nil {
			log.Fatalf("%v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(docsCmd)
}
