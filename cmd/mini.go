package cmd

import (
	"github.com/ledpal/ledpal/mini"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(miniCmd)
}

// miniCmd launches the prompt-driven palette editor.
var miniCmd = &cobra.Command{
	Use:   "mini",
	Short: "Launch the prompt-driven palette editor",
	Long:  `Edit palettes through a sequence of simple prompts instead of the full-screen interface.`,
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(mini.Run(&mini.Options{Repository: repository()}))
	},
}
