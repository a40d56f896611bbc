package cmd

import (
	"github.com/ledpal/ledpal/pattern"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringP("palette", "P", "", "Palette the pattern samples from")
	runCmd.Flags().Float64P("time", "t", 0, "Animation time in cycles")
	runCmd.Flags().IntP("width", "w", 0, "Number of LEDs to evaluate")
	_ = runCmd.RegisterFlagCompletionFunc("palette", completionPalettes)
}

// runCmd evaluates a Lua pattern file that is not installed, for pattern development.
var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Evaluate a local Lua pattern file",
	Long: `Load a Lua pattern script from any path, evaluate one frame of it and print the strip.
Useful while writing a pattern before moving it into the patterns directory.`,
	Args:    cobra.ExactArgs(1),
	Example: "  ledpal run ./sparkle.lua --time 0.5",
	Run: func(cmd *cobra.Command, args []string) {
		p, err := pattern.Open(args[0])
		handleErr(err)

		printPattern(cmd, p)
	},
}
