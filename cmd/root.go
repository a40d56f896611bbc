// Package cmd implements the command-line interface for ledpal.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/ledpal/ledpal/color"
	"github.com/ledpal/ledpal/constant"
	"github.com/ledpal/ledpal/icon"
	"github.com/ledpal/ledpal/key"
	"github.com/ledpal/ledpal/log"
	"github.com/ledpal/ledpal/mini"
	"github.com/ledpal/ledpal/style"
	"github.com/ledpal/ledpal/tui"
	"github.com/ledpal/ledpal/util"
	"github.com/ledpal/ledpal/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")
	rootCmd.Flags().BoolP("mini", "m", false, "Use the prompt-driven editor instead of the full interface")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("palette", "P", "", "Palette the editor opens with")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("palette", completionPalettes))
	lo.Must0(viper.BindPFlag(key.PaletteActive, rootCmd.PersistentFlags().Lookup("palette")))
}

// rootCmd defines the entry point for the ledpal application.
var rootCmd = &cobra.Command{
	Use:   constant.Ledpal,
	Short: "Design and preview multi-stop HSV palettes for LED strips",
	Long: constant.Banner + "\n" +
		style.New().Italic(true).Foreground(color.HiPurple).Render("    - Design and preview multi-stop HSV palettes for LED strips"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		// previews opened by earlier exports are no longer needed
		if err := util.Delete(where.Temp()); err != nil {
			log.Warn(err)
		}

		repo := repository()

		if lo.Must(cmd.Flags().GetBool("mini")) {
			handleErr(mini.Run(&mini.Options{Repository: repo}))
			return
		}

		handleErr(tui.Run(&tui.Options{Repository: repo}))
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
