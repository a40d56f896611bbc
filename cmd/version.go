package cmd

import (
	"encoding/json"
	"os"
	"runtime"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ledpal/ledpal/color"
	"github.com/ledpal/ledpal/constant"
	"github.com/ledpal/ledpal/hsv"
	"github.com/ledpal/ledpal/palette"
	"github.com/ledpal/ledpal/preview"
	"github.com/ledpal/ledpal/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type buildInfo struct {
	Version  string `json:"version"`
	Revision string `json:"revision"`
	BuiltAt  string `json:"built_at"`
	BuiltBy  string `json:"built_by"`
	Platform string `json:"platform"`
	Config   string `json:"config,omitempty"`
}

func currentBuild() buildInfo {
	return buildInfo{
		Version:  constant.Version,
		Revision: constant.Revision,
		BuiltAt:  strings.TrimSpace(constant.BuiltAt),
		BuiltBy:  constant.BuiltBy,
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
		Config:   viper.ConfigFileUsed(),
	}
}

// wordmark draws the app name in the colours of the first default palette.
func wordmark() string {
	p, _ := palette.Defaults().Get(constant.DefaultPaletteKey)
	colors := lo.Map(preview.Strip(p.Colors, len(constant.Ledpal)), func(px hsv.Render, _ int) lipgloss.Color {
		return color.FromRGBA(px.RGBA())
	})
	return style.New().Bold(true).Render(style.Ramp(constant.Ledpal, colors))
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.SetOut(os.Stdout)
	versionCmd.Flags().BoolP("short", "s", false, "Display only the version string without metadata")
	versionCmd.Flags().BoolP("json", "j", false, "Format the build metadata as JSON")
	versionCmd.MarkFlagsMutuallyExclusive("short", "json")
}

// versionCmd displays application version and build metadata.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version and build metadata",
	Long:  "Display the current application version, build revision, platform and the config file in use.",
	Run: func(cmd *cobra.Command, args []string) {
		info := currentBuild()

		switch {
		case lo.Must(cmd.Flags().GetBool("short")):
			cmd.Println(info.Version)
			return
		case lo.Must(cmd.Flags().GetBool("json")):
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(info))
			return
		}

		rows := []lo.Tuple2[string, string]{
			{A: "Version", B: info.Version},
			{A: "Git Commit", B: info.Revision},
			{A: "Build Date", B: info.BuiltAt},
			{A: "Built By", B: info.BuiltBy},
			{A: "Platform", B: info.Platform},
			{A: "Config", B: lo.Ternary(info.Config == "", "defaults", info.Config)},
		}

		cmd.Println(wordmark())
		cmd.Println()
		for _, row := range rows {
			cmd.Printf("  %s %s\n", style.Faint(row.A+strings.Repeat(" ", 12-len(row.A))), style.Bold(row.B))
		}
	},
}
