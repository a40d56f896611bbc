package cmd

import (
	"fmt"
	"os/user"

	"github.com/ledpal/ledpal/color"
	"github.com/ledpal/ledpal/constant"
	"github.com/ledpal/ledpal/icon"
	"github.com/ledpal/ledpal/key"
	"github.com/ledpal/ledpal/pattern"
	"github.com/ledpal/ledpal/preview"
	"github.com/ledpal/ledpal/style"
	"github.com/ledpal/ledpal/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func completionPatterns(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return lo.Map(pattern.All(), func(p *pattern.Pattern, _ int) string {
		return fmt.Sprintf("%d\t%s", p.ID, p.Name)
	}), cobra.ShellCompDirectiveNoFileComp
}

// findPattern accepts a pattern ID or name.
func findPattern(ref string) *pattern.Pattern {
	var id int
	if _, err := fmt.Sscanf(ref, "%d", &id); err == nil {
		p, err := pattern.Get(id)
		handleErr(err)
		return p
	}

	p, err := pattern.Find(ref)
	handleErr(err)
	return p
}

// printPattern evaluates p over the given palette reference and prints the strip.
func printPattern(cmd *cobra.Command, p *pattern.Pattern) {
	repo := repository()
	ref := lo.Must(cmd.Flags().GetString("palette"))
	if ref == "" {
		ref = viper.GetString(key.PaletteActive)
	}

	pal, err := repo.Get(resolve(repo, ref))
	handleErr(err)

	pixels, err := p.Evaluate(pal, lo.Must(cmd.Flags().GetFloat64("time")), flagOrConfig(cmd, "width", key.PreviewWidth))
	handleErr(err)

	fmt.Printf("%s %s %s\n", style.Fg(color.Yellow)(icon.Get(icon.Pattern)), style.Bold(p.Name), style.Faint("over "+pal.Name))
	fmt.Println((&preview.Terminal{CellWidth: 1}).String(pixels))
}

func init() {
	rootCmd.AddCommand(patternCmd)
}

// patternCmd serves as the parent command for Lua animation patterns.
var patternCmd = &cobra.Command{
	Use:   "pattern",
	Short: "Inspect and create Lua animation patterns",
}

func init() {
	patternCmd.AddCommand(patternListCmd)
	patternListCmd.Flags().BoolP("custom", "c", false, "List only user patterns")
}

var patternListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List builtin and user patterns",
	Run: func(cmd *cobra.Command, args []string) {
		patterns := pattern.All()
		if lo.Must(cmd.Flags().GetBool("custom")) {
			patterns = lo.Filter(patterns, func(p *pattern.Pattern, _ int) bool {
				return p.IsCustom()
			})
		}

		for _, p := range patterns {
			line := fmt.Sprintf("%s %s", style.Faint(fmt.Sprintf("%3d", p.ID)), p.Name)
			if p.IsCustom() {
				line += " " + style.Fg(color.Blue)(p.Path)
			}
			fmt.Println(line)
		}
	},
}

func init() {
	patternCmd.AddCommand(patternShowCmd)
	patternShowCmd.Flags().StringP("palette", "P", "", "Palette the pattern samples from")
	patternShowCmd.Flags().Float64P("time", "t", 0, "Animation time in cycles")
	patternShowCmd.Flags().IntP("width", "w", 0, "Number of LEDs to evaluate")
	patternShowCmd.Flags().BoolP("source", "s", false, "Print the Lua source instead of the strip")
	_ = patternShowCmd.RegisterFlagCompletionFunc("palette", completionPalettes)
}

var patternShowCmd = &cobra.Command{
	Use:               "show [pattern]",
	Short:             "Evaluate a pattern and print one frame of it",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionPatterns,
	Run: func(cmd *cobra.Command, args []string) {
		var p *pattern.Pattern
		if len(args) == 1 {
			p = findPattern(args[0])
		} else {
			var err error
			p, err = pattern.Get(viper.GetInt(key.PatternDefault))
			handleErr(err)
		}

		if lo.Must(cmd.Flags().GetBool("source")) {
			source, err := p.Source()
			handleErr(err)
			fmt.Print(source)
			return
		}

		printPattern(cmd, p)
	},
}

func init() {
	patternCmd.AddCommand(patternNewCmd)
	patternNewCmd.Flags().StringP("author", "a", "", "Author written into the script header")
}

var patternNewCmd = &cobra.Command{
	Use:   "new [name]",
	Short: "Scaffold a new pattern script in the patterns directory",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		author := lo.Must(cmd.Flags().GetString("author"))
		if author == "" {
			if u, err := user.Current(); err == nil {
				author = u.Username
			} else {
				author = constant.Ledpal
			}
		}

		path, err := pattern.Scaffold(args[0], author)
		handleErr(err)

		done("created %s", style.Fg(color.Blue)(path))
		fmt.Println(style.Faint("Patterns directory: " + where.Patterns()))
	},
}
