package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ledpal/ledpal/color"
	"github.com/ledpal/ledpal/store"
	"github.com/ledpal/ledpal/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func completionGroupFields(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) != 1 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return store.GroupFields, cobra.ShellCompDirectiveNoFileComp
}

func init() {
	rootCmd.AddCommand(groupCmd)
}

// groupCmd serves as the parent command for per-group animation settings.
var groupCmd = &cobra.Command{
	Use:     "group",
	Aliases: []string{"g"},
	Short:   "Manage the animation settings of LED groups",
}

func init() {
	groupCmd.AddCommand(groupListCmd)
	groupListCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON object")
}

var groupListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List configured groups and their settings",
	Run: func(cmd *cobra.Command, args []string) {
		s := store.Default()
		names, err := s.Groups()
		handleErr(err)

		groups := make(map[string]store.Group, len(names))
		for _, name := range names {
			groups[name] = lo.Must(s.Group(name))
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(os.Stdout).Encode(groups))
			return
		}

		for i, name := range names {
			fmt.Println(style.New().Bold(true).Foreground(color.HiPurple).Render(name))
			for _, field := range store.GroupFields {
				fmt.Printf("  %s %s\n", style.Faint(fmt.Sprintf("%-11s", field)), style.Fg(color.Yellow)(lo.Must(groups[name].Get(field))))
			}

			if i < len(names)-1 {
				fmt.Println()
			}
		}
	},
}

func init() {
	groupCmd.AddCommand(groupGetCmd)
}

var groupGetCmd = &cobra.Command{
	Use:               "get [group] [field]",
	Short:             "Print a single setting of a group",
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: completionGroupFields,
	Run: func(cmd *cobra.Command, args []string) {
		g, err := store.Default().Group(args[0])
		handleErr(err)

		value, err := g.Get(args[1])
		handleErr(err)
		fmt.Println(value)
	},
}

func init() {
	groupCmd.AddCommand(groupSetCmd)
}

var groupSetCmd = &cobra.Command{
	Use:   "set [group] [field] [value]",
	Short: "Change a single setting of a group",
	Long: `Change a single setting of a group. The palette field accepts a palette key
or name. Brightness and saturation are clamped to [0, 1], color_temp to [1000, 12000],
speed to [0, 2] and scale to [-10, 10].`,
	Args:              cobra.ExactArgs(3),
	ValidArgsFunction: completionGroupFields,
	Run: func(cmd *cobra.Command, args []string) {
		name, field, value := args[0], args[1], args[2]

		if field == "palette" {
			value = resolve(repository(), value).String()
		}

		s := store.Default()
		g, err := s.Group(name)
		handleErr(err)
		handleErr(g.Set(field, value))
		handleErr(s.SetGroup(name, g))

		done(
			"set %s of %s to %s",
			style.Fg(color.Purple)(field),
			style.Bold(name),
			style.Fg(color.Yellow)(lo.Must(g.Get(field))),
		)
	},
}
