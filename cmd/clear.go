package cmd

import (
	"fmt"

	"github.com/ledpal/ledpal/icon"
	"github.com/ledpal/ledpal/util"
	"github.com/ledpal/ledpal/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

// removable is state ledpal can rebuild or do without.
type removable struct {
	what  string
	flag  string
	short mo.Option[string]
	path  func() string
	// ask before removing user data
	ask mo.Option[string]
}

var removables = []removable{
	{what: "logs", flag: "logs", short: mo.Some("l"), path: where.Logs},
	{what: "temporary files", flag: "temp", short: mo.Some("t"), path: where.Temp},
	{what: "search history", flag: "queries", short: mo.Some("q"), path: where.Queries},
	{what: "palette store", flag: "store", path: where.Store, ask: mo.Some("Remove every user palette and group setting?")},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, r := range removables {
		clearCmd.Flags().BoolP(r.flag, r.short.OrEmpty(), false, "Clear the "+r.what)
	}

	clearCmd.Flags().BoolP("all", "a", false, "Clear everything except the palette store")
	clearCmd.Flags().BoolP("yes", "y", false, "Do not ask before clearing the palette store")
}

// clearCmd removes logs, transient artifacts and, on request, the palette store.
var clearCmd = &cobra.Command{
	Use:     "clear",
	Short:   "Clear logs, temporary files, search history or the palette store",
	Example: "  ledpal clear --logs --queries",
	Run: func(cmd *cobra.Command, args []string) {
		all := lo.Must(cmd.Flags().GetBool("all"))

		selected := lo.Filter(removables, func(r removable, _ int) bool {
			return lo.Must(cmd.Flags().GetBool(r.flag)) || (all && r.ask.IsAbsent())
		})

		if len(selected) == 0 {
			handleErr(cmd.Help())
			return
		}

		for _, r := range selected {
			if question, ok := r.ask.Get(); ok && !confirmed(cmd, question) {
				continue
			}

			erase := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), r.what))
			err := util.Delete(r.path())
			erase()
			handleErr(err)

			done("%s cleared", util.Capitalize(r.what))
		}
	},
}
