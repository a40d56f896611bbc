package cmd

import (
	"encoding/json"
	"os"

	"github.com/ledpal/ledpal/color"
	"github.com/ledpal/ledpal/style"
	"github.com/ledpal/ledpal/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

type location struct {
	name    string
	flag    string
	short   mo.Option[string]
	resolve func() string
	// internal locations only print when asked for by flag
	internal bool
}

var locations = []location{
	{name: "Config", flag: "config", short: mo.Some("c"), resolve: where.Config},
	{name: "Patterns", flag: "patterns", short: mo.Some("p"), resolve: where.Patterns},
	{name: "Store", flag: "store", short: mo.Some("s"), resolve: where.Store},
	{name: "Logs", flag: "logs", short: mo.Some("l"), resolve: where.Logs},
	{name: "Queries", flag: "queries", resolve: where.Queries, internal: true},
	{name: "Temp", flag: "temp", resolve: where.Temp, internal: true},
}

func init() {
	rootCmd.AddCommand(whereCmd)

	for _, l := range locations {
		whereCmd.Flags().BoolP(l.flag, l.short.OrEmpty(), false, l.name+" path")
		if l.internal {
			lo.Must0(whereCmd.Flags().MarkHidden(l.flag))
		}
	}

	whereCmd.Flags().BoolP("json", "j", false, "Print every path as a JSON object")

	whereCmd.MarkFlagsMutuallyExclusive(append(lo.Map(locations, func(l location, _ int) string {
		return l.flag
	}), "json")...)

	whereCmd.SetOut(os.Stdout)
}

// whereCmd prints the filesystem paths ledpal reads and writes.
var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Display the paths of the config, patterns, store and logs",
	Run: func(cmd *cobra.Command, args []string) {
		if l, ok := lo.Find(locations, func(l location) bool {
			return lo.Must(cmd.Flags().GetBool(l.flag))
		}); ok {
			cmd.Println(l.resolve())
			return
		}

		visible := lo.Reject(locations, func(l location, _ int) bool { return l.internal })

		if lo.Must(cmd.Flags().GetBool("json")) {
			paths := orderedmap.New[string, string]()
			for _, l := range visible {
				paths.Set(l.flag, l.resolve())
			}
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(paths))
			return
		}

		header := style.New().Bold(true).Foreground(color.HiPurple).Render
		for i, l := range visible {
			cmd.Printf("%s %s\n", header(l.name+"?"), style.Fg(color.Yellow)("--"+l.flag))
			cmd.Println(l.resolve())

			if i < len(visible)-1 {
				cmd.Println()
			}
		}
	},
}
