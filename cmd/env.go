package cmd

import (
	"os"
	"strings"

	"github.com/ledpal/ledpal/color"
	"github.com/ledpal/ledpal/config"
	"github.com/ledpal/ledpal/style"
	"github.com/ledpal/ledpal/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

type envVar struct {
	name  string
	field *config.Field
}

// envVars lists every variable ledpal reads, sorted by name.
func envVars() []envVar {
	vars := lo.Map(config.Keys(), func(k string, _ int) envVar {
		field := lo.Must(config.Lookup(k))
		return envVar{name: field.Env(), field: &field}
	})
	vars = append(vars, envVar{name: where.EnvConfigPath})

	slices.SortFunc(vars, func(a, b envVar) int {
		return strings.Compare(a.name, b.name)
	})
	return vars
}

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Display only environment variables that are currently defined")
	envCmd.Flags().BoolP("unset-only", "u", false, "Display only environment variables that are currently undefined")

	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
}

// envCmd lists the environment variables that override config keys.
var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Display the collection of supported environment variables",
	Long:  `Display the environment variables that override configuration keys, and their current values. Values the key would reject are flagged.`,
	Run: func(cmd *cobra.Command, args []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))
		unsetOnly := lo.Must(cmd.Flags().GetBool("unset-only"))

		for _, v := range envVars() {
			value, present := os.LookupEnv(v.name)
			if (setOnly && !present) || (unsetOnly && present) {
				continue
			}

			cmd.Print(style.New().Bold(true).Foreground(color.Purple).Render(v.name), "=")

			if !present {
				cmd.Println(style.Fg(color.Red)("unset"))
				continue
			}

			if v.field != nil {
				if _, err := v.field.Parse([]string{value}); err != nil {
					cmd.Println(style.Fg(color.Yellow)(value), style.Faint("(ignored: "+err.Error()+")"))
					continue
				}
			}
			cmd.Println(style.Fg(color.Green)(value))
		}
	},
}
