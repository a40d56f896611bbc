package cmd

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/ledpal/ledpal/filesystem"
	"github.com/ledpal/ledpal/inline"
	"github.com/ledpal/ledpal/key"
	"github.com/ledpal/ledpal/log"
	"github.com/ledpal/ledpal/query"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.Flags().StringP("query", "q", "", "Fuzzy palette name to match; empty matches every palette")
	inlineCmd.Flags().StringP("pick", "p", "", "Criteria for selecting one palette from the matches")
	inlineCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
	inlineCmd.Flags().StringP("format", "f", "hex", "Colour format of plain output: hex or css")
	inlineCmd.Flags().IntP("width", "w", 0, "Number of samples in each strip")
	inlineCmd.Flags().IntP("pattern", "P", -1, "Sample the strip through a pattern instead of the plain gradient")
	inlineCmd.Flags().Float64P("time", "t", 0, "Animation time passed to the pattern")
	inlineCmd.Flags().StringP("output", "o", "", "Specify a file path to write the command output")

	_ = inlineCmd.RegisterFlagCompletionFunc("query", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	})
	_ = inlineCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"hex", "css"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = inlineCmd.RegisterFlagCompletionFunc("pattern", completionPatterns)
}

// inlineCmd prints palette strips for scripts to consume.
var inlineCmd = &cobra.Command{
	Use:   "inline",
	Short: "Print palette strips non-interactively",
	Long: `Print sampled palette strips without any interface, for use from scripts.

Palette selectors:
  first - first matching palette
  last - last matching palette
  index:[number] - select palette by index (starting from 0)
  exact:[name] - palette whose name is exactly [name]

Without a selector every matching palette is printed.`,
	Example: "  ledpal inline -q sunset --pick first --json",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			writer io.Writer = os.Stdout
			err    error
		)

		if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
			file, err := filesystem.API().Create(output)
			handleErr(err)
			defer file.Close()
			writer = file
		}

		picker := mo.None[inline.Picker]()
		if pick := lo.Must(cmd.Flags().GetString("pick")); pick != "" {
			kind, value, _ := strings.Cut(pick, ":")
			fn, err := inline.ParsePicker(kind, value)
			handleErr(err)
			picker = mo.Some(fn)
		}

		patternID := mo.None[int]()
		if id := lo.Must(cmd.Flags().GetInt("pattern")); id >= 0 {
			patternID = mo.Some(id)
		}

		options := &inline.Options{
			Out:        writer,
			Repository: repository(),
			Query:      lo.Must(cmd.Flags().GetString("query")),
			Json:       lo.Must(cmd.Flags().GetBool("json")),
			Format:     lo.Must(cmd.Flags().GetString("format")),
			Width:      flagOrConfig(cmd, "width", key.PreviewWidth),
			Picker:     picker,
			Pattern:    patternID,
			Time:       lo.Must(cmd.Flags().GetFloat64("time")),
		}

		err = inline.Run(options)
		handleErr(err)

		if err := query.Remember(options.Query, 1); err != nil {
			log.Warn(err)
		}
	},
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)
}

// inlineSchemaCmd prints the JSON schema of the inline output.
var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema of the inline output",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "palette", "output":
				return filepath.Base(t.PkgPath()) + "." + name
			}

			return name
		}

		handleErr(json.NewEncoder(os.Stdout).Encode(reflector.Reflect(&inline.Output{})))
	},
}
