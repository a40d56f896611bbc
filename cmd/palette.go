package cmd

import (
	"encoding/json"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strconv"

	"github.com/AlecAivazis/survey/v2"
	"github.com/invopop/jsonschema"
	"github.com/ledpal/ledpal/color"
	"github.com/ledpal/ledpal/config"
	"github.com/ledpal/ledpal/constant"
	"github.com/ledpal/ledpal/filesystem"
	"github.com/ledpal/ledpal/hsv"
	"github.com/ledpal/ledpal/icon"
	"github.com/ledpal/ledpal/key"
	"github.com/ledpal/ledpal/open"
	"github.com/ledpal/ledpal/palette"
	"github.com/ledpal/ledpal/preview"
	"github.com/ledpal/ledpal/store"
	"github.com/ledpal/ledpal/style"
	"github.com/ledpal/ledpal/util"
	"github.com/ledpal/ledpal/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// repository opens the palette repository over the default store, seeding
// the built-in palettes on first use.
func repository() *palette.Repository {
	repo := palette.NewRepository(store.Default())
	handleErr(repo.Seed())
	return repo
}

func resolve(repo *palette.Repository, ref string) palette.Key {
	k, err := repo.Resolve(ref)
	handleErr(err)
	return k
}

func parseIndex(s string) int {
	index, err := strconv.Atoi(s)
	if err != nil {
		handleErr(fmt.Errorf("invalid colour index: %s", s))
	}
	return index
}

// confirmed asks before destructive operations unless --yes was given.
func confirmed(cmd *cobra.Command, message string) bool {
	if lo.Must(cmd.Flags().GetBool("yes")) {
		return true
	}

	var response bool
	err := survey.AskOne(&survey.Confirm{Message: message}, &response)
	if err != nil {
		return false
	}
	return response
}

func completionPalettes(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	palettes, err := palette.NewRepository(store.Default()).List()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	return lo.Map(palettes.Keys(), func(k palette.Key, _ int) string {
		p, _ := palettes.Get(k)
		return fmt.Sprintf("%s\t%s", k, p.Name)
	}), cobra.ShellCompDirectiveNoFileComp
}

func done(format string, args ...any) {
	fmt.Printf("%s %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), fmt.Sprintf(format, args...))
}

// flagOrConfig returns the int flag if it was given and the config value otherwise.
func flagOrConfig(cmd *cobra.Command, flag, configKey string) int {
	if cmd.Flags().Changed(flag) {
		return lo.Must(cmd.Flags().GetInt(flag))
	}
	return viper.GetInt(configKey)
}

func strip(p palette.Palette, width int) string {
	if width <= 0 {
		width = viper.GetInt(key.PreviewWidth)
	}
	return (&preview.Terminal{CellWidth: 1}).String(preview.Strip(p.Colors, width))
}

func printPalette(k palette.Key, p palette.Palette, width int) {
	name := style.Bold(p.Name)
	if p.Default {
		name += " " + style.Faint(icon.Get(icon.Lock))
	}

	fmt.Printf("%s %s\n", style.Fg(color.Purple)(string(k)), name)
	fmt.Println(strip(p, width))
}

func init() {
	rootCmd.AddCommand(paletteCmd)
	paletteCmd.PersistentFlags().IntP("width", "w", 0, "Number of samples in the preview strip")
}

// paletteCmd serves as the parent command for palette management.
var paletteCmd = &cobra.Command{
	Use:     "palette",
	Aliases: []string{"p"},
	Short:   "Manage stored palettes",
}

func init() {
	paletteCmd.AddCommand(paletteListCmd)
	paletteListCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON object")
}

var paletteListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all palettes with their preview strips",
	Run: func(cmd *cobra.Command, args []string) {
		palettes, err := repository().List()
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(os.Stdout).Encode(palettes))
			return
		}

		width := lo.Must(cmd.Flags().GetInt("width"))
		for i, k := range palettes.Keys() {
			p, _ := palettes.Get(k)
			printPalette(k, p, width)

			if i < palettes.Len()-1 {
				fmt.Println()
			}
		}
	},
}

func init() {
	paletteCmd.AddCommand(paletteShowCmd)
}

var paletteShowCmd = &cobra.Command{
	Use:               "show [palette]",
	Short:             "Show the colour stops of a palette",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionPalettes,
	Run: func(cmd *cobra.Command, args []string) {
		repo := repository()
		k := resolve(repo, args[0])
		p, err := repo.Get(k)
		handleErr(err)

		printPalette(k, p, lo.Must(cmd.Flags().GetInt("width")))
		fmt.Println()

		for i, c := range p.Colors {
			fmt.Printf(
				"%s %s %s %s\n",
				style.Faint(fmt.Sprintf("%2d", i)),
				style.Swatch(color.FromRGBA(c.RGBA()), 2),
				style.Fg(color.Yellow)(c.Hex()),
				c,
			)
		}
	},
}

func init() {
	paletteCmd.AddCommand(paletteDupCmd)
}

var paletteDupCmd = &cobra.Command{
	Use:               "dup [palette]",
	Aliases:           []string{"duplicate", "cp"},
	Short:             "Copy a palette under a fresh key",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionPalettes,
	Run: func(cmd *cobra.Command, args []string) {
		repo := repository()
		k, err := repo.Duplicate(resolve(repo, args[0]))
		handleErr(err)

		p, err := repo.Get(k)
		handleErr(err)
		done("duplicated as %s %s", style.Fg(color.Purple)(string(k)), style.Bold(p.Name))
	},
}

func init() {
	paletteCmd.AddCommand(paletteRmCmd)
	paletteRmCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
}

var paletteRmCmd = &cobra.Command{
	Use:               "rm [palette]",
	Aliases:           []string{"remove", "delete"},
	Short:             "Remove a user palette",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionPalettes,
	Run: func(cmd *cobra.Command, args []string) {
		repo := repository()
		k := resolve(repo, args[0])
		p, err := repo.Get(k)
		handleErr(err)

		if !confirmed(cmd, fmt.Sprintf("Remove palette %q?", p.Name)) {
			return
		}

		handleErr(repo.Remove(k))

		if viper.GetString(key.PaletteActive) == string(k) {
			viper.Set(key.PaletteActive, constant.DefaultPaletteKey)
			_ = config.Write()
		}

		done("removed %s", style.Bold(p.Name))
	},
}

func init() {
	paletteCmd.AddCommand(paletteRenameCmd)
}

var paletteRenameCmd = &cobra.Command{
	Use:               "rename [palette] [name]",
	Short:             "Rename a user palette",
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: completionPalettes,
	Run: func(cmd *cobra.Command, args []string) {
		repo := repository()
		handleErr(repo.Rename(resolve(repo, args[0]), args[1]))
		done("renamed to %s", style.Bold(args[1]))
	},
}

func init() {
	paletteCmd.AddCommand(paletteAddColorCmd)
}

var paletteAddColorCmd = &cobra.Command{
	Use:   "add-color [palette] [index]",
	Short: "Insert a copy of the stop at index right after it",
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: completionPalettes,
	Run: func(cmd *cobra.Command, args []string) {
		repo := repository()
		k := resolve(repo, args[0])
		handleErr(repo.InsertColorAfter(k, parseIndex(args[1])))

		p, err := repo.Get(k)
		handleErr(err)
		done("%s now has %s", style.Bold(p.Name), util.Quantify(len(p.Colors), "colour", "colours"))
		fmt.Println(strip(p, lo.Must(cmd.Flags().GetInt("width"))))
	},
}

func init() {
	paletteCmd.AddCommand(paletteRmColorCmd)
	paletteRmColorCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
}

var paletteRmColorCmd = &cobra.Command{
	Use:               "rm-color [palette] [index]",
	Short:             "Remove the stop at index",
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: completionPalettes,
	Run: func(cmd *cobra.Command, args []string) {
		repo := repository()
		k := resolve(repo, args[0])
		index := parseIndex(args[1])

		if !confirmed(cmd, fmt.Sprintf("Remove colour %d?", index)) {
			return
		}

		handleErr(repo.RemoveColorAt(k, index))

		p, err := repo.Get(k)
		handleErr(err)
		done("%s now has %s", style.Bold(p.Name), util.Quantify(len(p.Colors), "colour", "colours"))
		fmt.Println(strip(p, lo.Must(cmd.Flags().GetInt("width"))))
	},
}

func init() {
	paletteCmd.AddCommand(paletteSetColorCmd)
}

var paletteSetColorCmd = &cobra.Command{
	Use:   "set-color [palette] [index] [colour]",
	Short: "Replace the stop at index",
	Long: `Replace the colour stop at the given index. Colours are accepted as
unit channels ("0.5, 1, 1"), picker notation ("hsv(180, 100%, 100%)") or hex ("#00ffff").`,
	Args:              cobra.ExactArgs(3),
	ValidArgsFunction: completionPalettes,
	Run: func(cmd *cobra.Command, args []string) {
		c, err := hsv.Parse(args[2])
		handleErr(err)

		repo := repository()
		k := resolve(repo, args[0])
		index := parseIndex(args[1])
		handleErr(repo.SetColorAt(k, index, c))

		p, err := repo.Get(k)
		handleErr(err)
		done("set colour %d to %s", index, style.Fg(color.Yellow)(c.String()))
		fmt.Println(strip(p, lo.Must(cmd.Flags().GetInt("width"))))
	},
}

func init() {
	paletteCmd.AddCommand(paletteExportCmd)
	paletteExportCmd.Flags().StringP("png", "o", "", "Write the preview strip to a PNG file instead of printing JSON")
	paletteExportCmd.Flags().IntP("height", "H", 0, "Height of the PNG preview in pixels")
	paletteExportCmd.Flags().Bool("open", false, "Open the PNG preview once written; without --png it goes to the temp directory")
	paletteExportCmd.Flags().String("with", "", "Application to open the PNG preview with")
}

var paletteExportCmd = &cobra.Command{
	Use:               "export [palette]",
	Short:             "Export a palette as JSON or as a PNG preview",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionPalettes,
	Run: func(cmd *cobra.Command, args []string) {
		repo := repository()
		p, err := repo.Get(resolve(repo, args[0]))
		handleErr(err)

		output := lo.Must(cmd.Flags().GetString("png"))
		openAfter := lo.Must(cmd.Flags().GetBool("open")) || cmd.Flags().Changed("with")
		if output == "" && openAfter {
			output = filepath.Join(where.Temp(), util.SanitizeFilename(p.Name)+".png")
		}

		if output == "" {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(p))
			return
		}

		surface := &preview.Image{}
		renderer := preview.NewRenderer(surface)
		renderer.Width = flagOrConfig(cmd, "width", key.PreviewWidth)
		renderer.Height = flagOrConfig(cmd, "height", key.PreviewHeight)
		handleErr(renderer.Render(p))

		file, err := filesystem.API().Create(output)
		handleErr(err)
		defer file.Close()

		handleErr(png.Encode(file, surface.RGBA))
		done("wrote %dx%d preview of %s to %s", renderer.Width, renderer.Height, style.Bold(p.Name), output)

		if openAfter {
			handleErr(open.StartWith(output, lo.Must(cmd.Flags().GetString("with"))))
		}
	},
}

func init() {
	paletteCmd.AddCommand(paletteSchemaCmd)
}

var paletteSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of a stored palette",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		handleErr(json.NewEncoder(os.Stdout).Encode(reflector.Reflect(&palette.Palette{})))
	},
}
