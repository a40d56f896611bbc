package inline

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledpal/ledpal/hsv"
	"github.com/ledpal/ledpal/log"
	"github.com/ledpal/ledpal/palette"
	"github.com/ledpal/ledpal/pattern"
	"github.com/ledpal/ledpal/preview"
	"github.com/lucasb-eyer/go-colorful"
)

func Run(options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	palettes, err := options.Repository.List()
	if err != nil {
		return err
	}

	// Step 1: Match palettes by name, or take all of them for an empty query.
	keys := palettes.Keys()
	if strings.TrimSpace(options.Query) != "" {
		keys, err = options.Repository.Find(options.Query)
		if err != nil {
			return err
		}
	}

	// Step 2: Narrow the matches down with the picker, if one is defined.
	if options.Picker.IsPresent() {
		picker := options.Picker.MustGet()
		picked := picker(keys, palettes)
		keys = nil
		if choice, ok := picked.Get(); ok {
			keys = []palette.Key{choice}
		}
	}

	// Step 3: Render a strip for every selected palette.
	result := make([]*Palette, 0, len(keys))
	for _, k := range keys {
		p, _ := palettes.Get(k)
		strip, err := render(p, options)
		if err != nil {
			return fmt.Errorf("render %q: %w", p.Name, err)
		}
		result = append(result, newPalette(k, p, strip))
	}

	// Step 4: Dispatch the results to the configured writer.
	if options.Json {
		data, err := asJson(options.Query, result)
		if err != nil {
			return err
		}
		_, err = options.Out.Write(data)
		return err
	}

	for _, r := range result {
		log.Info("Rendered " + r.Palette.Name)
		colors := r.Hex
		if options.Format == "css" {
			colors = r.Strip
		}
		fmt.Fprintf(options.Out, "%s\t%s\t%s\n", r.Key, r.Palette.Name, strings.Join(colors, " "))
	}

	return nil
}

func render(p palette.Palette, options *Options) ([]hsv.Render, error) {
	if id, ok := options.Pattern.Get(); ok {
		return pattern.Evaluate(id, p, options.Time, options.Width)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return preview.Strip(p.Colors, options.Width), nil
}

func hexOf(r hsv.Render) string {
	c, _ := colorful.MakeColor(r.RGBA())
	return c.Hex()
}
