// Package inline implements the non-interactive mode: palettes are selected
// by query and printed as colour strips for scripts to consume.
package inline

import (
	"fmt"
	"io"
	"strconv"

	"github.com/ledpal/ledpal/palette"
	"github.com/ledpal/ledpal/util"
	"github.com/samber/mo"
)

// Picker narrows the matched palettes down to one.
type Picker func([]palette.Key, *palette.Collection) mo.Option[palette.Key]

type Options struct {
	Out        io.Writer
	Repository *palette.Repository
	Query      string
	Json       bool
	// Format is "hex" or "css" for plain output.
	Format  string
	Width   int
	Picker  mo.Option[Picker]
	Pattern mo.Option[int]
	Time    float64
}

// ParsePicker parses the --pick flag.
func ParsePicker(kind, value string) (Picker, error) {
	switch kind {
	case "first":
		return func(keys []palette.Key, _ *palette.Collection) mo.Option[palette.Key] {
			if len(keys) == 0 {
				return mo.None[palette.Key]()
			}
			return mo.Some(keys[0])
		}, nil
	case "last":
		return func(keys []palette.Key, _ *palette.Collection) mo.Option[palette.Key] {
			if len(keys) == 0 {
				return mo.None[palette.Key]()
			}
			return mo.Some(keys[len(keys)-1])
		}, nil
	case "exact":
		return func(keys []palette.Key, palettes *palette.Collection) mo.Option[palette.Key] {
			for _, k := range keys {
				if p, ok := palettes.Get(k); ok && p.Name == value {
					return mo.Some(k)
				}
			}
			return mo.None[palette.Key]()
		}, nil
	case "index":
		idx, err := strconv.Atoi(value)
		if err != nil || idx < 0 {
			return nil, fmt.Errorf("invalid index: %s", value)
		}
		return func(keys []palette.Key, _ *palette.Collection) mo.Option[palette.Key] {
			if len(keys) == 0 {
				return mo.None[palette.Key]()
			}
			return mo.Some(keys[util.Min(idx, len(keys)-1)])
		}, nil
	default:
		return nil, fmt.Errorf("unknown picker type: %s", kind)
	}
}
