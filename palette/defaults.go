package palette

import "github.com/ledpal/ledpal/hsv"

// Defaults returns the built-in palettes, keyed "0", "1", ... in display order.
// Key "0" is the fallback palette for groups whose palette was removed.
func Defaults() *Collection {
	c := NewCollection()
	add := func(key Key, name string, colors ...hsv.Color) {
		p := New(name, colors...)
		p.Default = true
		c.Set(key, p)
	}

	add("0", "Spectrum",
		hsv.New(0, 1, 1),
		hsv.New(1, 1, 1),
	)
	add("1", "Fire",
		hsv.New(0, 1, 0.4),
		hsv.New(0.03, 1, 1),
		hsv.New(0.1, 1, 1),
		hsv.New(0.14, 0.6, 1),
	)
	add("2", "Ocean",
		hsv.New(0.5, 1, 0.5),
		hsv.New(0.58, 1, 1),
		hsv.New(0.66, 0.8, 0.6),
		hsv.New(0.5, 1, 0.5),
	)
	add("3", "Sunset",
		hsv.New(0.75, 0.9, 0.5),
		hsv.New(0.95, 0.8, 1),
		hsv.New(0.05, 1, 1),
		hsv.New(0.12, 0.9, 1),
	)
	add("4", "Forest",
		hsv.New(0.25, 1, 0.3),
		hsv.New(0.33, 0.9, 0.8),
		hsv.New(0.2, 0.7, 0.6),
	)
	add("5", "Ice",
		hsv.New(0.55, 0.2, 1),
		hsv.New(0.6, 0.6, 1),
		hsv.New(0.55, 0, 1),
	)

	return c
}
