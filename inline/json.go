package inline

import (
	"encoding/json"

	"github.com/ledpal/ledpal/hsv"
	"github.com/ledpal/ledpal/palette"
	"github.com/samber/lo"
)

type Palette struct {
	Key     palette.Key     `json:"key"`
	Palette palette.Palette `json:"palette"`
	// Strip holds the rendered colours as CSS hsl() expressions.
	Strip []string `json:"strip"`
	Hex   []string `json:"hex"`
}

type Output struct {
	Query  string     `json:"query"`
	Result []*Palette `json:"result"`
}

func asJson(query string, result []*Palette) ([]byte, error) {
	if result == nil {
		result = []*Palette{}
	}
	return json.Marshal(&Output{
		Query:  query,
		Result: result,
	})
}

func newPalette(key palette.Key, p palette.Palette, strip []hsv.Render) *Palette {
	return &Palette{
		Key:     key,
		Palette: p,
		Strip:   lo.Map(strip, func(r hsv.Render, _ int) string { return r.CSS() }),
		Hex:     lo.Map(strip, func(r hsv.Render, _ int) string { return hexOf(r) }),
	}
}
