package pattern

import (
	"fmt"
	"math"

	"github.com/ledpal/ledpal/constant"
	"github.com/ledpal/ledpal/hsv"
	"github.com/ledpal/ledpal/palette"
	"github.com/ledpal/ledpal/util"
	"github.com/lucasb-eyer/go-colorful"
	lua "github.com/yuin/gopher-lua"
)

// Mode is the colour space a pattern returns its channels in.
type Mode string

const (
	ModeHSV Mode = "hsv"
	ModeRGB Mode = "rgb"
)

// Evaluate runs pattern id over width LEDs at time t with the stops of pal
// and returns the strip in render form.
func Evaluate(id int, pal palette.Palette, t float64, width int) ([]hsv.Render, error) {
	p, err := Get(id)
	if err != nil {
		return nil, err
	}
	return p.Evaluate(pal, t, width)
}

// Evaluate runs the pattern once per LED. Each LED sees its own previous
// output as prev, which for a single frame is black.
func (p *Pattern) Evaluate(pal palette.Palette, t float64, width int) ([]hsv.Render, error) {
	if err := pal.Validate(); err != nil {
		return nil, err
	}
	if width <= 0 {
		width = constant.PreviewWidth
	}

	state, err := p.load(pal)
	if err != nil {
		return nil, err
	}
	defer state.Close()

	fn := state.GetGlobal(constant.PatternFn)
	colors := colorsTable(state, pal.Colors)
	strip := make([]hsv.Render, width)

	for i := range strip {
		x := float64(i) / float64(width)
		prev := colorTable(state, hsv.Color{})

		if err := state.CallByParam(lua.P{
			Fn:      fn,
			NRet:    4,
			Protect: true,
		}, lua.LNumber(t), lua.LNumber(0), lua.LNumber(x), lua.LNumber(0), prev, colors); err != nil {
			return nil, fmt.Errorf("%s at x=%g: %w", p.Name, x, err)
		}

		c, err := popColor(state)
		if err != nil {
			return nil, fmt.Errorf("%s at x=%g: %w", p.Name, x, err)
		}
		strip[i] = c.Render()
	}

	return strip, nil
}

func colorTable(state *lua.LState, c hsv.Color) *lua.LTable {
	table := state.NewTable()
	table.Append(lua.LNumber(c.Hue))
	table.Append(lua.LNumber(c.Saturation))
	table.Append(lua.LNumber(c.Value))
	return table
}

func colorsTable(state *lua.LState, colors []hsv.Color) *lua.LTable {
	table := state.NewTable()
	for _, c := range colors {
		table.Append(colorTable(state, c))
	}
	return table
}

// popColor reads the four return values of a pattern call off the stack.
func popColor(state *lua.LState) (hsv.Color, error) {
	defer state.Pop(4)

	var channels [3]float64
	for i := range channels {
		v := state.Get(-4 + i)
		n, ok := v.(lua.LNumber)
		if !ok {
			return hsv.Color{}, fmt.Errorf("%w: channel %d is %s", ErrBadReturn, i+1, v.Type())
		}
		channels[i] = finite(float64(n))
	}

	mode := ModeHSV
	if v := state.Get(-1); v != lua.LNil {
		mode = Mode(lua.LVAsString(v))
	}

	switch mode {
	case ModeHSV:
		return hsv.New(channels[0], channels[1], channels[2]).Clamp(), nil
	case ModeRGB:
		rgb := colorful.Color{
			R: util.Clamp(channels[0], 0, 1),
			G: util.Clamp(channels[1], 0, 1),
			B: util.Clamp(channels[2], 0, 1),
		}
		h, s, v := rgb.Hsv()
		return hsv.New(h/360, s, v).Clamp(), nil
	default:
		return hsv.Color{}, fmt.Errorf("%w: mode %q", ErrBadReturn, mode)
	}
}

// finite maps NaN to 0 and infinities to the unit range edges.
func finite(f float64) float64 {
	switch {
	case math.IsNaN(f):
		return 0
	case math.IsInf(f, 1):
		return 1
	case math.IsInf(f, -1):
		return 0
	default:
		return f
	}
}
