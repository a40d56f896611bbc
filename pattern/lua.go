package pattern

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/ledpal/ledpal/constant"
	"github.com/ledpal/ledpal/filesystem"
	"github.com/ledpal/ledpal/gradient"
	"github.com/ledpal/ledpal/key"
	"github.com/ledpal/ledpal/palette"
	libs "github.com/metafates/mangal-lua-libs"
	"github.com/spf13/viper"
	lua "github.com/yuin/gopher-lua"
	"github.com/yuin/gopher-lua/parse"
)

var bytecodeCache sync.Map

// cacheKey identifies a compiled script. User scripts include their
// modification time so edits are picked up by the next evaluation.
func (p *Pattern) cacheKey() string {
	if !p.IsCustom() {
		return fmt.Sprintf("builtin:%d", p.ID)
	}

	info, err := filesystem.API().Stat(p.Path)
	if err != nil {
		return p.Path
	}
	return fmt.Sprintf("%s@%d", p.Path, info.ModTime().UnixNano())
}

// compile returns the bytecode prototype of the pattern, compiling it on first use.
func (p *Pattern) compile() (*lua.FunctionProto, error) {
	cacheKey := p.cacheKey()
	if cached, ok := bytecodeCache.Load(cacheKey); ok {
		return cached.(*lua.FunctionProto), nil
	}

	source, err := p.Source()
	if err != nil {
		return nil, err
	}

	chunk, err := parse.Parse(strings.NewReader(source), p.Name)
	if err != nil {
		return nil, err
	}

	proto, err := lua.Compile(chunk, p.Name)
	if err != nil {
		return nil, err
	}

	bytecodeCache.Store(cacheKey, proto)
	return proto, nil
}

// load creates a Lua state with the pattern's helpers registered and the
// script executed, leaving the pattern function defined as a global.
func (p *Pattern) load(pal palette.Palette) (*lua.LState, error) {
	proto, err := p.compile()
	if err != nil {
		return nil, err
	}

	state := lua.NewState()
	if viper.GetBool(key.PatternLibs) {
		libs.Preload(state)
	}
	registerHelpers(state, pal)

	state.Push(state.NewFunctionFromProto(proto))
	if err := state.PCall(0, lua.MultRet, nil); err != nil {
		state.Close()
		return nil, err
	}

	if state.GetGlobal(constant.PatternFn).Type() != lua.LTFunction {
		state.Close()
		return nil, fmt.Errorf("%w: %s in %s", ErrMissingFn, constant.PatternFn, p.Name)
	}

	return state, nil
}

func registerHelpers(state *lua.LState, pal palette.Palette) {
	unary := func(fn func(float64) float64) lua.LGFunction {
		return func(L *lua.LState) int {
			L.Push(lua.LNumber(fn(float64(L.CheckNumber(1)))))
			return 1
		}
	}

	state.SetGlobal("wave_sine", state.NewFunction(unary(WaveSine)))
	state.SetGlobal("wave_triangle", state.NewFunction(unary(WaveTriangle)))
	state.SetGlobal("wave_cubic", state.NewFunction(unary(WaveCubic)))

	state.SetGlobal("blackbody_to_rgb", state.NewFunction(func(L *lua.LState) int {
		r, g, b := Blackbody(float64(L.CheckNumber(1)))
		L.Push(lua.LNumber(r))
		L.Push(lua.LNumber(g))
		L.Push(lua.LNumber(b))
		return 3
	}))

	sampler := gradient.Of(pal)
	state.SetGlobal("palette", state.NewFunction(func(L *lua.LState) int {
		t := float64(L.CheckNumber(1))
		c := sampler.At(t - math.Floor(t))
		L.Push(lua.LNumber(c.Hue))
		L.Push(lua.LNumber(c.Saturation))
		L.Push(lua.LNumber(c.Value))
		return 3
	}))
}

// WaveSine is a sine wave with period 1, 0 at t=0 and 1 at t=0.5.
func WaveSine(t float64) float64 {
	return 0.5 - 0.5*math.Cos(2*math.Pi*t)
}

// WaveTriangle is a triangle wave with period 1, 0 at t=0 and 1 at t=0.5.
func WaveTriangle(t float64) float64 {
	t -= math.Floor(t)
	return 1 - math.Abs(2*t-1)
}

// WaveCubic eases the triangle wave with a cubic in-out curve.
func WaveCubic(t float64) float64 {
	x := WaveTriangle(t)
	if x < 0.5 {
		return 4 * x * x * x
	}
	return 1 - math.Pow(-2*x+2, 3)/2
}

// Blackbody approximates the colour of a black body at kelvin, channels in [0, 1].
func Blackbody(kelvin float64) (r, g, b float64) {
	temp := kelvin / 100

	if temp <= 66 {
		r = 255
		g = 99.4708025861*math.Log(temp) - 161.1195681661
	} else {
		r = 329.698727446 * math.Pow(temp-60, -0.1332047592)
		g = 288.1221695283 * math.Pow(temp-60, -0.0755148492)
	}

	switch {
	case temp >= 66:
		b = 255
	case temp <= 19:
		b = 0
	default:
		b = 138.5177312231*math.Log(temp-10) - 305.0447927307
	}

	unit := func(c float64) float64 {
		return math.Max(0, math.Min(255, c)) / 255
	}
	return unit(r), unit(g), unit(b)
}
