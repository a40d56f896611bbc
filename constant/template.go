// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

// PatternFn is the global function every Lua pattern script must define.
const PatternFn = "pattern"

// PatternTemplate is a Go text/template for scaffolding new Lua pattern files.
const PatternTemplate = `{{ $divider := repeat "-" (plus (max (len .Name) (len .Author) 3) 12) }}{{ $divider }}
-- @name    {{ .Name }}
-- @author  {{ .Author }}
-- @license MIT
{{ $divider }}


--- Computes the colour of a single LED.
-- @param t number Animation time in cycles
-- @param dt number Time since the previous frame
-- @param x number Normalized LED position along the strip
-- @param y number Normalized LED position across the strip
-- @param prev table Previous colour of this LED {h, s, v}
-- @param colors table Palette stops {{"{{"}}h, s, v}, ...}
-- @return number, number, number, string Colour channels and mode ("hsv" or "rgb")
function {{ .PatternFn }}(t, dt, x, y, prev, colors)
	local h, s, v = palette(t + x)
	return h, s, v, "hsv"
end

-- ex: ts=4 sw=4 et filetype=lua
`
