// Package color provides a curated palette of terminal colors.
package color

import (
	"fmt"
	imgcolor "image/color"

	"github.com/charmbracelet/lipgloss"
)

// New initializes a lipgloss.Color from a string value.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// FromRGBA converts a pixel colour into a true-colour terminal colour.
func FromRGBA(c imgcolor.RGBA) lipgloss.Color {
	return New(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

// Standard ANSI 8-color palette.
var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")
	White  = New("7")
	Black  = New("8")
)

// High-intensity ANSI extension.
var (
	HiRed    = New("9")
	HiPurple = New("13")
	HiCyan   = New("14")
)

// Hex-defined accent and semantic colors.
var (
	Orange = New("#ffb703")
	Gray   = New("#808080")
)
