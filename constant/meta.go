// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

import _ "embed"

const (
	// Ledpal is the canonical application identifier used for filesystem paths and CLI branding.
	Ledpal = "ledpal"

	// Version is the current application semantic version string.
	Version = "0.3.0"
)

// Build metadata, injected through -ldflags at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)

// Preview defaults mirror the size of the palette colour bar: one pixel tall, 64 samples wide.
const (
	PreviewWidth  = 64
	PreviewHeight = 1
)

// DefaultPaletteKey is the palette groups fall back to when their palette is removed.
const DefaultPaletteKey = "0"

// CopySuffix is appended to the name of a duplicated palette.
const CopySuffix = " (Copy)"

// Banner is printed above the root command's help.
//
//go:embed ascii.txt
var Banner string
