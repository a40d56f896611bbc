// Package tui provides the primary terminal user interface implementation.
package tui

type state int

const (
	errorState state = iota
	palettesState
	editorState
	colorInputState
	renameState
	confirmState
	patternsState
)
