package palette

import "errors"

// Error kinds reported by the Repository. They are wrapped with context;
// match them with errors.Is.
var (
	ErrNotFound            = errors.New("palette not found")
	ErrCannotModifyDefault = errors.New("default palettes cannot be modified")
	ErrMinimumColorCount   = errors.New("palette needs at least 2 colors")
	ErrIndexOutOfRange     = errors.New("color index out of range")
	ErrEmptyName           = errors.New("palette name is empty")
	ErrAmbiguous           = errors.New("palette reference is ambiguous")
)
