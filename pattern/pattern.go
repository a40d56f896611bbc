// Package pattern runs LED animation patterns written in Lua and samples them
// into preview strips. A pattern defines a global function
//
//	pattern(t, dt, x, y, prev, colors) -> h, s, v, mode
//
// where mode is "hsv" or "rgb".
package pattern

import (
	"bufio"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/ledpal/ledpal/filesystem"
	"github.com/ledpal/ledpal/util"
	"github.com/ledpal/ledpal/where"
	"github.com/samber/lo"
)

// Extension is the file extension of user pattern scripts.
const Extension = ".lua"

// CustomOffset is the ID of the first user pattern. Custom IDs follow file name order.
const CustomOffset = 100

//go:embed builtin/*.lua
var builtinFS embed.FS

// Pattern is a Lua animation pattern.
type Pattern struct {
	ID   int
	Name string
	// Path is empty for builtin patterns.
	Path string
}

// IsCustom reports whether the pattern was loaded from the patterns directory.
func (p *Pattern) IsCustom() bool {
	return p.Path != ""
}

func (p *Pattern) String() string {
	return p.Name
}

// Source returns the Lua source of the pattern.
func (p *Pattern) Source() (string, error) {
	if p.IsCustom() {
		data, err := filesystem.API().ReadFile(p.Path)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	data, err := builtinFS.ReadFile(builtinFiles[p.ID])
	if err != nil {
		return "", err
	}
	return string(data), nil
}

var builtinNames = []string{
	"Solid Color",
	"Cycle Hue 1D",
	"Cycle Hue Bands 1D",
	"RGB Sines 1D",
	"RGB Cubics 1D",
	"Cycle Blackbody 1D",
	"Bounce Hue 1D",
	"RGB Ripples 1D",
	"Palette Cycle 1D",
}

var builtinFiles = []string{
	"builtin/solid_color.lua",
	"builtin/cycle_hue.lua",
	"builtin/cycle_hue_bands.lua",
	"builtin/rgb_sines.lua",
	"builtin/rgb_cubics.lua",
	"builtin/cycle_blackbody.lua",
	"builtin/bounce_hue.lua",
	"builtin/rgb_ripples.lua",
	"builtin/palette_cycle.lua",
}

// Builtins returns the patterns shipped with the binary, IDs 0 through 8.
func Builtins() []*Pattern {
	return lo.Map(builtinNames, func(name string, i int) *Pattern {
		return &Pattern{ID: i, Name: name}
	})
}

// Customs returns the user patterns in the patterns directory.
func Customs() ([]*Pattern, error) {
	files, err := filesystem.API().ReadDir(where.Patterns())
	if err != nil {
		return nil, err
	}

	names := lo.FilterMap(files, func(f os.FileInfo, _ int) (string, bool) {
		return f.Name(), !f.IsDir() && filepath.Ext(f.Name()) == Extension
	})
	sort.Strings(names)

	return lo.Map(names, func(name string, i int) *Pattern {
		path := filepath.Join(where.Patterns(), name)
		return &Pattern{
			ID:   CustomOffset + i,
			Name: nameOf(path),
			Path: path,
		}
	}), nil
}

// All returns builtin patterns followed by user patterns. Unreadable pattern
// directories yield only the builtins.
func All() []*Pattern {
	customs, _ := Customs()
	return append(Builtins(), customs...)
}

// Get finds a pattern by ID.
func Get(id int) (*Pattern, error) {
	p, ok := lo.Find(All(), func(p *Pattern) bool {
		return p.ID == id
	})
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPattern, id)
	}
	return p, nil
}

// Find finds a pattern by case-insensitive name.
func Find(name string) (*Pattern, error) {
	p, ok := lo.Find(All(), func(p *Pattern) bool {
		return strings.EqualFold(p.Name, name)
	})
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
	}
	return p, nil
}

var nameTag = regexp.MustCompile(`^--\s*@name\s+(.+?)\s*$`)

// nameOf reads the @name tag from the script header, falling back to the file stem.
func nameOf(path string) string {
	file, err := filesystem.API().Open(path)
	if err != nil {
		return util.FileStem(path)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "--") {
			break
		}
		if groups := nameTag.FindStringSubmatch(line); groups != nil {
			return groups[1]
		}
	}

	return util.FileStem(path)
}

// Open loads a pattern script from an arbitrary path. The pattern is not
// registered and has ID -1.
func Open(path string) (*Pattern, error) {
	exists, err := filesystem.API().Exists(path)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPattern, path)
	}

	return &Pattern{ID: -1, Name: nameOf(path), Path: path}, nil
}
