package pattern

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/ledpal/ledpal/constant"
	"github.com/ledpal/ledpal/filesystem"
	"github.com/ledpal/ledpal/util"
	"github.com/ledpal/ledpal/where"
)

// ErrExists is returned when scaffolding over an existing pattern file.
var ErrExists = errors.New("pattern file already exists")

var scaffold = template.Must(template.New("pattern").Funcs(template.FuncMap{
	"repeat": strings.Repeat,
	"plus":   func(a, b int) int { return a + b },
	"max":    util.Max[int],
}).Parse(constant.PatternTemplate))

// Scaffold writes a new pattern script named name into the patterns directory
// and returns its path.
func Scaffold(name, author string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errors.New("pattern name must not be empty")
	}

	target := filepath.Join(where.Patterns(), util.SanitizeFilename(name)+Extension)
	exists, err := filesystem.API().Exists(target)
	if err != nil {
		return "", err
	}
	if exists {
		return "", fmt.Errorf("%w: %s", ErrExists, target)
	}

	f, err := filesystem.API().Create(target)
	if err != nil {
		return "", err
	}
	defer f.Close()

	err = scaffold.Execute(f, struct {
		Name      string
		Author    string
		PatternFn string
	}{
		Name:      name,
		Author:    author,
		PatternFn: constant.PatternFn,
	})
	if err != nil {
		return "", err
	}

	return target, nil
}
