package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"text/template"

	"github.com/ledpal/ledpal/color"
	"github.com/ledpal/ledpal/constant"
	"github.com/ledpal/ledpal/style"
	"github.com/ledpal/ledpal/where"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// ErrUnknownKey is returned for keys missing from the registry.
var ErrUnknownKey = errors.New("unknown config key")

// ErrInvalidValue is returned when a value cannot be stored under a key.
var ErrInvalidValue = errors.New("invalid config value")

// Field is a registered setting. Value is the default and fixes the type
// accepted for the key. A non-empty Options restricts string values.
type Field struct {
	Key         string
	Value       any
	Description string
	Options     []string
}

// Lookup returns the registered field for k. Unknown keys are reported
// together with the closest registered key.
func Lookup(k string) (Field, error) {
	if field, ok := Default[k]; ok {
		return field, nil
	}

	closest := lo.MinBy(Keys(), func(a, b string) bool {
		return levenshtein.Distance(k, a) < levenshtein.Distance(k, b)
	})
	return Field{}, fmt.Errorf("%w %q, did you mean %q?", ErrUnknownKey, k, closest)
}

// Keys returns every registered key, sorted.
func Keys() []string {
	keys := lo.Keys(Default)
	sort.Strings(keys)
	return keys
}

// Env is the environment variable that overrides the field.
func (f *Field) Env() string {
	return strings.ToUpper(constant.Ledpal + "_" + EnvKeyReplacer.Replace(f.Key))
}

func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case float64:
		return "float64"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	default:
		return "unknown"
	}
}

// Parse converts command-line values into the type of the field's default.
func (f *Field) Parse(values []string) (any, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: no value given for %s", ErrInvalidValue, f.Key)
	}

	invalid := func(kind string) error {
		return fmt.Errorf("%w: %s needs %s, got %q", ErrInvalidValue, f.Key, kind, values[0])
	}

	switch f.Value.(type) {
	case string:
		if len(f.Options) > 0 && !lo.Contains(f.Options, values[0]) {
			return nil, invalid("one of " + strings.Join(f.Options, ", "))
		}
		return values[0], nil
	case int:
		v, err := strconv.Atoi(values[0])
		if err != nil {
			return nil, invalid("an integer")
		}
		return v, nil
	case float64:
		v, err := strconv.ParseFloat(values[0], 64)
		if err != nil {
			return nil, invalid("a number")
		}
		return v, nil
	case bool:
		v, err := strconv.ParseBool(values[0])
		if err != nil {
			return nil, invalid("a boolean")
		}
		return v, nil
	case []string:
		return values, nil
	default:
		return nil, fmt.Errorf("%w: %s has unsupported type %s", ErrInvalidValue, f.Key, f.typeName())
	}
}

// MarshalJSON reports the current value next to the default.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string   `json:"key"`
		Value       any      `json:"value"`
		Default     any      `json:"default"`
		Description string   `json:"description"`
		Type        string   `json:"type"`
		Options     []string `json:"options,omitempty"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
		Options:     f.Options,
	})
}

// Pretty renders the field for "config info".
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

func highlight(v any) string {
	switch value := v.(type) {
	case bool:
		return lo.Ternary(value, style.Fg(color.Green), style.Fg(color.Red))(strconv.FormatBool(value))
	case string:
		return style.Fg(color.Yellow)(value)
	default:
		return fmt.Sprint(value)
	}
}

var prettyTemplate = lo.Must(template.New("field").Funcs(template.FuncMap{
	"faint":  style.Faint,
	"purple": style.Fg(color.Purple),
	"blue":   style.Fg(color.Blue),
	"hl":     highlight,
	"value":  viper.Get,
	"join":   strings.Join,
	"typename": func(f *Field) string {
		return f.typeName()
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl .Value }}
{{ blue "Type:" }}    {{ typename . }}{{ with .Options }}
{{ blue "Options:" }} {{ join . ", " }}{{ end }}`))

// Path is the location of the config file, whether or not it exists.
func Path() string {
	return filepath.Join(where.Config(), constant.Ledpal+"."+FileType)
}

// Write persists the current settings, creating the file on first use.
func Write() error {
	err := viper.WriteConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return viper.SafeWriteConfig()
	}
	return err
}

// Restore puts keys back to their defaults in memory. No keys means all of them.
func Restore(keys ...string) error {
	if len(keys) == 0 {
		keys = Keys()
	}

	for _, k := range keys {
		field, err := Lookup(k)
		if err != nil {
			return err
		}
		viper.Set(k, field.Value)
	}
	return nil
}
