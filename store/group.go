package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/ledpal/ledpal/constant"
	"github.com/ledpal/ledpal/palette"
	"github.com/ledpal/ledpal/util"
	"github.com/samber/lo"
)

const fallbackPalette = constant.DefaultPaletteKey

// Group holds the animation settings of one LED group.
type Group struct {
	Function   int         `json:"function"`
	Palette    palette.Key `json:"palette"`
	Brightness float64     `json:"brightness"`
	ColorTemp  float64     `json:"color_temp"`
	Saturation float64     `json:"saturation"`
	Speed      float64     `json:"speed"`
	Scale      float64     `json:"scale"`
}

// Setting ranges, matching the group sliders of the controller.
const (
	minColorTemp, maxColorTemp = 1000, 12000
	minSpeed, maxSpeed         = 0, 2
	minScale, maxScale         = -10, 10
)

// UnmarshalJSON also accepts colorTemp, the key documents used before color_temp.
func (g *Group) UnmarshalJSON(data []byte) error {
	type plain Group
	aux := struct {
		*plain
		LegacyColorTemp *float64 `json:"colorTemp"`
	}{plain: (*plain)(g)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.LegacyColorTemp != nil && !bytes.Contains(data, []byte(`"color_temp"`)) {
		g.ColorTemp = *aux.LegacyColorTemp
	}
	return nil
}

// NewGroup returns the settings a group starts with.
func NewGroup() Group {
	return Group{
		Function:   0,
		Palette:    fallbackPalette,
		Brightness: 1,
		ColorTemp:  6500,
		Saturation: 1,
		Speed:      0.2,
		Scale:      1,
	}
}

// GroupFields lists the settable field names.
var GroupFields = []string{"function", "palette", "brightness", "color_temp", "saturation", "speed", "scale"}

// Get returns the value of field as a string.
func (g Group) Get(field string) (string, error) {
	format := func(f float64) string {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	switch field {
	case "function":
		return strconv.Itoa(g.Function), nil
	case "palette":
		return g.Palette.String(), nil
	case "brightness":
		return format(g.Brightness), nil
	case "color_temp":
		return format(g.ColorTemp), nil
	case "saturation":
		return format(g.Saturation), nil
	case "speed":
		return format(g.Speed), nil
	case "scale":
		return format(g.Scale), nil
	default:
		return "", unknownField(field)
	}
}

// Set parses value into field. Numbers are clamped to the range of their slider.
func (g *Group) Set(field, value string) error {
	value = strings.TrimSpace(value)

	if field == "palette" {
		if value == "" {
			return palette.ErrEmptyName
		}
		g.Palette = palette.Key(value)
		return nil
	}

	if field == "function" {
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("function must be an integer: %w", err)
		}
		if n < 0 {
			return fmt.Errorf("function must not be negative, got %d", n)
		}
		g.Function = n
		return nil
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("%s must be a number: %w", field, err)
	}

	switch field {
	case "brightness":
		g.Brightness = util.Clamp(f, 0, 1)
	case "color_temp":
		g.ColorTemp = util.Clamp(f, minColorTemp, maxColorTemp)
	case "saturation":
		g.Saturation = util.Clamp(f, 0, 1)
	case "speed":
		g.Speed = util.Clamp(f, minSpeed, maxSpeed)
	case "scale":
		g.Scale = util.Clamp(f, minScale, maxScale)
	default:
		return unknownField(field)
	}

	return nil
}

func unknownField(field string) error {
	closest := lo.MinBy(GroupFields, func(a, b string) bool {
		return levenshtein.Distance(field, a) < levenshtein.Distance(field, b)
	})
	return fmt.Errorf("unknown group field %q, did you mean %q?", field, closest)
}

// Groups returns the names of every configured group, sorted.
func (s *Store) Groups() ([]string, error) {
	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	names := lo.Keys(doc.Groups)
	sort.Strings(names)
	return names, nil
}

// Group returns the settings of the named group, or the initial settings if
// the group was never written.
func (s *Store) Group(name string) (Group, error) {
	doc, err := s.load()
	if err != nil {
		return Group{}, err
	}

	if g, ok := doc.Groups[name]; ok {
		return g, nil
	}
	return NewGroup(), nil
}

// SetGroup stores the settings of the named group.
func (s *Store) SetGroup(name string, g Group) error {
	if strings.TrimSpace(name) == "" {
		return palette.ErrEmptyName
	}

	doc, err := s.load()
	if err != nil {
		return err
	}

	doc.Groups[name] = g
	return s.save(doc)
}
