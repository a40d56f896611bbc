package hsv

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Parse reads a colour in one of the notations users type into the editor:
//   - "0.5, 1, 1"             unit-range channels
//   - "hsv(180, 100%, 100%)"  picker notation, hue in degrees
//   - "#00ffff"               hex
func Parse(s string) (Color, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return Color{}, fmt.Errorf("empty colour string")
	case strings.HasPrefix(s, "#"):
		c, err := colorful.Hex(s)
		if err != nil {
			return Color{}, fmt.Errorf("parse %q: %w", s, err)
		}
		h, sat, v := c.Hsv()
		return New(h/360, sat, v), nil
	case strings.HasPrefix(strings.ToLower(s), "hsv(") && strings.HasSuffix(s, ")"):
		channels, err := parseChannels(s[len("hsv(") : len(s)-1])
		if err != nil {
			return Color{}, fmt.Errorf("parse %q: %w", s, err)
		}
		return New(channels[0]/360, channels[1]/100, channels[2]/100).Clamp(), nil
	default:
		channels, err := parseChannels(s)
		if err != nil {
			return Color{}, fmt.Errorf("parse %q: %w", s, err)
		}
		return New(channels[0], channels[1], channels[2]).Clamp(), nil
	}
}

func parseChannels(s string) ([3]float64, error) {
	var out [3]float64

	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return out, fmt.Errorf("expected 3 channels, got %d", len(parts))
	}

	for i, part := range parts {
		part = strings.TrimSuffix(strings.TrimSpace(part), "%")
		f, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return out, fmt.Errorf("channel %d: %w", i+1, err)
		}
		out[i] = f
	}

	return out, nil
}
