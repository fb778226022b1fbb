package style

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Theme holds the design tokens written into the shared style sheet as
// custom properties.
type Theme struct {
	Name   string            `toml:"name"`
	Radius string            `toml:"radius"`
	Colors map[string]string `toml:"colors"`
	Fonts  map[string]string `toml:"fonts"`

	Transition Transition `toml:"transition"`
}

// Transition configures disclosure animations.
type Transition struct {
	Duration string `toml:"duration"`
	Easing   string `toml:"easing"`
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() Theme {
	return Theme{
		Name:   "default",
		Radius: "0.5rem",
		Colors: map[string]string{
			"background":           "0 0% 100%",
			"foreground":           "222.2 84% 4.9%",
			"primary":              "222.2 47.4% 11.2%",
			"primary-foreground":   "210 40% 98%",
			"secondary":            "210 40% 96.1%",
			"secondary-foreground": "222.2 47.4% 11.2%",
			"muted":                "210 40% 96.1%",
			"muted-foreground":     "215.4 16.3% 46.9%",
			"accent":               "210 40% 96.1%",
			"accent-foreground":    "222.2 47.4% 11.2%",
			"destructive":          "0 84.2% 60.2%",
			"border":               "214.3 31.8% 91.4%",
			"input":                "214.3 31.8% 91.4%",
			"ring":                 "222.2 84% 4.9%",
		},
		Fonts: map[string]string{
			"sans": "ui-sans-serif, system-ui, sans-serif",
			"mono": "ui-monospace, monospace",
		},
		Transition: Transition{
			Duration: "200ms",
			Easing:   "ease-out",
		},
	}
}

// LoadTheme reads a theme.toml file. Tokens missing from the file keep their
// default values. A missing file yields the default theme.
func LoadTheme(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultTheme(), nil
		}
		return Theme{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return ParseTheme(data)
}

// ParseTheme parses theme TOML over the default theme.
func ParseTheme(data []byte) (Theme, error) {
	var parsed Theme
	if err := toml.Unmarshal(data, &parsed); err != nil {
		return Theme{}, fmt.Errorf("failed to parse theme: %w", err)
	}

	theme := DefaultTheme()
	if parsed.Name != "" {
		theme.Name = parsed.Name
	}
	if parsed.Radius != "" {
		theme.Radius = parsed.Radius
	}
	for k, v := range parsed.Colors {
		theme.Colors[k] = v
	}
	for k, v := range parsed.Fonts {
		theme.Fonts[k] = v
	}
	if parsed.Transition.Duration != "" {
		theme.Transition.Duration = parsed.Transition.Duration
	}
	if parsed.Transition.Easing != "" {
		theme.Transition.Easing = parsed.Transition.Easing
	}
	return theme, nil
}

// Encode returns the theme as TOML.
func (t Theme) Encode() ([]byte, error) {
	return toml.Marshal(t)
}

// CustomProperties returns the theme as CSS custom property declarations in
// a stable order.
func (t Theme) CustomProperties() string {
	var b strings.Builder
	writeGroup := func(prefix string, m map[string]string) {
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "--%s%s: %s;", prefix, k, m[k])
		}
	}
	writeGroup("", t.Colors)
	writeGroup("font-", t.Fonts)
	fmt.Fprintf(&b, "--radius: %s;", t.Radius)
	fmt.Fprintf(&b, "--transition-duration: %s;", t.Transition.Duration)
	fmt.Fprintf(&b, "--transition-easing: %s;", t.Transition.Easing)
	return b.String()
}
