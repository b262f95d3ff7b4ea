package theme

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
)

// Theme is the site-wide color scheme
type Theme string

const (
	Dark  Theme = "dark"
	Light Theme = "light"
)

// ErrUnknown is returned when parsing a theme name that is neither dark nor light
var ErrUnknown = errors.New("unknown theme")

// Parse converts a name into a Theme. Matching is case-insensitive.
func Parse(name string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(name))) {
	case Dark:
		return Dark, nil
	case Light:
		return Light, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknown, name)
	}
}

// Toggle returns the opposite theme
func (t Theme) Toggle() Theme {
	if t == Light {
		return Dark
	}
	return Light
}

// String returns the theme name
func (t Theme) String() string {
	return string(t)
}

// Background returns the page background color for the theme (gray-900 / gray-50)
func (t Theme) Background() color.NRGBA {
	if t == Light {
		return color.NRGBA{R: 249, G: 250, B: 251, A: 255}
	}
	return color.NRGBA{R: 17, G: 24, B: 39, A: 255}
}
