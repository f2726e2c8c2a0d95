// Package domain provides shared domain types for pacsync: the two graph
// variants, the outcome of each fetch attempt, and the outcome of syncing
// an artifact to disk.
package domain

import (
	"fmt"
	"strings"

	"github.com/Beebek-Sharma/pacsync/internal/errors"
)

// Theme names a rendering of the contribution graph.
// The value is sent verbatim as the API's theme query parameter.
type Theme string

// Supported themes.
const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Themes returns the supported themes in the order they are fetched.
func Themes() []Theme {
	return []Theme{ThemeLight, ThemeDark}
}

// Valid reports whether t is a supported theme.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// String implements fmt.Stringer.
func (t Theme) String() string {
	return string(t)
}

// ParseTheme converts user input into a Theme. Matching is case-insensitive
// and ignores surrounding whitespace.
func ParseTheme(s string) (Theme, error) {
	t := Theme(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q (want %q or %q)", errors.ErrUnknownTheme, s, ThemeLight, ThemeDark)
	}
	return t, nil
}

// Variant pairs a theme with the file its SVG is persisted to.
// Variants are fixed when the configuration is built and never mutated.
type Variant struct {
	// Theme selects the rendering requested from the API.
	Theme Theme `json:"theme" yaml:"theme"`

	// Path is the local file holding the persisted artifact.
	Path string `json:"path" yaml:"path"`
}
