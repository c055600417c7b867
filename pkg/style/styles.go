// Package style defines the visual styling for igno's terminal output.
//
// All styles use semantic names and adaptive colors that automatically
// adjust to light and dark terminal themes. The theme ships embedded in
// the binary; rendering falls back to plain text when the output is not
// a color-capable terminal.
package style

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/igno/pkg/ui"
)

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
}

// Config represents the complete styles configuration
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// Registry maps semantic names to lipgloss styles
var Registry map[string]lipgloss.Style

//go:embed theme.yaml
var themeYAML []byte

func init() {
	if err := loadTheme(themeYAML); err != nil {
		panic(fmt.Sprintf("failed to load embedded theme: %v", err))
	}
}

// loadTheme parses the YAML theme into the style registry
func loadTheme(data []byte) error {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse theme: %w", err)
	}

	colors := make(map[string]lipgloss.AdaptiveColor)
	for name, def := range config.Colors {
		colors[name] = lipgloss.AdaptiveColor{
			Light: def.Light,
			Dark:  def.Dark,
		}
	}

	Registry = make(map[string]lipgloss.Style)
	for name, def := range config.Styles {
		Registry[name] = buildStyle(def, colors)
	}

	return nil
}

// buildStyle constructs a lipgloss style from a style definition
func buildStyle(def StyleDef, colors map[string]lipgloss.AdaptiveColor) lipgloss.Style {
	style := lipgloss.NewStyle()

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}
	if def.Foreground != "" {
		if color, ok := colors[def.Foreground]; ok {
			style = style.Foreground(color)
		}
	}

	return style
}

// Render applies the named style to text when the format supports
// styling. Unknown names and plain-text formats return text unchanged.
func Render(name, text string, format ui.Format) string {
	if format != ui.FormatTerminal {
		return text
	}
	s, ok := Registry[name]
	if !ok {
		return text
	}
	return s.Render(text)
}
