package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// LoadCustomTheme loads a theme from a YAML file of snake_case color keys.
// Colors the file leaves out are taken from the default theme.
func LoadCustomTheme(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("reading theme file: %w", err)
	}

	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Theme{}, fmt.Errorf("parsing theme YAML: %w", err)
	}

	t := Default()
	t.Name = raw["name"]
	if t.Name == "" {
		base := filepath.Base(path)
		t.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	slots := map[string]*lipgloss.Color{
		"base":           &t.Base,
		"surface":        &t.Surface,
		"overlay":        &t.Overlay,
		"text":           &t.Text,
		"subtext":        &t.Subtext,
		"muted":          &t.Muted,
		"accent":         &t.Accent,
		"border":         &t.Border,
		"billions":       &t.Billions,
		"millions":       &t.Millions,
		"thousands":      &t.Thousands,
		"status_ok":      &t.StatusOK,
		"status_error":   &t.StatusError,
		"status_warning": &t.StatusWarning,
	}
	for key, dst := range slots {
		if v := raw[key]; v != "" {
			*dst = lipgloss.Color(v)
		}
	}
	return t, nil
}

// LoadCustomThemes loads all YAML themes from a directory.
func LoadCustomThemes(dir string) map[string]Theme {
	themes := make(map[string]Theme)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return themes
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		t, err := LoadCustomTheme(filepath.Join(dir, e.Name()))
		if err != nil {
			continue
		}
		themes[normalizeKey(t.Name)] = t
	}
	return themes
}
