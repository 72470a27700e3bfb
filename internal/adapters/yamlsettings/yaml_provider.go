package yamlsettings

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AntonioJCosta/gogo/internal/core/domain/settings"
	"github.com/AntonioJCosta/gogo/internal/core/ports"
	"gopkg.in/yaml.v3"
)

// YAMLProvider implements the SettingsProvider interface
// by reading settings from a YAML file.
type YAMLProvider struct {
	filePath string
}

// NewYAMLProvider creates a new YAMLProvider.
// filePath is the path to the optional YAML settings file.
func NewYAMLProvider(filePath string) (ports.SettingsProvider, error) {
	if filePath == "" {
		return nil, fmt.Errorf("settings file path cannot be empty")
	}
	return &YAMLProvider{filePath: filePath}, nil
}

// GetSettings reads and parses the configured YAML file.
// A missing or empty file yields the default settings and no error.
func (p *YAMLProvider) GetSettings() (settings.Settings, error) {
	data, err := os.ReadFile(p.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return settings.Default(), nil
		}
		return settings.Settings{}, fmt.Errorf("failed to read settings file %s: %w", p.filePath, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return settings.Default(), nil
	}

	var loaded settings.Settings
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&loaded); err != nil {
		// A file holding only comments decodes to EOF.
		if errors.Is(err, io.EOF) {
			return settings.Default(), nil
		}
		return settings.Settings{}, fmt.Errorf("failed to unmarshal settings from %s: %w", p.filePath, err)
	}

	loaded.Color = strings.ToLower(strings.TrimSpace(loaded.Color))
	if err := validate(loaded); err != nil {
		return settings.Settings{}, fmt.Errorf("invalid settings in %s: %w", p.filePath, err)
	}
	return loaded.WithDefaults(), nil
}

func validate(s settings.Settings) error {
	switch strings.ToLower(s.Color) {
	case "", settings.ColorAuto, settings.ColorAlways, settings.ColorNever:
	default:
		return fmt.Errorf("color must be one of %q, %q or %q, got %q",
			settings.ColorAuto, settings.ColorAlways, settings.ColorNever, s.Color)
	}
	if strings.ContainsAny(s.SSHCommand, "\n;|&") {
		return fmt.Errorf("ssh_command must be a single command, got %q", s.SSHCommand)
	}
	return nil
}
