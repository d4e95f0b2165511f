// Package config loads the .classboard.yaml configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dkoosis/classboard/pkg/board"
)

const configFileName = ".classboard.yaml"

// AppConfig represents the application's overall configuration.
type AppConfig struct {
	StoreURL      string            `yaml:"store_url"`
	StoreAPIKey   string            `yaml:"store_api_key"`
	TeacherID     string            `yaml:"teacher_id"`
	ClassSections []string          `yaml:"class_sections"`
	Theme         *board.BoardTheme `yaml:"theme,omitempty"`
	Telemetry     bool              `yaml:"telemetry"`
	Debug         bool              `yaml:"debug"`
}

// Load reads the configuration: defaults, then the YAML file (local
// directory first, then the user config dir), then CLASSBOARD_*
// environment overrides. A missing file is not an error.
func Load() *AppConfig {
	cfg := &AppConfig{}

	path := configPath()
	if path != "" {
		if err := loadFile(cfg, path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v. Using defaults.\n", err)
		}
	}

	applyEnv(cfg)
	return cfg
}

// LoadFile reads a specific configuration file, for tests and the
// -config flag.
func LoadFile(path string) (*AppConfig, error) {
	cfg := &AppConfig{}
	if err := loadFile(cfg, path); err != nil {
		return nil, err
	}
	applyEnv(cfg)
	return cfg, nil
}

func loadFile(cfg *AppConfig, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// configPath finds .classboard.yaml: local directory first, then the
// user config dir (e.g. ~/.config/classboard/).
func configPath() string {
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName
	}
	configHome, err := os.UserConfigDir()
	if err != nil || configHome == "" || configHome == "/" {
		return ""
	}
	xdgPath := filepath.Join(configHome, "classboard", configFileName)
	if _, err := os.Stat(xdgPath); err == nil {
		return xdgPath
	}
	return ""
}

func applyEnv(cfg *AppConfig) {
	if v := os.Getenv("CLASSBOARD_STORE_URL"); v != "" {
		cfg.StoreURL = v
	}
	if v := os.Getenv("CLASSBOARD_STORE_KEY"); v != "" {
		cfg.StoreAPIKey = v
	}
	if v := os.Getenv("CLASSBOARD_TEACHER_ID"); v != "" {
		cfg.TeacherID = v
	}
	if v := os.Getenv("CLASSBOARD_SECTIONS"); v != "" {
		cfg.ClassSections = splitSections(v)
	}
	if os.Getenv("CLASSBOARD_DEBUG") != "" {
		cfg.Debug = true
	}
}

// splitSections parses a comma-separated class-section list, dropping
// empty entries.
func splitSections(v string) []string {
	var sections []string
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			sections = append(sections, part)
		}
	}
	return sections
}
