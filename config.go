package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configDir = ".yt-summarize"

// Settings represents the YAML configuration structure
type Settings struct {
	Model    string `yaml:"model"`
	Language string `yaml:"language"`
	APIKey   string `yaml:"api_key"`
}

// loadSettings loads settings from the default location. A missing file
// is not an error: every key has a flag or a built-in default.
func loadSettings() (*Settings, error) {
	settingsPath := getConfigPath("settings.yaml")

	data, err := os.ReadFile(settingsPath)
	if os.IsNotExist(err) {
		return &Settings{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file %s: %w", settingsPath, err)
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML: %w", err)
	}

	return &settings, nil
}

// getConfigPath returns the path to a config file in the .yt-summarize directory
func getConfigPath(filename string) string {
	return filepath.Join(configDir, filename)
}

// ensureConfigExists creates the config directory and a default settings
// file on first run.
func ensureConfigExists() error {
	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		if err := os.MkdirAll(configDir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	settingsPath := getConfigPath("settings.yaml")
	if _, err := os.Stat(settingsPath); os.IsNotExist(err) {
		defaultSettings := `model: gemini-2.5-flash
language: English
# api_key: set a Gemini API key here; --api-key and GEMINI_API_KEY take precedence
`
		if err := os.WriteFile(settingsPath, []byte(defaultSettings), 0644); err != nil {
			return fmt.Errorf("failed to write default settings: %w", err)
		}
	}

	return nil
}
