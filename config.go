package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

type Config struct {
	EditorCommand string `json:"editor_command"`
	MergeBaseRef  string `json:"merge_base_ref,omitempty"`
}

const defaultEditorCommand = "code"

func LoadConfig() (Config, error) {
	path, err := configPath()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	cfg.EditorCommand = strings.TrimSpace(cfg.EditorCommand)
	if cfg.EditorCommand == "" {
		cfg.EditorCommand = defaultEditorCommand
	}
	cfg.MergeBaseRef = strings.TrimSpace(cfg.MergeBaseRef)
	return cfg, nil
}

// loadConfigOrDefault treats a missing config file as defaults; any other
// read problem is still an error.
func loadConfigOrDefault() (Config, error) {
	cfg, err := LoadConfig()
	if err == nil {
		return cfg, nil
	}
	exists, statErr := ConfigExists()
	if statErr != nil {
		return Config{}, statErr
	}
	if exists {
		return Config{}, err
	}
	return Config{EditorCommand: defaultEditorCommand}, nil
}

func ConfigExists() (bool, error) {
	path, err := configPath()
	if err != nil {
		return false, err
	}
	_, err = os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

func SaveConfig(cfg Config) error {
	path, err := configPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}

func configPath() (string, error) {
	home, err := spawnHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "config.json"), nil
}

func spawnHomeDir() (string, error) {
	home := strings.TrimSpace(os.Getenv("HOME"))
	if home == "" {
		return "", errors.New("HOME not set")
	}
	return filepath.Join(home, ".spawn"), nil
}
