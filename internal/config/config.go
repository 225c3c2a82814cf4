package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"devident/internal/netroute"
)

type Config struct {
	// MACPaths overrides the built-in candidate file list. When non-empty it
	// replaces the defaults entirely, it does not extend them.
	MACPaths    []string `json:"mac_paths"`
	ProbeTarget string   `json:"probe_target"`
	LogPath     string   `json:"log_path"`
}

func Load(path string) (*Config, error) {
	// Default config
	cfg := &Config{
		ProbeTarget: netroute.DefaultProbeTarget,
		LogPath:     "devident.log",
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return default if no config exists
			return cfg, nil
		}
		return nil, err
	}
	defer f.Close()

	decoder := json.NewDecoder(f)
	if err := decoder.Decode(cfg); err != nil {
		return nil, err
	}

	// Normalize log path relative to the executable
	if cfg.LogPath == "devident.log" || cfg.LogPath == "" {
		ex, err := os.Executable()
		if err == nil {
			cfg.LogPath = filepath.Join(filepath.Dir(ex), "devident.log")
		}
	}

	return cfg, nil
}

func Save(path string, cfg *Config) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	return encoder.Encode(cfg)
}
