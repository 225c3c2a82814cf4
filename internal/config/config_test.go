package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "config_test")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	cfg, err := Load(filepath.Join(tmpDir, "config.json"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.ProbeTarget != "10.8.0.1" {
		t.Errorf("Expected default probe target 10.8.0.1, got %q", cfg.ProbeTarget)
	}
	if len(cfg.MACPaths) != 0 {
		t.Errorf("Expected no MAC path overrides by default, got %v", cfg.MACPaths)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "config_test")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	path := filepath.Join(tmpDir, "config.json")
	want := &Config{
		MACPaths:    []string{"/hw/class/net/eth0/address"},
		ProbeTarget: "192.168.1.1",
		LogPath:     filepath.Join(tmpDir, "devident.log"),
	}

	if err := Save(path, want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got.ProbeTarget != want.ProbeTarget {
		t.Errorf("Expected probe target %q, got %q", want.ProbeTarget, got.ProbeTarget)
	}
	if got.LogPath != want.LogPath {
		t.Errorf("Expected log path %q, got %q", want.LogPath, got.LogPath)
	}
	if len(got.MACPaths) != 1 || got.MACPaths[0] != want.MACPaths[0] {
		t.Errorf("Expected MAC paths %v, got %v", want.MACPaths, got.MACPaths)
	}
}
