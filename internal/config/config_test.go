package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Version != "1.0" {
		t.Errorf("expected version 1.0, got %s", cfg.Version)
	}

	if cfg.Database.Path != "actividad_fisica.db" {
		t.Errorf("expected database actividad_fisica.db, got %s", cfg.Database.Path)
	}

	if cfg.Entry.StrictIntensity {
		t.Error("expected lenient intensity checking by default")
	}

	if cfg.Chart.Width != 40 {
		t.Errorf("expected chart width 40, got %d", cfg.Chart.Width)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "empty database path",
			modify:  func(c *Config) { c.Database.Path = "" },
			wantErr: true,
		},
		{
			name:    "narrow chart",
			modify:  func(c *Config) { c.Chart.Width = 3 },
			wantErr: true,
		},
		{
			name:    "log file without size",
			modify:  func(c *Config) { c.Log.File = "exlog.log"; c.Log.MaxSizeMB = 0 },
			wantErr: true,
		},
		{
			name:    "log file with size",
			modify:  func(c *Config) { c.Log.File = "exlog.log" },
			wantErr: false,
		},
		{
			name:    "strict intensity",
			modify:  func(c *Config) { c.Entry.StrictIntensity = true },
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadAndSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)

	cfg := DefaultConfig()
	cfg.Database.Path = "/tmp/other.db"
	cfg.Entry.StrictIntensity = true

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if loaded.Database.Path != cfg.Database.Path {
		t.Errorf("expected database path %s, got %s", cfg.Database.Path, loaded.Database.Path)
	}
	if !loaded.Entry.StrictIntensity {
		t.Error("expected strict_intensity to survive a save/load")
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte("chart:\n  width: 60\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Chart.Width != 60 {
		t.Errorf("expected chart width 60, got %d", cfg.Chart.Width)
	}
	if cfg.Database.Path != "actividad_fisica.db" {
		t.Errorf("expected default database path, got %s", cfg.Database.Path)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte("chart: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadNonExistent(t *testing.T) {
	cfg, err := Load("/nonexistent/path/exlog.yaml")
	if err != nil {
		t.Fatalf("Load() should not error for missing file, got %v", err)
	}

	if cfg.Export.DefaultPath != "ejercicios.csv" {
		t.Errorf("expected default export path, got %s", cfg.Export.DefaultPath)
	}
}

func TestFindConfigFile(t *testing.T) {
	dir := t.TempDir()
	subdir := filepath.Join(dir, "subdir")
	if err := os.MkdirAll(subdir, 0755); err != nil {
		t.Fatal(err)
	}

	configPath := filepath.Join(dir, FileName)
	if err := os.WriteFile(configPath, []byte("version: '1.0'"), 0644); err != nil {
		t.Fatal(err)
	}

	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	if err := os.Chdir(subdir); err != nil {
		t.Fatal(err)
	}

	found, err := FindConfigFile()
	if err != nil {
		t.Fatalf("FindConfigFile() error = %v", err)
	}

	// t.TempDir may sit behind a symlink (macOS /var -> /private/var).
	wantInfo, _ := os.Stat(configPath)
	gotInfo, err := os.Stat(found)
	if err != nil || !os.SameFile(wantInfo, gotInfo) {
		t.Errorf("expected %s, got %s", configPath, found)
	}
}
