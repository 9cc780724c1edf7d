package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Inventory.Level != 1 {
		t.Errorf("default level = %d, want 1", cfg.Inventory.Level)
	}
	if cfg.Mirror.DeleteExtra {
		t.Error("delete_extra must default to false")
	}
	if cfg.Performance.BufferSize != 65536 {
		t.Errorf("buffer size = %d, want 65536", cfg.Performance.BufferSize)
	}
	if cfg.Output.Format != "human" {
		t.Errorf("output format = %q, want human", cfg.Output.Format)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"Defaults", func(c *Config) {}, false},
		{"Level3", func(c *Config) { c.Inventory.Level = 3 }, false},
		{"Level0", func(c *Config) { c.Inventory.Level = 0 }, true},
		{"Level4", func(c *Config) { c.Inventory.Level = 4 }, true},
		{"TinyBuffer", func(c *Config) { c.Performance.BufferSize = 512 }, true},
		{"JSONOutput", func(c *Config) { c.Output.Format = "json" }, false},
		{"BadOutputFormat", func(c *Config) { c.Output.Format = "xml" }, true},
		{"BadLogFormat", func(c *Config) { c.Logging.Format = "csv" }, true},
		{"BadLogLevel", func(c *Config) { c.Logging.Level = "verbose" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %t", err, tt.wantErr)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	cfg := Default()
	cfg.Inventory.Level = 2
	cfg.Mirror.DeleteExtra = true
	cfg.Logging.Format = "json"

	if err := SaveToFile(cfg, path); err != nil {
		t.Fatalf("SaveToFile failed: %v", err)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if loaded.Inventory.Level != 2 || !loaded.Mirror.DeleteExtra || loaded.Logging.Format != "json" {
		t.Errorf("loaded config = %+v", loaded)
	}
}

func TestLoadFromFile(t *testing.T) {
	t.Run("MissingFile", func(t *testing.T) {
		if _, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("MalformedYAML", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		if err := os.WriteFile(path, []byte("inventory: ["), 0644); err != nil {
			t.Fatalf("write failed: %v", err)
		}

		if _, err := LoadFromFile(path); err == nil {
			t.Error("expected error for malformed YAML")
		}
	})

	t.Run("InvalidValuesRejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "invalid.yaml")
		if err := os.WriteFile(path, []byte("inventory:\n  level: 7\n"), 0644); err != nil {
			t.Fatalf("write failed: %v", err)
		}

		if _, err := LoadFromFile(path); err == nil {
			t.Error("expected validation error for level 7")
		}
	})

	t.Run("PartialFileKeepsDefaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "partial.yaml")
		if err := os.WriteFile(path, []byte("mirror:\n  delete_extra: true\n"), 0644); err != nil {
			t.Fatalf("write failed: %v", err)
		}

		cfg, err := LoadFromFile(path)
		if err != nil {
			t.Fatalf("LoadFromFile failed: %v", err)
		}
		if !cfg.Mirror.DeleteExtra {
			t.Error("delete_extra not loaded")
		}
		if cfg.Performance.BufferSize != 65536 {
			t.Errorf("unset fields must keep defaults, buffer size = %d", cfg.Performance.BufferSize)
		}
	})
}

func TestSaveToFileRejectsInvalid(t *testing.T) {
	cfg := Default()
	cfg.Inventory.Level = 0

	if err := SaveToFile(cfg, filepath.Join(t.TempDir(), "c.yaml")); err == nil {
		t.Error("expected validation error before writing")
	}
}
