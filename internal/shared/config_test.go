package shared

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Server.BaseURL != "http://localhost:5000" {
			t.Errorf("unexpected default base URL: %s", config.Server.BaseURL)
		}
		if config.Server.TimeoutSeconds != 90 {
			t.Errorf("unexpected default timeout: %d", config.Server.TimeoutSeconds)
		}
		if config.Server.RateLimit != 2.0 {
			t.Errorf("unexpected default rate limit: %v", config.Server.RateLimit)
		}
		if config.Database.Path == "" {
			t.Error("expected default database path")
		}
		if config.Auth.TokenPath == "" {
			t.Error("expected default token path")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		t.Run("Valid File", func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			content := `
[server]
base_url = "http://example.com:8080"
timeout_seconds = 30
rate_limit = 0.5

[database]
path = "/tmp/test.db"
max_open_conns = 5
max_idle_conns = 2

[auth]
token_path = "/tmp/token"
`
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				t.Fatalf("failed to write config file: %v", err)
			}

			config, err := LoadConfig(path)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if config.Server.BaseURL != "http://example.com:8080" {
				t.Errorf("unexpected base URL: %s", config.Server.BaseURL)
			}
			if config.Server.TimeoutSeconds != 30 {
				t.Errorf("unexpected timeout: %d", config.Server.TimeoutSeconds)
			}
			if config.Database.MaxOpenConns != 5 {
				t.Errorf("unexpected max open conns: %d", config.Database.MaxOpenConns)
			}
			if config.Auth.TokenPath != "/tmp/token" {
				t.Errorf("unexpected token path: %s", config.Auth.TokenPath)
			}
		})

		t.Run("Missing File", func(t *testing.T) {
			if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
				t.Error("expected error for missing file")
			}
		})

		t.Run("Invalid TOML", func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte("not = [valid"), 0644); err != nil {
				t.Fatalf("failed to write config file: %v", err)
			}

			if _, err := LoadConfig(path); err == nil {
				t.Error("expected error for invalid TOML")
			}
		})
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		t.Run("Creates From Template", func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")

			if err := CreateConfigFile(path); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			config, err := LoadConfig(path)
			if err != nil {
				t.Fatalf("created config should load: %v", err)
			}
			if config.Server.BaseURL == "" {
				t.Error("expected template to carry server settings")
			}
		})

		t.Run("Refuses To Overwrite", func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte("existing"), 0644); err != nil {
				t.Fatalf("failed to write file: %v", err)
			}

			if err := CreateConfigFile(path); err == nil {
				t.Error("expected error when file already exists")
			}
		})
	})
}
