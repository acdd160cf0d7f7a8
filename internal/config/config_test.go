// internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"claim-dashboard/internal/predictor"
)

func TestFromFile_Defaults(t *testing.T) {
	chdirTemp(t)
	t.Setenv("HOME", t.TempDir())

	cfg, err := FromFile("")
	if err != nil {
		t.Fatalf("FromFile() error = %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Port = %s, want 8080", cfg.Port)
	}
	if cfg.Environment != "development" {
		t.Errorf("Environment = %s, want development", cfg.Environment)
	}
	if cfg.Predictor.URL != predictor.DefaultURL {
		t.Errorf("Predictor.URL = %s, want %s", cfg.Predictor.URL, predictor.DefaultURL)
	}
	if cfg.Predictor.Timeout != 0 {
		t.Errorf("Predictor.Timeout = %s, want 0", cfg.Predictor.Timeout)
	}
	if cfg.Form.DiscardStale {
		t.Error("Form.DiscardStale = true, want false")
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "http://localhost:3000" {
		t.Errorf("CORS.AllowedOrigins = %v", cfg.CORS.AllowedOrigins)
	}
}

func TestFromFile_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "claimdash.yaml")
	content := `
port: "9090"
predictor:
  url: http://scoring.internal:8000/predict
  timeout: 3s
form:
  discard_stale: true
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	t.Setenv("CLAIMDASH_PORT", "7070")
	t.Setenv("CLAIMDASH_ENVIRONMENT", "production")

	cfg, err := FromFile(path)
	if err != nil {
		t.Fatalf("FromFile() error = %v", err)
	}

	if cfg.Port != "7070" {
		t.Errorf("Port = %s, want 7070 from env", cfg.Port)
	}
	if !cfg.IsProduction() {
		t.Error("IsProduction() = false, want true")
	}
	if cfg.Predictor.URL != "http://scoring.internal:8000/predict" {
		t.Errorf("Predictor.URL = %s", cfg.Predictor.URL)
	}
	if cfg.Predictor.Timeout != 3*time.Second {
		t.Errorf("Predictor.Timeout = %s, want 3s", cfg.Predictor.Timeout)
	}
	if !cfg.Form.DiscardStale {
		t.Error("Form.DiscardStale = false, want true")
	}
}

func TestFromFile_MissingExplicitFile(t *testing.T) {
	if _, err := FromFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("FromFile() error = nil, want error for missing explicit file")
	}
}

// chdirTemp changes into a fresh temp dir and restores the previous working
// directory on cleanup (equivalent of testing.T.Chdir, unavailable before Go 1.24).
func chdirTemp(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
