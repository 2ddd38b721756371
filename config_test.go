package console

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("OPSDESK_BASE_URL", "")
	t.Setenv("OPSDESK_HTTP_TIMEOUT", "")
	t.Setenv("OPSDESK_DEMO", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.BaseURL != "http://localhost:8080/api" {
		t.Errorf("BaseURL = %s", cfg.BaseURL)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Errorf("HTTPTimeout = %v", cfg.HTTPTimeout)
	}
	if cfg.DemoMode {
		t.Error("demo mode on by default")
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("OPSDESK_BASE_URL", "https://desk.example.com/api")
	t.Setenv("OPSDESK_HTTP_TIMEOUT", "5s")
	t.Setenv("OPSDESK_DEMO", "true")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.BaseURL != "https://desk.example.com/api" || cfg.HTTPTimeout != 5*time.Second || !cfg.DemoMode {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestNewFromEnv_PersistentSession(t *testing.T) {
	statePath := filepath.Join(t.TempDir(), "session.json")
	t.Setenv("OPSDESK_BASE_URL", "http://localhost:8080/api")
	t.Setenv("OPSDESK_DEMO", "true")
	t.Setenv("OPSDESK_STATE_PATH", statePath)

	c, err := NewFromEnv()
	if err != nil {
		t.Fatalf("NewFromEnv: %v", err)
	}
	if _, _, err := c.Login(context.Background(), "admin", "password"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	_ = c.Close()

	// A second client built from the same environment sees the session.
	c2, err := NewFromEnv()
	if err != nil {
		t.Fatalf("second NewFromEnv: %v", err)
	}
	defer c2.Close()
	user, ok := c2.Session().Current()
	if !ok || user.Username != "admin" {
		t.Fatalf("session not restored, got %+v ok=%v", user, ok)
	}
}
