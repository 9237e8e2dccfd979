package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func newViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	BindEnv(v)
	return v
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(newViper())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Addr != ":8000" {
		t.Errorf("expected addr ':8000', got %q", cfg.Server.Addr)
	}
	if cfg.Provider.Name != "gtx" {
		t.Errorf("expected provider 'gtx', got %q", cfg.Provider.Name)
	}
	if cfg.Provider.Timeout != 10*time.Second {
		t.Errorf("expected 10s timeout, got %s", cfg.Provider.Timeout)
	}
	if len(cfg.Server.AllowedOrigins) != len(DefaultAllowedOrigins) {
		t.Errorf("expected %d default origins, got %v", len(DefaultAllowedOrigins), cfg.Server.AllowedOrigins)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PERELAY_PROVIDER_NAME", "mymemory")
	t.Setenv("PERELAY_PROVIDER_TIMEOUT", "3s")
	t.Setenv("PERELAY_SERVER_ALLOWED_ORIGINS", "http://a.test,https://b.test")
	t.Setenv("PERELAY_MYMEMORY_EMAIL", "me@example.com")

	cfg, err := Load(newViper())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Provider.Name != "mymemory" {
		t.Errorf("expected provider 'mymemory', got %q", cfg.Provider.Name)
	}
	if cfg.Provider.Timeout != 3*time.Second {
		t.Errorf("expected 3s timeout, got %s", cfg.Provider.Timeout)
	}
	if len(cfg.Server.AllowedOrigins) != 2 || cfg.Server.AllowedOrigins[1] != "https://b.test" {
		t.Errorf("unexpected origins %v", cfg.Server.AllowedOrigins)
	}
	if cfg.ServiceConfig().Email != "me@example.com" {
		t.Errorf("expected email in service config, got %q", cfg.ServiceConfig().Email)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "perelay.yaml")
	content := `server:
  addr: "127.0.0.1:9000"
provider:
  name: google
  timeout: 5s
google:
  credentials: /secrets/creds.json
  project_id: demo
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		t.Fatalf("ReadInConfig failed: %v", err)
	}

	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Addr != "127.0.0.1:9000" {
		t.Errorf("expected addr from file, got %q", cfg.Server.Addr)
	}
	sc := cfg.ServiceConfig()
	if sc.Credentials != "/secrets/creds.json" || sc.ProjectID != "demo" {
		t.Errorf("unexpected google settings %+v", sc)
	}
	if sc.Timeout != 5*time.Second {
		t.Errorf("expected 5s timeout, got %s", sc.Timeout)
	}
}

func TestLoad_UnknownProvider(t *testing.T) {
	v := newViper()
	v.Set("provider.name", "babelfish")

	if _, err := Load(v); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestLoad_InvalidTimeout(t *testing.T) {
	v := newViper()
	v.Set("provider.timeout", "0s")

	if _, err := Load(v); err == nil {
		t.Error("expected error for zero timeout")
	}
}

func TestLoad_InvalidOrigin(t *testing.T) {
	v := newViper()
	v.Set("server.allowed_origins", []string{"localhost:5500"})

	if _, err := Load(v); err == nil {
		t.Error("expected error for origin without scheme")
	}
}
