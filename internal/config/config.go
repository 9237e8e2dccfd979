// Package config holds the runtime settings of perelay. Values come from
// viper, which merges flags, PERELAY_* environment variables and an optional
// YAML file.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/valpere/perelay/internal/translator"
)

const EnvPrefix = "PERELAY"

// DefaultAllowedOrigins are the local dev servers and the published frontend.
var DefaultAllowedOrigins = []string{
	"http://127.0.0.1:5501",
	"http://localhost:5501",
	"http://127.0.0.1:5500",
	"http://localhost:5500",
	"https://nnkhlh376.github.io",
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Provider ProviderConfig `mapstructure:"provider"`
	Google   GoogleConfig   `mapstructure:"google"`
	MyMemory MyMemoryConfig `mapstructure:"mymemory"`
}

type ServerConfig struct {
	Addr           string   `mapstructure:"addr"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	Debug          bool     `mapstructure:"debug"`
}

type ProviderConfig struct {
	Name    string        `mapstructure:"name"`
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type GoogleConfig struct {
	Credentials string `mapstructure:"credentials"`
	ProjectID   string `mapstructure:"project_id"`
}

type MyMemoryConfig struct {
	Email string `mapstructure:"email"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8000")
	v.SetDefault("server.allowed_origins", DefaultAllowedOrigins)
	v.SetDefault("server.debug", false)
	v.SetDefault("provider.name", "gtx")
	v.SetDefault("provider.base_url", "")
	v.SetDefault("provider.timeout", 10*time.Second)
	v.SetDefault("google.credentials", "")
	v.SetDefault("google.project_id", "")
	v.SetDefault("mymemory.email", "")
}

// BindEnv makes every key readable from PERELAY_<SECTION>_<KEY>.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load decodes v into a Config and validates it.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Provider.Name {
	case "gtx", "google", "mymemory":
	default:
		return fmt.Errorf("unknown provider %q (want gtx, google or mymemory)", c.Provider.Name)
	}
	if c.Provider.Timeout <= 0 {
		return fmt.Errorf("provider timeout must be positive, got %s", c.Provider.Timeout)
	}
	for _, o := range c.Server.AllowedOrigins {
		if !strings.HasPrefix(o, "http://") && !strings.HasPrefix(o, "https://") {
			return fmt.Errorf("allowed origin %q must start with http:// or https://", o)
		}
	}
	return nil
}

// ServiceConfig returns the provider settings in the form translators take.
func (c *Config) ServiceConfig() translator.ServiceConfig {
	return translator.ServiceConfig{
		BaseURL:     c.Provider.BaseURL,
		Timeout:     c.Provider.Timeout,
		Credentials: c.Google.Credentials,
		ProjectID:   c.Google.ProjectID,
		Email:       c.MyMemory.Email,
	}
}
