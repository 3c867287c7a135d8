package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/valpere/trangate/internal/gateway"
	"github.com/valpere/trangate/internal/translator"
)

const EnvPrefix = "TRANGATE"

type Config struct {
	Translator TranslatorConfig `mapstructure:"translator"`
	Server     ServerConfig     `mapstructure:"server"`
}

type TranslatorConfig struct {
	Provider                 string `mapstructure:"provider"`
	translator.ServiceConfig `mapstructure:",squash"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"`
	DocsPath        string        `mapstructure:"docsPath"`
	StrictErrors    bool          `mapstructure:"strictErrors"`
	CORSOrigins     []string      `mapstructure:"corsOrigins"`
	ShutdownTimeout time.Duration `mapstructure:"shutdownTimeout"`
}

func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Load reads configuration from configPath, or from default.* in ./config
// or the working directory when configPath is empty. A .env file, when
// present, is loaded into the environment first.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Warning: .env file not loaded: %v", err)
	}

	v := viper.New()
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("default")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("translator.provider", "azure")
	v.SetDefault("translator.endpoint", "")
	v.SetDefault("translator.subscriptionKey", "")
	v.SetDefault("translator.location", "")
	v.SetDefault("translator.timeout", 30*time.Second)
	v.SetDefault("translator.credentials", "")
	v.SetDefault("translator.projectId", "")
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.docsPath", "/swaggerFinalProjDoc")
	v.SetDefault("server.strictErrors", false)
	v.SetDefault("server.corsOrigins", []string{})
	v.SetDefault("server.shutdownTimeout", 10*time.Second)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// No config file, use defaults and environment
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if cfg.Translator.Provider == "azure" && cfg.Translator.Endpoint == "" {
		cfg.Translator.Endpoint = translator.DefaultAzureEndpoint
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Translator.Provider {
	case "azure":
		if c.Translator.Endpoint == "" {
			return fmt.Errorf("translator.endpoint is required")
		}
		if c.Translator.SubscriptionKey == "" {
			return fmt.Errorf("translator.subscriptionKey is required")
		}
	case "google":
	default:
		return fmt.Errorf("unknown translator.provider %q (want azure or google)", c.Translator.Provider)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d", c.Server.Port)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("invalid server.mode %q", c.Server.Mode)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdownTimeout must be positive")
	}
	return validateDocsPath(c.Server.DocsPath)
}

// validateDocsPath rejects docs paths whose catch-all route would collide
// with the gateway routes when the router is built.
func validateDocsPath(p string) error {
	if !strings.HasPrefix(p, "/") {
		return fmt.Errorf("server.docsPath must start with '/'")
	}
	if p == "/" {
		return fmt.Errorf("server.docsPath must not be the root path")
	}
	if path.Clean(p) != p {
		return fmt.Errorf("server.docsPath %q must be a clean path without a trailing slash", p)
	}
	if strings.ContainsAny(p, ":*") {
		return fmt.Errorf("server.docsPath %q must not contain route wildcards", p)
	}
	for _, reserved := range []string{gateway.HealthPath, gateway.APIPrefix} {
		if p == reserved || strings.HasPrefix(p, reserved+"/") {
			return fmt.Errorf("server.docsPath %q conflicts with %s", p, reserved)
		}
	}
	return nil
}
