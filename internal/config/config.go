package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Image providers
const (
	ProviderOpenAI = "openai"
	ProviderImagen = "imagen"
)

// ErrMissingCredential is returned when the selected provider has no API key
var ErrMissingCredential = errors.New("missing API credential")

// Config holds all application configuration
type Config struct {
	ServerAddr string          `yaml:"server_addr"`
	StaticDir  string          `yaml:"static_dir"`
	AssetsDir  string          `yaml:"assets_dir"` // generated images and manifest.json
	Generator  GeneratorConfig `yaml:"generator"`
}

// GeneratorConfig holds asset-generation settings
type GeneratorConfig struct {
	Provider          string        `yaml:"provider"`
	Model             string        `yaml:"model"`
	BaseURL           string        `yaml:"base_url"`
	Concurrency       int           `yaml:"concurrency"`
	RequestsPerMinute int           `yaml:"requests_per_minute"`
	DownloadTimeout   time.Duration `yaml:"download_timeout"`

	// Read from the environment only
	OpenAIAPIKey string `yaml:"-"`
	GeminiAPIKey string `yaml:"-"`
}

// Default returns the configuration used when nothing is overridden
func Default() *Config {
	return &Config{
		ServerAddr: ":8080",
		StaticDir:  "static",
		AssetsDir:  "public/themes",
		Generator: GeneratorConfig{
			Provider:        ProviderOpenAI,
			Concurrency:     3,
			DownloadTimeout: 2 * time.Minute,
		},
	}
}

// Load builds the configuration: defaults, then the YAML file named by
// FOLIO_CONFIG (or ./folio.yaml when present), then environment variables.
// .env files are loaded first and never clobber the real environment.
func Load() (*Config, error) {
	LoadDotEnvAuto()

	cfg := Default()

	path := os.Getenv("FOLIO_CONFIG")
	explicit := path != ""
	if !explicit {
		path = "folio.yaml"
	}
	if err := cfg.mergeFile(path); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeFile overlays values from a YAML file
func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("SERVER_ADDR"); v != "" {
		c.ServerAddr = v
	}
	if v := os.Getenv("STATIC_DIR"); v != "" {
		c.StaticDir = v
	}
	if v := os.Getenv("ASSETS_DIR"); v != "" {
		c.AssetsDir = v
	}
	if v := os.Getenv("IMAGE_PROVIDER"); v != "" {
		c.Generator.Provider = v
	}
	if v := os.Getenv("IMAGE_MODEL"); v != "" {
		c.Generator.Model = v
	}
	if v := os.Getenv("OPENAI_BASE_URL"); v != "" {
		c.Generator.BaseURL = v
	}
	if v := os.Getenv("IMAGE_RPM"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid IMAGE_RPM %q: %w", v, err)
		}
		c.Generator.RequestsPerMinute = n
	}
	c.Generator.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	c.Generator.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	return nil
}

// CredentialEnv returns the environment variable holding the provider's key
func CredentialEnv(provider string) string {
	if provider == ProviderImagen {
		return "GEMINI_API_KEY"
	}
	return "OPENAI_API_KEY"
}

// APIKey returns the credential for the configured provider
func (g GeneratorConfig) APIKey() (string, error) {
	var key string
	switch g.Provider {
	case ProviderOpenAI:
		key = g.OpenAIAPIKey
	case ProviderImagen:
		key = g.GeminiAPIKey
	default:
		return "", fmt.Errorf("unknown image provider %q (want %s or %s)", g.Provider, ProviderOpenAI, ProviderImagen)
	}
	if key == "" {
		return "", fmt.Errorf("%w: set %s", ErrMissingCredential, CredentialEnv(g.Provider))
	}
	return key, nil
}
