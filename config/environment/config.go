package environment

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	BackendProxy  = "proxy"
	BackendOpenAI = "openai"
	BackendMock   = "mock"

	DefaultProxyEndpoint = "https://ai-proxy-production-c3e8.up.railway.app/v1/menu"
)

// Config holds everything the server and CLI need. Secrets come from the
// environment; the YAML file only carries non-secret defaults.
type Config struct {
	Backend   string          `yaml:"backend"`
	Server    ServerConfig    `yaml:"server"`
	Proxy     ProxyConfig     `yaml:"proxy"`
	OpenAI    OpenAIConfig    `yaml:"openai"`
	Languages LanguagesConfig `yaml:"languages"`
	Capture   CaptureConfig   `yaml:"capture"`
	Share     ShareConfig     `yaml:"share"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type ServerConfig struct {
	Port           string   `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type ProxyConfig struct {
	Endpoint     string        `yaml:"endpoint"`
	Token        string        `yaml:"-"`
	Timeout      time.Duration `yaml:"timeout"`
	DebugEnabled bool          `yaml:"debug_enabled"`
}

type OpenAIConfig struct {
	APIKey  string `yaml:"-"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
}

type LanguagesConfig struct {
	DefaultIn  string `yaml:"default_in"`
	DefaultOut string `yaml:"default_out"`
}

type CaptureConfig struct {
	Directory         string `yaml:"directory"`
	RecognizerCommand string `yaml:"recognizer_command"`
}

type ShareConfig struct {
	BaseURL string        `yaml:"base_url"`
	TTL     time.Duration `yaml:"ttl"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

func DefaultConfig() *Config {
	return &Config{
		Backend: BackendProxy,
		Server: ServerConfig{
			Port:           "8080",
			AllowedOrigins: []string{"*"},
		},
		Proxy: ProxyConfig{
			Endpoint:     DefaultProxyEndpoint,
			Timeout:      120 * time.Second,
			DebugEnabled: true,
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o",
		},
		Languages: LanguagesConfig{
			DefaultIn:  "auto",
			DefaultOut: "en",
		},
		Capture: CaptureConfig{
			Directory:         filepath.Join(os.TempDir(), "MainuMenuCaptures"),
			RecognizerCommand: "tesseract",
		},
		Share: ShareConfig{
			BaseURL: "https://mainu.app/share/",
			TTL:     24 * time.Hour,
		},
		Logging: LoggingConfig{
			Level: "info",
			JSON:  true,
		},
	}
}

// Load reads .env (if present), then the YAML file at path (if non-empty and
// present), then applies environment overrides.
func Load(path string) (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	setString := func(target *string, keys ...string) {
		for _, key := range keys {
			if v := strings.TrimSpace(os.Getenv(key)); v != "" {
				*target = v
				return
			}
		}
	}

	setString(&c.Backend, "MAINU_BACKEND")
	setString(&c.Server.Port, "PORT")
	setString(&c.Proxy.Endpoint, "MAINU_PROXY_ENDPOINT")
	setString(&c.Proxy.Token, "MAINU_PROXY_TOKEN")
	setString(&c.OpenAI.APIKey, "OPENAI_API_KEY")
	setString(&c.OpenAI.Model, "OPENAI_MODEL")
	setString(&c.OpenAI.BaseURL, "OPENAI_BASE_URL")
	setString(&c.Languages.DefaultIn, "MAINU_LANG_IN")
	setString(&c.Languages.DefaultOut, "MAINU_LANG_OUT")
	setString(&c.Capture.Directory, "MAINU_CAPTURE_DIR")
	setString(&c.Capture.RecognizerCommand, "MAINU_RECOGNIZER")
	setString(&c.Share.BaseURL, "MAINU_SHARE_BASE_URL")
	setString(&c.Logging.Level, "MAINU_LOG_LEVEL")

	if v := os.Getenv("MAINU_PROXY_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Proxy.Timeout = d
		}
	}
	if v := os.Getenv("MAINU_PROXY_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Proxy.DebugEnabled = b
		}
	}
	if v := os.Getenv("MAINU_ALLOWED_ORIGINS"); v != "" {
		var origins []string
		for _, origin := range strings.Split(v, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				origins = append(origins, origin)
			}
		}
		c.Server.AllowedOrigins = origins
	}
}

// Validate checks that the selected backend has what it needs.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendProxy:
		if c.Proxy.Endpoint == "" {
			return errors.New("proxy endpoint is required")
		}
		if c.Proxy.Token == "" {
			return errors.New("MAINU_PROXY_TOKEN environment variable is missing")
		}
	case BackendOpenAI:
		if c.OpenAI.APIKey == "" {
			return errors.New("OPENAI_API_KEY environment variable is missing")
		}
	case BackendMock:
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	if c.Proxy.Timeout <= 0 {
		return errors.New("proxy timeout must be positive")
	}
	return nil
}
