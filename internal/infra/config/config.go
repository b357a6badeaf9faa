package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const defaultConfigPath = "configs/config.yaml"

// Summarizer providers understood by the wiring layer.
const (
	ProviderHuggingFace = "huggingface"
	ProviderOpenAI      = "openai"
	ProviderAnthropic   = "anthropic"
	ProviderLead        = "lead"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP       HTTPConfig       `yaml:"http"`
	Analyzer   AnalyzerConfig   `yaml:"analyzer"`
	Summarizer SummarizerConfig `yaml:"summarizer"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address         string        `yaml:"address" env:"HTTP_ADDRESS"`
	ReadTimeout     time.Duration `yaml:"readTimeout" env:"HTTP_READ_TIMEOUT"`
	WriteTimeout    time.Duration `yaml:"writeTimeout" env:"HTTP_WRITE_TIMEOUT"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout" env:"HTTP_SHUTDOWN_TIMEOUT"`
	MaxBodyBytes    int64         `yaml:"maxBodyBytes" env:"HTTP_MAX_BODY_BYTES"`
	CORS            CORSConfig    `yaml:"cors"`
}

// CORSConfig lists the origins allowed to call the API. Empty means any origin.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowedOrigins" env:"HTTP_CORS_ALLOWED_ORIGINS" envSeparator:","`
}

// AnalyzerConfig drives chunking and generation bounds.
type AnalyzerConfig struct {
	ChunkSize     int    `yaml:"chunkSize" env:"ANALYZER_CHUNK_SIZE"`
	MinLength     int    `yaml:"minLength" env:"ANALYZER_MIN_LENGTH"`
	MaxLength     int    `yaml:"maxLength" env:"ANALYZER_MAX_LENGTH"`
	DoSample      bool   `yaml:"doSample" env:"ANALYZER_DO_SAMPLE"`
	TokenWindow   int    `yaml:"tokenWindow" env:"ANALYZER_TOKEN_WINDOW"`
	TokenEncoding string `yaml:"tokenEncoding" env:"ANALYZER_TOKEN_ENCODING"`
}

// SummarizerConfig selects and configures the summarization model.
// Timeout bounds one model call; 0 waits indefinitely.
type SummarizerConfig struct {
	Provider string        `yaml:"provider" env:"SUMMARIZER_PROVIDER"`
	Model    string        `yaml:"model" env:"SUMMARIZER_MODEL"`
	APIKey   string        `yaml:"apiKey" env:"SUMMARIZER_API_KEY"`
	BaseURL  string        `yaml:"baseUrl" env:"SUMMARIZER_BASE_URL"`
	Timeout  time.Duration `yaml:"timeout" env:"SUMMARIZER_TIMEOUT"`
}

// Load reads configuration from defaults, an optional YAML file, an optional
// .env file and the process environment, in that order of precedence.
func Load() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("load .env: %w", err)
		}
	}

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		if _, err := os.Stat(defaultConfigPath); err == nil {
			path = defaultConfigPath
		}
	}
	return load(path)
}

func load(path string) (*Config, error) {
	cfg := defaultConfig()

	if path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	cfg.Summarizer.Provider = strings.ToLower(strings.TrimSpace(cfg.Summarizer.Provider))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:         ":8000",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    0,
			ShutdownTimeout: 10 * time.Second,
			MaxBodyBytes:    10 << 20,
		},
		Analyzer: AnalyzerConfig{
			ChunkSize:     1000,
			MinLength:     30,
			MaxLength:     130,
			DoSample:      false,
			TokenWindow:   1024,
			TokenEncoding: "cl100k_base",
		},
		Summarizer: SummarizerConfig{
			Provider: ProviderHuggingFace,
			Model:    "facebook/bart-large-cnn",
			Timeout:  0,
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.HTTP.Address) == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.HTTP.ReadTimeout < 0 || c.HTTP.WriteTimeout < 0 {
		return errors.New("http timeouts cannot be negative")
	}
	if c.HTTP.MaxBodyBytes <= 0 {
		return errors.New("http.maxBodyBytes must be positive")
	}
	for _, origin := range c.HTTP.CORS.AllowedOrigins {
		if origin == "*" {
			continue
		}
		if !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("http.cors.allowedOrigins: %q must start with http:// or https://", origin)
		}
	}
	if c.Analyzer.ChunkSize <= 0 {
		return errors.New("analyzer.chunkSize must be positive")
	}
	if c.Analyzer.MinLength <= 0 {
		return errors.New("analyzer.minLength must be positive")
	}
	if c.Analyzer.MaxLength < c.Analyzer.MinLength {
		return errors.New("analyzer.maxLength must be >= analyzer.minLength")
	}
	if c.Analyzer.TokenWindow < 0 {
		return errors.New("analyzer.tokenWindow cannot be negative")
	}
	if c.Summarizer.Timeout < 0 {
		return errors.New("summarizer.timeout cannot be negative")
	}
	switch c.Summarizer.Provider {
	case ProviderHuggingFace:
		if strings.TrimSpace(c.Summarizer.Model) == "" {
			return errors.New("summarizer.model cannot be empty")
		}
	case ProviderOpenAI, ProviderAnthropic:
		if strings.TrimSpace(c.Summarizer.Model) == "" {
			return errors.New("summarizer.model cannot be empty")
		}
		if strings.TrimSpace(c.Summarizer.APIKey) == "" {
			return fmt.Errorf("summarizer.apiKey is required for provider %q", c.Summarizer.Provider)
		}
	case ProviderLead:
	default:
		return fmt.Errorf("summarizer.provider %q is not supported", c.Summarizer.Provider)
	}
	return nil
}
