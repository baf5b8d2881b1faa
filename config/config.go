package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Common errors
var (
	ErrMissingSerpAPIKey = errors.New("missing SerpAPI key")
	ErrMissingOpenAIKey  = errors.New("missing OpenAI API key")
)

const (
	_defaultCurrency    = "INR"
	_defaultLocale      = "en"
	_defaultModel       = "gpt-4o"
	_defaultAddr        = ":8080"
	_defaultHTTPTimeout = 30 * time.Second
)

// Config holds everything the planner needs at startup. It is built
// once in main and passed explicitly to constructors; business logic
// never reads the process environment.
type Config struct {
	SerpAPIKey string `yaml:"serpapi_key"`
	OpenAIKey  string `yaml:"openai_key"`

	OpenAIBaseURL string `yaml:"openai_base_url"`
	OpenAIModel   string `yaml:"openai_model"`

	Currency string `yaml:"currency"`
	Locale   string `yaml:"locale"`

	Addr        string        `yaml:"addr"`
	HTTPTimeout time.Duration `yaml:"http_timeout"`
}

// Load builds a Config from the environment, optionally seeded from a
// YAML file. Environment values win over file values. The two secret
// keys are required; everything else has a default.
func Load(path string) (Config, error) {
	cfg := Config{
		Currency:    _defaultCurrency,
		Locale:      _defaultLocale,
		OpenAIModel: _defaultModel,
		Addr:        _defaultAddr,
		HTTPTimeout: _defaultHTTPTimeout,
	}

	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return Config{}, errors.Wrapf(err, "read config file %s", path)
		}
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return Config{}, errors.Wrapf(err, "parse config file %s", path)
		}
	}

	setFromEnv(&cfg.SerpAPIKey, "SERPAPI_KEY")
	setFromEnv(&cfg.OpenAIKey, "OPENAI_API_KEY")
	setFromEnv(&cfg.OpenAIBaseURL, "OPENAI_BASE_URL")
	setFromEnv(&cfg.OpenAIModel, "OPENAI_MODEL")
	setFromEnv(&cfg.Addr, "TP_ADDR")

	if cfg.SerpAPIKey == "" {
		return Config{}, ErrMissingSerpAPIKey
	}
	if cfg.OpenAIKey == "" {
		return Config{}, ErrMissingOpenAIKey
	}
	return cfg, nil
}

func setFromEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
