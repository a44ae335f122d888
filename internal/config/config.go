// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Default limits applied when neither config file, environment, nor flags
// set a value.
const (
	DefaultMaxFileSizeMB = 10
	DefaultRateLimit     = 10
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Behavior
	APIKey     string `json:"api_key,omitempty"`     // Gemini API key
	AIEnabled  bool   `json:"ai_enabled,omitempty"`  // Enable AI suggestion generation
	UseBrowser bool   `json:"use_browser,omitempty"` // Use headless browser for scholar pages
	Verbose    bool   `json:"verbose,omitempty"`     // Print detailed debug information

	// Limits
	MaxFileSizeMB int `json:"max_file_size_mb,omitempty" validate:"gte=0,lte=100"` // Resume upload cap in megabytes
	RateLimit     int `json:"rate_limit,omitempty" validate:"gte=0"`               // Scholar requests allowed per minute

	// Scraping
	ScholarBaseURL string `json:"scholar_base_url,omitempty" validate:"omitempty,url"` // Override for testing against a local server
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv builds a Config from environment variables. Call after godotenv
// has loaded any .env file.
func FromEnv() Config {
	cfg := Config{
		APIKey:         os.Getenv("GOOGLE_GEMINI_API_KEY"),
		AIEnabled:      os.Getenv("AI_ENABLED") == "true",
		UseBrowser:     os.Getenv("USE_BROWSER") == "true",
		Verbose:        os.Getenv("VERBOSE") == "true",
		ScholarBaseURL: os.Getenv("SCHOLAR_BASE_URL"),
	}
	if v, err := strconv.Atoi(os.Getenv("SCHOLAR_RATE_LIMIT")); err == nil {
		cfg.RateLimit = v
	}
	if v, err := strconv.Atoi(os.Getenv("MAX_FILE_SIZE_MB")); err == nil {
		cfg.MaxFileSizeMB = v
	}
	return cfg
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			first := errs[0]
			return fmt.Errorf("config error: field %q failed %q validation", first.Field(), first.Tag())
		}
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from
// defaults. Bool fields are not merged because unset and false cannot be
// distinguished; CLI flags always win for those.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.ScholarBaseURL == "" {
		result.ScholarBaseURL = defaults.ScholarBaseURL
	}

	if result.MaxFileSizeMB == 0 {
		result.MaxFileSizeMB = defaults.MaxFileSizeMB
	}
	if result.MaxFileSizeMB == 0 {
		result.MaxFileSizeMB = DefaultMaxFileSizeMB
	}

	if result.RateLimit == 0 {
		result.RateLimit = defaults.RateLimit
	}
	if result.RateLimit == 0 {
		result.RateLimit = DefaultRateLimit
	}

	return result
}
