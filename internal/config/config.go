// Package config provides configuration loading and validation for the
// analyzer CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config is the analyzer configuration. All fields are optional;
// missing values use defaults, environment variables, or CLI flags.
type Config struct {
	// External services
	APIKey            string `json:"api_key,omitempty"`             // Gemini API key for AI enrichment
	Model             string `json:"model,omitempty"`               // Gemini model name
	PremiumAEndpoint  string `json:"premium_a_endpoint,omitempty"`  // First premium resume parser
	PremiumAKey       string `json:"premium_a_key,omitempty"`
	PremiumBEndpoint  string `json:"premium_b_endpoint,omitempty"`  // Second premium resume parser
	PremiumBKey       string `json:"premium_b_key,omitempty"`
	JobSearchEndpoint string `json:"job_search_endpoint,omitempty"` // Job-search collaborator
	JobSearchKey      string `json:"job_search_key,omitempty"`

	// Persistence
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// Behavior
	Location string `json:"location,omitempty"` // Default job-search location
	Verbose  bool   `json:"verbose,omitempty"`  // Print detailed debug information
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

// FromEnv builds a Config from environment variables. Used as the
// default layer beneath a config file and CLI flags.
func FromEnv() Config {
	cfg := Config{
		APIKey:            os.Getenv("GEMINI_API_KEY"),
		Model:             os.Getenv("GEMINI_MODEL"),
		PremiumAEndpoint:  os.Getenv("PREMIUM_A_ENDPOINT"),
		PremiumAKey:       os.Getenv("PREMIUM_A_KEY"),
		PremiumBEndpoint:  os.Getenv("PREMIUM_B_ENDPOINT"),
		PremiumBKey:       os.Getenv("PREMIUM_B_KEY"),
		JobSearchEndpoint: os.Getenv("JOB_SEARCH_ENDPOINT"),
		JobSearchKey:      os.Getenv("JOB_SEARCH_KEY"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		Location:          os.Getenv("JOB_SEARCH_LOCATION"),
	}
	if port, err := strconv.Atoi(os.Getenv("PORT")); err == nil {
		cfg.Port = port
	}
	return cfg
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.PremiumAEndpoint == "" && c.PremiumAKey != "" {
		return fmt.Errorf("config error: 'premium_a_key' set without 'premium_a_endpoint'")
	}
	if c.PremiumBEndpoint == "" && c.PremiumBKey != "" {
		return fmt.Errorf("config error: 'premium_b_key' set without 'premium_b_endpoint'")
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. Used to layer a config file over environment values.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.PremiumAEndpoint == "" {
		result.PremiumAEndpoint = defaults.PremiumAEndpoint
	}
	if result.PremiumAKey == "" {
		result.PremiumAKey = defaults.PremiumAKey
	}
	if result.PremiumBEndpoint == "" {
		result.PremiumBEndpoint = defaults.PremiumBEndpoint
	}
	if result.PremiumBKey == "" {
		result.PremiumBKey = defaults.PremiumBKey
	}
	if result.JobSearchEndpoint == "" {
		result.JobSearchEndpoint = defaults.JobSearchEndpoint
	}
	if result.JobSearchKey == "" {
		result.JobSearchKey = defaults.JobSearchKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.Location == "" {
		result.Location = defaults.Location
	}

	if result.Port == 0 {
		if defaults.Port > 0 {
			result.Port = defaults.Port
		} else {
			result.Port = 8080 // Default listen port
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
