package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode"
)

// Config represents the complete application configuration
type Config struct {
	Version    string           `json:"version" yaml:"version"`
	Platform   PlatformConfig   `json:"platform" yaml:"platform"`
	NATS       NATSConfig       `json:"nats" yaml:"nats"`
	HTTP       HTTPConfig       `json:"http" yaml:"http"`
	Normalizer NormalizerConfig `json:"normalizer" yaml:"normalizer"`
}

// PlatformConfig defines platform identity
type PlatformConfig struct {
	Org         string `json:"org" yaml:"org"`
	ID          string `json:"id" yaml:"id"`
	InstanceID  string `json:"instance_id,omitempty" yaml:"instance_id,omitempty"`
	Environment string `json:"environment,omitempty" yaml:"environment,omitempty"`
}

// NATSConfig defines NATS connection settings
type NATSConfig struct {
	URL           string   `json:"url,omitempty" yaml:"url,omitempty"`
	MaxReconnects int      `json:"max_reconnects,omitempty" yaml:"max_reconnects,omitempty"`
	ReconnectWait Duration `json:"reconnect_wait,omitempty" yaml:"reconnect_wait,omitempty"`
	Username      string   `json:"username,omitempty" yaml:"username,omitempty"`
	Password      string   `json:"password,omitempty" yaml:"password,omitempty"`
	Token         string   `json:"token,omitempty" yaml:"token,omitempty"`
}

// HTTPConfig defines the gateway HTTP server settings
type HTTPConfig struct {
	Addr           string   `json:"addr,omitempty" yaml:"addr,omitempty"`
	MetricsPort    int      `json:"metrics_port,omitempty" yaml:"metrics_port,omitempty"`
	ReadTimeout    Duration `json:"read_timeout,omitempty" yaml:"read_timeout,omitempty"`
	WriteTimeout   Duration `json:"write_timeout,omitempty" yaml:"write_timeout,omitempty"`
	RateLimitRPS   float64  `json:"rate_limit_rps,omitempty" yaml:"rate_limit_rps,omitempty"`
	RateLimitBurst int      `json:"rate_limit_burst,omitempty" yaml:"rate_limit_burst,omitempty"`
}

// NormalizerConfig defines the measurement normalizer settings
type NormalizerConfig struct {
	Enabled       bool     `json:"enabled" yaml:"enabled"`
	InputSubjects []string `json:"input_subjects,omitempty" yaml:"input_subjects,omitempty"`
	OutputSubject string   `json:"output_subject,omitempty" yaml:"output_subject,omitempty"`
	Targets       []string `json:"targets,omitempty" yaml:"targets,omitempty"`
}

// SafeConfig provides thread-safe access to configuration
type SafeConfig struct {
	mu     sync.RWMutex
	config *Config
}

// NewSafeConfig creates a new thread-safe config wrapper
func NewSafeConfig(cfg *Config) *SafeConfig {
	if cfg == nil {
		cfg = &Config{}
	}
	return &SafeConfig{
		config: cfg,
	}
}

// Get returns a deep copy of the current configuration
func (sc *SafeConfig) Get() *Config {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.config.Clone()
}

// Update atomically updates the configuration after validation
func (sc *SafeConfig) Update(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config cannot be nil")
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.config = cfg
	return nil
}

// Clone creates a deep copy of the configuration
func (c *Config) Clone() *Config {
	if c == nil {
		return &Config{}
	}

	data, err := json.Marshal(c)
	if err != nil {
		copied := *c
		return &copied
	}

	var clone Config
	if err := json.Unmarshal(data, &clone); err != nil {
		copied := *c
		return &copied
	}

	return &clone
}

// Default returns a configuration populated with usable defaults
func Default() *Config {
	return &Config{
		Version: "1.0.0",
		Platform: PlatformConfig{
			Org:         "c360",
			ID:          "unitstream",
			Environment: "dev",
		},
		NATS: NATSConfig{
			URL:           "nats://localhost:4222",
			MaxReconnects: -1,
			ReconnectWait: Duration(2 * time.Second),
		},
		HTTP: HTTPConfig{
			Addr:           ":8080",
			MetricsPort:    9090,
			ReadTimeout:    Duration(10 * time.Second),
			WriteTimeout:   Duration(10 * time.Second),
			RateLimitRPS:   50,
			RateLimitBurst: 100,
		},
		Normalizer: NormalizerConfig{
			Enabled:       true,
			InputSubjects: []string{"measurements.raw"},
			OutputSubject: "measurements.normalized",
			Targets:       []string{"m", "kg", "s", "K", "m/s"},
		},
	}
}

// Validate checks if the config is valid
func (c *Config) Validate() error {
	if c.Platform.Org == "" {
		return errors.New("platform.org is required")
	}

	c.Platform.Org = strings.ToLower(c.Platform.Org)

	if !isValidNATSSubjectPart(c.Platform.Org) {
		return fmt.Errorf(
			"platform.org '%s' is not valid for NATS subjects (must be alphanumeric with dots, dashes, underscores)",
			c.Platform.Org,
		)
	}

	if c.Platform.ID == "" {
		return errors.New("platform.id is required")
	}

	if c.NATS.URL == "" {
		return errors.New("nats.url is required")
	}

	if c.HTTP.RateLimitRPS < 0 {
		return errors.New("http.rate_limit_rps cannot be negative")
	}
	if c.HTTP.RateLimitBurst < 0 {
		return errors.New("http.rate_limit_burst cannot be negative")
	}

	if c.Normalizer.Enabled {
		if len(c.Normalizer.InputSubjects) == 0 {
			return errors.New("normalizer.input_subjects is required when normalizer is enabled")
		}
		if c.Normalizer.OutputSubject == "" {
			return errors.New("normalizer.output_subject is required when normalizer is enabled")
		}
		if len(c.Normalizer.Targets) == 0 {
			return errors.New("normalizer.targets is required when normalizer is enabled")
		}
	}

	return nil
}

// isValidNATSSubjectPart checks if a string is valid for use in NATS subjects.
// Valid characters are alphanumeric, dots, dashes, and underscores.
func isValidNATSSubjectPart(s string) bool {
	if len(s) == 0 {
		return false
	}

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '.' && r != '-' && r != '_' {
			return false
		}
	}
	return true
}
