package provider

import (
	"fmt"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Default values applied to zero Config fields at provider construction.
const (
	DefaultTimeout       = 30 * time.Second
	DefaultRetryAttempts = 3
	DefaultRetryBackoff  = 1.0
)

// Config carries the credentials and tuning a provider needs to reach its
// upstream API. It is a value object: construct it once, hand it to a
// provider, and treat it as immutable afterwards.
type Config struct {
	// APIKey authenticates against the upstream translation API. Required.
	APIKey string `env:"TRANSLATEKIT_API_KEY"`

	// Endpoint overrides the provider's default API endpoint.
	Endpoint string `env:"TRANSLATEKIT_ENDPOINT"`

	// Region selects the upstream deployment. Required by drivers that set
	// RequiresRegion.
	Region string `env:"TRANSLATEKIT_REGION"`

	// Timeout bounds the provider's own network calls. The framework does
	// not enforce it; providers pass it to their HTTP clients.
	Timeout time.Duration `env:"TRANSLATEKIT_TIMEOUT" envDefault:"30s"`

	// RateLimit is the maximum number of requests per second per provider
	// instance. Zero disables rate limiting.
	RateLimit int `env:"TRANSLATEKIT_RATE_LIMIT"`

	// RetryAttempts and RetryBackoff tune the provider's own retry policy
	// for upstream calls.
	RetryAttempts int     `env:"TRANSLATEKIT_RETRY_ATTEMPTS" envDefault:"3"`
	RetryBackoff  float64 `env:"TRANSLATEKIT_RETRY_BACKOFF" envDefault:"1"`

	// UserAgentName and UserAgentVersion override the User-Agent a provider
	// sends upstream. Either set both or neither.
	UserAgentName    string `env:"TRANSLATEKIT_USER_AGENT_NAME"`
	UserAgentVersion string `env:"TRANSLATEKIT_USER_AGENT_VERSION"`
}

// ConfigOption customizes a Config built with NewConfig.
type ConfigOption func(*Config)

func WithEndpoint(endpoint string) ConfigOption {
	return func(c *Config) { c.Endpoint = endpoint }
}

func WithRegion(region string) ConfigOption {
	return func(c *Config) { c.Region = region }
}

func WithTimeout(timeout time.Duration) ConfigOption {
	return func(c *Config) { c.Timeout = timeout }
}

func WithRateLimit(requestsPerSecond int) ConfigOption {
	return func(c *Config) { c.RateLimit = requestsPerSecond }
}

func WithRetry(attempts int, backoff float64) ConfigOption {
	return func(c *Config) {
		c.RetryAttempts = attempts
		c.RetryBackoff = backoff
	}
}

// WithUserAgent sets the User-Agent override. Both fields are required
// together; Validate rejects a partial pair.
func WithUserAgent(name, version string) ConfigOption {
	return func(c *Config) {
		c.UserAgentName = name
		c.UserAgentVersion = version
	}
}

// NewConfig builds a validated Config with defaults applied.
func NewConfig(apiKey string, opts ...ConfigOption) (Config, error) {
	cfg := Config{APIKey: apiKey}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg = cfg.withDefaults()

	if err := cfg.Validate(false); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var envLoaded sync.Once

// LoadConfig reads a Config from the environment, loading a .env file first
// if one exists. Validation is deferred to provider construction, where the
// driver's region requirement is known.
func LoadConfig() (Config, error) {
	envLoaded.Do(func() {
		// The .env file is optional; a missing file is not an error.
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if err := cfg.validateUserAgent(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the invariants every provider relies on: a non-empty API
// key, a region when the driver requires one, and a complete User-Agent pair.
func (c Config) Validate(requiresRegion bool) error {
	if c.APIKey == "" {
		return fmt.Errorf("%w: api key is required", ErrInvalidConfig)
	}
	if requiresRegion && c.Region == "" {
		return fmt.Errorf("%w: region is required for this provider", ErrInvalidConfig)
	}
	return c.validateUserAgent()
}

func (c Config) validateUserAgent() error {
	if (c.UserAgentName == "") != (c.UserAgentVersion == "") {
		return fmt.Errorf("%w: user agent name and version must be set together", ErrInvalidConfig)
	}
	return nil
}

// UserAgent returns the configured "name/version" override, or an empty
// string when none is set.
func (c Config) UserAgent() string {
	if c.UserAgentName == "" {
		return ""
	}
	return c.UserAgentName + "/" + c.UserAgentVersion
}

func (c Config) withDefaults() Config {
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if c.RetryAttempts == 0 {
		c.RetryAttempts = DefaultRetryAttempts
	}
	if c.RetryBackoff == 0 {
		c.RetryBackoff = DefaultRetryBackoff
	}
	return c
}
