// Package config assembles the gateway's runtime configuration from
// defaults, then an optional YAML file, then the environment, with
// later sources winning. The resulting Config is built once at process
// start and passed to constructors as a read-only value; nothing in the
// gateway mutates or reloads it.
package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultBaseURL is where the Joplin desktop app serves its Data
	// API when the Web Clipper service is enabled.
	DefaultBaseURL = "http://localhost:41184"

	// DefaultTimeout bounds every upstream HTTP call. The Joplin API is
	// local, so calls are normally instant; the bound exists to keep a
	// wedged upstream from blocking tool calls forever.
	DefaultTimeout = 30 * time.Second

	// DefaultSSEAddr is the listen address used by the SSE transport.
	DefaultSSEAddr = ":8765"
)

// Supported inbound transports.
const (
	TransportStdio = "stdio"
	TransportSSE   = "sse"
)

// Environment variables recognised by FromEnv.
const (
	EnvToken   = "JOPLIN_TOKEN"
	EnvBaseURL = "JOPLIN_BASE_URL"
	EnvTimeout = "JOPLIN_TIMEOUT"
)

// ToolsConfig controls which tools the gateway registers.
type ToolsConfig struct {
	// ReadOnly drops the tools that modify notes (create, update,
	// delete), leaving only the read surface.
	ReadOnly bool `yaml:"read_only"`

	// Allowed and Denied are glob patterns over tool names. An empty
	// Allowed list allows everything; Denied wins over Allowed.
	Allowed []string `yaml:"allowed"`
	Denied  []string `yaml:"denied"`
}

// Config is the complete runtime configuration of the gateway.
type Config struct {
	// Token is the Joplin API authorization token
	// (Tools > Options > Web Clipper in the desktop app).
	Token string `yaml:"token"`

	// BaseURL is the root of the Joplin Data API.
	BaseURL string `yaml:"base_url"`

	// Timeout bounds each upstream HTTP call. Set via JOPLIN_TIMEOUT
	// or the -timeout flag as a Go duration string (e.g. "45s").
	Timeout time.Duration `yaml:"-"`

	// Transport selects how the MCP runtime is exposed.
	Transport string `yaml:"transport"`

	// SSEAddr is the listen address when Transport is "sse".
	SSEAddr string `yaml:"sse_addr"`

	Tools ToolsConfig `yaml:"tools"`
}

// fileConfig mirrors Config for the YAML file, with the timeout as a
// human-readable duration string.
type fileConfig struct {
	Token     string       `yaml:"token"`
	BaseURL   string       `yaml:"base_url"`
	Timeout   string       `yaml:"timeout"`
	Transport string       `yaml:"transport"`
	SSEAddr   string       `yaml:"sse_addr"`
	Tools     *ToolsConfig `yaml:"tools"`
}

// Default returns the built-in configuration. The token has no default;
// it must come from the file, the environment, or a flag.
func Default() Config {
	return Config{
		BaseURL:   DefaultBaseURL,
		Timeout:   DefaultTimeout,
		Transport: TransportStdio,
		SSEAddr:   DefaultSSEAddr,
	}
}

// Load builds a Config from defaults, then the YAML file at path (if
// path is non-empty), then the environment.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.applyFile(path); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if fc.Token != "" {
		c.Token = fc.Token
	}
	if fc.BaseURL != "" {
		c.BaseURL = fc.BaseURL
	}
	if fc.Timeout != "" {
		d, err := time.ParseDuration(fc.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout %q in %s: %w", fc.Timeout, path, err)
		}
		c.Timeout = d
	}
	if fc.Transport != "" {
		c.Transport = fc.Transport
	}
	if fc.SSEAddr != "" {
		c.SSEAddr = fc.SSEAddr
	}
	if fc.Tools != nil {
		c.Tools = *fc.Tools
	}

	return nil
}

func (c *Config) applyEnv() error {
	if token := os.Getenv(EnvToken); token != "" {
		c.Token = token
	}
	if baseURL := os.Getenv(EnvBaseURL); baseURL != "" {
		c.BaseURL = baseURL
	}
	if timeout := os.Getenv(EnvTimeout); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvTimeout, timeout, err)
		}
		c.Timeout = d
	}
	return nil
}

// Validate checks that the configuration can serve calls. A missing
// token is a startup-fatal condition: without it every upstream request
// would be rejected.
func (c *Config) Validate() error {
	if c.Token == "" {
		return fmt.Errorf("joplin API token is required (set %s, the token field in the config file, or the -token flag)", EnvToken)
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL %q: %w", c.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid base URL %q: scheme must be http or https", c.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid base URL %q: missing host", c.BaseURL)
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}

	if c.Transport != TransportStdio && c.Transport != TransportSSE {
		return fmt.Errorf("invalid transport %q (must be %q or %q)", c.Transport, TransportStdio, TransportSSE)
	}

	if c.Transport == TransportSSE && c.SSEAddr == "" {
		return fmt.Errorf("sse transport requires a listen address")
	}

	return nil
}
