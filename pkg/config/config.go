package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
	"gopkg.in/yaml.v3"
)

// Common errors for configuration loading.
var (
	ErrFileNotFound = errors.New("configuration file not found")
	ErrInvalidYAML  = errors.New("invalid YAML syntax")
	ErrEmptyFile    = errors.New("configuration file is empty")
)

// Config describes how to reach one CUCM cluster.
type Config struct {
	// Host is the publisher's hostname or IP. The standard HTTPS port 8443
	// is assumed; set Address to override the whole base URL.
	Host string `yaml:"host" env:"CUCM_HOST"`

	// Username and Password authenticate every request. The account needs
	// the AXL API role for provisioning and the serviceability roles for
	// the rest.
	Username string `yaml:"username" env:"CUCM_USERNAME"`
	Password string `yaml:"password" env:"CUCM_PASSWORD"`

	// Version selects the AXL schema release, e.g. "12.5" or "14.0".
	Version string `yaml:"version" env:"CUCM_VERSION,default=12.5"`

	// Address overrides the derived base URL entirely, scheme included.
	// Useful for port forwards and lab proxies.
	Address string `yaml:"address" env:"CUCM_ADDRESS"`

	// Timeout bounds each HTTP exchange.
	Timeout Duration `yaml:"timeout" env:"CUCM_TIMEOUT,default=30s"`

	// InsecureSkipVerify disables server certificate verification.
	InsecureSkipVerify bool `yaml:"insecureSkipVerify" env:"CUCM_INSECURE_SKIP_VERIFY"`

	// CAFile points at a PEM bundle to verify the server against.
	CAFile string `yaml:"caFile" env:"CUCM_CA_FILE"`

	// SchemaDir is the directory holding AXL schema releases, one
	// subdirectory per version with an AXLAPI.wsdl inside.
	SchemaDir string `yaml:"schemaDir" env:"CUCM_SCHEMA_DIR"`
}

// Default returns the built-in defaults. Host and credentials have none.
func Default() *Config {
	return &Config{
		Version: "12.5",
		Timeout: Duration(30 * time.Second),
	}
}

// Load reads a YAML configuration file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	return cfg, nil
}

// FromEnv reads CUCM_* environment variables over the defaults.
func FromEnv() (*Config, error) {
	cfg := Default()
	if err := envdecode.Decode(cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, err
	}
	return cfg, nil
}

var versionPattern = regexp.MustCompile(`^\d+\.\d+$`)

// Validate checks the configuration for problems that would otherwise only
// surface as confusing transport failures.
func (c *Config) Validate() error {
	if c.Host == "" && c.Address == "" {
		return &ValidationError{Field: "host", Message: "either host or address is required"}
	}
	if c.Username == "" {
		return &ValidationError{Field: "username", Message: "username is required"}
	}
	if c.Password == "" {
		return &ValidationError{Field: "password", Message: "password is required"}
	}
	if !versionPattern.MatchString(c.Version) {
		return &ValidationError{Field: "version",
			Message: fmt.Sprintf("malformed version %q, want major.minor like 12.5", c.Version)}
	}
	if c.Timeout < 0 {
		return &ValidationError{Field: "timeout", Message: "timeout cannot be negative"}
	}

	if c.Address != "" {
		u, err := url.Parse(c.Address)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return &ValidationError{Field: "address",
				Message: fmt.Sprintf("malformed address %q, want an http(s) URL", c.Address)}
		}
	}
	if err := validateFile(c.CAFile, "caFile"); err != nil {
		return err
	}
	if c.SchemaDir != "" {
		info, err := os.Stat(c.SchemaDir)
		if err != nil {
			return &ValidationError{Field: "schemaDir",
				Message: fmt.Sprintf("directory does not exist: %s", c.SchemaDir)}
		}
		if !info.IsDir() {
			return &ValidationError{Field: "schemaDir",
				Message: fmt.Sprintf("path is not a directory: %s", c.SchemaDir)}
		}
	}
	return nil
}

// BaseURL is the URL every service endpoint hangs off.
func (c *Config) BaseURL() string {
	if c.Address != "" {
		return strings.TrimRight(c.Address, "/")
	}
	return "https://" + c.Host + ":8443"
}

// Endpoint joins a service path onto the base URL.
func (c *Config) Endpoint(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.BaseURL() + path
}

// validateFile checks that an optional file path points at a readable file.
func validateFile(path, field string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &ValidationError{Field: field,
				Message: fmt.Sprintf("file does not exist: %s", path)}
		}
		return &ValidationError{Field: field,
			Message: fmt.Sprintf("cannot access file: %v", err)}
	}
	if info.IsDir() {
		return &ValidationError{Field: field,
			Message: fmt.Sprintf("path is a directory, not a file: %s", path)}
	}
	return nil
}

// ValidationError reports an invalid configuration field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// Duration is a time.Duration that YAML and environment values spell like
// "30s" or "2m".
type Duration time.Duration

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d Duration) String() string { return time.Duration(d).String() }

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return d.String(), nil
}

// Decode implements envdecode.Decoder.
func (d *Duration) Decode(repl string) error {
	parsed, err := time.ParseDuration(repl)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", repl, err)
	}
	*d = Duration(parsed)
	return nil
}
