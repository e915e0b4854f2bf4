package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/markz-studio/markz/internal/display"
)

// EnvPrefix namespaces environment overrides, e.g. MARKZ_LISTEN.
const EnvPrefix = "MARKZ"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all runtime configuration for markz.
type Config struct {
	Listen          string
	Edition         string
	PublicDir       string
	OutDir          string
	Timezone        string
	CacheTTL        time.Duration
	CacheMaxSize    int64
	LogLevel        string
	LogFormat       string
	Metrics         bool
	ShutdownTimeout time.Duration
}

// RegisterFlags defines every configuration flag on fs with its default.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("listen", "127.0.0.1:8080", "Listen address")
	fs.String("edition", "", "Edition served at / (default: the edition marked default)")
	fs.String("public-dir", "public", "Directory of static assets served at the root")
	fs.String("out-dir", "dist", "Output directory for static export")
	fs.String("timezone", "Local", "IANA timezone used for the printed date")
	fs.Duration("cache-ttl", 10*time.Minute, "Fragment cache TTL")
	fs.String("cache-max-size", "8MB", "Max fragment cache size (e.g. 8MB)")
	fs.String("log-level", "info", "Log level: debug, info, warn, error")
	fs.String("log-format", "json", "Log format: json or text")
	fs.Bool("metrics", true, "Expose Prometheus metrics at /metrics")
	fs.Duration("shutdown-timeout", 30*time.Second, "Graceful shutdown timeout")
}

// Load resolves configuration from flags, MARKZ_* environment variables and
// an optional YAML file, in that order of precedence. An empty file name
// looks for markz.yaml in the working directory and tolerates its absence.
func Load(fs *pflag.FlagSet, file string) (*Config, error) {
	v := viper.New()

	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("markz")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &Config{
		Listen:          v.GetString("listen"),
		Edition:         v.GetString("edition"),
		PublicDir:       v.GetString("public-dir"),
		OutDir:          v.GetString("out-dir"),
		Timezone:        v.GetString("timezone"),
		CacheTTL:        v.GetDuration("cache-ttl"),
		LogLevel:        v.GetString("log-level"),
		LogFormat:       v.GetString("log-format"),
		Metrics:         v.GetBool("metrics"),
		ShutdownTimeout: v.GetDuration("shutdown-timeout"),
	}

	var err error
	cfg.CacheMaxSize, err = parseByteSize(v.GetString("cache-max-size"))
	if err != nil {
		return nil, fmt.Errorf("%w: parse cache-max-size: %w", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Listen == "" {
		errs = append(errs, errors.New("listen must not be empty"))
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log-level %q: must be debug, info, warn, or error", c.LogLevel))
	}
	switch strings.ToLower(c.LogFormat) {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("log-format %q: must be json or text", c.LogFormat))
	}
	if _, err := display.LoadLocation(c.Timezone); err != nil {
		errs = append(errs, err)
	}
	if c.CacheTTL <= 0 {
		errs = append(errs, fmt.Errorf("cache-ttl %s: must be positive", c.CacheTTL))
	}
	if c.CacheMaxSize <= 0 {
		errs = append(errs, fmt.Errorf("cache-max-size %d: must be positive", c.CacheMaxSize))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("shutdown-timeout %s: must be positive", c.ShutdownTimeout))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

// parseByteSize parses a human-readable byte size like "100MB", "5KB", "1GB".
func parseByteSize(s string) (int64, error) {
	if len(s) == 0 {
		return 0, fmt.Errorf("empty size string")
	}

	// Find where the numeric part ends
	i := 0
	for i < len(s) && ((s[i] >= '0' && s[i] <= '9') || s[i] == '.') {
		i++
	}

	numStr := s[:i]
	unit := s[i:]

	var num float64
	if _, err := fmt.Sscanf(numStr, "%f", &num); err != nil {
		return 0, fmt.Errorf("invalid size %q: %w", s, err)
	}

	var multiplier int64
	switch unit {
	case "", "B":
		multiplier = 1
	case "KB", "kb":
		multiplier = 1024
	case "MB", "mb":
		multiplier = 1024 * 1024
	case "GB", "gb":
		multiplier = 1024 * 1024 * 1024
	default:
		return 0, fmt.Errorf("unknown size unit %q in %q", unit, s)
	}

	return int64(num * float64(multiplier)), nil
}
