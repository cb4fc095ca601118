// Package config provides configuration management for the application.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const (
	DefaultBaseURL  = "http://localhost:8080/api/v2"
	DefaultCategory = "Anime"
	DefaultLogLevel = "info"

	defaultEnvFile = ".env"
)

// Environment variables read by Load.
const (
	EnvFile          = "ANIFLOW_ENV_FILE"
	EnvBaseURL       = "QBITTORRENT_API"
	EnvCategory      = "ANIFLOW_CATEGORY"
	EnvTimeout       = "ANIFLOW_HTTP_TIMEOUT"
	EnvLogLevel      = "LOG_LEVEL"
	EnvPlayer        = "ANIFLOW_PLAYER"
	EnvSkipUnwanted  = "ANIFLOW_SKIP_UNWANTED"
	EnvVideoOnly     = "ANIFLOW_VIDEO_ONLY"
	EnvRequireOnDisk = "ANIFLOW_REQUIRE_ON_DISK"
)

// Config holds everything a run needs. It is built once in main and passed
// down explicitly.
type Config struct {
	// BaseURL is the root of the qBittorrent Web API.
	BaseURL string
	// Category filters the torrents offered.
	Category string
	// Timeout bounds each HTTP request. Zero means no timeout.
	Timeout time.Duration
	// LogLevel is a zerolog level name.
	LogLevel string
	// Player, when set, is started with the chosen path instead of the OS default handler.
	Player string

	SkipUnwanted  bool
	VideoOnly     bool
	RequireOnDisk bool
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		BaseURL:  DefaultBaseURL,
		Category: DefaultCategory,
		LogLevel: DefaultLogLevel,
	}
}

// Load builds the configuration from defaults, an optional .env file,
// environment variables and finally command-line args, each overriding the
// previous one. A -h/-help argument returns flag.ErrHelp.
func Load(args []string) (*Config, error) {
	cfg := Default()

	envFile := getEnvOrDefault(EnvFile, defaultEnvFile)
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
	}

	if err := cfg.loadFromEnv(); err != nil {
		return nil, err
	}

	if err := cfg.parseFlags(args); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) loadFromEnv() error {
	if v := os.Getenv(EnvBaseURL); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv(EnvCategory); v != "" {
		c.Category = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvPlayer); v != "" {
		c.Player = v
	}

	if v := os.Getenv(EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvTimeout, err)
		}
		c.Timeout = d
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{EnvSkipUnwanted, &c.SkipUnwanted},
		{EnvVideoOnly, &c.VideoOnly},
		{EnvRequireOnDisk, &c.RequireOnDisk},
	}
	for _, b := range bools {
		v := os.Getenv(b.key)
		if v == "" {
			continue
		}
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", b.key, err)
		}
		*b.dst = parsed
	}

	return nil
}

func (c *Config) parseFlags(args []string) error {
	flags := flag.NewFlagSet("aniflow", flag.ContinueOnError)
	flags.StringVar(&c.BaseURL, "api", c.BaseURL, "qBittorrent Web API base URL")
	flags.StringVar(&c.Category, "category", c.Category, "Torrent category to list episodes from")
	flags.DurationVar(&c.Timeout, "timeout", c.Timeout, "HTTP request timeout, 0 = none")
	flags.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level: trace/debug/info/warn/error")
	flags.StringVar(&c.Player, "player", c.Player, "Program to open the episode with instead of the default handler")
	flags.BoolVar(&c.SkipUnwanted, "skip-unwanted", c.SkipUnwanted, "Skip files marked as do not download")
	flags.BoolVar(&c.VideoOnly, "video-only", c.VideoOnly, "Only list video files")
	flags.BoolVar(&c.RequireOnDisk, "require-on-disk", c.RequireOnDisk, "Only list files present on the local disk")
	return flags.Parse(args)
}

// Validate checks if the configuration is usable.
func (c *Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("base url %q: %w", c.BaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("base url %q must be an absolute http(s) url", c.BaseURL)
	}

	if c.Category == "" {
		return errors.New("category must not be empty")
	}

	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", c.Timeout)
	}

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}

	return nil
}

// getEnvOrDefault returns environment variable value or default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
