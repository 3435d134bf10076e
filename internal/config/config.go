package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/joho/godotenv"
)

// Environment variables read by ApplyEnv
const (
	EnvLogLevel = "GREED_LOG_LEVEL"
	EnvSeed     = "GREED_SEED"
	EnvPlayers  = "GREED_PLAYERS"
	EnvAutoRoll = "GREED_AUTO_ROLL"
)

// Config is the table configuration
type Config struct {
	// Players is the roster; fewer than two names means prompt for them
	Players []string `hcl:"players,optional"`

	// Seed makes random rolls reproducible; zero seeds from the clock
	Seed int64 `hcl:"seed,optional"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `hcl:"log_level,optional"`

	// AutoRoll rolls every turn at random
	AutoRoll bool `hcl:"auto_roll,optional"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		LogLevel: "info",
	}
}

// Load reads an HCL config file. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadDotEnv loads KEY=value pairs from path into the environment.
// Variables already set win, and a missing file is not an error.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides the configuration from GREED_* environment variables.
// Values are not validated here; later sources such as flags may still
// replace them, so call Validate once every source is applied.
func (c *Config) ApplyEnv() error {
	if value, ok := os.LookupEnv(EnvLogLevel); ok && value != "" {
		c.LogLevel = value
	}

	if value, ok := os.LookupEnv(EnvSeed); ok && value != "" {
		seed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvSeed, value, err)
		}
		c.Seed = seed
	}

	if value, ok := os.LookupEnv(EnvPlayers); ok && value != "" {
		c.Players = splitNames(value)
	}

	if value, ok := os.LookupEnv(EnvAutoRoll); ok && value != "" {
		autoRoll, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvAutoRoll, value, err)
		}
		c.AutoRoll = autoRoll
	}

	return nil
}

// Validate checks the log level and that player names are unique
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}

	seen := make(map[string]bool, len(c.Players))
	for _, name := range c.Players {
		if name == "" {
			return errors.New("player names cannot be empty")
		}
		if seen[name] {
			return fmt.Errorf("player %q is listed twice", name)
		}
		seen[name] = true
	}

	return nil
}

// Level returns the parsed log level, defaulting to info
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

func splitNames(value string) []string {
	var names []string
	for _, name := range strings.Split(value, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}
