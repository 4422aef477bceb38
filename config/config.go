// Package config loads the lvsearch command settings. Sources, lowest
// precedence first: built-in defaults, an optional YAML file, LVSEARCH_*
// environment variables, command-line flags.
package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Output formats accepted by Format.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// EnvPrefix is prepended to every environment variable the loader reads.
const EnvPrefix = "LVSEARCH"

var (
	// ErrBadFormat indicates an output format other than text or yaml.
	ErrBadFormat = errors.New("config: unknown output format")
	// ErrBadParallel indicates a worker limit below 1.
	ErrBadParallel = errors.New("config: parallel must be at least 1")
	// ErrBadLogLevel indicates a level zerolog cannot parse.
	ErrBadLogLevel = errors.New("config: unknown log level")
)

// Config holds the resolved command settings.
type Config struct {
	InputDir string   // directory holding <puzzle>.txt inputs
	Format   string   // FormatText or FormatYAML
	LogLevel string   // zerolog level name
	Parallel int      // concurrent puzzle limit
	Render   bool     // draw solutions of puzzles that support it
	Puzzles  []string // empty means every registered puzzle
}

// Level returns the parsed log level. Load has already validated it.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

// Validate checks the settings that have a closed set of legal values.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatText, FormatYAML:
	default:
		return fmt.Errorf("%w: %q", ErrBadFormat, c.Format)
	}
	if c.Parallel < 1 {
		return fmt.Errorf("%w: got %d", ErrBadParallel, c.Parallel)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %q", ErrBadLogLevel, c.LogLevel)
	}
	return nil
}

// Load parses args (without the program name) and merges every source.
// Positional arguments select puzzles and replace any list from the file
// or environment.
func Load(args []string) (*Config, error) {
	fs := pflag.NewFlagSet("lvsearch", pflag.ContinueOnError)
	cfgFile := fs.String("config", "", "optional YAML config file")
	fs.String("input-dir", "./inputs", "directory holding <puzzle>.txt inputs")
	fs.String("format", FormatText, "output format: text or yaml")
	fs.String("log-level", "info", "log level: debug, info, warn, error, disabled")
	fs.Int("parallel", runtime.GOMAXPROCS(0), "number of puzzles solved concurrently")
	fs.Bool("render", false, "draw solutions of puzzles that support it")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if *cfgFile != "" {
		v.SetConfigFile(*cfgFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", *cfgFile, err)
		}
	}

	c := &Config{
		InputDir: v.GetString("input-dir"),
		Format:   strings.ToLower(v.GetString("format")),
		LogLevel: strings.ToLower(v.GetString("log-level")),
		Parallel: v.GetInt("parallel"),
		Render:   v.GetBool("render"),
		Puzzles:  v.GetStringSlice("puzzles"),
	}
	if rest := fs.Args(); len(rest) > 0 {
		c.Puzzles = rest
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
