// Package config loads host settings from the environment and command-line
// flags. Flags win over environment variables, which win over defaults.
package config

import (
	"flag"
	"time"

	jlconfig "github.com/JeremyLoy/config"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// Config holds the settings shared by the game hosts.
type Config struct {
	// LogLevel is a zerolog level name.
	LogLevel string `config:"OXIDE_LOG_LEVEL"`
	// LogFile, when set, receives the log instead of stderr.
	LogFile string `config:"OXIDE_LOG_FILE"`
	// LogJSON disables the human readable console format.
	LogJSON bool `config:"OXIDE_LOG_JSON"`

	// Level is the index of the first level to play.
	Level int `config:"OXIDE_LEVEL"`
	// Scale multiplies the window size of the graphical host.
	Scale int `config:"OXIDE_SCALE"`
	// TickRate is the number of game ticks per second of the terminal host.
	TickRate int `config:"OXIDE_TICK_RATE"`
	// Debug opens the inspector at startup.
	Debug bool `config:"OXIDE_DEBUG"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		LogLevel: zerolog.InfoLevel.String(),
		Scale:    4,
		TickRate: 60,
	}
}

// FromEnv returns the defaults overridden by any OXIDE_* environment
// variables.
func FromEnv() (Config, error) {
	cfg := Default()
	if err := jlconfig.FromEnv().To(&cfg); err != nil {
		return Config{}, eris.Wrap(err, "failed to read environment")
	}
	return cfg, nil
}

// FromFile is FromEnv with a KEY=VALUE file applied between the defaults and
// the environment.
func FromFile(path string) (Config, error) {
	cfg := Default()
	if err := jlconfig.From(path).FromEnv().To(&cfg); err != nil {
		return Config{}, eris.Wrapf(err, "failed to read config from %s", path)
	}
	return cfg, nil
}

// RegisterFlags binds every setting to a flag in fs, using the current values
// as defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	c.RegisterLogFlags(fs)
	fs.IntVar(&c.Level, "level", c.Level, "Index of the first level to play.")
	fs.IntVar(&c.Scale, "scale", c.Scale, "Window scale of the graphical host.")
	fs.IntVar(&c.TickRate, "tick-rate", c.TickRate, "Ticks per second of the terminal host.")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "Open the inspector at startup.")
}

// RegisterLogFlags binds only the logging settings, for tools that are not
// game hosts.
func (c *Config) RegisterLogFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level (trace, debug, info, warn, error).")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "Write the log to this file instead of stderr.")
	fs.BoolVar(&c.LogJSON, "log-json", c.LogJSON, "Write the log as JSON lines.")
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return eris.Wrapf(err, "invalid log level %q", c.LogLevel)
	}
	if c.Scale < 1 {
		return eris.Errorf("scale must be at least 1, got %d", c.Scale)
	}
	if c.TickRate < 1 {
		return eris.Errorf("tick rate must be at least 1, got %d", c.TickRate)
	}
	return nil
}

// TickInterval is the time between two ticks at TickRate.
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

// Load reads the environment, then parses args into the result.
func Load(name string, args []string) (Config, error) {
	cfg, err := FromEnv()
	if err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	cfg.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return Config{}, eris.Wrap(err, "failed to parse flags")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
