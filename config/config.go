// SPDX-License-Identifier: MIT

// Package config resolves runtime settings of the mincut command from
// MINCUT_* environment variables with viper.
//
//	MINCUT_LOG_LEVEL        debug|info|warn|error (default info)
//	MINCUT_LOG_TIME_FORMAT  Go time layout (default RFC3339Nano)
//	MINCUT_LOG_FILE         rotate logs into this file instead of stderr
//	MINCUT_SEED             base seed of the randomized estimator (default 1)
//	MINCUT_WORKERS          goroutines running contraction trials (default 1)
//	MINCUT_TRIALS           trial count override, 0 keeps max(50, n²)
package config

import (
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/mincut/karger"
)

// EnvPrefix is prepended to every key when reading the environment.
const EnvPrefix = "MINCUT"

// Keys and defaults.
const (
	KeyLogLevel      = "LOG_LEVEL"
	KeyLogTimeFormat = "LOG_TIME_FORMAT"
	KeyLogFile       = "LOG_FILE"
	KeySeed          = "SEED"
	KeyWorkers       = "WORKERS"
	KeyTrials        = "TRIALS"

	DefaultLogLevel = "info"
	DefaultSeed     = 1
	DefaultWorkers  = 1
)

var (
	// ErrBadLogLevel indicates a level zap cannot parse.
	ErrBadLogLevel = errors.New("config: bad log level")

	// ErrBadTimeFormat indicates an empty time layout.
	ErrBadTimeFormat = errors.New("config: empty log time format")

	// ErrBadWorkers indicates a worker count below one.
	ErrBadWorkers = errors.New("config: workers must be >= 1")

	// ErrBadTrials indicates a negative trial count.
	ErrBadTrials = errors.New("config: trials must be >= 0")
)

// Config holds the resolved settings.
type Config struct {
	LogLevel      string
	LogTimeFormat string
	LogFile       string
	Seed          uint64
	Workers       int
	Trials        int
}

// Load reads the environment, applies defaults and validates the result.
func Load() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyLogTimeFormat, time.RFC3339Nano)
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeySeed, DefaultSeed)
	v.SetDefault(KeyWorkers, DefaultWorkers)
	v.SetDefault(KeyTrials, 0)

	cfg := Config{
		LogLevel:      v.GetString(KeyLogLevel),
		LogTimeFormat: v.GetString(KeyLogTimeFormat),
		LogFile:       v.GetString(KeyLogFile),
		Seed:          v.GetUint64(KeySeed),
		Workers:       v.GetInt(KeyWorkers),
		Trials:        v.GetInt(KeyTrials),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Level returns the parsed zap level.
func (c Config) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return lvl, errors.Wrapf(ErrBadLogLevel, "%q", c.LogLevel)
	}

	return lvl, nil
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var err error
	if _, lerr := c.Level(); lerr != nil {
		err = multierr.Append(err, lerr)
	}
	if c.LogTimeFormat == "" {
		err = multierr.Append(err, ErrBadTimeFormat)
	}
	if c.Workers < 1 {
		err = multierr.Append(err, errors.Wrapf(ErrBadWorkers, "got %d", c.Workers))
	}
	if c.Trials < 0 {
		err = multierr.Append(err, errors.Wrapf(ErrBadTrials, "got %d", c.Trials))
	}

	return err
}

// KargerOptions converts the estimator settings into karger options.
func (c Config) KargerOptions() []karger.Option {
	opts := []karger.Option{karger.WithSeed(c.Seed)}
	if c.Workers > 1 {
		opts = append(opts, karger.WithWorkers(c.Workers))
	}
	if c.Trials > 0 {
		opts = append(opts, karger.WithTrials(c.Trials))
	}

	return opts
}
