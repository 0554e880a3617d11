// SPDX-FileCopyrightText: Copyright 2026 The wotengine Authors
// SPDX-License-Identifier: Apache-2.0

// Package config holds the engine's own configuration surface: logging and
// the default trust-distance parameters used when a caller doesn't supply
// its own. It follows the viper/pflag/mapstructure wiring pattern used
// throughout this codebase's ambient packages.
package config

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// LoggingConfig configures the logger built by logger.FromConfig.
type LoggingConfig struct {
	Level  string `mapstructure:"level" default:"info"`
	Format string `mapstructure:"format" default:"text"`
}

// TrustDistanceConfig is the serializable form of the default trust
// distance parameters (see internal/trust.TrustDistanceParams). A zero
// value is not meaningful on its own; callers should start from
// SetViperDefaults and let viper fill in the rest.
type TrustDistanceConfig struct {
	MaxDistance  uint64 `mapstructure:"max_distance" default:"10"`
	HighTrustMax uint64 `mapstructure:"high_trust_distance" default:"0"`
	MediumTrustMax uint64 `mapstructure:"medium_trust_distance" default:"1"`
	LowTrustMax  uint64 `mapstructure:"low_trust_distance" default:"5"`
}

// EngineConfig is the full configuration surface for an embedded engine.
type EngineConfig struct {
	Logging       LoggingConfig       `mapstructure:"logging"`
	TrustDistance TrustDistanceConfig `mapstructure:"trust_distance"`
}

// SetViperDefaults registers every EngineConfig default on v, so that env
// vars and config files layered on top only need to override what they
// care about.
func SetViperDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	v.SetDefault("trust_distance.max_distance", 10)
	v.SetDefault("trust_distance.high_trust_distance", 0)
	v.SetDefault("trust_distance.medium_trust_distance", 1)
	v.SetDefault("trust_distance.low_trust_distance", 5)
}

// LoadConfig reads an EngineConfig out of v. Call SetViperDefaults first,
// or any fields neither defaulted nor set by the caller will come back
// zero-valued.
func LoadConfig(v *viper.Viper) (*EngineConfig, error) {
	var cfg EngineConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// bindConfigFlag registers a flag of type V on flags via binder, then points
// v at it, so a parsed command-line value takes precedence over both the
// config file and whatever SetViperDefaults already set at viperPath.
func bindConfigFlag[V any](
	v *viper.Viper,
	flags *pflag.FlagSet,
	viperPath string,
	cmdLineArg string,
	defaultValue V,
	help string,
	binder func(name string, value V, usage string) *V,
) error {
	binder(cmdLineArg, defaultValue, help)
	v.SetDefault(viperPath, defaultValue)
	if err := v.BindPFlag(viperPath, flags.Lookup(cmdLineArg)); err != nil {
		return fmt.Errorf("failed to bind flag %s to viper path %s: %w", cmdLineArg, viperPath, err)
	}
	return nil
}

// RegisterFlags registers the command-line flags an embedding CLI can offer
// for every EngineConfig field, binding each one into v so that a parsed
// flag takes precedence over both the config file and the defaults set by
// SetViperDefaults.
func RegisterFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	if err := bindConfigFlag(v, flags, "logging.level", "log-level", "info", "log level (debug, info, warn, error)", flags.String); err != nil {
		return err
	}
	if err := bindConfigFlag(v, flags, "logging.format", "log-format", "text", "log format (text, json)", flags.String); err != nil {
		return err
	}
	if err := bindConfigFlag(v, flags, "trust_distance.max_distance", "trust-max-distance", uint64(10), "maximum total trust distance a path may accumulate", flags.Uint64); err != nil {
		return err
	}
	if err := bindConfigFlag(v, flags, "trust_distance.high_trust_distance", "trust-high-distance", uint64(0), "distance cost of crossing a high-trust edge", flags.Uint64); err != nil {
		return err
	}
	if err := bindConfigFlag(v, flags, "trust_distance.medium_trust_distance", "trust-medium-distance", uint64(1), "distance cost of crossing a medium-trust edge", flags.Uint64); err != nil {
		return err
	}
	if err := bindConfigFlag(v, flags, "trust_distance.low_trust_distance", "trust-low-distance", uint64(5), "distance cost of crossing a low-trust edge", flags.Uint64); err != nil {
		return err
	}
	return nil
}
