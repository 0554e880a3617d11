// SPDX-FileCopyrightText: Copyright 2026 The wotengine Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Parallel()

	v := viper.New()
	SetViperDefaults(v)

	cfg, err := LoadConfig(v)
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, uint64(10), cfg.TrustDistance.MaxDistance)
	assert.Equal(t, uint64(0), cfg.TrustDistance.HighTrustMax)
	assert.Equal(t, uint64(1), cfg.TrustDistance.MediumTrustMax)
	assert.Equal(t, uint64(5), cfg.TrustDistance.LowTrustMax)
}

func TestLoadConfigOverride(t *testing.T) {
	t.Parallel()

	v := viper.New()
	SetViperDefaults(v)
	v.Set("logging.level", "debug")

	cfg, err := LoadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestRegisterFlagsCommandLineOverridesConfigFile(t *testing.T) {
	t.Parallel()

	cfgbuf := bytes.NewBufferString(`---
logging:
  level: warn
trust_distance:
  max_distance: 20
`)

	v := viper.New()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	require.NoError(t, RegisterFlags(v, flags))

	require.NoError(t, flags.Parse([]string{"--log-level=debug", "--trust-max-distance=3"}))

	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(cfgbuf))

	cfg, err := LoadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level, "a parsed flag must win over a value set in the config file")
	assert.Equal(t, uint64(3), cfg.TrustDistance.MaxDistance)
}

func TestRegisterFlagsDefaultsApplyWhenUnset(t *testing.T) {
	t.Parallel()

	v := viper.New()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	require.NoError(t, RegisterFlags(v, flags))

	cfg, err := LoadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, uint64(10), cfg.TrustDistance.MaxDistance)
}
