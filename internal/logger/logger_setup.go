// SPDX-FileCopyrightText: Copyright 2026 The wotengine Authors
// SPDX-License-Identifier: Apache-2.0

// Package logger wires up zerolog the way the engine's embedders expect:
// build one Logger from a small config struct, then thread it through
// context.Context so library code never reaches for a process-global.
package logger

import (
	"context"
	"os"

	"github.com/rs/zerolog"

	"github.com/revtrust/wotengine/internal/config"
)

// Format selects the console rendering of log output.
type Format string

// The two supported formats.
const (
	Text Format = "text"
	JSON Format = "json"
)

// FromConfig builds a zerolog.Logger from cfg. Library code should not
// reach for this directly — embedders call it once at startup and inject
// the result into context via WithLogger, and engine code pulls it back
// out with zerolog.Ctx(ctx).
func FromConfig(cfg config.LoggingConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	var logger zerolog.Logger
	if Format(cfg.Format) == Text {
		logger = zerolog.New(zerolog.NewConsoleWriter())
	} else {
		logger = zerolog.New(os.Stdout)
	}
	return logger.Level(level).With().Timestamp().Logger()
}

// WithLogger returns a copy of ctx carrying logger, retrievable with
// zerolog.Ctx(ctx).
func WithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}
