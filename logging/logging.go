// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logging builds the zerolog loggers used by the playerdist
// commands.
package logging // import "github.com/statline/playerdist/logging"

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Config selects the level, format and destination of log output.
type Config struct {
	Level  string `mapstructure:"level" yaml:"level" default:"info" validate:"oneof=trace debug info warn error fatal panic disabled"`
	Format string `mapstructure:"format" yaml:"format" default:"console" validate:"oneof=json console"`
	Output string `mapstructure:"output" yaml:"output" default:"stderr"` // stdout, stderr, or file path
}

// New returns a logger for cfg. The returned Closer releases the log
// file, if any.
func New(cfg Config) (zerolog.Logger, io.Closer, error) {
	var (
		out    io.Writer
		closer io.Closer = nopCloser{}
	)
	switch cfg.Output {
	case "", "stderr":
		out = os.Stderr
	case "stdout":
		out = os.Stdout
	default:
		f, err := os.OpenFile(cfg.Output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("could not open log file: %w", err)
		}
		out, closer = f, f
	}
	l, err := NewWriter(cfg, out)
	if err != nil {
		closer.Close()
		return zerolog.Nop(), nil, err
	}
	return l, closer, nil
}

// NewWriter returns a logger for cfg that writes to w, ignoring
// cfg.Output.
func NewWriter(cfg Config, w io.Writer) (zerolog.Logger, error) {
	level := zerolog.InfoLevel
	if cfg.Level != "" {
		var err error
		level, err = zerolog.ParseLevel(cfg.Level)
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("invalid log level: %w", err)
		}
	}

	switch cfg.Format {
	case "", "console":
		w = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.TimeOnly,
			NoColor:    !isTerminal(w),
		}
	case "json":
	default:
		return zerolog.Nop(), fmt.Errorf("invalid log format %q", cfg.Format)
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
