// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command playerdist fits a distribution to the recent points,
// rebounds and assists of every player on a roster.
//
//	playerdist run --roster players.csv --logs logs.csv
//	playerdist fit 12 9 15 22 8
//	playerdist catalog
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"

	"github.com/statline/playerdist/config"
)

var version = "v0.0.1-default"

// Flag names. Flags are built per command tree because urfave/cli
// flags keep their parsed values.
const (
	configFlag       = "config"
	logLevelFlag     = "log-level"
	rosterFlag       = "roster"
	logsFlag         = "logs"
	logsFormatFlag   = "logs-format"
	outputFlag       = "output"
	paramsFlag       = "params"
	paramsFormatFlag = "params-format"
	decayRateFlag    = "decay-rate"
	windowFlag       = "window"
	familyFlag       = "family"
	metricsFileFlag  = "metrics-file"
)

func newCommand() *cli.Command {
	return &cli.Command{
		Name:    "playerdist",
		Version: version,
		Usage:   "Fit distributions to player game logs",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    configFlag,
				Aliases: []string{"c"},
				Usage:   "Path to a YAML configuration file",
				Sources: cli.EnvVars(config.EnvPrefix + "_CONFIG"),
			},
			&cli.StringFlag{
				Name:  logLevelFlag,
				Usage: "Log level [trace, debug, info, warn, error, disabled]",
			},
		},
		Commands: []*cli.Command{
			runCommand(),
			fitCommand(),
			catalogCommand(),
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newCommand().Run(ctx, os.Args)
	stop()
	if err != nil {
		log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		log.Error().Err(err).Msg("fatal error")
		os.Exit(1)
	}
}

// loadConfig loads the configuration named by the global flags.
// Command flags are applied by the caller before validation.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd.String(configFlag))
	if err != nil {
		return nil, err
	}
	if cmd.IsSet(logLevelFlag) {
		cfg.Logging.Level = cmd.String(logLevelFlag)
	}
	return cfg, nil
}
