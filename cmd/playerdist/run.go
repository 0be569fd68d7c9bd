// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/statline/playerdist/batch"
	"github.com/statline/playerdist/config"
	"github.com/statline/playerdist/gamelog"
	"github.com/statline/playerdist/logging"
	"github.com/statline/playerdist/metrics"
	"github.com/statline/playerdist/report"
)

func decayRateOption() cli.Flag {
	return &cli.FloatFlag{
		Name:  decayRateFlag,
		Usage: "Exponential decay rate of the summary weights",
	}
}

func familyOption() cli.Flag {
	return &cli.StringSliceFlag{
		Name:  familyFlag,
		Usage: "Candidate family (can be specified multiple times, default: all)",
	}
}

func runCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Fit every roster player and write the distribution table",
		UsageText: `playerdist run --roster players.csv --logs logs.csv
   playerdist run --logs games.db --logs-format sqlite --params params.yaml --params-format yaml`,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: rosterFlag, Usage: "Roster CSV file"},
			&cli.StringFlag{Name: logsFlag, Usage: "Game log CSV file or SQLite database"},
			&cli.StringFlag{Name: logsFormatFlag, Usage: "Game log format [csv, sqlite]"},
			&cli.StringFlag{Name: outputFlag, Aliases: []string{"o"}, Usage: "Output CSV table"},
			&cli.StringFlag{Name: paramsFlag, Usage: "Optional file for the fitted parameters"},
			&cli.StringFlag{Name: paramsFormatFlag, Usage: "Parameter file format [json, yaml]"},
			decayRateOption(),
			&cli.IntFlag{Name: windowFlag, Usage: "Number of most recent games per player"},
			familyOption(),
			&cli.StringFlag{Name: metricsFileFlag, Usage: "Optional Prometheus textfile for run metrics"},
		},
		Action: cmdRun,
	}
}

// applyRunFlags overrides cfg with the run flags that were set.
func applyRunFlags(cmd *cli.Command, cfg *config.Config) {
	if cmd.IsSet(rosterFlag) {
		cfg.Input.Roster = cmd.String(rosterFlag)
	}
	if cmd.IsSet(logsFlag) {
		cfg.Input.Logs = cmd.String(logsFlag)
	}
	if cmd.IsSet(logsFormatFlag) {
		cfg.Input.LogsFormat = cmd.String(logsFormatFlag)
	}
	if cmd.IsSet(outputFlag) {
		cfg.Output.Table = cmd.String(outputFlag)
	}
	if cmd.IsSet(paramsFlag) {
		cfg.Output.Params = cmd.String(paramsFlag)
	}
	if cmd.IsSet(paramsFormatFlag) {
		cfg.Output.ParamsFormat = cmd.String(paramsFormatFlag)
	}
	if cmd.IsSet(decayRateFlag) {
		cfg.Model.DecayRate = cmd.Float(decayRateFlag)
	}
	if cmd.IsSet(windowFlag) {
		cfg.Model.Window = int(cmd.Int(windowFlag))
	}
	if cmd.IsSet(familyFlag) {
		cfg.Model.Families = cmd.StringSlice(familyFlag)
	}
	if cmd.IsSet(metricsFileFlag) {
		cfg.Metrics.Textfile = cmd.String(metricsFileFlag)
	}
}

func cmdRun(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	applyRunFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closer, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer closer.Close()
	logger = logger.With().Str("run_id", uuid.NewString()).Logger()

	return execute(ctx, cfg, logger)
}

// execute loads the inputs named by cfg, runs the batch and writes
// the outputs. Nothing is written if the batch does not complete.
func execute(ctx context.Context, cfg *config.Config, logger zerolog.Logger) error {
	candidates, err := cfg.Candidates()
	if err != nil {
		return err
	}

	start := time.Now()
	tables, err := loadTables(ctx, cfg.Input)
	if err != nil {
		return err
	}
	logger.Info().
		Int("roster", len(tables.Roster)).
		Int("players", tables.Games.Players()).
		Int("games", tables.Games.Len()).
		Dur("elapsed", time.Since(start)).
		Msg("inputs loaded")

	rec := metrics.New()
	runner := &batch.Runner{
		DecayRate: cfg.Model.DecayRate,
		Window:    cfg.Model.Window,
		Catalog:   candidates,
		Metrics:   rec,
		Logger:    logger,
	}
	records, _, err := runner.Run(ctx, tables)
	if err != nil {
		return fmt.Errorf("batch interrupted: %w", err)
	}

	if err := report.WriteFile(cfg.Output.Table, func(w io.Writer) error {
		return report.WriteCSV(w, records)
	}); err != nil {
		return err
	}
	logger.Info().Str("path", cfg.Output.Table).Int("rows", len(records)).Msg("table written")

	if cfg.Output.Params != "" {
		if err := report.WriteFile(cfg.Output.Params, func(w io.Writer) error {
			return report.WriteParams(w, records, cfg.Output.ParamsFormat)
		}); err != nil {
			return err
		}
		logger.Info().Str("path", cfg.Output.Params).Msg("params written")
	}

	if cfg.Metrics.Textfile != "" {
		if err := rec.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}
	return nil
}

// loadTables reads the roster and the game logs in parallel.
func loadTables(ctx context.Context, in config.InputConfig) (batch.Tables, error) {
	var (
		roster []string
		games  []gamelog.Observation
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		roster, err = gamelog.ReadRosterFile(in.Roster, in.RosterColumn)
		return err
	})
	g.Go(func() error {
		var err error
		switch in.LogsFormat {
		case "sqlite":
			games, err = gamelog.LoadSQLite(ctx, in.Logs, in.LogsTable, in.Columns)
		default:
			games, err = gamelog.ReadLogsFile(in.Logs, in.Columns)
		}
		return err
	})
	if err := g.Wait(); err != nil {
		return batch.Tables{}, err
	}
	return batch.Tables{Roster: roster, Games: gamelog.NewIndex(games)}, nil
}
