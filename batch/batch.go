// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package batch summarizes and fits the recent games of every player
// in a roster.
package batch // import "github.com/statline/playerdist/batch"

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/statline/playerdist/fit"
	"github.com/statline/playerdist/gamelog"
	"github.com/statline/playerdist/metrics"
	"github.com/statline/playerdist/stats"
)

// DefaultWindow is the number of most recent games considered per
// player.
const DefaultWindow = 50

// ErrNoObservations is returned for a player with no games.
var ErrNoObservations = errors.New("no observations")

// A MetricSummary is the recency-weighted summary and the selected
// distribution of one metric.
type MetricSummary struct {
	Mean   float64
	StdDev float64
	Fit    fit.FitResult
}

// A Record is the output row of one player.
type Record struct {
	Player       string
	Observations int
	Points       MetricSummary
	Rebounds     MetricSummary
	Assists      MetricSummary
}

// Metric returns the summary of m in r.
func (r *Record) Metric(m gamelog.Metric) *MetricSummary {
	switch m {
	case gamelog.Points:
		return &r.Points
	case gamelog.Rebounds:
		return &r.Rebounds
	case gamelog.Assists:
		return &r.Assists
	}
	panic(fmt.Sprintf("batch: unknown metric %v", m))
}

// Tables are the loaded inputs of a run. They are not modified.
type Tables struct {
	Roster []string
	Games  *gamelog.Index
}

// A Summary counts the roster players by outcome.
type Summary struct {
	Processed int
	Skipped   int
	Failed    int
}

// A Runner processes rosters. A nil Metrics records nothing and the
// zero Logger discards its output.
//
// DecayRate is used as given: the zero Runner weights every game
// equally. Set it to stats.DefaultDecayRate for the usual recency
// weighting.
type Runner struct {
	DecayRate float64
	Window    int             // zero means DefaultWindow
	Catalog   []fit.Candidate // nil means fit.Catalog()
	Metrics   *metrics.Recorder
	Logger    zerolog.Logger
}

func (r *Runner) window() int {
	if r.Window <= 0 {
		return DefaultWindow
	}
	return r.Window
}

// Run processes the roster in order, one player at a time and each
// player once, and returns a record for every player that has games
// and a valid fit for every metric. Players without games are
// skipped; players that fail are logged and omitted. Run stops
// between players when ctx is done and returns ctx's error.
func (r *Runner) Run(ctx context.Context, t Tables) ([]Record, Summary, error) {
	var (
		records []Record
		sum     Summary
	)
	start := time.Now()
	seen := make(map[string]bool, len(t.Roster))
	for _, player := range t.Roster {
		if err := ctx.Err(); err != nil {
			return nil, sum, err
		}
		if seen[player] {
			continue
		}
		seen[player] = true
		log := r.Logger.With().Str("player", player).Logger()

		rec, err := r.Player(player, t.Games.Recent(player, r.window()))
		switch {
		case errors.Is(err, ErrNoObservations):
			sum.Skipped++
			r.Metrics.RecordPlayer(metrics.PlayerSkipped)
			log.Debug().Msg("no games, skipping")
		case err != nil:
			sum.Failed++
			r.Metrics.RecordPlayer(metrics.PlayerFailed)
			log.Warn().Err(err).Msg("player omitted")
		default:
			sum.Processed++
			r.Metrics.RecordPlayer(metrics.PlayerProcessed)
			log.Debug().
				Int("games", rec.Observations).
				Str("points", rec.Points.Fit.Name).
				Str("rebounds", rec.Rebounds.Fit.Name).
				Str("assists", rec.Assists.Fit.Name).
				Msg("player processed")
			records = append(records, rec)
		}
	}
	r.Logger.Info().
		Int("players", len(t.Roster)).
		Int("processed", sum.Processed).
		Int("skipped", sum.Skipped).
		Int("failed", sum.Failed).
		Dur("elapsed", time.Since(start)).
		Msg("batch complete")
	return records, sum, nil
}

// Player summarizes and fits the games of one player, which must be
// ordered most recent first.
func (r *Runner) Player(player string, games []gamelog.Observation) (Record, error) {
	rec := Record{Player: player, Observations: len(games)}
	if len(games) == 0 {
		return rec, fmt.Errorf("%s: %w", player, ErrNoObservations)
	}
	for _, m := range gamelog.Metrics {
		ms, err := r.metric(m, gamelog.Series(games, m))
		if err != nil {
			return rec, fmt.Errorf("%s: %s: %w", player, m.Key(), err)
		}
		*rec.Metric(m) = ms
	}
	return rec, nil
}

func (r *Runner) metric(m gamelog.Metric, xs []float64) (MetricSummary, error) {
	clean := stats.Finite(xs)
	if len(clean) == 0 {
		return MetricSummary{}, fit.ErrInsufficientData
	}
	summary, err := stats.Summarize(clean, r.DecayRate)
	if err != nil {
		return MetricSummary{}, err
	}

	sel := fit.Selector{
		Catalog: r.Catalog,
		Observe: func(c fit.CandidateResult, elapsed time.Duration) {
			outcome := metrics.OutcomeOK
			switch {
			case errors.Is(c.Err, fit.ErrInsufficientData):
				outcome = metrics.OutcomeInsufficientData
			case c.Err != nil:
				outcome = metrics.OutcomeFailed
			}
			r.Metrics.RecordCandidate(c.Name, outcome, elapsed)
			r.Logger.Trace().
				Str("metric", m.Key()).
				Str("family", c.Name).
				Float64("score", c.Score).
				AnErr("fit_error", c.Err).
				Dur("elapsed", elapsed).
				Msg("candidate")
		},
	}
	res, err := sel.Select(clean)
	if err != nil {
		return MetricSummary{}, err
	}
	r.Metrics.RecordSelection(m.Key(), res.Name)
	return MetricSummary{Mean: summary.Mean, StdDev: summary.StdDev, Fit: res.FitResult}, nil
}
