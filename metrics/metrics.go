// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metrics records batch statistics with Prometheus and
// writes them in the node exporter textfile format.
package metrics // import "github.com/statline/playerdist/metrics"

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcomes of fitting one candidate.
const (
	OutcomeOK               = "ok"
	OutcomeFailed           = "failed"
	OutcomeInsufficientData = "insufficient_data"
)

// Player statuses.
const (
	PlayerProcessed = "processed"
	PlayerSkipped   = "skipped"
	PlayerFailed    = "failed"
)

// Recorder holds the batch metrics on a private registry. A nil
// *Recorder records nothing.
type Recorder struct {
	registry      *prometheus.Registry
	candidateFits *prometheus.CounterVec
	selections    *prometheus.CounterVec
	players       *prometheus.CounterVec
	fitDuration   *prometheus.HistogramVec
}

// New creates a Recorder with its own registry.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		candidateFits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "playerdist_candidate_fits_total",
				Help: "Total number of candidate distribution fits by outcome",
			},
			[]string{"family", "outcome"},
		),
		selections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "playerdist_selections_total",
				Help: "Total number of times a family was selected for a metric",
			},
			[]string{"metric", "family"},
		),
		players: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "playerdist_players_total",
				Help: "Total number of roster players by status",
			},
			[]string{"status"},
		),
		fitDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "playerdist_candidate_fit_duration_seconds",
				Help:    "Time to fit and score one candidate",
				Buckets: prometheus.ExponentialBuckets(1e-5, 4, 10),
			},
			[]string{"family"},
		),
	}
	r.registry.MustRegister(r.candidateFits, r.selections, r.players, r.fitDuration)
	return r
}

// Registry returns the registry holding r's metrics.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// RecordCandidate records the outcome and duration of one candidate
// fit.
func (r *Recorder) RecordCandidate(family, outcome string, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.candidateFits.WithLabelValues(family, outcome).Inc()
	r.fitDuration.WithLabelValues(family).Observe(elapsed.Seconds())
}

// RecordSelection records the family selected for a metric.
func (r *Recorder) RecordSelection(metric, family string) {
	if r == nil {
		return
	}
	r.selections.WithLabelValues(metric, family).Inc()
}

// RecordPlayer records the status of one roster player.
func (r *Recorder) RecordPlayer(status string) {
	if r == nil {
		return
	}
	r.players.WithLabelValues(status).Inc()
}

// WriteTextfile writes the metrics to path atomically in the text
// exposition format.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
