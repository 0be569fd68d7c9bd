// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report writes batch records as a flat CSV table and as a
// JSON or YAML document of fitted parameters.
package report // import "github.com/statline/playerdist/report"

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/statline/playerdist/batch"
	"github.com/statline/playerdist/fit"
	"github.com/statline/playerdist/gamelog"
)

// Parameter document formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Header returns the column names of the CSV table.
func Header() []string {
	h := []string{"Player"}
	for _, m := range gamelog.Metrics {
		h = append(h,
			m.String()+" Mean",
			m.String()+" Std Dev",
			m.String()+" Distribution",
			m.String()+" MSE",
		)
	}
	return h
}

// FormatFloat formats v in the shortest form that parses back to v,
// switching to exponent notation for very small and very large
// magnitudes.
func FormatFloat(v float64) string {
	if a := math.Abs(v); a != 0 && (a < 1e-4 || a >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// WriteCSV writes records as a CSV table with a header row, one row
// per record in order.
func WriteCSV(w io.Writer, records []batch.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header()); err != nil {
		return err
	}
	for i := range records {
		rec := &records[i]
		row := []string{rec.Player}
		for _, m := range gamelog.Metrics {
			ms := rec.Metric(m)
			row = append(row,
				FormatFloat(ms.Mean),
				FormatFloat(ms.StdDev),
				ms.Fit.Name,
				FormatFloat(ms.Fit.Score),
			)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Metric is the parameter document entry of one metric.
type Metric struct {
	Mean         float64   `json:"mean" yaml:"mean"`
	StdDev       float64   `json:"std_dev" yaml:"std_dev"`
	Distribution string    `json:"distribution" yaml:"distribution"`
	ParamNames   []string  `json:"param_names,omitempty" yaml:"param_names,omitempty,flow"`
	Params       []float64 `json:"params" yaml:"params,flow"`
	Score        float64   `json:"score" yaml:"score"`
}

// Player is the parameter document entry of one player.
type Player struct {
	Player       string `json:"player" yaml:"player"`
	Observations int    `json:"observations" yaml:"observations"`
	Metrics      struct {
		Points   Metric `json:"points" yaml:"points"`
		Rebounds Metric `json:"rebounds" yaml:"rebounds"`
		Assists  Metric `json:"assists" yaml:"assists"`
	} `json:"metrics" yaml:"metrics"`
}

func newMetric(ms *batch.MetricSummary) Metric {
	m := Metric{
		Mean:         ms.Mean,
		StdDev:       ms.StdDev,
		Distribution: ms.Fit.Name,
		Params:       ms.Fit.Params,
		Score:        ms.Fit.Score,
	}
	if f, ok := fit.Lookup(ms.Fit.Name); ok {
		m.ParamNames = f.ParameterNames()
	}
	return m
}

// Players converts records to parameter document entries.
func Players(records []batch.Record) []Player {
	ps := make([]Player, len(records))
	for i := range records {
		rec := &records[i]
		ps[i].Player = rec.Player
		ps[i].Observations = rec.Observations
		ps[i].Metrics.Points = newMetric(&rec.Points)
		ps[i].Metrics.Rebounds = newMetric(&rec.Rebounds)
		ps[i].Metrics.Assists = newMetric(&rec.Assists)
	}
	return ps
}

// WriteParams writes the fitted parameters of records in format.
func WriteParams(w io.Writer, records []batch.Record, format string) error {
	ps := Players(records)
	switch format {
	case FormatJSON, "":
		e := json.NewEncoder(w)
		e.SetIndent("", "  ")
		return e.Encode(ps)
	case FormatYAML:
		e := yaml.NewEncoder(w)
		e.SetIndent(2)
		if err := e.Encode(ps); err != nil {
			return err
		}
		return e.Close()
	}
	return fmt.Errorf("unsupported params format %q", format)
}

// WriteFile writes to a temporary file next to path with write and
// renames it to path once write succeeds.
func WriteFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(f.Name())
		}
	}()
	if err := write(f); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}
