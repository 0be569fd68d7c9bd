// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gamelog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// header maps column names to their index in a CSV header row.
type header map[string]int

func readHeader(r *csv.Reader) (header, error) {
	row, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("empty table: %w", ErrMissingColumn)
	}
	if err != nil {
		return nil, err
	}
	h := make(header, len(row))
	for i, name := range row {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		name = strings.TrimSpace(name)
		if _, dup := h[name]; !dup {
			h[name] = i
		}
	}
	return h, nil
}

func (h header) index(names ...string) ([]int, error) {
	idx := make([]int, len(names))
	for i, name := range names {
		j, ok := h[name]
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrMissingColumn, name)
		}
		idx[i] = j
	}
	return idx, nil
}

func newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true
	return cr
}

// field returns row[i], or "" if the row is short.
func field(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// fieldLine returns the line on which field i of the last record
// read by cr starts, or the record's first line if the row is short.
func fieldLine(cr *csv.Reader, row []string, i int) int {
	if i >= len(row) {
		i = 0
	}
	line, _ := cr.FieldPos(i)
	return line
}

// ReadRoster reads the player names in column of a CSV roster. Blank
// names are skipped and duplicates are collapsed to their first
// occurrence.
func ReadRoster(r io.Reader, column string) ([]string, error) {
	cr := newReader(r)
	h, err := readHeader(cr)
	if err != nil {
		return nil, fmt.Errorf("roster: %w", err)
	}
	idx, err := h.index(column)
	if err != nil {
		return nil, fmt.Errorf("roster: %w", err)
	}

	var players []string
	seen := make(map[string]bool)
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("roster: %w", err)
		}
		name := strings.TrimSpace(field(row, idx[0]))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		players = append(players, name)
	}
	return players, nil
}

// ReadLogs reads game logs from CSV. Missing or unparseable statistics
// are NaN. A row whose date cannot be parsed is an error.
func ReadLogs(r io.Reader, cols Columns) ([]Observation, error) {
	cr := newReader(r)
	h, err := readHeader(cr)
	if err != nil {
		return nil, fmt.Errorf("game logs: %w", err)
	}
	idx, err := h.index(cols.list()...)
	if err != nil {
		return nil, fmt.Errorf("game logs: %w", err)
	}

	var obs []Observation
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("game logs: %w", err)
		}
		date, err := ParseDate(field(row, idx[1]))
		if err != nil {
			return nil, fmt.Errorf("game logs: line %d: %w %q", fieldLine(cr, row, idx[1]), err, field(row, idx[1]))
		}
		obs = append(obs, Observation{
			Player:   strings.TrimSpace(field(row, idx[0])),
			Date:     date,
			Points:   parseMetric(field(row, idx[2])),
			Rebounds: parseMetric(field(row, idx[3])),
			Assists:  parseMetric(field(row, idx[4])),
		})
	}
	return obs, nil
}

// ReadRosterFile reads a CSV roster from path.
func ReadRosterFile(path, column string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadRoster(f, column)
}

// ReadLogsFile reads CSV game logs from path.
func ReadLogsFile(path string, cols Columns) ([]Observation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadLogs(f, cols)
}
