// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gamelog loads player rosters and per-game statistics and
// indexes the games of each player by recency.
package gamelog // import "github.com/statline/playerdist/gamelog"

import (
	"errors"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrMissingColumn is returned when an input table lacks a
	// required column.
	ErrMissingColumn = errors.New("missing column")

	// ErrDate is returned for a game date in no known layout.
	ErrDate = errors.New("unrecognized date")
)

// An Observation is one player's statistics for one game.
type Observation struct {
	Player   string
	Date     time.Time
	Points   float64
	Rebounds float64
	Assists  float64
}

// Columns names the game-log columns.
type Columns struct {
	Player   string `mapstructure:"player" yaml:"player" default:"PLAYER_NAME" validate:"required"`
	Date     string `mapstructure:"date" yaml:"date" default:"GAME_DATE" validate:"required"`
	Points   string `mapstructure:"points" yaml:"points" default:"PTS" validate:"required"`
	Rebounds string `mapstructure:"rebounds" yaml:"rebounds" default:"REB" validate:"required"`
	Assists  string `mapstructure:"assists" yaml:"assists" default:"AST" validate:"required"`
}

// DefaultColumns are the column names of the NBA stats game-log
// export.
var DefaultColumns = Columns{
	Player:   "PLAYER_NAME",
	Date:     "GAME_DATE",
	Points:   "PTS",
	Rebounds: "REB",
	Assists:  "AST",
}

func (c Columns) list() []string {
	return []string{c.Player, c.Date, c.Points, c.Rebounds, c.Assists}
}

// A Metric is one of the per-game statistics of an Observation.
type Metric int

const (
	Points Metric = iota
	Rebounds
	Assists
)

// Metrics lists every Metric in output order.
var Metrics = []Metric{Points, Rebounds, Assists}

func (m Metric) String() string {
	switch m {
	case Points:
		return "Points"
	case Rebounds:
		return "Rebounds"
	case Assists:
		return "Assists"
	}
	return "Metric(" + strconv.Itoa(int(m)) + ")"
}

// Key returns the lower-case name of m used in structured output.
func (m Metric) Key() string {
	return strings.ToLower(m.String())
}

// Value returns the value of m in o.
func (m Metric) Value(o Observation) float64 {
	switch m {
	case Points:
		return o.Points
	case Rebounds:
		return o.Rebounds
	case Assists:
		return o.Assists
	}
	return math.NaN()
}

// Series returns the values of m in games, in order.
func Series(games []Observation, m Metric) []float64 {
	xs := make([]float64, len(games))
	for i, g := range games {
		xs[i] = m.Value(g)
	}
	return xs
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"Jan 2, 2006",
	"01/02/2006",
}

// ParseDate parses a game date. It accepts ISO dates and timestamps,
// the "Jan 02, 2006" form of the NBA stats API (month names are
// matched case-insensitively), US-style "01/02/2006" dates and unix
// seconds.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	if sec, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(sec, 0).UTC(), nil
	}
	return time.Time{}, ErrDate
}

// parseMetric parses a statistic cell. Blank and unparseable cells
// are missing values and parse as NaN.
func parseMetric(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// An Index holds the games of each player, most recent first.
type Index struct {
	games map[string][]Observation
}

// NewIndex groups obs by player and orders each player's games by
// date, most recent first. Games on the same date keep their input
// order.
func NewIndex(obs []Observation) *Index {
	ix := &Index{games: make(map[string][]Observation)}
	for _, o := range obs {
		ix.games[o.Player] = append(ix.games[o.Player], o)
	}
	for _, games := range ix.games {
		sort.SliceStable(games, func(i, j int) bool {
			return games[i].Date.After(games[j].Date)
		})
	}
	return ix
}

// Recent returns the most recent n games of player, or all of them
// if n <= 0. The result is empty if the player has no games. A nil
// *Index holds no games.
func (ix *Index) Recent(player string, n int) []Observation {
	if ix == nil {
		return nil
	}
	games := ix.games[player]
	if n > 0 && len(games) > n {
		games = games[:n]
	}
	return games
}

// Players returns the number of distinct players in the index.
func (ix *Index) Players() int {
	if ix == nil {
		return 0
	}
	return len(ix.games)
}

// Len returns the total number of games in the index.
func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	n := 0
	for _, games := range ix.games {
		n += len(games)
	}
	return n
}
