// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gamelog

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// DefaultTable is the SQLite table LoadSQLite reads when none is
// given.
const DefaultTable = "game_logs"

// OpenDB opens the SQLite database at path.
func OpenDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}
	return db, nil
}

func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// LoadSQLite reads the game logs in table of the SQLite database at
// path. Columns are read with the same rules as ReadLogs; dates may
// also be stored as unix seconds or as SQLite timestamps.
func LoadSQLite(ctx context.Context, path, table string, cols Columns) ([]Observation, error) {
	db, err := OpenDB(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return QueryLogs(ctx, db, table, cols)
}

// QueryLogs reads the game logs in table of db.
func QueryLogs(ctx context.Context, db *sql.DB, table string, cols Columns) ([]Observation, error) {
	if table == "" {
		table = DefaultTable
	}
	names := cols.list()
	for i, name := range names {
		names[i] = quoteIdent(name)
	}
	q := fmt.Sprintf("SELECT %s FROM %s", strings.Join(names, ", "), quoteIdent(table))

	rows, err := db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to query game logs from %s: %w", table, err)
	}
	defer rows.Close()

	var obs []Observation
	for n := 1; rows.Next(); n++ {
		var player sql.NullString
		var date, pts, reb, ast any
		if err := rows.Scan(&player, &date, &pts, &reb, &ast); err != nil {
			return nil, fmt.Errorf("failed to scan game log row %d: %w", n, err)
		}
		t, err := sqlDate(date)
		if err != nil {
			return nil, fmt.Errorf("game logs: row %d: %w %v", n, err, date)
		}
		obs = append(obs, Observation{
			Player:   strings.TrimSpace(player.String),
			Date:     t,
			Points:   sqlMetric(pts),
			Rebounds: sqlMetric(reb),
			Assists:  sqlMetric(ast),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read game logs from %s: %w", table, err)
	}
	return obs, nil
}

func sqlDate(v any) (time.Time, error) {
	switch v := v.(type) {
	case time.Time:
		return v, nil
	case int64:
		return time.Unix(v, 0).UTC(), nil
	case float64:
		return time.Unix(int64(v), 0).UTC(), nil
	case string:
		return ParseDate(v)
	case []byte:
		return ParseDate(string(v))
	}
	return time.Time{}, ErrDate
}

func sqlMetric(v any) float64 {
	switch v := v.(type) {
	case int64:
		return float64(v)
	case float64:
		return v
	case string:
		return parseMetric(v)
	case []byte:
		return parseMetric(string(v))
	}
	return math.NaN()
}
