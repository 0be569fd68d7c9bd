// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gamelog

import (
	"context"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T, stmts ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "logs.db")
	db, err := OpenDB(path)
	require.NoError(t, err)
	defer db.Close()
	for _, s := range stmts {
		_, err := db.Exec(s)
		require.NoError(t, err, s)
	}
	return path
}

func TestLoadSQLite(t *testing.T) {
	path := setupTestDB(t,
		`CREATE TABLE game_logs (PLAYER_NAME TEXT, GAME_DATE TEXT, PTS REAL, REB INTEGER, AST TEXT)`,
		`INSERT INTO game_logs VALUES
			('Jokic', 'OCT 24, 2023', 29, 13, '11'),
			('Jokic', 'OCT 27, 2023', 22, 12, '7'),
			('Murray', 'OCT 24, 2023', 21, 4, '5'),
			('Jokic', 'OCT 29, 2023', 28, 14, '9')`,
	)
	got, err := LoadSQLite(context.Background(), path, "", DefaultColumns)
	require.NoError(t, err)

	csv := "PLAYER_NAME,GAME_DATE,PTS,REB,AST\n" +
		"Jokic,\"OCT 24, 2023\",29,13,11\n" +
		"Jokic,\"OCT 27, 2023\",22,12,7\n" +
		"Murray,\"OCT 24, 2023\",21,4,5\n" +
		"Jokic,\"OCT 29, 2023\",28,14,9\n"
	want, err := ReadLogs(strings.NewReader(csv), DefaultColumns)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadSQLiteTypes(t *testing.T) {
	path := setupTestDB(t,
		`CREATE TABLE logs (who TEXT, played INTEGER, p TEXT, r REAL, a INTEGER)`,
		`INSERT INTO logs VALUES ('A', 1709596800, '', NULL, 3)`,
	)
	cols := Columns{Player: "who", Date: "played", Points: "p", Rebounds: "r", Assists: "a"}
	got, err := LoadSQLite(context.Background(), path, "logs", cols)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, day("2024-03-05").Equal(got[0].Date))
	assert.True(t, math.IsNaN(got[0].Points))
	assert.True(t, math.IsNaN(got[0].Rebounds))
	assert.Equal(t, 3.0, got[0].Assists)
}

func TestLoadSQLiteErrors(t *testing.T) {
	path := setupTestDB(t,
		`CREATE TABLE game_logs (PLAYER_NAME TEXT, GAME_DATE TEXT, PTS REAL, REB REAL, AST REAL)`,
		`INSERT INTO game_logs VALUES ('A', 'someday', 1, 1, 1)`,
	)
	_, err := LoadSQLite(context.Background(), path, "", DefaultColumns)
	assert.ErrorIs(t, err, ErrDate)

	_, err = LoadSQLite(context.Background(), path, "missing", DefaultColumns)
	assert.Error(t, err)
}
