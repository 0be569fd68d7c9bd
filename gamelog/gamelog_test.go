// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gamelog

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestParseDate(t *testing.T) {
	want := day("2024-03-05")
	for _, s := range []string{
		"2024-03-05",
		" 2024-03-05 ",
		"2024-03-05T00:00:00Z",
		"2024-03-05T00:00:00",
		"2024-03-05 00:00:00",
		"Mar 05, 2024",
		"MAR 05, 2024",
		"Mar 5, 2024",
		"03/05/2024",
		"1709596800",
	} {
		got, err := ParseDate(s)
		require.NoError(t, err, s)
		assert.True(t, want.Equal(got), "%q: got %v", s, got)
	}

	for _, s := range []string{"", "yesterday", "2024-13-01", "05.03.2024"} {
		_, err := ParseDate(s)
		assert.ErrorIs(t, err, ErrDate, s)
	}
}

func TestParseMetric(t *testing.T) {
	assert.Equal(t, 12.0, parseMetric("12"))
	assert.Equal(t, 0.5, parseMetric(" 0.5 "))
	assert.True(t, math.IsNaN(parseMetric("")))
	assert.True(t, math.IsNaN(parseMetric("DNP")))
}

func TestMetric(t *testing.T) {
	o := Observation{Points: 30, Rebounds: 10, Assists: 8}
	assert.Equal(t, []string{"Points", "Rebounds", "Assists"},
		[]string{Metrics[0].String(), Metrics[1].String(), Metrics[2].String()})
	assert.Equal(t, "rebounds", Rebounds.Key())
	assert.Equal(t, 30.0, Points.Value(o))
	assert.Equal(t, 10.0, Rebounds.Value(o))
	assert.Equal(t, 8.0, Assists.Value(o))
	assert.True(t, math.IsNaN(Metric(7).Value(o)))
	assert.Equal(t, "Metric(7)", Metric(7).String())

	games := []Observation{{Assists: 1}, {Assists: 2}}
	assert.Equal(t, []float64{1, 2}, Series(games, Assists))
}

func TestIndexRecent(t *testing.T) {
	obs := []Observation{
		{Player: "A", Date: day("2024-01-01"), Points: 1},
		{Player: "B", Date: day("2024-01-05"), Points: 100},
		{Player: "A", Date: day("2024-01-03"), Points: 3},
		{Player: "A", Date: day("2024-01-02"), Points: 2},
		{Player: "A", Date: day("2024-01-03"), Points: 33},
	}
	ix := NewIndex(obs)
	assert.Equal(t, 2, ix.Players())
	assert.Equal(t, 5, ix.Len())

	// Same-day games keep their input order.
	assert.Equal(t, []float64{3, 33, 2, 1}, Series(ix.Recent("A", 0), Points))
	assert.Equal(t, []float64{3, 33}, Series(ix.Recent("A", 2), Points))
	assert.Equal(t, []float64{3, 33, 2, 1}, Series(ix.Recent("A", 50), Points))
	assert.Empty(t, ix.Recent("C", 50))
}

func TestIndexWindow(t *testing.T) {
	// 51 games on consecutive days; the oldest falls out of a
	// 50-game window.
	start := day("2023-10-01")
	var obs []Observation
	for i := 0; i < 51; i++ {
		obs = append(obs, Observation{Player: "A", Date: start.AddDate(0, 0, i), Points: float64(i)})
	}
	recent := NewIndex(obs).Recent("A", 50)
	require.Len(t, recent, 50)
	assert.Equal(t, 50.0, recent[0].Points)
	assert.Equal(t, 1.0, recent[49].Points)
}

func TestIndexNil(t *testing.T) {
	var ix *Index
	assert.Empty(t, ix.Recent("A", 50))
	assert.Equal(t, 0, ix.Players())
	assert.Equal(t, 0, ix.Len())
}
