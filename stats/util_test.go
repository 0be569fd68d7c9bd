// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"
	"testing"
)

func aeq(expect, got float64) bool {
	if expect == got {
		return true
	}
	return math.Abs(expect-got) < 0.00001
}

// testFunc checks f against a table of inputs and expected outputs.
func testFunc(t *testing.T, name string, f func(float64) float64, vals map[float64]float64) {
	t.Helper()
	xs := make([]float64, 0, len(vals))
	for x := range vals {
		xs = append(xs, x)
	}
	sort.Float64s(xs)

	for _, x := range xs {
		want, got := vals[x], f(x)
		if !aeq(want, got) {
			t.Errorf("%s(%v): want %v, got %v", name, x, want, got)
		}
	}
}
