// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// description holds the summary statistics that estimators and
// starting points are computed from.
type description struct {
	n        int
	mean     float64
	variance float64 // population
	stdDev   float64
	skew     float64 // NaN if undefined
	kurt     float64 // excess; NaN if undefined
	min, max float64
	median   float64
	iqr      float64
	absDev   float64 // mean absolute deviation from the median
}

// describe summarizes xs, which must be non-empty and finite.
func describe(xs []float64) description {
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	var d description
	d.n = len(xs)
	d.mean, d.variance = stat.PopMeanVariance(xs, nil)
	if d.variance < 0 {
		d.variance = 0
	}
	d.stdDev = math.Sqrt(d.variance)
	d.skew, d.kurt = math.NaN(), math.NaN()
	if d.n > 2 && d.variance > 0 {
		d.skew = stat.Skew(xs, nil)
		d.kurt = stat.ExKurtosis(xs, nil)
	}
	d.min, d.max = sorted[0], sorted[len(sorted)-1]
	d.median = median(sorted)
	d.iqr = stat.Quantile(0.75, stat.LinInterp, sorted, nil) - stat.Quantile(0.25, stat.LinInterp, sorted, nil)

	dev := make([]float64, len(xs))
	for i, x := range xs {
		dev[i] = math.Abs(x - d.median)
	}
	d.absDev = floats.Sum(dev) / float64(d.n)
	return d
}

// median returns the median of sorted, averaging the two middle
// values when the length is even.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// pad returns a small margin that keeps the sample strictly inside
// a bounded support.
func (d description) pad() float64 {
	if w := d.max - d.min; w > 0 {
		return 1e-3 * w
	}
	return 1e-3 * math.Max(1, math.Abs(d.min))
}
