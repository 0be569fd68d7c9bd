// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// A Dist is a continuous statistical distribution.
type Dist interface {
	// PDF returns the value of the probability density function
	// of this distribution at x.
	PDF(x float64) float64

	// PDFEach returns PDF(xs[i]) for each i.
	PDFEach(xs []float64) []float64

	// CDF returns the value of the cumulative distribution
	// function for this distribution at x.
	CDF(x float64) float64

	// CDFEach returns CDF(xs[i]) for each i.
	CDFEach(xs []float64) []float64
}

// A Standard is a distribution in standard form, with location 0
// and scale 1. The distributions in gonum's distuv package satisfy
// this interface when constructed with unit location and scale.
type Standard interface {
	LogProb(x float64) float64
	CDF(x float64) float64
	Mean() float64
	Variance() float64
}

// LocScaleDist shifts and stretches a standard distribution. Its
// density is Std.Prob((x-Loc)/Scale)/Scale.
type LocScaleDist struct {
	Std   Standard
	Loc   float64
	Scale float64 // Scale > 0
}

// LogPDF returns the natural logarithm of the density at x.
//
// Points on the boundary of the support where the standard form
// evaluates to NaN (for example, log(0)*0) have density 0.
func (d LocScaleDist) LogPDF(x float64) float64 {
	lp := d.Std.LogProb((x-d.Loc)/d.Scale) - math.Log(d.Scale)
	if math.IsNaN(lp) {
		return math.Inf(-1)
	}
	return lp
}

func (d LocScaleDist) PDF(x float64) float64 {
	return math.Exp(d.LogPDF(x))
}

func (d LocScaleDist) PDFEach(xs []float64) []float64 {
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = d.PDF(x)
	}
	return res
}

func (d LocScaleDist) CDF(x float64) float64 {
	return d.Std.CDF((x - d.Loc) / d.Scale)
}

func (d LocScaleDist) CDFEach(xs []float64) []float64 {
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = d.CDF(x)
	}
	return res
}

func (d LocScaleDist) Mean() float64 {
	return d.Loc + d.Scale*d.Std.Mean()
}

func (d LocScaleDist) Variance() float64 {
	return d.Scale * d.Scale * d.Std.Variance()
}
