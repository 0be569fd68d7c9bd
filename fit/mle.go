// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/optimize"
)

// outsidePenalty is added to the negative log-likelihood for every
// observation at which the density is zero or not finite.
var outsidePenalty = 100 * math.Log(math.MaxFloat64)

// nll returns the penalized negative log-likelihood of xs as a
// function of f's parameter vector. It is +Inf for parameters
// outside f's domain and never NaN.
func (f *Family) nll(xs []float64) func(params []float64) float64 {
	k := len(f.shapes)
	return func(params []float64) float64 {
		d, ok := f.dist(params)
		if !ok {
			return math.Inf(1)
		}
		var sum float64
		for _, x := range xs {
			lp := d.Std.LogProb((x - d.Loc) / d.Scale)
			if math.IsInf(lp, 0) || math.IsNaN(lp) {
				sum += outsidePenalty
				continue
			}
			sum -= lp
		}
		return sum + float64(len(xs))*math.Log(params[k+1])
	}
}

// start returns the parameter vector the likelihood search begins
// at. Loc and scale match the sample moments where the standard form
// has finite moments, and are then moved so that the sample lies
// inside the support.
func (f *Family) start(d description) ([]float64, bool) {
	var shapes []float64
	if f.initShapes != nil {
		shapes = f.initShapes(d)
	}
	std, ok := f.std(shapes)
	if !ok {
		return nil, false
	}
	lo, hi := f.support(shapes)
	pad := d.pad()

	var loc, scale float64
	if !math.IsInf(lo, 0) && !math.IsInf(hi, 0) {
		scale = (d.max - d.min + 2*pad) / (hi - lo)
		loc = d.min - pad - scale*lo
		return append(shapes, loc, scale), true
	}

	scale = math.Sqrt(d.variance / std.Variance())
	loc = d.mean - scale*std.Mean()
	if !(scale > 0) || math.IsInf(scale, 0) || math.IsNaN(loc) || math.IsInf(loc, 0) {
		// Heavy-tailed standard forms have no usable moments.
		loc, scale = d.median, d.iqr/2
		if !(scale > 0) {
			scale = d.stdDev
		}
	}
	if !math.IsInf(lo, -1) && loc+scale*lo >= d.min {
		loc = d.min - pad - scale*lo
	}
	if !math.IsInf(hi, 1) && loc+scale*hi <= d.max {
		loc = d.max + pad - scale*hi
	}
	return append(shapes, loc, scale), true
}

// simplex returns the initial Nelder-Mead simplex around x0: x0
// itself and one vertex per coordinate with that coordinate
// stretched by 5%, or set to 0.00025 if it is zero.
func simplex(x0 []float64, fn func([]float64) float64) (vertices [][]float64, values []float64) {
	vertices = make([][]float64, len(x0)+1)
	values = make([]float64, len(x0)+1)
	vertices[0] = append([]float64(nil), x0...)
	for i := range x0 {
		v := append([]float64(nil), x0...)
		if v[i] != 0 {
			v[i] *= 1.05
		} else {
			v[i] = 0.00025
		}
		vertices[i+1] = v
	}
	for i, v := range vertices {
		values[i] = fn(v)
	}
	return vertices, values
}

// mle minimizes the penalized negative log-likelihood of xs.
func (f *Family) mle(xs []float64, d description) ([]float64, error) {
	x0, ok := f.start(d)
	if !ok {
		return nil, fmt.Errorf("%w: %s: no valid starting point", ErrFitFailed, f.name)
	}
	nll := f.nll(xs)
	vertices, values := simplex(x0, nll)
	if math.IsInf(values[0], 1) {
		return nil, fmt.Errorf("%w: %s: no finite likelihood at starting point %v", ErrFitFailed, f.name, x0)
	}

	dim := len(x0)
	settings := &optimize.Settings{
		InitValues:      &optimize.Location{F: values[0]},
		MajorIterations: 200 * dim,
		FuncEvaluations: 400 * dim,
		Converger: &optimize.FunctionConverge{
			Absolute:   1e-10,
			Relative:   1e-10,
			Iterations: 50,
		},
	}
	method := &optimize.NelderMead{
		InitialVertices: vertices,
		InitialValues:   values,
	}
	res, err := optimize.Minimize(optimize.Problem{Func: nll}, x0, settings, method)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFitFailed, f.name, err)
	}
	if math.IsInf(res.F, 0) || math.IsNaN(res.F) {
		return nil, fmt.Errorf("%w: %s: likelihood search ended at %v (%v)", ErrFitFailed, f.name, res.F, res.Status)
	}
	return res.X, nil
}
