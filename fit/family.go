// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"fmt"
	"math"

	"github.com/statline/playerdist/stats"
)

// A Candidate is a distribution family that can be fit to a sample
// and evaluated with the fitted parameters.
type Candidate interface {
	// Name returns the family's identifier.
	Name() string

	// NumParameters returns the length of the family's parameter
	// vector.
	NumParameters() int

	// Fit estimates a parameter vector from xs, which must be
	// finite.
	Fit(xs []float64) ([]float64, error)

	// PDF returns the density at x of the family with the given
	// parameters. It returns NaN if params is not a valid
	// parameter vector for the family.
	PDF(x float64, params []float64) float64
}

// A Family is a location/scale family of continuous distributions,
// parameterized by zero or more shape parameters followed by loc and
// scale.
type Family struct {
	name   string
	shapes []string

	// std returns the standard form for the given shape
	// parameters, or false if they are outside the family's
	// domain.
	std func(shapes []float64) (stats.Standard, bool)

	// support returns the bounds of the standard form's support.
	support func(shapes []float64) (lo, hi float64)

	// closed, if non-nil, estimates loc and scale directly.
	// Families without a closed form are fit by penalized maximum
	// likelihood.
	closed func(d description) (loc, scale float64)

	// initShapes returns the shape parameters the likelihood
	// search starts from.
	initShapes func(d description) []float64
}

var _ Candidate = (*Family)(nil)

func (f *Family) Name() string {
	return f.name
}

func (f *Family) NumParameters() int {
	return len(f.shapes) + 2
}

// ParameterNames returns the names of f's parameters in the order
// they appear in a parameter vector.
func (f *Family) ParameterNames() []string {
	names := make([]string, 0, f.NumParameters())
	names = append(names, f.shapes...)
	return append(names, "loc", "scale")
}

func (f *Family) String() string {
	return f.name
}

// Dist returns the distribution described by params, or an error if
// params is not a valid parameter vector for f.
func (f *Family) Dist(params []float64) (stats.LocScaleDist, error) {
	d, ok := f.dist(params)
	if !ok {
		return stats.LocScaleDist{}, fmt.Errorf("%s: invalid parameters %v", f.name, params)
	}
	return d, nil
}

func (f *Family) dist(params []float64) (stats.LocScaleDist, bool) {
	if len(params) != f.NumParameters() {
		return stats.LocScaleDist{}, false
	}
	for _, p := range params {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return stats.LocScaleDist{}, false
		}
	}
	k := len(f.shapes)
	loc, scale := params[k], params[k+1]
	if !(scale > 0) {
		return stats.LocScaleDist{}, false
	}
	std, ok := f.std(params[:k])
	if !ok {
		return stats.LocScaleDist{}, false
	}
	return stats.LocScaleDist{Std: std, Loc: loc, Scale: scale}, true
}

func (f *Family) PDF(x float64, params []float64) float64 {
	d, ok := f.dist(params)
	if !ok {
		return math.NaN()
	}
	return d.PDF(x)
}

// Fit estimates the parameters of f from xs. Families with a
// closed-form estimator use it; the others minimize the penalized
// negative log-likelihood.
func (f *Family) Fit(xs []float64) ([]float64, error) {
	if len(xs) == 0 {
		return nil, ErrInsufficientData
	}
	d := describe(xs)

	var params []float64
	if f.closed != nil {
		loc, scale := f.closed(d)
		params = []float64{loc, scale}
	} else {
		var err error
		params, err = f.mle(xs, d)
		if err != nil {
			return nil, err
		}
	}

	if _, ok := f.dist(params); !ok {
		return nil, fmt.Errorf("%w: %s: parameters %v outside the domain", ErrFitFailed, f.name, params)
	}
	return params, nil
}
