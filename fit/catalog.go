// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/statline/playerdist/stats"
)

func fixed(d stats.Standard) func([]float64) (stats.Standard, bool) {
	return func([]float64) (stats.Standard, bool) { return d, true }
}

func unbounded([]float64) (float64, float64) { return math.Inf(-1), math.Inf(1) }
func halfLine([]float64) (float64, float64)  { return 0, math.Inf(1) }
func unitInterval([]float64) (float64, float64) {
	return 0, 1
}

// clampShape keeps moment-based shape estimates in a range where the
// likelihood is well behaved, substituting def for undefined values.
func clampShape(v, def float64) float64 {
	if math.IsNaN(v) || v <= 0 {
		return def
	}
	return math.Max(1e-2, math.Min(v, 1e3))
}

// skewShape returns k/skew², the moment estimate of the shape of a
// gamma-like family whose skewness is sqrt(k/shape).
func skewShape(d description, k float64) float64 {
	if !(d.skew > 0) {
		return 1
	}
	return clampShape(k/(d.skew*d.skew), 1)
}

func betaShapes(d description) []float64 {
	pad := d.pad()
	width := d.max - d.min + 2*pad
	m := (d.mean - d.min + pad) / width
	v := d.variance / (width * width)
	common := m*(1-m)/v - 1
	a, b := m*common, (1-m)*common
	if !(a > 0 && b > 0) || math.IsInf(a, 0) || math.IsInf(b, 0) {
		return []float64{1, 1}
	}
	return []float64{a, b}
}

var catalog = []*Family{
	{
		name:    "norm",
		std:     fixed(distuv.UnitNormal),
		support: unbounded,
		closed:  func(d description) (float64, float64) { return d.mean, d.stdDev },
	},
	{
		name:   "beta",
		shapes: []string{"a", "b"},
		std: func(s []float64) (stats.Standard, bool) {
			if !(s[0] > 0 && s[1] > 0) {
				return nil, false
			}
			return distuv.Beta{Alpha: s[0], Beta: s[1]}, true
		},
		support:    unitInterval,
		initShapes: betaShapes,
	},
	{
		name:    "expon",
		std:     fixed(distuv.Exponential{Rate: 1}),
		support: halfLine,
		closed:  func(d description) (float64, float64) { return d.min, d.mean - d.min },
	},
	{
		name:   "chi2",
		shapes: []string{"df"},
		std: func(s []float64) (stats.Standard, bool) {
			if !(s[0] > 0) {
				return nil, false
			}
			return distuv.ChiSquared{K: s[0]}, true
		},
		support:    halfLine,
		initShapes: func(d description) []float64 { return []float64{skewShape(d, 8)} },
	},
	{
		name:   "t",
		shapes: []string{"df"},
		std: func(s []float64) (stats.Standard, bool) {
			if !(s[0] > 0) {
				return nil, false
			}
			return distuv.StudentsT{Mu: 0, Sigma: 1, Nu: s[0]}, true
		},
		support: unbounded,
		initShapes: func(d description) []float64 {
			if !(d.kurt > 0) {
				return []float64{30}
			}
			return []float64{clampShape(6/d.kurt+4, 30)}
		},
	},
	{
		name:   "f",
		shapes: []string{"dfn", "dfd"},
		std: func(s []float64) (stats.Standard, bool) {
			if !(s[0] > 0 && s[1] > 0) {
				return nil, false
			}
			return distuv.F{D1: s[0], D2: s[1]}, true
		},
		support:    halfLine,
		initShapes: func(description) []float64 { return []float64{5, 10} },
	},
	{
		name:   "pareto",
		shapes: []string{"b"},
		std: func(s []float64) (stats.Standard, bool) {
			if !(s[0] > 0) {
				return nil, false
			}
			return distuv.Pareto{Xm: 1, Alpha: s[0]}, true
		},
		support:    func([]float64) (float64, float64) { return 1, math.Inf(1) },
		initShapes: func(description) []float64 { return []float64{3} },
	},
	{
		name:    "rayleigh",
		std:     fixed(distuv.Weibull{K: 2, Lambda: math.Sqrt2}),
		support: halfLine,
	},
	{
		name:    "cauchy",
		std:     fixed(distuv.StudentsT{Mu: 0, Sigma: 1, Nu: 1}),
		support: unbounded,
	},
	{
		name:   "triang",
		shapes: []string{"c"},
		std: func(s []float64) (stats.Standard, bool) {
			if !(s[0] >= 0 && s[0] <= 1) {
				return nil, false
			}
			return distuv.NewTriangle(0, 1, s[0], nil), true
		},
		support:    unitInterval,
		initShapes: func(description) []float64 { return []float64{0.5} },
	},
	{
		name:    "laplace",
		std:     fixed(distuv.Laplace{Mu: 0, Scale: 1}),
		support: unbounded,
		closed:  func(d description) (float64, float64) { return d.median, d.absDev },
	},
	{
		name:    "uniform",
		std:     fixed(distuv.Uniform{Min: 0, Max: 1}),
		support: unitInterval,
		closed:  func(d description) (float64, float64) { return d.min, d.max - d.min },
	},
	{
		// distuv.Logistic evaluates the standard density regardless
		// of Mu and S.
		name:    "logistic",
		std:     fixed(distuv.Logistic{Mu: 0, S: 1}),
		support: unbounded,
	},
	{
		name:    "gumbel_r",
		std:     fixed(distuv.GumbelRight{Mu: 0, Beta: 1}),
		support: unbounded,
	},
	{
		name:    "gumbel_l",
		std:     fixed(stats.GumbelLeft{}),
		support: unbounded,
	},
	{
		name:   "gamma",
		shapes: []string{"a"},
		std: func(s []float64) (stats.Standard, bool) {
			if !(s[0] > 0) {
				return nil, false
			}
			return distuv.Gamma{Alpha: s[0], Beta: 1}, true
		},
		support:    halfLine,
		initShapes: func(d description) []float64 { return []float64{skewShape(d, 4)} },
	},
	{
		name:   "weibull_min",
		shapes: []string{"c"},
		std: func(s []float64) (stats.Standard, bool) {
			if !(s[0] > 0) {
				return nil, false
			}
			return distuv.Weibull{K: s[0], Lambda: 1}, true
		},
		support:    halfLine,
		initShapes: func(description) []float64 { return []float64{1.5} },
	},
	{
		name:   "invgauss",
		shapes: []string{"mu"},
		std: func(s []float64) (stats.Standard, bool) {
			if !(s[0] > 0) {
				return nil, false
			}
			return stats.InvGauss{Mu: s[0]}, true
		},
		support:    halfLine,
		initShapes: func(description) []float64 { return []float64{1} },
	},
	{
		name:   "genextreme",
		shapes: []string{"c"},
		std: func(s []float64) (stats.Standard, bool) {
			return stats.GEV{C: s[0]}, true
		},
		support: func(s []float64) (float64, float64) {
			switch c := s[0]; {
			case c > 0:
				return math.Inf(-1), 1 / c
			case c < 0:
				return 1 / c, math.Inf(1)
			}
			return unbounded(nil)
		},
		initShapes: func(d description) []float64 {
			if d.skew < 0 {
				return []float64{0.1}
			}
			return []float64{-0.1}
		},
	},
}

var byName = func() map[string]*Family {
	m := make(map[string]*Family, len(catalog))
	for _, f := range catalog {
		m[f.name] = f
	}
	return m
}()

// Catalog returns the distribution families in selection order:
// norm, beta, expon, chi2, t, f, pareto, rayleigh, cauchy, triang,
// laplace, uniform, logistic, gumbel_r, gumbel_l, gamma, weibull_min,
// invgauss and genextreme.
func Catalog() []Candidate {
	cs := make([]Candidate, len(catalog))
	for i, f := range catalog {
		cs[i] = f
	}
	return cs
}

// Names returns the names of the catalog families in selection
// order.
func Names() []string {
	names := make([]string, len(catalog))
	for i, f := range catalog {
		names[i] = f.name
	}
	return names
}

// Lookup returns the catalog family with the given name.
func Lookup(name string) (*Family, bool) {
	f, ok := byName[name]
	return f, ok
}

// Subset returns the catalog families named in names, in catalog
// order. Duplicate names are ignored. It returns an error if a name
// is not in the catalog. An empty names selects the whole catalog.
func Subset(names []string) ([]Candidate, error) {
	if len(names) == 0 {
		return Catalog(), nil
	}
	want := make(map[string]bool, len(names))
	for _, name := range names {
		if _, ok := byName[name]; !ok {
			return nil, fmt.Errorf("unknown distribution family %q", name)
		}
		want[name] = true
	}
	var cs []Candidate
	for _, f := range catalog {
		if want[f.name] {
			cs = append(cs, f)
		}
	}
	return cs, nil
}
