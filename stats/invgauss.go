// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// InvGauss is the standard inverse Gaussian (Wald) distribution with
// mean Mu and unit shape. Mu must be greater than 0. Its support is
// x > 0, where the density is
//
//	exp(-(x-Mu)²/(2xMu²)) / sqrt(2πx³).
type InvGauss struct {
	Mu float64
}

var logSqrt2Pi = 0.5 * math.Log(2*math.Pi)

func (d InvGauss) LogProb(x float64) float64 {
	if x <= 0 {
		return math.Inf(-1)
	}
	dx := x - d.Mu
	return -logSqrt2Pi - 1.5*math.Log(x) - dx*dx/(2*x*d.Mu*d.Mu)
}

func (d InvGauss) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	sx := math.Sqrt(x)
	a := distuv.UnitNormal.CDF((x/d.Mu - 1) / sx)
	// exp(2/Mu) overflows long before the product does.
	b := math.Exp(2/d.Mu + math.Log(distuv.UnitNormal.CDF(-(x/d.Mu+1)/sx)))
	return a + b
}

func (d InvGauss) Mean() float64 {
	return d.Mu
}

func (d InvGauss) Variance() float64 {
	return d.Mu * d.Mu * d.Mu
}
