// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

const eulerGamma = 0.57721566490153286060651209008240243

// GEV is the standard generalized extreme value distribution with
// shape C, using the sign convention in which C > 0 bounds the
// support from above (x < 1/C) and C < 0 bounds it from below
// (x > 1/C). C = 0 is the right-skewed Gumbel distribution.
//
// The density is (1-Cx)^(1/C-1) exp(-(1-Cx)^(1/C)).
type GEV struct {
	C float64
}

func (d GEV) LogProb(x float64) float64 {
	if d.C == 0 {
		return -x - math.Exp(-x)
	}
	cx := d.C * x
	if cx >= 1 {
		return math.Inf(-1)
	}
	// log(1-Cx), accurate for small Cx.
	lt := math.Log1p(-cx)
	return (1/d.C-1)*lt - math.Exp(lt/d.C)
}

func (d GEV) CDF(x float64) float64 {
	if d.C == 0 {
		return math.Exp(-math.Exp(-x))
	}
	if d.C*x >= 1 {
		if d.C > 0 {
			return 1
		}
		return 0
	}
	return math.Exp(-math.Exp(math.Log1p(-d.C*x) / d.C))
}

// Mean returns the mean of d, which is infinite for C <= -1.
func (d GEV) Mean() float64 {
	if d.C == 0 {
		return eulerGamma
	}
	if d.C <= -1 {
		return inf
	}
	return (1 - math.Gamma(1+d.C)) / d.C
}

// Variance returns the variance of d, which is infinite for
// C <= -1/2.
func (d GEV) Variance() float64 {
	if d.C == 0 {
		return math.Pi * math.Pi / 6
	}
	if d.C <= -0.5 {
		return inf
	}
	g1 := math.Gamma(1 + d.C)
	return (math.Gamma(1+2*d.C) - g1*g1) / (d.C * d.C)
}

// GumbelLeft is the standard left-skewed Gumbel distribution, the
// mirror image of distuv.GumbelRight. Its density is exp(x - e^x).
type GumbelLeft struct{}

var gumbelRight = distuv.GumbelRight{Mu: 0, Beta: 1}

func (GumbelLeft) LogProb(x float64) float64 {
	return gumbelRight.LogProb(-x)
}

func (GumbelLeft) CDF(x float64) float64 {
	return gumbelRight.Survival(-x)
}

func (GumbelLeft) Mean() float64 {
	return -gumbelRight.Mean()
}

func (GumbelLeft) Variance() float64 {
	return gumbelRight.Variance()
}
