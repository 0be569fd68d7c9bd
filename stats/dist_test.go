// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/stat/distuv"
)

func TestGEV(t *testing.T) {
	gumbel := GEV{C: 0}
	testFunc(t, "GEV{0}.PDF", func(x float64) float64 { return math.Exp(gumbel.LogProb(x)) },
		map[float64]float64{
			0: 0.36787944117144233,
		})

	d := GEV{C: 0.5}
	testFunc(t, "GEV{0.5}.PDF", func(x float64) float64 { return math.Exp(d.LogProb(x)) },
		map[float64]float64{
			0: 0.36787944117144233,
			1: 0.38940039153570244,
			2: 0, // 1/C is the upper end of the support
			3: 0,
		})
	testFunc(t, "GEV{0.5}.CDF", d.CDF,
		map[float64]float64{
			1: 0.7788007830714049,
			2: 1,
			5: 1,
		})

	// Negative shapes bound the support from below at 1/C.
	lower := GEV{C: -0.5}
	if p := lower.LogProb(-2.5); !math.IsInf(p, -1) {
		t.Errorf("GEV{-0.5}.LogProb(-2.5): want -Inf, got %v", p)
	}
	if p := lower.CDF(-2.5); p != 0 {
		t.Errorf("GEV{-0.5}.CDF(-2.5): want 0, got %v", p)
	}

	// Moments against numeric integration.
	m := GEV{C: 0.2}
	if !aeq(0.40915628800119, m.Mean()) || !aeq(1.10574944957794, m.Variance()) {
		t.Errorf("GEV{0.2} moments: got %v, %v", m.Mean(), m.Variance())
	}
	if !math.IsInf(GEV{C: -1}.Mean(), 1) || !math.IsInf(GEV{C: -0.5}.Variance(), 1) {
		t.Errorf("want infinite moments for heavy tails")
	}
	if !aeq(eulerGamma, gumbel.Mean()) || !aeq(math.Pi*math.Pi/6, gumbel.Variance()) {
		t.Errorf("GEV{0} moments: got %v, %v", gumbel.Mean(), gumbel.Variance())
	}
}

func TestGumbelLeft(t *testing.T) {
	var d GumbelLeft
	testFunc(t, "GumbelLeft.PDF", func(x float64) float64 { return math.Exp(d.LogProb(x)) },
		map[float64]float64{
			0: 0.36787944117144233,
		})
	testFunc(t, "GumbelLeft.CDF", d.CDF,
		map[float64]float64{
			0: 0.6321205588285577,
		})
	if !aeq(-eulerGamma, d.Mean()) {
		t.Errorf("GumbelLeft.Mean: want %v, got %v", -eulerGamma, d.Mean())
	}
}

func TestInvGauss(t *testing.T) {
	d := InvGauss{Mu: 1}
	testFunc(t, "InvGauss{1}.PDF", func(x float64) float64 { return math.Exp(d.LogProb(x)) },
		map[float64]float64{
			-1: 0,
			0:  0,
			1:  0.3989422804014327,
		})
	testFunc(t, "InvGauss{1}.CDF", d.CDF,
		map[float64]float64{
			-1: 0,
			1:  0.6681020012231706,
		})

	d2 := InvGauss{Mu: 2}
	testFunc(t, "InvGauss{2}.PDF", func(x float64) float64 { return math.Exp(d2.LogProb(x)) },
		map[float64]float64{
			1: 0.3520653267642995,
		})
	testFunc(t, "InvGauss{2}.CDF", d2.CDF,
		map[float64]float64{
			1: 0.49013833994532985,
		})
	if d2.Mean() != 2 || d2.Variance() != 8 {
		t.Errorf("InvGauss{2} moments: got %v, %v", d2.Mean(), d2.Variance())
	}
}

func TestLocScaleDist(t *testing.T) {
	d := LocScaleDist{Std: distuv.UnitNormal, Loc: 10, Scale: 2}
	testFunc(t, "LocScale(Normal).PDF", d.PDF,
		map[float64]float64{
			10: 0.19947114020071635,
		})
	testFunc(t, "LocScale(Normal).CDF", d.CDF,
		map[float64]float64{
			10: 0.5,
		})
	if !aeq(10, d.Mean()) || !aeq(4, d.Variance()) {
		t.Errorf("moments: want 10, 4, got %v, %v", d.Mean(), d.Variance())
	}
	if got := d.PDFEach([]float64{10, 10}); len(got) != 2 || !aeq(0.19947114020071635, got[1]) {
		t.Errorf("PDFEach: got %v", got)
	}
	if got := d.CDFEach([]float64{10}); len(got) != 1 || !aeq(0.5, got[0]) {
		t.Errorf("CDFEach: got %v", got)
	}

	// F's log density is NaN at the origin; the wrapper reports 0.
	f := LocScaleDist{Std: distuv.F{D1: 5, D2: 10}, Loc: 0, Scale: 1}
	if p := f.PDF(0); p != 0 {
		t.Errorf("F PDF(0): want 0, got %v", p)
	}
}
