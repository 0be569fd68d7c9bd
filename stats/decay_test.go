// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"errors"
	"math"
	"testing"
)

func TestDecayWeights(t *testing.T) {
	ws := DecayWeights(50, DefaultDecayRate)
	if len(ws) != 50 {
		t.Fatalf("want 50 weights, got %d", len(ws))
	}
	if ws[0] != 1 {
		t.Errorf("want most recent weight 1, got %v", ws[0])
	}
	if !aeq(math.Exp(-0.05), ws[1]) {
		t.Errorf("want w[1]=%v, got %v", math.Exp(-0.05), ws[1])
	}
	for i := 1; i < len(ws); i++ {
		if !(ws[i] < ws[i-1]) {
			t.Errorf("weights not strictly decreasing at %d: %v >= %v", i, ws[i], ws[i-1])
		}
	}

	for i, w := range DecayWeights(10, 0) {
		if w != 1 {
			t.Errorf("rate 0: want w[%d]=1, got %v", i, w)
		}
	}

	if ws := DecayWeights(0, 1); len(ws) != 0 {
		t.Errorf("want no weights, got %v", ws)
	}
}

func TestSummarizeConstant(t *testing.T) {
	for _, c := range []float64{0, 0.1, 7, -2.5, 31} {
		for _, rate := range []float64{0, 0.05, 1, 3} {
			for n := 1; n <= 60; n += 7 {
				xs := make([]float64, n)
				for i := range xs {
					xs[i] = c
				}
				s, err := Summarize(xs, rate)
				if err != nil {
					t.Fatalf("Summarize(%v x %d, %v): %v", c, n, rate, err)
				}
				if !aeq(c, s.Mean) || !aeq(0, s.StdDev) {
					t.Errorf("Summarize(%v x %d, %v): want %v±0, got %+v", c, n, rate, c, s)
				}
			}
		}
	}
}

func TestSummarizeKnown(t *testing.T) {
	s, err := Summarize([]float64{10, 20}, math.Ln2)
	if err != nil {
		t.Fatal(err)
	}
	if !aeq(13.333333333333334, s.Mean) || !aeq(4.714045207910316, s.StdDev) {
		t.Errorf("want 13.3333±4.71405, got %+v", s)
	}

	// With no decay this is the population mean and deviation.
	s, err = Summarize([]float64{15, 20, 35, 40, 50}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !aeq(32, s.Mean) || !aeq(math.Sqrt(166), s.StdDev) {
		t.Errorf("want 32±%v, got %+v", math.Sqrt(166), s)
	}
}

func TestSummarizeWeightScale(t *testing.T) {
	xs := []float64{25, 18, 31, 22, 40, 12, 27}
	ws := DecayWeights(len(xs), DefaultDecayRate)
	base := Sample{Xs: xs, Weights: ws}
	for _, k := range []float64{1e-3, 0.5, 2, 1e6} {
		scaled := make([]float64, len(ws))
		for i, w := range ws {
			scaled[i] = k * w
		}
		s := Sample{Xs: xs, Weights: scaled}
		if !aeq(base.Mean(), s.Mean()) || !aeq(base.StdDev(), s.StdDev()) {
			t.Errorf("scale %v: want %v±%v, got %v±%v", k, base.Mean(), base.StdDev(), s.Mean(), s.StdDev())
		}
	}

	sum, err := Summarize(xs, DefaultDecayRate)
	if err != nil {
		t.Fatal(err)
	}
	if !aeq(base.Mean(), sum.Mean) || !aeq(base.StdDev(), sum.StdDev) {
		t.Errorf("Summarize disagrees with Decayed sample: %+v vs %v±%v", sum, base.Mean(), base.StdDev())
	}
	if d := Decayed(xs, DefaultDecayRate); !aeq(base.Mean(), d.Mean()) {
		t.Errorf("Decayed mean: want %v, got %v", base.Mean(), d.Mean())
	}
}

func TestSummarizeErrors(t *testing.T) {
	if _, err := Summarize(nil, DefaultDecayRate); !errors.Is(err, ErrSampleSize) {
		t.Errorf("empty sample: want ErrSampleSize, got %v", err)
	}
	for _, rate := range []float64{-0.1, nan, inf} {
		if _, err := Summarize([]float64{1}, rate); !errors.Is(err, ErrDecayRate) {
			t.Errorf("rate %v: want ErrDecayRate, got %v", rate, err)
		}
	}
}

func TestSummarizeMatchesDecayedSample(t *testing.T) {
	xs := []float64{31, 24, 28, 19, 35, 22, 27}
	for _, rate := range []float64{0, 0.05, 0.5} {
		s := Decayed(xs, rate)
		got, err := Summarize(xs, rate)
		if err != nil {
			t.Fatalf("Summarize(%v): %v", rate, err)
		}
		if got.Mean != s.Mean() || got.StdDev != s.StdDev() {
			t.Errorf("rate %v: want %v±%v, got %+v", rate, s.Mean(), s.StdDev(), got)
		}
		if !aeq(s.Sum()/s.Weight(), got.Mean) {
			t.Errorf("rate %v: want mean Σwx/Σw=%v, got %v", rate, s.Sum()/s.Weight(), got.Mean)
		}
	}
}
