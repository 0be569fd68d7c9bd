// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"errors"
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/statline/playerdist/stats"
)

// A FitResult is a fitted family and its selection score. Lower
// scores are better.
type FitResult struct {
	Name   string
	Params []float64
	Score  float64
}

// A CandidateResult is the outcome of fitting and scoring one
// candidate. Exactly one of Err and Params is set.
type CandidateResult struct {
	Name   string
	Params []float64
	Score  float64
	Err    error
}

// A Selection is the best-scoring fit of a sample together with the
// result of every candidate, in catalog order.
type Selection struct {
	FitResult
	Candidates []CandidateResult
}

// A Selector fits each candidate in Catalog to a sample and keeps
// the one with the lowest score.
type Selector struct {
	// Catalog is the ordered list of candidates. If nil, the
	// package catalog is used.
	Catalog []Candidate

	// Observe, if non-nil, is called after each candidate is
	// fit and scored, with the time that took.
	Observe func(r CandidateResult, elapsed time.Duration)
}

// Select fits the default catalog to xs. See Selector.Select.
func Select(xs []float64) (*Selection, error) {
	var s Selector
	return s.Select(xs)
}

// Select fits every candidate to the finite values of xs and returns
// the candidate with the strictly lowest score. Ties go to the
// earlier candidate.
//
// A candidate's score is the mean squared error between the sample
// values and its fitted density evaluated at 0, 1, ..., n-1, where n
// is the number of finite values.
//
// A candidate that fails to fit, or whose score is not finite, is
// recorded with an error matching ErrFitFailed and does not take part
// in the selection. If no finite values remain every candidate fails
// with ErrInsufficientData. If every candidate fails, Select returns
// the candidate results and a *NoValidFitError.
func (s *Selector) Select(xs []float64) (*Selection, error) {
	cands := s.Catalog
	if cands == nil {
		cands = Catalog()
	}
	clean := stats.Finite(xs)

	sel := &Selection{Candidates: make([]CandidateResult, 0, len(cands))}
	best := -1
	for _, c := range cands {
		start := time.Now()
		r := evaluate(c, clean)
		if s.Observe != nil {
			s.Observe(r, time.Since(start))
		}
		sel.Candidates = append(sel.Candidates, r)
		if r.Err == nil && (best < 0 || r.Score < sel.Candidates[best].Score) {
			best = len(sel.Candidates) - 1
		}
	}
	if best < 0 {
		return sel, &NoValidFitError{Candidates: sel.Candidates}
	}
	b := sel.Candidates[best]
	sel.FitResult = FitResult{Name: b.Name, Params: b.Params, Score: b.Score}
	return sel, nil
}

// evaluate fits and scores a single candidate, converting every
// failure, including a panic, into the result's error.
func evaluate(c Candidate, xs []float64) (r CandidateResult) {
	r.Name = c.Name()
	if len(xs) == 0 {
		r.Err = fmt.Errorf("%s: %w", r.Name, ErrInsufficientData)
		return r
	}

	defer func() {
		if err := recover(); err != nil {
			r.Params, r.Score = nil, 0
			r.Err = fmt.Errorf("%s: %w: panic: %v", r.Name, ErrFitFailed, err)
		}
	}()

	params, err := c.Fit(xs)
	switch {
	case err == nil:
	case errors.Is(err, ErrFitFailed), errors.Is(err, ErrInsufficientData):
		r.Err = err
		return r
	default:
		r.Err = fmt.Errorf("%s: %w: %w", r.Name, ErrFitFailed, err)
		return r
	}
	if len(params) != c.NumParameters() {
		r.Err = fmt.Errorf("%s: %w: got %d parameters, want %d", r.Name, ErrFitFailed, len(params), c.NumParameters())
		return r
	}

	score := Score(c, params, xs)
	if math.IsNaN(score) || math.IsInf(score, 0) {
		r.Err = fmt.Errorf("%s: %w: score is %v", r.Name, ErrFitFailed, score)
		return r
	}
	r.Params, r.Score = params, score
	return r
}

// Score returns the mean squared error between xs and the density of
// c with the given parameters evaluated at the ranks 0, 1, ...,
// len(xs)-1. It returns NaN for an empty sample.
func Score(c Candidate, params []float64, xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	diff := make([]float64, len(xs))
	for i := range diff {
		diff[i] = c.PDF(float64(i), params)
	}
	floats.SubTo(diff, xs, diff)
	return floats.Dot(diff, diff) / float64(len(xs))
}
