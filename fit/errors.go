// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientData is returned when no finite observations
	// remain to fit.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrFitFailed is returned when a family's estimation does not
	// produce finite parameters inside the family's domain, or when
	// the fitted density cannot be scored.
	ErrFitFailed = errors.New("fit failed")

	// ErrNoValidFit is returned by Select when every candidate
	// failed.
	ErrNoValidFit = errors.New("no valid fit")
)

// NoValidFitError reports the failure of every candidate in a
// selection. It matches ErrNoValidFit and, through Unwrap, the error
// of each candidate.
type NoValidFitError struct {
	Candidates []CandidateResult
}

func (e *NoValidFitError) Error() string {
	if len(e.Candidates) == 0 {
		return "no valid fit: empty catalog"
	}
	return fmt.Sprintf("no valid fit among %d candidates (first: %v)", len(e.Candidates), e.Candidates[0].Err)
}

func (e *NoValidFitError) Is(target error) bool {
	return target == ErrNoValidFit
}

func (e *NoValidFitError) Unwrap() []error {
	errs := make([]error, 0, len(e.Candidates))
	for _, c := range e.Candidates {
		if c.Err != nil {
			errs = append(errs, c.Err)
		}
	}
	return errs
}
