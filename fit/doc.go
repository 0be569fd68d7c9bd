// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fit estimates the parameters of a fixed catalog of
// continuous distribution families and selects the family whose
// fitted density best reproduces a sample.
//
// Every family is a location/scale family. A parameter vector lists
// the family's shape parameters first, then loc and scale, and the
// density is
//
//	pdf(x; shapes, loc, scale) = f((x-loc)/scale; shapes) / scale
//
// where f is the density of the family's standard form.
//
// Selection scores a candidate by evaluating its fitted density at
// the ranks 0, 1, ..., n-1 and taking the mean squared error against
// the n sample values. This is a fixed heuristic, not a
// goodness-of-fit statistic: the density values and the sample values
// live on unrelated scales. Callers depend on the selections it
// produces, so it is kept exactly as is.
package fit // import "github.com/statline/playerdist/fit"
