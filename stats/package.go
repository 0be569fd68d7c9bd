// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats provides weighted sample statistics and the standard
// forms of the continuous distributions that gonum's distuv lacks.
package stats // import "github.com/statline/playerdist/stats"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()
