// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// dist reads newline-separated numbers from stdin, most recent first,
// and describes their distribution: the recency-weighted summary, the
// score of every candidate family, and the selected density against
// the sample.
package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/statline/playerdist/fit"
	"github.com/statline/playerdist/report"
	"github.com/statline/playerdist/stats"
)

func main() {
	xs := readInput(os.Stdin)
	clean := stats.Finite(xs)
	sum, err := stats.Summarize(clean, stats.DefaultDecayRate)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	s := stats.Decayed(clean, stats.DefaultDecayRate)
	lo, hi := s.Bounds()
	fmt.Printf("weight %.6g  weighted sum %.6g  min %.6g  max %.6g\n", s.Weight(), s.Sum(), lo, hi)

	sel, err := fit.Select(xs)
	if werr := report.WriteSelection(os.Stdout, len(clean), sum, sel); werr != nil {
		fmt.Fprintln(os.Stderr, werr)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println()

	f, _ := fit.Lookup(sel.Name)
	d, err := f.Dist(sel.Params)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	FprintFit(os.Stdout, d, clean)
}

// FprintFit prints each sample value next to the density of d at the
// value's rank and at the value itself.
func FprintFit(w io.Writer, d stats.Dist, xs []float64) {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "rank\tvalue\tpdf(rank)\tpdf(value)\t")
	for i, x := range xs {
		fmt.Fprintf(tw, "%d\t%.6g\t%.6g\t%.6g\t\n", i, x, d.PDF(float64(i)), d.PDF(x))
	}
	tw.Flush()
}

func readInput(r io.Reader) (xs []float64) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		l := scanner.Text()
		if l == "" {
			xs = append(xs, math.NaN())
			continue
		}
		value, err := strconv.ParseFloat(l, 64)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		xs = append(xs, value)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return
}
