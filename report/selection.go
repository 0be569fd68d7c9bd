// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/statline/playerdist/fit"
	"github.com/statline/playerdist/stats"
)

// WriteSelection writes a human-readable account of a sample's
// weighted summary and every candidate of sel, in catalog order. The
// selected candidate is marked with "*".
func WriteSelection(w io.Writer, n int, sum stats.Summary, sel *fit.Selection) error {
	if _, err := fmt.Fprintf(w, "N %d  mean %.6g  std dev %.6g\n\n", n, sum.Mean, sum.StdDev); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "\tfamily\tscore\tparams")
	for _, c := range sel.Candidates {
		mark := ""
		if c.Err == nil && c.Name == sel.Name {
			mark = "*"
		}
		if c.Err != nil {
			fmt.Fprintf(tw, "%s\t%s\t-\t%v\n", mark, c.Name, c.Err)
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%.6g\t%s\n", mark, c.Name, c.Score, formatParams(c.Name, c.Params))
	}
	return tw.Flush()
}

func formatParams(name string, params []float64) string {
	var names []string
	if f, ok := fit.Lookup(name); ok {
		names = f.ParameterNames()
	}
	parts := make([]string, len(params))
	for i, p := range params {
		if i < len(names) {
			parts[i] = names[i] + "=" + fmt.Sprintf("%.6g", p)
		} else {
			parts[i] = fmt.Sprintf("%.6g", p)
		}
	}
	return strings.Join(parts, " ")
}
