// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/statline/playerdist/fit"
	"github.com/statline/playerdist/report"
	"github.com/statline/playerdist/stats"
)

func fitCommand() *cli.Command {
	return &cli.Command{
		Name:  "fit",
		Usage: "Fit every candidate family to a sample, most recent value first",
		UsageText: `playerdist fit 31 24 28 19 35
   cut -d, -f4 logs.csv | playerdist fit`,
		Flags: []cli.Flag{
			decayRateOption(),
			familyOption(),
		},
		Action: cmdFit,
	}
}

func catalogCommand() *cli.Command {
	return &cli.Command{
		Name:   "catalog",
		Usage:  "List the candidate families and their parameters",
		Action: cmdCatalog,
	}
}

func cmdFit(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.IsSet(decayRateFlag) {
		cfg.Model.DecayRate = cmd.Float(decayRateFlag)
	}
	if cmd.IsSet(familyFlag) {
		cfg.Model.Families = cmd.StringSlice(familyFlag)
	}
	candidates, err := cfg.Candidates()
	if err != nil {
		return err
	}

	var xs []float64
	if cmd.Args().Len() > 0 {
		xs, err = parseSample(strings.NewReader(strings.Join(cmd.Args().Slice(), "\n")))
	} else {
		xs, err = parseSample(os.Stdin)
	}
	if err != nil {
		return err
	}

	clean := stats.Finite(xs)
	sum, err := stats.Summarize(clean, cfg.Model.DecayRate)
	if err != nil {
		return fmt.Errorf("failed to summarize sample: %w", err)
	}
	sel, err := (&fit.Selector{Catalog: candidates}).Select(xs)
	if werr := report.WriteSelection(cmd.Root().Writer, len(clean), sum, sel); werr != nil {
		return werr
	}
	return err
}

// parseSample reads whitespace-separated numbers from r. NaN marks a
// missing value.
func parseSample(r io.Reader) ([]float64, error) {
	var xs []float64
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		v, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid sample value: %w", err)
		}
		xs = append(xs, v)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return xs, nil
}

func cmdCatalog(ctx context.Context, cmd *cli.Command) error {
	tw := tabwriter.NewWriter(cmd.Root().Writer, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "family\tparams")
	for _, name := range fit.Names() {
		f, _ := fit.Lookup(name)
		fmt.Fprintf(tw, "%s\t%s\n", name, strings.Join(f.ParameterNames(), ", "))
	}
	return tw.Flush()
}
