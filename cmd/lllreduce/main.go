// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The lllreduce program reads an integer lattice basis from a text file
// (or stdin), LLL-reduces it, and prints the reduced basis. It is
// intended as a thin front-end over package lll for ad-hoc use and
// verification against other implementations; no file format or CLI
// surface is part of the lll package itself.
//
// Input is one basis row per line, coefficients separated by
// whitespace; lines starting with # are treated as comments.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"math"
	"math/big"
	"os"
	"strings"

	"github.com/dustin/go-humanize"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"gonum.org/v1/lll"
	"gonum.org/v1/lll/bigmat"
)

func main() {
	in := flag.String("in", "", "basis input file (default: stdin)")
	eta := flag.Float64("eta", 0.51, "eta factor of the reduction, in (0.5, sqrt(delta))")
	delta := flag.Float64("delta", 0.99, "delta factor of the reduction, in (0.25, 1)")
	plotOut := flag.String("plot", "", "optional output file for a plot of log2||b*_i||^2 (png, svg, pdf, ...)")
	width := flag.Float64("width", 16, "plot width (cm)")
	height := flag.Float64("height", 8, "plot height (cm)")
	flag.Parse()

	r := io.Reader(os.Stdin)
	if *in != "" {
		f, err := os.Open(*in)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		r = f
	}

	basis, err := readBasis(r)
	if err != nil {
		log.Fatalf("lllreduce: %v", err)
	}

	etaRat := new(big.Rat).SetFloat64(*eta)
	deltaRat := new(big.Rat).SetFloat64(*delta)
	if etaRat == nil || deltaRat == nil {
		log.Fatal("lllreduce: eta and delta must be finite numbers")
	}

	stats, err := lll.Reduce(basis, etaRat, deltaRat)
	if err != nil {
		log.Fatalf("lllreduce: reduction failed: %v", err)
	}

	d, n := basis.Dims()
	for i := 0; i < d; i++ {
		row := basis.Row(i)
		strs := make([]string, n)
		for j, v := range row {
			strs[j] = v.String()
		}
		fmt.Println(strings.Join(strs, " "))
	}
	fmt.Fprintf(os.Stderr, "swaps: %s, size-reductions: %s, runtime: %s\n",
		humanize.Comma(int64(stats.Swaps)), humanize.Comma(int64(stats.SizeReductions)), stats.Runtime)

	if *plotOut != "" {
		if err := plotNormLog(basis, *plotOut, *width, *height); err != nil {
			log.Fatalf("lllreduce: plot: %v", err)
		}
	}
}

// readBasis parses one basis row per line, whitespace-separated integer
// coefficients, skipping blank lines and lines starting with #.
func readBasis(r io.Reader) (*bigmat.Basis, error) {
	sc := bufio.NewScanner(r)
	var rows [][]*big.Int
	cols := -1
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		row := make([]*big.Int, len(fields))
		for i, f := range fields {
			v, ok := new(big.Int).SetString(f, 10)
			if !ok {
				return nil, fmt.Errorf("invalid integer %q", f)
			}
			row[i] = v
		}
		if cols == -1 {
			cols = len(row)
		} else if len(row) != cols {
			return nil, fmt.Errorf("row length mismatch: got %d, want %d", len(row), cols)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no basis rows read")
	}

	data := make([]*big.Int, 0, len(rows)*cols)
	for _, row := range rows {
		data = append(data, row...)
	}
	return bigmat.NewBasis(len(rows), cols, data), nil
}

// plotNormLog recomputes the Gram-Schmidt norms of the reduced basis and
// saves a plot of log2||b*_i||^2 against i, the standard diagnostic for
// how well-balanced a reduced basis is.
func plotNormLog(basis *bigmat.Basis, out string, width, height float64) error {
	d, n := basis.Dims()
	star := make([][]*big.Rat, d)
	normSq := make([]*big.Rat, d)
	xys := make(plotter.XYs, d)
	for i := 0; i < d; i++ {
		bi := make([]*big.Rat, n)
		for c := 0; c < n; c++ {
			bi[c] = bigmat.RatFromInt(basis.At(i, c))
		}
		for j := 0; j < i; j++ {
			dot := new(big.Rat)
			for c := 0; c < n; c++ {
				dot.Add(dot, new(big.Rat).Mul(bi[c], star[j][c]))
			}
			mu := bigmat.RatDiv(dot, normSq[j])
			for c := 0; c < n; c++ {
				bi[c].Sub(bi[c], new(big.Rat).Mul(mu, star[j][c]))
			}
		}
		star[i] = bi
		ns := new(big.Rat)
		for c := 0; c < n; c++ {
			ns.Add(ns, bigmat.RatSquare(bi[c]))
		}
		normSq[i] = ns
		f, _ := ns.Float64()
		xys[i].X = float64(i)
		xys[i].Y = math.Log2(f)
	}

	p := plot.New()
	p.Title.Text = "Gram-Schmidt norm profile"
	p.X.Label.Text = "index i"
	p.Y.Label.Text = "log2 ||b*_i||^2"
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	line.Color = color.RGBA{R: 0x40, G: 0x80, B: 0xff, A: 0xff}
	p.Add(line)

	return p.Save(vg.Length(width)*vg.Centimeter, vg.Length(height)*vg.Centimeter, out)
}
