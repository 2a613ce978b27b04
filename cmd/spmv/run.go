// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvsparse/bench"
	"github.com/katalvlaran/lvsparse/mmio"
	"github.com/katalvlaran/lvsparse/render"
	"github.com/katalvlaran/lvsparse/sparse"
)

// Operation labels used in the timing report and metrics.
const (
	opRead               = "read"
	opCompress           = "compress"
	opMulVecCompressed   = "mulvec_compressed"
	opUncompress         = "uncompress"
	opMulVecUncompressed = "mulvec_uncompressed"
)

// productTolerance bounds the relative difference allowed between the
// compressed and uncompressed products.
const productTolerance = 1e-9

// ErrProductMismatch means the two storage states disagree on A·x.
var ErrProductMismatch = errors.New("spmv: compressed and uncompressed products differ")

func (a *app) runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <file>",
		Short: "Time read, compress, MulVec and uncompress on a Matrix Market file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			path := args[0]
			return dispatch(a.cfg.Orientation,
				func() error { return runWith[sparse.RowMajor](a, path) },
				func() error { return runWith[sparse.ColumnMajor](a, path) },
			)
		},
	}
}

// runWith performs the timed sequence:
//   - Stage 1: read the file (uncompressed state).
//   - Stage 2: compress, then MulVec Repeat times.
//   - Stage 3: uncompress, then MulVec Repeat times.
//   - Stage 4: check both products agree, print the report, write metrics.
func runWith[O sparse.Layout](a *app, path string) error {
	timer := bench.NewTimer(bench.WithLogger(a.log))

	// Stage 1: read.
	var m *sparse.Matrix[float64, O]
	err := timer.Measure(opRead, func() (err error) {
		m, err = mmio.ReadFile[float64, O](path, a.matrixOptions()...)
		return err
	})
	if err != nil {
		return err
	}
	a.log.Info("spmv: loaded", "file", path, "rows", m.Rows(), "cols", m.Cols(), "nnz", m.NNZ(),
		"orientation", m.Orientation().String())
	x := probeVector(m.Cols())

	// Stage 2: compressed.
	_ = timer.Measure(opCompress, func() error { m.Compress(); return nil })
	yc, err := repeatMulVec(timer, opMulVecCompressed, a.cfg.Repeat, m, x)
	if err != nil {
		return err
	}

	// Stage 3: uncompressed.
	_ = timer.Measure(opUncompress, func() error { m.Uncompress(); return nil })
	yu, err := repeatMulVec(timer, opMulVecUncompressed, a.cfg.Repeat, m, x)
	if err != nil {
		return err
	}

	// Stage 4: verify and report.
	if !floats.EqualApprox(yc, yu, productTolerance) {
		return fmt.Errorf("%s: %w", path, ErrProductMismatch)
	}
	a.log.Info("spmv: products agree", "len", len(yc))

	p := a.printer()
	if err = p.Println(render.Summary[float64](m)); err != nil {
		return err
	}
	report := timer.Report()
	rows := make([][]string, 0, len(report))
	for _, st := range report {
		rows = append(rows, st.Row())
	}
	if err = p.Table(bench.ReportHeaders, rows); err != nil {
		return err
	}

	if a.cfg.MetricsFile != "" {
		if err = timer.WriteTextfile(a.cfg.MetricsFile); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		a.log.Info("spmv: metrics written", "file", a.cfg.MetricsFile)
	}

	return nil
}

// repeatMulVec times n products and returns the last one.
func repeatMulVec[O sparse.Layout](timer *bench.Timer, op string, n int, m *sparse.Matrix[float64, O], x []float64) ([]float64, error) {
	var y []float64
	for range n {
		err := timer.Measure(op, func() (err error) {
			y, err = m.MulVec(x)
			return err
		})
		if err != nil {
			return nil, err
		}
	}

	return y, nil
}

// probeVector returns the deterministic input x[i] = 1 + i mod 7.
func probeVector(n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = float64(1 + i%7)
	}

	return x
}
