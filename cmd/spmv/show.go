// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsparse/cmd/spmv/config"
	"github.com/katalvlaran/lvsparse/mmio"
	"github.com/katalvlaran/lvsparse/render"
	"github.com/katalvlaran/lvsparse/sparse"
)

// Views accepted by show --view.
const (
	viewAuto  = "auto"
	viewDump  = "dump"
	viewTable = "table"
	viewGrid  = "grid"
)

type showFlags struct {
	compressed bool
	view       string
}

func (a *app) showCmd() *cobra.Command {
	var sf showFlags
	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Print a Matrix Market file as a sparse matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			path := args[0]
			return dispatch(a.cfg.Orientation,
				func() error { return showWith[sparse.RowMajor](a, path, sf) },
				func() error { return showWith[sparse.ColumnMajor](a, path, sf) },
			)
		},
	}
	cmd.Flags().BoolVar(&sf.compressed, "compressed", false, "compress before printing")
	cmd.Flags().StringVar(&sf.view, "view", viewAuto, "auto|dump|table|grid")

	return cmd
}

func showWith[O sparse.Layout](a *app, path string, sf showFlags) error {
	m, err := mmio.ReadFile[float64, O](path, a.matrixOptions()...)
	if err != nil {
		return err
	}
	if sf.compressed {
		m.Compress()
	}

	p := a.printer()
	style := render.PlainStyle()
	if p.Styled() {
		style = render.DefaultStyle()
	}

	var out string
	switch sf.view {
	case viewAuto:
		return render.Print[float64](p, m)
	case viewDump:
		out = render.Dump[float64](m)
	case viewTable:
		out = render.Table[float64](m, style)
	case viewGrid:
		if out, err = render.Grid[float64](m, a.cfg.GridLimit); err != nil {
			return err
		}
	default:
		return fmt.Errorf("view %q (want %s|%s|%s|%s): %w", sf.view, viewAuto, viewDump, viewTable, viewGrid, config.ErrInvalid)
	}
	_, err = io.WriteString(a.stdout, out)

	return err
}
