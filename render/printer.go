// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/mattn/go-isatty"

	"github.com/katalvlaran/lvsparse/sparse"
)

// Printer writes rendered output to one stream. Styled output (lipgloss
// tables) is used only when the stream is a terminal, unless overridden.
type Printer struct {
	w      io.Writer
	styled bool
	style  Style
}

// PrinterOption configures a Printer.
type PrinterOption func(*Printer)

// WithStyled forces styled (true) or plain (false) output regardless of the
// terminal check.
func WithStyled(on bool) PrinterOption {
	return func(p *Printer) { p.styled = on }
}

// WithStyle replaces DefaultStyle for styled output.
func WithStyle(s Style) PrinterOption {
	return func(p *Printer) { p.style = s }
}

// NewPrinter returns a Printer for w.
func NewPrinter(w io.Writer, opts ...PrinterOption) *Printer {
	p := &Printer{w: w, styled: IsTerminal(w), style: DefaultStyle()}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// IsTerminal reports whether w is a file descriptor attached to a terminal
// (Cygwin/MSYS pseudo terminals included).
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	fd := f.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Styled reports whether p draws lipgloss tables.
func (p *Printer) Styled() bool { return p.styled }

// Println writes s and a newline.
func (p *Printer) Println(s string) error {
	_, err := fmt.Fprintln(p.w, s)
	return err
}

// Table writes a header/rows grid: a lipgloss table when styled, otherwise
// tab-aligned plain columns.
func (p *Printer) Table(headers []string, rows [][]string) error {
	if p.styled {
		return p.Println(Rows(headers, rows, p.style))
	}

	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	for _, r := range rows {
		fmt.Fprintln(tw, strings.Join(r, "\t"))
	}

	return tw.Flush()
}

// Print writes src: Table when p is styled, Dump otherwise.
func Print[T sparse.Number](p *Printer, src Source[T]) error {
	out := Dump(src)
	if p.styled {
		out = Table(src, p.style)
	}
	_, err := io.WriteString(p.w, out)

	return err
}
