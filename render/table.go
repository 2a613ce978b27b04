// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/lvsparse/sparse"
)

// Palette.
var (
	ColorAccent = lipgloss.Color("#20B9B4")
	ColorBorder = lipgloss.Color("#16858E")
	ColorMuted  = lipgloss.Color("#2C4A54")
)

// Style configures how Table draws.
type Style struct {
	Border      lipgloss.Border
	BorderStyle lipgloss.Style
	Header      lipgloss.Style
	Cell        lipgloss.Style
	Title       lipgloss.Style
}

// DefaultStyle is the rounded, coloured table used on terminals.
func DefaultStyle() Style {
	return Style{
		Border:      lipgloss.RoundedBorder(),
		BorderStyle: lipgloss.NewStyle().Foreground(ColorBorder),
		Header:      lipgloss.NewStyle().Bold(true).Foreground(ColorAccent).Padding(0, 1),
		Cell:        lipgloss.NewStyle().Padding(0, 1),
		Title:       lipgloss.NewStyle().Bold(true),
	}
}

// PlainStyle draws ASCII borders without colour.
func PlainStyle() Style {
	return Style{
		Border:      lipgloss.ASCIIBorder(),
		BorderStyle: lipgloss.NewStyle(),
		Header:      lipgloss.NewStyle().Padding(0, 1),
		Cell:        lipgloss.NewStyle().Padding(0, 1),
		Title:       lipgloss.NewStyle(),
	}
}

// Table renders src as a bordered table under a summary title.
//   - uncompressed: one row per stored entry (row, col, value) in map order.
//   - compressed: one row per primary segment: its index, the half-open
//     storage range [inner[p], inner[p+1]), the secondary indices and values.
func Table[T sparse.Number](src Source[T], style Style) string {
	var (
		headers []string
		rows    [][]string
	)
	if st, ok := src.Storage(); ok {
		seg := "row"
		if src.Orientation() == sparse.ColumnWise {
			seg = "col"
		}
		headers = []string{seg, "range", "indices", "values"}
		for p := 0; p+1 < len(st.Inner); p++ {
			lo, hi := st.Inner[p], st.Inner[p+1]
			rows = append(rows, []string{
				strconv.Itoa(p),
				fmt.Sprintf("[%d,%d)", lo, hi),
				fmt.Sprint(st.Outer[lo:hi]),
				fmt.Sprint(st.Values[lo:hi]),
			})
		}
	} else {
		headers = []string{"row", "col", "value"}
		for _, e := range src.Entries() {
			rows = append(rows, []string{strconv.Itoa(e.Row), strconv.Itoa(e.Col), fmt.Sprint(e.Value)})
		}
	}

	return style.Title.Render(Summary(src)) + "\n" + Rows(headers, rows, style) + "\n"
}

// Rows renders an arbitrary header/rows grid with style. Used for the
// entry tables above and for timing reports.
func Rows(headers []string, rows [][]string, style Style) string {
	t := table.New().
		Border(style.Border).
		BorderStyle(style.BorderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return style.Header
			}
			return style.Cell
		})

	return t.String()
}
