// SPDX-License-Identifier: MIT

// Package render turns sparse matrices into text for people.
//
// Every function here is pure: it returns a string and never writes to a
// console on its own. Printer is the one type that owns an io.Writer; it
// decides between a lipgloss table and plain text depending on whether the
// writer is a terminal.
//
//	Dump(m)          the matrix's own diagnostic dump (String)
//	Table(m, style)  bordered table of entries or compressed segments
//	Grid(m, max)     dense view for small matrices
package render
