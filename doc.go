// Package lvsparse is a generic sparse matrix toolkit: a two-state matrix
// container, a Matrix Market reader/writer, text rendering and a timing
// driver.
//
// What is inside?
//
//	sparse/    Matrix[T, O]: ordered coordinate map ⇄ CSR/CSC arrays,
//	           element access, resize, matrix-vector product
//	mmio/      Matrix Market coordinate files (gzip/zstd/lz4 aware)
//	render/    dumps, lipgloss tables, dense grids, TTY-aware printer
//	bench/     operation timer backed by Prometheus histograms
//	cmd/spmv/  cobra CLI that loads a file and times the operations
//	examples/  runnable demos
//
// Quick example:
//
//	m, _ := sparse.NewRowMajor[float64](3, 3)
//	_ = m.Set(0, 0, 1)
//	_ = m.Set(1, 2, 3)
//	_ = m.Set(2, 0, 2)
//	m.Compress()
//	y, _ := m.MulVec([]float64{1, 1, 1}) // [1 3 2]
//
// Indices in the Go API are 0-based. Matrix Market files are 1-based; the
// translation happens only inside mmio.
package lvsparse
