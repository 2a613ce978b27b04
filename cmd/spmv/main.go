// SPDX-License-Identifier: MIT

// Command spmv loads a Matrix Market file into a sparse matrix and times its
// operations.
//
//	spmv run [flags] <file>    time read, compress, MulVec, uncompress
//	spmv show [flags] <file>   print the matrix (dump, table or grid)
//	spmv config [flags]        print the effective configuration
//
// Input may be plain, gzip, zstd or lz4 compressed.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
