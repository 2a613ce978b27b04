// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsparse/bench"
	"github.com/katalvlaran/lvsparse/cmd/spmv/config"
	"github.com/katalvlaran/lvsparse/mmio"
	"github.com/katalvlaran/lvsparse/sparse"
)

// fixture writes the 3×3 scenario matrix to dir/name and returns the path.
func fixture(t *testing.T, name string) string {
	t.Helper()
	m, err := sparse.FromTriplets[float64, sparse.RowMajor](3, 3, []sparse.Triplet[float64]{
		{Row: 0, Col: 0, Value: 1},
		{Row: 1, Col: 2, Value: 3},
		{Row: 2, Col: 0, Value: 2},
	})
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, mmio.WriteFile(path, m))

	return path
}

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestRun_ReportAndMetrics(t *testing.T) {
	for _, orientation := range []string{config.OrientationRow, config.OrientationColumn} {
		t.Run(orientation, func(t *testing.T) {
			metrics := filepath.Join(t.TempDir(), "spmv.prom")
			out, logs, err := execute(t, "run", fixture(t, "m.mtx.zst"),
				"--orientation", orientation, "--repeat", "3", "--metrics-file", metrics)
			require.NoError(t, err)

			require.Contains(t, out, "3x3 "+orientation+"-major uncompressed nnz=3")
			for _, op := range []string{opRead, opCompress, opMulVecCompressed, opUncompress, opMulVecUncompressed} {
				require.Contains(t, out, op)
			}
			require.Contains(t, logs, "spmv: products agree")
			require.Contains(t, logs, "run_id=")

			raw, err := os.ReadFile(metrics)
			require.NoError(t, err)
			require.Contains(t, string(raw), bench.MetricDuration+`_count{op="mulvec_compressed"} 3`)
			require.Contains(t, string(raw), bench.MetricDuration+`_count{op="read"} 1`)
		})
	}
}

func TestRun_DebugLogsStateTransitions(t *testing.T) {
	_, logs, err := execute(t, "run", fixture(t, "m.mtx"), "--repeat", "1", "--log-level", "debug", "--log-format", "json")
	require.NoError(t, err)
	require.Contains(t, logs, `"msg":"sparse: compressed"`)
	require.Contains(t, logs, `"msg":"sparse: uncompressed"`)
	require.Contains(t, logs, `"run_id":"`)
}

func TestRun_Errors(t *testing.T) {
	_, _, err := execute(t, "run", filepath.Join(t.TempDir(), "missing.mtx"))
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.mtx")
	require.NoError(t, os.WriteFile(bad, []byte("2 2 1\n3 1 1\n"), 0o600))
	_, _, err = execute(t, "run", bad)
	require.ErrorIs(t, err, sparse.ErrOutOfRange)

	_, _, err = execute(t, "run", fixture(t, "m.mtx"), "--orientation", "diagonal")
	require.ErrorIs(t, err, config.ErrInvalid)

	_, _, err = execute(t, "run", fixture(t, "m.mtx"), "--repeat", "0")
	require.ErrorIs(t, err, config.ErrInvalid)

	_, _, err = execute(t, "run")
	require.Error(t, err, "file argument is required")
}

func TestShow_Views(t *testing.T) {
	path := fixture(t, "m.mtx.gz")

	out, _, err := execute(t, "show", path, "--view", "dump")
	require.NoError(t, err)
	require.Equal(t, "uncompressed 3x3 row-major nnz=3\n(0, 0): 1\n(1, 2): 3\n(2, 0): 2\n", out)

	out, _, err = execute(t, "show", path, "--view", "dump", "--compressed", "--orientation", "column")
	require.NoError(t, err)
	require.Equal(t, "compressed 3x3 column-major nnz=3\ninner:  [0 2 2 3]\nouter:  [0 2 1]\nvalues: [1 2 3]\n", out)

	out, _, err = execute(t, "show", path, "--view", "grid")
	require.NoError(t, err)
	require.Equal(t, "1 . .\n. . 3\n2 . .\n", out)

	out, _, err = execute(t, "show", path, "--view", "table", "--compressed")
	require.NoError(t, err)
	require.Contains(t, out, "3x3 row-major compressed nnz=3")
	require.Contains(t, out, "indices")

	// A buffer is not a terminal, so auto falls back to the dump.
	out, _, err = execute(t, "show", path)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "uncompressed 3x3 row-major nnz=3\n"))

	_, _, err = execute(t, "show", path, "--view", "pie")
	require.ErrorIs(t, err, config.ErrInvalid)
}

func TestConfig_FileAndFlagPrecedence(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "spmv.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("orientation: column\nrepeat: 4\n"), 0o600))

	out, _, err := execute(t, "config", "--config", cfgPath)
	require.NoError(t, err)
	require.Contains(t, out, "orientation: column")
	require.Contains(t, out, "repeat: 4")

	out, _, err = execute(t, "config", "--config", cfgPath, "--repeat", "7", "--no-color")
	require.NoError(t, err)
	require.Contains(t, out, "orientation: column", "file value survives")
	require.Contains(t, out, "repeat: 7", "flag overrides file")
	require.Contains(t, out, "no_color: true")
}

func TestProbeVector(t *testing.T) {
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7, 1, 2}, probeVector(9))
	require.Empty(t, probeVector(0))
}
