// SPDX-License-Identifier: MIT

package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsparse/sparse"
)

func TestCompress_RowMajorScenario(t *testing.T) {
	m := mustNew[sparse.RowMajor](t, 3, 3)
	mustFill(t, m, scenarioEntries)

	m.Compress()
	require.True(t, m.IsCompressed())

	s, ok := m.Storage()
	require.True(t, ok)
	require.Equal(t, []int{0, 1, 2, 3}, s.Inner)
	require.Equal(t, []int{0, 2, 0}, s.Outer)
	require.Equal(t, []float64{1, 3, 2}, s.Values)

	y, err := m.MulVec([]float64{1, 1, 1})
	require.NoError(t, err)
	require.Equal(t, []float64{1, 3, 2}, y)
}

func TestCompress_ColumnMajorScenario(t *testing.T) {
	m := mustNew[sparse.ColumnMajor](t, 3, 3)
	mustFill(t, m, scenarioEntries)

	m.Compress()
	s, ok := m.Storage()
	require.True(t, ok)
	// col0: rows 0,2; col1: empty; col2: row 1
	require.Equal(t, []int{0, 2, 2, 3}, s.Inner)
	require.Equal(t, []int{0, 2, 1}, s.Outer)
	require.Equal(t, []float64{1, 2, 3}, s.Values)
}

func TestCompress_EmptyAndTrailingPrimaries(t *testing.T) {
	cases := []struct {
		name  string
		r, c  int
		ts    []sparse.Triplet[float64]
		inner []int
		outer []int
	}{
		{name: "empty matrix", r: 3, c: 2, ts: nil, inner: []int{0, 0, 0, 0}, outer: []int{}},
		{name: "zero rows", r: 0, c: 4, ts: nil, inner: []int{0}, outer: []int{}},
		{name: "leading empty rows", r: 4, c: 3, ts: []sparse.Triplet[float64]{{Row: 2, Col: 1, Value: 7}}, inner: []int{0, 0, 0, 1, 1}, outer: []int{1}},
		{name: "gap in the middle", r: 4, c: 3, ts: []sparse.Triplet[float64]{{Row: 0, Col: 2, Value: 1}, {Row: 3, Col: 0, Value: 2}}, inner: []int{0, 1, 1, 1, 2}, outer: []int{2, 0}},
		{name: "trailing empty rows", r: 5, c: 3, ts: []sparse.Triplet[float64]{{Row: 0, Col: 0, Value: 1}, {Row: 0, Col: 2, Value: 4}}, inner: []int{0, 2, 2, 2, 2, 2}, outer: []int{0, 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := mustNew[sparse.RowMajor](t, tc.r, tc.c)
			mustFill(t, m, tc.ts)
			m.Compress()

			s, ok := m.Storage()
			require.True(t, ok)
			require.Equal(t, tc.inner, s.Inner)
			require.Equal(t, tc.outer, s.Outer)
			requireSegmentsSorted(t, s)
		})
	}
}

func TestCompress_RoundTripPreservesEveryCoordinate(t *testing.T) {
	const r, c = 9, 7
	ts := randomTriplets(1337, r, c, 30)

	check := func(t *testing.T, build func() (func(int, int) (float64, error), func(), func())) {
		at, compress, uncompress := build()
		before := make([]float64, 0, r*c)
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				v, err := at(i, j)
				require.NoError(t, err)
				before = append(before, v)
			}
		}
		compress()
		uncompress()
		idx := 0
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				v, err := at(i, j)
				require.NoError(t, err)
				require.Equal(t, before[idx], v, "(%d,%d)", i, j)
				idx++
			}
		}
	}

	t.Run("row-major", func(t *testing.T) {
		check(t, func() (func(int, int) (float64, error), func(), func()) {
			m := mustNew[sparse.RowMajor](t, r, c)
			mustFill(t, m, ts)
			return m.At, m.Compress, m.Uncompress
		})
	})
	t.Run("column-major", func(t *testing.T) {
		check(t, func() (func(int, int) (float64, error), func(), func()) {
			m := mustNew[sparse.ColumnMajor](t, r, c)
			mustFill(t, m, ts)
			return m.At, m.Compress, m.Uncompress
		})
	})
}

func TestCompress_ReadsAgreeAcrossStates(t *testing.T) {
	const r, c = 6, 8
	ts := randomTriplets(7, r, c, 20)
	m := mustNew[sparse.ColumnMajor](t, r, c)
	mustFill(t, m, ts)
	entriesBefore := m.Entries()

	m.Compress()
	require.Equal(t, entriesBefore, m.Entries(), "Entries must not depend on the state")
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			hasC, err := m.Has(i, j)
			require.NoError(t, err)
			m.Uncompress()
			hasU, err := m.Has(i, j)
			require.NoError(t, err)
			m.Compress()
			require.Equal(t, hasU, hasC, "(%d,%d)", i, j)
		}
	}
}

func TestCompress_Idempotent(t *testing.T) {
	m := mustNew[sparse.RowMajor](t, 3, 3)
	mustFill(t, m, scenarioEntries)

	m.Compress()
	once, _ := m.Storage()
	m.Compress()
	twice, _ := m.Storage()
	require.Equal(t, once, twice)

	m.Uncompress()
	first := m.String()
	m.Uncompress()
	require.False(t, m.IsCompressed())
	require.Equal(t, first, m.String())
}

func TestUncompress_ClearsCompressedArrays(t *testing.T) {
	m := mustNew[sparse.RowMajor](t, 3, 3)
	mustFill(t, m, scenarioEntries)
	m.Compress()
	m.Uncompress()

	s, ok := m.Storage()
	require.False(t, ok)
	require.Empty(t, s.Inner)
	require.Empty(t, s.Outer)
	require.Empty(t, s.Values)
	require.Equal(t, 3, m.NNZ())
}

func TestCompress_KeepsExplicitZeros(t *testing.T) {
	m := mustNew[sparse.RowMajor](t, 2, 2)
	require.NoError(t, m.Set(1, 1, 0))
	m.Compress()
	require.Equal(t, 1, m.NNZ())

	s, _ := m.Storage()
	require.Equal(t, []int{0, 0, 1}, s.Inner)
	require.Equal(t, []int{1}, s.Outer)
	require.Equal(t, []float64{0}, s.Values)
}
