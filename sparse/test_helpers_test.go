// SPDX-License-Identifier: MIT
// Package sparse_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures shared by the sparse tests.
//   • Provide a dense reference product (gonum) to check every kernel against.

package sparse_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvsparse/sparse"
)

// scenarioEntries is the 3×3 fixture used across tests:
//
//	[1 0 0]
//	[0 0 3]
//	[2 0 0]
var scenarioEntries = []sparse.Triplet[float64]{
	{Row: 0, Col: 0, Value: 1},
	{Row: 1, Col: 2, Value: 3},
	{Row: 2, Col: 0, Value: 2},
}

// mustNew allocates an r×c matrix of layout O or fails the test.
func mustNew[O sparse.Layout](t testing.TB, r, c int) *sparse.Matrix[float64, O] {
	t.Helper()
	m, err := sparse.New[float64, O](r, c)
	require.NoError(t, err)

	return m
}

// mustFill writes every triplet through Set or fails the test.
func mustFill[T sparse.Number, O sparse.Layout](t testing.TB, m *sparse.Matrix[T, O], ts []sparse.Triplet[T]) {
	t.Helper()
	for _, e := range ts {
		require.NoError(t, m.Set(e.Row, e.Col, e.Value))
	}
}

// randomTriplets returns n triplets with coordinates in [0,r)×[0,c) and
// values in [-5,5), deterministic for a given seed. Coordinates may repeat.
func randomTriplets(seed int64, r, c, n int) []sparse.Triplet[float64] {
	rng := rand.New(rand.NewSource(seed))
	out := make([]sparse.Triplet[float64], n)
	for i := range out {
		out[i] = sparse.Triplet[float64]{
			Row:   rng.Intn(r),
			Col:   rng.Intn(c),
			Value: float64(rng.Intn(10) - 5),
		}
	}

	return out
}

// randomVector returns n deterministic values in [-3,3).
func randomVector(seed int64, n int) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(rng.Intn(6) - 3)
	}

	return out
}

// denseProduct computes A·x with gonum, where A holds ts (last write wins).
// Requires r, c > 0.
func denseProduct(r, c int, ts []sparse.Triplet[float64], x []float64) []float64 {
	a := mat.NewDense(r, c, nil)
	for _, e := range ts {
		a.Set(e.Row, e.Col, e.Value)
	}
	var y mat.VecDense
	y.MulVec(a, mat.NewVecDense(c, append([]float64(nil), x...)))

	return append([]float64(nil), y.RawVector().Data...)
}

// requireSegmentsSorted asserts every outer segment is strictly ascending and
// that inner is a non-decreasing prefix count ending at nnz.
func requireSegmentsSorted[T sparse.Number](t testing.TB, s sparse.Storage[T]) {
	t.Helper()
	require.NotEmpty(t, s.Inner)
	require.Equal(t, 0, s.Inner[0])
	require.Equal(t, len(s.Outer), s.Inner[len(s.Inner)-1])
	require.Len(t, s.Values, len(s.Outer))
	for p := 0; p+1 < len(s.Inner); p++ {
		require.LessOrEqual(t, s.Inner[p], s.Inner[p+1], "inner must be non-decreasing at %d", p)
		for k := s.Inner[p] + 1; k < s.Inner[p+1]; k++ {
			require.Less(t, s.Outer[k-1], s.Outer[k], "segment %d not strictly ascending", p)
		}
	}
}
