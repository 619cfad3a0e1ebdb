// SPDX-License-Identifier: MIT
// Package tensor_test contains shared fixtures for tensor tests.

package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qtensor/tensor"
)

const eps = 1e-9

// MustPosition builds a positional axis or fails the test.
func MustPosition(t *testing.T, size int, name string) *tensor.Dimension {
	t.Helper()
	d, err := tensor.Position(size, name)
	require.NoError(t, err)

	return d
}

// MustKet builds an indicator vector or fails the test.
func MustKet(t *testing.T, dims []*tensor.Dimension, labels ...string) *tensor.Vector {
	t.Helper()
	v, err := tensor.VectorIndicator(dims, labels)
	require.NoError(t, err)

	return v
}

// MustVector builds a vector from literal entries or fails the test.
func MustVector(t *testing.T, dims []*tensor.Dimension, entries ...tensor.NamedEntry) *tensor.Vector {
	t.Helper()
	v, err := tensor.VectorFromNamedEntries(entries, dims)
	require.NoError(t, err)

	return v
}

// MustOuter returns a ⊗ b or fails the test.
func MustOuter(t *testing.T, a, b *tensor.Vector) *tensor.Vector {
	t.Helper()
	v, err := a.Outer(b)
	require.NoError(t, err)

	return v
}

// pauliX returns σx over the polarization axis.
func pauliX(t *testing.T) *tensor.Operator {
	t.Helper()
	pol := []*tensor.Dimension{tensor.Polarization()}
	op, err := tensor.OperatorFromNamedEntries([]tensor.NamedOperatorEntry{
		{Out: "V", In: "H", Value: 1},
		{Out: "H", In: "V", Value: 1},
	}, pol, nil)
	require.NoError(t, err)

	return op
}

// requireVectorsClose asserts two vectors share dimensions and amplitudes.
func requireVectorsClose(t *testing.T, want, got *tensor.Vector) {
	t.Helper()
	require.Truef(t, want.ApproxEqual(got, eps), "want %s\ngot  %s", want.Ket(), got.Ket())
}
