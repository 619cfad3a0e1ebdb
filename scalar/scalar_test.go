// SPDX-License-Identifier: MIT

package scalar_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qtensor/scalar"
)

func TestAbs2AndNormalize(t *testing.T) {
	z := scalar.Cx(3, 4)
	require.InDelta(t, 25.0, scalar.Abs2(z), 1e-12)

	n := scalar.Normalize(z)
	require.InDelta(t, 1.0, scalar.Abs2(n), 1e-12)
	require.Equal(t, complex128(0), scalar.Normalize(0))
}

func TestFromPolar(t *testing.T) {
	z := scalar.FromPolar(2, math.Pi/2)
	require.True(t, scalar.Equal(z, scalar.Cx(0, 2), 1e-12))
}

func TestPhaseTau_FoldsNegativeAngles(t *testing.T) {
	require.InDelta(t, 0.25, scalar.PhaseTau(scalar.Cx(0, 1)), 1e-12)
	require.InDelta(t, 0.75, scalar.PhaseTau(scalar.Cx(0, -1)), 1e-12)
	require.InDelta(t, 0.0, scalar.PhaseTau(scalar.Cx(1, 0)), 1e-12)
}

func TestIsZeroAndEqual(t *testing.T) {
	require.True(t, scalar.IsZero(scalar.Cx(1e-12, -1e-12), 1e-9))
	require.False(t, scalar.IsZero(scalar.Cx(1e-6, 0), 1e-9))
	require.True(t, scalar.Equal(scalar.Cx(1, 1), scalar.Cx(1+1e-12, 1), 1e-9))
	require.False(t, scalar.Equal(scalar.Cx(1, 1), scalar.Cx(1, -1), 1e-9))
}

func TestFormatValue(t *testing.T) {
	cases := []struct {
		name   string
		z      complex128
		format scalar.Format
		want   string
	}{
		{"CartesianPositive", scalar.Cx(0.5, 0.25), scalar.Cartesian, "(0.50 +0.25i)"},
		{"CartesianNegativeImag", scalar.Cx(1, -1), scalar.Cartesian, "(1.00 -1.00i)"},
		{"CartesianZero", 0, scalar.Cartesian, "(0.00 +0.00i)"},
		{"Polar", scalar.Cx(0, 2), scalar.Polar, "2.00 exp(1.57i)"},
		{"PolarTau", scalar.Cx(0, 2), scalar.PolarTau, "2.00 exp(0.25τi)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, scalar.FormatValue(tc.z, tc.format, 2))
		})
	}
}

func TestFormatString(t *testing.T) {
	require.Equal(t, "cartesian", scalar.Cartesian.String())
	require.Equal(t, "polarTau", scalar.PolarTau.String())
	require.Equal(t, "Format(9)", scalar.Format(9).String())
}
