// SPDX-License-Identifier: MIT

package scalar

import (
	"math"
	"math/cmplx"
)

// Tau is a full turn in radians (2π).
const Tau = 2 * math.Pi

// Cx builds a complex amplitude from its cartesian parts.
func Cx(re, im float64) complex128 {
	return complex(re, im)
}

// FromPolar builds r·exp(iφ).
func FromPolar(r, phi float64) complex128 {
	return cmplx.Rect(r, phi)
}

// Abs2 returns |z|², the probability weight of an amplitude.
// Complexity: O(1), no square root.
func Abs2(z complex128) float64 {
	re, im := real(z), imag(z)

	return re*re + im*im
}

// Normalize returns z/|z|, or 0 for z == 0.
func Normalize(z complex128) complex128 {
	r := cmplx.Abs(z)
	if r == 0 {
		return 0
	}

	return z / complex(r, 0)
}

// PhaseTau returns arg(z) as a fraction of a full turn, in [0, 1).
func PhaseTau(z complex128) float64 {
	phi := cmplx.Phase(z) / Tau
	if phi < 0 {
		phi++ // fold (-1/2, 0) into (1/2, 1)
	}

	return phi
}

// IsZero reports whether both components of z lie within eps of zero.
func IsZero(z complex128, eps float64) bool {
	return math.Abs(real(z)) <= eps && math.Abs(imag(z)) <= eps
}

// Equal reports whether a and b agree componentwise within eps.
func Equal(a, b complex128, eps float64) bool {
	return IsZero(a-b, eps)
}
