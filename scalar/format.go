// SPDX-License-Identifier: MIT

package scalar

import (
	"fmt"
	"math"
	"math/cmplx"
	"strconv"
)

// Format selects how a complex amplitude is rendered.
type Format int

const (
	// Cartesian renders "(re +imi)", e.g. "(0.71 -0.71i)".
	Cartesian Format = iota
	// Polar renders "r exp(φi)" with φ in radians.
	Polar
	// PolarTau renders "r exp(φτi)" with φ as a fraction of a full turn.
	PolarTau
)

// String returns the lowercase name of the format.
func (f Format) String() string {
	switch f {
	case Cartesian:
		return "cartesian"
	case Polar:
		return "polar"
	case PolarTau:
		return "polarTau"
	default:
		return "Format(" + strconv.Itoa(int(f)) + ")"
	}
}

// FormatValue renders z using the given format and number of decimals.
// Unknown formats fall back to Cartesian.
func FormatValue(z complex128, f Format, precision int) string {
	if precision < 0 {
		precision = 0
	}
	switch f {
	case Polar:
		return fmt.Sprintf("%.*f exp(%.*fi)", precision, cmplx.Abs(z), precision, cmplx.Phase(z))
	case PolarTau:
		return fmt.Sprintf("%.*f exp(%.*fτi)", precision, cmplx.Abs(z), precision, PhaseTau(z))
	default:
		sign := "+"
		if math.Signbit(imag(z)) && imag(z) != 0 {
			sign = "-"
		}

		return fmt.Sprintf("(%.*f %s%.*fi)", precision, real(z), sign, precision, math.Abs(imag(z)))
	}
}
