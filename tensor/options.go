// SPDX-License-Identifier: MIT

// Package tensor: numeric policy and rendering options.
//
// Rendering of vectors and operators is configured with functional options
// (FormatOption). Numeric tolerances are package constants; entry dropping
// uses DropTolerance relative to the terms of each sum, so that exact
// cancellations and their round-off residue are removed from sparse results
// while genuinely small amplitudes survive.

package tensor

import "github.com/katalvlaran/qtensor/scalar"

// Numeric policy.
const (
	// DefaultEpsilon is the tolerance used by approximate comparisons
	// (ApproxEqual, IsZero, IsUnitary) when callers have no better value.
	DefaultEpsilon = 1e-9

	// DropTolerance is the relative magnitude at or below which a sum is
	// treated as cancelled: |sum| <= DropTolerance·max|term| (per component).
	DropTolerance = 1e-12
)

// Rendering defaults.
const (
	DefaultComplexFormat = scalar.Cartesian
	DefaultPrecision     = 2
	DefaultSeparator     = " + "
)

const (
	panicPrecisionInvalid = "tensor: WithPrecision: precision must be in [0, 17]"
)

// FormatOption configures String-style rendering of vectors and operators.
type FormatOption func(*formatOptions)

type formatOptions struct {
	complexFormat scalar.Format
	precision     int
	separator     string
}

// WithComplexFormat selects cartesian or polar rendering of amplitudes.
func WithComplexFormat(f scalar.Format) FormatOption {
	return func(o *formatOptions) { o.complexFormat = f }
}

// WithPrecision sets the number of decimals. Panics outside [0, 17].
func WithPrecision(p int) FormatOption {
	if p < 0 || p > 17 {
		panic(panicPrecisionInvalid)
	}

	return func(o *formatOptions) { o.precision = p }
}

// WithSeparator sets the string placed between rendered terms.
func WithSeparator(sep string) FormatOption {
	return func(o *formatOptions) { o.separator = sep }
}

func gatherFormatOptions(opts []FormatOption) formatOptions {
	o := formatOptions{
		complexFormat: DefaultComplexFormat,
		precision:     DefaultPrecision,
		separator:     DefaultSeparator,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
