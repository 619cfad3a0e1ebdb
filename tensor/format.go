// SPDX-License-Identifier: MIT

// Package tensor - ket/bra rendering of vectors and operators.

package tensor

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/qtensor/scalar"
)

// labelsOf renders coord through the label tables of dims ("1,0,>,H").
func labelsOf(coord []int, dims []*Dimension) string {
	parts := make([]string, len(coord))
	for i, c := range coord {
		parts[i] = dims[i].CoordName(c)
	}

	return strings.Join(parts, ",")
}

// Ket renders v as a sum of "value |labels⟩" terms; the zero vector renders as "0".
func (v *Vector) Ket(opts ...FormatOption) string {
	o := gatherFormatOptions(opts)
	if len(v.entries) == 0 {
		return "0"
	}
	terms := make([]string, len(v.entries))
	for i, e := range v.entries {
		terms[i] = fmt.Sprintf("%s |%s⟩",
			scalar.FormatValue(e.Value, o.complexFormat, o.precision), labelsOf(e.Coord, v.dimensions))
	}

	return strings.Join(terms, o.separator)
}

// Format renders a header line with sizes and axis names followed by Ket.
func (v *Vector) Format(opts ...FormatOption) string {
	return fmt.Sprintf("Vector of max size [%s] with dimensions [%s]\n%s",
		joinInts(v.sizes), strings.Join(DimNames(v.dimensions), ","), v.Ket(opts...))
}

// String implements fmt.Stringer with default options.
func (v *Vector) String() string { return v.Format() }

// Terms renders o as a sum of "value |out⟩⟨in|" terms; zero renders as "0".
func (o *Operator) Terms(opts ...FormatOption) string {
	fo := gatherFormatOptions(opts)
	if len(o.entries) == 0 {
		return "0"
	}
	terms := make([]string, len(o.entries))
	for i, e := range o.entries {
		terms[i] = fmt.Sprintf("%s |%s⟩⟨%s|",
			scalar.FormatValue(e.Value, fo.complexFormat, fo.precision),
			labelsOf(e.CoordOut, o.dimensionsOut), labelsOf(e.CoordIn, o.dimensionsIn))
	}

	return strings.Join(terms, fo.separator)
}

// Format renders a header with both spaces followed by Terms.
func (o *Operator) Format(opts ...FormatOption) string {
	return fmt.Sprintf("Operator with %d entries of max size [[%s], [%s]] with dimensions [[%s], [%s]]\n%s",
		len(o.entries), joinInts(o.sizesOut), joinInts(o.sizesIn),
		strings.Join(DimNames(o.dimensionsOut), ","), strings.Join(DimNames(o.dimensionsIn), ","),
		o.Terms(opts...))
}

// String implements fmt.Stringer with default options.
func (o *Operator) String() string { return o.Format() }
