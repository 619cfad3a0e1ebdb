// SPDX-License-Identifier: MIT

// Package tensor - Dimension: immutable named axis descriptors.
//
// Purpose:
//   - Describe one tensor axis by name, size and ordered coordinate labels.
//   - Provide label↔index lookup and the pairwise compatibility check that
//     guards every binary vector/operator operation.
//   - Offer canonical singletons (direction, polarization, spin) and a
//     factory for positional axes of arbitrary size.
//
// Dimensions are shared by pointer across many vectors and operators; they are
// never mutated after construction.

package tensor

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Canonical axis names.
const (
	DirectionName    = "direction"
	PolarizationName = "polarization"
	SpinName         = "spin"
)

// coordSeparator delimits labels in literal coordinate strings ("3,1,>,V").
const coordSeparator = ","

// Dimension is a named tensor axis.
//   - name identifies the axis ("x", "direction", ...).
//   - coordNames holds exactly Size() distinct labels, index order.
//   - index is the reverse lookup label → position.
type Dimension struct {
	name       string
	coordNames []string
	index      map[string]int
}

var (
	directionDim    = mustDimension(DirectionName, []string{">", "^", "<", "v"})
	polarizationDim = mustDimension(PolarizationName, []string{"H", "V"})
	spinDim         = mustDimension(SpinName, []string{"u", "d"})
)

// NewDimension builds a dimension from a name and its ordered labels.
// The label slice is copied.
// Errors: ErrInvalidDimension when labels are empty, blank or duplicated.
// Complexity: O(n).
func NewDimension(name string, coordNames []string) (*Dimension, error) {
	if len(coordNames) == 0 {
		return nil, fmt.Errorf("NewDimension(%q): no labels: %w", name, ErrInvalidDimension)
	}
	labels := make([]string, len(coordNames))
	index := make(map[string]int, len(coordNames))
	for i, label := range coordNames {
		if label == "" {
			return nil, fmt.Errorf("NewDimension(%q): blank label at %d: %w", name, i, ErrInvalidDimension)
		}
		if _, dup := index[label]; dup {
			return nil, fmt.Errorf("NewDimension(%q): duplicate label %q: %w", name, label, ErrInvalidDimension)
		}
		labels[i] = label
		index[label] = i
	}

	return &Dimension{name: name, coordNames: labels, index: index}, nil
}

// mustDimension is used for the package's static canonical axes only.
func mustDimension(name string, coordNames []string) *Dimension {
	d, err := NewDimension(name, coordNames)
	if err != nil {
		panic(err)
	}

	return d
}

// Direction returns the shared 4-label heading axis: ">" (right), "^" (up),
// "<" (left), "v" (down). Index i corresponds to a heading of 90°·i.
func Direction() *Dimension { return directionDim }

// Polarization returns the shared 2-label axis "H" (horizontal), "V" (vertical).
func Polarization() *Dimension { return polarizationDim }

// Spin returns the shared 2-label axis "u" (up), "d" (down).
func Spin() *Dimension { return spinDim }

// Position builds a positional axis named name with labels "0".."size-1".
// Errors: ErrInvalidDimension when size <= 0.
func Position(size int, name string) (*Dimension, error) {
	if size <= 0 {
		return nil, fmt.Errorf("Position(%d, %q): %w", size, name, ErrInvalidDimension)
	}
	labels := make([]string, size)
	for i := range labels {
		labels[i] = strconv.Itoa(i)
	}

	return NewDimension(name, labels)
}

// Name returns the axis name.
func (d *Dimension) Name() string { return d.name }

// Size returns the number of coordinates.
func (d *Dimension) Size() int { return len(d.coordNames) }

// CoordNames returns a copy of the ordered labels.
func (d *Dimension) CoordNames() []string {
	out := make([]string, len(d.coordNames))
	copy(out, d.coordNames)

	return out
}

// CoordName returns the label at index i, or "" when i is out of range.
func (d *Dimension) CoordName(i int) string {
	if i < 0 || i >= len(d.coordNames) {
		return ""
	}

	return d.coordNames[i]
}

// CoordNameToIndex resolves a label to its index.
// Errors: ErrUnknownCoordinate.
func (d *Dimension) CoordNameToIndex(label string) (int, error) {
	i, ok := d.index[label]
	if !ok {
		return 0, fmt.Errorf("dimension %q has no coordinate %q: %w", d.name, label, ErrUnknownCoordinate)
	}

	return i, nil
}

// Equal reports whether d and other have the same name, size and labels.
// Equality is reflexive and symmetric; nil equals only nil.
func (d *Dimension) Equal(other *Dimension) bool {
	if d == other {
		return true // shared singleton fast path
	}
	if d == nil || other == nil {
		return false
	}
	if d.name != other.name || len(d.coordNames) != len(other.coordNames) {
		return false
	}
	for i, label := range d.coordNames {
		if other.coordNames[i] != label {
			return false
		}
	}

	return true
}

// String renders the dimension for diagnostics.
func (d *Dimension) String() string {
	return fmt.Sprintf("#Dimension [%s] of size [%d] has coordinates named: [%s]",
		d.name, len(d.coordNames), strings.Join(d.coordNames, ","))
}

// CheckDimensions returns ErrDimensionMismatch unless a and b have the same
// length and are pairwise Equal.
// Complexity: O(Σ sizes).
func CheckDimensions(a, b []*Dimension) error {
	if len(a) != len(b) {
		return fmt.Errorf("CheckDimensions: %d vs %d axes: %w", len(a), len(b), ErrDimensionMismatch)
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return fmt.Errorf("CheckDimensions: axis %d (%s vs %s): %w",
				i, dimName(a[i]), dimName(b[i]), ErrDimensionMismatch)
		}
	}

	return nil
}

func dimName(d *Dimension) string {
	if d == nil {
		return "<nil>"
	}

	return d.name
}

// DimNames returns the axis names of dims in order.
func DimNames(dims []*Dimension) []string {
	out := make([]string, len(dims))
	for i, d := range dims {
		out[i] = d.name
	}

	return out
}

// ConcatCoordNames returns the label lists of dims, one per axis, in order.
// Used to label composite spaces after outer products.
func ConcatCoordNames(dims []*Dimension) [][]string {
	out := make([][]string, len(dims))
	for i, d := range dims {
		out[i] = d.CoordNames()
	}

	return out
}

// Sizes returns the axis sizes of dims in order.
func Sizes(dims []*Dimension) []int {
	out := make([]int, len(dims))
	for i, d := range dims {
		out[i] = d.Size()
	}

	return out
}

// StringToCoordIndices maps a literal coordinate string onto dims.
// Labels are comma-separated ("3,1,>,V"); a string without commas whose rune
// count equals len(dims) is read one rune per axis ("dH").
// Errors: ErrCoordinateOutOfRange on a label-count mismatch,
// ErrUnknownCoordinate on an unknown label.
func StringToCoordIndices(s string, dims []*Dimension) ([]int, error) {
	var labels []string
	switch {
	case strings.Contains(s, coordSeparator):
		labels = strings.Split(s, coordSeparator)
	case utf8.RuneCountInString(s) == len(dims) && len(dims) > 1:
		labels = make([]string, 0, len(dims))
		for _, r := range s {
			labels = append(labels, string(r))
		}
	default:
		labels = []string{s}
	}

	return coordLabelsToIndices(labels, dims)
}

// coordLabelsToIndices resolves one label per axis.
func coordLabelsToIndices(labels []string, dims []*Dimension) ([]int, error) {
	if len(labels) != len(dims) {
		return nil, fmt.Errorf("%d labels for %d axes: %w", len(labels), len(dims), ErrCoordinateOutOfRange)
	}
	coord := make([]int, len(dims))
	for i, d := range dims {
		idx, err := d.CoordNameToIndex(strings.TrimSpace(labels[i]))
		if err != nil {
			return nil, err
		}
		coord[i] = idx
	}

	return coord, nil
}
