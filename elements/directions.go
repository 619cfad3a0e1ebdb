// SPDX-License-Identifier: MIT

package elements

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qtensor/grid"
	"github.com/katalvlaran/qtensor/tensor"
)

var (
	dirAxis = []*tensor.Dimension{tensor.Direction()}
	polAxis = []*tensor.Dimension{tensor.Polarization()}
)

// directionMap builds the operator |f(d)⟩⟨d| over the direction axis for every
// heading d where keep(d) holds.
func directionMap(f func(grid.Direction) grid.Direction, keep func(grid.Direction) bool) *tensor.Operator {
	entries := make([]tensor.OperatorEntry, 0, 4)
	for _, d := range grid.Directions() {
		if keep(d) {
			entries = append(entries, tensor.OperatorEntry{
				CoordOut: []int{int(f(d))},
				CoordIn:  []int{int(d)},
				Value:    1,
			})
		}
	}

	return must(tensor.NewOperator(entries, dirAxis, dirAxis))
}

// reflectionSplit returns the reflected part (headings that hit the surface)
// and the projector on headings parallel to a surface at angle degrees.
func reflectionSplit(angle int) (reflected, parallel *tensor.Operator, err error) {
	if angle%45 != 0 {
		return nil, nil, ErrBadAngle
	}
	mirrored := func(d grid.Direction) grid.Direction {
		r, _ := d.Reflect(angle)
		return r
	}
	hits := func(d grid.Direction) bool { return mirrored(d) != d }
	along := func(d grid.Direction) bool { return mirrored(d) == d }
	same := func(d grid.Direction) grid.Direction { return d }

	return directionMap(mirrored, hits), directionMap(same, along), nil
}

// ReflectFromPlaneDirection maps each heading that meets a surface at angle
// degrees to its mirror image (φ ↦ 2·angle − φ). Headings parallel to the
// surface have no entry.
// Errors: ErrBadAngle.
func ReflectFromPlaneDirection(angle int) (*tensor.Operator, error) {
	r, _, err := reflectionSplit(angle)
	if err != nil {
		return nil, elementErrorf("ReflectFromPlaneDirection", err)
	}

	return r, nil
}

// DiodeForDirections passes only photons heading at angle degrees (a
// multiple of 90) and drops every other heading.
// Errors: ErrBadAngle.
func DiodeForDirections(angle int) (*tensor.Operator, error) {
	if angle%90 != 0 {
		return nil, elementErrorf("DiodeForDirections", fmt.Errorf("%d: %w", angle, ErrBadAngle))
	}
	d, err := grid.DirectionFromDegrees(angle)
	if err != nil {
		return nil, elementErrorf("DiodeForDirections", err)
	}

	return directionMap(func(h grid.Direction) grid.Direction { return h },
		func(h grid.Direction) bool { return h == d }), nil
}

// alongAxis projects onto the two headings of the axis at angle degrees.
func alongAxis(angle int) (*tensor.Operator, error) {
	forward, err := DiodeForDirections(angle)
	if err != nil {
		return nil, err
	}
	backward, err := DiodeForDirections(angle + 180)
	if err != nil {
		return nil, err
	}

	return forward.Add(backward)
}

// BeamSplitterTransmissionDirections is the transmitted branch of a beam
// splitter with its surface at angle degrees: amplitude 1/√2 for headings
// meeting the surface, 1 for headings parallel to it.
// Errors: ErrBadAngle.
func BeamSplitterTransmissionDirections(angle int) (*tensor.Operator, error) {
	_, parallel, err := reflectionSplit(angle)
	if err != nil {
		return nil, elementErrorf("BeamSplitterTransmissionDirections", err)
	}
	meeting := must(idDir.Sub(parallel))

	return meeting.MulConstant(complex(math.Sqrt2/2, 0)).Add(parallel)
}

// ReflectPhaseFromLighter is the polarization phase of a reflection off an
// optically lighter medium: V flips sign.
func ReflectPhaseFromLighter() *tensor.Operator {
	return must(tensor.OperatorFromNamedEntries([]tensor.NamedOperatorEntry{
		{Out: "H", In: "H", Value: 1},
		{Out: "V", In: "V", Value: -1},
	}, polAxis, nil))
}

// ReflectPhaseFromDenser is the polarization phase of a reflection off an
// optically denser medium: H flips sign.
func ReflectPhaseFromDenser() *tensor.Operator {
	return must(tensor.OperatorFromNamedEntries([]tensor.NamedOperatorEntry{
		{Out: "H", In: "H", Value: -1},
		{Out: "V", In: "V", Value: 1},
	}, polAxis, nil))
}

// must unwraps constructors whose arguments are fixed by this package.
func must(op *tensor.Operator, err error) *tensor.Operator {
	if err != nil {
		panic(err)
	}

	return op
}
