// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"strconv"
)

// Direction is a heading on the board. Its value is the coordinate index on
// the tensor direction axis.
type Direction int

// Headings, in direction-axis order.
const (
	Right Direction = iota
	Up
	Left
	Down
)

// number of headings; also the size of the direction axis
const numDirections = 4

var directionLabels = [numDirections]string{">", "^", "<", "v"}

// conn4 holds (dx, dy) per heading with y growing upward.
var conn4 = [numDirections][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

// Directions returns the four headings in axis order.
func Directions() []Direction {
	return []Direction{Right, Up, Left, Down}
}

// Valid reports whether d is one of the four headings.
func (d Direction) Valid() bool { return d >= Right && d <= Down }

// Label returns the direction-axis label (">", "^", "<", "v").
func (d Direction) Label() string {
	if !d.Valid() {
		return ""
	}

	return directionLabels[d]
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Up:
		return "up"
	case Left:
		return "left"
	case Down:
		return "down"
	default:
		return "Direction(" + strconv.Itoa(int(d)) + ")"
	}
}

// Degrees returns the heading angle: 90° per step counterclockwise from Right.
func (d Direction) Degrees() int { return 90 * int(d) }

// Offset returns the tile step for one move along d. With yDirMeansDown the y
// index grows toward Down, otherwise toward Up.
func (d Direction) Offset(yDirMeansDown bool) (dx, dy int) {
	if !d.Valid() {
		return 0, 0
	}
	o := conn4[d]
	if yDirMeansDown {
		return o[0], -o[1]
	}

	return o[0], o[1]
}

// Opposite returns the heading turned by 180°.
func (d Direction) Opposite() Direction { return (d + 2) % numDirections }

// Reflect returns the heading after reflection on a mirror whose surface is
// at mirrorAngle degrees: φ ↦ 2θ − φ.
// Errors: ErrBadAngle unless mirrorAngle is a multiple of 45.
func (d Direction) Reflect(mirrorAngle int) (Direction, error) {
	if mirrorAngle%45 != 0 {
		return d, fmt.Errorf("Reflect(%d): %w", mirrorAngle, ErrBadAngle)
	}

	return DirectionFromDegrees(2*mirrorAngle - d.Degrees())
}

// DirectionFromLabel resolves a direction-axis label.
// Errors: ErrUnknownDirection.
func DirectionFromLabel(label string) (Direction, error) {
	for i, l := range directionLabels {
		if l == label {
			return Direction(i), nil
		}
	}

	return Right, fmt.Errorf("DirectionFromLabel(%q): %w", label, ErrUnknownDirection)
}

// DirectionFromDegrees maps any multiple of 90 (negative allowed) to a heading.
// Errors: ErrBadAngle.
func DirectionFromDegrees(deg int) (Direction, error) {
	if deg%90 != 0 {
		return Right, fmt.Errorf("DirectionFromDegrees(%d): %w", deg, ErrBadAngle)
	}
	steps := (deg / 90) % numDirections
	if steps < 0 {
		steps += numDirections
	}

	return Direction(steps), nil
}
