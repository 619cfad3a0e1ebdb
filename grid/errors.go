// SPDX-License-Identifier: MIT

package grid

import "errors"

var (
	// ErrEmptyGrid indicates a board with no columns or no rows.
	ErrEmptyGrid = errors.New("grid: board must have positive width and height")
	// ErrBadAngle indicates an angle that is not a multiple of the required step.
	ErrBadAngle = errors.New("grid: angle does not map onto a heading")
	// ErrUnknownDirection indicates a direction label outside the four headings.
	ErrUnknownDirection = errors.New("grid: unknown direction")
)
