// SPDX-License-Identifier: MIT

package elements

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/qtensor/grid"
)

var (
	// ErrBadAngle indicates a placement angle that is not a multiple of 45°.
	ErrBadAngle = fmt.Errorf("elements: %w", grid.ErrBadAngle)
	// ErrUnknownDirection indicates a heading outside the four board directions.
	ErrUnknownDirection = fmt.Errorf("elements: %w", grid.ErrUnknownDirection)
	// ErrNotTwoLevel indicates a two-level helper applied to a dimension of another size.
	ErrNotTwoLevel = errors.New("elements: dimension must have exactly two coordinates")
	// ErrAmplitude indicates an attenuation factor outside [0, 1].
	ErrAmplitude = errors.New("elements: amplitude factor must lie in [0, 1]")
)

// elementErrorf tags err with the element name.
func elementErrorf(name string, err error) error {
	return fmt.Errorf("%s: %w", name, err)
}
