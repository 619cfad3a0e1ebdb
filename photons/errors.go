// SPDX-License-Identifier: MIT

package photons

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedPhotonCount indicates a third photon, or a single-photon
	// reading on a state with zero or two photons.
	ErrUnsupportedPhotonCount = errors.New("photons: unsupported photon count")

	// ErrNonOrthogonalPhotons indicates a second photon that overlaps the first.
	ErrNonOrthogonalPhotons = errors.New("photons: photons are not orthogonal")

	// ErrOutOfBoard indicates a tile position outside the board.
	ErrOutOfBoard = errors.New("photons: position outside the board")

	// ErrDuplicatePosition indicates two interactions listed for one tile.
	ErrDuplicatePosition = errors.New("photons: duplicate interaction position")

	// ErrNilOperator indicates an interaction without an operator.
	ErrNilOperator = errors.New("photons: nil interaction operator")

	// ErrSnapshot indicates a snapshot taken on a different board or malformed.
	ErrSnapshot = errors.New("photons: snapshot does not fit this board")
)

// Operation tags used in wrapped errors.
const (
	opNew          = "New"
	opCreatePhoton = "CreatePhoton"
	opAddPhoton    = "AddPhotonIndicator"
	opPropagator   = "CreatePhotonPropagator"
	opPropagate    = "PropagatePhotons"
	opLocalize     = "CreateLocalizedOperator"
	opInteraction  = "CreateSinglePhotonInteraction"
	opAct          = "ActOnSinglePhotons"
	opAbsorption   = "MeasureAbsorptionAtOperator"
	opPolarization = "AggregatePolarization"
	opIntensity    = "TotalIntensityPerTile"
	opSnapshot     = "Snapshot"
	opRestore      = "Restore"
)

// photonsErrorf wraps err with an operation tag, preserving it for errors.Is.
func photonsErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
