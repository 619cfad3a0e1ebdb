// SPDX-License-Identifier: MIT

// Package photons simulates one or two photons travelling on a rectangular
// board through optical elements.
//
// What:
//
//   - Photons owns the joint state: a tensor.Vector over one
//     [x, y, direction, polarization] block per photon.
//   - AddPhotonIndicator moves the state machine empty → one photon → two
//     photons. The two-photon state is the symmetrized product
//     (a⊗b + b⊗a)/√2 and requires orthogonal photons.
//   - PropagatePhotons moves every photon one tile along its heading.
//     Amplitude that leaves the board is lost.
//   - ActOnSinglePhotons applies tile-local elements (see package elements)
//     as identity plus localized deltas, once per photon block.
//   - AggregatePolarization, TotalIntensityPerTile and
//     MeasureAbsorptionAtOperator read single-photon observables.
//
// State updates:
//
//   - Every operation computes a new tensor.Vector and swaps it in only on
//     success. A failing call leaves the state untouched. Vectors are
//     immutable, so states returned by State stay valid after later steps.
//
// Options:
//
//   - WithLogger: zerolog logger (default zerolog.Nop()).
//   - WithEpsilon: orthogonality tolerance (default tensor.DefaultEpsilon).
//   - WithYDirMeansDown: y convention used by Propagate (default true).
//
// Errors:
//
//   - ErrUnsupportedPhotonCount: a third photon, or a single-photon reading
//     with another count.
//   - ErrNonOrthogonalPhotons: a second photon overlapping the first.
//   - ErrOutOfBoard: a position outside the board.
//   - ErrDuplicatePosition: two interactions on the same tile.
//   - ErrNilOperator: an interaction without an operator.
//   - ErrSnapshot: a snapshot that does not fit this board.
//
// Tensor errors (tensor.ErrUnknownCoordinate, tensor.ErrDimensionMismatch)
// propagate wrapped.
package photons
