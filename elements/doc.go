// SPDX-License-Identifier: MIT

// Package elements is a catalogue of optical elements, each a single-photon
// operator over [direction, polarization] ready to be localized on a board
// tile by the photons package.
//
// What:
//
//   - Two-level helpers (RotationMatrix, ProjectionMatrix,
//     PhaseShiftForRealEigenvectors) over any 2-label dimension.
//   - Direction helpers (ReflectFromPlaneDirection, DiodeForDirections,
//     BeamSplitterTransmissionDirections) and reflection phases.
//   - Elements: Mirror, BeamSplitter, PolarizingBeamSplitter, CornerCube,
//     AmplitudeIntensity, Attenuator, VacuumJar, GlassSlab, SugarSolution,
//     Polarizer, PolarizerWE, PolarizerNS, PhasePlate, QuarterWavePlate,
//     QuarterWavePlateWE, QuarterWavePlateNS, HalfWavePlate, FaradayRotator,
//     Detector.
//
// Units:
//
//   - Placement angles (mirror and splitter surfaces) are integer degrees,
//     measured counterclockwise from the right heading, and must be
//     multiples of 45; diode headings must be multiples of 90.
//   - Polarization angles, rotations and phases are radians.
//
// Lossless elements are unitary. Attenuator and AmplitudeIntensity (r < 1),
// the polarizers and Detector are sub-unitary: their spectral norm is at most
// one and they absorb probability.
//
// Errors:
//
//   - ErrBadAngle: placement angle not a multiple of 45, or diode heading not
//     a multiple of 90 (wraps grid.ErrBadAngle).
//   - ErrUnknownDirection: FaradayRotator given an invalid heading.
//   - ErrNotTwoLevel: a two-level helper called on a dimension of another size.
//   - ErrAmplitude: amplitude factor outside [0, 1].
package elements
