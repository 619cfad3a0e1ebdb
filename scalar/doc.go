// SPDX-License-Identifier: MIT

// Package scalar collects the small helpers qtensor needs on top of Go's
// native complex128: tolerance-aware comparisons, squared magnitudes, polar
// construction and human-readable formatting.
//
// What:
//
//   - Amplitudes are plain complex128 values; no wrapper type is introduced.
//   - IsZero/Equal compare componentwise against an explicit epsilon.
//   - Format renders a value in cartesian, polar (radians) or polar-τ form.
//
// Complexity:
//
//   - Every helper is O(1).
package scalar
