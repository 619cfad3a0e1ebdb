// SPDX-License-Identifier: MIT

// Package grid describes the rectangular board photons travel on and the four
// headings they can have.
//
// What:
//
//   - Board is a Width×Height rectangle of tiles with row-major indexing.
//   - Direction is one of Right, Up, Left, Down, in the same order as the
//     labels of tensor.Direction() (">", "^", "<", "v").
//   - Offsets follow the Conn4 neighbourhood; the sign of the y offset is a
//     rendering convention chosen by the caller (yDirMeansDown).
//   - Reflect maps a heading through a mirror at a multiple of 45°.
//
// Angles:
//
//   - Degrees are measured from Right, counterclockwise: Right=0, Up=90,
//     Left=180, Down=270.
//
// Complexity:
//
//   - Every operation is O(1) except Tiles, which is O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: non-positive width or height.
//   - ErrBadAngle: an angle that does not land on one of the four headings.
//   - ErrUnknownDirection: a label outside ">", "^", "<", "v".
package grid
