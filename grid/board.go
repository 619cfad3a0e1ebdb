// SPDX-License-Identifier: MIT

package grid

import "fmt"

// Tile is one board cell.
type Tile struct {
	X, Y int
}

// Board is an immutable Width×Height rectangle of tiles.
type Board struct {
	Width, Height int
}

// NewBoard validates the size of a board.
// Returns ErrEmptyGrid if width or height is not positive.
func NewBoard(width, height int) (Board, error) {
	if width <= 0 || height <= 0 {
		return Board{}, fmt.Errorf("NewBoard(%d, %d): %w", width, height, ErrEmptyGrid)
	}

	return Board{Width: width, Height: height}, nil
}

// InBounds reports whether (x,y) lies within the board.
// Complexity: O(1).
func (b Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// Size returns the number of tiles.
func (b Board) Size() int { return b.Width * b.Height }

// Index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (b Board) Index(x, y int) int {
	return y*b.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (b Board) Coordinate(idx int) (x, y int) {
	return idx % b.Width, idx / b.Width
}

// Step returns the neighbour of (x,y) along d and whether it is on the board.
func (b Board) Step(x, y int, d Direction, yDirMeansDown bool) (nx, ny int, ok bool) {
	dx, dy := d.Offset(yDirMeansDown)
	nx, ny = x+dx, y+dy

	return nx, ny, b.InBounds(nx, ny)
}

// Tiles lists every tile in row-major order.
// Complexity: O(W×H).
func (b Board) Tiles() []Tile {
	out := make([]Tile, 0, b.Size())
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			out = append(out, Tile{X: x, Y: y})
		}
	}

	return out
}
