// SPDX-License-Identifier: MIT

package photons

import (
	"fmt"
	"math"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/qtensor/grid"
	"github.com/katalvlaran/qtensor/scalar"
	"github.com/katalvlaran/qtensor/tensor"
)

// MaxPhotons is the largest supported photon count.
const MaxPhotons = 2

// axesPerPhoton is the width of one photon block: x, y, direction, polarization.
const axesPerPhoton = 4

// Photons is a simulation of up to MaxPhotons photons on a board.
//   - board, dimX, dimY are fixed at construction.
//   - state is replaced, never mutated, by every successful step.
//   - count is the number of photon blocks in state.
type Photons struct {
	board grid.Board
	dimX  *tensor.Dimension
	dimY  *tensor.Dimension
	count int
	state *tensor.Vector
	opts  Options
	log   zerolog.Logger
}

// New returns an empty simulation on a sizeX×sizeY board.
// Errors: grid.ErrEmptyGrid for non-positive sizes.
func New(sizeX, sizeY int, opts ...Option) (*Photons, error) {
	board, err := grid.NewBoard(sizeX, sizeY)
	if err != nil {
		return nil, photonsErrorf(opNew, err)
	}
	dimX, err := tensor.Position(sizeX, "x")
	if err != nil {
		return nil, photonsErrorf(opNew, err)
	}
	dimY, err := tensor.Position(sizeY, "y")
	if err != nil {
		return nil, photonsErrorf(opNew, err)
	}
	o := gatherOptions(opts)

	return &Photons{
		board: board,
		dimX:  dimX,
		dimY:  dimY,
		state: tensor.EmptyVector(nil),
		opts:  o,
		log:   o.Logger.With().Str("component", "photons").Logger(),
	}, nil
}

// SizeX returns the board width.
func (p *Photons) SizeX() int { return p.board.Width }

// SizeY returns the board height.
func (p *Photons) SizeY() int { return p.board.Height }

// DimX returns the x position axis.
func (p *Photons) DimX() *tensor.Dimension { return p.dimX }

// DimY returns the y position axis.
func (p *Photons) DimY() *tensor.Dimension { return p.dimY }

// Board returns the board geometry.
func (p *Photons) Board() grid.Board { return p.board }

// Count returns the number of photons.
func (p *Photons) Count() int { return p.count }

// State returns the current joint state.
func (p *Photons) State() *tensor.Vector { return p.state }

// photonDims returns the axes of one photon block.
func (p *Photons) photonDims() []*tensor.Dimension {
	return []*tensor.Dimension{p.dimX, p.dimY, tensor.Direction(), tensor.Polarization()}
}

// stateDims returns the axes of an n-photon state.
func (p *Photons) stateDims(n int) []*tensor.Dimension {
	out := make([]*tensor.Dimension, 0, n*axesPerPhoton)
	for k := 0; k < n; k++ {
		out = append(out, p.photonDims()...)
	}

	return out
}

// photonAxes returns the first width axes of photon k's block.
func photonAxes(k, width int) []int {
	axes := make([]int, width)
	for i := range axes {
		axes[i] = k*axesPerPhoton + i
	}

	return axes
}

// checkTile reports ErrOutOfBoard unless (x,y) is on the board.
func (p *Photons) checkTile(x, y int) error {
	if !p.board.InBounds(x, y) {
		return fmt.Errorf("(%d,%d) on %dx%d: %w", x, y, p.board.Width, p.board.Height, ErrOutOfBoard)
	}

	return nil
}

// CreatePhoton returns the single-photon ket |x,y,dir,pol⟩ without touching
// the simulation state.
// Errors: ErrOutOfBoard, tensor.ErrUnknownCoordinate.
func (p *Photons) CreatePhoton(x, y int, dir, pol string) (*tensor.Vector, error) {
	if err := p.checkTile(x, y); err != nil {
		return nil, photonsErrorf(opCreatePhoton, err)
	}
	v, err := tensor.VectorIndicator(p.photonDims(), []string{strconv.Itoa(x), strconv.Itoa(y), dir, pol})
	if err != nil {
		return nil, photonsErrorf(opCreatePhoton, err)
	}

	return v, nil
}

// AddPhotonIndicator adds a photon at (x,y) with the given heading and
// polarization labels. The first photon becomes the state; the second must be
// orthogonal to it and yields the symmetrized pair (old⊗new + new⊗old)/√2.
// Errors: ErrUnsupportedPhotonCount, ErrNonOrthogonalPhotons, plus those of
// CreatePhoton.
func (p *Photons) AddPhotonIndicator(x, y int, dir, pol string) error {
	if p.count >= MaxPhotons {
		return photonsErrorf(opAddPhoton,
			fmt.Errorf("already %d photons: %w", p.count, ErrUnsupportedPhotonCount))
	}
	photon, err := p.CreatePhoton(x, y, dir, pol)
	if err != nil {
		return photonsErrorf(opAddPhoton, err)
	}

	next := photon
	if p.count == 1 {
		overlap, err := photon.Dot(p.state)
		if err != nil {
			return photonsErrorf(opAddPhoton, err)
		}
		if !scalar.IsZero(overlap, p.opts.Epsilon) {
			return photonsErrorf(opAddPhoton,
				fmt.Errorf("overlap %v with the existing photon: %w", overlap, ErrNonOrthogonalPhotons))
		}
		oldNew, err := p.state.Outer(photon)
		if err != nil {
			return photonsErrorf(opAddPhoton, err)
		}
		newOld, err := photon.Outer(p.state)
		if err != nil {
			return photonsErrorf(opAddPhoton, err)
		}
		next, err = tensor.AddVectors(oldNew, newOld)
		if err != nil {
			return photonsErrorf(opAddPhoton, err)
		}
		next = next.MulConstant(complex(math.Sqrt2/2, 0))
	}

	p.state = next
	p.count++
	p.log.Debug().
		Int("photons", p.count).
		Int("entries", p.state.Len()).
		Str("photon", fmt.Sprintf("%d,%d,%s,%s", x, y, dir, pol)).
		Msg("photon added")

	return nil
}

// applyPerPhoton applies op to the first op-arity axes of every photon block.
func (p *Photons) applyPerPhoton(op *tensor.Operator) (*tensor.Vector, error) {
	width := len(op.DimensionsIn())
	v := p.state
	for k := 0; k < p.count; k++ {
		next, err := op.MulVecPartial(photonAxes(k, width), v)
		if err != nil {
			return nil, err
		}
		v = next
	}

	return v, nil
}

// requireSingle returns ErrUnsupportedPhotonCount unless exactly one photon is present.
func (p *Photons) requireSingle() error {
	if p.count != 1 {
		return fmt.Errorf("%d photons, want 1: %w", p.count, ErrUnsupportedPhotonCount)
	}

	return nil
}

// Copy returns an independent simulation with the same board, options and state.
func (p *Photons) Copy() *Photons {
	c := *p

	return &c
}

// KetString renders the state in ket notation.
func (p *Photons) KetString(opts ...tensor.FormatOption) string {
	return p.state.Ket(opts...)
}

// String implements fmt.Stringer.
func (p *Photons) String() string {
	return fmt.Sprintf("Photons %dx%d with %d photon(s): %s", p.board.Width, p.board.Height, p.count, p.KetString())
}
