// SPDX-License-Identifier: MIT

package photons

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/qtensor/tensor"
)

// Interaction places a single-photon operator over [direction, polarization]
// on tile (X, Y).
type Interaction struct {
	X, Y int
	Op   *tensor.Operator
}

// CreateLocalizedOperator returns |x,y⟩⟨x,y| ⊗ op over
// [x, y, direction, polarization]: op acting on tile (x,y) only, zero elsewhere.
// Errors: ErrOutOfBoard, ErrNilOperator, tensor.ErrDimensionMismatch when op
// is not over [direction, polarization].
func (p *Photons) CreateLocalizedOperator(op *tensor.Operator, x, y int) (*tensor.Operator, error) {
	if op == nil {
		return nil, photonsErrorf(opLocalize, ErrNilOperator)
	}
	if err := p.checkTile(x, y); err != nil {
		return nil, photonsErrorf(opLocalize, err)
	}
	local := p.photonDims()[2:]
	if err := tensor.CheckDimensions(op.DimensionsIn(), local); err != nil {
		return nil, photonsErrorf(opLocalize, err)
	}
	if err := tensor.CheckDimensions(op.DimensionsOut(), local); err != nil {
		return nil, photonsErrorf(opLocalize, err)
	}
	tile, err := tensor.Indicator([]*tensor.Dimension{p.dimX, p.dimY}, []string{strconv.Itoa(x), strconv.Itoa(y)})
	if err != nil {
		return nil, photonsErrorf(opLocalize, err)
	}

	localized, err := tile.Outer(op)
	if err != nil {
		return nil, photonsErrorf(opLocalize, err)
	}

	return localized, nil
}

// CreateSinglePhotonInteraction returns 1 + Σ localize(op_i − 1, x_i, y_i):
// identity on tiles without an element and exactly op_i on tile i.
// Errors: ErrDuplicatePosition when two interactions share a tile, plus those
// of CreateLocalizedOperator.
func (p *Photons) CreateSinglePhotonInteraction(interactions []Interaction) (*tensor.Operator, error) {
	local := tensor.Identity(p.photonDims()[2:])
	terms := make([]*tensor.Operator, 0, len(interactions)+1)
	terms = append(terms, tensor.Identity(p.photonDims()))
	seen := make(map[int]struct{}, len(interactions))
	for _, in := range interactions {
		if err := p.checkTile(in.X, in.Y); err != nil {
			return nil, photonsErrorf(opInteraction, err)
		}
		idx := p.board.Index(in.X, in.Y)
		if _, dup := seen[idx]; dup {
			return nil, photonsErrorf(opInteraction,
				fmt.Errorf("tile (%d,%d): %w", in.X, in.Y, ErrDuplicatePosition))
		}
		seen[idx] = struct{}{}
		if in.Op == nil {
			return nil, photonsErrorf(opInteraction, ErrNilOperator)
		}
		delta, err := in.Op.Sub(local)
		if err != nil {
			return nil, photonsErrorf(opInteraction, err)
		}
		term, err := p.CreateLocalizedOperator(delta, in.X, in.Y)
		if err != nil {
			return nil, photonsErrorf(opInteraction, err)
		}
		terms = append(terms, term)
	}
	op, err := tensor.AddOperators(terms...)
	if err != nil {
		return nil, photonsErrorf(opInteraction, err)
	}

	return op, nil
}

// ActOnSinglePhotons applies the interactions to every photon block.
// Errors: those of CreateSinglePhotonInteraction; the state is unchanged on error.
func (p *Photons) ActOnSinglePhotons(interactions []Interaction) error {
	op, err := p.CreateSinglePhotonInteraction(interactions)
	if err != nil {
		return photonsErrorf(opAct, err)
	}
	next, err := p.applyPerPhoton(op)
	if err != nil {
		return photonsErrorf(opAct, err)
	}
	before := p.state.NormSquared()
	p.state = next
	p.log.Debug().
		Int("interactions", len(interactions)).
		Int("entries", next.Len()).
		Float64("absorbed", before-next.NormSquared()).
		Msg("interactions applied")

	return nil
}
