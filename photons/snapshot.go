// SPDX-License-Identifier: MIT

package photons

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/katalvlaran/qtensor/tensor"
)

// snapshot is the msgpack form of a simulation state.
type snapshot struct {
	SizeX int    `msgpack:"size_x"`
	SizeY int    `msgpack:"size_y"`
	Count int    `msgpack:"count"`
	State []byte `msgpack:"state"`
}

// Snapshot serializes the board size, photon count and state with msgpack,
// for undo stacks or transport.
func (p *Photons) Snapshot() ([]byte, error) {
	state, err := tensor.EncodeVector(p.state)
	if err != nil {
		return nil, photonsErrorf(opSnapshot, err)
	}
	data, err := msgpack.Marshal(&snapshot{
		SizeX: p.board.Width,
		SizeY: p.board.Height,
		Count: p.count,
		State: state,
	})
	if err != nil {
		return nil, photonsErrorf(opSnapshot, err)
	}

	return data, nil
}

// Restore replaces the photon count and state with those of a snapshot taken
// on a board of the same size.
// Errors: ErrSnapshot on a malformed snapshot or one from another board,
// ErrUnsupportedPhotonCount, tensor.ErrDecode.
func (p *Photons) Restore(data []byte) error {
	var s snapshot
	if err := msgpack.Unmarshal(data, &s); err != nil {
		return photonsErrorf(opRestore, fmt.Errorf("%w: %v", ErrSnapshot, err))
	}
	if s.SizeX != p.board.Width || s.SizeY != p.board.Height {
		return photonsErrorf(opRestore, fmt.Errorf("board %dx%d, want %dx%d: %w",
			s.SizeX, s.SizeY, p.board.Width, p.board.Height, ErrSnapshot))
	}
	if s.Count < 0 || s.Count > MaxPhotons {
		return photonsErrorf(opRestore, fmt.Errorf("%d photons: %w", s.Count, ErrUnsupportedPhotonCount))
	}
	decoded, err := tensor.DecodeVector(s.State)
	if err != nil {
		return photonsErrorf(opRestore, err)
	}
	dims := p.stateDims(s.Count)
	if err := tensor.CheckDimensions(decoded.Dimensions(), dims); err != nil {
		return photonsErrorf(opRestore, fmt.Errorf("%w: %w", ErrSnapshot, err))
	}
	// rebuild over this simulation's own axes
	state, err := tensor.NewVector(decoded.Entries(), dims)
	if err != nil {
		return photonsErrorf(opRestore, err)
	}

	p.state = state
	p.count = s.Count
	p.log.Debug().Int("photons", p.count).Int("entries", state.Len()).Msg("state restored")

	return nil
}
