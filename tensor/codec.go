// SPDX-License-Identifier: MIT

// Package tensor - msgpack encoding of vectors and operators.
//
// Purpose:
//   - Give callers a compact, self-describing snapshot of a state (dimensions
//     with labels plus sparse entries) for undo stacks or transport.
//
// Decoding re-validates every entry and maps canonical axes back onto the
// shared singletons, so decoded values interoperate with freshly built ones.

package tensor

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

type wireDimension struct {
	Name   string   `msgpack:"name"`
	Coords []string `msgpack:"coords"`
}

type wireVectorEntry struct {
	Coord []int   `msgpack:"c"`
	Re    float64 `msgpack:"re"`
	Im    float64 `msgpack:"im"`
}

type wireVector struct {
	Dimensions []wireDimension   `msgpack:"dims"`
	Entries    []wireVectorEntry `msgpack:"entries"`
}

type wireOperatorEntry struct {
	Out []int   `msgpack:"o"`
	In  []int   `msgpack:"i"`
	Re  float64 `msgpack:"re"`
	Im  float64 `msgpack:"im"`
}

type wireOperator struct {
	DimensionsOut []wireDimension     `msgpack:"dims_out"`
	DimensionsIn  []wireDimension     `msgpack:"dims_in"`
	Entries       []wireOperatorEntry `msgpack:"entries"`
}

func toWireDims(dims []*Dimension) []wireDimension {
	out := make([]wireDimension, len(dims))
	for i, d := range dims {
		out[i] = wireDimension{Name: d.name, Coords: d.CoordNames()}
	}

	return out
}

func fromWireDims(wd []wireDimension) ([]*Dimension, error) {
	out := make([]*Dimension, len(wd))
	for i, w := range wd {
		d, err := NewDimension(w.Name, w.Coords)
		if err != nil {
			return nil, err
		}
		for _, canon := range []*Dimension{directionDim, polarizationDim, spinDim} {
			if canon.Equal(d) {
				d = canon
				break
			}
		}
		out[i] = d
	}

	return out, nil
}

// EncodeVector serializes v with msgpack.
func EncodeVector(v *Vector) ([]byte, error) {
	w := wireVector{Dimensions: toWireDims(v.dimensions), Entries: make([]wireVectorEntry, len(v.entries))}
	for i, e := range v.entries {
		w.Entries[i] = wireVectorEntry{Coord: e.Coord, Re: real(e.Value), Im: imag(e.Value)}
	}

	return msgpack.Marshal(&w)
}

// DecodeVector restores a vector produced by EncodeVector.
// Errors: ErrDecode (wrapping the underlying cause).
func DecodeVector(data []byte) (*Vector, error) {
	var w wireVector
	if err := msgpack.Unmarshal(data, &w); err != nil {
		return nil, tensorErrorf(opDecode, fmt.Errorf("%w: %v", ErrDecode, err))
	}
	dims, err := fromWireDims(w.Dimensions)
	if err != nil {
		return nil, tensorErrorf(opDecode, fmt.Errorf("%w: %w", ErrDecode, err))
	}
	entries := make([]VectorEntry, len(w.Entries))
	for i, e := range w.Entries {
		entries[i] = VectorEntry{Coord: e.Coord, Value: complex(e.Re, e.Im)}
	}
	v, err := NewVector(entries, dims)
	if err != nil {
		return nil, tensorErrorf(opDecode, fmt.Errorf("%w: %w", ErrDecode, err))
	}

	return v, nil
}

// EncodeOperator serializes o with msgpack.
func EncodeOperator(o *Operator) ([]byte, error) {
	w := wireOperator{
		DimensionsOut: toWireDims(o.dimensionsOut),
		DimensionsIn:  toWireDims(o.dimensionsIn),
		Entries:       make([]wireOperatorEntry, len(o.entries)),
	}
	for i, e := range o.entries {
		w.Entries[i] = wireOperatorEntry{Out: e.CoordOut, In: e.CoordIn, Re: real(e.Value), Im: imag(e.Value)}
	}

	return msgpack.Marshal(&w)
}

// DecodeOperator restores an operator produced by EncodeOperator.
// Errors: ErrDecode (wrapping the underlying cause).
func DecodeOperator(data []byte) (*Operator, error) {
	var w wireOperator
	if err := msgpack.Unmarshal(data, &w); err != nil {
		return nil, tensorErrorf(opDecode, fmt.Errorf("%w: %v", ErrDecode, err))
	}
	dimsOut, err := fromWireDims(w.DimensionsOut)
	if err != nil {
		return nil, tensorErrorf(opDecode, fmt.Errorf("%w: %w", ErrDecode, err))
	}
	dimsIn, err := fromWireDims(w.DimensionsIn)
	if err != nil {
		return nil, tensorErrorf(opDecode, fmt.Errorf("%w: %w", ErrDecode, err))
	}
	entries := make([]OperatorEntry, len(w.Entries))
	for i, e := range w.Entries {
		entries[i] = OperatorEntry{CoordOut: e.Out, CoordIn: e.In, Value: complex(e.Re, e.Im)}
	}
	o, err := NewOperator(entries, dimsOut, dimsIn)
	if err != nil {
		return nil, tensorErrorf(opDecode, fmt.Errorf("%w: %w", ErrDecode, err))
	}

	return o, nil
}
