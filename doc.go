// Package qtensor is a sparse, named-dimension tensor engine for simulating
// photons on a 2D board.
//
// What is qtensor?
//
//	A small library that brings together:
//		• Named axes: dimensions with human-readable coordinate labels
//		• Sparse kets and operators with dimension-checked algebra
//		• Tensor products and partial application ("identity elsewhere")
//		• A catalogue of optical elements (mirrors, splitters, plates, ...)
//		• A one- and two-photon simulation with measurement aggregates
//
// Everything is organized under five subpackages, leaves first:
//
//	scalar/   - complex amplitude helpers and cartesian/polar formatting
//	tensor/   - Dimension, Vector, Operator, msgpack codec, gonum diagnostics
//	grid/     - board geometry and the four headings
//	elements/ - optical elements as operators over [direction, polarization]
//	photons/  - the photon state machine: add, propagate, interact, measure
//
// Quick example, a photon passing one tile and hitting a mirror:
//
//	    0   1   2
//	  ┌───┬───┬───┐
//	0 │ → │ / │   │
//	  └───┴───┴───┘
//
//	p, _ := photons.New(3, 1)
//	_ = p.AddPhotonIndicator(0, 0, ">", "H")
//	_ = p.Propagate()
//	m, _ := elements.Mirror(45)
//	_ = p.ActOnSinglePhotons([]photons.Interaction{{X: 1, Y: 0, Op: m}})
//	fmt.Println(p.KetString()) // (-1.00 +0.00i) |1,0,^,H⟩
//
//	go get github.com/katalvlaran/qtensor
package qtensor
