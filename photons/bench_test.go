// SPDX-License-Identifier: MIT

package photons_test

import (
	"testing"

	"github.com/katalvlaran/qtensor/elements"
	"github.com/katalvlaran/qtensor/photons"
)

// BenchmarkPropagate_TwoPhotons steps a symmetrized pair on a 16×16 board.
func BenchmarkPropagate_TwoPhotons(b *testing.B) {
	p, err := photons.New(16, 16)
	if err != nil {
		b.Fatal(err)
	}
	if err := p.AddPhotonIndicator(0, 8, ">", "H"); err != nil {
		b.Fatal(err)
	}
	if err := p.AddPhotonIndicator(15, 7, "<", "V"); err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := p.Copy()
		_ = c.Propagate()
	}
}

// BenchmarkActOnSinglePhotons applies a row of beam splitters on a 16×16 board.
func BenchmarkActOnSinglePhotons(b *testing.B) {
	p, err := photons.New(16, 16)
	if err != nil {
		b.Fatal(err)
	}
	if err := p.AddPhotonIndicator(0, 0, ">", "H"); err != nil {
		b.Fatal(err)
	}
	bs, err := elements.BeamSplitter(45)
	if err != nil {
		b.Fatal(err)
	}
	interactions := make([]photons.Interaction, 16)
	for x := range interactions {
		interactions[x] = photons.Interaction{X: x, Y: 0, Op: bs}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := p.Copy()
		_ = c.ActOnSinglePhotons(interactions)
	}
}
