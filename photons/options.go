// SPDX-License-Identifier: MIT

package photons

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/qtensor/tensor"
)

const (
	// DefaultEpsilon is the tolerance of the orthogonality check.
	DefaultEpsilon = tensor.DefaultEpsilon
	// DefaultYDirMeansDown makes "v" move toward larger y, as on a screen.
	DefaultYDirMeansDown = true
)

const (
	panicEpsilonInvalid = "photons: WithEpsilon: eps must be positive and finite"
)

// Option configures a Photons simulation.
type Option func(*Options)

// Options holds the settings of a simulation.
type Options struct {
	Logger        zerolog.Logger
	Epsilon       float64
	YDirMeansDown bool
}

// DefaultOptions returns a silent logger, DefaultEpsilon and DefaultYDirMeansDown.
func DefaultOptions() Options {
	return Options{
		Logger:        zerolog.Nop(),
		Epsilon:       DefaultEpsilon,
		YDirMeansDown: DefaultYDirMeansDown,
	}
}

// WithLogger sets the logger; the simulation logs under component=photons.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithEpsilon sets the orthogonality tolerance. Panics unless eps > 0 and finite.
func WithEpsilon(eps float64) Option {
	if !(eps > 0) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.Epsilon = eps }
}

// WithYDirMeansDown selects the y convention used by Propagate.
func WithYDirMeansDown(down bool) Option {
	return func(o *Options) { o.YDirMeansDown = down }
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
