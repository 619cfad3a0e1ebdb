// SPDX-License-Identifier: MIT

package elements

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qtensor/grid"
	"github.com/katalvlaran/qtensor/scalar"
	"github.com/katalvlaran/qtensor/tensor"
)

// DefaultSugarRotation is the polarization rotation of SugarSolution: τ/8.
const DefaultSugarRotation = scalar.Tau / 8

// HalfIntensity is the amplitude factor of an attenuator absorbing half of
// the probability.
const HalfIntensity = math.Sqrt2 / 2

var (
	dirPolAxes = []*tensor.Dimension{tensor.Direction(), tensor.Polarization()}
	idDir      = tensor.Identity(dirAxis)
	idPol      = tensor.Identity(polAxis)
	idDirPol   = tensor.Identity(dirPolAxes)
)

// everywhere tensors a polarization operator with the identity on direction.
func everywhere(pol *tensor.Operator) *tensor.Operator {
	return must(idDir.Outer(pol))
}

// Mirror reflects headings meeting its surface (at angle degrees) with a
// denser-medium phase; headings parallel to the surface pass unchanged.
// Errors: ErrBadAngle.
func Mirror(angle int) (*tensor.Operator, error) {
	reflected, parallel, err := reflectionSplit(angle)
	if err != nil {
		return nil, elementErrorf("Mirror", err)
	}

	return tensor.AddOperators(
		must(reflected.Outer(ReflectPhaseFromDenser())),
		must(parallel.Outer(idPol)),
	)
}

// BeamSplitter transmits and reflects every heading meeting its surface with
// equal amplitude 1/√2, the reflected branch carrying a factor i and the
// denser-medium phase. Parallel headings pass unchanged.
// Errors: ErrBadAngle.
func BeamSplitter(angle int) (*tensor.Operator, error) {
	reflected, _, err := reflectionSplit(angle)
	if err != nil {
		return nil, elementErrorf("BeamSplitter", err)
	}
	through, err := BeamSplitterTransmissionDirections(angle)
	if err != nil {
		return nil, elementErrorf("BeamSplitter", err)
	}

	return tensor.AddOperators(
		must(reflected.Outer(ReflectPhaseFromDenser())).MulConstant(complex(0, math.Sqrt2/2)),
		must(through.Outer(idPol)),
	)
}

// PolarizingBeamSplitter transmits H and reflects V off a surface at angle
// degrees. V on headings parallel to the surface passes unchanged.
// Errors: ErrBadAngle.
func PolarizingBeamSplitter(angle int) (*tensor.Operator, error) {
	reflected, parallel, err := reflectionSplit(angle)
	if err != nil {
		return nil, elementErrorf("PolarizingBeamSplitter", err)
	}
	projH := must(tensor.Indicator(polAxis, []string{"H"}))
	projV := must(tensor.Indicator(polAxis, []string{"V"}))
	redirect := must(reflected.Add(parallel))

	return must(idDir.Outer(projH)).Add(must(redirect.Outer(projV)))
}

// CornerCube sends every heading back the way it came.
func CornerCube() *tensor.Operator {
	back := directionMap(grid.Direction.Opposite, func(grid.Direction) bool { return true })

	return must(back.Outer(idPol))
}

// AmplitudeIntensity multiplies every amplitude by r·exp(i·rotation): the
// photon keeps probability r² and picks up a phase of rotation radians.
// Errors: ErrAmplitude when r is outside [0, 1].
func AmplitudeIntensity(r, rotation float64) (*tensor.Operator, error) {
	op, err := uniform(r, rotation)
	if err != nil {
		return nil, elementErrorf("AmplitudeIntensity", err)
	}

	return op, nil
}

// Attenuator multiplies every amplitude by r; the absorbed probability is 1−r².
// Errors: ErrAmplitude when r is outside [0, 1].
func Attenuator(r float64) (*tensor.Operator, error) {
	op, err := uniform(r, 0)
	if err != nil {
		return nil, elementErrorf("Attenuator", err)
	}

	return op, nil
}

func uniform(r, rotation float64) (*tensor.Operator, error) {
	if r < 0 || r > 1 || math.IsNaN(r) {
		return nil, fmt.Errorf("r=%g: %w", r, ErrAmplitude)
	}

	return idDirPol.MulConstant(scalar.FromPolar(r, rotation)), nil
}

// VacuumJar delays the photon by a quarter turn of phase: exp(−iτ/4).
func VacuumJar() *tensor.Operator {
	return must(uniform(1, -scalar.Tau/4))
}

// GlassSlab advances the photon by a quarter turn of phase: exp(+iτ/4).
func GlassSlab() *tensor.Operator {
	return must(uniform(1, scalar.Tau/4))
}

// SugarSolution rotates polarization by rotation radians on every heading.
func SugarSolution(rotation float64) *tensor.Operator {
	return everywhere(must(RotationMatrix(rotation, tensor.Polarization())))
}

// Polarizer lets through only the polarization component at orientation
// radians (0 is H), on every heading.
func Polarizer(orientation float64) *tensor.Operator {
	return everywhere(must(ProjectionMatrix(orientation, tensor.Polarization())))
}

// PhasePlate retards the polarization component at orientation radians by
// phase radians relative to the orthogonal component.
func PhasePlate(orientation, phase float64) *tensor.Operator {
	return everywhere(must(PhaseShiftForRealEigenvectors(orientation, phase, 0, tensor.Polarization())))
}

// onAxis applies pol to headings along the axis at angle degrees (both
// ways); perpendicular headings run in the element's plane and pass
// unchanged.
func onAxis(angle int, pol *tensor.Operator) *tensor.Operator {
	axis := must(alongAxis(angle))
	across := must(idDir.Sub(axis))

	return must(tensor.AddOperators(must(axis.Outer(pol)), must(across.Outer(idPol))))
}

// PolarizerWE is a polarizer at orientation radians facing photons moving
// west-east (headings ">" and "<"); "^" and "v" pass unchanged.
func PolarizerWE(orientation float64) *tensor.Operator {
	return onAxis(0, must(ProjectionMatrix(orientation, tensor.Polarization())))
}

// PolarizerNS is PolarizerWE for photons moving north-south.
func PolarizerNS(orientation float64) *tensor.Operator {
	return onAxis(90, must(ProjectionMatrix(orientation, tensor.Polarization())))
}

// QuarterWavePlateWE is a quarter-wave plate at orientation radians facing
// photons moving west-east; "^" and "v" pass unchanged.
func QuarterWavePlateWE(orientation float64) *tensor.Operator {
	return onAxis(0, must(PhaseShiftForRealEigenvectors(orientation, scalar.Tau/4, 0, tensor.Polarization())))
}

// QuarterWavePlateNS is QuarterWavePlateWE for photons moving north-south.
func QuarterWavePlateNS(orientation float64) *tensor.Operator {
	return onAxis(90, must(PhaseShiftForRealEigenvectors(orientation, scalar.Tau/4, 0, tensor.Polarization())))
}

// QuarterWavePlate is a PhasePlate with a τ/4 retardation.
func QuarterWavePlate(orientation float64) *tensor.Operator {
	return PhasePlate(orientation, scalar.Tau/4)
}

// HalfWavePlate is a PhasePlate with a τ/2 retardation.
func HalfWavePlate(orientation float64) *tensor.Operator {
	return PhasePlate(orientation, scalar.Tau/2)
}

// FaradayRotator rotates polarization by rotation radians for photons heading
// along d and by −rotation for photons heading the opposite way.
// Perpendicular headings pass unchanged.
// Errors: ErrUnknownDirection.
func FaradayRotator(d grid.Direction, rotation float64) (*tensor.Operator, error) {
	if !d.Valid() {
		return nil, elementErrorf("FaradayRotator", fmt.Errorf("%v: %w", d, ErrUnknownDirection))
	}
	forward := must(tensor.Indicator(dirAxis, []string{d.Label()}))
	backward := must(tensor.Indicator(dirAxis, []string{d.Opposite().Label()}))
	across := must(must(idDir.Sub(forward)).Sub(backward))
	pol := tensor.Polarization()

	return tensor.AddOperators(
		must(forward.Outer(must(RotationMatrix(rotation, pol)))),
		must(backward.Outer(must(RotationMatrix(-rotation, pol)))),
		must(across.Outer(idPol)),
	)
}

// Detector absorbs the photon entirely.
func Detector() *tensor.Operator {
	return tensor.Zeros(dirPolAxes, dirPolAxes)
}
