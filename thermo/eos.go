/*
Copyright © 2024 the PSVCalc authors.
This file is part of PSVCalc.

PSVCalc is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

PSVCalc is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with PSVCalc.  If not, see <http://www.gnu.org/licenses/>.
*/

package thermo

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// R is the universal gas constant [J/(mol·K)].
const R = 8.314462

// compositionTolerance is the allowed deviation of the mole-fraction
// sum from 1.
const compositionTolerance = 0.001

// Phase labels the fluid phase determined by the flash estimate.
type Phase string

// Possible phases.
const (
	PhaseVapor    Phase = "vapor"
	PhaseLiquid   Phase = "liquid"
	PhaseTwoPhase Phase = "two-phase"
)

// InvalidCompositionError is returned when a mixture specification
// cannot be used: the mole fractions do not sum to 1 within
// tolerance, a component name is not in the reference table, or the
// component and fraction lists have different lengths.
type InvalidCompositionError struct {
	Reason string
}

func (e *InvalidCompositionError) Error() string {
	return "thermo: invalid composition: " + e.Reason
}

// PengRobinson evaluates the Peng-Robinson cubic equation of state
// for a multicomponent mixture using van der Waals two-parameter
// mixing rules. A PengRobinson holds no mutable state after
// construction and is safe for concurrent use.
type PengRobinson struct {
	names []string
	comps []*Component
	z     []float64
	mw    float64
}

// NewPengRobinson creates an EOS evaluator for the given mixture.
// Mole fractions must sum to 1 within ±0.001; component names are
// matched case-insensitively against the reference table.
func NewPengRobinson(componentNames []string, moleFractions []float64) (*PengRobinson, error) {
	if len(componentNames) != len(moleFractions) {
		return nil, &InvalidCompositionError{Reason: fmt.Sprintf(
			"%d components but %d mole fractions", len(componentNames), len(moleFractions))}
	}
	if sum := floats.Sum(moleFractions); math.Abs(sum-1.0) > compositionTolerance {
		return nil, &InvalidCompositionError{Reason: fmt.Sprintf(
			"mole fractions must sum to 1.0, got %g", sum)}
	}

	pr := &PengRobinson{
		names: make([]string, len(componentNames)),
		comps: make([]*Component, len(componentNames)),
		z:     make([]float64, len(moleFractions)),
	}
	copy(pr.z, moleFractions)

	mws := make([]float64, len(componentNames))
	for i, name := range componentNames {
		pr.names[i] = strings.ToLower(name)
		c, ok := Lookup(name)
		if !ok {
			return nil, &InvalidCompositionError{Reason: "unknown component: " + name}
		}
		pr.comps[i] = c
		mws[i] = c.MW
	}
	pr.mw = floats.Dot(pr.z, mws)
	return pr, nil
}

// Normalize scales the mole fractions in x so that they sum to 1.
// It modifies x in place.
func Normalize(x []float64) {
	if sum := floats.Sum(x); sum != 0 {
		floats.Scale(1/sum, x)
	}
}

// MW returns the mole-fraction-weighted mixture molecular weight
// [g/mol].
func (pr *PengRobinson) MW() float64 { return pr.mw }

// alpha is the Peng-Robinson temperature correction for one
// component.
func alpha(c *Component, T float64) float64 {
	Tr := T / c.Tc
	kappa := 0.37464 + 1.54226*c.Omega - 0.26992*c.Omega*c.Omega
	v := 1 + kappa*(1-math.Sqrt(Tr))
	return v * v
}

// aPure is the attraction parameter for one component at T.
func aPure(c *Component, T float64) float64 {
	return 0.45724 * R * R * c.Tc * c.Tc / c.Pc * alpha(c, T)
}

// bPure is the covolume parameter for one component.
func bPure(c *Component) float64 {
	return 0.07780 * R * c.Tc / c.Pc
}

// MixtureParams returns the mixture attraction and covolume
// parameters (a_mix, b_mix) at temperature T [K] using van der Waals
// mixing rules with binary interaction corrections.
func (pr *PengRobinson) MixtureParams(T float64) (aMix, bMix float64) {
	n := len(pr.comps)
	a := make([]float64, n)
	b := make([]float64, n)
	for i, c := range pr.comps {
		a[i] = aPure(c, T)
		b[i] = bPure(c)
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			kij := Kij(pr.names[i], pr.names[j])
			aMix += pr.z[i] * pr.z[j] * math.Sqrt(a[i]*a[j]) * (1 - kij)
		}
	}
	bMix = floats.Dot(pr.z, b)
	return aMix, bMix
}

// Compressibility solves the Peng-Robinson cubic for the
// compressibility factor Z at T [K] and P [Pa]. For the vapor phase
// the largest root satisfying Z > B and Z > 0 is returned; for other
// phases the smallest. When no root is physically valid the
// ideal-gas value Z = 1 is returned rather than an error.
func (pr *PengRobinson) Compressibility(T, P float64, phase Phase) float64 {
	aMix, bMix := pr.MixtureParams(T)

	A := aMix * P / (R * R * T * T)
	B := bMix * P / (R * T)

	// Z³ - (1-B)Z² + (A-3B²-2B)Z - (AB-B²-B³) = 0
	p := -(1 - B)
	q := A - 3*B*B - 2*B
	r := -(A*B - B*B - B*B*B)

	var valid []float64
	for _, z := range solveCubic(p, q, r) {
		if z > B && z > 0 {
			valid = append(valid, z)
		}
	}
	if len(valid) == 0 {
		return 1.0
	}
	if phase == PhaseVapor {
		return floats.Max(valid)
	}
	return floats.Min(valid)
}

// solveCubic returns the real roots of x³ + px² + qx + r = 0 via the
// depressed-cubic substitution, using Cardano's formula when there is
// one real root and the trigonometric method when there are three.
func solveCubic(p, q, r float64) []float64 {
	a := q - p*p/3
	b := r - p*q/3 + 2*p*p*p/27

	disc := (b/2)*(b/2) + (a/3)*(a/3)*(a/3)

	var roots []float64
	if disc > 0 {
		sqrtDisc := math.Sqrt(disc)
		u := math.Cbrt(-b/2 + sqrtDisc)
		v := math.Cbrt(-b/2 - sqrtDisc)
		roots = append(roots, u+v-p/3)
	} else {
		rVal := math.Sqrt(-(a / 3) * (a / 3) * (a / 3))
		var theta float64
		if rVal != 0 {
			theta = math.Acos(-b / (2 * rVal))
		}
		for k := 0; k < 3; k++ {
			t := 2 * math.Sqrt(-a/3) * math.Cos((theta+2*math.Pi*float64(k))/3)
			roots = append(roots, t-p/3)
		}
	}

	out := roots[:0]
	for _, root := range roots {
		if !math.IsNaN(root) {
			out = append(out, root)
		}
	}
	return out
}

// Density returns the mixture density [kg/m³] at T [K] and P [Pa]
// for the given phase.
func (pr *PengRobinson) Density(T, P float64, phase Phase) float64 {
	Z := pr.Compressibility(T, P, phase)
	return P * (pr.mw / 1000) / (Z * R * T)
}

// CpIdeal estimates the ideal-gas heat capacity [J/(mol·K)] of the
// mixture at T [K] using a molecular-weight correlation,
// Cp/R = (3.5 + 0.05·MW)(1 + 0.001(T−298)), weighted by mole
// fraction. The correlation is deliberately simple; rigorous work
// would use component-specific polynomials.
func (pr *PengRobinson) CpIdeal(T float64) float64 {
	var cp float64
	for i, c := range pr.comps {
		cpI := R * (3.5 + 0.05*c.MW) * (1 + 0.001*(T-298))
		cp += pr.z[i] * cpI
	}
	return cp
}

// Gamma returns the heat capacity ratio Cp/Cv for the vapor phase,
// using the ideal-gas relation Cv = Cp − R. Falls back to 1.3 if the
// correlation produces a non-physical Cv.
func (pr *PengRobinson) Gamma(T, P float64) float64 {
	cp := pr.CpIdeal(T)
	cv := cp - R
	if cv <= 0 {
		return 1.3
	}
	return cp / cv
}
