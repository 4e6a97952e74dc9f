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

// Package thermo implements a Peng-Robinson equation-of-state
// property engine for hydrocarbon/inert-gas mixtures. It computes
// compressibility, density, heat-capacity ratio, flammability limits,
// and an approximate vapor/liquid phase split from a mixture
// composition, temperature, and pressure.
//
// All calculations are pure functions of their inputs; the only
// shared state is the read-only reference tables, so the package is
// safe for use from any number of goroutines.
package thermo

// PropertyBundle holds all thermodynamic properties computed for a
// mixture at one temperature and pressure.
type PropertyBundle struct {
	MW      float64  // g/mol
	Z       float64  // compressibility factor
	Density float64  // kg/m³
	Gamma   float64  // Cp/Cv
	CpIdeal float64  // J/(mol·K)
	LFL     *float64 // vol %; nil if no flammable component
	UFL     *float64 // vol %; nil if no flammable component
	Flash   Flash
	T       float64 // K
	P       float64 // Pa
}

// Properties computes the full property bundle for a mixture at
// temperature T [K] and pressure P [Pa]. Bulk properties (Z, density)
// are evaluated for the phase holding the majority of the moles
// according to the flash estimate. It returns an
// *InvalidCompositionError if the composition cannot be used.
func Properties(componentNames []string, moleFractions []float64, T, P float64) (*PropertyBundle, error) {
	pr, err := NewPengRobinson(componentNames, moleFractions)
	if err != nil {
		return nil, err
	}

	flash := pr.FlashEstimate(T, P)
	phase := PhaseLiquid
	if flash.VaporFraction > 0.5 {
		phase = PhaseVapor
	}

	b := &PropertyBundle{
		MW:      pr.MW(),
		Z:       pr.Compressibility(T, P, phase),
		Density: pr.Density(T, P, phase),
		Gamma:   pr.Gamma(T, P),
		CpIdeal: pr.CpIdeal(T),
		Flash:   flash,
		T:       T,
		P:       P,
	}
	if lfl, ok := pr.LFL(); ok {
		b.LFL = &lfl
	}
	if ufl, ok := pr.UFL(); ok {
		b.UFL = &ufl
	}
	return b, nil
}
