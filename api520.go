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

package psvcalc

import (
	"fmt"
	"math"
)

// Default API 520 coefficient values.
const (
	DefaultKdVapor  = 0.975 // vapor discharge coefficient
	DefaultKdLiquid = 0.65  // liquid discharge coefficient
	DefaultKb       = 1.0   // back pressure correction
	DefaultKw       = 1.0   // back pressure correction, liquid
	DefaultKc       = 1.0   // combination correction (no rupture disk)
	DefaultKv       = 1.0   // viscosity correction
)

// InvalidPressureDropError is returned by liquid sizing when the
// relieving pressure does not exceed the back pressure.
type InvalidPressureDropError struct {
	P1Psig, P2Psig float64
}

func (e *InvalidPressureDropError) Error() string {
	return fmt.Sprintf("psvcalc: relieving pressure (%g psig) must be greater than back pressure (%g psig)",
		e.P1Psig, e.P2Psig)
}

// CriticalPressureRatio returns the pressure ratio below which flow
// through the orifice is choked.
func CriticalPressureRatio(gamma float64) float64 {
	return math.Pow(2/(gamma+1), gamma/(gamma-1))
}

// IsCriticalFlow reports whether flow is critical (choked) for the
// given relieving pressure P1 [psia], back pressure P2 [psia], and
// heat capacity ratio.
func IsCriticalFlow(P1Psia, P2Psia, gamma float64) bool {
	return P2Psia/P1Psia <= CriticalPressureRatio(gamma)
}

// VaporOrificeArea returns the required orifice area [in²] for
// vapor/gas relief per API 520.
//
// For critical flow:
//
//	A = W / (C·Kd·P1·Kb·Kc) · √(T·Z/M)
//
// with C = 520·√(γ·(2/(γ+1))^((γ+1)/(γ−1))). Subcritical flow uses
// the F2 formulation with coefficient 735.
//
// W is the relief rate [lb/hr], TR the relieving temperature [°R],
// MW the molecular weight, Z the compressibility factor, P1 and P2
// the relieving and back pressures [psia].
func VaporOrificeArea(WLbHr, TR, MW, Z, gamma, P1Psia, P2Psia, Kd, Kb, Kc float64) float64 {
	C := 520 * math.Sqrt(gamma*math.Pow(2/(gamma+1), (gamma+1)/(gamma-1)))

	if IsCriticalFlow(P1Psia, P2Psia, gamma) {
		return WLbHr / (C * Kd * P1Psia * Kb * Kc) * math.Sqrt(TR*Z/MW)
	}

	r := P2Psia / P1Psia
	F2 := math.Sqrt((gamma / (gamma - 1)) * math.Pow(r, 2/gamma) *
		((1 - math.Pow(r, (gamma-1)/gamma)) / (1 - r)))
	return WLbHr / (735 * F2 * Kd * Kc) * math.Sqrt(TR*Z/(MW*P1Psia*P2Psia))
}

// LiquidOrificeArea returns the required orifice area [in²] for
// liquid relief per API 520:
//
//	A = Q / (38·Kd·Kw·Kc·Kv) · √(G/(P1−P2))
//
// Q is the relief rate [US gpm], G the specific gravity (water = 1),
// and P1, P2 the relieving and back pressures [psig]. It returns an
// *InvalidPressureDropError when P1 ≤ P2.
func LiquidOrificeArea(QGpm, G, P1Psig, P2Psig, Kd, Kw, Kc, Kv float64) (float64, error) {
	deltaP := P1Psig - P2Psig
	if deltaP <= 0 {
		return 0, &InvalidPressureDropError{P1Psig: P1Psig, P2Psig: P2Psig}
	}
	return QGpm / (38 * Kd * Kw * Kc * Kv) * math.Sqrt(G/deltaP), nil
}
