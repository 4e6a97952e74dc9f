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

import "math"

// BlockedOutletReliefRate returns the required relief rate [lb/hr]
// for a blocked-outlet scenario: the upstream supply rate less any
// outlet flow that remains available. For a fully blocked outlet the
// normal flow is zero.
func BlockedOutletReliefRate(upstreamFlowLbHr, normalFlowLbHr float64) float64 {
	return upstreamFlowLbHr - normalFlowLbHr
}

// CVFailureFlow returns the liquid flow [US gpm] through a
// failed-open control valve with flow coefficient Cv:
//
//	Q = Cv·√(ΔP/G)
//
// It returns 0 when the pressure differential is non-positive.
func CVFailureFlow(Cv, P1Psia, P2Psia, G float64) float64 {
	deltaP := P1Psia - P2Psia
	if deltaP <= 0 {
		return 0
	}
	return Cv * math.Sqrt(deltaP/G)
}
