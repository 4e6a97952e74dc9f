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

import "math"

// Flash holds the result of the single-pass flash estimate.
type Flash struct {
	VaporFraction  float64
	LiquidFraction float64
	Phase          Phase
	K              []float64 // Wilson K-value per component
}

// FlashEstimate performs a single-pass phase split estimate at T [K]
// and P [Pa] using Wilson-correlation K-values. When the mixture is
// two-phase the vapor fraction is a linear interpolation between the
// ΣKz and Σz/K checks, clamped to [0,1], not an iterative
// Rachford-Rice solution.
func (pr *PengRobinson) FlashEstimate(T, P float64) Flash {
	n := len(pr.comps)
	K := make([]float64, n)
	for i, c := range pr.comps {
		K[i] = (c.Pc / P) * math.Exp(5.373*(1+c.Omega)*(1-c.Tc/T))
	}

	var sumKz, sumZK float64
	for i := 0; i < n; i++ {
		sumKz += K[i] * pr.z[i]
		sumZK += pr.z[i] / K[i]
	}

	switch {
	case sumKz <= 1.0:
		return Flash{VaporFraction: 0, LiquidFraction: 1, Phase: PhaseLiquid, K: K}
	case sumZK <= 1.0:
		return Flash{VaporFraction: 1, LiquidFraction: 0, Phase: PhaseVapor, K: K}
	default:
		VF := 0.5
		if sumKz != sumZK {
			VF = (sumKz - 1) / (sumKz - sumZK)
		}
		VF = math.Max(0, math.Min(1, VF))
		return Flash{VaporFraction: VF, LiquidFraction: 1 - VF, Phase: PhaseTwoPhase, K: K}
	}
}

// LFL returns the mixture lower flammability limit [vol %] by
// Le Chatelier's rule. ok is false when no component in the mixture
// carries a lower limit.
func (pr *PengRobinson) LFL() (lfl float64, ok bool) {
	return pr.leChatelier(func(c *Component) float64 { return c.LFL })
}

// UFL returns the mixture upper flammability limit [vol %] by
// Le Chatelier's rule. ok is false when no component in the mixture
// carries an upper limit.
func (pr *PengRobinson) UFL() (ufl float64, ok bool) {
	return pr.leChatelier(func(c *Component) float64 { return c.UFL })
}

func (pr *PengRobinson) leChatelier(limit func(*Component) float64) (float64, bool) {
	var weightedInv, totalFlammable float64
	for i, c := range pr.comps {
		if l := limit(c); l > 0 {
			weightedInv += pr.z[i] / l
			totalFlammable += pr.z[i]
		}
	}
	if weightedInv > 0 && totalFlammable > 0 {
		return totalFlammable / weightedInv, true
	}
	return 0, false
}
