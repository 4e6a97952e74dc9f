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

// Defaults for the unwetted fire case.
const (
	// FireTempR is the open-pool-fire flame temperature [°R]
	// (1460°F) per API 521.
	FireTempR = 1920
	// DefaultVesselWallTempR is the default unwetted vessel wall
	// temperature [°R] (700°F).
	DefaultVesselWallTempR = 1160
	// DefaultEmissivity is the default surface emissivity for
	// oxidized steel.
	DefaultEmissivity = 0.9
)

// stefanBoltzmann is the Stefan-Boltzmann constant
// [BTU/(hr·ft²·°R⁴)].
const stefanBoltzmann = 0.1714e-8

// FireHeatInputWetted returns the fire heat input [BTU/hr] to a
// wetted surface per API 521:
//
//	Q = 21000·F·A^0.82   (adequate drainage, A ≤ 2800 ft²)
//	Q = 34500·F·A^0.82   (adequate drainage, A > 2800 ft²)
//	Q = 20000·F·A        (inadequate drainage)
//
// An insulated vessel takes insulation credit by capping the
// environmental factor at 0.3 regardless of the supplied value.
func FireHeatInputWetted(wettedAreaFt2 float64, insulated bool, FEnv float64, adequateDrainage bool) float64 {
	if insulated {
		FEnv = math.Min(FEnv, 0.3)
	}
	switch {
	case adequateDrainage && wettedAreaFt2 <= 2800:
		return 21000 * FEnv * math.Pow(wettedAreaFt2, 0.82)
	case adequateDrainage:
		return 34500 * FEnv * math.Pow(wettedAreaFt2, 0.82)
	default:
		return 20000 * FEnv * wettedAreaFt2
	}
}

// FireHeatInputUnwetted returns the fire heat input [BTU/hr] to an
// unwetted (vapor space) surface by Stefan-Boltzmann radiation:
//
//	Q = σ·ε·A·(T_fire⁴ − T_vessel⁴)
//
// with the fire temperature fixed at 1920°R per API 521.
func FireHeatInputUnwetted(surfaceAreaFt2, TVesselR, emissivity float64) float64 {
	return stefanBoltzmann * emissivity * surfaceAreaFt2 *
		(math.Pow(FireTempR, 4) - math.Pow(TVesselR, 4))
}

// VaporReliefRateFire returns the vapor relief rate [lb/hr] generated
// by a fire heat input Q [BTU/hr] boiling liquid with the given
// latent heat [BTU/lb]: W = Q/λ.
func VaporReliefRateFire(QBtuHr, latentHeatBtuLb float64) float64 {
	return QBtuHr / latentHeatBtuLb
}

// WettedAreaHorizontalVessel returns the fire-wetted surface area
// [ft²] of a horizontal cylindrical vessel with the given diameter
// and tan-tan length [ft], filled to liquidLevelFraction of its
// diameter. The shell contribution uses circular-segment geometry
// and the two heads are treated as flat circles.
func WettedAreaHorizontalVessel(diameterFt, lengthFt, liquidLevelFraction float64) float64 {
	R := diameterFt / 2
	h := liquidLevelFraction * diameterFt

	theta := 2 * math.Pi
	if h <= diameterFt {
		theta = 2 * math.Acos((R-h)/R)
	}

	arcLength := R * theta
	shellArea := arcLength * lengthFt

	segmentArea := (R * R / 2) * (theta - math.Sin(theta))
	headArea := 2 * segmentArea

	return shellArea + headArea
}

// WettedAreaVerticalVessel returns the fire-wetted surface area [ft²]
// of a vertical cylindrical vessel with the given diameter and total
// height [ft] holding liquid to liquidHeightFt. The bottom head is
// treated as a flat circle.
func WettedAreaVerticalVessel(diameterFt, heightFt, liquidHeightFt float64) float64 {
	R := diameterFt / 2
	shellArea := math.Pi * diameterFt * math.Min(liquidHeightFt, heightFt)
	bottomHead := math.Pi * R * R
	return shellArea + bottomHead
}
