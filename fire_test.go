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
	"math"
	"testing"
)

func TestFireHeatInputWetted(t *testing.T) {
	// Adequate drainage, small area: Q = 21000·F·A^0.82.
	want := 21000 * math.Pow(500, 0.82)
	if q := FireHeatInputWetted(500, false, 1.0, true); math.Abs(q-want) > 1e-6 {
		t.Errorf("Q: have %g, want %g", q, want)
	}

	// Above 2800 ft² the coefficient switches to 34500.
	want = 34500 * math.Pow(3000, 0.82)
	if q := FireHeatInputWetted(3000, false, 1.0, true); math.Abs(q-want) > 1e-6 {
		t.Errorf("Q above 2800 ft²: have %g, want %g", q, want)
	}

	// Inadequate drainage: Q = 20000·F·A.
	if q := FireHeatInputWetted(500, false, 1.0, false); q != 20000*500 {
		t.Errorf("Q inadequate drainage: have %g, want %g", q, 20000.0*500)
	}
}

func TestFireHeatInputWettedInsulationCredit(t *testing.T) {
	bare := FireHeatInputWetted(500, false, 1.0, true)
	insulated := FireHeatInputWetted(500, true, 1.0, true)
	if math.Abs(insulated-0.3*bare) > 1e-6 {
		t.Errorf("insulation should cap F_env at 0.3: %g vs %g", insulated, 0.3*bare)
	}
	// An F_env already below the cap is kept.
	spray := FireHeatInputWetted(500, true, 0.15, true)
	if math.Abs(spray-0.15*bare) > 1e-6 {
		t.Errorf("F_env below cap should be kept: %g vs %g", spray, 0.15*bare)
	}
}

func TestFireHeatInputUnwetted(t *testing.T) {
	want := 0.1714e-8 * 0.9 * 200 * (math.Pow(1920, 4) - math.Pow(1160, 4))
	q := FireHeatInputUnwetted(200, DefaultVesselWallTempR, DefaultEmissivity)
	if math.Abs(q-want) > 1e-6 {
		t.Errorf("Q: have %g, want %g", q, want)
	}
	// Around 3.6 MMBTU/hr for 200 ft².
	if q < 3.0e6 || q > 4.5e6 {
		t.Errorf("Q magnitude looks wrong: %g", q)
	}
}

func TestVaporReliefRateFire(t *testing.T) {
	if w := VaporReliefRateFire(3e6, 150); w != 20000 {
		t.Errorf("W: have %g, want 20000", w)
	}
}

func TestWettedAreaHorizontalVessel(t *testing.T) {
	// Half-full: θ = π, hand-computed area.
	want := 5*math.Pi*20 + 2*(25.0/2)*math.Pi
	a := WettedAreaHorizontalVessel(10, 20, 0.5)
	if math.Abs(a-want) > 1e-9 {
		t.Errorf("half-full area: have %g, want %g", a, want)
	}

	// Deterministic, no hidden state.
	if a2 := WettedAreaHorizontalVessel(10, 20, 0.5); a2 != a {
		t.Errorf("repeated calls disagree: %g vs %g", a, a2)
	}

	// Strictly between zero and the full shell plus two end caps.
	full := math.Pi*10*20 + 2*math.Pi*25
	if a <= 0 || a >= full {
		t.Errorf("area %g outside (0, %g)", a, full)
	}

	// Completely full equals the full shell plus two end caps.
	if af := WettedAreaHorizontalVessel(10, 20, 1.0); math.Abs(af-full) > 1e-9 {
		t.Errorf("full vessel: have %g, want %g", af, full)
	}
}

func TestWettedAreaHorizontalVesselMonotonic(t *testing.T) {
	prev := 0.0
	for level := 0.1; level <= 1.0; level += 0.1 {
		a := WettedAreaHorizontalVessel(12, 40, level)
		if a <= prev {
			t.Fatalf("wetted area not increasing at level %g", level)
		}
		prev = a
	}
}

func TestWettedAreaVerticalVessel(t *testing.T) {
	want := math.Pi*10*5 + math.Pi*25
	if a := WettedAreaVerticalVessel(10, 20, 5); math.Abs(a-want) > 1e-9 {
		t.Errorf("area: have %g, want %g", a, want)
	}

	// Liquid height is capped at the vessel height.
	capped := WettedAreaVerticalVessel(10, 20, 25)
	if want := math.Pi*10*20 + math.Pi*25; math.Abs(capped-want) > 1e-9 {
		t.Errorf("overfilled area: have %g, want %g", capped, want)
	}
}
