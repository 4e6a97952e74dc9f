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
	"math"
	"testing"
)

func TestFlashMethaneIsVapor(t *testing.T) {
	pr, err := NewPengRobinson([]string{"methane"}, []float64{1.0})
	if err != nil {
		t.Fatal(err)
	}
	// Methane's critical temperature (190.56 K) is well below 300 K.
	f := pr.FlashEstimate(300, 1e6)
	if f.Phase != PhaseVapor {
		t.Errorf("phase: have %q, want %q", f.Phase, PhaseVapor)
	}
	if f.VaporFraction != 1 || f.LiquidFraction != 0 {
		t.Errorf("vapor fraction: have %g, want 1", f.VaporFraction)
	}
	if len(f.K) != 1 || f.K[0] <= 1 {
		t.Errorf("methane K-value should be > 1, have %v", f.K)
	}
}

func TestFlashDecaneIsLiquid(t *testing.T) {
	pr, err := NewPengRobinson([]string{"n-decane"}, []float64{1.0})
	if err != nil {
		t.Fatal(err)
	}
	f := pr.FlashEstimate(300, 1e6)
	if f.Phase != PhaseLiquid {
		t.Errorf("phase: have %q, want %q", f.Phase, PhaseLiquid)
	}
	if f.VaporFraction != 0 {
		t.Errorf("vapor fraction: have %g, want 0", f.VaporFraction)
	}
}

func TestFlashTwoPhaseClamped(t *testing.T) {
	pr, err := NewPengRobinson([]string{"methane", "n-decane"}, []float64{0.5, 0.5})
	if err != nil {
		t.Fatal(err)
	}
	f := pr.FlashEstimate(300, 1e6)
	if f.Phase != PhaseTwoPhase {
		t.Errorf("phase: have %q, want %q", f.Phase, PhaseTwoPhase)
	}
	if f.VaporFraction < 0 || f.VaporFraction > 1 {
		t.Errorf("vapor fraction out of [0,1]: %g", f.VaporFraction)
	}
	if math.Abs(f.VaporFraction+f.LiquidFraction-1) > 1e-12 {
		t.Errorf("fractions do not sum to 1: %g + %g", f.VaporFraction, f.LiquidFraction)
	}
}

func TestLeChatelierLimits(t *testing.T) {
	// Natural-gas composition; hand-computed Le Chatelier values.
	pr, err := NewPengRobinson(
		[]string{"methane", "ethane", "propane", "n-butane", "co2", "nitrogen"},
		[]float64{0.85, 0.07, 0.03, 0.02, 0.02, 0.01})
	if err != nil {
		t.Fatal(err)
	}

	lfl, ok := pr.LFL()
	if !ok {
		t.Fatal("LFL should be defined for natural gas")
	}
	wantLFL := 0.97 / (0.85/5.0 + 0.07/3.0 + 0.03/2.1 + 0.02/1.8)
	if math.Abs(lfl-wantLFL) > 1e-9 {
		t.Errorf("LFL: have %g, want %g", lfl, wantLFL)
	}

	ufl, ok := pr.UFL()
	if !ok {
		t.Fatal("UFL should be defined for natural gas")
	}
	wantUFL := 0.97 / (0.85/15.0 + 0.07/12.4 + 0.03/9.5 + 0.02/8.4)
	if math.Abs(ufl-wantUFL) > 1e-9 {
		t.Errorf("UFL: have %g, want %g", ufl, wantUFL)
	}
}

func TestLimitsAbsentForInerts(t *testing.T) {
	pr, err := NewPengRobinson([]string{"nitrogen", "co2"}, []float64{0.5, 0.5})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := pr.LFL(); ok {
		t.Error("LFL should be absent for an inert mixture")
	}
	if _, ok := pr.UFL(); ok {
		t.Error("UFL should be absent for an inert mixture")
	}
}
