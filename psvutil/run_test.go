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

package psvutil

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/lnashier/viper"

	"github.com/franceng/psvcalc"
)

func TestBoundaryConversions(t *testing.T) {
	// 200 °F = 366.483 K.
	T := temperatureFromF(200)
	if math.Abs(T.Value()-366.4833333) > 1e-6 {
		t.Errorf("temperature: have %g K, want 366.483", T.Value())
	}
	// 150 psig = 164.7 psia.
	P := pressureFromPsig(150)
	if want := 164.7 * paPerPsi; math.Abs(P.Value()-want) > 1e-6 {
		t.Errorf("pressure: have %g Pa, want %g", P.Value(), want)
	}
}

func TestProps(t *testing.T) {
	cfg := viper.New()
	cfg.Set("Fluid.Components", []string{"methane"})
	cfg.Set("Fluid.MoleFractions", []string{"1.0"})
	cfg.Set("Fluid.TemperatureF", 200.0)
	cfg.Set("Fluid.PressurePsig", 150.0)

	b, err := Props(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(b.MW-16.043) > 1e-9 {
		t.Errorf("MW: have %g, want 16.043", b.MW)
	}
	// Methane well above its critical temperature is near-ideal vapor.
	if b.Z < 0.95 || b.Z > 1.0 {
		t.Errorf("Z: have %g, want near 1", b.Z)
	}
	if b.Flash.Phase != "vapor" {
		t.Errorf("phase: have %q, want vapor", b.Flash.Phase)
	}
	if b.LFL == nil || b.UFL == nil {
		t.Error("methane must have flammability limits")
	}
}

func TestSize(t *testing.T) {
	cfg := viper.New()
	cfg.Set("Fluid.Preset", "propane")
	cfg.Set("Fluid.TemperatureF", 200.0)
	cfg.Set("Fluid.PressurePsig", 150.0)
	cfg.Set("Scenario", psvcalc.ScenarioBlockedVapor)
	cfg.Set("SetPressurePsig", 150.0)
	cfg.Set("FlowRate", 10000.0)

	r, err := Size(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if r.Scenario != psvcalc.ScenarioBlockedVapor {
		t.Errorf("scenario: have %q", r.Scenario)
	}
	if math.Abs(r.RelievingPressurePsia-179.7) > 0.05 {
		t.Errorf("relieving pressure: have %g, want 179.7", r.RelievingPressurePsia)
	}
	if r.ReliefRateLbHr != 10000 {
		t.Errorf("relief rate: have %g, want 10000", r.ReliefRateLbHr)
	}
	if r.RequiredAreaIn2 <= 0 || r.SelectedOrifice.Letter == "" {
		t.Errorf("sizing incomplete: area %g, orifice %q", r.RequiredAreaIn2, r.SelectedOrifice.Letter)
	}
}

func TestSizeFireWithVessel(t *testing.T) {
	cfg := viper.New()
	cfg.Set("Fluid.Preset", "propane")
	cfg.Set("Fluid.TemperatureF", 200.0)
	cfg.Set("Fluid.PressurePsig", 150.0)
	cfg.Set("Scenario", psvcalc.ScenarioFireWetted)
	cfg.Set("SetPressurePsig", 150.0)
	cfg.Set("LatentHeatBTULb", 140.0)
	cfg.Set("Vessel.DiameterFt", 10.0)
	cfg.Set("Vessel.LengthFt", 20.0)
	cfg.Set("Vessel.LiquidLevelFraction", 0.5)

	r, err := Size(cfg)
	if err != nil {
		t.Fatal(err)
	}
	want := psvcalc.WettedAreaHorizontalVessel(10, 20, 0.5)
	if math.Abs(r.WettedAreaFt2-want) > 1e-9 {
		t.Errorf("wetted area: have %g, want %g", r.WettedAreaFt2, want)
	}
	if r.HeatInputBTUHr <= 0 {
		t.Errorf("heat input: have %g, want > 0", r.HeatInputBTUHr)
	}
	// Fire cases relieve at 21% accumulation.
	if math.Abs(r.RelievingPressurePsia-196.2) > 0.05 {
		t.Errorf("relieving pressure: have %g, want 196.2", r.RelievingPressurePsia)
	}
}

func TestPrintProperties(t *testing.T) {
	cfg := viper.New()
	cfg.Set("Fluid.Components", []string{"methane"})
	cfg.Set("Fluid.MoleFractions", []string{"1.0"})
	b, err := Props(cfg)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := PrintProperties(&buf, b); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"Molecular weight", "Compressibility Z", "LFL", "Phase"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintSizing(t *testing.T) {
	r, err := psvcalc.Calculate(psvcalc.ScenarioBlockedVapor, 150,
		psvcalc.FluidProperties{}, nil, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := PrintSizing(&buf, r); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"Scenario", "Relieving pressure", "Selected orifice"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "WARNING") {
		t.Error("default blocked-vapor case should fit a standard orifice")
	}
}

func TestPrintTables(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintComponents(&buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "methane") {
		t.Error("component table missing methane")
	}

	buf.Reset()
	if err := PrintOrifices(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "D") || !strings.Contains(out, "T") {
		t.Error("orifice table missing letter designations")
	}
}
