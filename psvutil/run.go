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
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ctessum/unit"
	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"

	"github.com/franceng/psvcalc"
	"github.com/franceng/psvcalc/thermo"
)

// paPerPsi converts pounds per square inch to Pascals.
const paPerPsi = 6894.76

// temperatureFromF converts a °F boundary input to an SI quantity.
func temperatureFromF(TF float64) *unit.Unit {
	return unit.New((TF+459.67)*5/9, unit.Kelvin)
}

// pressureFromPsig converts a psig boundary input to an absolute SI
// quantity.
func pressureFromPsig(psig float64) *unit.Unit {
	return unit.New((psig+psvcalc.AtmPsia)*paPerPsi, unit.Pascal)
}

// Props computes the thermodynamic property bundle for the
// configured fluid.
func Props(cfg *viper.Viper) (*thermo.PropertyBundle, error) {
	fluid, err := FluidFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	T := temperatureFromF(fluid.TemperatureF)
	P := pressureFromPsig(fluid.PressurePsig)
	logger.WithFields(logrus.Fields{
		"components": fluid.Components,
		"T":          fmt.Sprintf("%v", T),
		"P":          fmt.Sprintf("%v", P),
	}).Debug("computing mixture properties")

	return thermo.Properties(fluid.Components, fluid.MoleFractions, T.Value(), P.Value())
}

// Size runs a relief valve sizing calculation for the configured
// scenario, computing the fluid properties first.
func Size(cfg *viper.Viper) (*psvcalc.SizingResult, error) {
	props, err := Props(cfg)
	if err != nil {
		return nil, err
	}

	fluid := psvcalc.FluidProperties{
		TF:              cfg.GetFloat64("Fluid.TemperatureF"),
		MW:              props.MW,
		Z:               props.Z,
		Gamma:           props.Gamma,
		LatentHeatBTULb: cfg.GetFloat64("LatentHeatBTULb"),
		SpecificGravity: props.Density / 1000, // relative to water
	}
	vessel := VesselFromConfig(cfg)
	scenario := cfg.GetString("Scenario")

	logger.WithFields(logrus.Fields{
		"scenario":    scenario,
		"setPressure": cfg.GetFloat64("SetPressurePsig"),
	}).Info("sizing relief valve")

	return psvcalc.Calculate(scenario, cfg.GetFloat64("SetPressurePsig"), fluid,
		vessel, cfg.GetFloat64("FlowRate"), cfg.GetFloat64("BackPressurePsig"))
}

// PrintProperties writes a property bundle as an aligned table.
func PrintProperties(w io.Writer, b *thermo.PropertyBundle) error {
	tw := tabwriter.NewWriter(w, 0, 2, 1, ' ', 0)
	fmt.Fprintf(tw, "Molecular weight\t%.2f g/mol\n", b.MW)
	fmt.Fprintf(tw, "Compressibility Z\t%.4f\n", b.Z)
	fmt.Fprintf(tw, "Density\t%v\n", unit.New(b.Density, unit.KilogramPerMeter3))
	fmt.Fprintf(tw, "Cp (ideal)\t%.2f J/(mol·K)\n", b.CpIdeal)
	fmt.Fprintf(tw, "Cp/Cv (gamma)\t%.3f\n", b.Gamma)
	if b.LFL != nil {
		fmt.Fprintf(tw, "LFL\t%.2f vol %%\n", *b.LFL)
	} else {
		fmt.Fprintf(tw, "LFL\tN/A\n")
	}
	if b.UFL != nil {
		fmt.Fprintf(tw, "UFL\t%.2f vol %%\n", *b.UFL)
	} else {
		fmt.Fprintf(tw, "UFL\tN/A\n")
	}
	fmt.Fprintf(tw, "Phase\t%s\n", b.Flash.Phase)
	fmt.Fprintf(tw, "Vapor fraction\t%.3f\n", b.Flash.VaporFraction)
	return tw.Flush()
}

// PrintSizing writes a sizing result as an aligned table.
func PrintSizing(w io.Writer, r *psvcalc.SizingResult) error {
	tw := tabwriter.NewWriter(w, 0, 2, 1, ' ', 0)
	fmt.Fprintf(tw, "Scenario\t%s\n", r.Scenario)
	switch r.Scenario {
	case psvcalc.ScenarioBlockedLiquid:
		fmt.Fprintf(tw, "Relief rate\t%.1f gpm\n", r.ReliefRateGPM)
		fmt.Fprintf(tw, "Relieving pressure\t%.1f psig\n", r.RelievingPressurePsig)
		fmt.Fprintf(tw, "Back pressure\t%.1f psig\n", r.BackPressurePsig)
		fmt.Fprintf(tw, "Specific gravity\t%.3f\n", r.SpecificGravity)
	default:
		fmt.Fprintf(tw, "Relief rate\t%.0f lb/hr\n", r.ReliefRateLbHr)
		fmt.Fprintf(tw, "Relieving pressure\t%.1f psia\n", r.RelievingPressurePsia)
		fmt.Fprintf(tw, "Back pressure\t%.1f psia\n", r.BackPressurePsia)
		fmt.Fprintf(tw, "Flow type\t%s\n", r.FlowType)
	}
	if r.HeatInputBTUHr > 0 {
		fmt.Fprintf(tw, "Fire heat input\t%.3f MMBTU/hr\n", r.HeatInputMMBTUHr)
	}
	fmt.Fprintf(tw, "Required area\t%.4f in²\n", r.RequiredAreaIn2)
	fmt.Fprintf(tw, "Selected orifice\t%s (%.3f in²)\n", r.SelectedOrifice.Letter, r.SelectedOrifice.AreaIn2)
	fmt.Fprintf(tw, "Utilization\t%.1f%%\n", r.PercentUtilization)
	if r.PercentUtilization > 100 {
		fmt.Fprintf(tw, "\tWARNING: required area exceeds the largest standard orifice\n")
	}
	return tw.Flush()
}

// PrintComponents writes the reference component table.
func PrintComponents(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 2, 1, ' ', 0)
	fmt.Fprintf(tw, "Name\tFormula\tMW\tTc [K]\tPc [Pa]\tω\tLFL\tUFL\n")
	for _, name := range thermo.Names() {
		c, _ := thermo.Lookup(name)
		lfl, ufl := "-", "-"
		if c.LFL > 0 {
			lfl = fmt.Sprintf("%.2f", c.LFL)
		}
		if c.UFL > 0 {
			ufl = fmt.Sprintf("%.2f", c.UFL)
		}
		fmt.Fprintf(tw, "%s\t%s\t%.3f\t%.2f\t%.0f\t%.4f\t%s\t%s\n",
			name, c.Formula, c.MW, c.Tc, c.Pc, c.Omega, lfl, ufl)
	}
	return tw.Flush()
}

// PrintOrifices writes the API 526 standard orifice table.
func PrintOrifices(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 2, 1, ' ', 0)
	fmt.Fprintf(tw, "Letter\tArea [in²]\tArea [mm²]\n")
	for _, o := range psvcalc.Orifices() {
		fmt.Fprintf(tw, "%s\t%.3f\t%.1f\n", o.Letter, o.AreaIn2, o.AreaMM2)
	}
	return tw.Flush()
}
