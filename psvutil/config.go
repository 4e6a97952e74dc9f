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

	"github.com/BurntSushi/toml"
	"github.com/lnashier/viper"
	"github.com/spf13/cast"

	"github.com/franceng/psvcalc"
	"github.com/franceng/psvcalc/thermo"
)

// FluidSpec is the mixture and state specification assembled from
// the configuration.
type FluidSpec struct {
	Components    []string
	MoleFractions []float64
	TemperatureF  float64
	PressurePsig  float64
}

// savedFluid is one fluid composition in a FluidsFile.
type savedFluid struct {
	Components    []string  `toml:"components"`
	MoleFractions []float64 `toml:"mole_fractions"`
}

// fluidsFile is the TOML structure of a FluidsFile.
type fluidsFile struct {
	Fluids map[string]savedFluid `toml:"fluids"`
}

// loadFluidsFile reads saved fluid compositions from a TOML file.
func loadFluidsFile(path string) (map[string]savedFluid, error) {
	var ff fluidsFile
	if _, err := toml.DecodeFile(path, &ff); err != nil {
		return nil, fmt.Errorf("psvcalc: problem reading fluids file %s: %v", path, err)
	}
	return ff.Fluids, nil
}

// FluidFromConfig assembles the fluid specification from the
// configuration. A preset name (built-in or from the FluidsFile)
// takes precedence over an explicit component list. Mole fractions
// are normalized to sum to 1, matching what the calculation engine
// requires.
func FluidFromConfig(cfg *viper.Viper) (*FluidSpec, error) {
	f := &FluidSpec{
		TemperatureF: cfg.GetFloat64("Fluid.TemperatureF"),
		PressurePsig: cfg.GetFloat64("Fluid.PressurePsig"),
	}

	if preset := cfg.GetString("Fluid.Preset"); preset != "" {
		if p, ok := thermo.LookupPreset(preset); ok {
			f.Components = p.Components
			f.MoleFractions = p.MoleFractions
		} else if path := cfg.GetString("FluidsFile"); path != "" {
			saved, err := loadFluidsFile(path)
			if err != nil {
				return nil, err
			}
			sf, ok := saved[preset]
			if !ok {
				return nil, fmt.Errorf("psvcalc: unknown fluid preset %q", preset)
			}
			f.Components = sf.Components
			f.MoleFractions = sf.MoleFractions
		} else {
			return nil, fmt.Errorf("psvcalc: unknown fluid preset %q", preset)
		}
	} else {
		f.Components = cfg.GetStringSlice("Fluid.Components")
		for _, s := range cfg.GetStringSlice("Fluid.MoleFractions") {
			v, err := cast.ToFloat64E(s)
			if err != nil {
				return nil, fmt.Errorf("psvcalc: parsing mole fraction %q: %v", s, err)
			}
			f.MoleFractions = append(f.MoleFractions, v)
		}
	}

	if len(f.Components) == 0 {
		return nil, fmt.Errorf("psvcalc: no fluid specified; set Fluid.Components or Fluid.Preset")
	}
	if len(f.Components) != len(f.MoleFractions) {
		return nil, fmt.Errorf("psvcalc: %d components but %d mole fractions",
			len(f.Components), len(f.MoleFractions))
	}
	thermo.Normalize(f.MoleFractions)
	return f, nil
}

// VesselFromConfig assembles the vessel properties for fire-case
// sizing. A directly-specified wetted area overrides the vessel
// dimensions; otherwise the wetted area is computed from the
// configured geometry. Returns nil when no vessel is configured.
// The unwetted surface area is approximated as 1.5 times the wetted
// area, and an insulated vessel gets an environmental factor of 0.3.
func VesselFromConfig(cfg *viper.Viper) *psvcalc.VesselProperties {
	wetted := cfg.GetFloat64("Vessel.WettedAreaFt2")
	if wetted == 0 {
		d := cfg.GetFloat64("Vessel.DiameterFt")
		l := cfg.GetFloat64("Vessel.LengthFt")
		frac := cfg.GetFloat64("Vessel.LiquidLevelFraction")
		if d > 0 && l > 0 {
			switch cfg.GetString("Vessel.Orientation") {
			case "vertical":
				wetted = psvcalc.WettedAreaVerticalVessel(d, l, frac*l)
			default:
				wetted = psvcalc.WettedAreaHorizontalVessel(d, l, frac)
			}
		}
	}
	if wetted == 0 {
		return nil
	}

	insulated := cfg.GetBool("Vessel.Insulated")
	FEnv := 1.0
	if insulated {
		FEnv = 0.3
	}
	return &psvcalc.VesselProperties{
		WettedAreaFt2:  wetted,
		SurfaceAreaFt2: wetted * 1.5,
		Insulated:      insulated,
		FEnv:           FEnv,
	}
}
