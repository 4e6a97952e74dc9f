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
	"sort"
	"strings"
)

// Component holds the pure-component properties needed by the
// Peng-Robinson equation of state. Critical properties are from
// DIPPR/experiment. LFL and UFL are volume-percent flammability
// limits; zero means the component carries no limit (inerts).
type Component struct {
	Name    string
	Formula string
	MW      float64 // g/mol
	Tc      float64 // K
	Pc      float64 // Pa
	Omega   float64 // acentric factor
	LFL     float64 // vol %
	UFL     float64 // vol %
}

// components is the reference component table. It is established at
// startup and never mutated, so it is safe for concurrent readers.
var components = map[string]*Component{
	"methane":    {"Methane", "CH4", 16.043, 190.56, 4599000, 0.0115, 5.0, 15.0},
	"ethane":     {"Ethane", "C2H6", 30.070, 305.32, 4872000, 0.0995, 3.0, 12.4},
	"propane":    {"Propane", "C3H8", 44.096, 369.83, 4248000, 0.1523, 2.1, 9.5},
	"isobutane":  {"Isobutane", "iC4H10", 58.122, 407.85, 3640000, 0.1835, 1.8, 8.4},
	"n-butane":   {"n-Butane", "nC4H10", 58.122, 425.12, 3796000, 0.2002, 1.8, 8.4},
	"isopentane": {"Isopentane", "iC5H12", 72.149, 460.35, 3381000, 0.2275, 1.4, 7.6},
	"n-pentane":  {"n-Pentane", "nC5H12", 72.149, 469.70, 3370000, 0.2515, 1.4, 7.8},
	"n-hexane":   {"n-Hexane", "C6H14", 86.175, 507.60, 3025000, 0.3013, 1.2, 7.4},
	"n-heptane":  {"n-Heptane", "C7H16", 100.202, 540.20, 2740000, 0.3495, 1.05, 6.7},
	"n-octane":   {"n-Octane", "C8H18", 114.229, 568.70, 2490000, 0.3996, 1.0, 6.5},
	"n-nonane":   {"n-Nonane", "C9H20", 128.255, 594.60, 2290000, 0.4435, 0.8, 5.9},
	"n-decane":   {"n-Decane", "C10H22", 142.282, 617.70, 2110000, 0.4923, 0.8, 5.4},
	"nitrogen":   {"Nitrogen", "N2", 28.014, 126.20, 3398000, 0.0377, 0, 0},
	"oxygen":     {"Oxygen", "O2", 31.999, 154.58, 5043000, 0.0222, 0, 0},
	"co2":        {"Carbon Dioxide", "CO2", 44.010, 304.21, 7383000, 0.2236, 0, 0},
	"h2s":        {"Hydrogen Sulfide", "H2S", 34.081, 373.53, 8963000, 0.0942, 4.0, 44.0},
	"water":      {"Water", "H2O", 18.015, 647.10, 22064000, 0.3449, 0, 0},
}

// binaryParams holds Peng-Robinson binary interaction parameters
// (kij). The matrix is symmetric; pairs not listed are zero.
var binaryParams = map[[2]string]float64{
	{"methane", "ethane"}:    0.0,
	{"methane", "propane"}:   0.0,
	{"methane", "n-butane"}:  0.0,
	{"methane", "co2"}:       0.1,
	{"methane", "h2s"}:       0.08,
	{"methane", "nitrogen"}:  0.036,
	{"methane", "water"}:     0.5,
	{"ethane", "propane"}:    0.0,
	{"ethane", "co2"}:        0.13,
	{"ethane", "h2s"}:        0.085,
	{"propane", "co2"}:       0.13,
	{"propane", "h2s"}:       0.09,
	{"co2", "h2s"}:           0.1,
	{"nitrogen", "co2"}:      -0.02,
	{"nitrogen", "oxygen"}:   -0.012,
}

// Lookup returns the reference properties for the named component.
// Lookup is case-insensitive.
func Lookup(name string) (*Component, bool) {
	c, ok := components[strings.ToLower(name)]
	return c, ok
}

// Names returns the names of all components in the reference table,
// sorted alphabetically.
func Names() []string {
	names := make([]string, 0, len(components))
	for name := range components {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Kij returns the binary interaction parameter for a component pair,
// checking both orderings. Unlisted pairs and self-pairs are zero.
func Kij(comp1, comp2 string) float64 {
	if comp1 == comp2 {
		return 0
	}
	c1, c2 := strings.ToLower(comp1), strings.ToLower(comp2)
	if k, ok := binaryParams[[2]string{c1, c2}]; ok {
		return k
	}
	return binaryParams[[2]string{c2, c1}]
}

// Preset is a named composition for a common fluid.
type Preset struct {
	Components    []string
	MoleFractions []float64
}

var presets = map[string]Preset{
	"natural_gas": {
		Components:    []string{"methane", "ethane", "propane", "n-butane", "co2", "nitrogen"},
		MoleFractions: []float64{0.85, 0.07, 0.03, 0.02, 0.02, 0.01},
	},
	"rich_gas": {
		Components:    []string{"methane", "ethane", "propane", "isobutane", "n-butane", "isopentane", "n-pentane", "co2"},
		MoleFractions: []float64{0.70, 0.12, 0.08, 0.03, 0.03, 0.01, 0.01, 0.02},
	},
	"propane": {
		Components:    []string{"propane"},
		MoleFractions: []float64{1.0},
	},
	"butane_mix": {
		Components:    []string{"isobutane", "n-butane"},
		MoleFractions: []float64{0.5, 0.5},
	},
	"crude_oil_vapor": {
		Components:    []string{"methane", "ethane", "propane", "n-butane", "n-pentane", "n-hexane", "n-heptane"},
		MoleFractions: []float64{0.30, 0.15, 0.15, 0.12, 0.10, 0.10, 0.08},
	},
}

// LookupPreset returns the named preset composition. The returned
// slices are copies; modifying them does not affect the table.
func LookupPreset(name string) (Preset, bool) {
	p, ok := presets[strings.ToLower(name)]
	if !ok {
		return Preset{}, false
	}
	out := Preset{
		Components:    make([]string, len(p.Components)),
		MoleFractions: make([]float64, len(p.MoleFractions)),
	}
	copy(out.Components, p.Components)
	copy(out.MoleFractions, p.MoleFractions)
	return out, true
}

// PresetNames returns the names of all preset fluids, sorted
// alphabetically.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
