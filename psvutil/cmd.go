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

// Package psvutil wires the psvcalc and thermo packages into a
// command-line interface with file-, flag-, and environment-based
// configuration. Unit conversions at the calculation boundary
// (°F to K, psig to Pa) happen here; the computational packages work
// in fixed units.
package psvutil

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/franceng/psvcalc"
	"github.com/franceng/psvcalc/thermo"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var logger = logrus.New()

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to PSVCalc.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "json",
			usage: `
              json specifies whether to print results as JSON instead
              of a table.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "verbose",
			usage: `
              verbose enables debug logging.`,
			shorthand:  "v",
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "FluidsFile",
			usage: `
              FluidsFile is the path to a TOML file holding saved fluid
              compositions, usable anywhere a preset name is accepted.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{propsCmd.PersistentFlags(), sizeCmd.PersistentFlags(), presetsCmd.Flags()},
		},
		{
			name: "Fluid.Preset",
			usage: `
              Fluid.Preset selects a named fluid composition (see the
              'presets' command) instead of listing components.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{propsCmd.PersistentFlags(), sizeCmd.PersistentFlags()},
		},
		{
			name: "Fluid.Components",
			usage: `
              Fluid.Components lists the mixture component names. Each
              name must exist in the reference component table.`,
			defaultVal: []string{},
			flagsets:   []*pflag.FlagSet{propsCmd.PersistentFlags(), sizeCmd.PersistentFlags()},
		},
		{
			name: "Fluid.MoleFractions",
			usage: `
              Fluid.MoleFractions lists the mole fraction of each
              component, in the same order as Fluid.Components. The
              fractions are normalized to sum to 1 before use.`,
			defaultVal: []string{},
			flagsets:   []*pflag.FlagSet{propsCmd.PersistentFlags(), sizeCmd.PersistentFlags()},
		},
		{
			name: "Fluid.TemperatureF",
			usage: `
              Fluid.TemperatureF is the fluid temperature [°F].`,
			defaultVal: 200.0,
			flagsets:   []*pflag.FlagSet{propsCmd.PersistentFlags(), sizeCmd.PersistentFlags()},
		},
		{
			name: "Fluid.PressurePsig",
			usage: `
              Fluid.PressurePsig is the fluid pressure [psig].`,
			defaultVal: 150.0,
			flagsets:   []*pflag.FlagSet{propsCmd.PersistentFlags(), sizeCmd.PersistentFlags()},
		},
		{
			name: "Scenario",
			usage: `
              Scenario selects the overpressure case to size for: one of
              fire_wetted, fire_unwetted, blocked_vapor, blocked_liquid,
              or cv_failure.`,
			shorthand:  "s",
			defaultVal: "fire_wetted",
			flagsets:   []*pflag.FlagSet{sizeCmd.PersistentFlags()},
		},
		{
			name: "SetPressurePsig",
			usage: `
              SetPressurePsig is the relief valve set pressure [psig].`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{sizeCmd.PersistentFlags()},
		},
		{
			name: "BackPressurePsig",
			usage: `
              BackPressurePsig is the total back pressure at the valve
              outlet [psig].`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{sizeCmd.PersistentFlags()},
		},
		{
			name: "FlowRate",
			usage: `
              FlowRate is the required relief rate for blocked-outlet and
              control-valve-failure cases [lb/hr for vapor, gpm for
              liquid]. Zero selects the default rate.`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{sizeCmd.PersistentFlags()},
		},
		{
			name: "LatentHeatBTULb",
			usage: `
              LatentHeatBTULb is the latent heat of vaporization at
              relieving conditions [BTU/lb] for fire cases. Zero selects
              the default value.`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{sizeCmd.PersistentFlags()},
		},
		{
			name: "Vessel.Orientation",
			usage: `
              Vessel.Orientation is "horizontal" or "vertical" and
              controls how the wetted area is computed from the vessel
              dimensions.`,
			defaultVal: "horizontal",
			flagsets:   []*pflag.FlagSet{sizeCmd.PersistentFlags()},
		},
		{
			name: "Vessel.DiameterFt",
			usage: `
              Vessel.DiameterFt is the vessel diameter [ft].`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{sizeCmd.PersistentFlags()},
		},
		{
			name: "Vessel.LengthFt",
			usage: `
              Vessel.LengthFt is the vessel tan-tan length (or height for
              vertical vessels) [ft].`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{sizeCmd.PersistentFlags()},
		},
		{
			name: "Vessel.LiquidLevelFraction",
			usage: `
              Vessel.LiquidLevelFraction is the liquid level as a
              fraction of diameter (horizontal) or height (vertical).`,
			defaultVal: 0.5,
			flagsets:   []*pflag.FlagSet{sizeCmd.PersistentFlags()},
		},
		{
			name: "Vessel.Insulated",
			usage: `
              Vessel.Insulated specifies whether the vessel is insulated,
              which takes environmental-factor credit for fire cases.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{sizeCmd.PersistentFlags()},
		},
		{
			name: "Vessel.WettedAreaFt2",
			usage: `
              Vessel.WettedAreaFt2 directly specifies the fire-wetted
              area [ft²], overriding the vessel dimensions.`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{sizeCmd.PersistentFlags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("PSVCALC")

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case []string:
				if option.shorthand == "" {
					set.StringSlice(option.name, option.defaultVal.([]string), option.usage)
				} else {
					set.StringSliceP(option.name, option.shorthand, option.defaultVal.([]string), option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(propsCmd)
	Root.AddCommand(sizeCmd)
	Root.AddCommand(presetsCmd)
	Root.AddCommand(componentsCmd)
	Root.AddCommand(orificesCmd)
}

// setConfig finds and reads in the configuration file, if there is
// one, and sets the logging level.
func setConfig() error {
	if Cfg.GetBool("verbose") {
		logger.Level = logrus.DebugLevel
	}
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("psvcalc: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "psvcalc",
	Short: "A pressure relief valve sizing calculator.",
	Long: `PSVCalc sizes pressure relief valves per API 520/521/526, using a
Peng-Robinson equation of state to compute the fluid properties of
hydrocarbon and inert-gas mixtures.

Configuration can be changed by using a configuration file (and providing
the path to the file using the --config flag), by using command-line
arguments, or by setting environment variables in the format 'PSVCALC_var'
where 'var' is the name of the variable to be set. Refer to
https://github.com/spf13/viper for additional configuration information.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of PSVCalc.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("PSVCalc v%s\n", psvcalc.Version)
	},
	DisableAutoGenTag: true,
}

// propsCmd computes thermodynamic properties for a mixture.
var propsCmd = &cobra.Command{
	Use:   "props",
	Short: "Compute mixture thermodynamic properties.",
	Long: `props evaluates the Peng-Robinson equation of state for the configured
mixture at the configured temperature and pressure, reporting molecular
weight, compressibility, density, heat capacity ratio, flammability
limits, and the estimated phase split.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		props, err := Props(Cfg)
		if err != nil {
			return err
		}
		if Cfg.GetBool("json") {
			return printJSON(os.Stdout, props)
		}
		return PrintProperties(os.Stdout, props)
	},
	DisableAutoGenTag: true,
}

// sizeCmd runs a relief valve sizing calculation.
var sizeCmd = &cobra.Command{
	Use:   "size",
	Short: "Size a relief valve for an overpressure scenario.",
	Long: `size computes the required orifice area for the configured scenario
and selects the smallest adequate API 526 standard orifice. Fluid
properties are computed from the configured mixture with the
Peng-Robinson equation of state.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := Size(Cfg)
		if err != nil {
			return err
		}
		if Cfg.GetBool("json") {
			return printJSON(os.Stdout, result)
		}
		return PrintSizing(os.Stdout, result)
	},
	DisableAutoGenTag: true,
}

// presetsCmd lists the available fluid presets.
var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List preset fluid compositions.",
	Long: `presets lists the built-in preset fluid compositions plus any saved
fluids from the FluidsFile, with their components and mole fractions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		presets := make(map[string]thermo.Preset)
		for _, name := range thermo.PresetNames() {
			p, _ := thermo.LookupPreset(name)
			presets[name] = p
		}
		if path := Cfg.GetString("FluidsFile"); path != "" {
			saved, err := loadFluidsFile(path)
			if err != nil {
				return err
			}
			for name, f := range saved {
				presets[name] = thermo.Preset{Components: f.Components, MoleFractions: f.MoleFractions}
			}
		}
		if Cfg.GetBool("json") {
			return printJSON(os.Stdout, presets)
		}
		names := make([]string, 0, len(presets))
		for name := range presets {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			p := presets[name]
			fmt.Printf("%s:\n", name)
			for i, c := range p.Components {
				fmt.Printf("  %-12s %.4f\n", c, p.MoleFractions[i])
			}
		}
		return nil
	},
	DisableAutoGenTag: true,
}

// componentsCmd lists the reference component table.
var componentsCmd = &cobra.Command{
	Use:   "components",
	Short: "List the reference component table.",
	Long: `components lists the pure components available for mixture
specifications, with their critical properties and flammability limits.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return PrintComponents(os.Stdout)
	},
	DisableAutoGenTag: true,
}

// orificesCmd lists the API 526 standard orifice table.
var orificesCmd = &cobra.Command{
	Use:   "orifices",
	Short: "List the API 526 standard orifice table.",
	Long:  "orifices lists the standard orifice letter designations and bore areas.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return PrintOrifices(os.Stdout)
	},
	DisableAutoGenTag: true,
}

func printJSON(w *os.File, v interface{}) error {
	e := json.NewEncoder(w)
	e.SetIndent("", "  ")
	return e.Encode(v)
}
