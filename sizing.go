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

// Scenario names accepted by Calculate.
const (
	ScenarioFireWetted    = "fire_wetted"
	ScenarioFireUnwetted  = "fire_unwetted"
	ScenarioBlockedVapor  = "blocked_vapor"
	ScenarioBlockedLiquid = "blocked_liquid"
	ScenarioCVFailure     = "cv_failure"
)

// Allowed accumulation fractions per API 521.
const (
	FireAccumulation    = 0.21
	DefaultAccumulation = 0.10
)

// Default input values substituted when a caller leaves a field at
// its zero value. These match long-standing fallback policy rather
// than estimates for any particular service.
const (
	DefaultVaporFlowLbHr   = 10000
	DefaultLiquidFlowGPM   = 500
	DefaultLatentHeatBTULb = 150
	DefaultTF              = 200
	DefaultMW              = 30
	DefaultZ               = 0.9
	DefaultGamma           = 1.2
	DefaultSpecificGravity = 0.8
	DefaultAreaFt2         = 200
	DefaultFEnv            = 1.0
	DefaultCpBTULbF        = 0.5
)

// UnknownScenarioError is returned when a scenario name is outside
// the enumerated set.
type UnknownScenarioError struct {
	Name string
}

func (e *UnknownScenarioError) Error() string {
	return "psvcalc: unknown scenario: " + e.Name
}

// Scenario is one overpressure case to size a relief valve for. Each
// variant carries only the inputs its sizing calculation needs.
type Scenario interface {
	// Name returns the scenario identifier.
	Name() string

	size(s *Sizer) (*SizingResult, error)
}

// FireWetted is external fire exposure of liquid-wetted surface;
// relief load is boil-off vapor.
type FireWetted struct {
	WettedAreaFt2   float64
	LatentHeatBTULb float64
	TF              float64 // relieving temperature [°F]
	MW              float64
	Z               float64
	Gamma           float64
	Insulated       bool
	FEnv            float64 // environmental factor

	// InadequateDrainage selects the 20000·F·A heat input
	// correlation instead of the drained A^0.82 forms.
	InadequateDrainage bool
}

// Name implements Scenario.
func (FireWetted) Name() string { return ScenarioFireWetted }

// FireUnwetted is external fire exposure of vapor-space surface;
// relief load comes from gas expansion.
type FireUnwetted struct {
	SurfaceAreaFt2 float64
	TF             float64
	MW             float64
	Z              float64
	Gamma          float64
	CpBTULbF       float64
}

// Name implements Scenario.
func (FireUnwetted) Name() string { return ScenarioFireUnwetted }

// BlockedVapor is a blocked outlet in vapor service.
type BlockedVapor struct {
	FlowLbHr float64
	TF       float64
	MW       float64
	Z        float64
	Gamma    float64
}

// Name implements Scenario.
func (BlockedVapor) Name() string { return ScenarioBlockedVapor }

// BlockedLiquid is a blocked outlet in liquid service.
type BlockedLiquid struct {
	FlowGPM         float64
	SpecificGravity float64
}

// Name implements Scenario.
func (BlockedLiquid) Name() string { return ScenarioBlockedLiquid }

// CVFailure is a failed-open control valve admitting vapor to the
// protected system.
type CVFailure struct {
	FlowLbHr float64
	TF       float64
	MW       float64
	Z        float64
	Gamma    float64
}

// Name implements Scenario.
func (CVFailure) Name() string { return ScenarioCVFailure }

// SizingResult holds the outcome of one sizing calculation. Vapor
// scenarios fill the psia pressure fields and ReliefRateLbHr; liquid
// scenarios fill the psig fields and ReliefRateGPM. Fire scenarios
// additionally fill the heat-input fields.
type SizingResult struct {
	Scenario string
	FlowType string // "Critical" or "Subcritical"; vapor service only

	ReliefRateLbHr        float64
	ReliefRateGPM         float64
	RelievingTemperatureF float64
	RelievingPressurePsia float64
	BackPressurePsia      float64
	RelievingPressurePsig float64
	BackPressurePsig      float64

	MolecularWeight  float64
	CompressibilityZ float64
	Gamma            float64
	SpecificGravity  float64

	RequiredAreaIn2    float64
	SelectedOrifice    Orifice
	PercentUtilization float64

	Kd, Kb, Kw, Kc, Kv float64

	// Fire-case details.
	WettedAreaFt2       float64
	UnwettedAreaFt2     float64
	HeatInputBTUHr      float64
	HeatInputMMBTUHr    float64
	LatentHeatBTULb     float64
	Insulated           bool
	EnvironmentalFactor float64
	CpBTULbF            float64
}

// Sizer sizes relief valves for a fixed set pressure and back
// pressure. Accumulation of 0 selects the policy default: 21% for
// fire scenarios, 10% otherwise.
type Sizer struct {
	SetPressurePsig  float64
	BackPressurePsig float64
	Accumulation     float64
}

// NewSizer returns a Sizer with the default accumulation policy.
func NewSizer(setPressurePsig, backPressurePsig float64) *Sizer {
	return &Sizer{SetPressurePsig: setPressurePsig, BackPressurePsig: backPressurePsig}
}

// Size computes the required orifice area for the scenario and
// selects a standard orifice.
func (s *Sizer) Size(sc Scenario) (*SizingResult, error) {
	return sc.size(s)
}

// accumulation returns the accumulation fraction for a scenario.
// Fire cases get 21% per API 521 regardless of any override.
func (s *Sizer) accumulation(fire bool) float64 {
	if fire {
		return FireAccumulation
	}
	if s.Accumulation > 0 {
		return s.Accumulation
	}
	return DefaultAccumulation
}

// sizeVapor runs the API 520 vapor sizing for any vapor-service
// scenario.
func (s *Sizer) sizeVapor(scenario string, fire bool, WLbHr, TF, MW, Z, gamma float64) *SizingResult {
	accum := s.accumulation(fire)
	P1 := s.SetPressurePsig*(1+accum) + AtmPsia
	P2 := s.BackPressurePsig + AtmPsia
	TR := TF + 459.67

	A := VaporOrificeArea(WLbHr, TR, MW, Z, gamma, P1, P2,
		DefaultKdVapor, DefaultKb, DefaultKc)
	orifice, utilization := SelectOrifice(A)

	flowType := "Subcritical"
	if IsCriticalFlow(P1, P2, gamma) {
		flowType = "Critical"
	}

	return &SizingResult{
		Scenario:              scenario,
		FlowType:              flowType,
		ReliefRateLbHr:        WLbHr,
		RelievingTemperatureF: TF,
		RelievingPressurePsia: roundTo(P1, 1),
		BackPressurePsia:      roundTo(P2, 1),
		MolecularWeight:       MW,
		CompressibilityZ:      Z,
		Gamma:                 gamma,
		RequiredAreaIn2:       roundTo(A, 4),
		SelectedOrifice:       orifice,
		PercentUtilization:    roundTo(utilization, 1),
		Kd:                    DefaultKdVapor,
		Kb:                    DefaultKb,
		Kc:                    DefaultKc,
	}
}

// sizeLiquid runs the API 520 liquid sizing. Liquid sizing works in
// gauge pressures.
func (s *Sizer) sizeLiquid(scenario string, QGpm, G float64) (*SizingResult, error) {
	accum := s.accumulation(false)
	P1 := s.SetPressurePsig * (1 + accum)

	A, err := LiquidOrificeArea(QGpm, G, P1, s.BackPressurePsig,
		DefaultKdLiquid, DefaultKw, DefaultKc, DefaultKv)
	if err != nil {
		return nil, err
	}
	orifice, utilization := SelectOrifice(A)

	return &SizingResult{
		Scenario:              scenario,
		ReliefRateGPM:         QGpm,
		SpecificGravity:       G,
		RelievingPressurePsig: roundTo(P1, 1),
		BackPressurePsig:      s.BackPressurePsig,
		RequiredAreaIn2:       roundTo(A, 4),
		SelectedOrifice:       orifice,
		PercentUtilization:    roundTo(utilization, 1),
		Kd:                    DefaultKdLiquid,
		Kw:                    DefaultKw,
		Kc:                    DefaultKc,
		Kv:                    DefaultKv,
	}, nil
}

func (v FireWetted) size(s *Sizer) (*SizingResult, error) {
	Q := FireHeatInputWetted(v.WettedAreaFt2, v.Insulated, v.FEnv, !v.InadequateDrainage)
	W := VaporReliefRateFire(Q, v.LatentHeatBTULb)

	result := s.sizeVapor(v.Name(), true, W, v.TF, v.MW, v.Z, v.Gamma)
	result.WettedAreaFt2 = v.WettedAreaFt2
	result.HeatInputBTUHr = roundTo(Q, 0)
	result.HeatInputMMBTUHr = roundTo(Q/1e6, 3)
	result.LatentHeatBTULb = v.LatentHeatBTULb
	result.Insulated = v.Insulated
	result.EnvironmentalFactor = v.FEnv
	return result, nil
}

func (v FireUnwetted) size(s *Sizer) (*SizingResult, error) {
	Q := FireHeatInputUnwetted(v.SurfaceAreaFt2, DefaultVesselWallTempR, DefaultEmissivity)

	// Approximate gas-expansion relief rate, W = Q/(Cp·100).
	W := Q / (v.CpBTULbF * 100)

	result := s.sizeVapor(v.Name(), true, W, v.TF, v.MW, v.Z, v.Gamma)
	result.UnwettedAreaFt2 = v.SurfaceAreaFt2
	result.HeatInputBTUHr = roundTo(Q, 0)
	result.HeatInputMMBTUHr = roundTo(Q/1e6, 3)
	result.CpBTULbF = v.CpBTULbF
	return result, nil
}

func (v BlockedVapor) size(s *Sizer) (*SizingResult, error) {
	return s.sizeVapor(v.Name(), false, v.FlowLbHr, v.TF, v.MW, v.Z, v.Gamma), nil
}

func (v BlockedLiquid) size(s *Sizer) (*SizingResult, error) {
	return s.sizeLiquid(v.Name(), v.FlowGPM, v.SpecificGravity)
}

func (v CVFailure) size(s *Sizer) (*SizingResult, error) {
	return s.sizeVapor(v.Name(), false, v.FlowLbHr, v.TF, v.MW, v.Z, v.Gamma), nil
}

// FluidProperties carries the fluid inputs for Calculate. Zero-valued
// fields are replaced with the package default constants; the
// substitution happens in Calculate when the scenario variant is
// built, so the defaulting is visible in one place.
type FluidProperties struct {
	TF              float64 // relieving temperature [°F]
	MW              float64
	Z               float64
	Gamma           float64
	LatentHeatBTULb float64
	SpecificGravity float64
}

// VesselProperties carries the vessel inputs for fire scenarios.
type VesselProperties struct {
	WettedAreaFt2  float64
	SurfaceAreaFt2 float64
	Insulated      bool
	FEnv           float64
}

// Calculate is the string-dispatch entry point for relief valve
// sizing. The scenario must be one of the Scenario* name constants;
// any other name returns an *UnknownScenarioError. A nil vessel or a
// zero flowRate falls back to the package defaults.
func Calculate(scenario string, setPressurePsig float64, fluid FluidProperties,
	vessel *VesselProperties, flowRate, backPressurePsig float64) (*SizingResult, error) {

	if vessel == nil {
		vessel = &VesselProperties{}
	}
	sizer := NewSizer(setPressurePsig, backPressurePsig)

	var sc Scenario
	switch scenario {
	case ScenarioFireWetted:
		sc = FireWetted{
			WettedAreaFt2:   orDefault(vessel.WettedAreaFt2, DefaultAreaFt2),
			LatentHeatBTULb: orDefault(fluid.LatentHeatBTULb, DefaultLatentHeatBTULb),
			TF:              orDefault(fluid.TF, DefaultTF),
			MW:              orDefault(fluid.MW, DefaultMW),
			Z:               orDefault(fluid.Z, DefaultZ),
			Gamma:           orDefault(fluid.Gamma, DefaultGamma),
			Insulated:       vessel.Insulated,
			FEnv:            orDefault(vessel.FEnv, DefaultFEnv),
		}
	case ScenarioFireUnwetted:
		sc = FireUnwetted{
			SurfaceAreaFt2: orDefault(vessel.SurfaceAreaFt2, DefaultAreaFt2),
			TF:             orDefault(fluid.TF, DefaultTF),
			MW:             orDefault(fluid.MW, DefaultMW),
			Z:              orDefault(fluid.Z, DefaultZ),
			Gamma:          orDefault(fluid.Gamma, DefaultGamma),
			CpBTULbF:       DefaultCpBTULbF,
		}
	case ScenarioBlockedVapor:
		sc = BlockedVapor{
			FlowLbHr: orDefault(flowRate, DefaultVaporFlowLbHr),
			TF:       orDefault(fluid.TF, DefaultTF),
			MW:       orDefault(fluid.MW, DefaultMW),
			Z:        orDefault(fluid.Z, DefaultZ),
			Gamma:    orDefault(fluid.Gamma, DefaultGamma),
		}
	case ScenarioBlockedLiquid:
		sc = BlockedLiquid{
			FlowGPM:         orDefault(flowRate, DefaultLiquidFlowGPM),
			SpecificGravity: orDefault(fluid.SpecificGravity, DefaultSpecificGravity),
		}
	case ScenarioCVFailure:
		sc = CVFailure{
			FlowLbHr: orDefault(flowRate, DefaultVaporFlowLbHr),
			TF:       orDefault(fluid.TF, DefaultTF),
			MW:       orDefault(fluid.MW, DefaultMW),
			Z:        orDefault(fluid.Z, DefaultZ),
			Gamma:    orDefault(fluid.Gamma, DefaultGamma),
		}
	default:
		return nil, &UnknownScenarioError{Name: scenario}
	}

	return sizer.Size(sc)
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

// roundTo rounds x to the given number of decimal digits.
func roundTo(x float64, digits int) float64 {
	shift := math.Pow(10, float64(digits))
	return math.Round(x*shift) / shift
}
