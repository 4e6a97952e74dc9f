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

// Package psvcalc sizes pressure-relief valves per API 520/521/526.
// It computes the required orifice area for a named overpressure
// scenario (external fire on wetted or unwetted surfaces, blocked
// outlet in vapor or liquid service, or a failed-open control valve)
// and selects the smallest adequate API 526 standard orifice.
//
// Fluid properties are typically supplied by the
// github.com/franceng/psvcalc/thermo equation-of-state engine.
// All functions are pure computation with no shared mutable state
// and are safe for concurrent use.
package psvcalc

// Version gives the version number of this version of PSVCalc.
const Version = "1.1.0"

// AtmPsia is standard atmospheric pressure [psia] used for
// gauge-to-absolute conversions.
const AtmPsia = 14.7
