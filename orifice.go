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

// Orifice is an API 526 standard orifice designation.
type Orifice struct {
	Letter  string
	AreaIn2 float64
	AreaMM2 float64
}

// api526Orifices is the API 526 standard orifice table, ordered by
// increasing area. Established at startup and never mutated.
var api526Orifices = []Orifice{
	{"D", 0.110, 71.0},
	{"E", 0.196, 126.5},
	{"F", 0.307, 198.1},
	{"G", 0.503, 324.5},
	{"H", 0.785, 506.5},
	{"J", 1.287, 830.3},
	{"K", 1.838, 1185.8},
	{"L", 2.853, 1841.0},
	{"M", 3.600, 2322.6},
	{"N", 4.340, 2800.0},
	{"P", 6.380, 4116.1},
	{"Q", 11.05, 7129.0},
	{"R", 16.00, 10322.6},
	{"T", 26.00, 16774.2},
}

// Orifices returns a copy of the API 526 standard orifice table in
// ascending area order.
func Orifices() []Orifice {
	out := make([]Orifice, len(api526Orifices))
	copy(out, api526Orifices)
	return out
}

// SelectOrifice returns the smallest API 526 standard orifice whose
// area meets or exceeds requiredAreaIn2, along with the percent
// utilization of the selected orifice. If the required area exceeds
// the largest standard orifice ("T"), that orifice is returned with
// utilization above 100%, signaling an undersized condition to the
// caller.
func SelectOrifice(requiredAreaIn2 float64) (Orifice, float64) {
	for _, o := range api526Orifices {
		if o.AreaIn2 >= requiredAreaIn2 {
			return o, requiredAreaIn2 / o.AreaIn2 * 100
		}
	}
	largest := api526Orifices[len(api526Orifices)-1]
	return largest, requiredAreaIn2 / largest.AreaIn2 * 100
}
