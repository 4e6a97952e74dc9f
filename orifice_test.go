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

func TestSelectOrifice(t *testing.T) {
	cases := []struct {
		required        float64
		wantLetter      string
		wantUtilization float64
	}{
		{0.100, "D", 90.9},
		{0.110, "D", 100.0},
		{0.200, "F", 65.1},
		{1.377, "K", 74.9},
		{16.00, "R", 100.0},
		{26.00, "T", 100.0},
	}
	for _, c := range cases {
		o, u := SelectOrifice(c.required)
		if o.Letter != c.wantLetter {
			t.Errorf("required %g: have orifice %q, want %q", c.required, o.Letter, c.wantLetter)
		}
		if math.Abs(u-c.wantUtilization) > 0.1 {
			t.Errorf("required %g: have utilization %g, want %g", c.required, u, c.wantUtilization)
		}
	}
}

func TestSelectOrificeOversized(t *testing.T) {
	// Beyond the largest standard orifice, return "T" with
	// utilization above 100% rather than failing.
	o, u := SelectOrifice(30)
	if o.Letter != "T" {
		t.Errorf("have orifice %q, want T", o.Letter)
	}
	if u <= 100 {
		t.Errorf("utilization should exceed 100%%, have %g", u)
	}
	if math.Abs(u-30.0/26.0*100) > 1e-9 {
		t.Errorf("utilization: have %g, want %g", u, 30.0/26.0*100)
	}
}

func TestSelectOrificeMonotonic(t *testing.T) {
	prev := 0.0
	for a := 0.01; a < 40; a += 0.07 {
		o, _ := SelectOrifice(a)
		if o.AreaIn2 < prev {
			t.Fatalf("selected area decreased from %g to %g at required %g", prev, o.AreaIn2, a)
		}
		prev = o.AreaIn2
	}
}

func TestOrificeTableAscending(t *testing.T) {
	table := Orifices()
	if len(table) != 14 {
		t.Fatalf("orifice table has %d entries, want 14", len(table))
	}
	for i := 1; i < len(table); i++ {
		if table[i].AreaIn2 <= table[i-1].AreaIn2 {
			t.Errorf("table not strictly ascending at %q", table[i].Letter)
		}
	}
	if table[0].Letter != "D" || table[len(table)-1].Letter != "T" {
		t.Errorf("table spans %q..%q, want D..T", table[0].Letter, table[len(table)-1].Letter)
	}
}
