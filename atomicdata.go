/*
 * atomicdata.go, part of goCryst.
 *
 * Copyright 2024 rmeraaatacademicosdotutadotcl
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package cryst

// amu2gram times a mass in atomic mass units over a volume in cubic
// Angstrom gives a density in g/cm^3.
const amu2gram = 1.66053906660

//A map for assigning mass to elements.
//Note that just the elements common in inorganic crystals are present
var symbolMass = map[string]float64{
	"H":  1.008,
	"Li": 6.94,
	"Be": 9.012,
	"B":  10.81,
	"C":  12.011,
	"N":  14.007,
	"O":  15.999,
	"F":  18.998,
	"Na": 22.990,
	"Mg": 24.305,
	"Al": 26.982,
	"Si": 28.085,
	"P":  30.974,
	"S":  32.06,
	"Cl": 35.45,
	"K":  39.098,
	"Ca": 40.078,
	"Sc": 44.956,
	"Ti": 47.867,
	"V":  50.942,
	"Cr": 51.996,
	"Mn": 54.938,
	"Fe": 55.845,
	"Co": 58.933,
	"Ni": 58.693,
	"Cu": 63.546,
	"Zn": 65.38,
	"Ga": 69.723,
	"Ge": 72.630,
	"As": 74.922,
	"Se": 78.971,
	"Br": 79.904,
	"Sr": 87.62,
	"Y":  88.906,
	"Zr": 91.224,
	"Nb": 92.906,
	"Mo": 95.95,
	"Ag": 107.87,
	"Cd": 112.41,
	"In": 114.82,
	"Sn": 118.71,
	"Sb": 121.76,
	"Te": 127.60,
	"I":  126.90,
	"Ba": 137.33,
	"La": 138.91,
	"W":  183.84,
	"Pt": 195.08,
	"Au": 196.97,
	"Pb": 207.2,
	"Bi": 208.98,
}

// Mass returns the mass, in atomic mass units, of the atoms in S, and
// whether every species in S has a known mass.
func (S *Structure) Mass() (float64, bool) {
	var mass float64
	for _, sp := range S.Species {
		m, ok := symbolMass[sp.Symbol]
		if !ok {
			return 0, false
		}
		mass += m * float64(sp.Count)
	}
	return mass, true
}

// Density returns the density of S in g/cm^3, and whether it could be
// computed.
func (S *Structure) Density() (float64, bool) {
	mass, ok := S.Mass()
	vol := S.Volume()
	if !ok || vol == 0 {
		return 0, false
	}
	return mass * amu2gram / vol, true
}
