/*
 * geometric.go, part of goCryst.
 *
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
 *
 */

package cryst

import (
	"math"

	v3 "github.com/rmera/gocryst/v3"
	"gonum.org/v1/gonum/floats"
)

// VectorNorm returns the Euclidean norm of v, of any length.
func VectorNorm(v []float64) float64 {
	return math.Sqrt(floats.Dot(v, v))
}

// DotProduct returns the dot product of v1 and v2. If the slices have
// different lengths, only the elements in the common prefix are used.
func DotProduct(v1, v2 []float64) float64 {
	n := len(v1)
	if len(v2) < n {
		n = len(v2)
	}
	return floats.Dot(v1[:n], v2[:n])
}

// AngleBetween takes 2 vectors and calculates the angle in degrees between them.
// It does not check for correctness or return errors: if one of the vectors
// has zero length, the result is NaN.
func AngleBetween(v1, v2 []float64) float64 {
	argument := DotProduct(v1, v2) / (VectorNorm(v1) * VectorNorm(v2))
	//Take care of floating point math errors. NaN passes through.
	if argument > 1 {
		argument = 1
	} else if argument < -1 {
		argument = -1
	}
	return math.Acos(argument) * Rad2Deg
}

// Cell contains the parameters of a unit cell: the lengths of the
// three lattice vectors and the angles between them, in degrees.
// Alpha is the angle between b and c, Beta between a and c and
// Gamma between a and b.
type Cell struct {
	A     float64 `yaml:"a"`
	B     float64 `yaml:"b"`
	C     float64 `yaml:"c"`
	Alpha float64 `yaml:"alpha"`
	Beta  float64 `yaml:"beta"`
	Gamma float64 `yaml:"gamma"`
}

// DefaultCell returns the cell assumed for a CIF document without cell
// fields.
func DefaultCell() Cell {
	return Cell{DefaultLength, DefaultLength, DefaultLength, DefaultAngle, DefaultAngle, DefaultAngle}
}

// Similar returns true if all the parameters of c and o differ by at most tol.
func (c Cell) Similar(o Cell, tol float64) bool {
	return floats.EqualApprox(
		[]float64{c.A, c.B, c.C, c.Alpha, c.Beta, c.Gamma},
		[]float64{o.A, o.B, o.C, o.Alpha, o.Beta, o.Gamma}, tol)
}

// CellFromLattice obtains the cell parameters from the lattice vectors
// in the rows of lattice. It returns an error if any of the vectors has zero length.
func CellFromLattice(lattice *v3.Matrix) (Cell, error) {
	if lattice.NVecs() != 3 {
		return Cell{}, newError(ErrStructure, 0, "CellFromLattice", "%d lattice vectors, 3 expected", lattice.NVecs())
	}
	a, b, c := lattice.Vec(0), lattice.Vec(1), lattice.Vec(2)
	ret := Cell{A: VectorNorm(a), B: VectorNorm(b), C: VectorNorm(c)}
	for i, l := range []float64{ret.A, ret.B, ret.C} {
		if l == 0 {
			return Cell{}, newError(ErrDegenerate, 0, "CellFromLattice", "lattice vector %c has zero length", "abc"[i])
		}
	}
	ret.Alpha = AngleBetween(b, c)
	ret.Beta = AngleBetween(a, c)
	ret.Gamma = AngleBetween(a, b)
	return ret, nil
}
