/*
 * gonum.go, part of goCryst.
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

package v3

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Matrix is a set of vectors in 3D space. Within the package it is understood
// that a "vector" is a row vector, i.e. one lattice vector or one point.
type Matrix struct {
	*mat.Dense
}

// NewMatrix generates and returns a Matrix with 3 columns from data.
// The data is not copied.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	if l == 0 {
		return nil, Error("NewMatrix: Empty data slice")
	}
	if l%cols != 0 {
		return nil, Error(fmt.Sprintf("NewMatrix: Input slice length %d not divisible by %d: %d", l, cols, l%cols))
	}
	return &Matrix{mat.NewDense(l/cols, cols, data)}, nil
}

// Zeros returns a zero-filled Matrix with vecs vectors and 3 in the other dimension.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	f := make([]float64, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

// Diag returns the 3x3 matrix with a, b and c in the diagonal,
// i.e. the lattice of an orthogonal cell with those edge lengths.
func Diag(a, b, c float64) *Matrix {
	return &Matrix{mat.NewDense(3, 3, []float64{
		a, 0, 0,
		0, b, 0,
		0, 0, c,
	})}
}

// NVecs returns the number of vectors in F.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

// Vec returns a copy of the ith vector of F as a slice.
func (F *Matrix) Vec(i int) []float64 {
	if i >= F.NVecs() || i < 0 {
		panic(ErrIndexOutOfRange)
	}
	return mat.Row(nil, i, F.Dense)
}

// SetVec puts the 3 first elements of v as the ith vector of F.
func (F *Matrix) SetVec(i int, v []float64) {
	if len(v) < 3 {
		panic(ErrShape)
	}
	F.SetRow(i, v[:3])
}

// ScaleVecs multiplies, in place, each element of each vector in F by factor.
func (F *Matrix) ScaleVecs(factor float64) {
	raw := F.RawMatrix()
	for i := 0; i < raw.Rows; i++ {
		floats.Scale(factor, raw.Data[i*raw.Stride:i*raw.Stride+raw.Cols])
	}
}

// Det returns the determinant of F, which must be 3x3.
// It is computed explicitly, and it is exact for diagonal matrices.
func (F *Matrix) Det() float64 {
	if F.NVecs() != 3 {
		panic(ErrDeterminant)
	}
	A := F.Dense
	return (A.At(0, 0)*(A.At(1, 1)*A.At(2, 2)-A.At(2, 1)*A.At(1, 2)) - A.At(1, 0)*(A.At(0, 1)*A.At(2, 2)-A.At(2, 1)*A.At(0, 2)) + A.At(2, 0)*(A.At(0, 1)*A.At(1, 2)-A.At(1, 1)*A.At(0, 2)))
}

//Errors

// Error is the error type of the package. The message starts with
// the name of the function that returned it.
type Error string

func (err Error) Error() string { return string(err) }

// PanicMsg is a message used for panics, even though it does satisfy the error interface.
// for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix    = PanicMsg("goCryst/v3: A Matrix should have 3 columns")
	ErrDeterminant     = PanicMsg("goCryst/v3: Determinants are only available for 3x3 matrices")
	ErrShape           = PanicMsg("goCryst/v3: Dimension mismatch")
	ErrIndexOutOfRange = PanicMsg("goCryst/v3: index out of range")
)
