/*
 * geometric_test.go, part of goCryst.
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

import (
	"errors"
	"math"
	"testing"

	v3 "github.com/rmera/gocryst/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorNorm(Te *testing.T) {
	assert.InDelta(Te, 5.0, VectorNorm([]float64{3, 4, 0}), 1e-12)
	assert.InDelta(Te, 3.0, VectorNorm([]float64{1, 2, 2}), 1e-12)
	assert.Equal(Te, 0.0, VectorNorm(nil))
	assert.True(Te, math.IsInf(VectorNorm([]float64{math.Inf(1), 0, 0}), 1))
}

func TestDotProductTruncates(Te *testing.T) {
	assert.Equal(Te, 32.0, DotProduct([]float64{1, 2, 3}, []float64{4, 5, 6}))
	//the extra elements are ignored
	assert.Equal(Te, 14.0, DotProduct([]float64{1, 2, 3, 100}, []float64{4, 5}))
	assert.Equal(Te, 0.0, DotProduct(nil, []float64{1}))
}

func TestAngleBetween(Te *testing.T) {
	basis := [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	scales := []float64{0.001, 1, 7.5, 1e6}
	for i := range basis {
		for j := range basis {
			if i == j {
				continue
			}
			for _, s1 := range scales {
				for _, s2 := range scales {
					v1 := []float64{basis[i][0] * s1, basis[i][1] * s1, basis[i][2] * s1}
					v2 := []float64{basis[j][0] * s2, basis[j][1] * s2, basis[j][2] * s2}
					assert.InDelta(Te, 90.0, AngleBetween(v1, v2), 1e-9)
				}
			}
		}
	}
	assert.InDelta(Te, 0.0, AngleBetween([]float64{1, 2, 2}, []float64{1, 2, 2}), 1e-9)
	assert.InDelta(Te, 0.0, AngleBetween([]float64{0.3, 0.1, 7}, []float64{0.3, 0.1, 7}), 1e-5)
	assert.InDelta(Te, 180.0, AngleBetween([]float64{1, 1, 0}, []float64{-2, -2, 0}), 1e-5)
	assert.InDelta(Te, 45.0, AngleBetween([]float64{1, 0, 0}, []float64{1, 1, 0}), 1e-9)
	//zero vectors are not guarded against.
	assert.True(Te, math.IsNaN(AngleBetween([]float64{0, 0, 0}, []float64{1, 0, 0})))
}

func TestCellFromLattice(Te *testing.T) {
	hex, err := v3.NewMatrix([]float64{
		3, 0, 0,
		-1.5, 1.5 * math.Sqrt(3), 0,
		0, 0, 5,
	})
	require.NoError(Te, err)
	c, err := CellFromLattice(hex)
	require.NoError(Te, err)
	assert.InDelta(Te, 3.0, c.A, 1e-9)
	assert.InDelta(Te, 3.0, c.B, 1e-9)
	assert.InDelta(Te, 5.0, c.C, 1e-9)
	assert.InDelta(Te, 90.0, c.Alpha, 1e-9)
	assert.InDelta(Te, 90.0, c.Beta, 1e-9)
	assert.InDelta(Te, 120.0, c.Gamma, 1e-9)
	assert.True(Te, c.Similar(Cell{3, 3, 5, 90, 90, 120}, 1e-6))
	assert.False(Te, c.Similar(DefaultCell(), 1e-6))

	flat := v3.Diag(1, 0, 2)
	_, err = CellFromLattice(flat)
	require.Error(Te, err)
	assert.True(Te, errors.Is(err, ErrDegenerate))

	_, err = CellFromLattice(v3.Zeros(2))
	assert.True(Te, errors.Is(err, ErrStructure))
}
