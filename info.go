/*
 * info.go, part of goCryst.
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
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Info is a ready-to-serialize summary of a structure.
type Info struct {
	Title   string    `yaml:"title"`
	Cell    Cell      `yaml:"cell"`
	Volume  float64   `yaml:"volume"`
	Atoms   int       `yaml:"atoms"`
	Species []Species `yaml:"species"`
	//Only set when every species has a known mass.
	Mass    float64 `yaml:"mass,omitempty"`
	Density float64 `yaml:"density,omitempty"`
	//The cell parameters in the CIF document, when they don't match the lattice,
	//as happens when the angles are not 90 degrees.
	DocumentCell *Cell `yaml:"document_cell,omitempty"`
	Dropped      []int `yaml:"dropped_records,omitempty"`
}

// NewInfo collects the summary of S. The cell is the one of the
// lattice vectors in S.
func NewInfo(S *Structure) (*Info, error) {
	if err := S.Corrupted(); err != nil {
		return nil, errDecorate(err, "NewInfo")
	}
	cell, err := CellFromLattice(S.Lattice)
	if err != nil {
		return nil, errDecorate(err, "NewInfo")
	}
	I := &Info{
		Title:   S.Title,
		Cell:    cell,
		Volume:  S.Volume(),
		Atoms:   S.Len(),
		Species: S.Species,
		Dropped: S.Dropped,
	}
	if mass, ok := S.Mass(); ok {
		I.Mass = mass
		I.Density, _ = S.Density()
	}
	if S.Cell != nil && !S.Cell.Similar(cell, 1e-6) {
		c := *S.Cell
		I.DocumentCell = &c
	}
	return I, nil
}

// InfoWrite writes the summary of S as YAML to out.
func InfoWrite(out io.Writer, S *Structure) error {
	I, err := NewInfo(S)
	if err != nil {
		return errDecorate(err, "InfoWrite")
	}
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(I); err != nil {
		return fmt.Errorf("InfoWrite: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("InfoWrite: %w", err)
	}
	return nil
}
