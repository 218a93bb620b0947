/*
 * structure.go, part of goCryst.
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
	"math"

	v3 "github.com/rmera/gocryst/v3"
)

// Species is an element symbol and the number of atoms of that element
// in a group of sites.
type Species struct {
	Symbol string `yaml:"symbol"`
	Count  int    `yaml:"count"`
}

// AtomSite is one atom in the cell.
type AtomSite struct {
	Symbol string
	Index  int        //1-based position of the site within its species group. Only used for labels.
	Frac   [3]float64 //fractional coordinates
}

// Label returns the name of the site, i.e. "Si2" for the second Si of its group.
func (A AtomSite) Label() string {
	return fmt.Sprintf("%s%d", A.Symbol, A.Index)
}

// Structure is a crystal structure, as read from a POSCAR or CIF document.
// The sites are grouped by species, in the order of Species, so the first
// Species[0].Count sites are of the first species, and so on.
type Structure struct {
	Title   string
	Lattice *v3.Matrix //the lattice vectors a, b and c, one per row, in A.
	//The cell parameters given in the document. Only set when the structure comes from
	//a CIF document. Note that Lattice is always orthogonal in that case, so the angles
	//here may differ from the ones obtained from Lattice.
	Cell    *Cell
	Species []Species
	Sites   []AtomSite
	Dropped []int //1-based lines of atom records that were skipped while reading.
}

// NewStructure builds a structure from sites in any order. Species are
// listed in the order they are first found in sites, and the sites are
// grouped accordingly, keeping their relative order within each species.
// The Index of each site is set.
func NewStructure(title string, lattice *v3.Matrix, sites []AtomSite) *Structure {
	species := make([]Species, 0, 4)
	pos := make(map[string]int)
	for _, s := range sites {
		i, ok := pos[s.Symbol]
		if !ok {
			i = len(species)
			pos[s.Symbol] = i
			species = append(species, Species{Symbol: s.Symbol})
		}
		species[i].Count++
	}
	grouped := make([]AtomSite, 0, len(sites))
	for _, sp := range species {
		idx := 0
		for _, s := range sites {
			if s.Symbol != sp.Symbol {
				continue
			}
			idx++
			s.Index = idx
			grouped = append(grouped, s)
		}
	}
	return &Structure{Title: title, Lattice: lattice, Species: species, Sites: grouped}
}

// Len returns the number of sites in the structure.
func (S *Structure) Len() int {
	return len(S.Sites)
}

// Volume returns the volume of the cell spanned by the lattice vectors, in A^3.
func (S *Structure) Volume() float64 {
	return math.Abs(S.Lattice.Det())
}

// Corrupted returns an error if the structure is not consistent, i.e. if the
// lattice doesn't have 3 vectors, or if the species counts don't match the sites.
func (S *Structure) Corrupted() error {
	if S.Lattice == nil || S.Lattice.NVecs() != 3 {
		return newError(ErrStructure, 0, "Corrupted", "the lattice must have 3 vectors")
	}
	i := 0
	for _, sp := range S.Species {
		if sp.Count < 0 {
			return newError(ErrStructure, 0, "Corrupted", "negative count for species %s", sp.Symbol)
		}
		for j := 0; j < sp.Count; j, i = j+1, i+1 {
			if i >= len(S.Sites) {
				return newError(ErrStructure, 0, "Corrupted", "species counts add up to more than the %d sites", len(S.Sites))
			}
			if S.Sites[i].Symbol != sp.Symbol {
				return newError(ErrStructure, 0, "Corrupted", "site %d is %s, but %s expected", i+1, S.Sites[i].Symbol, sp.Symbol)
			}
		}
	}
	if i != len(S.Sites) {
		return newError(ErrStructure, 0, "Corrupted", "species counts add up to %d, but there are %d sites", i, len(S.Sites))
	}
	return nil
}
