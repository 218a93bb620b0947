/*
 * cif_test.go, part of goCryst.
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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const quartzCif = `data_quartz
# a comment
_cell_length_a 4.9134(2)
_cell_length_b 4.9134
_cell_length_c 5.4052
_cell_angle_gamma 120

loop_
_symmetry_equiv_pos_as_xyz
'x, y, z'
loop_
_atom_site_label
_atom_site_type_symbol
_atom_site_fract_x
_atom_site_fract_y
_atom_site_fract_z
Si1 Si 0.4697 0.0000 0.0000
O1 O 0.4135 0.2669 0.1191
Si2 Si abc 0.5 0.5
O2 O 0.1 0.2
Si3 Si 0.1(1) 0.2 0.3
loop_
_atom_site_aniso_label
_atom_site_aniso_U_11
_atom_site_aniso_U_22
_atom_site_aniso_U_33
Si1 0.01 0.01 0.01
`

func TestCifRead(Te *testing.T) {
	S, err := CifRead(strings.NewReader(quartzCif))
	require.NoError(Te, err)
	assert.Equal(Te, "quartz", S.Title)
	assert.Equal(Te, Cell{4.9134, 4.9134, 5.4052, 90, 90, 120}, *S.Cell)
	assert.Equal(Te, []float64{0, 0, 5.4052}, S.Lattice.Vec(2))
	assert.Equal(Te, []Species{{"Si", 2}, {"O", 1}}, S.Species)
	expected := []AtomSite{
		{"Si", 1, [3]float64{0.4697, 0, 0}},
		{"Si", 2, [3]float64{0.1, 0.2, 0.3}},
		{"O", 1, [3]float64{0.4135, 0.2669, 0.1191}},
	}
	assert.Empty(Te, cmp.Diff(expected, S.Sites))
	//the malformed records, not the anisotropic ones.
	assert.Equal(Te, []int{19, 20}, S.Dropped)
	assert.NoError(Te, S.Corrupted())
}

func TestCifToPoscar(Te *testing.T) {
	poscar, err := CifToPoscar(quartzCif)
	require.NoError(Te, err)
	expected := `quartz
1.0
4.913400 0.0 0.0
0.0 4.913400 0.0
0.0 0.0 5.405200
Si O
2 1
Direct
0.469700 0.000000 0.000000
0.100000 0.200000 0.300000
0.413500 0.266900 0.119100
`
	assert.Equal(Te, expected, poscar)
}

func TestCifWildcardTags(Te *testing.T) {
	underscore := `data_NaCl
_cell_length_a 5.64
_cell_length_b 5.64
_cell_length_c 5.64
_cell_angle_alpha 90
loop_
_atom_site_label
_atom_site_type_symbol
_atom_site_fract_x
_atom_site_fract_y
_atom_site_fract_z
Na1 Na 0 0 0
Cl1 Cl 0.5 0.5 0.5
`
	wildcard := strings.NewReplacer("_cell_", "*cell*", "_atom_site_", "*atom*site_").Replace(underscore)
	require.Contains(Te, wildcard, "*cell*length_a 5.64")
	require.Contains(Te, wildcard, "*atom*site_type_symbol")
	dotted := strings.NewReplacer("_cell_", "_cell.", "_atom_site_", "_atom_site.").Replace(underscore)

	ref, err := CifRead(strings.NewReader(underscore))
	require.NoError(Te, err)
	refPoscar, err := CifToPoscar(underscore)
	require.NoError(Te, err)
	assert.Contains(Te, refPoscar, "5.640000 0.0 0.0")
	assert.Contains(Te, refPoscar, "Na Cl\n1 1\n")
	for _, doc := range []string{wildcard, dotted} {
		S, err := CifRead(strings.NewReader(doc))
		require.NoError(Te, err)
		assert.Equal(Te, *ref.Cell, *S.Cell)
		assert.Empty(Te, cmp.Diff(ref.Species, S.Species))
		assert.Empty(Te, cmp.Diff(ref.Sites, S.Sites))
		poscar, err := CifToPoscar(doc)
		require.NoError(Te, err)
		assert.Equal(Te, refPoscar, poscar)
	}
}

func TestCifLabelsAndOrder(Te *testing.T) {
	cif := `data_mixed
_publ_section_title
;
A text field with words 1 2 3
loop_
;
loop_
_atom_site_label
_atom_site_fract_x
_atom_site_fract_y
_atom_site_fract_z
Fe2 0.1 0.2 0.3
O1 0.4 0.5 0.6
Fe10 0.7 0.8 0.9
`
	S, err := CifRead(strings.NewReader(cif))
	require.NoError(Te, err)
	assert.Equal(Te, DefaultCell(), *S.Cell)
	assert.Equal(Te, []Species{{"Fe", 2}, {"O", 1}}, S.Species)
	assert.Equal(Te, [3]float64{0.7, 0.8, 0.9}, S.Sites[1].Frac)
	assert.Equal(Te, "Fe2", S.Sites[1].Label())
	assert.Empty(Te, S.Dropped)

	poscar, err := CifToPoscar(cif)
	require.NoError(Te, err)
	assert.True(Te, strings.HasPrefix(poscar, "mixed\n1.0\n1.000000 0.0 0.0\n"))
	assert.Contains(Te, poscar, "Fe O\n2 1\nDirect\n")
}

func TestCifErrors(Te *testing.T) {
	cases := []struct {
		name string
		text string
		kind error
		line int
	}{
		{"empty", "", ErrStructure, 1},
		{"blank", "  \n\n ", ErrStructure, 1},
		{"cell value", "data_x\n_cell_length_a abc\n", ErrNumeric, 2},
		{"no cell value", "data_x\n*cell*angle_beta\n", ErrStructure, 2},
	}
	for _, c := range cases {
		Te.Run(c.name, func(Te *testing.T) {
			_, err := CifToPoscar(c.text)
			require.Error(Te, err)
			assert.True(Te, errors.Is(err, c.kind), "got %v", err)
			var E *Error
			require.True(Te, errors.As(err, &E))
			assert.Equal(Te, c.line, E.Line())
		})
	}
}

func TestCifWriteKeepsDocumentCell(Te *testing.T) {
	S, err := CifRead(strings.NewReader(quartzCif))
	require.NoError(Te, err)
	var b strings.Builder
	require.NoError(Te, CifWrite(&b, S))
	out := b.String()
	assert.True(Te, strings.HasPrefix(out, "quartz\n"))
	assert.Contains(Te, out, "_cell_angle_gamma 120.00")
	assert.Contains(Te, out, "  Si2 0.100000 0.200000 0.300000\n  O1 0.413500 0.266900 0.119100")
	assert.False(Te, strings.HasSuffix(out, "\n"))
}

func TestCifTitleIsNotParsed(Te *testing.T) {
	for _, title := range []string{";Si sample", "loop_", "_cell_length_a 9", "# not a comment"} {
		poscar := strings.Replace(siliconPoscar, "Silicon", title, 1)
		cif, err := PoscarToCif(poscar)
		require.NoError(Te, err, title)
		back, err := CifToPoscar(cif)
		require.NoError(Te, err, title)
		S, err := PoscarRead(strings.NewReader(back))
		require.NoError(Te, err, title)
		assert.Equal(Te, strings.ReplaceAll(title, " ", "_"), S.Title)
		assert.Equal(Te, []float64{5, 0, 0}, S.Lattice.Vec(0), title)
		assert.Equal(Te, []Species{{"Si", 2}}, S.Species, title)
		assert.Equal(Te, [3]float64{0.5, 0.5, 0.5}, S.Sites[1].Frac, title)
	}
}

func TestCifFields(Te *testing.T) {
	assert.Equal(Te, []string{"Si1", "P 1", "x y", "0.5"}, cifFields(`Si1 'P 1'   "x y"	0.5`))
	assert.Equal(Te, []string{"O'1", "0.1"}, cifFields(`O'1 0.1`))
	assert.Equal(Te, []string{"it's", "ok"}, cifFields(`'it's' ok`))
	assert.Equal(Te, []string{"'open", "end"}, cifFields(`'open end`))
	assert.Empty(Te, cifFields("   "))
}

func TestTryParseAtom(Te *testing.T) {
	roles := resolveRoles([]string{"_atom_site_label", "_atom_site_type_symbol", "_atom_site_fract_x", "_atom_site_fract_y", "_atom_site_fract_z"})
	at, ok := tryParseAtom([]string{"Fe1", "Fe3+", "0.1", "0.2", "0.3(4)"}, roles)
	require.True(Te, ok)
	assert.Equal(Te, AtomSite{Symbol: "Fe", Frac: [3]float64{0.1, 0.2, 0.3}}, at)
	at, ok = tryParseAtom([]string{"Fe1", "?", "0.1", "0.2", "0.3"}, roles)
	require.True(Te, ok)
	assert.Equal(Te, "Fe", at.Symbol)
	_, ok = tryParseAtom([]string{"Fe1", "Fe", "0.1", "0.2"}, roles)
	assert.False(Te, ok)
	_, ok = tryParseAtom([]string{"Fe1", "Fe", "0.1", "?", "0.3"}, roles)
	assert.False(Te, ok)
	_, ok = tryParseAtom([]string{"12", "?", "0.1", "0.2", "0.3"}, roles)
	assert.False(Te, ok)
	_, ok = tryParseAtom([]string{"Fe1", "Fe", "0.1"}, resolveRoles([]string{"_atom_site_label"}))
	assert.False(Te, ok)
}
