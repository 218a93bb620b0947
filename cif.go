/*
 * cif.go, part of goCryst.
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
	"strconv"
	"strings"
	"unicode"

	v3 "github.com/rmera/gocryst/v3"
)

// CifToPoscar converts the CIF document cif into a POSCAR document.
// The cell is always written as orthogonal, with the lengths given in
// the CIF document. The cell angles in the document are not used.
func CifToPoscar(cif string) (string, error) {
	S, err := CifRead(strings.NewReader(cif))
	if err != nil {
		return "", errDecorate(err, "CifToPoscar")
	}
	var b strings.Builder
	if err := PoscarWrite(&b, S); err != nil {
		return "", errDecorate(err, "CifToPoscar")
	}
	return b.String(), nil
}

//Tags are compared after normalization with cifKey, so "_cell_length_a",
//"*cell*length_a" and "_cell.length_a" are all the same tag.
const atomSitePrefix = "_atom_site_"

var cellFields = map[string]func(*Cell, float64){
	"_cell_length_a":    func(c *Cell, f float64) { c.A = f },
	"_cell_length_b":    func(c *Cell, f float64) { c.B = f },
	"_cell_length_c":    func(c *Cell, f float64) { c.C = f },
	"_cell_angle_alpha": func(c *Cell, f float64) { c.Alpha = f },
	"_cell_angle_beta":  func(c *Cell, f float64) { c.Beta = f },
	"_cell_angle_gamma": func(c *Cell, f float64) { c.Gamma = f },
}

var keyReplacer = strings.NewReplacer("*", "_", ".", "_")

// cifKey normalizes the CIF tag tag. It returns false if tag is not a tag.
func cifKey(tag string) (string, bool) {
	if !strings.HasPrefix(tag, "_") && !strings.HasPrefix(tag, "*") {
		return "", false
	}
	return keyReplacer.Replace(strings.ToLower(tag)), true
}

type cifState int

const (
	cifOutside cifState = iota //not in a loop
	cifColumns                 //after loop_, reading the column tags
	cifData                    //reading the rows of a loop
)

type cifRecord struct {
	line   int
	fields []string
}

// cifLoop is one loop_ block. Only the rows of atom site loops are kept.
type cifLoop struct {
	columns []string
	atoms   bool
	records []cifRecord
}

// CifRead reads a CIF document from r. Only the cell parameters and the
// atom sites with fractional coordinates are read. The element of each
// site is taken from the letters of the type_symbol column, or, if that
// gives nothing, from the letters of the label column. Atom records that
// lack fractional coordinates, or where they can't be parsed, are skipped,
// and their lines listed in the Dropped field of the returned Structure.
// The lattice of the returned Structure is always orthogonal, with a, b
// and c in the diagonal. The cell angles are only kept in its Cell field.
func CifRead(r io.Reader) (*Structure, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("CifRead: %w", err)
	}
	S, err := cifParse(splitLines(string(data)))
	return S, errDecorate(err, "CifRead")
}

func cifParse(lines []string) (*Structure, error) {
	if len(lines) == 0 {
		return nil, newError(ErrStructure, 1, "cifParse", "empty document")
	}
	title := strings.TrimPrefix(lines[0], "data_")
	cell := DefaultCell()
	var loops []*cifLoop
	var cur *cifLoop
	state := cifOutside
	intext := false //inside a ; delimited text field.
	//the first line is the title, whatever it contains.
	for i, line := range lines[1:] {
		lineno := i + 2
		if strings.HasPrefix(line, ";") {
			intext = !intext
			continue
		}
		trimmed := strings.TrimSpace(line)
		if intext || trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		fields := cifFields(trimmed)
		if isLoopStart(fields) {
			cur = &cifLoop{}
			loops = append(loops, cur)
			state = cifColumns
			continue
		}
		if key, ok := cifKey(fields[0]); ok {
			if state == cifColumns {
				cur.columns = append(cur.columns, key)
				if strings.HasPrefix(key, atomSitePrefix) {
					cur.atoms = true
				}
				continue
			}
			//A tag after the rows of a loop ends the loop.
			state = cifOutside
			if set, ok := cellFields[key]; ok {
				if len(fields) < 2 {
					return nil, newError(ErrStructure, lineno, "cifParse", "no value for %s", fields[0])
				}
				f, err := parseFloat(stripUncertainty(fields[len(fields)-1]), lineno, "cifParse")
				if err != nil {
					return nil, err
				}
				set(&cell, f)
			}
			continue
		}
		if state == cifColumns {
			state = cifData
		}
		if state == cifData && cur.atoms && len(fields) >= 4 {
			cur.records = append(cur.records, cifRecord{line: lineno, fields: fields})
		}
	}
	sites := make([]AtomSite, 0, 8)
	var dropped []int
	for _, l := range loops {
		if !l.atoms {
			continue
		}
		roles := resolveRoles(l.columns)
		//Loops without coordinates, like the anisotropic displacement one.
		if roles.frac[0] < 0 || roles.frac[1] < 0 || roles.frac[2] < 0 {
			continue
		}
		for _, rec := range l.records {
			at, ok := tryParseAtom(rec.fields, roles)
			if !ok {
				dropped = append(dropped, rec.line)
				continue
			}
			sites = append(sites, at)
		}
	}
	S := NewStructure(title, v3.Diag(cell.A, cell.B, cell.C), sites)
	S.Cell = &cell
	S.Dropped = dropped
	return S, nil
}

func isLoopStart(fields []string) bool {
	for _, v := range fields {
		if strings.EqualFold(v, "loop_") {
			return true
		}
	}
	return false
}

// siteRoles has the column of each of the fields used from an atom
// site loop, or -1 if the column is not present.
type siteRoles struct {
	symbol int
	label  int
	frac   [3]int
}

func resolveRoles(columns []string) siteRoles {
	index := func(name string) int {
		for i, v := range columns {
			if v == atomSitePrefix+name {
				return i
			}
		}
		return -1
	}
	return siteRoles{
		symbol: index("type_symbol"),
		label:  index("label"),
		frac:   [3]int{index("fract_x"), index("fract_y"), index("fract_z")},
	}
}

// tryParseAtom obtains a site from the fields of an atom record. It returns false if the
// fractional coordinates are not in the record, or can't be parsed, or if no element
// can be obtained.
func tryParseAtom(fields []string, r siteRoles) (AtomSite, bool) {
	var at AtomSite
	for j, k := range r.frac {
		if k < 0 || k >= len(fields) {
			return at, false
		}
		f, err := strconv.ParseFloat(stripUncertainty(fields[k]), 64)
		if err != nil {
			return at, false
		}
		at.Frac[j] = f
	}
	if r.symbol >= 0 && r.symbol < len(fields) {
		at.Symbol = letters(fields[r.symbol])
	}
	if at.Symbol == "" && r.label >= 0 && r.label < len(fields) {
		at.Symbol = letters(fields[r.label])
	}
	return at, at.Symbol != ""
}

// letters returns only the letters in s, so "Fe2" gives "Fe" and "O2-" gives "O".
func letters(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			return r
		}
		return -1
	}, s)
}

// stripUncertainty removes the standard uncertainty from a CIF number, i.e.
// "5.4307(2)" gives "5.4307".
func stripUncertainty(s string) string {
	if !strings.HasSuffix(s, ")") {
		return s
	}
	if i := strings.LastIndex(s, "("); i > 0 {
		return s[:i]
	}
	return s
}

// cifFields splits a CIF line in its values. Values can be quoted with
// ' or ", in which case they can contain blanks. A quote only closes the
// value when followed by a blank or the end of the line.
func cifFields(line string) []string {
	isBlank := func(c byte) bool { return c == ' ' || c == '\t' }
	fields := make([]string, 0, 8)
	i := 0
	for i < len(line) {
		for i < len(line) && isBlank(line[i]) {
			i++
		}
		if i >= len(line) {
			break
		}
		if q := line[i]; q == '\'' || q == '"' {
			j := i + 1
			for j < len(line) && !(line[j] == q && (j+1 == len(line) || isBlank(line[j+1]))) {
				j++
			}
			if j < len(line) {
				fields = append(fields, line[i+1:j])
				i = j + 1
				continue
			}
			//unterminated quote, we read it as a regular value.
		}
		j := i
		for j < len(line) && !isBlank(line[j]) {
			j++
		}
		fields = append(fields, line[i:j])
		i = j
	}
	return fields
}

// CifWrite writes S as a CIF document in the P 1 space group, with one atom site loop
// with labels and fractional coordinates. The cell parameters are the ones read from the
// CIF document, if S comes from one, or are obtained from the lattice otherwise.
// As the title line has no data_ prefix, the output has no trailing newline.
func CifWrite(out io.Writer, S *Structure) error {
	if err := S.Corrupted(); err != nil {
		return errDecorate(err, "CifWrite")
	}
	var cell Cell
	if S.Cell != nil {
		cell = *S.Cell
	} else {
		var err error
		cell, err = CellFromLattice(S.Lattice)
		if err != nil {
			return errDecorate(err, "CifWrite")
		}
	}
	lines := make([]string, 0, 14+S.Len())
	lines = append(lines,
		strings.ReplaceAll(S.Title, " ", "_"),
		"_symmetry_space_group_name_H-M   'P 1'",
		"_symmetry_Int_Tables_number      1",
		fmt.Sprintf("_cell_length_a    %.6f", cell.A),
		fmt.Sprintf("_cell_length_b    %.6f", cell.B),
		fmt.Sprintf("_cell_length_c    %.6f", cell.C),
		fmt.Sprintf("_cell_angle_alpha %.2f", cell.Alpha),
		fmt.Sprintf("_cell_angle_beta  %.2f", cell.Beta),
		fmt.Sprintf("_cell_angle_gamma %.2f", cell.Gamma),
		"loop_",
		"  _atom_site_label",
		"  _atom_site_fract_x",
		"  _atom_site_fract_y",
		"  _atom_site_fract_z",
	)
	k := 0
	for _, sp := range S.Species {
		for j := 1; j <= sp.Count; j, k = j+1, k+1 {
			s := S.Sites[k]
			s.Index = j
			lines = append(lines, fmt.Sprintf("  %s %.6f %.6f %.6f", s.Label(), s.Frac[0], s.Frac[1], s.Frac[2]))
		}
	}
	if _, err := io.WriteString(out, strings.Join(lines, "\n")); err != nil {
		return fmt.Errorf("CifWrite: %w", err)
	}
	return nil
}
