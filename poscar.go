/*
 * poscar.go, part of goCryst.
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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	v3 "github.com/rmera/gocryst/v3"
	"gonum.org/v1/gonum/mat"
)

// Positions of the fixed lines of a POSCAR document (0-based).
const (
	poscarTitle = iota
	poscarScale
	poscarA
	poscarB
	poscarC
	poscarSymbols
	poscarCounts
	poscarMode
	poscarCoords
)

// PoscarToCif converts the POSCAR document poscar into a CIF document.
func PoscarToCif(poscar string) (string, error) {
	S, err := PoscarRead(strings.NewReader(poscar))
	if err != nil {
		return "", errDecorate(err, "PoscarToCif")
	}
	var b strings.Builder
	if err := CifWrite(&b, S); err != nil {
		return "", errDecorate(err, "PoscarToCif")
	}
	return b.String(), nil
}

// PoscarRead reads a POSCAR document from r.
// The lattice in the returned structure is already multiplied by the scale factor.
// The lines are: title, scale factor, the three lattice vectors, the element
// symbols, the number of atoms of each element, the coordinate mode, and one
// line per atom, with the coordinates in the first 3 fields.
// If the mode line starts with S (selective dynamics) the actual mode line
// follows it. If the mode starts with C or K, the coordinates are taken
// as cartesian, and transformed to fractional. Otherwise they are fractional.
func PoscarRead(r io.Reader) (*Structure, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("PoscarRead: %w", err)
	}
	S, err := poscarParse(splitLines(string(data)))
	return S, errDecorate(err, "PoscarRead")
}

func poscarParse(lines []string) (*Structure, error) {
	if len(lines) < poscarCoords {
		return nil, newError(ErrStructure, len(lines)+1, "poscarParse", "a POSCAR document needs at least %d lines, found %d", poscarCoords, len(lines))
	}
	fields := strings.Fields(lines[poscarScale])
	if len(fields) == 0 {
		return nil, newError(ErrStructure, poscarScale+1, "poscarParse", "missing scale factor")
	}
	scale, err := parseFloat(fields[0], poscarScale+1, "poscarParse")
	if err != nil {
		return nil, err
	}
	latt := make([]float64, 0, 9)
	for i := poscarA; i <= poscarC; i++ {
		v, err := parseVector(lines[i], i+1, "lattice vector")
		if err != nil {
			return nil, err
		}
		latt = append(latt, v[:]...)
	}
	lattice, err := v3.NewMatrix(latt)
	if err != nil {
		return nil, &Error{kind: ErrStructure, line: poscarC + 1, message: "can't build the lattice", deco: []string{"poscarParse"}, err: err}
	}
	lattice.ScaleVecs(scale)

	symbols := strings.Fields(lines[poscarSymbols])
	counts := strings.Fields(lines[poscarCounts])
	if len(symbols) != len(counts) {
		return nil, newError(ErrStructure, poscarCounts+1, "poscarParse", "%d element symbols but %d counts", len(symbols), len(counts))
	}
	species := make([]Species, len(symbols))
	natoms := 0
	for i, v := range counts {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, &Error{kind: ErrNumeric, line: poscarCounts + 1, message: fmt.Sprintf("can't parse atom count %q", v), deco: []string{"poscarParse"}, err: err}
		}
		if n < 0 {
			return nil, newError(ErrStructure, poscarCounts+1, "poscarParse", "negative atom count %d", n)
		}
		//Each atom needs its own line, which also keeps natoms from overflowing.
		if n > len(lines)-natoms {
			return nil, newError(ErrStructure, poscarCounts+1, "poscarParse", "%d atoms declared, but the document has only %d lines", natoms+n, len(lines))
		}
		species[i] = Species{Symbol: symbols[i], Count: n}
		natoms += n
	}

	start := poscarCoords
	mode := strings.TrimSpace(lines[poscarMode])
	if hasPrefixFold(mode, "s") {
		if len(lines) <= start {
			return nil, newError(ErrStructure, start+1, "poscarParse", "missing coordinate mode after selective dynamics")
		}
		mode = strings.TrimSpace(lines[start])
		start++
	}
	if len(lines) < start+natoms {
		return nil, newError(ErrStructure, len(lines)+1, "poscarParse", "%d atoms declared, but only %d coordinate lines", natoms, len(lines)-start)
	}
	sites := make([]AtomSite, 0, natoms)
	l := start
	for _, sp := range species {
		for i := 1; i <= sp.Count; i++ {
			v, err := parseVector(lines[l], l+1, "coordinates")
			if err != nil {
				return nil, err
			}
			sites = append(sites, AtomSite{Symbol: sp.Symbol, Index: i, Frac: v})
			l++
		}
	}
	if hasPrefixFold(mode, "c") || hasPrefixFold(mode, "k") {
		if err := cartesian2Fractional(sites, lattice, scale); err != nil {
			return nil, err
		}
	}
	return &Structure{Title: lines[poscarTitle], Lattice: lattice, Species: species, Sites: sites}, nil
}

// parseVector parses the first 3 fields of line. Extra fields are ignored.
func parseVector(line string, lineno int, what string) ([3]float64, error) {
	var ret [3]float64
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return ret, newError(ErrStructure, lineno, "parseVector", "%s needs 3 fields, found %d", what, len(fields))
	}
	for i := range ret {
		f, err := parseFloat(fields[i], lineno, "parseVector")
		if err != nil {
			return ret, err
		}
		ret[i] = f
	}
	return ret, nil
}

// cartesian2Fractional replaces, in place, the scaled cartesian coordinates in
// sites by fractional ones. The sites are taken as row vectors, so f = (scale*c) L^-1.
func cartesian2Fractional(sites []AtomSite, lattice *v3.Matrix, scale float64) error {
	var inv mat.Dense
	if err := inv.Inverse(lattice.Dense); err != nil {
		return &Error{kind: ErrDegenerate, message: "can't invert the lattice to obtain fractional coordinates", deco: []string{"cartesian2Fractional"}, err: err}
	}
	if len(sites) == 0 {
		return nil
	}
	cart := v3.Zeros(len(sites))
	for i, s := range sites {
		cart.SetVec(i, s.Frac[:])
	}
	cart.ScaleVecs(scale)
	frac := v3.Zeros(len(sites))
	frac.Mul(cart.Dense, &inv)
	for i := range sites {
		copy(sites[i].Frac[:], frac.Vec(i))
	}
	return nil
}

// PoscarWrite writes S as a POSCAR document with scale factor 1.0 and
// fractional (Direct) coordinates.
func PoscarWrite(out io.Writer, S *Structure) error {
	if err := S.Corrupted(); err != nil {
		return errDecorate(err, "PoscarWrite")
	}
	w := bufio.NewWriter(out)
	fmt.Fprintf(w, "%s\n1.0\n", S.Title)
	for i := 0; i < 3; i++ {
		v := S.Lattice.Vec(i)
		fmt.Fprintf(w, "%s %s %s\n", latticeComponent(v[0]), latticeComponent(v[1]), latticeComponent(v[2]))
	}
	symbols := make([]string, len(S.Species))
	counts := make([]string, len(S.Species))
	for i, sp := range S.Species {
		symbols[i] = sp.Symbol
		counts[i] = strconv.Itoa(sp.Count)
	}
	fmt.Fprintf(w, "%s\n%s\nDirect\n", strings.Join(symbols, " "), strings.Join(counts, " "))
	for _, s := range S.Sites {
		fmt.Fprintf(w, "%.6f %.6f %.6f\n", s.Frac[0], s.Frac[1], s.Frac[2])
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("PoscarWrite: %w", err)
	}
	return nil
}

// latticeComponent formats exact zeros as "0.0", as the orthogonal cells
// written from CIF documents have always been written.
func latticeComponent(f float64) string {
	if f == 0 {
		return "0.0"
	}
	return strconv.FormatFloat(f, 'f', 6, 64)
}

// splitLines trims text and splits it in lines. The line endings are removed.
// An empty text gives no lines.
func splitLines(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

func parseFloat(s string, lineno int, caller string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &Error{kind: ErrNumeric, line: lineno, message: fmt.Sprintf("can't parse %q as a number", s), deco: []string{caller}, err: err}
	}
	return f, nil
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
