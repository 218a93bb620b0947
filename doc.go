/*
 * doc.go, part of goCryst.
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

/*
Package cryst converts crystal structures between the POSCAR format used by
VASP and other atomistic simulation programs, and the CIF format used for
crystallographic data exchange.

	**goCryst Capabilities**

    Reads and writes POSCAR documents (direct or cartesian coordinates,
	with or without selective dynamics).

    Reads CIF documents, accepting tags with the usual underscore convention
	(_cell_length_a, _atom_site_fract_x), the dotted mmCIF one (_cell.length_a)
	and a wildcard one (*cell*length_a). Writes P 1 CIF documents.

    Obtains cell lengths and angles from lattice vectors.

    Reads and writes z-standard and gzip compressed files.

    Summarizes structures in YAML, including mass and density when the
	elements are known.

The conversions are pure functions over strings: PoscarToCif and CifToPoscar.
They keep no state, so they can be called concurrently.

Limitations: Only P 1 is written, and space group symmetry in CIF documents
is ignored. The lattice obtained from a CIF document is always orthogonal,
with the cell lengths in the document as edges. The cell angles are read (and
kept in Structure.Cell) but not used to build the lattice, so converting a
non-orthogonal cell from CIF to POSCAR loses information.
*/
package cryst
