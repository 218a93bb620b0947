/*
 * conversion.go, part of goCryst.
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

import "math"

//This provides useful conversion factors and other constants

//Conversions
const (
	Rad2Deg = 180 / math.Pi
)

//Cell defaults for CIF documents that don't give the corresponding field.
const (
	DefaultLength = 1.0  //A
	DefaultAngle  = 90.0 //degrees
)
