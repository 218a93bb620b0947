/*
 * errors.go, part of goCryst.
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
	"fmt"
	"strings"
)

// The kinds of Error. Use them with errors.Is.
var (
	// ErrStructure means the text lacks the lines or fields the format requires.
	ErrStructure = errors.New("structural parse error")
	// ErrNumeric means a field that should be a number could not be parsed.
	ErrNumeric = errors.New("numeric format error")
	// ErrDegenerate means a lattice vector has zero length.
	ErrDegenerate = errors.New("degenerate geometry")
)

// Error is the error returned by the readers and writers in this package.
// It keeps a list of the functions it went through,
// which can be extended with Decorate.
type Error struct {
	kind    error
	message string
	line    int //1-based. 0 if the error is not tied to a line.
	deco    []string
	err     error
}

func newError(kind error, line int, caller, format string, args ...interface{}) *Error {
	return &Error{kind: kind, message: fmt.Sprintf(format, args...), line: line, deco: []string{caller}}
}

// Error returns a string with an error message.
func (E *Error) Error() string {
	var b strings.Builder
	if len(E.deco) > 0 {
		b.WriteString(E.deco[len(E.deco)-1])
		b.WriteString(": ")
	}
	b.WriteString(E.kind.Error())
	if E.line > 0 {
		fmt.Fprintf(&b, " in line %d", E.line)
	}
	b.WriteString(": ")
	b.WriteString(E.message)
	if E.err != nil {
		b.WriteString(": ")
		b.WriteString(E.err.Error())
	}
	return b.String()
}

// Decorate adds dec to the decoration slice of the error and returns the
// resulting slice. If dec is empty, it just returns the current slice.
func (E *Error) Decorate(dec string) []string {
	if dec != "" {
		E.deco = append(E.deco, dec)
	}
	return E.deco
}

// Line returns the 1-based line of the input where the problem was found,
// or 0.
func (E *Error) Line() int { return E.line }

// Is reports whether target is the kind of the error.
func (E *Error) Is(target error) bool { return target == E.kind }

// Unwrap returns the underlying error, if any (usually from strconv).
func (E *Error) Unwrap() error { return E.err }

// errDecorate decorates err with the caller's name if it is
// an *Error, and returns it.
func errDecorate(err error, caller string) error {
	var E *Error
	if errors.As(err, &E) {
		E.Decorate(caller)
	}
	return err
}
