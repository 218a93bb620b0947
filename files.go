/*
 * files.go, part of goCryst.
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
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// Format is a structure file format.
type Format int

const (
	UnknownFormat Format = iota
	POSCAR
	CIF
)

func (f Format) String() string {
	switch f {
	case POSCAR:
		return "poscar"
	case CIF:
		return "cif"
	}
	return "unknown"
}

// ParseFormat returns the format with the name s ("poscar", "vasp" or "cif"), case-insensitive.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "poscar", "vasp":
		return POSCAR, nil
	case "cif":
		return CIF, nil
	}
	return UnknownFormat, fmt.Errorf("ParseFormat: unknown format %q", s)
}

// Other returns the format a file in f is converted to by default.
func (f Format) Other() Format {
	switch f {
	case POSCAR:
		return CIF
	case CIF:
		return POSCAR
	}
	return UnknownFormat
}

// compression suffixes
const (
	zstdExt = ".zst"
	gzipExt = ".gz"
)

// FormatFromName guesses the format of a file from its name. Files ending in
// .cif are CIF, files ending in .vasp or .poscar, or whose name starts
// with POSCAR or CONTCAR are POSCAR. A .zst or .gz suffix is ignored.
func FormatFromName(name string) Format {
	base := strings.ToLower(filepath.Base(name))
	base = strings.TrimSuffix(strings.TrimSuffix(base, zstdExt), gzipExt)
	switch {
	case strings.HasSuffix(base, ".cif"):
		return CIF
	case strings.HasSuffix(base, ".vasp"), strings.HasSuffix(base, ".poscar"),
		strings.HasPrefix(base, "poscar"), strings.HasPrefix(base, "contcar"):
		return POSCAR
	}
	return UnknownFormat
}

// Read reads a structure in the format f from r.
func Read(r io.Reader, f Format) (*Structure, error) {
	switch f {
	case POSCAR:
		return PoscarRead(r)
	case CIF:
		return CifRead(r)
	}
	return nil, fmt.Errorf("Read: can't read format %s", f)
}

// Write writes S to w in the format f.
func Write(w io.Writer, S *Structure, f Format) error {
	switch f {
	case POSCAR:
		return PoscarWrite(w, S)
	case CIF:
		return CifWrite(w, S)
	}
	return fmt.Errorf("Write: can't write format %s", f)
}

//Also, why couldn't *zstd.Decoder implement io.ReadCloser? :-(
type zstdReadCloser struct {
	*zstd.Decoder
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

// decompressor returns a reader that decompresses r according to the
// suffix of name, or r itself if name has no compression suffix.
func decompressor(r io.Reader, name string) (io.ReadCloser, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case zstdExt:
		d, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zstdReadCloser{d}, nil
	case gzipExt:
		return gzip.NewReader(r)
	}
	return io.NopCloser(r), nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

func compressor(w io.Writer, name string) (io.WriteCloser, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case zstdExt:
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	case gzipExt:
		return gzip.NewWriterLevel(w, gzip.BestCompression)
	}
	return nopWriteCloser{w}, nil
}

// FileRead reads the structure in the file name. The format is obtained from the
// name with FormatFromName. Files ending in .zst (z-standard) or .gz (gzip) are decompressed.
func FileRead(name string) (*Structure, error) {
	f := FormatFromName(name)
	if f == UnknownFormat {
		return nil, fmt.Errorf("FileRead: can't guess the format of %s", name)
	}
	file, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("FileRead: %w", err)
	}
	defer file.Close()
	r, err := decompressor(file, name)
	if err != nil {
		return nil, fmt.Errorf("FileRead: can't decompress %s: %w", name, err)
	}
	defer r.Close()
	S, err := Read(r, f)
	return S, errDecorate(err, "FileRead")
}

// FileWrite writes S to the file name, which is created or overwritten.
// The format and compression are obtained from the name, as in FileRead.
func FileWrite(name string, S *Structure) error {
	f := FormatFromName(name)
	if f == UnknownFormat {
		return fmt.Errorf("FileWrite: can't guess the format of %s", name)
	}
	file, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("FileWrite: %w", err)
	}
	defer file.Close()
	w, err := compressor(file, name)
	if err != nil {
		return fmt.Errorf("FileWrite: %w", err)
	}
	if err := Write(w, S, f); err != nil {
		w.Close()
		return errDecorate(err, "FileWrite")
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("FileWrite: %w", err)
	}
	return file.Close()
}
