/*
 * main.go, part of goCryst.
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

// gocryst converts a structure file between the POSCAR and CIF formats.
//
//	gocryst [-from fmt] [-to fmt] [-o output] [-info] input
//
// The input format is guessed from the file name unless -from is given.
// By default the structure is written in the other format to the standard
// output. With -o the output format and compression are guessed from the
// output name, unless -to is given.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	cryst "github.com/rmera/gocryst"
)

type config struct {
	Input  string
	Output string
	From   string
	To     string
	Info   bool
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("gocryst: ")
	var cfg config
	flag.StringVar(&cfg.Output, "o", "", "Output file. The standard output is used if not given")
	flag.StringVar(&cfg.From, "from", "", "Format of the input (poscar or cif). Guessed from the name if not given")
	flag.StringVar(&cfg.To, "to", "", "Format of the output (poscar or cif). By default, the format that is not the input's")
	flag.BoolVar(&cfg.Info, "info", false, "Print a YAML summary of the structure instead of converting it")
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		log.Fatal("exactly one input file must be given")
	}
	cfg.Input = flag.Arg(0)
	if err := run(cfg, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(cfg config, stdout io.Writer) error {
	S, from, err := readInput(cfg)
	if err != nil {
		return err
	}
	for _, l := range S.Dropped {
		log.Printf("skipped the atom record in line %d of %s", l, cfg.Input)
	}
	if cfg.Info {
		return cryst.InfoWrite(stdout, S)
	}
	to := from.Other()
	if cfg.To != "" {
		to, err = cryst.ParseFormat(cfg.To)
		if err != nil {
			return err
		}
	} else if cfg.Output != "" && cryst.FormatFromName(cfg.Output) != cryst.UnknownFormat {
		to = cryst.FormatFromName(cfg.Output)
	}
	if cfg.Output == "" {
		if err := cryst.Write(stdout, S, to); err != nil {
			return err
		}
		//CIF output has no trailing newline.
		if to == cryst.CIF {
			fmt.Fprintln(stdout)
		}
		return nil
	}
	if cryst.FormatFromName(cfg.Output) == to {
		return cryst.FileWrite(cfg.Output, S)
	}
	out, err := os.Create(cfg.Output)
	if err != nil {
		return err
	}
	defer out.Close()
	if err := cryst.Write(out, S, to); err != nil {
		return err
	}
	return out.Close()
}

func readInput(cfg config) (*cryst.Structure, cryst.Format, error) {
	if cfg.From == "" {
		S, err := cryst.FileRead(cfg.Input)
		return S, cryst.FormatFromName(cfg.Input), err
	}
	from, err := cryst.ParseFormat(cfg.From)
	if err != nil {
		return nil, from, err
	}
	in, err := os.Open(cfg.Input)
	if err != nil {
		return nil, from, err
	}
	defer in.Close()
	S, err := cryst.Read(in, from)
	return S, from, err
}
