// unicodeseg - a Unicode text-segmentation and case-folding engine
// Copyright (C) 2026  unicodeseg contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package ucd holds the compact, table-driven Unicode classification and
// case-fold data used by package unicodeseg. Nothing here depends on
// unicodeseg's types (bitmasks cross the package boundary as bare uint32),
// which keeps this package regenerable independently of the rule engines
// that consume it.
//
// The checked-in tables.go is a hand-seeded subset of the Unicode Character
// Database (see its header comment). internal/ucdgen reads the UCD property
// files and writes range tables and a fold map; see that package's doc
// comment for the input files and the command line:
//
//go:generate go run ../ucdgen -out tables.go -ucd-dir testdata/ucd
package ucd
