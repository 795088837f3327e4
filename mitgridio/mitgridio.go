// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package mitgridio reads and writes binary mitgrid files: the sixteen
// grid geometry fields, concatenated in a fixed order as big-endian
// float64 values, each field stored column-major (east-west index
// fastest). Files carry no header, so cell counts must be supplied by
// the caller.
package mitgridio

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/ctessum/sparse"
)

// Field describes one mitgrid field: its name and the shape of its
// array for a grid of ni x nj cells.
type Field struct {
	Name  string
	Shape func(ni, nj int) (int, int)
}

// Fields lists the mitgrid fields in file order.
var Fields = []Field{
	{"XC", func(ni, nj int) (int, int) { return ni, nj }},
	{"YC", func(ni, nj int) (int, int) { return ni, nj }},
	{"DXF", func(ni, nj int) (int, int) { return ni, nj }},
	{"DYF", func(ni, nj int) (int, int) { return ni, nj }},
	{"RAC", func(ni, nj int) (int, int) { return ni, nj }},
	{"XG", func(ni, nj int) (int, int) { return ni + 1, nj + 1 }},
	{"YG", func(ni, nj int) (int, int) { return ni + 1, nj + 1 }},
	{"DXV", func(ni, nj int) (int, int) { return ni + 1, nj + 1 }},
	{"DYU", func(ni, nj int) (int, int) { return ni + 1, nj + 1 }},
	{"RAZ", func(ni, nj int) (int, int) { return ni + 1, nj + 1 }},
	{"DXC", func(ni, nj int) (int, int) { return ni + 1, nj }},
	{"DYC", func(ni, nj int) (int, int) { return ni, nj + 1 }},
	{"RAW", func(ni, nj int) (int, int) { return ni + 1, nj }},
	{"RAS", func(ni, nj int) (int, int) { return ni, nj + 1 }},
	{"DXG", func(ni, nj int) (int, int) { return ni, nj + 1 }},
	{"DYG", func(ni, nj int) (int, int) { return ni + 1, nj }},
}

// Shape returns the array shape of the named field for a grid of
// ni x nj cells, and whether the name is recognized.
func Shape(name string, ni, nj int) (int, int, bool) {
	for _, f := range Fields {
		if f.Name == name {
			i, j := f.Shape(ni, nj)
			return i, j, true
		}
	}
	return 0, 0, false
}

// totalWords returns the number of float64 values in a file for a grid
// of ni x nj cells.
func totalWords(ni, nj int) int {
	total := 0
	for _, f := range Fields {
		rows, cols := f.Shape(ni, nj)
		total += rows * cols
	}
	return total
}

// Read reads a mitgrid file for a grid of ni x nj cells and returns its
// fields keyed by name.
func Read(path string, ni, nj int) (map[string]*sparse.DenseArray, error) {
	if ni < 1 || nj < 1 {
		return nil, fmt.Errorf("mitgridio: cell counts %d x %d, must be >= 1", ni, nj)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mitgridio: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("mitgridio: %w", err)
	}
	if want := int64(totalWords(ni, nj)) * 8; info.Size() != want {
		return nil, fmt.Errorf("mitgridio: %s is %d bytes, want %d for a %d x %d cell grid",
			path, info.Size(), want, ni, nj)
	}

	r := bufio.NewReader(file)
	grid := make(map[string]*sparse.DenseArray, len(Fields))
	for _, f := range Fields {
		rows, cols := f.Shape(ni, nj)
		words := make([]float64, rows*cols)
		if err := binary.Read(r, binary.BigEndian, words); err != nil {
			return nil, fmt.Errorf("mitgridio: reading %s: %w", f.Name, err)
		}
		a := sparse.ZerosDense(rows, cols)
		for k, v := range words {
			a.Set(v, k%rows, k/rows)
		}
		grid[f.Name] = a
	}
	return grid, nil
}

// Write writes the grid's fields to a mitgrid file for a grid of
// ni x nj cells. Every field in Fields must be present with the shape
// the registry declares.
func Write(path string, grid map[string]*sparse.DenseArray, ni, nj int) error {
	if ni < 1 || nj < 1 {
		return fmt.Errorf("mitgridio: cell counts %d x %d, must be >= 1", ni, nj)
	}
	for _, f := range Fields {
		a, ok := grid[f.Name]
		if !ok || a == nil {
			return fmt.Errorf("mitgridio: grid is missing field %s", f.Name)
		}
		rows, cols := f.Shape(ni, nj)
		if len(a.Shape) != 2 || a.Shape[0] != rows || a.Shape[1] != cols {
			return fmt.Errorf("mitgridio: field %s has shape %v, want %dx%d",
				f.Name, a.Shape, rows, cols)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("mitgridio: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, f := range Fields {
		a := grid[f.Name]
		rows, cols := a.Shape[0], a.Shape[1]
		words := make([]float64, rows*cols)
		for k := range words {
			words[k] = a.Get(k%rows, k/rows)
		}
		if err := binary.Write(w, binary.BigEndian, words); err != nil {
			return fmt.Errorf("mitgridio: writing %s: %w", f.Name, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("mitgridio: %w", err)
	}
	return file.Close()
}
