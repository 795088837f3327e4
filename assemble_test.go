// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package mitregrid

import (
	"fmt"
	"math"
	"testing"

	"github.com/2dChan/mitregrid/geodesy"
)

// Every output field's shape must follow its staggering formula as a
// function of the refined cell counts, for every subscale combination.
func TestAssemble_ShapeLaw(t *testing.T) {
	xg, yg := testSourceGrid(6, 5, 0, 0, 1, 1)
	g := geodesy.DefaultSphere()
	b := Bounds{ILB: 1, JLB: 1, IUB: 4, JUB: 3}

	// Shape formulas from the C-grid staggering conventions, with
	// M, N the refined east-west and north-south cell counts.
	shapes := map[string][2]int{
		"XC": {0, 0}, "YC": {0, 0},
		"XG": {1, 1}, "YG": {1, 1},
		"DXG": {0, 1}, "DYG": {1, 0}, "RAC": {0, 0},
		"DXC": {1, 0}, "DYC": {0, 1}, "RAZ": {1, 1},
		"DXV": {1, 1}, "DYF": {0, 0}, "RAW": {1, 0},
		"DXF": {0, 0}, "DYU": {1, 1}, "RAS": {0, 1},
	}

	for _, ls := range []int{1, 2, 3, 5, 10} {
		for _, ts := range []int{1, 2, 3, 5, 10} {
			t.Run(fmt.Sprintf("subscale %d x %d", ls, ts), func(t *testing.T) {
				cgx, cgy, err := buildComputeGrid(xg, yg, b, ls, ts, g)
				if err != nil {
					t.Fatalf("buildComputeGrid() error = %v", err)
				}
				areas := squadAreas(cgx, cgy, g.Radius())
				mi := (b.IUB - b.ILB) * ls
				mj := (b.JUB - b.JLB) * ts
				grid, err := assemble(cgx, cgy, areas, ls, ts, mi, mj, g)
				if err != nil {
					t.Fatalf("assemble() error = %v", err)
				}
				if len(grid) != len(shapes) {
					t.Fatalf("assemble() produced %d fields, want %d", len(grid), len(shapes))
				}
				for name, plus := range shapes {
					f, ok := grid[name]
					if !ok {
						t.Errorf("field %s missing", name)
						continue
					}
					wantI := mi + plus[0]
					wantJ := mj + plus[1]
					if f.Shape[0] != wantI || f.Shape[1] != wantJ {
						t.Errorf("%s shape = %dx%d, want %dx%d",
							name, f.Shape[0], f.Shape[1], wantI, wantJ)
					}
				}
			})
		}
	}
}

// At subscale 1 the tracer-corner edge lengths must equal the direct
// inverse-problem distances between adjacent source corners.
func TestAssemble_IdentityEdgeLengths(t *testing.T) {
	xg, yg := testSourceGrid(5, 5, 10, 30, 1, 1)
	g := geodesy.DefaultSphere()
	b := Bounds{ILB: 1, JLB: 1, IUB: 4, JUB: 4}

	cgx, cgy, err := buildComputeGrid(xg, yg, b, 1, 1, g)
	if err != nil {
		t.Fatalf("buildComputeGrid() error = %v", err)
	}
	areas := squadAreas(cgx, cgy, g.Radius())
	grid, err := assemble(cgx, cgy, areas, 1, 1, 3, 3, g)
	if err != nil {
		t.Fatalf("assemble() error = %v", err)
	}

	for m := 0; m < 3; m++ {
		for n := 0; n <= 3; n++ {
			_, _, want, err := g.Inverse(
				xg.Get(1+m, 1+n), yg.Get(1+m, 1+n),
				xg.Get(2+m, 1+n), yg.Get(2+m, 1+n))
			if err != nil {
				t.Fatalf("Inverse() error = %v", err)
			}
			if got := grid["DXG"].Get(m, n); math.Abs(got-want) > 1e-6*want {
				t.Errorf("DXG(%d,%d) = %v, want %v", m, n, got, want)
			}
		}
	}
	for m := 0; m <= 3; m++ {
		for n := 0; n < 3; n++ {
			_, _, want, err := g.Inverse(
				xg.Get(1+m, 1+n), yg.Get(1+m, 1+n),
				xg.Get(1+m, 2+n), yg.Get(1+m, 2+n))
			if err != nil {
				t.Fatalf("Inverse() error = %v", err)
			}
			if got := grid["DYG"].Get(m, n); math.Abs(got-want) > 1e-6*want {
				t.Errorf("DYG(%d,%d) = %v, want %v", m, n, got, want)
			}
		}
	}
}

// Pins each area field's partition offsets: every element must be the
// sum of the four sub-quad areas in the quadrants around its staggered
// point.
func TestAssemble_AreaPartitionOffsets(t *testing.T) {
	xg, yg := testSourceGrid(5, 5, -3, -3, 1, 1)
	g := geodesy.DefaultSphere()
	b := Bounds{ILB: 1, JLB: 1, IUB: 4, JUB: 4}
	const ls, ts = 2, 2

	cgx, cgy, err := buildComputeGrid(xg, yg, b, ls, ts, g)
	if err != nil {
		t.Fatalf("buildComputeGrid() error = %v", err)
	}
	areas := squadAreas(cgx, cgy, g.Radius())
	grid, err := assemble(cgx, cgy, areas, ls, ts, 3*ls, 3*ts, g)
	if err != nil {
		t.Fatalf("assemble() error = %v", err)
	}

	for _, tt := range []struct {
		name   string
		i0, j0 int
	}{
		{"RAC", 2 * ls, 2 * ts},
		{"RAZ", 2*ls - 1, 2*ts - 1},
		{"RAW", 2*ls - 1, 2 * ts},
		{"RAS", 2 * ls, 2*ts - 1},
	} {
		t.Run(tt.name, func(t *testing.T) {
			f := grid[tt.name]
			for m := 0; m < f.Shape[0]; m++ {
				for n := 0; n < f.Shape[1]; n++ {
					i := tt.i0 + 2*m
					j := tt.j0 + 2*n
					want := areas.Get(i, j) + areas.Get(i+1, j) +
						areas.Get(i+1, j+1) + areas.Get(i, j+1)
					if got := f.Get(m, n); got != want {
						t.Errorf("%s(%d,%d) = %v, want %v", tt.name, m, n, got, want)
					}
				}
			}
		})
	}
}
