// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package mitregrid

import (
	"fmt"

	"github.com/ctessum/sparse"

	"github.com/2dChan/mitregrid/mitgridio"
)

// partition maps an output field's index space onto the compute-grid
// (or sub-quad area) index space: output element (m, n) reads compute
// index (i0 + 2m, j0 + 2n). The offsets differ per staggering; the
// output shape is ni x nj.
type partition struct {
	i0, j0 int
	ni, nj int
}

// fieldKind selects the extractor a field uses.
type fieldKind int

const (
	positionX fieldKind = iota // longitude straight from the lattice
	positionY                  // latitude straight from the lattice
	edgeX                      // distance to the point 2 steps east
	edgeY                      // distance to the point 2 steps north
	quadArea                   // sum of the 4 surrounding sub-quad areas
)

// assemble derives every output field from the filled compute grid and
// the sub-quad areas. mi and mj are the refined cell counts
// (iub-ilb)*lonSubscale and (jub-jlb)*latSubscale. The partition table
// is the port of the original per-staggering slice arithmetic; each
// entry is fixed by construction and checked against the mitgrid field
// registry before return.
func assemble(cgx, cgy, areas *sparse.DenseArray, lonSubscale, latSubscale, mi, mj int, g Geodesic) (Grid, error) {
	ls2 := lonSubscale * 2
	ts2 := latSubscale * 2

	table := []struct {
		name string
		kind fieldKind
		part partition
	}{
		// Tracer centers.
		{"XC", positionX, partition{ls2 + 1, ts2 + 1, mi, mj}},
		{"YC", positionY, partition{ls2 + 1, ts2 + 1, mi, mj}},
		// Tracer corners.
		{"XG", positionX, partition{ls2, ts2, mi + 1, mj + 1}},
		{"YG", positionY, partition{ls2, ts2, mi + 1, mj + 1}},
		{"DXG", edgeX, partition{ls2, ts2, mi, mj + 1}},
		{"DYG", edgeY, partition{ls2, ts2, mi + 1, mj}},
		{"RAC", quadArea, partition{ls2, ts2, mi, mj}},
		// Vorticity points.
		{"DXC", edgeX, partition{ls2 - 1, ts2 + 1, mi + 1, mj}},
		{"DYC", edgeY, partition{ls2 + 1, ts2 - 1, mi, mj + 1}},
		{"RAZ", quadArea, partition{ls2 - 1, ts2 - 1, mi + 1, mj + 1}},
		// U faces.
		{"DXV", edgeX, partition{ls2 - 1, ts2, mi + 1, mj + 1}},
		{"DYF", edgeY, partition{ls2 + 1, ts2, mi, mj}},
		{"RAW", quadArea, partition{ls2 - 1, ts2, mi + 1, mj}},
		// V faces.
		{"DXF", edgeX, partition{ls2, ts2 + 1, mi, mj}},
		{"DYU", edgeY, partition{ls2, ts2 - 1, mi + 1, mj + 1}},
		{"RAS", quadArea, partition{ls2, ts2 - 1, mi, mj + 1}},
	}

	out := make(Grid, len(table))
	for _, f := range table {
		var (
			field *sparse.DenseArray
			err   error
		)
		switch f.kind {
		case positionX:
			field = positionField(cgx, f.part)
		case positionY:
			field = positionField(cgy, f.part)
		case edgeX:
			field, err = edgeField(cgx, cgy, f.part, 2, 0, g)
		case edgeY:
			field, err = edgeField(cgx, cgy, f.part, 0, 2, g)
		case quadArea:
			field = areaField(areas, f.part)
		}
		if err != nil {
			return nil, fmt.Errorf("assembling %s: %w", f.name, err)
		}
		wantNi, wantNj, ok := mitgridio.Shape(f.name, mi, mj)
		if !ok || field.Shape[0] != wantNi || field.Shape[1] != wantNj {
			return nil, fmt.Errorf("%w: %s has shape %dx%d, staggering requires %dx%d",
				ErrShapeMismatch, f.name, field.Shape[0], field.Shape[1], wantNi, wantNj)
		}
		out[f.name] = field
	}
	return out, nil
}

// positionField extracts coordinates directly from the lattice at
// stride 2.
func positionField(cg *sparse.DenseArray, p partition) *sparse.DenseArray {
	out := sparse.ZerosDense(p.ni, p.nj)
	for m := 0; m < p.ni; m++ {
		for n := 0; n < p.nj; n++ {
			out.Set(cg.Get(p.i0+2*m, p.j0+2*n), m, n)
		}
	}
	return out
}

// edgeField computes, for every output element, the geodesic distance
// between the lattice point at the partition offset and the point
// (di, dj) index steps away.
func edgeField(cgx, cgy *sparse.DenseArray, p partition, di, dj int, g Geodesic) (*sparse.DenseArray, error) {
	out := sparse.ZerosDense(p.ni, p.nj)
	for m := 0; m < p.ni; m++ {
		for n := 0; n < p.nj; n++ {
			i := p.i0 + 2*m
			j := p.j0 + 2*n
			_, _, d, err := g.Inverse(
				cgx.Get(i, j), cgy.Get(i, j),
				cgx.Get(i+di, j+dj), cgy.Get(i+di, j+dj))
			if err != nil {
				return nil, fmt.Errorf("%w: edge at (%d,%d): %v", ErrGeodesyFailure, m, n, err)
			}
			out.Set(d, m, n)
		}
	}
	return out, nil
}

// areaField sums, for every output element, the four sub-quad areas in
// the quadrants around the staggered point. Every sub-quad belongs to
// exactly one element of a given staggering, which keeps the area
// fields of different staggerings mutually consistent. The summation
// order is fixed.
func areaField(areas *sparse.DenseArray, p partition) *sparse.DenseArray {
	out := sparse.ZerosDense(p.ni, p.nj)
	for m := 0; m < p.ni; m++ {
		for n := 0; n < p.nj; n++ {
			i := p.i0 + 2*m
			j := p.j0 + 2*n
			sum := areas.Get(i, j) +
				areas.Get(i+1, j) +
				areas.Get(i+1, j+1) +
				areas.Get(i, j+1)
			out.Set(sum, m, n)
		}
	}
	return out
}
