// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package mitregrid

import (
	"fmt"

	"github.com/ctessum/sparse"
)

// Bounds is a rectangle of source-grid corner indices, normalized so
// that ILB <= IUB and JLB <= JUB.
type Bounds struct {
	ILB, JLB int
	IUB, JUB int
}

// padded returns the bounds grown by one cell in every direction, the
// "plus one" ring needed to compute edge values on the region boundary.
func (b Bounds) padded() Bounds {
	return Bounds{ILB: b.ILB - 1, JLB: b.JLB - 1, IUB: b.IUB + 1, JUB: b.JUB + 1}
}

// buildComputeGrid produces the fully populated doubled-resolution
// lattice of corner points covering the padded bounds. Original corner
// points are copied verbatim at every index that is a multiple of
// (2*lonSubscale, 2*latSubscale); all remaining points are filled by
// geodesic subdivision, east-west rows first, then north-south columns
// through the points the row pass produced. The column pass depends on
// the completed row pass; the order is part of the contract.
func buildComputeGrid(xg, yg *sparse.DenseArray, b Bounds, lonSubscale, latSubscale int, g Geodesic) (cgx, cgy *sparse.DenseArray, err error) {
	if lonSubscale < 1 {
		return nil, nil, fmt.Errorf("%w: lon_subscale = %d, must be >= 1", ErrInvalidSubscale, lonSubscale)
	}
	if latSubscale < 1 {
		return nil, nil, fmt.Errorf("%w: lat_subscale = %d, must be >= 1", ErrInvalidSubscale, latSubscale)
	}
	if err := checkCornerArrays(xg, yg); err != nil {
		return nil, nil, err
	}

	p := b.padded()
	if p.ILB < 0 || p.JLB < 0 || p.IUB > xg.Shape[0]-1 || p.JUB > xg.Shape[1]-1 {
		return nil, nil, fmt.Errorf(
			"%w: bounds (%d,%d)-(%d,%d) with one-cell halo exceed source corner grid %dx%d",
			ErrInvalidRegion, b.ILB, b.JLB, b.IUB, b.JUB, xg.Shape[0], xg.Shape[1])
	}

	ls2 := lonSubscale * 2
	ts2 := latSubscale * 2
	rows := (p.IUB-p.ILB)*ls2 + 1
	cols := (p.JUB-p.JLB)*ts2 + 1
	cgx = sparse.ZerosDense(rows, cols)
	cgy = sparse.ZerosDense(rows, cols)

	// Seed original corner points at regular intervals; these anchor
	// exact source positions with no interpolation error.
	for i := p.ILB; i <= p.IUB; i++ {
		for j := p.JLB; j <= p.JUB; j++ {
			cgx.Set(xg.Get(i, j), (i-p.ILB)*ls2, (j-p.JLB)*ts2)
			cgy.Set(yg.Get(i, j), (i-p.ILB)*ls2, (j-p.JLB)*ts2)
		}
	}

	// East-west pass: subdivide between horizontally adjacent seeds,
	// filling the seeded rows only.
	for sj := 0; sj <= p.JUB-p.JLB; sj++ {
		j := sj * ts2
		for si := 0; si < p.IUB-p.ILB; si++ {
			i0 := si * ls2
			i1 := i0 + ls2
			lons, lats, err := g.NPts(
				cgx.Get(i0, j), cgy.Get(i0, j),
				cgx.Get(i1, j), cgy.Get(i1, j),
				ls2-1)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: east-west fill at row %d: %v", ErrGeodesyFailure, j, err)
			}
			for k, lon := range lons {
				cgx.Set(lon, i0+1+k, j)
				cgy.Set(lats[k], i0+1+k, j)
			}
		}
	}

	// North-south pass over every column, consuming the east-west
	// pass's points.
	for i := 0; i < rows; i++ {
		for sj := 0; sj < p.JUB-p.JLB; sj++ {
			j0 := sj * ts2
			j1 := j0 + ts2
			lons, lats, err := g.NPts(
				cgx.Get(i, j0), cgy.Get(i, j0),
				cgx.Get(i, j1), cgy.Get(i, j1),
				ts2-1)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: north-south fill at column %d: %v", ErrGeodesyFailure, i, err)
			}
			for k, lon := range lons {
				cgx.Set(lon, i, j0+1+k)
				cgy.Set(lats[k], i, j0+1+k)
			}
		}
	}

	return cgx, cgy, nil
}
