// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package mitregrid

import (
	"github.com/ctessum/sparse"
	"github.com/golang/geo/s2"
)

// squadAreas returns the physical area of every minimal quadrilateral
// of the compute-grid lattice. Each lattice point is mapped to a unit
// vector on the sphere, each 2x2 block's spherical quadrilateral is
// split into two triangles whose areas are summed, and the unit-sphere
// result is scaled by radius squared. Degenerate quadrilaterals
// contribute zero area.
func squadAreas(cgx, cgy *sparse.DenseArray, radius float64) *sparse.DenseArray {
	rows := cgx.Shape[0]
	cols := cgx.Shape[1]

	pts := make([]s2.Point, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			pts[i*cols+j] = pointFromDegrees(cgx.Get(i, j), cgy.Get(i, j))
		}
	}

	r2 := radius * radius
	areas := sparse.ZerosDense(rows-1, cols-1)
	for i := 0; i < rows-1; i++ {
		for j := 0; j < cols-1; j++ {
			p00 := pts[i*cols+j]
			p10 := pts[(i+1)*cols+j]
			p11 := pts[(i+1)*cols+j+1]
			p01 := pts[i*cols+j+1]
			a := s2.PointArea(p00, p10, p11) + s2.PointArea(p00, p11, p01)
			areas.Set(a*r2, i, j)
		}
	}
	return areas
}

func pointFromDegrees(lon, lat float64) s2.Point {
	return s2.PointFromLatLng(s2.LatLngFromDegrees(lat, lon))
}
