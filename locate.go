// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package mitregrid

import (
	"fmt"
	"math"

	"github.com/ctessum/sparse"
)

// Nearest returns the index of the corner point in (xg, yg) that is
// geodesically nearest to the query point, along with the distance to
// it in meters. The scan is exhaustive in row-major order; ties keep
// the first index encountered.
func Nearest(lon, lat float64, xg, yg *sparse.DenseArray, g Geodesic) (i, j int, dist float64, err error) {
	if err := checkCornerArrays(xg, yg); err != nil {
		return 0, 0, 0, err
	}
	dist = math.Inf(1)
	for ii := 0; ii < xg.Shape[0]; ii++ {
		for jj := 0; jj < xg.Shape[1]; jj++ {
			_, _, d, invErr := g.Inverse(lon, lat, xg.Get(ii, jj), yg.Get(ii, jj))
			if invErr != nil {
				return 0, 0, 0, fmt.Errorf("%w: corner (%d,%d): %v", ErrGeodesyFailure, ii, jj, invErr)
			}
			if d < dist {
				i, j, dist = ii, jj, d
			}
		}
	}
	return i, j, dist, nil
}

// LocateRegion maps two range-defining geographic corner points to the
// rectangle of source-grid indices nearest to them. The bounds are
// normalized so that ILB <= IUB and JLB <= JUB. A region that collapses
// to zero width or height is rejected.
func LocateRegion(xg, yg *sparse.DenseArray, lon1, lat1, lon2, lat2 float64, g Geodesic) (Bounds, error) {
	i1, j1, _, err := Nearest(lon1, lat1, xg, yg, g)
	if err != nil {
		return Bounds{}, fmt.Errorf("locating corner (%v,%v): %w", lon1, lat1, err)
	}
	i2, j2, _, err := Nearest(lon2, lat2, xg, yg, g)
	if err != nil {
		return Bounds{}, fmt.Errorf("locating corner (%v,%v): %w", lon2, lat2, err)
	}
	if i1 == i2 {
		return Bounds{}, fmt.Errorf(
			"%w: corners (%v,%v) and (%v,%v) resolve to the same east-west index %d",
			ErrInvalidRegion, lon1, lat1, lon2, lat2, i1)
	}
	if j1 == j2 {
		return Bounds{}, fmt.Errorf(
			"%w: corners (%v,%v) and (%v,%v) resolve to the same north-south index %d",
			ErrInvalidRegion, lon1, lat1, lon2, lat2, j1)
	}
	return Bounds{
		ILB: min(i1, i2),
		JLB: min(j1, j2),
		IUB: max(i1, i2),
		JUB: max(j1, j2),
	}, nil
}

func checkCornerArrays(xg, yg *sparse.DenseArray) error {
	if xg == nil || yg == nil {
		return fmt.Errorf("%w: nil corner coordinate array", ErrInvalidRegion)
	}
	if len(xg.Shape) != 2 || len(yg.Shape) != 2 ||
		xg.Shape[0] != yg.Shape[0] || xg.Shape[1] != yg.Shape[1] {
		return fmt.Errorf("%w: corner coordinate arrays have shapes %v and %v",
			ErrInvalidRegion, xg.Shape, yg.Shape)
	}
	return nil
}
