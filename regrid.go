// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package mitregrid refines a rectangular sub-region of a corner-point
// ("mitgrid") surface grid by great-circle subdivision on a spherical
// geoid, preserving original corner points inside the region, and
// derives the full set of Arakawa C-grid geometric quantities for the
// refined region.
package mitregrid

import (
	"fmt"
	"io"

	"github.com/ctessum/sparse"
	"github.com/sirupsen/logrus"

	"github.com/2dChan/mitregrid/geodesy"
)

// Geodesic is the geodesic capability the engine computes with. Inverse
// solves the inverse problem between two lon/lat points in degrees,
// returning forward azimuth, back azimuth and distance in meters. NPts
// returns n points equally spaced along the same geodesic, endpoints
// excluded. Radius is the equatorial radius of the underlying geoid in
// meters. geodesy.Sphere satisfies it.
type Geodesic interface {
	Inverse(lon1, lat1, lon2, lat2 float64) (az12, az21, dist float64, err error)
	NPts(lon1, lat1, lon2, lat2 float64, n int) (lons, lats []float64, err error)
	Radius() float64
}

// Grid maps mitgrid field names to their 2-D arrays, indexed (i, j)
// with i in the nominal east-west direction.
type Grid map[string]*sparse.DenseArray

// Options configures Regrid.
type Options struct {
	Geod Geodesic
	Log  *logrus.Logger
}

// Option mutates Options; it returns an error for unusable values.
type Option func(*Options) error

// WithGeodesic sets the geodesic service used for all distance,
// subdivision and area computations. The default is the PROJ sphere.
func WithGeodesic(g Geodesic) Option {
	return func(o *Options) error {
		if g == nil {
			return fmt.Errorf("WithGeodesic: nil geodesic")
		}
		o.Geod = g
		return nil
	}
}

// WithLogger sets the logger receiving diagnostic output. The default
// discards everything.
func WithLogger(log *logrus.Logger) Option {
	return func(o *Options) error {
		if log == nil {
			return fmt.Errorf("WithLogger: nil logger")
		}
		o.Log = log
		return nil
	}
}

// Regrid refines the rectangle of the source corner-point grid (xg, yg)
// nearest to the two range-defining corners, subdividing each source
// cell into lonSubscale x latSubscale cells along great circles, and
// returns the regridded fields together with the refined east-west and
// north-south cell counts. The source arrays are not modified. Either
// the full output grid is produced or an error is returned; there are
// no partial results.
func Regrid(xg, yg *sparse.DenseArray, lon1, lat1, lon2, lat2 float64, lonSubscale, latSubscale int, setters ...Option) (Grid, int, int, error) {
	opts := Options{
		Geod: geodesy.DefaultSphere(),
		Log:  discardLogger(),
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, 0, 0, fmt.Errorf("mitregrid: %w", err)
		}
	}
	log := opts.Log

	b, err := LocateRegion(xg, yg, lon1, lat1, lon2, lat2, opts.Geod)
	if err != nil {
		return nil, 0, 0, err
	}
	mi := (b.IUB - b.ILB) * lonSubscale
	mj := (b.JUB - b.JLB) * latSubscale
	log.WithFields(logrus.Fields{
		"ilb": b.ILB, "jlb": b.JLB, "iub": b.IUB, "jub": b.JUB,
	}).Debugf("remeshing %d x %d cell region based on corner points (%.4f,%.4f) and (%.4f,%.4f)",
		b.IUB-b.ILB, b.JUB-b.JLB, lon1, lat1, lon2, lat2)
	log.Debugf("resulting grid will be %d x %d cells (lon/lat subscale = %d/%d)",
		mi, mj, lonSubscale, latSubscale)

	cgx, cgy, err := buildComputeGrid(xg, yg, b, lonSubscale, latSubscale, opts.Geod)
	if err != nil {
		return nil, 0, 0, err
	}
	log.Debugf("compute grid is %d x %d points", cgx.Shape[0], cgx.Shape[1])

	areas := squadAreas(cgx, cgy, opts.Geod.Radius())

	out, err := assemble(cgx, cgy, areas, lonSubscale, latSubscale, mi, mj, opts.Geod)
	if err != nil {
		return nil, 0, 0, err
	}
	return out, mi, mj, nil
}

func discardLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
