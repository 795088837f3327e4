// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package geodesy solves the inverse and equally-spaced-points geodesic
// problems on a spherical geoid, backed by the S2 geometry library.
package geodesy

import (
	"fmt"
	"math"

	"github.com/golang/geo/s2"
)

// DefaultRadius is the radius, in meters, of the PROJ "sphere" ellipsoid.
const DefaultRadius = 6370997.0

// Sphere is a spherical geoid of fixed radius. The zero value is not
// usable; construct one with NewSphere or DefaultSphere.
type Sphere struct {
	radius float64
}

// NewSphere returns a Sphere with the given radius in meters.
func NewSphere(radius float64) (Sphere, error) {
	if !(radius > 0) || math.IsInf(radius, 1) {
		return Sphere{}, fmt.Errorf("geodesy: radius must be positive and finite, got %v", radius)
	}
	return Sphere{radius: radius}, nil
}

// DefaultSphere returns a Sphere with DefaultRadius.
func DefaultSphere() Sphere {
	return Sphere{radius: DefaultRadius}
}

// Radius returns the sphere radius in meters.
func (s Sphere) Radius() float64 {
	return s.radius
}

// Inverse solves the inverse geodesic problem between two points given
// in degrees: it returns the forward azimuth at the first point, the
// azimuth from the second point back to the first, both in degrees in
// (-180, 180], and the great-circle distance in meters.
func (s Sphere) Inverse(lon1, lat1, lon2, lat2 float64) (az12, az21, dist float64, err error) {
	if err := checkFinite(lon1, lat1, lon2, lat2); err != nil {
		return 0, 0, 0, err
	}
	p1 := s2.PointFromLatLng(s2.LatLngFromDegrees(lat1, lon1))
	p2 := s2.PointFromLatLng(s2.LatLngFromDegrees(lat2, lon2))
	dist = p1.Distance(p2).Radians() * s.radius
	az12 = bearing(lon1, lat1, lon2, lat2)
	az21 = bearing(lon2, lat2, lon1, lat1)
	return az12, az21, dist, nil
}

// NPts returns n points equally spaced along the geodesic between the
// two given points, endpoints excluded. The returned slices hold the
// longitudes and latitudes, in degrees, ordered from the first point
// toward the second. NPts follows the same great-circle path as
// Inverse.
func (s Sphere) NPts(lon1, lat1, lon2, lat2 float64, n int) (lons, lats []float64, err error) {
	if n < 0 {
		return nil, nil, fmt.Errorf("geodesy: point count must be non-negative, got %d", n)
	}
	if err := checkFinite(lon1, lat1, lon2, lat2); err != nil {
		return nil, nil, err
	}
	p1 := s2.PointFromLatLng(s2.LatLngFromDegrees(lat1, lon1))
	p2 := s2.PointFromLatLng(s2.LatLngFromDegrees(lat2, lon2))
	lons = make([]float64, n)
	lats = make([]float64, n)
	for k := 1; k <= n; k++ {
		ll := s2.LatLngFromPoint(s2.Interpolate(float64(k)/float64(n+1), p1, p2))
		lons[k-1] = ll.Lng.Degrees()
		lats[k-1] = ll.Lat.Degrees()
	}
	return lons, lats, nil
}

// bearing returns the initial great-circle bearing from the first point
// to the second, in degrees clockwise from north in (-180, 180].
func bearing(lon1, lat1, lon2, lat2 float64) float64 {
	φ1 := lat1 * math.Pi / 180
	φ2 := lat2 * math.Pi / 180
	Δλ := (lon2 - lon1) * math.Pi / 180

	y := math.Sin(Δλ) * math.Cos(φ2)
	x := math.Cos(φ1)*math.Sin(φ2) - math.Sin(φ1)*math.Cos(φ2)*math.Cos(Δλ)
	return math.Atan2(y, x) * 180 / math.Pi
}

func checkFinite(vals ...float64) error {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("geodesy: non-finite coordinate %v", v)
		}
	}
	return nil
}
