// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package mitregrid

import "errors"

// Sentinel errors returned by the regridding engine. They are wrapped
// with the offending parameter, so match with errors.Is.
var (
	// ErrInvalidSubscale indicates a subscale factor less than 1.
	ErrInvalidSubscale = errors.New("mitregrid: invalid subscale")

	// ErrInvalidRegion indicates a selected region that is degenerate
	// in one axis, or whose one-cell halo leaves the source grid.
	ErrInvalidRegion = errors.New("mitregrid: invalid region")

	// ErrGeodesyFailure indicates a failed underlying geodesic
	// computation, typically from non-finite coordinates.
	ErrGeodesyFailure = errors.New("mitregrid: geodesy failure")

	// ErrShapeMismatch indicates an assembled field whose shape
	// disagrees with its staggering formula. It should not occur.
	ErrShapeMismatch = errors.New("mitregrid: field shape mismatch")
)
