// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utils provides seeded generators for planar and geographic sample
// sites.

package utils

import (
	"math"
	"math/rand"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// UnitSquare is the default bounds for GenerateRandomPoints.
var UnitSquare = r2.Rect{X: r1.Interval{Lo: 0, Hi: 1}, Y: r1.Interval{Lo: 0, Hi: 1}}

// GenerateRandomPoints generates cnt points uniformly distributed in bounds.
// The seed parameter ensures reproducibility.
func GenerateRandomPoints(cnt int, seed int64, bounds r2.Rect) []r2.Point {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	points := make([]r2.Point, cnt)

	for i := range cnt {
		points[i] = r2.Point{
			X: bounds.X.Lo + random.Float64()*bounds.X.Length(),
			Y: bounds.Y.Lo + random.Float64()*bounds.Y.Length(),
		}
	}

	return points
}

// GenerateGridPoints generates the nx*ny integer lattice points
// (x, y), 0 <= x < nx, 0 <= y < ny, row by row.
func GenerateGridPoints(nx, ny int) []r2.Point {
	if nx <= 0 || ny <= 0 {
		return nil
	}
	points := make([]r2.Point, 0, nx*ny)
	for y := range ny {
		for x := range nx {
			points = append(points, r2.Point{X: float64(x), Y: float64(y)})
		}
	}
	return points
}

// GenerateRandomLatLngs generates cnt positions with equal density per unit
// of area on the sphere. The seed parameter ensures reproducibility.
func GenerateRandomLatLngs(cnt int, seed int64) []s2.LatLng {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	lls := make([]s2.LatLng, 0, cnt)

	for range cnt {
		// sin(lat) is uniform in [-1, 1] for area-uniform samples.
		z := 2*random.Float64() - 1
		lng := s1.Angle(math.Pi * (2*random.Float64() - 1))
		lls = append(lls, s2.LatLng{Lat: s1.Angle(math.Asin(z)), Lng: lng})
	}

	return lls
}
