// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package geo interpolates samples given in latitude and longitude. Sites
// and queries are projected onto the plane with an s2.Projection and handed
// to a planar naturalneighbor.Interpolator. Longitudes are not wrapped at
// the antimeridian.
package geo

import (
	"github.com/golang/geo/r2"
	"github.com/golang/geo/s2"
	"github.com/pkg/errors"

	"github.com/2dChan/naturalneighbor"
)

// ErrInvalidLatLng is returned for latitudes outside [-90°, 90°] or
// longitudes outside [-180°, 180°].
var ErrInvalidLatLng = errors.New("geo: invalid lat/lng")

type Site struct {
	LatLng s2.LatLng
	Value  float64
}

type Interpolator struct {
	proj   s2.Projection
	planar *naturalneighbor.Interpolator
}

// NewInterpolator projects sites with proj and builds a planar
// interpolator over them. A nil proj selects the plate carrée projection
// scaled to degrees.
func NewInterpolator(sites []Site, proj s2.Projection, setters ...naturalneighbor.Option) (*Interpolator, error) {
	if proj == nil {
		proj = s2.NewPlateCarreeProjection(180)
	}

	planarSites := make([]naturalneighbor.Site, len(sites))
	for i, s := range sites {
		if !s.LatLng.IsValid() {
			return nil, errors.Wrapf(ErrInvalidLatLng, "site %d at %v", i, s.LatLng)
		}
		planarSites[i] = naturalneighbor.Site{Point: proj.FromLatLng(s.LatLng), Value: s.Value}
	}

	planar, err := naturalneighbor.NewInterpolator(planarSites, setters...)
	if err != nil {
		return nil, err
	}
	return &Interpolator{proj: proj, planar: planar}, nil
}

// Planar returns the interpolator working on projected coordinates.
func (ip *Interpolator) Planar() *naturalneighbor.Interpolator {
	return ip.planar
}

func (ip *Interpolator) Project(ll s2.LatLng) r2.Point {
	return ip.proj.FromLatLng(ll)
}

func (ip *Interpolator) Interpolate(ll s2.LatLng) (float64, error) {
	if !ll.IsValid() {
		return 0, errors.Wrapf(ErrInvalidLatLng, "%v", ll)
	}
	return ip.planar.Interpolate(ip.proj.FromLatLng(ll))
}

// InterpolateWith is Interpolate with caller-owned working storage from
// Planar().NewScratch().
func (ip *Interpolator) InterpolateWith(s *naturalneighbor.Scratch, ll s2.LatLng) (float64, error) {
	if !ll.IsValid() {
		return 0, errors.Wrapf(ErrInvalidLatLng, "%v", ll)
	}
	return ip.planar.InterpolateWith(s, ip.proj.FromLatLng(ll))
}

func (ip *Interpolator) QueryWeights(ll s2.LatLng) ([]naturalneighbor.Weight, error) {
	if !ll.IsValid() {
		return nil, errors.Wrapf(ErrInvalidLatLng, "%v", ll)
	}
	return ip.planar.QueryWeights(ip.proj.FromLatLng(ll))
}

// Bounds returns the smallest lat/lng rectangle containing the sites.
func (ip *Interpolator) Bounds() s2.Rect {
	rb := s2.EmptyRect()
	for i := range ip.planar.NumSites() {
		rb = rb.AddPoint(ip.proj.ToLatLng(ip.planar.Site(i).Point))
	}
	return rb
}
