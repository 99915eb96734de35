// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package naturalneighbor

import (
	"math"
	"slices"
	"sync"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"

	"github.com/2dChan/naturalneighbor/predicates"
	"github.com/2dChan/naturalneighbor/r2delaunay"
	"github.com/2dChan/naturalneighbor/siteindex"
)

// Site is a sample location with its known value.
type Site struct {
	Point r2.Point
	Value float64
}

// Interpolator answers natural neighbor queries over a fixed set of sites.
// It is immutable after construction and safe for concurrent use.
type Interpolator struct {
	sites  []Site
	dt     *r2delaunay.Triangulation
	index  *siteindex.Index
	bounds r2.Rect
	opts   Options

	scratch sync.Pool
}

// NewInterpolator triangulates sites and builds the nearest-site index.
// Sites are identified by their position in the slice, which is copied.
// Coincident sites are accepted; only one of them takes part in the
// triangulation. Degenerate site sets fail with ErrInsufficientSites, whose
// message carries the triangulation's reason.
func NewInterpolator(sites []Site, setters ...Option) (*Interpolator, error) {
	opts, err := newOptions(setters)
	if err != nil {
		return nil, err
	}

	points, err := sitePoints(sites)
	if err != nil {
		return nil, err
	}

	dt, err := r2delaunay.NewTriangulation(points,
		r2delaunay.WithEps(opts.Eps),
		r2delaunay.WithBuilder(opts.Builder),
	)
	if err != nil {
		if errors.Is(err, r2delaunay.ErrInsufficientVertices) {
			return nil, errors.Wrapf(ErrInsufficientSites, "%v", err)
		}
		return nil, err
	}

	return newInterpolator(sites, points, dt, opts), nil
}

// NewInterpolatorFromTriangulation uses a triangulation built elsewhere.
// dt.Vertices must hold the site points in site order, and dt must pass
// Validate.
func NewInterpolatorFromTriangulation(sites []Site, dt *r2delaunay.Triangulation, setters ...Option) (*Interpolator, error) {
	opts, err := newOptions(setters)
	if err != nil {
		return nil, err
	}

	points, err := sitePoints(sites)
	if err != nil {
		return nil, err
	}
	if dt == nil || len(dt.Vertices) != len(points) {
		return nil, errors.Wrap(r2delaunay.ErrInvalidTriangulation, "naturalneighbor: vertex count differs from site count")
	}
	for i, p := range points {
		if dt.Vertices[i] != p {
			return nil, errors.Wrapf(r2delaunay.ErrInvalidTriangulation, "naturalneighbor: vertex %d is %v, site is %v", i, dt.Vertices[i], p)
		}
	}
	if err := dt.Validate(); err != nil {
		return nil, err
	}

	return newInterpolator(sites, points, dt, opts), nil
}

func sitePoints(sites []Site) ([]r2.Point, error) {
	if len(sites) < 3 {
		return nil, errors.Wrapf(ErrInsufficientSites, "got %d", len(sites))
	}

	points := make([]r2.Point, len(sites))
	for i, s := range sites {
		if !isFinite(s.Point) {
			return nil, errors.Wrapf(ErrInvalidSite, "site %d at %v", i, s.Point)
		}
		points[i] = s.Point
	}
	return points, nil
}

func newInterpolator(sites []Site, points []r2.Point, dt *r2delaunay.Triangulation, opts Options) *Interpolator {
	ip := &Interpolator{
		sites:  slices.Clone(sites),
		dt:     dt,
		index:  siteindex.New(points),
		bounds: r2.RectFromPoints(points...),
		opts:   opts,
	}
	ip.scratch.New = func() any {
		return ip.NewScratch()
	}
	return ip
}

func (ip *Interpolator) NumSites() int {
	return len(ip.sites)
}

func (ip *Interpolator) Site(i int) Site {
	if i < 0 || i >= len(ip.sites) {
		panic("Site: index out of range")
	}
	return ip.sites[i]
}

// Triangulation returns the underlying triangulation. It must not be
// modified.
func (ip *Interpolator) Triangulation() *r2delaunay.Triangulation {
	return ip.dt
}

// Bounds returns the bounding rectangle of the sites.
func (ip *Interpolator) Bounds() r2.Rect {
	return ip.bounds
}

func (ip *Interpolator) Options() Options {
	return ip.opts
}

// Interpolate returns the natural neighbor estimate at p using pooled
// working storage.
func (ip *Interpolator) Interpolate(p r2.Point) (float64, error) {
	s := ip.scratch.Get().(*Scratch)
	defer ip.scratch.Put(s)
	return ip.InterpolateWith(s, p)
}

// InterpolateWith is Interpolate with caller-owned working storage. It does
// not allocate unless it returns an error.
func (ip *Interpolator) InterpolateWith(s *Scratch, p r2.Point) (float64, error) {
	ws, err := ip.Weights(s, p)
	if err != nil {
		return 0, err
	}

	var v float64
	for _, w := range ws {
		v += w.Weight * ip.sites[w.Site].Value
	}
	return v, nil
}

// QueryWeights returns the natural neighbors of p and their weights in a
// newly allocated slice.
func (ip *Interpolator) QueryWeights(p r2.Point) ([]Weight, error) {
	s := ip.scratch.Get().(*Scratch)
	defer ip.scratch.Put(s)

	ws, err := ip.Weights(s, p)
	if err != nil {
		return nil, err
	}
	return slices.Clone(ws), nil
}

// Weights computes the natural neighbors of p and their weights into s and
// returns a view of them, counter-clockwise around p. Inside the hull the
// weights are non-negative and sum to 1. Points on a hull edge, and
// extrapolated points, get the two edge endpoints.
func (ip *Interpolator) Weights(s *Scratch, p r2.Point) ([]Weight, error) {
	if s == nil {
		s = ip.NewScratch()
	}
	s.reset(ip.opts.MaxNeighbors)

	near, _ := ip.index.Nearest(p, &s.cursor)
	loc, err := ip.dt.Locate(p, ip.dt.SeedTriangle(near))
	if err != nil {
		return nil, err
	}

	switch loc.Kind {
	case r2delaunay.OnVertex:
		s.weights = append(s.weights, Weight{Site: loc.Vertex, Weight: 1})

	case r2delaunay.OnEdge:
		e := loc.Halfedge()
		if ip.dt.Halfedges[e] != r2delaunay.Hull {
			if err := ip.sibson(s, p, loc.Triangle, e); err != nil {
				return nil, err
			}
			break
		}
		a, b := ip.edgePoints(e)
		u, _ := predicates.ProjectToSegment(a, b, p)
		ip.edgeWeights(s, e, u)

	case r2delaunay.Inside:
		if err := ip.sibson(s, p, loc.Triangle, -1); err != nil {
			return nil, err
		}

	case r2delaunay.Outside:
		if ip.opts.Extrapolation == ExtrapolateNone {
			return nil, errors.Wrapf(ErrOutOfHull, "point %v", p)
		}
		e := loc.Halfedge()
		a, b := ip.edgePoints(e)
		u, dist2 := predicates.ProjectToSegment(a, b, p)
		if dist := math.Sqrt(dist2); dist > ip.opts.MaxExtrapolationDistance {
			return nil, errors.Wrapf(ErrOutOfHull, "point %v is %v from the hull, limit %v", p, dist, ip.opts.MaxExtrapolationDistance)
		}
		ip.edgeWeights(s, e, u)
	}

	return s.weights, nil
}

func (ip *Interpolator) edgePoints(e int) (r2.Point, r2.Point) {
	a := ip.dt.Vertices[ip.dt.Origin(e)]
	b := ip.dt.Vertices[ip.dt.Origin(r2delaunay.NextHalfedge(e))]
	return a, b
}

func isFinite(p r2.Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}
