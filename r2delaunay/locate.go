// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2delaunay

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"

	"github.com/2dChan/naturalneighbor/predicates"
)

// ErrLocateFailure is returned when the walk does not reach the query
// point: the step limit was exceeded, the point is not finite, or the
// triangulation is corrupt.
var ErrLocateFailure = errors.New("r2delaunay: point location failed")

// LocationKind classifies where a point fell in the triangulation.
type LocationKind int

const (
	Inside LocationKind = iota
	OnEdge
	OnVertex
	Outside
)

func (k LocationKind) String() string {
	switch k {
	case Inside:
		return "Inside"
	case OnEdge:
		return "OnEdge"
	case OnVertex:
		return "OnVertex"
	case Outside:
		return "Outside"
	}
	return "LocationKind(?)"
}

// Location is the result of Locate.
//
//   - Inside: Triangle contains the point.
//   - OnEdge: the point lies on edge Edge of Triangle.
//   - OnVertex: the point coincides with vertex Vertex; Triangle is incident
//     to it.
//   - Outside: the point is outside the convex hull; edge Edge of Triangle is
//     the hull edge closest to it.
//
// Unused fields are -1.
type Location struct {
	Kind     LocationKind
	Triangle int
	Edge     int
	Vertex   int
}

// Halfedge returns the halfedge id of the located edge.
func (l Location) Halfedge() int {
	if l.Edge < 0 {
		return Hull
	}
	return 3*l.Triangle + l.Edge
}

// Locate walks from triangle seed towards p, stepping across an edge that
// has p on its outer side until no such edge is left. An out of range seed
// starts from AnyTriangle.
func (dt *Triangulation) Locate(p r2.Point, seed int) (Location, error) {
	if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
		return Location{}, errors.Wrapf(ErrLocateFailure, "non-finite point %v", p)
	}
	numTriangles := len(dt.Triangles)
	if numTriangles == 0 {
		return Location{}, errors.Wrap(ErrLocateFailure, "empty triangulation")
	}

	t := seed
	if t < 0 || t >= numTriangles {
		t = dt.AnyTriangle()
	}
	from := -1

	limit := 2*numTriangles + 8
	for range limit {
		var side [3]predicates.Orientation
		for i := range 3 {
			side[i] = dt.edgeSide(3*t+i, p)
		}

		// Try the edges after the one we came through first so the walk
		// does not keep favouring the same direction.
		cross := -1
		for k := range 3 {
			i := (from + 1 + k) % 3
			if side[i] == predicates.RightTurn {
				cross = i
				break
			}
		}

		if cross >= 0 {
			twin := dt.Halfedges[3*t+cross]
			if twin == Hull {
				h := dt.NearestHullEdge(p)
				return Location{Kind: Outside, Triangle: h / 3, Edge: h % 3, Vertex: -1}, nil
			}
			t, from = twin/3, twin%3
			continue
		}

		var on [3]bool
		zeros := 0
		for i := range 3 {
			if side[i] == predicates.Collinear {
				on[i] = true
				zeros++
			}
		}
		switch zeros {
		case 0:
			return Location{Kind: Inside, Triangle: t, Edge: -1, Vertex: -1}, nil
		case 1:
			for i := range 3 {
				if on[i] {
					return Location{Kind: OnEdge, Triangle: t, Edge: i, Vertex: -1}, nil
				}
			}
		case 2:
			for i := range 3 {
				if on[i] && on[(i+1)%3] {
					return Location{Kind: OnVertex, Triangle: t, Edge: -1, Vertex: dt.Triangles[t][(i+1)%3]}, nil
				}
			}
		}
		return Location{}, errors.Wrapf(ErrLocateFailure, "triangle %d is degenerate at %v", t, p)
	}

	return Location{}, errors.Wrapf(ErrLocateFailure, "walk exceeded %d steps towards %v", limit, p)
}

// edgeSide reports on which side of halfedge e the point p lies. Both
// halfedges of an edge evaluate the predicate with the same vertex order,
// so neighbors never disagree about a point near their shared edge.
func (dt *Triangulation) edgeSide(e int, p r2.Point) predicates.Orientation {
	a := dt.Origin(e)
	b := dt.Origin(NextHalfedge(e))
	if a < b {
		return predicates.Orient(dt.Vertices[a], dt.Vertices[b], p, dt.eps)
	}
	return predicates.Orient(dt.Vertices[b], dt.Vertices[a], p, dt.eps).Reverse()
}

// NearestHullEdge returns the hull halfedge closest to p.
func (dt *Triangulation) NearestHullEdge(p r2.Point) int {
	best, bestDist := Hull, math.Inf(1)
	for _, e := range dt.hull {
		a := dt.Vertices[dt.Origin(e)]
		b := dt.Vertices[dt.Origin(NextHalfedge(e))]
		if _, d := predicates.ProjectToSegment(a, b, p); d < bestDist {
			best, bestDist = e, d
		}
	}
	return best
}
