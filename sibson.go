// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package naturalneighbor

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"

	"github.com/2dChan/naturalneighbor/predicates"
	"github.com/2dChan/naturalneighbor/r2delaunay"
)

// sibson stores the Sibson coordinates of p in s.weights. p lies inside
// triangle t, or on its interior halfedge onEdge (-1 when Inside).
//
// Inserting p would delete every triangle whose circumcircle strictly
// contains p. Those triangles form a star-shaped cavity around p whose
// boundary vertices are the natural neighbors. The boundary is toured
// counter-clockwise without modifying the triangulation.
func (ip *Interpolator) sibson(s *Scratch, p r2.Point, t, onEdge int) error {
	if err := ip.envelope(s, p, t, onEdge); err != nil {
		return err
	}

	dt := ip.dt
	edges := s.edges
	n := len(edges)

	var total, reach float64
	weights := s.weights[:0]
	for i, eNext := range edges {
		ePrev := edges[(i+n-1)%n]
		v := dt.Origin(eNext)

		area := max(ip.stolenArea(p, ePrev, eNext), 0)
		total += area
		weights = append(weights, Weight{Site: v, Weight: area})

		d := dt.Vertices[v].Sub(p)
		reach = max(reach, d.Dot(d))
	}
	s.weights = weights

	// A vanishing or non-finite total means p sits on top of a neighbor.
	if !(total > ip.opts.Eps*reach) || math.IsInf(total, 0) {
		ip.nearestRingVertex(s, p)
		return nil
	}
	for i := range weights {
		weights[i].Weight /= total
	}
	return nil
}

// envelope collects the cavity boundary halfedges into s.edges,
// counter-clockwise. Edge i runs from neighbor i to neighbor i+1.
func (ip *Interpolator) envelope(s *Scratch, p r2.Point, t, onEdge int) error {
	dt := ip.dt
	capacity := ip.opts.MaxNeighbors

	// The located triangle, and the one across the located edge, contain p
	// and always belong to the cavity.
	t2 := -1
	if onEdge >= 0 {
		if twin := dt.Halfedges[onEdge]; twin != r2delaunay.Hull {
			t2 = twin / 3
		}
	}
	inCavity := func(tri int) bool {
		if tri == t || tri == t2 {
			return true
		}
		a, b, c := dt.TrianglePoints(tri)
		return predicates.InCircumcircle(a, b, c, p, ip.opts.Eps) == predicates.InsideCircle
	}

	edges := s.edges[:0]
	e := 3 * t
	u0 := dt.Origin(e)
	limit := 6*capacity + 6
	for steps := 0; ; steps++ {
		if steps >= limit {
			return errors.Wrapf(ErrNeighborRingOverflow, "cavity tour around %v exceeded %d steps", p, limit)
		}

		// Rotate clockwise around the origin of e while the neighbor across
		// e is part of the cavity.
		if twin := dt.Halfedges[e]; twin != r2delaunay.Hull && inCavity(twin/3) {
			e = r2delaunay.NextHalfedge(twin)
			continue
		}

		if len(edges) == capacity {
			return errors.Wrapf(ErrNeighborRingOverflow, "%v has more than %d natural neighbors", p, capacity)
		}
		edges = append(edges, e)

		e = r2delaunay.NextHalfedge(e)
		if dt.Origin(e) == u0 {
			break
		}
	}
	s.edges = edges
	return nil
}

// stolenArea returns the area that the Voronoi cell of the vertex shared by
// boundary halfedges ePrev and eNext loses to p.
//
// The lost region is bounded by the circumcenters of the cavity triangles
// around the vertex, walked clockwise from ePrev to eNext, and closed by the
// two new Voronoi vertices of p. All coordinates are taken relative to p.
func (ip *Interpolator) stolenArea(p r2.Point, ePrev, eNext int) float64 {
	dt := ip.dt
	var origin r2.Point
	base := dt.Vertices[dt.Origin(eNext)].Sub(p)
	prev := dt.Vertices[dt.Origin(ePrev)].Sub(p)
	next := dt.Vertices[dt.Origin(r2delaunay.NextHalfedge(eNext))].Sub(p)

	first := predicates.Circumcenter(origin, base, prev)
	last := predicates.Circumcenter(origin, base, next)

	var twice float64
	cur := first
	e := ePrev
	for range ip.opts.MaxNeighbors {
		tri := dt.Triangles[e/3]
		c := predicates.Circumcenter(dt.Vertices[tri[0]].Sub(p), dt.Vertices[tri[1]].Sub(p), dt.Vertices[tri[2]].Sub(p))
		twice += cur.Cross(c)
		cur = c

		nx := r2delaunay.NextHalfedge(e)
		if nx == eNext {
			twice += cur.Cross(last) + last.Cross(first)
			// The polygon is clockwise.
			return -twice / 2
		}
		if e = dt.Halfedges[nx]; e == r2delaunay.Hull {
			break
		}
	}
	return math.NaN()
}

// nearestRingVertex replaces s.weights with the ring vertex closest to p.
func (ip *Interpolator) nearestRingVertex(s *Scratch, p r2.Point) {
	dt := ip.dt
	best, bestDist := -1, math.Inf(1)
	for _, e := range s.edges {
		v := dt.Origin(e)
		d := dt.Vertices[v].Sub(p)
		if dist := d.Dot(d); best < 0 || dist < bestDist {
			best, bestDist = v, dist
		}
	}
	s.weights = append(s.weights[:0], Weight{Site: best, Weight: 1})
}

// edgeWeights stores the linear interpolation weights at parameter u along
// halfedge e.
func (ip *Interpolator) edgeWeights(s *Scratch, e int, u float64) {
	a := ip.dt.Origin(e)
	b := ip.dt.Origin(r2delaunay.NextHalfedge(e))
	s.weights = append(s.weights[:0], Weight{Site: a, Weight: 1 - u}, Weight{Site: b, Weight: u})
}
