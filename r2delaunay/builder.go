// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2delaunay

import (
	"github.com/fogleman/delaunay"
	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/markus-wa/quickhull-go/v2"
	"github.com/pkg/errors"
)

// Builder selects the algorithm that produces the triangle list.
type Builder int

const (
	// BuilderSweep uses the sweep-hull triangulator of
	// github.com/fogleman/delaunay. It copes with grids and other
	// co-circular input.
	BuilderSweep Builder = iota

	// BuilderLifted lifts the vertices onto the paraboloid z = x²+y² and
	// keeps the downward facing faces of their 3D convex hull. It expects
	// points in general position: vertices that are co-circular with a hull
	// face may be dropped from the result.
	BuilderLifted
)

func (b Builder) String() string {
	switch b {
	case BuilderSweep:
		return "sweep"
	case BuilderLifted:
		return "lifted"
	}
	return "Builder(?)"
}

func (b Builder) triangulate(vertices []r2.Point, eps float64) ([][3]int, error) {
	switch b {
	case BuilderSweep:
		return triangulateSweep(vertices)
	case BuilderLifted:
		return triangulateLifted(vertices, eps)
	}
	return nil, errors.Errorf("r2delaunay: unknown builder %d", int(b))
}

func triangulateSweep(vertices []r2.Point) ([][3]int, error) {
	points := make([]delaunay.Point, len(vertices))
	for i, v := range vertices {
		points[i] = delaunay.Point{X: v.X, Y: v.Y}
	}

	tr, err := delaunay.Triangulate(points)
	if err != nil {
		return nil, errors.Wrap(err, "r2delaunay: sweep triangulation")
	}
	if len(tr.Triangles)%3 != 0 {
		return nil, errors.New("r2delaunay: inconsistent number of indices returned from sweep triangulation")
	}

	tris := make([][3]int, len(tr.Triangles)/3)
	for i := range tris {
		tris[i] = [3]int{tr.Triangles[3*i], tr.Triangles[3*i+1], tr.Triangles[3*i+2]}
	}
	return tris, nil
}

func triangulateLifted(vertices []r2.Point, eps float64) ([][3]int, error) {
	numVertices := len(vertices)

	// Lift into [-1, 1]² so the paraboloid stays well conditioned.
	bounds := r2.RectFromPoints(vertices...)
	center := bounds.Center()
	size := bounds.Size()
	scale := max(size.X, size.Y) / 2
	if scale == 0 {
		return nil, errors.Wrap(ErrInsufficientVertices, "all vertices coincide")
	}

	lifted := make([]r3.Vector, numVertices)
	var centroid r3.Vector
	for i, v := range vertices {
		q := v.Sub(center).Mul(1 / scale)
		lifted[i] = r3.Vector{X: q.X, Y: q.Y, Z: q.Dot(q)}
		centroid = centroid.Add(lifted[i])
	}
	centroid = centroid.Mul(1 / float64(numVertices))

	qh := new(quickhull.QuickHull)
	ch := qh.ConvexHull(lifted, true, true, eps)
	if len(ch.Indices)%3 != 0 {
		return nil, errors.New("r2delaunay: inconsistent number of indices returned from QuickHull")
	}

	tris := make([][3]int, 0, len(ch.Indices)/6+1)
	for i := 0; i < len(ch.Indices); i += 3 {
		a, b, c := ch.Indices[i], ch.Indices[i+1], ch.Indices[i+2]
		pa := lifted[a]
		n := lifted[b].Sub(pa).Cross(lifted[c].Sub(pa))
		if n.Dot(centroid.Sub(pa)) > 0 {
			n = n.Mul(-1)
		}
		// Upper and vertical faces are not part of the triangulation.
		if n.Z >= -eps*n.Norm() {
			continue
		}
		tris = append(tris, [3]int{a, b, c})
	}
	if len(tris) == 0 {
		return nil, errors.Wrap(ErrInsufficientVertices, "no lower hull faces")
	}
	return tris, nil
}
