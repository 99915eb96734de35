// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package r2delaunay holds a planar Delaunay triangulation as flat index
// arrays and walks it to locate points.
//
// Triangles are stored counter-clockwise. Halfedge e = 3*t+i runs from
// Triangles[t][i] to Triangles[t][(i+1)%3]; Halfedges[e] is its twin in the
// neighboring triangle, or Hull when the edge lies on the convex hull.
//
// Triangles, Halfedges and the incident triangle arrays are the read
// contract. Opposite, NextHalfedge and PrevHalfedge are views over them;
// the locator and callers on hot paths read Halfedges directly.
package r2delaunay

import (
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"

	"github.com/2dChan/naturalneighbor/predicates"
)

const (
	defaultEps = 1e-12

	// Hull marks a missing triangle or halfedge across the convex hull.
	Hull = -1
)

var (
	// ErrInsufficientVertices is returned when the vertices do not span the
	// plane: fewer than 3 of them, or all of them collinear.
	ErrInsufficientVertices = errors.New("r2delaunay: insufficient vertices for triangulation (minimum 3 non-collinear required)")

	// ErrInvalidTriangulation is returned when a triangle list breaks the
	// triangulation invariants.
	ErrInvalidTriangulation = errors.New("r2delaunay: invalid triangulation")
)

type Triangulation struct {
	Vertices  []r2.Point
	Triangles [][3]int
	Halfedges []int

	// NOTE: Sort in CCW per vertex.
	IncidentTriangleIndices []int
	IncidentTriangleOffsets []int

	hull []int
	eps  float64
}

type TriangulationOptions struct {
	Eps     float64
	Builder Builder
}

type TriangulationOption func(*TriangulationOptions) error

func WithEps(eps float64) TriangulationOption {
	return func(o *TriangulationOptions) error {
		if eps <= 0 {
			return errors.Errorf("r2delaunay: eps must be positive, got %v", eps)
		}
		o.Eps = eps
		return nil
	}
}

func WithBuilder(b Builder) TriangulationOption {
	return func(o *TriangulationOptions) error {
		if b != BuilderSweep && b != BuilderLifted {
			return errors.Errorf("r2delaunay: unknown builder %d", int(b))
		}
		o.Builder = b
		return nil
	}
}

func newOptions(setters []TriangulationOption) (TriangulationOptions, error) {
	opts := TriangulationOptions{
		Eps:     defaultEps,
		Builder: BuilderSweep,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return opts, err
		}
	}
	return opts, nil
}

// NewTriangulation computes the Delaunay triangulation of vertices with the
// configured Builder. Vertex indices in the result match the input slice.
// Duplicate vertices may be left without incident triangles.
func NewTriangulation(vertices []r2.Point, setters ...TriangulationOption) (*Triangulation, error) {
	opts, err := newOptions(setters)
	if err != nil {
		return nil, err
	}

	if err := checkSpan(vertices, opts.Eps); err != nil {
		return nil, err
	}

	tris, err := opts.Builder.triangulate(vertices, opts.Eps)
	if err != nil {
		return nil, err
	}

	return link(vertices, tris, opts.Eps)
}

// FromTriangles wraps a triangulation built elsewhere. Triangles may have
// either orientation; adjacency is derived from shared edges and the result
// is checked with Validate.
func FromTriangles(vertices []r2.Point, triangles [][3]int, setters ...TriangulationOption) (*Triangulation, error) {
	opts, err := newOptions(setters)
	if err != nil {
		return nil, err
	}

	tris := make([][3]int, len(triangles))
	copy(tris, triangles)

	dt, err := link(vertices, tris, opts.Eps)
	if err != nil {
		return nil, err
	}
	if err := dt.Validate(); err != nil {
		return nil, err
	}
	return dt, nil
}

// checkSpan fails unless some three vertices form a proper triangle.
func checkSpan(vertices []r2.Point, eps float64) error {
	if len(vertices) < 3 {
		return errors.Wrapf(ErrInsufficientVertices, "got %d", len(vertices))
	}

	a := vertices[0]
	far, farDist := 0, 0.0
	for i, v := range vertices {
		d := v.Sub(a)
		if dist := d.Dot(d); dist > farDist {
			far, farDist = i, dist
		}
	}
	if farDist == 0 {
		return errors.Wrap(ErrInsufficientVertices, "all vertices coincide")
	}

	b := vertices[far]
	for _, c := range vertices {
		if predicates.Orient(a, b, c, eps) != predicates.Collinear {
			return nil
		}
	}
	return errors.Wrap(ErrInsufficientVertices, "all vertices are collinear")
}

// link orients tris counter-clockwise, drops flat ones and derives the
// halfedge, hull and incidence arrays. tris is modified in place.
func link(vertices []r2.Point, tris [][3]int, eps float64) (*Triangulation, error) {
	numVertices := len(vertices)

	kept := tris[:0]
	for i, t := range tris {
		for j := range 3 {
			if t[j] < 0 || t[j] >= numVertices {
				return nil, errors.Wrapf(ErrInvalidTriangulation, "triangle %d: vertex %d out of range", i, t[j])
			}
		}
		if t[0] == t[1] || t[1] == t[2] || t[2] == t[0] {
			return nil, errors.Wrapf(ErrInvalidTriangulation, "triangle %d: repeated vertex %v", i, t)
		}

		det := predicates.OrientDet(vertices[t[0]], vertices[t[1]], vertices[t[2]])
		if det == 0 {
			continue
		}
		if det < 0 {
			t[1], t[2] = t[2], t[1]
		}
		kept = append(kept, t)
	}
	if len(kept) == 0 {
		return nil, errors.Wrap(ErrInsufficientVertices, "no proper triangles")
	}

	numTriangles := len(kept)
	dt := &Triangulation{
		Vertices:                vertices,
		Triangles:               kept,
		Halfedges:               make([]int, 3*numTriangles),
		IncidentTriangleIndices: make([]int, 3*numTriangles),
		IncidentTriangleOffsets: make([]int, numVertices+1),
		eps:                     eps,
	}

	edges := make(map[[2]int]int, 3*numTriangles)
	for e := range dt.Halfedges {
		key := [2]int{dt.Origin(e), dt.Origin(NextHalfedge(e))}
		if _, ok := edges[key]; ok {
			return nil, errors.Wrapf(ErrInvalidTriangulation, "edge %d->%d used twice", key[0], key[1])
		}
		edges[key] = e
	}
	for e := range dt.Halfedges {
		key := [2]int{dt.Origin(NextHalfedge(e)), dt.Origin(e)}
		if twin, ok := edges[key]; ok {
			dt.Halfedges[e] = twin
		} else {
			dt.Halfedges[e] = Hull
			dt.hull = append(dt.hull, e)
		}
	}

	for _, t := range kept {
		for _, v := range t {
			dt.IncidentTriangleOffsets[v+1]++
		}
	}
	for i := range numVertices {
		dt.IncidentTriangleOffsets[i+1] += dt.IncidentTriangleOffsets[i]
	}

	nxt := make([]int, numVertices)
	copy(nxt, dt.IncidentTriangleOffsets[:numVertices])
	for i, t := range kept {
		for _, v := range t {
			dt.IncidentTriangleIndices[nxt[v]] = i
			nxt[v]++
		}
	}

	for i := range numVertices {
		sortIncidentTriangleIndicesCCW(i, dt.IncidentTriangles(i), dt.Triangles)
	}

	return dt, nil
}

// sortIncidentTriangleIndicesCCW orders the fan around vIdx
// counter-clockwise. An open fan (a hull vertex) starts at the triangle
// whose clockwise side lies on the hull.
func sortIncidentTriangleIndicesCCW(vIdx int, incidentTris []int, tris [][3]int) {
	n := len(incidentTris)
	if n < 2 {
		return
	}

	for i := range n {
		nxt := NextVertex(tris[incidentTris[i]], vIdx)
		first := true
		for j := range n {
			if j != i && PrevVertex(tris[incidentTris[j]], vIdx) == nxt {
				first = false
				break
			}
		}
		if first {
			incidentTris[0], incidentTris[i] = incidentTris[i], incidentTris[0]
			break
		}
	}

	for i := 1; i < n; i++ {
		prv := PrevVertex(tris[incidentTris[i-1]], vIdx)
		for j := i; j < n; j++ {
			if NextVertex(tris[incidentTris[j]], vIdx) == prv {
				incidentTris[i], incidentTris[j] = incidentTris[j], incidentTris[i]
				break
			}
		}
	}
}

// Validate checks the invariants the locator and the natural neighbor
// engine rely on: symmetric adjacency, counter-clockwise triangles and the
// local Delaunay property of every interior edge (within eps).
func (dt *Triangulation) Validate() error {
	if len(dt.Halfedges) != 3*len(dt.Triangles) {
		return errors.Wrapf(ErrInvalidTriangulation, "%d halfedges for %d triangles", len(dt.Halfedges), len(dt.Triangles))
	}

	for i, t := range dt.Triangles {
		a, b, c := dt.TrianglePoints(i)
		if t[0] == t[1] || t[1] == t[2] || t[2] == t[0] {
			return errors.Wrapf(ErrInvalidTriangulation, "triangle %d: repeated vertex %v", i, t)
		}
		if predicates.OrientDet(a, b, c) <= 0 {
			return errors.Wrapf(ErrInvalidTriangulation, "triangle %d is not counter-clockwise", i)
		}
	}

	for e, twin := range dt.Halfedges {
		if twin == Hull {
			continue
		}
		if twin < 0 || twin >= len(dt.Halfedges) || dt.Halfedges[twin] != e {
			return errors.Wrapf(ErrInvalidTriangulation, "halfedge %d: asymmetric twin %d", e, twin)
		}
		if dt.Origin(twin) != dt.Origin(NextHalfedge(e)) || dt.Origin(NextHalfedge(twin)) != dt.Origin(e) {
			return errors.Wrapf(ErrInvalidTriangulation, "halfedge %d: twin %d has different endpoints", e, twin)
		}
		if e > twin {
			continue
		}

		a, b, c := dt.TrianglePoints(e / 3)
		x := dt.Vertices[dt.Origin(PrevHalfedge(twin))]
		if predicates.InCircumcircle(a, b, c, x, dt.eps) == predicates.InsideCircle {
			return errors.Wrapf(ErrInvalidTriangulation, "edge %d->%d is not locally Delaunay",
				dt.Origin(e), dt.Origin(NextHalfedge(e)))
		}
	}
	return nil
}

func (dt *Triangulation) NumTriangles() int {
	return len(dt.Triangles)
}

// Eps returns the relative tolerance used by the predicates.
func (dt *Triangulation) Eps() float64 {
	return dt.eps
}

// IncidentTriangles returns the triangles around vertex vIdx in
// counter-clockwise order. The slice aliases the triangulation and is capped,
// so appending to it copies.
func (dt *Triangulation) IncidentTriangles(vIdx int) []int {
	offs := dt.IncidentTriangleOffsets
	if vIdx < 0 || vIdx >= len(offs)-1 {
		panic("IncidentTriangles: vIdx out of bounds")
	}
	lo, hi := offs[vIdx], offs[vIdx+1]
	return dt.IncidentTriangleIndices[lo:hi:hi]
}

// TriangleVertices returns the vertex indices of triangle tIdx in
// counter-clockwise order.
func (dt *Triangulation) TriangleVertices(tIdx int) (int, int, int) {
	if tIdx < 0 || tIdx >= len(dt.Triangles) {
		panic("TriangleVertices: tIdx out of bounds")
	}
	t := dt.Triangles[tIdx]
	return t[0], t[1], t[2]
}

func (dt *Triangulation) TrianglePoints(tIdx int) (r2.Point, r2.Point, r2.Point) {
	if tIdx < 0 || tIdx >= len(dt.Triangles) {
		panic("TrianglePoints: tIdx out of bounds")
	}
	t := dt.Triangles[tIdx]
	return dt.Vertices[t[0]], dt.Vertices[t[1]], dt.Vertices[t[2]]
}

// Opposite returns the triangle across edge (0, 1 or 2) of triangle tIdx, or
// Hull.
func (dt *Triangulation) Opposite(tIdx, edge int) int {
	twin := dt.Halfedges[3*tIdx+edge]
	if twin == Hull {
		return Hull
	}
	return twin / 3
}

// AnyTriangle returns a valid starting triangle for a walk.
func (dt *Triangulation) AnyTriangle() int {
	if len(dt.Triangles) == 0 {
		return Hull
	}
	return 0
}

// SeedTriangle returns a triangle incident to vertex vIdx, or AnyTriangle
// when the vertex is not part of the triangulation.
func (dt *Triangulation) SeedTriangle(vIdx int) int {
	if vIdx >= 0 && vIdx+1 < len(dt.IncidentTriangleOffsets) {
		if it := dt.IncidentTriangles(vIdx); len(it) > 0 {
			return it[0]
		}
	}
	return dt.AnyTriangle()
}

// Origin returns the vertex halfedge e starts at.
func (dt *Triangulation) Origin(e int) int {
	return dt.Triangles[e/3][e%3]
}

// HullEdges returns the halfedges that lie on the convex hull.
func (dt *Triangulation) HullEdges() []int {
	return dt.hull
}

func NextHalfedge(e int) int {
	if e%3 == 2 {
		return e - 2
	}
	return e + 1
}

func PrevHalfedge(e int) int {
	if e%3 == 0 {
		return e + 2
	}
	return e - 1
}

// PrevVertex returns the vertex before vIdx in counter-clockwise order.
func PrevVertex(t [3]int, vIdx int) int {
	return t[(corner(t, vIdx, "PrevVertex")+2)%3]
}

// NextVertex returns the vertex after vIdx in counter-clockwise order.
func NextVertex(t [3]int, vIdx int) int {
	return t[(corner(t, vIdx, "NextVertex")+1)%3]
}

// corner returns the position of vIdx in t and panics when it is absent.
func corner(t [3]int, vIdx int, caller string) int {
	for i, v := range t {
		if v == vIdx {
			return i
		}
	}
	panic(caller + ": vIdx not in triangle")
}
