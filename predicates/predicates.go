// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package predicates provides the planar orientation, circumcircle and
// point-in-triangle tests used by the triangulation walk and the natural
// neighbor engine.
//
// Every predicate takes an eps that is relative to the input: a result is
// only reported as a tie (Collinear, OnCircle, on an edge) when the
// determinant is within eps of the magnitude of the terms that produced it.
// Scaling or translating all inputs together does not change the answer.
package predicates

import (
	"math"

	"github.com/golang/geo/r2"
)

// Orientation is the turn direction of an ordered triple of points.
type Orientation int

const (
	RightTurn Orientation = -1
	Collinear Orientation = 0
	LeftTurn  Orientation = 1
)

func (o Orientation) String() string {
	switch o {
	case RightTurn:
		return "RightTurn"
	case Collinear:
		return "Collinear"
	case LeftTurn:
		return "LeftTurn"
	}
	return "Orientation(?)"
}

// Reverse returns the orientation of the same triple traversed backwards.
func (o Orientation) Reverse() Orientation {
	return -o
}

// OrientDet returns (b-a)×(c-a), twice the signed area of the triangle abc.
func OrientDet(a, b, c r2.Point) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}

// Orient reports whether c lies to the left of, to the right of, or on the
// directed line through a and b.
//
// The triple is Collinear when |det| <= eps*L², where L is the longest side
// of the triangle abc. Equivalently, the height of the triangle over its
// longest side is at most eps*L. The longest side does not depend on the
// argument order, so permuting the arguments can flip the sign of the
// result but never turns a tie into a turn.
func Orient(a, b, c r2.Point, eps float64) Orientation {
	det := OrientDet(a, b, c)
	l := longestSide2(a, b, c)
	if math.Abs(det) <= eps*l {
		return Collinear
	}
	if det > 0 {
		return LeftTurn
	}
	return RightTurn
}

func longestSide2(a, b, c r2.Point) float64 {
	ab := b.Sub(a)
	bc := c.Sub(b)
	ca := a.Sub(c)
	return max(ab.Dot(ab), bc.Dot(bc), ca.Dot(ca))
}

// CircleLocation is the position of a point relative to a circumcircle.
type CircleLocation int

const (
	OutsideCircle CircleLocation = iota
	OnCircle
	InsideCircle
)

func (l CircleLocation) String() string {
	switch l {
	case OutsideCircle:
		return "OutsideCircle"
	case OnCircle:
		return "OnCircle"
	case InsideCircle:
		return "InsideCircle"
	}
	return "CircleLocation(?)"
}

// InCircleDet returns the lifted in-circle determinant of p against the
// circle through a, b and c, together with its permanent (the same sum with
// every term made non-negative). The determinant is positive when p is
// inside the circle and abc is counter-clockwise. Coordinates are taken
// relative to p.
func InCircleDet(a, b, c, p r2.Point) (det, permanent float64) {
	ad := a.Sub(p)
	bd := b.Sub(p)
	cd := c.Sub(p)

	alift := ad.Dot(ad)
	blift := bd.Dot(bd)
	clift := cd.Dot(cd)

	bc1, bc2 := bd.X*cd.Y, cd.X*bd.Y
	ca1, ca2 := cd.X*ad.Y, ad.X*cd.Y
	ab1, ab2 := ad.X*bd.Y, bd.X*ad.Y

	det = alift*(bc1-bc2) + blift*(ca1-ca2) + clift*(ab1-ab2)
	permanent = alift*(math.Abs(bc1)+math.Abs(bc2)) +
		blift*(math.Abs(ca1)+math.Abs(ca2)) +
		clift*(math.Abs(ab1)+math.Abs(ab2))
	return det, permanent
}

// InCircumcircle locates p relative to the circle through a, b and c. The
// triangle may have either orientation. A flat triangle has no circle and
// every point is reported OutsideCircle.
func InCircumcircle(a, b, c, p r2.Point, eps float64) CircleLocation {
	o := Orient(a, b, c, eps)
	if o == Collinear {
		return OutsideCircle
	}
	det, perm := InCircleDet(a, b, c, p)
	if math.Abs(det) <= eps*perm {
		return OnCircle
	}
	if (det > 0) == (o == LeftTurn) {
		return InsideCircle
	}
	return OutsideCircle
}

// TriangleLocation is the position of a point relative to a triangle.
type TriangleLocation int

const (
	OutsideTriangle TriangleLocation = iota
	InsideTriangle
	OnTriangleEdge
	OnTriangleVertex
)

func (l TriangleLocation) String() string {
	switch l {
	case OutsideTriangle:
		return "OutsideTriangle"
	case InsideTriangle:
		return "InsideTriangle"
	case OnTriangleEdge:
		return "OnTriangleEdge"
	case OnTriangleVertex:
		return "OnTriangleVertex"
	}
	return "TriangleLocation(?)"
}

// PointInTriangle locates p relative to the triangle abc using one
// orientation test per edge. Edge i runs from vertex i to vertex i+1 (mod 3)
// of (a, b, c). For OnTriangleEdge the returned index is the edge, for
// OnTriangleVertex it is the vertex; otherwise it is -1.
//
// A point on an edge is never folded into Inside or Outside; the caller
// decides which of the triangles sharing the edge owns it. A flat triangle
// reports OutsideTriangle.
func PointInTriangle(p, a, b, c r2.Point, eps float64) (TriangleLocation, int) {
	v := [3]r2.Point{a, b, c}
	flipped := false
	switch Orient(a, b, c, eps) {
	case Collinear:
		return OutsideTriangle, -1
	case RightTurn:
		v[1], v[2] = v[2], v[1]
		flipped = true
	}

	var on [3]bool
	zeros := 0
	for i := range 3 {
		switch Orient(v[i], v[(i+1)%3], p, eps) {
		case RightTurn:
			return OutsideTriangle, -1
		case Collinear:
			on[i] = true
			zeros++
		}
	}

	switch zeros {
	case 0:
		return InsideTriangle, -1
	case 1:
		for i := range 3 {
			if on[i] {
				return OnTriangleEdge, callerEdge(i, flipped)
			}
		}
	default:
		for i := range 3 {
			if on[i] && on[(i+1)%3] {
				return OnTriangleVertex, callerVertex((i+1)%3, flipped)
			}
		}
	}
	return OutsideTriangle, -1
}

// callerEdge maps an edge of (a, c, b) back to an edge of (a, b, c).
func callerEdge(i int, flipped bool) int {
	if !flipped {
		return i
	}
	// (a,c)->edge 2, (c,b)->edge 1, (b,a)->edge 0
	return [3]int{2, 1, 0}[i]
}

// callerVertex maps a vertex of (a, c, b) back to a vertex of (a, b, c).
func callerVertex(i int, flipped bool) int {
	if !flipped {
		return i
	}
	return [3]int{0, 2, 1}[i]
}

// Circumcenter returns the center of the circle through a, b and c. The
// result has infinite or NaN coordinates when the points are collinear.
func Circumcenter(a, b, c r2.Point) r2.Point {
	bd := b.Sub(a)
	cd := c.Sub(a)
	bl := bd.Dot(bd)
	cl := cd.Dot(cd)
	d := 2 * bd.Cross(cd)
	return r2.Point{
		X: a.X + (cd.Y*bl-bd.Y*cl)/d,
		Y: a.Y + (bd.X*cl-cd.X*bl)/d,
	}
}

// ProjectToSegment returns the parameter t in [0, 1] of the point of segment
// ab closest to p, and the squared distance from p to that point. A
// zero-length segment projects every point onto a.
func ProjectToSegment(a, b, p r2.Point) (t, dist2 float64) {
	ab := b.Sub(a)
	l := ab.Dot(ab)
	if l > 0 {
		t = min(max(p.Sub(a).Dot(ab)/l, 0), 1)
	}
	d := p.Sub(a.Add(ab.Mul(t)))
	return t, d.Dot(d)
}
