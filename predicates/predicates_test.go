// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package predicates

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEps = 1e-12

func TestOrient(t *testing.T) {
	a := r2.Point{X: 0, Y: 0}
	b := r2.Point{X: 1, Y: 0}
	tests := []struct {
		name string
		c    r2.Point
		want Orientation
	}{
		{"left", r2.Point{X: 0.5, Y: 1}, LeftTurn},
		{"right", r2.Point{X: 0.5, Y: -1}, RightTurn},
		{"on segment", r2.Point{X: 0.5, Y: 0}, Collinear},
		{"beyond b", r2.Point{X: 3, Y: 0}, Collinear},
		{"coincides with a", a, Collinear},
		{"below tolerance", r2.Point{X: 0.5, Y: 1e-13}, Collinear},
		{"below tolerance negative", r2.Point{X: 0.5, Y: -1e-13}, Collinear},
		{"above tolerance", r2.Point{X: 0.5, Y: 1e-10}, LeftTurn},
		{"above tolerance negative", r2.Point{X: 0.5, Y: -1e-10}, RightTurn},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Orient(a, b, tt.c, testEps))
			assert.Equal(t, tt.want.Reverse(), Orient(b, a, tt.c, testEps))
		})
	}
}

func TestOrient_ScaleInvariant(t *testing.T) {
	const scale = 1e8
	shift := r2.Point{X: 1e3, Y: -1e3}
	tr := func(p r2.Point) r2.Point { return p.Mul(scale).Add(shift) }

	a := r2.Point{X: 0, Y: 0}
	b := r2.Point{X: 1, Y: 0}
	tests := []struct {
		name string
		c    r2.Point
		want Orientation
	}{
		{"below tolerance", r2.Point{X: 0.5, Y: 1e-13}, Collinear},
		{"above tolerance", r2.Point{X: 0.5, Y: 1e-10}, LeftTurn},
		{"clear right", r2.Point{X: 0.5, Y: -0.25}, RightTurn},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Orient(tr(a), tr(b), tr(tt.c), testEps))
		})
	}
}

func TestOrient_ZeroEpsIsExact(t *testing.T) {
	a := r2.Point{X: 0, Y: 0}
	b := r2.Point{X: 1, Y: 0}
	c := r2.Point{X: 0.5, Y: 1e-13}
	assert.Equal(t, LeftTurn, Orient(a, b, c, 0))
	assert.Equal(t, Collinear, Orient(a, b, r2.Point{X: 2, Y: 0}, 0))
}

func TestInCircumcircle(t *testing.T) {
	a := r2.Point{X: 1, Y: 0}
	b := r2.Point{X: 0, Y: 1}
	c := r2.Point{X: -1, Y: 0}
	tests := []struct {
		name string
		p    r2.Point
		want CircleLocation
	}{
		{"center", r2.Point{X: 0, Y: 0}, InsideCircle},
		{"near rim inside", r2.Point{X: 0, Y: -0.999}, InsideCircle},
		{"on circle", r2.Point{X: 0, Y: -1}, OnCircle},
		{"on vertex", a, OnCircle},
		{"outside", r2.Point{X: 2, Y: 2}, OutsideCircle},
		{"near rim outside", r2.Point{X: 0, Y: -1.001}, OutsideCircle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InCircumcircle(a, b, c, tt.p, testEps), "ccw")
			assert.Equal(t, tt.want, InCircumcircle(a, c, b, tt.p, testEps), "cw")
		})
	}
}

func TestInCircumcircle_FlatTriangle(t *testing.T) {
	a := r2.Point{X: 0, Y: 0}
	b := r2.Point{X: 1, Y: 0}
	c := r2.Point{X: 2, Y: 0}
	assert.Equal(t, OutsideCircle, InCircumcircle(a, b, c, r2.Point{X: 1, Y: 0.1}, testEps))
}

func TestPointInTriangle(t *testing.T) {
	a := r2.Point{X: 0, Y: 0}
	b := r2.Point{X: 4, Y: 0}
	c := r2.Point{X: 0, Y: 4}
	tests := []struct {
		name    string
		p       r2.Point
		want    TriangleLocation
		wantIdx int
	}{
		{"inside", r2.Point{X: 1, Y: 1}, InsideTriangle, -1},
		{"edge 0", r2.Point{X: 2, Y: 0}, OnTriangleEdge, 0},
		{"edge 1", r2.Point{X: 2, Y: 2}, OnTriangleEdge, 1},
		{"edge 2", r2.Point{X: 0, Y: 2}, OnTriangleEdge, 2},
		{"vertex 0", a, OnTriangleVertex, 0},
		{"vertex 1", b, OnTriangleVertex, 1},
		{"vertex 2", c, OnTriangleVertex, 2},
		{"outside", r2.Point{X: 5, Y: 5}, OutsideTriangle, -1},
		{"outside on edge line", r2.Point{X: 6, Y: 0}, OutsideTriangle, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, idx := PointInTriangle(tt.p, a, b, c, testEps)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantIdx, idx)
		})
	}
}

func TestPointInTriangle_ClockwiseKeepsCallerIndices(t *testing.T) {
	a := r2.Point{X: 0, Y: 0}
	b := r2.Point{X: 0, Y: 4}
	c := r2.Point{X: 4, Y: 0}

	got, idx := PointInTriangle(r2.Point{X: 2, Y: 0}, a, b, c, testEps)
	require.Equal(t, OnTriangleEdge, got)
	assert.Equal(t, 2, idx)

	got, idx = PointInTriangle(r2.Point{X: 0, Y: 2}, a, b, c, testEps)
	require.Equal(t, OnTriangleEdge, got)
	assert.Equal(t, 0, idx)

	got, idx = PointInTriangle(b, a, b, c, testEps)
	require.Equal(t, OnTriangleVertex, got)
	assert.Equal(t, 1, idx)

	got, idx = PointInTriangle(c, a, b, c, testEps)
	require.Equal(t, OnTriangleVertex, got)
	assert.Equal(t, 2, idx)
}

func TestPointInTriangle_FlatTriangle(t *testing.T) {
	a := r2.Point{X: 0, Y: 0}
	b := r2.Point{X: 1, Y: 0}
	c := r2.Point{X: 2, Y: 0}
	got, idx := PointInTriangle(b, a, b, c, testEps)
	assert.Equal(t, OutsideTriangle, got)
	assert.Equal(t, -1, idx)
}

func TestCircumcenter(t *testing.T) {
	got := Circumcenter(r2.Point{X: 0, Y: 0}, r2.Point{X: 4, Y: 0}, r2.Point{X: 2, Y: 3})
	assert.InDelta(t, 2.0, got.X, 1e-12)
	assert.InDelta(t, 5.0/6.0, got.Y, 1e-12)

	flat := Circumcenter(r2.Point{X: 0, Y: 0}, r2.Point{X: 1, Y: 0}, r2.Point{X: 2, Y: 0})
	assert.True(t, math.IsInf(flat.X, 0) || math.IsNaN(flat.X))
}

func TestProjectToSegment(t *testing.T) {
	a := r2.Point{X: 0, Y: 0}
	b := r2.Point{X: 10, Y: 0}
	tests := []struct {
		name      string
		p         r2.Point
		wantT     float64
		wantDist2 float64
	}{
		{"interior", r2.Point{X: 5, Y: 3}, 0.5, 9},
		{"on segment", r2.Point{X: 2.5, Y: 0}, 0.25, 0},
		{"before a", r2.Point{X: -3, Y: 4}, 0, 25},
		{"after b", r2.Point{X: 13, Y: -4}, 1, 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotT, gotDist2 := ProjectToSegment(a, b, tt.p)
			assert.InDelta(t, tt.wantT, gotT, 1e-15)
			assert.InDelta(t, tt.wantDist2, gotDist2, 1e-12)
		})
	}

	gotT, gotDist2 := ProjectToSegment(a, a, r2.Point{X: 3, Y: 4})
	assert.Equal(t, 0.0, gotT)
	assert.InDelta(t, 25.0, gotDist2, 1e-12)
}
