// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package siteindex answers nearest-site queries over a fixed set of planar
// points with a gonum kd-tree.
package siteindex

import (
	"github.com/golang/geo/r2"
	"gonum.org/v1/gonum/spatial/kdtree"
)

// Index is an immutable kd-tree over site coordinates. It is safe for
// concurrent use.
type Index struct {
	tree *kdtree.Tree
	n    int
}

// Cursor holds the query entry handed to the tree. Reusing one Cursor per
// goroutine keeps Nearest allocation free.
type Cursor struct {
	site site
}

// New builds an index over points. Indices returned by Nearest refer to
// positions in points.
func New(points []r2.Point) *Index {
	entries := make(sites, len(points))
	for i, p := range points {
		entries[i] = site{X: p.X, Y: p.Y, Index: i}
	}
	return &Index{
		tree: kdtree.New(entries, false),
		n:    len(points),
	}
}

func (ix *Index) Len() int {
	return ix.n
}

// Nearest returns the index of the site closest to p and its squared
// distance. It returns (-1, +Inf) for an empty index. A nil cursor is
// replaced by a fresh one.
func (ix *Index) Nearest(p r2.Point, cursor *Cursor) (int, float64) {
	if cursor == nil {
		cursor = new(Cursor)
	}
	cursor.site = site{X: p.X, Y: p.Y, Index: -1}

	c, dist := ix.tree.Nearest(&cursor.site)
	if c == nil {
		return -1, dist
	}
	return asSite(c).Index, dist
}

// site is a kd-tree entry.
type site struct {
	X, Y  float64
	Index int
}

func (s site) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := asSite(c)
	switch d {
	case 0:
		return s.X - q.X
	case 1:
		return s.Y - q.Y
	default:
		panic("siteindex: illegal dimension")
	}
}

func (s site) Dims() int { return 2 }

// Distance returns the squared Euclidean distance.
func (s site) Distance(c kdtree.Comparable) float64 {
	q := asSite(c)
	dx := s.X - q.X
	dy := s.Y - q.Y
	return dx*dx + dy*dy
}

// asSite accepts both stored entries and query cursors.
func asSite(c kdtree.Comparable) site {
	switch q := c.(type) {
	case site:
		return q
	case *site:
		return *q
	}
	panic("siteindex: foreign comparable")
}

// sites satisfies kdtree.Interface.
type sites []site

func (s sites) Index(i int) kdtree.Comparable         { return s[i] }
func (s sites) Len() int                              { return len(s) }
func (s sites) Slice(start, end int) kdtree.Interface { return s[start:end] }

func (s sites) Pivot(d kdtree.Dim) int {
	return kdtree.Partition(plane{sites: s, Dim: d}, kdtree.MedianOfRandoms(plane{sites: s, Dim: d}, 100))
}

// plane sorts sites along one dimension for kdtree.Partition.
type plane struct {
	sites
	kdtree.Dim
}

func (p plane) Less(i, j int) bool {
	switch p.Dim {
	case 0:
		return p.sites[i].X < p.sites[j].X
	case 1:
		return p.sites[i].Y < p.sites[j].Y
	default:
		panic("siteindex: illegal dimension")
	}
}

func (p plane) Slice(start, end int) kdtree.SortSlicer {
	return plane{sites: p.sites[start:end], Dim: p.Dim}
}

func (p plane) Swap(i, j int) {
	p.sites[i], p.sites[j] = p.sites[j], p.sites[i]
}
