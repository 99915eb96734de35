// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package naturalneighbor implements natural neighbor (Sibson)
// interpolation of scattered 2D samples.
//
// An Interpolator triangulates the sites once and keeps a kd-tree over
// them. A query finds the nearest site, walks the triangulation from a
// triangle incident to it, and weights the natural neighbors of the query
// point by the area their Voronoi cells would lose to it. Queries are safe
// for concurrent use; InterpolateWith with one Scratch per goroutine runs
// without allocation.
//
// Points outside the convex hull of the sites fail with ErrOutOfHull unless
// ExtrapolateLinear is configured.
package naturalneighbor
