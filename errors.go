// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package naturalneighbor

import (
	"github.com/pkg/errors"

	"github.com/2dChan/naturalneighbor/r2delaunay"
)

var (
	// ErrInsufficientSites is returned by the constructors when fewer than 3
	// distinct, non-collinear sites are supplied. It replaces
	// r2delaunay.ErrInsufficientVertices in the chain; the triangulation's
	// reason is kept in the message only.
	ErrInsufficientSites = errors.New("naturalneighbor: insufficient sites (minimum 3 non-collinear required)")

	// ErrInvalidSite is returned when a site has a non-finite coordinate.
	ErrInvalidSite = errors.New("naturalneighbor: invalid site")

	// ErrLocateFailure is returned when point location does not converge.
	ErrLocateFailure = r2delaunay.ErrLocateFailure

	// ErrNeighborRingOverflow is returned when a query has more natural
	// neighbors than Options.MaxNeighbors. Retrying with a larger capacity
	// may succeed.
	ErrNeighborRingOverflow = errors.New("naturalneighbor: natural neighbor ring overflow")

	// ErrOutOfHull is returned for query points outside the convex hull of
	// the sites when extrapolation is disabled or the point is too far away.
	ErrOutOfHull = errors.New("naturalneighbor: query point outside convex hull")
)
