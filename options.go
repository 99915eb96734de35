// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package naturalneighbor

import (
	"math"

	"github.com/pkg/errors"

	"github.com/2dChan/naturalneighbor/r2delaunay"
)

const (
	defaultEps          = 1e-12
	defaultMaxNeighbors = 128
	minMaxNeighbors     = 3
)

// Extrapolation selects what happens to query points outside the convex
// hull.
type Extrapolation int

const (
	// ExtrapolateNone fails with ErrOutOfHull.
	ExtrapolateNone Extrapolation = iota

	// ExtrapolateLinear evaluates the nearest hull edge: p is projected onto
	// the edge (clamped to its endpoints) and the endpoint values are
	// interpolated linearly at the projection. The edge profile is clamped,
	// not extended, so points beyond a hull corner get the corner's value.
	ExtrapolateLinear
)

func (e Extrapolation) String() string {
	switch e {
	case ExtrapolateNone:
		return "none"
	case ExtrapolateLinear:
		return "linear"
	}
	return "Extrapolation(?)"
}

type Options struct {
	Eps float64

	// MaxNeighbors is the capacity of the natural neighbor ring.
	MaxNeighbors int

	Extrapolation Extrapolation

	// MaxExtrapolationDistance limits ExtrapolateLinear to points at most
	// this far from the hull. +Inf means no limit.
	MaxExtrapolationDistance float64

	Builder r2delaunay.Builder
}

type Option func(*Options) error

func WithEps(eps float64) Option {
	return func(o *Options) error {
		if eps <= 0 {
			return errors.Errorf("naturalneighbor: eps must be positive, got %v", eps)
		}
		o.Eps = eps
		return nil
	}
}

func WithMaxNeighbors(n int) Option {
	return func(o *Options) error {
		if n < minMaxNeighbors {
			return errors.Errorf("naturalneighbor: max neighbors must be at least %d, got %d", minMaxNeighbors, n)
		}
		o.MaxNeighbors = n
		return nil
	}
}

func WithExtrapolation(e Extrapolation) Option {
	return func(o *Options) error {
		if e != ExtrapolateNone && e != ExtrapolateLinear {
			return errors.Errorf("naturalneighbor: unknown extrapolation %d", int(e))
		}
		o.Extrapolation = e
		return nil
	}
}

func WithMaxExtrapolationDistance(d float64) Option {
	return func(o *Options) error {
		if math.IsNaN(d) || d < 0 {
			return errors.Errorf("naturalneighbor: max extrapolation distance must be non-negative, got %v", d)
		}
		o.MaxExtrapolationDistance = d
		return nil
	}
}

// WithBuilder selects the triangulation algorithm. It has no effect on
// NewInterpolatorFromTriangulation.
func WithBuilder(b r2delaunay.Builder) Option {
	return func(o *Options) error {
		var tmp r2delaunay.TriangulationOptions
		if err := r2delaunay.WithBuilder(b)(&tmp); err != nil {
			return err
		}
		o.Builder = b
		return nil
	}
}

func newOptions(setters []Option) (Options, error) {
	opts := Options{
		Eps:                      defaultEps,
		MaxNeighbors:             defaultMaxNeighbors,
		Extrapolation:            ExtrapolateNone,
		MaxExtrapolationDistance: math.Inf(1),
		Builder:                  r2delaunay.BuilderSweep,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return opts, err
		}
	}
	return opts, nil
}
