// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package naturalneighbor

import (
	"github.com/2dChan/naturalneighbor/siteindex"
)

// Weight is the Sibson coordinate of one natural neighbor.
type Weight struct {
	Site   int
	Weight float64
}

// Scratch is the per-query working storage. A Scratch must not be used by
// more than one goroutine at a time; results returned by Weights stay valid
// until the next query that uses the same Scratch.
type Scratch struct {
	edges   []int
	weights []Weight
	cursor  siteindex.Cursor
}

// NewScratch returns working storage sized for the interpolator's
// MaxNeighbors.
func (ip *Interpolator) NewScratch() *Scratch {
	return newScratch(ip.opts.MaxNeighbors)
}

func newScratch(capacity int) *Scratch {
	return &Scratch{
		edges:   make([]int, 0, capacity),
		weights: make([]Weight, 0, capacity),
	}
}

// reset empties the buffers. A Scratch made for a smaller capacity grows
// once.
func (s *Scratch) reset(capacity int) {
	if cap(s.edges) < capacity {
		s.edges = make([]int, 0, capacity)
	}
	if cap(s.weights) < capacity {
		s.weights = make([]Weight, 0, capacity)
	}
	s.edges = s.edges[:0]
	s.weights = s.weights[:0]
}
