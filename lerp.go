// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package naturalneighbor

import (
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

// Lerper is a value that can be blended linearly: v.Lerp(o, 0) is v and
// v.Lerp(o, 1) is o.
type Lerper[V any] interface {
	Lerp(other V, weight float64) V
}

// InterpolateValues blends per-site values of any Lerper type at p.
// values[i] belongs to site i. The weighted average is built by successive
// lerps, each new neighbor entering with its share of the weight seen so
// far.
func InterpolateValues[V Lerper[V]](ip *Interpolator, values []V, p r2.Point) (V, error) {
	var acc V
	if len(values) != ip.NumSites() {
		return acc, errors.Errorf("naturalneighbor: got %d values for %d sites", len(values), ip.NumSites())
	}

	s := ip.scratch.Get().(*Scratch)
	defer ip.scratch.Put(s)

	ws, err := ip.Weights(s, p)
	if err != nil {
		return acc, err
	}

	var seen float64
	for i, w := range ws {
		if i == 0 {
			acc, seen = values[w.Site], w.Weight
			continue
		}
		if w.Weight == 0 {
			continue
		}
		seen += w.Weight
		acc = acc.Lerp(values[w.Site], w.Weight/seen)
	}
	return acc, nil
}
