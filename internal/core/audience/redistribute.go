// Package audience keeps demographic percentage distributions summing to
// exactly 100 while a single bucket is being edited. The redistribution is a
// local heuristic: the moved bucket's delta is absorbed by its immediate
// neighbours first, so nearby sliders move visibly and distant ones stay
// put, avoiding the jitter a global renormalisation would cause.
package audience

import (
	"math"
	"slices"

	"chicago-hub/internal/core/domain"
)

// Tolerance is the accepted floating drift on the 100% invariant.
const Tolerance = 0.01

// Adjust sets bucket i of the distribution to value and redistributes the
// difference so the sum stays at 100. The input is not mutated.
//
// An increase is absorbed first by the bucket below i, then the bucket
// above, then spread proportionally across all other buckets weighted by
// their current value. A decrease is handed entirely to the bucket below
// when one exists, otherwise to the bucket above. The two paths are
// intentionally asymmetric to match the shipped slider behaviour.
func Adjust(d domain.Distribution, i int, value float64) domain.Distribution {
	out := slices.Clone(d)
	if i < 0 || i >= len(out) {
		return out
	}

	value = clampPercent(value)
	delta := value - out[i].Value
	if delta == 0 {
		return out
	}

	if len(out) == 1 {
		out[i].Value = 100
		return out
	}

	out[i].Value = value
	if delta > 0 {
		absorbIncrease(out, i, delta)
	} else {
		giveDecrease(out, i, -delta)
	}
	return out
}

// absorbIncrease removes excess from the other buckets: neighbour below,
// neighbour above, then a value-weighted spread over the rest.
func absorbIncrease(d domain.Distribution, i int, excess float64) {
	for _, j := range []int{i - 1, i + 1} {
		if excess <= 0 || j < 0 || j >= len(d) {
			continue
		}
		take := math.Min(excess, d[j].Value)
		d[j].Value -= take
		excess -= take
	}
	if excess <= Tolerance/10 {
		return
	}

	var rest float64
	for j := range d {
		if j != i {
			rest += d[j].Value
		}
	}
	if rest <= 0 {
		// Nothing left to take from; pull the moved bucket back instead.
		d[i].Value -= excess
		return
	}
	scale := excess / rest
	for j := range d {
		if j != i {
			d[j].Value -= d[j].Value * scale
		}
	}
}

// giveDecrease hands the freed percentage to the first available neighbour.
// No proportional spread on this path.
func giveDecrease(d domain.Distribution, i int, deficit float64) {
	if i-1 >= 0 {
		d[i-1].Value += deficit
		return
	}
	d[i+1].Value += deficit
}

func clampPercent(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return v
	}
}

// Valid reports whether the distribution satisfies the 100% invariant
// within Tolerance.
func Valid(d domain.Distribution) bool {
	return math.Abs(d.Sum()-100) <= Tolerance
}
