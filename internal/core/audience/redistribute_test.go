package audience

import (
	"math"
	"testing"

	"chicago-hub/internal/core/domain"
)

func ageGroups() domain.Distribution {
	return domain.Distribution{
		{Name: "18-24", Value: 15},
		{Name: "25-34", Value: 30},
		{Name: "35-44", Value: 25},
		{Name: "45-54", Value: 18},
		{Name: "55+", Value: 12},
	}
}

// TestSumInvariant drags each slider through a spread of values and checks
// the 100% invariant holds after every single adjustment.
func TestSumInvariant(t *testing.T) {
	for i := range ageGroups() {
		for _, value := range []float64{0, 1, 12.5, 40, 75, 100} {
			out := Adjust(ageGroups(), i, value)
			if !Valid(out) {
				t.Fatalf("bucket %d -> %v: sum = %.4f", i, value, out.Sum())
			}
			if math.Abs(out[i].Value-value) > Tolerance && value <= 100 {
				// the moved bucket may only deviate when the others
				// could not absorb the full increase
				if out.Sum() > 100+Tolerance {
					t.Fatalf("bucket %d -> %v: moved bucket %.2f, sum %.2f", i, value, out[i].Value, out.Sum())
				}
			}
		}
	}
}

// TestIncreaseAbsorbsFromBelowFirst checks the increase path drains the
// neighbour below before touching the one above.
func TestIncreaseAbsorbsFromBelowFirst(t *testing.T) {
	out := Adjust(ageGroups(), 2, 35) // +10, below has 30
	if out[1].Value != 20 {
		t.Fatalf("below neighbour should absorb the full 10, has %.2f", out[1].Value)
	}
	if out[3].Value != 18 {
		t.Fatalf("above neighbour should be untouched, has %.2f", out[3].Value)
	}
}

// TestIncreaseSpillsToAbove checks overflow past the below neighbour lands
// on the above neighbour.
func TestIncreaseSpillsToAbove(t *testing.T) {
	d := domain.Distribution{
		{Name: "a", Value: 5},
		{Name: "b", Value: 20},
		{Name: "c", Value: 40},
		{Name: "d", Value: 35},
	}
	out := Adjust(d, 1, 30) // +10, below has only 5
	if out[0].Value != 0 {
		t.Fatalf("below should be drained to 0, has %.2f", out[0].Value)
	}
	if math.Abs(out[2].Value-35) > Tolerance {
		t.Fatalf("above should absorb the remaining 5, has %.2f", out[2].Value)
	}
	if !Valid(out) {
		t.Fatalf("sum = %.4f", out.Sum())
	}
}

// TestIncreaseProportionalSpread exhausts both neighbours so the remainder
// spreads across the rest weighted by value.
func TestIncreaseProportionalSpread(t *testing.T) {
	d := domain.Distribution{
		{Name: "a", Value: 40},
		{Name: "b", Value: 2},
		{Name: "c", Value: 10},
		{Name: "d", Value: 3},
		{Name: "e", Value: 45},
	}
	out := Adjust(d, 2, 40) // +30; neighbours hold 2+3=5, 25 left to spread
	if !Valid(out) {
		t.Fatalf("sum = %.4f", out.Sum())
	}
	if out[1].Value != 0 || out[3].Value != 0 {
		t.Fatalf("neighbours should be drained first: %.2f / %.2f", out[1].Value, out[3].Value)
	}
	// remaining 25 comes from a and e proportionally (40:45)
	wantA := 40 - 25*40.0/85.0
	if math.Abs(out[0].Value-wantA) > Tolerance {
		t.Fatalf("proportional share wrong: a = %.4f, want %.4f", out[0].Value, wantA)
	}
}

// TestDecreaseGivesToBelow checks the decrease path hands the whole deficit
// to the bucket below, with no proportional spread.
func TestDecreaseGivesToBelow(t *testing.T) {
	out := Adjust(ageGroups(), 2, 15) // -10
	if out[1].Value != 40 {
		t.Fatalf("below should receive the full 10, has %.2f", out[1].Value)
	}
	if out[3].Value != 18 {
		t.Fatalf("above should be untouched, has %.2f", out[3].Value)
	}
	if !Valid(out) {
		t.Fatalf("sum = %.4f", out.Sum())
	}
}

// TestDecreaseAtFirstBucket gives to the bucket above when no below exists.
func TestDecreaseAtFirstBucket(t *testing.T) {
	out := Adjust(ageGroups(), 0, 5) // -10, no below
	if out[1].Value != 40 {
		t.Fatalf("above should receive the full 10, has %.2f", out[1].Value)
	}
	if !Valid(out) {
		t.Fatalf("sum = %.4f", out.Sum())
	}
}

func TestAdjustClampsInput(t *testing.T) {
	out := Adjust(ageGroups(), 1, 130)
	if !Valid(out) {
		t.Fatalf("sum = %.4f", out.Sum())
	}
	out = Adjust(ageGroups(), 1, -5)
	if out[1].Value != 0 {
		t.Fatalf("negative input should clamp to 0, has %.2f", out[1].Value)
	}
	if !Valid(out) {
		t.Fatalf("sum = %.4f", out.Sum())
	}
}

func TestAdjustDoesNotMutateInput(t *testing.T) {
	in := ageGroups()
	_ = Adjust(in, 2, 90)
	if in.Sum() != 100 || in[2].Value != 25 {
		t.Fatalf("input mutated: %+v", in)
	}
}

func TestSingleBucketStaysAtHundred(t *testing.T) {
	out := Adjust(domain.Distribution{{Name: "all", Value: 100}}, 0, 40)
	if out[0].Value != 100 {
		t.Fatalf("single bucket must stay at 100, has %.2f", out[0].Value)
	}
}
