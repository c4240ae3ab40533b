package norm

import (
	"errors"
	"testing"

	"github.com/ctessum/sparse"

	"github.com/goxberry/chromanorm/internal/bundle"
)

// Test helpers shared by the package tests.

func ident(a *sparse.DenseArray) *sparse.DenseArray { return a }

// identNorm skips axis conversion so element values can be asserted
// directly against the raw bundle.
func identNorm() *Normalizer {
	return New(Options{Convert: ident})
}

func dense(shape []int, vals ...float64) *sparse.DenseArray {
	a := sparse.ZerosDense(shape...)
	copy(a.Elements, vals)
	return a
}

func leaf(a *sparse.DenseArray) bundle.Entry { return bundle.Entry{Array: a} }
func group(b bundle.Bundle) bundle.Entry     { return bundle.Entry{Group: b} }

func TestNormalizeErrors(t *testing.T) {
	if _, err := Normalize(nil, 0); !errors.Is(err, ErrNoBundle) {
		t.Errorf("expected ErrNoBundle, got %v", err)
	}
	if _, err := Normalize(bundle.Bundle{}, -1); !errors.Is(err, ErrUnitCount) {
		t.Errorf("expected ErrUnitCount, got %v", err)
	}
}

func TestNormalizeEmptyBundle(t *testing.T) {
	res, err := Normalize(bundle.Bundle{}, 3)
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}

	if len(res.Solution.Outlet) != 3 {
		t.Errorf("expected 3 outlet slots, got %d", len(res.Solution.Outlet))
	}
	if len(res.Solution.Particle) != 3 {
		t.Errorf("expected 3 particle slots, got %d", len(res.Solution.Particle))
	}
	if len(res.Sensitivity.Jacobian) != 3 {
		t.Errorf("expected 3 jacobian slots, got %d", len(res.Sensitivity.Jacobian))
	}
	for i, a := range res.Solution.Outlet {
		if a != nil {
			t.Errorf("expected empty outlet slot %d", i)
		}
	}
}

// End-to-end: two units, each with a [5,2] outlet and a 5-point time
// vector, with the default column-major to row-major conversion.
func TestNormalizeEndToEnd(t *testing.T) {
	value := func(time, comp int) float64 { return float64(10*time + comp) }

	rawOutlet := func() *sparse.DenseArray {
		a := sparse.ZerosDense(5, 2)
		// Engine layout: first axis varies fastest.
		for c := 0; c < 2; c++ {
			for ti := 0; ti < 5; ti++ {
				a.Elements[c*5+ti] = value(ti, c)
			}
		}
		return a
	}

	b := bundle.Bundle{
		bundle.SectionOutput: group(bundle.Bundle{
			bundle.SectionSolution: group(bundle.Bundle{
				bundle.KeyTimes: leaf(dense([]int{5}, 0, 1, 2, 3, 4)),
				bundle.UnitKey(0): group(bundle.Bundle{
					bundle.KeySolutionOutlet: leaf(rawOutlet()),
				}),
				bundle.UnitKey(1): group(bundle.Bundle{
					bundle.KeySolutionOutlet: leaf(rawOutlet()),
				}),
			}),
		}),
	}

	res, err := Normalize(b, 0)
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}

	if res.Solution.Time == nil || len(res.Solution.Time.Elements) != 5 {
		t.Fatal("expected a 5-point time vector")
	}
	if len(res.Solution.Outlet) != 2 {
		t.Fatalf("expected 2 outlet entries, got %d", len(res.Solution.Outlet))
	}
	for i, outlet := range res.Solution.Outlet {
		if outlet == nil {
			t.Fatalf("expected outlet data for unit %d", i)
		}
		if len(outlet.Shape) != 2 || outlet.Shape[0] != 5 || outlet.Shape[1] != 2 {
			t.Fatalf("unit %d: expected shape [5 2], got %v", i, outlet.Shape)
		}
		for ti := 0; ti < 5; ti++ {
			for c := 0; c < 2; c++ {
				if got := outlet.Get(ti, c); got != value(ti, c) {
					t.Errorf("unit %d [%d,%d]: expected %f, got %f", i, ti, c, value(ti, c), got)
				}
			}
		}
	}
}

func TestNormalizeDoesNotMutateBundle(t *testing.T) {
	sol := bundle.Bundle{
		bundle.UnitKey(0): group(bundle.Bundle{
			bundle.KeySolutionOutlet: leaf(dense([]int{2, 1}, 1, 2)),
		}),
	}
	b := bundle.Bundle{bundle.SectionSolution: group(sol)}

	before := Discover(b, 0)
	if _, err := Normalize(b, 0); err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	after := Discover(b, 0)

	if before != after {
		t.Errorf("expected identical discovery before and after, got %+v then %+v", before, after)
	}
	if len(sol.Group(bundle.UnitKey(0))) != 1 {
		t.Error("expected bundle content unchanged")
	}
}
