package multipart

import (
	"testing"

	"github.com/ctessum/sparse"

	"github.com/goxberry/chromanorm/internal/bundle"
)

func ident(a *sparse.DenseArray) *sparse.DenseArray { return a }

func vec(vals ...float64) bundle.Entry {
	a := sparse.ZerosDense(len(vals))
	copy(a.Elements, vals)
	return bundle.Entry{Array: a}
}

func TestExtractStacksSiblings(t *testing.T) {
	b := bundle.Bundle{
		"SOLUTION_OUTLET_COMP_000": vec(1, 2, 3),
		"SOLUTION_OUTLET_COMP_001": vec(4, 5, 6),
	}

	got := Extract(b, "SOLUTION_OUTLET_COMP", ident)
	if got == nil {
		t.Fatal("expected an array, got nil")
	}
	if len(got.Shape) != 2 || got.Shape[0] != 3 || got.Shape[1] != 2 {
		t.Fatalf("expected shape [3 2], got %v", got.Shape)
	}

	want := []float64{1, 4, 2, 5, 3, 6}
	for i := range want {
		if got.Elements[i] != want[i] {
			t.Errorf("element %d: expected %f, got %f", i, want[i], got.Elements[i])
		}
	}
}

func TestExtractStopsAtGap(t *testing.T) {
	b := bundle.Bundle{
		"X_000": vec(1, 2),
		"X_002": vec(3, 4),
	}

	got := Extract(b, "X", ident)
	if got == nil {
		t.Fatal("expected an array, got nil")
	}
	if got.Shape[1] != 1 {
		t.Errorf("expected 1 part before the gap, got %d", got.Shape[1])
	}
}

func TestExtractNoSiblings(t *testing.T) {
	b := bundle.Bundle{"OTHER": vec(1)}
	if got := Extract(b, "X", ident); got != nil {
		t.Errorf("expected nil for no matching siblings, got %v", got.Shape)
	}
}

func TestExtractSkipsMismatchedPart(t *testing.T) {
	b := bundle.Bundle{
		"X_000": vec(1, 2),
		"X_001": vec(3),
	}

	got := Extract(b, "X", ident)
	if got == nil {
		t.Fatal("expected an array, got nil")
	}
	// The short part leaves its axis slot zero.
	if got.Elements[1] != 0 || got.Elements[3] != 0 {
		t.Errorf("expected zero slice for mismatched part, got %v", got.Elements)
	}
	if got.Elements[0] != 1 || got.Elements[2] != 2 {
		t.Errorf("expected first part intact, got %v", got.Elements)
	}
}

func TestExtractAppliesConvert(t *testing.T) {
	double := func(a *sparse.DenseArray) *sparse.DenseArray {
		out := sparse.ZerosDense(a.Shape...)
		for i, v := range a.Elements {
			out.Elements[i] = 2 * v
		}
		return out
	}

	b := bundle.Bundle{"X_000": vec(1, 2)}
	got := Extract(b, "X", double)
	if got.Elements[0] != 2 || got.Elements[1] != 4 {
		t.Errorf("expected converted elements [2 4], got %v", got.Elements)
	}
}
