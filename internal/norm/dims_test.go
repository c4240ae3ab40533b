package norm

import (
	"testing"

	"github.com/goxberry/chromanorm/internal/bundle"
)

func TestDiscoverCounts(t *testing.T) {
	b := bundle.Bundle{
		bundle.SectionSolution: group(bundle.Bundle{
			bundle.UnitKey(0): group(bundle.Bundle{}),
			bundle.UnitKey(2): group(bundle.Bundle{}),
			"not_a_unit":      group(bundle.Bundle{}),
			bundle.KeyTimes:   leaf(dense([]int{1}, 0)),
		}),
		bundle.SectionSensitivity: group(bundle.Bundle{
			bundle.ParamKey(0): group(bundle.Bundle{
				bundle.UnitKey(0): group(bundle.Bundle{}),
				bundle.UnitKey(3): group(bundle.Bundle{}),
			}),
			bundle.ParamKey(1): group(bundle.Bundle{
				bundle.UnitKey(0): group(bundle.Bundle{}),
			}),
		}),
	}

	d := Discover(b, 0)
	if d.Units != 3 {
		t.Errorf("expected 3 units, got %d", d.Units)
	}
	if d.Params != 2 {
		t.Errorf("expected 2 params, got %d", d.Params)
	}
	// Anchored to the last parameter, not a union: param_001 only has
	// unit_000.
	if d.SensUnits != 1 {
		t.Errorf("expected 1 sensitivity unit, got %d", d.SensUnits)
	}
}

func TestDiscoverEmpty(t *testing.T) {
	d := Discover(bundle.Bundle{}, 0)
	if d.Units != 0 || d.Params != 0 || d.SensUnits != 0 {
		t.Errorf("expected zero counts, got %+v", d)
	}
}

func TestDiscoverHint(t *testing.T) {
	d := Discover(bundle.Bundle{}, 4)
	if d.Units != 4 {
		t.Errorf("expected hint to replace zero unit count, got %d", d.Units)
	}
	if d.SensUnits != 4 {
		t.Errorf("expected hint to replace zero sensitivity unit count, got %d", d.SensUnits)
	}

	// A discovered count wins over the hint.
	b := bundle.Bundle{
		bundle.SectionSolution: group(bundle.Bundle{
			bundle.UnitKey(1): group(bundle.Bundle{}),
		}),
	}
	d = Discover(b, 4)
	if d.Units != 2 {
		t.Errorf("expected discovered count 2 to stand, got %d", d.Units)
	}
}

func TestDiscoverNonMatchingKeysIgnored(t *testing.T) {
	b := bundle.Bundle{
		bundle.SectionSolution: group(bundle.Bundle{
			"unit_abc":  group(bundle.Bundle{}),
			"unit_":     group(bundle.Bundle{}),
			"units_001": group(bundle.Bundle{}),
		}),
	}
	d := Discover(b, 0)
	if d.Units != 0 {
		t.Errorf("expected 0 units from non-matching keys, got %d", d.Units)
	}
}

func TestDiscoverOutputWrapper(t *testing.T) {
	b := bundle.Bundle{
		bundle.SectionOutput: group(bundle.Bundle{
			bundle.SectionSolution: group(bundle.Bundle{
				bundle.UnitKey(0): group(bundle.Bundle{}),
			}),
		}),
	}
	if d := Discover(b, 0); d.Units != 1 {
		t.Errorf("expected 1 unit under the output wrapper, got %d", d.Units)
	}
}

func TestDiscoverIdempotent(t *testing.T) {
	b := bundle.Bundle{
		bundle.SectionSolution: group(bundle.Bundle{
			bundle.UnitKey(0): group(bundle.Bundle{}),
		}),
	}
	first := Discover(b, 2)
	second := Discover(b, 2)
	if first != second {
		t.Errorf("expected identical counts, got %+v then %+v", first, second)
	}
}
