package norm

import "github.com/goxberry/chromanorm/internal/bundle"

// Dimensions holds the counts discovered from a raw bundle's key names.
type Dimensions struct {
	// Units is the number of unit operations with solution data.
	Units int
	// Params is the number of sensitivity parameters.
	Params int
	// SensUnits is the number of unit operations with sensitivity data,
	// anchored to the last parameter's group.
	SensUnits int
}

// Discover infers the bundle's dimensionality from its key names. Each
// count is one plus the maximal matching ordinal; absent sections and
// non-matching keys contribute nothing. When the solution or
// sensitivity unit count resolves to zero and a positive hint is
// supplied, the hint takes its place.
func Discover(b bundle.Bundle, requestedUnits int) Dimensions {
	root := bundle.Root(b)
	sens := root.Group(bundle.SectionSensitivity)

	d := Dimensions{
		Units:  1 + maxOrdinal(root.Group(bundle.SectionSolution), bundle.PrefixUnit),
		Params: 1 + maxOrdinal(sens, bundle.PrefixParam),
	}
	if d.Params > 0 {
		// Sensitivity unit discovery is anchored to the last parameter
		// only, not a union across parameters.
		d.SensUnits = 1 + maxOrdinal(sens.Group(bundle.ParamKey(d.Params-1)), bundle.PrefixUnit)
	}

	if requestedUnits > 0 {
		if d.Units == 0 {
			d.Units = requestedUnits
		}
		if d.SensUnits == 0 {
			d.SensUnits = requestedUnits
		}
	}
	return d
}

// maxOrdinal returns the maximal "<prefix>_%03d" ordinal among g's keys,
// or -1 when none match.
func maxOrdinal(g bundle.Bundle, prefix string) int {
	m := -1
	for key := range g {
		if i := bundle.Ordinal(key, prefix); i > m {
			m = i
		}
	}
	return m
}
