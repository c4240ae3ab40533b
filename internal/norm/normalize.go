package norm

import (
	"github.com/ctessum/sparse"

	"github.com/goxberry/chromanorm/internal/axisorder"
	"github.com/goxberry/chromanorm/internal/bundle"
	"github.com/goxberry/chromanorm/internal/multipart"
)

// ConvertFunc rearranges one leaf array from the engine's axis-major
// layout to the host layout. It is applied once per leaf, immediately
// before the array is stored or stacked.
type ConvertFunc func(*sparse.DenseArray) *sparse.DenseArray

// ExtractFunc reassembles a field from per-component sibling arrays
// sharing the given prefix, returning nil when no siblings exist.
type ExtractFunc func(bundle.Bundle, string) *sparse.DenseArray

// Options configure a Normalizer. The zero value selects the standard
// collaborators.
type Options struct {
	// Convert replaces the axis-order converter. Default: column-major
	// engine layout to row-major host layout.
	Convert ConvertFunc

	// Extract replaces the multi-part field extractor.
	Extract ExtractFunc

	// LegacyTailPlacement reproduces the historical element offset used
	// for the final parameter's block in the per-component sensitivity
	// fallback. Only meaningful when comparing against output of old
	// engine builds; see stackMultiPart.
	LegacyTailPlacement bool
}

// Normalizer turns raw bundles into normalized results. It is stateless
// apart from its options and safe for reuse.
type Normalizer struct {
	opts Options
}

// New returns a Normalizer, filling in default collaborators for any
// left nil in opts.
func New(opts Options) *Normalizer {
	if opts.Convert == nil {
		opts.Convert = func(a *sparse.DenseArray) *sparse.DenseArray {
			return axisorder.Convert(a, axisorder.ColumnMajor, axisorder.RowMajor)
		}
	}
	if opts.Extract == nil {
		conv := opts.Convert
		opts.Extract = func(b bundle.Bundle, prefix string) *sparse.DenseArray {
			return multipart.Extract(b, prefix, multipart.Convert(conv))
		}
	}
	return &Normalizer{opts: opts}
}

// Normalize runs a default Normalizer over b.
func Normalize(b bundle.Bundle, requestedUnits int) (*Result, error) {
	return New(Options{}).Normalize(b, requestedUnits)
}

// Normalize builds the normalized result for b. requestedUnits is a
// caller hint for the expected unit-operation count; every output list
// gets max(requestedUnits, discovered) slots. The bundle is not
// modified and the result holds no reference to it.
func (n *Normalizer) Normalize(b bundle.Bundle, requestedUnits int) (*Result, error) {
	if b == nil {
		return nil, ErrNoBundle
	}
	if requestedUnits < 0 {
		return nil, ErrUnitCount
	}

	root := bundle.Root(b)
	dims := Discover(b, requestedUnits)

	res := &Result{Dims: dims}
	n.assembleSolution(root.Group(bundle.SectionSolution), max(requestedUnits, dims.Units), &res.Solution)
	n.assembleSensitivity(root.Group(bundle.SectionSensitivity), dims, max(requestedUnits, dims.SensUnits), &res.Sensitivity)
	return res, nil
}
