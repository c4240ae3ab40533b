// Package multipart reassembles a field the engine emitted as several
// per-component sibling arrays instead of one combined array, e.g.
// SOLUTION_OUTLET_COMP_000, SOLUTION_OUTLET_COMP_001, ...
package multipart

import (
	"github.com/ctessum/sparse"

	"github.com/goxberry/chromanorm/internal/bundle"
)

// Convert rearranges one leaf array into the host layout before it is
// stacked. It is applied to every part individually.
type Convert func(*sparse.DenseArray) *sparse.DenseArray

// Extract collects the contiguous sibling series prefix_000, prefix_001,
// ... from b and stacks the parts along a new trailing axis. Probing
// stops at the first missing ordinal. The result is nil, not an error,
// when no siblings exist; parts whose element count disagrees with the
// first part are skipped and leave a zero slice.
func Extract(b bundle.Bundle, prefix string, convert Convert) *sparse.DenseArray {
	parts := make([]*sparse.DenseArray, 0)
	for i := 0; ; i++ {
		a := b.Array(bundle.PartKey(prefix, i))
		if a == nil {
			break
		}
		parts = append(parts, convert(a))
	}
	if len(parts) == 0 {
		return nil
	}

	n := len(parts)
	shape := append(append([]int{}, parts[0].Shape...), n)
	out := sparse.ZerosDense(shape...)
	stride := len(parts[0].Elements)
	for p, part := range parts {
		if len(part.Elements) != stride {
			continue
		}
		// Row-major output: the trailing part axis has stride 1, so
		// element j of part p lands at j*n+p.
		for j, v := range part.Elements {
			out.Elements[j*n+p] = v
		}
	}
	return out
}
