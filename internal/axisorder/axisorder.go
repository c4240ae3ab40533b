// Package axisorder rearranges dense arrays between the two axis-major
// layout conventions. The solver writes its leaf arrays with the first
// axis varying fastest in linear memory; the arrays used here are
// row-major. Converting preserves logical shape and element identity.
package axisorder

import "github.com/ctessum/sparse"

// Order identifies which axis of an array varies fastest in linear memory.
type Order int

const (
	// RowMajor: the last axis varies fastest.
	RowMajor Order = iota
	// ColumnMajor: the first axis varies fastest.
	ColumnMajor
)

// Convert returns a copy of a whose linear element order follows to,
// interpreting the input's linear order as from. The mapping is a
// bijection: Convert(Convert(a, from, to), to, from) reproduces a
// exactly. Arrays of rank 0 or 1 are copied unchanged.
func Convert(a *sparse.DenseArray, from, to Order) *sparse.DenseArray {
	out := sparse.ZerosDense(a.Shape...)
	if from == to || len(a.Shape) < 2 {
		copy(out.Elements, a.Elements)
		return out
	}

	src := strides(a.Shape, from)
	dst := strides(a.Shape, to)
	for i, v := range a.Elements {
		j := 0
		for ax, n := range a.Shape {
			j += (i / src[ax]) % n * dst[ax]
		}
		out.Elements[j] = v
	}
	return out
}

// strides returns the linear stride of each axis under order o.
func strides(shape []int, o Order) []int {
	s := make([]int, len(shape))
	acc := 1
	if o == RowMajor {
		for i := len(shape) - 1; i >= 0; i-- {
			s[i] = acc
			acc *= shape[i]
		}
	} else {
		for i := 0; i < len(shape); i++ {
			s[i] = acc
			acc *= shape[i]
		}
	}
	return s
}
