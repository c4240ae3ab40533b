// Package bundle models the raw output bundle written by the transport-model
// solver: a string-keyed tree whose leaves are numeric arrays and whose key
// names encode unit-operation, parameter and particle-type ordinals.
package bundle

import "github.com/ctessum/sparse"

// Entry is one value in a Bundle: a leaf array or a nested group.
// Exactly one of the two fields is set.
type Entry struct {
	Array *sparse.DenseArray
	Group Bundle
}

// Bundle is a string-keyed collection of arrays and sub-bundles.
// It is read-only to the normalization core.
type Bundle map[string]Entry

// Group returns the nested bundle stored under name, or nil when the key
// is absent or holds a leaf array.
func (b Bundle) Group(name string) Bundle {
	if b == nil {
		return nil
	}
	return b[name].Group
}

// Array returns the leaf array stored under name, or nil when the key is
// absent or holds a group.
func (b Bundle) Array(name string) *sparse.DenseArray {
	if b == nil {
		return nil
	}
	return b[name].Array
}

// Root descends into the optional top-level "output" group. Engine dumps
// sometimes nest the whole result one level down; this is the only
// structural normalization applied to the input itself.
func Root(b Bundle) Bundle {
	if g := b.Group(SectionOutput); g != nil {
		return g
	}
	return b
}
