// Package norm normalizes the raw output bundle of a chromatography
// transport-model solver into a uniform, indexable result.
//
// The raw bundle is a flat, string-keyed tree whose key names encode
// structure: "unit_%03d" groups hold one unit operation's solution,
// "param_%03d" groups hold one sensitivity parameter's data, and
// per-particle-type fields carry a "_PARTYPE_%03d" suffix. Normalization
// runs in three stages:
//
//   - [Discover] infers the unit, parameter and sensitivity-unit counts
//     from the key names alone.
//   - The solution assembler fills one slot per unit operation for each
//     field kind, falling back to per-component sibling fields when the
//     combined array is absent.
//   - The sensitivity assembler stacks each field's per-parameter arrays
//     along a new trailing parameter axis.
//
// Missing data never fails: absent units leave nil slots, absent
// parameters leave zero slices, and keys that do not match the naming
// scheme contribute nothing. The whole pass is a pure function of the
// bundle; the result holds no reference back to it.
package norm
