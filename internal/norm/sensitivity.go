package norm

import (
	"github.com/ctessum/sparse"

	"github.com/goxberry/chromanorm/internal/bundle"
)

// assembleSensitivity fills the sensitivity half of the result. Units
// are taken from the last parameter's group, mirroring discovery's
// anchor; each field becomes an array with one extra trailing axis of
// length dims.Params, filled by the per-parameter stacking loop.
func (n *Normalizer) assembleSensitivity(sens bundle.Bundle, dims Dimensions, units int, out *Sensitivity) {
	flat, typed := sensitivityFields(out)
	for i := range flat {
		*flat[i].dst = make([]*sparse.DenseArray, units)
	}
	for i := range typed {
		*typed[i].dst = make([][]*sparse.DenseArray, units)
	}
	if sens == nil || dims.Params == 0 {
		return
	}

	// Whole-bundle last-state sensitivities are stacked by the
	// extractor itself and only forwarded here.
	out.LastState = n.opts.Extract(sens, bundle.PrefixLastStateSens)
	out.LastStateDot = n.opts.Extract(sens, bundle.PrefixLastStateSensDot)

	anchor := sens.Group(bundle.ParamKey(dims.Params - 1))
	if anchor == nil {
		return
	}

	for i := 0; i < units; i++ {
		au := anchor.Group(bundle.UnitKey(i))
		if au == nil {
			continue
		}
		for _, f := range flat {
			if a := au.Array(f.key); a != nil {
				(*f.dst)[i] = n.stack(sens, i, dims.Params, n.opts.Convert(a), n.directFetch(f.key))
			}
		}
		for _, f := range typed {
			(*f.dst)[i] = n.stackTypes(sens, au, i, dims.Params, f.key)
		}
		for _, f := range flat {
			if (*f.dst)[i] == nil && f.fallback != "" {
				(*f.dst)[i] = n.stackMultiPart(sens, au, i, dims.Params, f.fallback)
			}
		}
	}
}

// fetchFunc returns one parameter's copy of a field from its unit
// group, already axis-converted, or nil when absent.
type fetchFunc func(u bundle.Bundle) *sparse.DenseArray

func (n *Normalizer) directFetch(key string) fetchFunc {
	return func(u bundle.Bundle) *sparse.DenseArray {
		a := u.Array(key)
		if a == nil {
			return nil
		}
		return n.opts.Convert(a)
	}
}

// stack allocates the field's output array with a trailing parameter
// axis, sized from the anchor parameter's copy, and copies each present
// parameter's elements into its axis slot. Absent parameters, absent
// units and shape mismatches leave the zero fill.
func (n *Normalizer) stack(sens bundle.Bundle, unit, params int, anchor *sparse.DenseArray, fetch fetchFunc) *sparse.DenseArray {
	shape := append(append([]int{}, anchor.Shape...), params)
	out := sparse.ZerosDense(shape...)
	stride := len(anchor.Elements)

	for p := 0; p < params; p++ {
		pg := sens.Group(bundle.ParamKey(p))
		if pg == nil {
			continue
		}
		u := pg.Group(bundle.UnitKey(unit))
		if u == nil {
			continue
		}
		a := fetch(u)
		if a == nil || len(a.Elements) != stride {
			continue
		}
		// Row-major output: native element j occupies axis slot p at
		// linear position j*params+p.
		for j, v := range a.Elements {
			out.Elements[j*params+p] = v
		}
	}
	return out
}

// stackTypes applies the two-representation policy per particle type,
// running the parameter stacking loop independently for each type slot.
func (n *Normalizer) stackTypes(sens bundle.Bundle, au bundle.Bundle, unit, params int, key string) []*sparse.DenseArray {
	if a := au.Array(key); a != nil {
		return []*sparse.DenseArray{n.stack(sens, unit, params, n.opts.Convert(a), n.directFetch(key))}
	}
	var list []*sparse.DenseArray
	for t := 0; ; t++ {
		a := au.Array(bundle.TypeKey(key, t))
		if a == nil {
			break
		}
		list = append(list, n.stack(sens, unit, params, n.opts.Convert(a), n.directFetch(bundle.TypeKey(key, t))))
	}
	return list
}

// stackMultiPart stacks a field whose per-parameter copies must each be
// reassembled from per-component siblings first. The anchor unit's
// extraction fixes the native shape.
func (n *Normalizer) stackMultiPart(sens bundle.Bundle, au bundle.Bundle, unit, params int, prefix string) *sparse.DenseArray {
	anchor := n.opts.Extract(au, prefix)
	if anchor == nil {
		return nil
	}
	shape := append(append([]int{}, anchor.Shape...), params)
	out := sparse.ZerosDense(shape...)
	stride := len(anchor.Elements)

	for p := 0; p < params; p++ {
		pg := sens.Group(bundle.ParamKey(p))
		if pg == nil {
			continue
		}
		u := pg.Group(bundle.UnitKey(unit))
		if u == nil {
			continue
		}
		a := n.opts.Extract(u, prefix)
		if a == nil || len(a.Elements) != stride {
			continue
		}
		if n.opts.LegacyTailPlacement && p == params-1 {
			// Old engine builds placed the final parameter's block
			// contiguously at element offset params-1 instead of
			// interleaving it at axis index p. Kept selectable for
			// comparison runs against their output.
			for j, v := range a.Elements {
				if k := params - 1 + j; k < len(out.Elements) {
					out.Elements[k] = v
				}
			}
			continue
		}
		for j, v := range a.Elements {
			out.Elements[j*params+p] = v
		}
	}
	return out
}
