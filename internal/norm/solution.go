package norm

import (
	"github.com/ctessum/sparse"

	"github.com/goxberry/chromanorm/internal/bundle"
)

// assembleSolution fills the solution half of the result from the
// bundle's solution section. Units with no group are skipped and leave
// nil slots; the pass never aborts.
func (n *Normalizer) assembleSolution(sol bundle.Bundle, units int, out *Solution) {
	flat, typed := solutionFields(out)
	for i := range flat {
		*flat[i].dst = make([]*sparse.DenseArray, units)
	}
	for i := range typed {
		*typed[i].dst = make([][]*sparse.DenseArray, units)
	}
	if sol == nil {
		return
	}

	if a := sol.Array(bundle.KeyTimes); a != nil {
		out.Time = n.opts.Convert(a)
	}
	if a := sol.Array(bundle.KeyLastState); a != nil {
		out.LastState = n.opts.Convert(a)
	}
	if a := sol.Array(bundle.KeyLastStateDot); a != nil {
		out.LastStateDot = n.opts.Convert(a)
	}

	for i := 0; i < units; i++ {
		u := sol.Group(bundle.UnitKey(i))
		if u == nil {
			continue
		}
		for _, f := range flat {
			if a := u.Array(f.key); a != nil {
				(*f.dst)[i] = n.opts.Convert(a)
			}
		}
		for _, f := range typed {
			(*f.dst)[i] = n.typeSeries(u, f.key)
		}
		// Engines that emit per-component scalars instead of one array
		// leave the direct lookup empty; retry those via the extractor.
		for _, f := range flat {
			if (*f.dst)[i] == nil && f.fallback != "" {
				(*f.dst)[i] = n.opts.Extract(u, f.fallback)
			}
		}
	}
}

// typeSeries resolves the two representations of a particle or solid
// field: the combined array wrapped in a one-element list, or else the
// contiguous _PARTYPE_%03d series. Probing stops at the first missing
// ordinal; gaps are not supported.
func (n *Normalizer) typeSeries(u bundle.Bundle, key string) []*sparse.DenseArray {
	if a := u.Array(key); a != nil {
		return []*sparse.DenseArray{n.opts.Convert(a)}
	}
	var list []*sparse.DenseArray
	for t := 0; ; t++ {
		a := u.Array(bundle.TypeKey(key, t))
		if a == nil {
			break
		}
		list = append(list, n.opts.Convert(a))
	}
	return list
}
