package bundle

import (
	"fmt"
	"os"

	"github.com/ctessum/cdf"
	"github.com/ctessum/sparse"
)

// Some engine builds dump the bundle as a flat netCDF file where every
// field is a variable named by its slash-separated path, e.g.
// "output/solution/unit_000/SOLUTION_OUTLET". netCDF has no group
// listing in this reader, so the tree is rebuilt by probing the fixed
// field vocabulary; unit, parameter and sibling ordinals are probed
// contiguously from zero and enumeration stops at the first miss.

var solutionUnitFields = []string{
	KeySolutionOutlet, KeySoldotOutlet,
	KeySolutionInlet, KeySoldotInlet,
	KeySolutionBulk, KeySoldotBulk,
	KeySolutionParticle, KeySoldotParticle,
	KeySolutionSolid, KeySoldotSolid,
	KeySolutionFlux, KeySoldotFlux,
	KeySolutionVolume, KeySoldotVolume,
}

var sensUnitFields = []string{
	KeySensOutlet, KeySensdotOutlet,
	KeySensInlet, KeySensdotInlet,
	KeySensBulk, KeySensdotBulk,
	KeySensParticle, KeySensdotParticle,
	KeySensSolid, KeySensdotSolid,
	KeySensFlux, KeySensdotFlux,
	KeySensVolume, KeySensdotVolume,
}

// ReadCDF loads a raw bundle from a flat netCDF dump.
func ReadCDF(path string) (Bundle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ff, err := cdf.Open(f)
	if err != nil {
		return nil, fmt.Errorf("bundle: open netcdf %s: %w", path, err)
	}

	for _, base := range []string{SectionOutput + "/", ""} {
		root := Bundle{}
		if sol := readCDFSolution(ff, base); len(sol) > 0 {
			root[SectionSolution] = Entry{Group: sol}
		}
		if sens := readCDFSensitivity(ff, base); len(sens) > 0 {
			root[SectionSensitivity] = Entry{Group: sens}
		}
		if len(root) > 0 {
			return root, nil
		}
	}
	return Bundle{}, nil
}

func readCDFSolution(ff *cdf.File, base string) Bundle {
	sol := base + SectionSolution + "/"
	g := Bundle{}
	for _, name := range []string{KeyTimes, KeyLastState, KeyLastStateDot} {
		if a := readCDFVar(ff, sol+name); a != nil {
			g[name] = Entry{Array: a}
		}
	}
	for i := 0; ; i++ {
		u := readCDFUnit(ff, sol+UnitKey(i)+"/", solutionUnitFields)
		if u == nil {
			break
		}
		g[UnitKey(i)] = Entry{Group: u}
	}
	return g
}

func readCDFSensitivity(ff *cdf.File, base string) Bundle {
	sens := base + SectionSensitivity + "/"
	g := Bundle{}
	for _, prefix := range []string{PrefixLastStateSens, PrefixLastStateSensDot} {
		for i := 0; ; i++ {
			a := readCDFVar(ff, sens+PartKey(prefix, i))
			if a == nil {
				break
			}
			g[PartKey(prefix, i)] = Entry{Array: a}
		}
	}
	for p := 0; ; p++ {
		pg := Bundle{}
		for i := 0; ; i++ {
			u := readCDFUnit(ff, sens+ParamKey(p)+"/"+UnitKey(i)+"/", sensUnitFields)
			if u == nil {
				break
			}
			pg[UnitKey(i)] = Entry{Group: u}
		}
		if len(pg) == 0 {
			break
		}
		g[ParamKey(p)] = Entry{Group: pg}
	}
	return g
}

// readCDFUnit probes one unit's fields in their direct, per-particle-type
// and per-component representations. It returns nil when nothing matched.
func readCDFUnit(ff *cdf.File, base string, fields []string) Bundle {
	u := Bundle{}
	for _, name := range fields {
		if a := readCDFVar(ff, base+name); a != nil {
			u[name] = Entry{Array: a}
			continue
		}
		for t := 0; ; t++ {
			a := readCDFVar(ff, base+TypeKey(name, t))
			if a == nil {
				break
			}
			u[TypeKey(name, t)] = Entry{Array: a}
		}
		comp := name + "_COMP"
		for c := 0; ; c++ {
			a := readCDFVar(ff, base+PartKey(comp, c))
			if a == nil {
				break
			}
			u[PartKey(comp, c)] = Entry{Array: a}
		}
	}
	if len(u) == 0 {
		return nil
	}
	return u
}

// readCDFVar reads one variable into a dense array, or nil when the
// variable is not in the file.
func readCDFVar(ff *cdf.File, name string) *sparse.DenseArray {
	dims := ff.Header.Lengths(name)
	if len(dims) == 0 {
		return nil
	}
	r := ff.Reader(name, nil, nil)
	buf := r.Zero(-1)
	if _, err := r.Read(buf); err != nil {
		return nil
	}
	a := sparse.ZerosDense(dims...)
	switch v := buf.(type) {
	case []float64:
		copy(a.Elements, v)
	case []float32:
		for i, x := range v {
			a.Elements[i] = float64(x)
		}
	case []int32:
		for i, x := range v {
			a.Elements[i] = float64(x)
		}
	default:
		return nil
	}
	return a
}
