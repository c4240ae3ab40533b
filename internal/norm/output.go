package norm

import "github.com/ctessum/sparse"

// Solution is the per-unit-operation half of a normalized result. Every
// list has exactly one entry per unit operation slot; a nil entry means
// the engine emitted no data for that unit and field. Particle and
// solid fields carry one array per particle type. Leaf array axes are
// ordered time, component, then spatial axes.
type Solution struct {
	Time *sparse.DenseArray

	Outlet    []*sparse.DenseArray
	OutletDot []*sparse.DenseArray
	Inlet     []*sparse.DenseArray
	InletDot  []*sparse.DenseArray
	Bulk      []*sparse.DenseArray
	BulkDot   []*sparse.DenseArray
	Flux      []*sparse.DenseArray
	FluxDot   []*sparse.DenseArray
	Volume    []*sparse.DenseArray
	VolumeDot []*sparse.DenseArray

	Particle    [][]*sparse.DenseArray
	ParticleDot [][]*sparse.DenseArray
	Solid       [][]*sparse.DenseArray
	SolidDot    [][]*sparse.DenseArray

	LastState    *sparse.DenseArray
	LastStateDot *sparse.DenseArray
}

// Sensitivity mirrors Solution for the parameter derivatives. Every
// array gains one extra trailing axis of length Dimensions.Params;
// parameters absent from the bundle leave an all-zero slice along that
// axis rather than a gap. The outlet derivatives are the jacobian.
type Sensitivity struct {
	Jacobian    []*sparse.DenseArray
	JacobianDot []*sparse.DenseArray
	Inlet       []*sparse.DenseArray
	InletDot    []*sparse.DenseArray
	Bulk        []*sparse.DenseArray
	BulkDot     []*sparse.DenseArray
	Flux        []*sparse.DenseArray
	FluxDot     []*sparse.DenseArray
	Volume      []*sparse.DenseArray
	VolumeDot   []*sparse.DenseArray

	Particle    [][]*sparse.DenseArray
	ParticleDot [][]*sparse.DenseArray
	Solid       [][]*sparse.DenseArray
	SolidDot    [][]*sparse.DenseArray

	// Last-state sensitivities are whole-bundle vectors stacked across
	// parameters by the multi-part extractor.
	LastState    *sparse.DenseArray
	LastStateDot *sparse.DenseArray
}

// Result is the normalized form of one raw bundle. It is built in a
// single pass and not mutated afterward.
type Result struct {
	Dims        Dimensions
	Solution    Solution
	Sensitivity Sensitivity
}
