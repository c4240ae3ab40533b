package norm

import (
	"github.com/ctessum/sparse"

	"github.com/goxberry/chromanorm/internal/bundle"
)

// Field kinds are driven by tables rather than one extraction branch per
// field: each record names the source field, its per-component fallback
// prefix when one exists, and the output list it fills.

type flatField struct {
	key      string // field name within a unit group
	fallback string // multi-part sibling prefix; empty when the field has no per-component form
	dst      *[]*sparse.DenseArray
}

type typedField struct {
	key string // combined form; the _PARTYPE_%03d series is probed when absent
	dst *[][]*sparse.DenseArray
}

func solutionFields(s *Solution) ([]flatField, []typedField) {
	flat := []flatField{
		{bundle.KeySolutionOutlet, bundle.KeySolutionOutlet + "_COMP", &s.Outlet},
		{bundle.KeySoldotOutlet, bundle.KeySoldotOutlet + "_COMP", &s.OutletDot},
		{bundle.KeySolutionInlet, bundle.KeySolutionInlet + "_COMP", &s.Inlet},
		{bundle.KeySoldotInlet, bundle.KeySoldotInlet + "_COMP", &s.InletDot},
		{bundle.KeySolutionBulk, "", &s.Bulk},
		{bundle.KeySoldotBulk, "", &s.BulkDot},
		{bundle.KeySolutionFlux, "", &s.Flux},
		{bundle.KeySoldotFlux, "", &s.FluxDot},
		{bundle.KeySolutionVolume, "", &s.Volume},
		{bundle.KeySoldotVolume, "", &s.VolumeDot},
	}
	typed := []typedField{
		{bundle.KeySolutionParticle, &s.Particle},
		{bundle.KeySoldotParticle, &s.ParticleDot},
		{bundle.KeySolutionSolid, &s.Solid},
		{bundle.KeySoldotSolid, &s.SolidDot},
	}
	return flat, typed
}

func sensitivityFields(s *Sensitivity) ([]flatField, []typedField) {
	flat := []flatField{
		{bundle.KeySensOutlet, bundle.KeySensOutlet + "_COMP", &s.Jacobian},
		{bundle.KeySensdotOutlet, bundle.KeySensdotOutlet + "_COMP", &s.JacobianDot},
		{bundle.KeySensInlet, bundle.KeySensInlet + "_COMP", &s.Inlet},
		{bundle.KeySensdotInlet, bundle.KeySensdotInlet + "_COMP", &s.InletDot},
		{bundle.KeySensBulk, "", &s.Bulk},
		{bundle.KeySensdotBulk, "", &s.BulkDot},
		{bundle.KeySensFlux, "", &s.Flux},
		{bundle.KeySensdotFlux, "", &s.FluxDot},
		{bundle.KeySensVolume, "", &s.Volume},
		{bundle.KeySensdotVolume, "", &s.VolumeDot},
	}
	typed := []typedField{
		{bundle.KeySensParticle, &s.Particle},
		{bundle.KeySensdotParticle, &s.ParticleDot},
		{bundle.KeySensSolid, &s.Solid},
		{bundle.KeySensdotSolid, &s.SolidDot},
	}
	return flat, typed
}
