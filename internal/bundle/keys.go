package bundle

import (
	"fmt"
	"strings"
)

// Section and field names used by the solver's output bundle. The zero-padded
// 3-digit suffix scheme and the field vocabulary are fixed by the engine and
// must be reproduced exactly.
const (
	SectionOutput      = "output"
	SectionSolution    = "solution"
	SectionSensitivity = "sensitivity"

	PrefixUnit  = "unit"
	PrefixParam = "param"

	KeyTimes = "SOLUTION_TIMES"

	KeySolutionOutlet   = "SOLUTION_OUTLET"
	KeySoldotOutlet     = "SOLDOT_OUTLET"
	KeySolutionInlet    = "SOLUTION_INLET"
	KeySoldotInlet      = "SOLDOT_INLET"
	KeySolutionBulk     = "SOLUTION_BULK"
	KeySoldotBulk       = "SOLDOT_BULK"
	KeySolutionParticle = "SOLUTION_PARTICLE"
	KeySoldotParticle   = "SOLDOT_PARTICLE"
	KeySolutionSolid    = "SOLUTION_SOLID"
	KeySoldotSolid      = "SOLDOT_SOLID"
	KeySolutionFlux     = "SOLUTION_FLUX"
	KeySoldotFlux       = "SOLDOT_FLUX"
	KeySolutionVolume   = "SOLUTION_VOLUME"
	KeySoldotVolume     = "SOLDOT_VOLUME"

	KeySensOutlet      = "SENS_OUTLET"
	KeySensdotOutlet   = "SENSDOT_OUTLET"
	KeySensInlet       = "SENS_INLET"
	KeySensdotInlet    = "SENSDOT_INLET"
	KeySensBulk        = "SENS_BULK"
	KeySensdotBulk     = "SENSDOT_BULK"
	KeySensParticle    = "SENS_PARTICLE"
	KeySensdotParticle = "SENSDOT_PARTICLE"
	KeySensSolid       = "SENS_SOLID"
	KeySensdotSolid    = "SENSDOT_SOLID"
	KeySensFlux        = "SENS_FLUX"
	KeySensdotFlux     = "SENSDOT_FLUX"
	KeySensVolume      = "SENS_VOLUME"
	KeySensdotVolume   = "SENSDOT_VOLUME"

	KeyLastState    = "LAST_STATE_Y"
	KeyLastStateDot = "LAST_STATE_YDOT"

	PrefixLastStateSens    = "LAST_STATE_SENSY"
	PrefixLastStateSensDot = "LAST_STATE_SENSYDOT"
)

// UnitKey returns the bundle key of unit operation i, e.g. "unit_003".
func UnitKey(i int) string { return fmt.Sprintf("%s_%03d", PrefixUnit, i) }

// ParamKey returns the bundle key of sensitivity parameter i, e.g. "param_001".
func ParamKey(i int) string { return fmt.Sprintf("%s_%03d", PrefixParam, i) }

// TypeKey returns the per-particle-type variant of a field name,
// e.g. TypeKey("SOLUTION_PARTICLE", 2) = "SOLUTION_PARTICLE_PARTYPE_002".
func TypeKey(field string, i int) string {
	return fmt.Sprintf("%s_PARTYPE_%03d", field, i)
}

// PartKey returns the i-th sibling of a multi-part field series,
// e.g. PartKey("SOLUTION_OUTLET_COMP", 0) = "SOLUTION_OUTLET_COMP_000".
func PartKey(prefix string, i int) string {
	return fmt.Sprintf("%s_%03d", prefix, i)
}

// Ordinal parses the zero-based ordinal out of a key of the form
// "<prefix>_%03d". It returns -1 when the key does not match, so that a
// max over an all-non-matching key set resolves to "nothing found"
// rather than an error.
func Ordinal(key, prefix string) int {
	rest, ok := strings.CutPrefix(key, prefix+"_")
	if !ok || rest == "" {
		return -1
	}
	n := 0
	for _, c := range rest {
		if c < '0' || c > '9' {
			return -1
		}
		n = n*10 + int(c-'0')
	}
	return n
}
