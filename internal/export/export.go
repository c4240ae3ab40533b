// Package export writes a normalized result as pretty-printed JSON.
package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/ctessum/sparse"

	"github.com/goxberry/chromanorm/internal/norm"
)

// Array is the JSON form of one dense array.
type Array struct {
	Shape []int     `json:"shape"`
	Data  []float64 `json:"data"`
}

// SolutionData mirrors norm.Solution. Absent slots serialize as null so
// list lengths survive the round trip.
type SolutionData struct {
	Time      []float64  `json:"time,omitempty"`
	Outlet    []*Array   `json:"outlet"`
	OutletDot []*Array   `json:"outlet_dot"`
	Inlet     []*Array   `json:"inlet"`
	InletDot  []*Array   `json:"inlet_dot"`
	Bulk      []*Array   `json:"bulk"`
	BulkDot   []*Array   `json:"bulk_dot"`
	Flux      []*Array   `json:"flux"`
	FluxDot   []*Array   `json:"flux_dot"`
	Volume    []*Array   `json:"volume"`
	VolumeDot []*Array   `json:"volume_dot"`

	Particle    [][]*Array `json:"particle"`
	ParticleDot [][]*Array `json:"particle_dot"`
	Solid       [][]*Array `json:"solid"`
	SolidDot    [][]*Array `json:"solid_dot"`

	LastState    []float64 `json:"last_state,omitempty"`
	LastStateDot []float64 `json:"last_state_dot,omitempty"`
}

// SensitivityData mirrors norm.Sensitivity.
type SensitivityData struct {
	Jacobian    []*Array `json:"jacobian"`
	JacobianDot []*Array `json:"jacobian_dot"`
	Inlet       []*Array `json:"inlet"`
	InletDot    []*Array `json:"inlet_dot"`
	Bulk        []*Array `json:"bulk"`
	BulkDot     []*Array `json:"bulk_dot"`
	Flux        []*Array `json:"flux"`
	FluxDot     []*Array `json:"flux_dot"`
	Volume      []*Array `json:"volume"`
	VolumeDot   []*Array `json:"volume_dot"`

	Particle    [][]*Array `json:"particle"`
	ParticleDot [][]*Array `json:"particle_dot"`
	Solid       [][]*Array `json:"solid"`
	SolidDot    [][]*Array `json:"solid_dot"`

	LastState    *Array `json:"last_state,omitempty"`
	LastStateDot *Array `json:"last_state_dot,omitempty"`
}

// ExportData is the serialized form of one normalized result.
type ExportData struct {
	Units       int             `json:"units"`
	Params      int             `json:"params"`
	SensUnits   int             `json:"sens_units"`
	Solution    SolutionData    `json:"solution"`
	Sensitivity SensitivityData `json:"sensitivity"`
}

// Build converts a normalized result into its serializable form.
func Build(res *norm.Result) *ExportData {
	s, x := &res.Solution, &res.Sensitivity
	return &ExportData{
		Units:     res.Dims.Units,
		Params:    res.Dims.Params,
		SensUnits: res.Dims.SensUnits,
		Solution: SolutionData{
			Time:      vector(s.Time),
			Outlet:    list(s.Outlet),
			OutletDot: list(s.OutletDot),
			Inlet:     list(s.Inlet),
			InletDot:  list(s.InletDot),
			Bulk:      list(s.Bulk),
			BulkDot:   list(s.BulkDot),
			Flux:      list(s.Flux),
			FluxDot:   list(s.FluxDot),
			Volume:    list(s.Volume),
			VolumeDot: list(s.VolumeDot),

			Particle:    nested(s.Particle),
			ParticleDot: nested(s.ParticleDot),
			Solid:       nested(s.Solid),
			SolidDot:    nested(s.SolidDot),

			LastState:    vector(s.LastState),
			LastStateDot: vector(s.LastStateDot),
		},
		Sensitivity: SensitivityData{
			Jacobian:    list(x.Jacobian),
			JacobianDot: list(x.JacobianDot),
			Inlet:       list(x.Inlet),
			InletDot:    list(x.InletDot),
			Bulk:        list(x.Bulk),
			BulkDot:     list(x.BulkDot),
			Flux:        list(x.Flux),
			FluxDot:     list(x.FluxDot),
			Volume:      list(x.Volume),
			VolumeDot:   list(x.VolumeDot),

			Particle:    nested(x.Particle),
			ParticleDot: nested(x.ParticleDot),
			Solid:       nested(x.Solid),
			SolidDot:    nested(x.SolidDot),

			LastState:    array(x.LastState),
			LastStateDot: array(x.LastStateDot),
		},
	}
}

// JSON writes res to w as indented JSON.
func JSON(w io.Writer, res *norm.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Build(res))
}

// JSONFile writes res to the file at path.
func JSONFile(path string, res *norm.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return JSON(file, res)
}

func array(a *sparse.DenseArray) *Array {
	if a == nil {
		return nil
	}
	return &Array{Shape: a.Shape, Data: a.Elements}
}

func vector(a *sparse.DenseArray) []float64 {
	if a == nil {
		return nil
	}
	return a.Elements
}

func list(as []*sparse.DenseArray) []*Array {
	out := make([]*Array, len(as))
	for i, a := range as {
		out[i] = array(a)
	}
	return out
}

func nested(as [][]*sparse.DenseArray) [][]*Array {
	out := make([][]*Array, len(as))
	for i, group := range as {
		if group == nil {
			continue
		}
		out[i] = list(group)
	}
	return out
}
