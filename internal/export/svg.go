package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/ctessum/sparse"
)

// CurveSVG renders one chromatogram curve (a field's time series for a
// single component) as an SVG polyline. times may be nil, in which case
// the sample index is used for the x axis.
func CurveSVG(times, field *sparse.DenseArray, component int, width, height float64) string {
	series := Series(field, component)
	if len(series) < 2 {
		return ""
	}

	xs := make([]float64, len(series))
	for i := range xs {
		xs[i] = float64(i)
	}
	if times != nil && len(times.Elements) == len(series) {
		copy(xs, times.Elements)
	}

	// Find bounds
	minX, maxX := xs[0], xs[0]
	minY, maxY := series[0], series[0]
	for i := range series {
		if xs[i] < minX {
			minX = xs[i]
		}
		if xs[i] > maxX {
			maxX = xs[i]
		}
		if series[i] < minY {
			minY = series[i]
		}
		if series[i] > maxY {
			maxY = series[i]
		}
	}

	// Add padding
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.05
	maxY += rangeY * 0.05
	rangeY = maxY - minY

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#ffffff"/>
<path fill="none" stroke="#1f77b4" stroke-width="1.5" d="M`,
		width, height, width, height))

	for i := range series {
		x := (xs[i] - minX) / rangeX * width
		y := height - (series[i]-minY)/rangeY*height

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}

// CurveSVGFile writes one curve to an SVG file.
func CurveSVGFile(path string, times, field *sparse.DenseArray, component int, width, height float64) error {
	svg := CurveSVG(times, field, component, width, height)
	if svg == "" {
		return fmt.Errorf("export: no data to plot")
	}
	return os.WriteFile(path, []byte(svg), 0644)
}

// Series extracts one component's time series from a field array with
// axis order time, component, ... Rank-1 arrays are returned whole.
func Series(field *sparse.DenseArray, component int) []float64 {
	if field == nil || len(field.Elements) == 0 || field.Shape[0] == 0 {
		return nil
	}
	if len(field.Shape) < 2 {
		out := make([]float64, len(field.Elements))
		copy(out, field.Elements)
		return out
	}

	nt := field.Shape[0]
	stride := len(field.Elements) / nt
	if component < 0 || component >= stride {
		return nil
	}
	out := make([]float64, nt)
	for t := 0; t < nt; t++ {
		out[t] = field.Elements[t*stride+component]
	}
	return out
}
