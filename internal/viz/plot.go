// Package viz renders recorded runs for the terminal. It consumes the
// integrator's series only and never touches the stepping logic.
package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/icesim/internal/icesheet"
)

const (
	plotWidth  = 80
	plotHeight = 12
)

// ControlPlot charts the control parameter over time. Index 0 is
// skipped: it holds the initial-condition sentinels, not a step.
func ControlPlot(primary, secondary *icesheet.Result) string {
	var sb strings.Builder

	sb.WriteString(asciigraph.Plot(primary.Controls[1:],
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption("control parameter"),
	))
	sb.WriteString("\n")

	if secondary != nil {
		sb.WriteString("\n")
		sb.WriteString(asciigraph.Plot(secondary.Controls[1:],
			asciigraph.Height(plotHeight),
			asciigraph.Width(plotWidth),
			asciigraph.Caption("control parameter (second run)"),
		))
		sb.WriteString("\n")
	}

	return sb.String()
}

// VolumePlot charts ice volume against both equilibrium bounds.
func VolumePlot(primary, secondary *icesheet.Result) string {
	var sb strings.Builder

	sb.WriteString(asciigraph.PlotMany(
		[][]float64{primary.Volumes[1:], primary.EqTop[1:], primary.EqBottom[1:]},
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption("ice volume / eq top / eq bottom"),
		asciigraph.SeriesColors(asciigraph.White, asciigraph.Red, asciigraph.Blue),
	))
	sb.WriteString("\n")

	if secondary != nil {
		sb.WriteString("\n")
		sb.WriteString(asciigraph.PlotMany(
			[][]float64{secondary.Volumes[1:], secondary.EqTop[1:], secondary.EqBottom[1:]},
			asciigraph.Height(plotHeight),
			asciigraph.Width(plotWidth),
			asciigraph.Caption("ice volume / eq top / eq bottom (second run)"),
			asciigraph.SeriesColors(asciigraph.White, asciigraph.Red, asciigraph.Blue),
		))
		sb.WriteString("\n")
	}

	return sb.String()
}

// SummaryLines formats summary statistics for command output.
func SummaryLines(summary map[string]float64, keys []string) string {
	var sb strings.Builder
	for _, k := range keys {
		sb.WriteString(fmt.Sprintf("  %s: %.6f\n", k, summary[k]))
	}
	return sb.String()
}
