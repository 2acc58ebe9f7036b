package viz

import (
	"fmt"
	"strings"
)

// PhaseScatter draws the volume-vs-control trajectory as an ascii
// scatter. Point glyphs encode time: early points render faint, late
// points solid, so the direction of travel around the hysteresis loop
// stays readable.
func PhaseScatter(controls, volumes []float64, width, height int) string {
	if len(controls) == 0 || len(controls) != len(volumes) {
		return ""
	}
	// The x-axis label row needs at least 10 columns.
	if width < 10 {
		width = 10
	}
	if height < 2 {
		height = 2
	}

	xMin, xMax := controls[0], controls[0]
	yMin, yMax := volumes[0], volumes[0]
	for i := range controls {
		if controls[i] < xMin {
			xMin = controls[i]
		}
		if controls[i] > xMax {
			xMax = controls[i]
		}
		if volumes[i] < yMin {
			yMin = volumes[i]
		}
		if volumes[i] > yMax {
			yMax = volumes[i]
		}
	}

	xRange := xMax - xMin
	yRange := yMax - yMin
	if xRange == 0 {
		xRange = 1
	}
	if yRange == 0 {
		yRange = 1
	}

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	for i := range controls {
		px := int(float64(width-1) * (controls[i] - xMin) / xRange)
		py := int(float64(height-1) * (volumes[i] - yMin) / yRange)
		py = height - 1 - py
		if px < 0 || px >= width || py < 0 || py >= height {
			continue
		}
		if i < len(controls)/3 {
			canvas[py][px] = '.'
		} else if i < 2*len(controls)/3 {
			canvas[py][px] = 'o'
		} else {
			canvas[py][px] = '●'
		}
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("  %6.2f ┌%s┐\n", yMax, strings.Repeat("─", width)))
	for i := range canvas {
		if i == height/2 {
			sb.WriteString(fmt.Sprintf("  %6.2f │", (yMax+yMin)/2))
		} else {
			sb.WriteString("         │")
		}
		sb.WriteString(string(canvas[i]))
		sb.WriteString("│\n")
	}
	sb.WriteString(fmt.Sprintf("  %6.2f └%s┘\n", yMin, strings.Repeat("─", width)))

	sb.WriteString(fmt.Sprintf("         %.2f%s%.2f\n", xMin, strings.Repeat(" ", width-10), xMax))
	sb.WriteString("\nLegend: . = early, o = middle, ● = late\n")

	return sb.String()
}
