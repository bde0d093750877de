package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/beamcalc/internal/beam"
)

// DrawBeamSchematic creates an ASCII representation of the beam with its
// supports and loads. width is the number of characters used for the span.
func DrawBeamSchematic(data BeamDiagramData, width int) string {
	if width < 10 {
		width = 10
	}
	col := func(x float64) int {
		c := int(math.Round(x / data.Length * float64(width)))
		return max(0, min(width, c))
	}

	loads := blankRow(width)
	span := []rune(strings.Repeat("═", width+1))
	supports := blankRow(width)
	labels := blankRow(width)

	for _, d := range data.Distributed {
		for c := col(d.Start); c <= col(d.End); c++ {
			loads[c] = '┬'
		}
	}
	for _, p := range data.Points {
		if p.Magnitude >= 0 {
			loads[col(p.Position)] = '↓'
		} else {
			loads[col(p.Position)] = '↑'
		}
	}
	for _, m := range data.Moments {
		if m.Magnitude >= 0 {
			loads[col(m.Position)] = '↻'
		} else {
			loads[col(m.Position)] = '↺'
		}
	}

	switch s := data.Support.(type) {
	case beam.TwoSupport:
		supports[col(s.A)] = '▲'
		supports[col(s.B)] = '▲'
		labels[col(s.A)] = 'A'
		labels[col(s.B)] = 'B'
	case beam.Cantilever:
		c := 0
		if s.End == beam.FixedRight {
			c = width
		}
		span[c] = '█'
		supports[c] = '▓'
		labels[c] = 'A'
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString("  BEAM\n")
	sb.WriteString("  ────\n")
	sb.WriteString(fmt.Sprintf("  %s\n", string(loads)))
	sb.WriteString(fmt.Sprintf("  %s\n", string(span)))
	sb.WriteString(fmt.Sprintf("  %s\n", string(supports)))
	sb.WriteString(fmt.Sprintf("  %s\n", string(labels)))
	sb.WriteString(fmt.Sprintf("  0%s%.2f %s\n", strings.Repeat(" ", max(1, width-5)), data.Length, data.Units.Length))

	// Legend
	u := data.Units
	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	for _, p := range data.Points {
		sb.WriteString(fmt.Sprintf("  ↓ P = %.2f %s at x = %.2f\n", p.Magnitude, u.Force, p.Position))
	}
	for _, d := range data.Distributed {
		sb.WriteString(fmt.Sprintf("  ┬ w = %.2f %s/%s from x = %.2f to %.2f\n", d.Intensity, u.Force, u.Length, d.Start, d.End))
	}
	for _, m := range data.Moments {
		sb.WriteString(fmt.Sprintf("  ↻ M = %.2f %s at x = %.2f\n", m.Magnitude, u.Moment, m.Position))
	}
	sb.WriteString(fmt.Sprintf("  Supports: %s\n", data.Support))

	return sb.String()
}

func blankRow(width int) []rune {
	return []rune(strings.Repeat(" ", width+1))
}

// DrawForceDiagrams plots V(x) and M(x) as terminal charts
func DrawForceDiagrams(data BeamDiagramData, width, height int) string {
	var sb strings.Builder
	u := data.Units
	e := data.Extremes

	sb.WriteString("\n")
	sb.WriteString(asciigraph.Plot(data.Diagram.V,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Precision(2),
		asciigraph.Caption(fmt.Sprintf("Shear force V(x) [%s], x from 0 to %.2f %s", u.Force, data.Length, u.Length)),
	))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  V max = %.2f %s at x = %.2f | V min = %.2f %s at x = %.2f\n",
		e.MaxShear.Value, u.Force, e.MaxShear.X, e.MinShear.Value, u.Force, e.MinShear.X))

	sb.WriteString("\n")
	sb.WriteString(asciigraph.Plot(data.Diagram.M,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Precision(2),
		asciigraph.Caption(fmt.Sprintf("Bending moment M(x) [%s], x from 0 to %.2f %s", u.Moment, data.Length, u.Length)),
	))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  M max = %.2f %s at x = %.2f | M min = %.2f %s at x = %.2f\n",
		e.MaxMoment.Value, u.Moment, e.MaxMoment.X, e.MinMoment.Value, u.Moment, e.MinMoment.X))

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// pad right-pads s to n runes; %-*s counts bytes and breaks on "·"
func pad(s string, n int) string {
	return s + strings.Repeat(" ", max(0, n-len([]rune(s))))
}
