package diagram

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/goscol/internal/curve"
)

// PlotCurve renders one resistance curve as a terminal chart. The
// x-direction runs through the sweep heights in order; the y-values
// are the factored resistances.
func PlotCurve(c curve.Curve, height int) string {
	if len(c.Resistances) == 0 {
		return ""
	}

	caption := fmt.Sprintf("%s: Pr over heights %g to %g",
		c.Label, c.Heights[0], c.Heights[len(c.Heights)-1])

	return asciigraph.Plot(c.Resistances,
		asciigraph.Height(height),
		asciigraph.Precision(0),
		asciigraph.Caption(caption),
	)
}

// PlotComparison overlays the two resistance curves of a comparison in
// one terminal chart, column A in red and column B in teal to match
// the exported image.
func PlotComparison(cmp curve.Comparison, height int) string {
	if len(cmp.A.Resistances) == 0 && len(cmp.B.Resistances) == 0 {
		return ""
	}

	return asciigraph.PlotMany(
		[][]float64{cmp.A.Resistances, cmp.B.Resistances},
		asciigraph.Height(height),
		asciigraph.Precision(0),
		asciigraph.SeriesColors(asciigraph.Red, asciigraph.Teal),
		asciigraph.SeriesLegends(cmp.A.Label, cmp.B.Label),
		asciigraph.Caption("Factored axial resistance over column height"),
	)
}

// SummaryBox draws a double-ruled box around a title and result lines.
// Widths count runes, not bytes, so symbol-heavy lines (λ, φ, ≤) stay
// aligned.
func SummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := utf8.RuneCountInString(title)
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", padRight(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", padRight(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

func padRight(s string, width int) string {
	if n := width - utf8.RuneCountInString(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
