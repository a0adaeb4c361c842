// Package viz renders terminal output: the ascii range histogram, the
// styled console summary, and the live analysis view.
package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/gemini001100/Aeroforge-Ultra-Range-Electric-Aviation/internal/montecarlo"
)

const (
	histWidth  = 80
	histHeight = 12
	histBins   = 40
)

// Bins counts values into n equal-width bins over [lo, hi].
func Bins(values []float64, n int) (counts []float64, lo, hi float64) {
	counts = make([]float64, n)
	if len(values) == 0 || n <= 0 {
		return counts, 0, 0
	}

	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if hi == lo {
		counts[0] = float64(len(values))
		return counts, lo, hi
	}

	width := (hi - lo) / float64(n)
	for _, v := range values {
		idx := int((v - lo) / width)
		if idx >= n {
			idx = n - 1
		}
		counts[idx]++
	}
	return counts, lo, hi
}

// RenderHistogram draws an ascii histogram of the range ensemble.
func RenderHistogram(ranges []float64, caption string) string {
	if len(ranges) == 0 {
		return "no data"
	}

	counts, lo, hi := Bins(ranges, histBins)
	graph := asciigraph.Plot(counts,
		asciigraph.Height(histHeight),
		asciigraph.Width(histWidth),
		asciigraph.Caption(caption),
	)

	var sb strings.Builder
	sb.WriteString(graph)
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("%.0f km%s%.0f km\n", lo,
		strings.Repeat(" ", max(1, histWidth-16)), hi))
	return sb.String()
}

// RenderSummary formats the console summary block.
func RenderSummary(s montecarlo.Summary) string {
	var sb strings.Builder

	sb.WriteString(Title.Render("Range Statistics") + "\n")
	sb.WriteString(fmt.Sprintf("  %s %s\n",
		Label.Render("mean:"),
		Value.Render(fmt.Sprintf("%.0f km (±%.0f km std)", s.MeanKm, s.StdKm))))
	sb.WriteString(fmt.Sprintf("  %s %s\n",
		Label.Render("median:"),
		Value.Render(fmt.Sprintf("%.0f km", s.MedianKm))))
	sb.WriteString(fmt.Sprintf("  %s %s\n",
		Label.Render("90% confidence:"),
		Value.Render(fmt.Sprintf("%.0f - %.0f km", s.P5Km, s.P95Km))))

	sb.WriteString(Title.Render("Target Achievement") + "\n")
	sb.WriteString(fmt.Sprintf("  %s %s\n",
		Label.Render(fmt.Sprintf(">= %.0f km:", montecarlo.TargetRangeKm)),
		achievementStyle(s.PctTarget).Render(fmt.Sprintf("%.1f%% of cases", s.PctTarget))))
	sb.WriteString(fmt.Sprintf("  %s %s\n",
		Label.Render(fmt.Sprintf(">= %.0f km:", montecarlo.StretchRangeKm)),
		achievementStyle(s.PctStretch).Render(fmt.Sprintf("%.1f%% of cases", s.PctStretch))))

	if len(s.Correlations) > 0 {
		sb.WriteString(Title.Render("Parameter Correlations with Range") + "\n")
		for _, c := range s.Correlations {
			sb.WriteString(fmt.Sprintf("  %s %s\n",
				Label.Render(c.Field+":"),
				Value.Render(fmt.Sprintf("%+.3f", c.R))))
		}
	}

	return sb.String()
}

func achievementStyle(pct float64) interface{ Render(...string) string } {
	if pct >= 50 {
		return TargetMet
	}
	return TargetMissed
}