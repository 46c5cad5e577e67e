package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/isleprint/internal/greenops"
)

// Share is one labelled slice of a total.
type Share struct {
	Label string
	Pct   float64
}

//nolint:gochecknoglobals // palette cycled by ShareBars
var barPalette = []lipgloss.Color{"42", "39", "214", "170", "203", "81", "227", "111"}

// ShareBars renders one proportional bar per share. Bars are scaled so 100%
// fills width cells; any non-zero share gets at least one cell.
func ShareBars(shares []Share, width int, styled bool) string {
	if width <= 0 {
		width = defaultBarWidth
	}
	labelWidth := 0
	for _, s := range shares {
		labelWidth = max(labelWidth, lipgloss.Width(s.Label))
	}

	var b strings.Builder
	for i, s := range shares {
		cells := int(math.Round(s.Pct / 100 * float64(width)))
		if s.Pct > 0 && cells == 0 {
			cells = 1
		}
		cells = min(max(cells, 0), width)

		bar := strings.Repeat("█", cells)
		if styled {
			bar = lipgloss.NewStyle().Foreground(barPalette[i%len(barPalette)]).Render(bar)
		}
		pad := strings.Repeat(" ", labelWidth-lipgloss.Width(s.Label))
		fmt.Fprintf(&b, "%s%s  %s %s\n", s.Label, pad, bar, greenops.FormatPercent(s.Pct))
	}
	return b.String()
}
