// Package explorer - Rendering
package explorer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"steelcost/core/compare"
)

const gaugeWidth = 24

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	gaugeOnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	headerStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder

	title := "steelcost explorer"
	if m.preset != "" {
		title += "  [" + string(m.preset) + "]"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	for l := lever(0); l < leverCount; l++ {
		b.WriteString(m.renderLever(l))
		b.WriteString("\n")
	}

	frame := m.currentFrame()
	b.WriteString("\n")
	b.WriteString(headerStyle.Render(fmt.Sprintf("Year %d", frame.Year)))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  (%d of %d)", m.yearIdx+1, len(m.frames))))
	b.WriteString("\n\n")
	b.WriteString(m.renderFrameTable())

	b.WriteString("\n")
	b.WriteString(m.renderSummary())

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errStyle.Render(m.err.Error()))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("↑/↓ select  ←/→ adjust  [/] year  p preset  r regenerate  q quit"))
	b.WriteString("\n")
	return b.String()
}

// renderLever draws one parameter row as a gauge
func (m Model) renderLever(l lever) string {
	spec := leverSpecs[l]
	value := m.leverValue(l)

	filled := 0
	if spec.max.IsPositive() {
		ratio, _ := value.Div(spec.max).Float64()
		filled = int(ratio*gaugeWidth + 0.5)
		if filled > gaugeWidth {
			filled = gaugeWidth
		}
	}
	gauge := gaugeOnStyle.Render(strings.Repeat("█", filled)) + dimStyle.Render(strings.Repeat("░", gaugeWidth-filled))

	line := fmt.Sprintf("%-13s %s %8s %s", spec.label, gauge, value.StringFixed(0), spec.unit)
	if l == m.selected {
		return selectedStyle.Render("▸ " + line)
	}
	return "  " + line
}

// renderFrameTable draws the current frame's derived rows
func (m Model) renderFrameTable() string {
	var b strings.Builder
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %-8s %10s %12s %12s %10s %8s", "REGION", "COST", "DELIVERED", "CARBON-ADJ", "CO2 kg/t", "VOL Mt")))
	b.WriteString("\n")
	for _, row := range m.currentFrame().Rows {
		marker := lipgloss.NewStyle().Foreground(lipgloss.Color(termColor(row.Region.Info().Color))).Render("●")
		b.WriteString(fmt.Sprintf("%s %-8s %10s %12s %12s %10s %8.1f\n",
			marker,
			row.Region,
			"$"+row.Cost.StringFixed(0),
			"$"+row.DeliveredCost.StringFixed(2),
			"$"+row.CarbonAdjustedCost.StringFixed(2),
			row.CO2.StringFixed(0),
			row.Volume/1e6))
	}
	return b.String()
}

// renderSummary draws the US vs China delta block; missing rows render
// as N/A
func (m Model) renderSummary() string {
	s := m.summary()

	delivered, okD := s.DeliveredDelta()
	co2, okC := s.CO2Delta()
	adjusted, okA := s.CarbonAdjustedDelta()

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%s vs %s", s.BaseRegion, s.AgainstRegion)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  delivered cost   %s\n", compare.SignedCurrency(delivered, okD)))
	b.WriteString(fmt.Sprintf("  carbon intensity %s\n", compare.SignedMass(co2, okC)))
	b.WriteString(fmt.Sprintf("  carbon-adjusted  %s\n", compare.SignedCurrency(adjusted, okA)))
	return b.String()
}

// termColor maps the chart hex colors onto terminal-friendly ones
func termColor(hex string) string {
	switch hex {
	case "#1f77b4":
		return "33"
	case "#2ca02c":
		return "40"
	case "#d62728":
		return "160"
	case "#ff7f0e":
		return "208"
	case "#9467bd":
		return "99"
	default:
		return "252"
	}
}
