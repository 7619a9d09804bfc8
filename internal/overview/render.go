package overview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/urlaubsplaner/urlaubsplaner/internal/vacation"
)

// Reference palette of the overview.
const (
	ColorApproved = "#3CB371"
	ColorPending  = "#FFA500"
	ColorRejected = "#DC143C"
	ColorHoliday  = "#4682B4"
	ColorWeekend  = "#5F5F5F"
	ColorToday    = "#5F87FF"
	colorLabelBg  = "#32323C"
	colorLabelFg  = "#DCDCDC"
)

// LegendEntry is one swatch of the overview legend.
type LegendEntry struct {
	Label string
	Color string
}

// Legend enumerates the four documented cell colors. Rejected requests do
// render on cells but have never been part of the legend; keep it that way.
func Legend() []LegendEntry {
	return []LegendEntry{
		{Label: "Genehmigter Urlaub", Color: ColorApproved},
		{Label: "Ausstehender Urlaub", Color: ColorPending},
		{Label: "Feiertag", Color: ColorHoliday},
		{Label: "Wochenende", Color: ColorWeekend},
	}
}

const labelWidth = 20

var (
	labelStyle = lipgloss.NewStyle().
			Background(lipgloss.Color(colorLabelBg)).
			Foreground(lipgloss.Color(colorLabelFg)).
			Width(labelWidth)
	headerStyle  = lipgloss.NewStyle().Bold(true)
	regularStyle = lipgloss.NewStyle().Faint(true)
	todayStyle   = lipgloss.NewStyle().Background(lipgloss.Color(ColorToday))

	statusStyles = map[vacation.Status]lipgloss.Style{
		vacation.StatusApproved: lipgloss.NewStyle().Background(lipgloss.Color(ColorApproved)),
		vacation.StatusPending:  lipgloss.NewStyle().Background(lipgloss.Color(ColorPending)),
		vacation.StatusRejected: lipgloss.NewStyle().Background(lipgloss.Color(ColorRejected)),
	}
	kindStyles = map[DayKind]lipgloss.Style{
		DayWeekend: lipgloss.NewStyle().Background(lipgloss.Color(ColorWeekend)),
		DayHoliday: lipgloss.NewStyle().Background(lipgloss.Color(ColorHoliday)),
	}
)

// Render draws the grid for a terminal: the sparse month ruler on top, one
// line per row, one character per day.
func Render(g *Grid) string {
	var sb strings.Builder

	sb.WriteString(headerStyle.Render(monthRuler(g)))
	sb.WriteString("\n")

	for _, row := range g.Rows {
		sb.WriteString(labelStyle.Render(truncate(row.Name, labelWidth)))
		for _, cell := range row.Cells {
			sb.WriteString(renderCell(cell))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// RenderLegend draws the color legend on one line.
func RenderLegend() string {
	parts := make([]string, 0, 4)
	for _, entry := range Legend() {
		swatch := lipgloss.NewStyle().
			Foreground(lipgloss.Color(entry.Color)).
			Render("■")
		parts = append(parts, swatch+" "+entry.Label)
	}
	return strings.Join(parts, "   ")
}

// monthRuler lays the non-blank header entries out over the day columns,
// so month names start exactly at the first of their month.
func monthRuler(g *Grid) string {
	ruler := []byte(strings.Repeat(" ", labelWidth+len(g.Headers)-1))
	for col := 1; col < len(g.Headers); col++ {
		label := g.Headers[col]
		if label == "" {
			continue
		}
		pos := labelWidth + col - 1
		for i := 0; i < len(label) && pos+i < len(ruler); i++ {
			ruler[pos+i] = label[i]
		}
	}
	return string(ruler)
}

// renderCell picks the fill with the documented precedence: vacation status
// first, then the day kind. The today marker only paints cells that carry
// no vacation color; on vacation cells it stays metadata.
func renderCell(c Cell) string {
	if style, ok := statusStyles[c.Status]; ok {
		return style.Render(" ")
	}
	if c.Today {
		return todayStyle.Render(" ")
	}
	if style, ok := kindStyles[c.Kind]; ok {
		return style.Render(" ")
	}
	return regularStyle.Render("·")
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}
