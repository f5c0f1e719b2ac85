package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Theme colors (Flexoki Dark)
var (
	ColorBorder    = lipgloss.Color("#282726")
	ColorTextDim   = lipgloss.Color("#575653")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorGreen     = lipgloss.Color("#879A39")
	ColorOrange    = lipgloss.Color("#DA702C")
	ColorRed       = lipgloss.Color("#D14D41")
	ColorGold      = lipgloss.Color("#D0A215")
)

// Styles, rebuilt by SetColorEnabled.
var (
	titleStyle  lipgloss.Style
	headerStyle lipgloss.Style
	valueStyle  lipgloss.Style
	mutedStyle  lipgloss.Style
	dimStyle    lipgloss.Style

	// IncomeStyle and ExpenseStyle color signed amounts in listings.
	IncomeStyle  lipgloss.Style
	ExpenseStyle lipgloss.Style
	// FundStyle colors fund balances.
	FundStyle lipgloss.Style
	// DoneStyle strikes through completed action titles.
	DoneStyle lipgloss.Style
	// WarnStyle highlights the undated backlog.
	WarnStyle lipgloss.Style
	// MutedText is exported for secondary labels.
	MutedText lipgloss.Style
)

var colorEnabled = true

func init() {
	SetColorEnabled(true)
}

// SetColorEnabled rebuilds the package styles. With color off every
// style renders plain text, so output stays clean for users who turned
// styling off in their config.
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
	if !enabled {
		plain := lipgloss.NewStyle()
		titleStyle = plain.Align(lipgloss.Center)
		headerStyle = plain
		valueStyle = plain
		mutedStyle = plain
		dimStyle = plain
		IncomeStyle = plain
		ExpenseStyle = plain
		FundStyle = plain
		DoneStyle = plain
		WarnStyle = plain
		MutedText = plain
		return
	}

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText).
		Align(lipgloss.Center)
	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorAccent)
	valueStyle = lipgloss.NewStyle().Foreground(ColorText)
	mutedStyle = lipgloss.NewStyle().Foreground(ColorTextMuted)
	dimStyle = lipgloss.NewStyle().Foreground(ColorTextDim)
	IncomeStyle = lipgloss.NewStyle().Foreground(ColorGreen)
	ExpenseStyle = lipgloss.NewStyle().Foreground(ColorRed)
	FundStyle = lipgloss.NewStyle().Foreground(ColorGold)
	DoneStyle = lipgloss.NewStyle().Foreground(ColorTextMuted).Strikethrough(true)
	WarnStyle = lipgloss.NewStyle().Foreground(ColorOrange)
	MutedText = mutedStyle
}

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Widths  []int // optional column widths, auto-calculated if nil
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	width := 55
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Width(width).
		Align(lipgloss.Center).
		Padding(0, 1)
	if colorEnabled {
		border = border.BorderForeground(ColorBorder)
	}

	return border.Render(titleStyle.Render(title))
}

// RenderTable renders a bordered table with headers and rows.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}

	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}

	widths := make([]int, numCols)
	if t.Widths != nil {
		copy(widths, t.Widths)
	} else {
		for i, h := range t.Headers {
			if len(h) > widths[i] {
				widths[i] = len(h)
			}
		}
		for _, row := range t.Rows {
			for i, cell := range row {
				if i < numCols && lipgloss.Width(cell) > widths[i] {
					widths[i] = lipgloss.Width(cell)
				}
			}
		}
	}

	var b strings.Builder

	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	// Top border
	b.WriteString(dimStyle.Render("╭"))
	for i, w := range widths {
		b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
		if i < numCols-1 {
			b.WriteString(dimStyle.Render("┬"))
		}
	}
	b.WriteString(dimStyle.Render("╮"))
	b.WriteString("\n")

	// Header row
	if len(t.Headers) > 0 {
		b.WriteString(dimStyle.Render("│"))
		for i, h := range t.Headers {
			w := widths[i]
			padded := fmt.Sprintf(" %-*s ", w, h)
			b.WriteString(headerStyle.Render(padded))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")

		b.WriteString(dimStyle.Render("├"))
		for i, w := range widths {
			b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("┼"))
			}
		}
		b.WriteString(dimStyle.Render("┤"))
		b.WriteString("\n")
	}

	// Data rows
	for _, row := range t.Rows {
		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			w := widths[i]
			cell := ""
			if i < len(row) {
				cell = row[i]
			}

			pad := w - lipgloss.Width(cell)
			if pad < 0 {
				pad = 0
			}
			// Right-align the last column (amounts), left-align the rest
			if i == numCols-1 {
				b.WriteString(" " + strings.Repeat(" ", pad))
				b.WriteString(valueStyle.Render(cell))
				b.WriteString(" ")
			} else {
				b.WriteString(" ")
				b.WriteString(valueStyle.Render(cell))
				b.WriteString(strings.Repeat(" ", pad) + " ")
			}
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
	}

	// Bottom border
	b.WriteString(dimStyle.Render("╰"))
	for i, w := range widths {
		b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
		if i < numCols-1 {
			b.WriteString(dimStyle.Render("┴"))
		}
	}
	b.WriteString(dimStyle.Render("╯"))
	b.WriteString("\n")

	return b.String()
}

// RenderProgress renders a static completion bar with a percentage,
// colored by how far along the day is.
func RenderProgress(done, total, width int) string {
	if total <= 0 {
		return ""
	}
	pct := float64(done) / float64(total)
	if pct > 1 {
		pct = 1
	}

	if !colorEnabled {
		filled := int(pct*float64(width) + 0.5)
		plain := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
		return fmt.Sprintf("%s %d/%d done", plain, done, total)
	}

	fill := string(ColorAccent)
	if pct >= 1 {
		fill = string(ColorGreen)
	}
	bar := progress.New(
		progress.WithSolidFill(fill),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(ColorTextDim)

	return fmt.Sprintf("%s %s", bar.ViewAs(pct),
		mutedStyle.Render(fmt.Sprintf("%d/%d done", done, total)))
}

// RenderSparkline generates a unicode block sparkline from a series of
// values.
func RenderSparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	if max == 0 {
		max = 1
	}

	var b strings.Builder
	for _, v := range values {
		idx := int(v / max * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		b.WriteRune(blocks[idx])
	}

	return b.String()
}
