package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/gduarte/massing/pkg/errors"
	"github.com/gduarte/massing/pkg/massing"
	"github.com/gduarte/massing/pkg/program"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorBlue   = lipgloss.Color("75")  // Light blue - links
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleCached   = lipgloss.NewStyle().Foreground(colorGreen)
	styleComputed = lipgloss.NewStyle().Foreground(colorGray)

	styleDegraded = lipgloss.NewStyle().Foreground(colorYellow)

	tableHeaderStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

// categoryStyles colors table rows by room category, loosely matching the
// record colors used by geometry consumers.
var categoryStyles = map[program.Category]lipgloss.Style{
	program.CategoryPublic:  lipgloss.NewStyle().Foreground(colorBlue),
	program.CategoryPrivate: lipgloss.NewStyle().Foreground(colorRed),
	program.CategoryService: lipgloss.NewStyle().Foreground(colorYellow),
}

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
	iconCached  = "cached"
	iconFresh   = "fresh"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printError prints an error message.
func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconError.Render(iconError) + " " + msg)
}

// printWarning prints a warning message.
func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(msg))
}

// printInfo prints an info/status message.
func printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + msg)
}

// printDetail prints a detail line (indented).
func printDetail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println("  " + StyleDim.Render(msg))
}

// printFile prints a file output line.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// printKeyValue prints a labeled value.
func printKeyValue(key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	fmt.Println(keyStyle.Render(key) + " " + StyleValue.Render(value))
}

// printNewline prints an empty line.
func printNewline() {
	fmt.Println()
}

// =============================================================================
// Records Table
// =============================================================================

// printRecordsTable renders the solved rooms as a bordered table.
// Degraded and off-target rooms are marked with a warning icon in the last
// column.
func printRecordsTable(records []massing.Record) {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		note := ""
		switch {
		case rec.Degraded:
			note = iconWarning + " generic"
		case rec.OffTarget:
			note = iconWarning + " off target"
		case rec.Optimized:
			note = "optimized"
		}
		rows = append(rows, []string{
			rec.Name,
			string(rec.Type),
			fmt.Sprintf("%.0f × %.0f cm", rec.WidthCM, rec.DepthCM),
			fmt.Sprintf("%.2f m²", rec.AreaM2),
			fmt.Sprintf("%.2f m²", rec.TargetAreaM2),
			note,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Room", "Type", "Footprint", "Built", "Target", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return tableHeaderStyle
			}
			if row >= len(records) {
				return lipgloss.NewStyle()
			}
			rec := records[row]
			if (rec.Degraded || rec.OffTarget) && col == 5 {
				return styleDegraded
			}
			if col == 0 {
				if s, ok := categoryStyles[rec.Category]; ok {
					return s
				}
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	fmt.Println(t.Render())
}

// printBatchStats prints a one-line batch summary.
func printBatchStats(stats massing.BatchStats, cached bool) {
	parts := []string{
		fmt.Sprintf("%d rooms", stats.Rooms),
		fmt.Sprintf("%d/%d walls shared", stats.SharedWalls, stats.TotalWalls),
		fmt.Sprintf("%d unique lengths", stats.UniqueDims),
		fmt.Sprintf("%+.1f%% area", stats.VariancePct),
	}

	status := iconFresh
	statusStyle := styleComputed
	if cached {
		status = iconCached
		statusStyle = styleCached
	}
	parts = append(parts, statusStyle.Render(status))

	line := "  "
	for i, part := range parts {
		if i > 0 {
			line += StyleDim.Render(" · ")
		}
		line += StyleDim.Render(part)
	}
	fmt.Println(line)
}

// printWarnings prints run warnings, one line each.
func printWarnings(warnings []errors.Warning) {
	for _, w := range warnings {
		printWarning("%s", w.String())
	}
}
