package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/exhibitboard/pkg/board"
	"github.com/matzehuels/exhibitboard/pkg/exhibit"
	"github.com/matzehuels/exhibitboard/pkg/export"
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

	// StyleHighlight for emphasized values.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleLink for URLs.
	StyleLink = lipgloss.NewStyle().Foreground(colorBlue).Underline(true)

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

	styleApplied  = lipgloss.NewStyle().Foreground(colorGreen)
	styleRejected = lipgloss.NewStyle().Foreground(colorRed)
	styleHeader   = lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	styleCommand = lipgloss.NewStyle().Foreground(colorBlue)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

func printSuccess(format string, args ...any) {
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + fmt.Sprintf(format, args...))
}

func printError(format string, args ...any) {
	fmt.Println(styleIconError.Render(iconError) + " " + fmt.Sprintf(format, args...))
}

func printWarning(format string, args ...any) {
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func printInfo(format string, args ...any) {
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + fmt.Sprintf(format, args...))
}

// printDetail prints an indented, dimmed line.
func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
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

// printNextStep prints a suggested next command.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

// =============================================================================
// Board Output
// =============================================================================

// outcomeLine renders one replayed event, e.g. "✓ place table1" or
// "✗ move 3 PLACEMENT_REJECTED".
func outcomeLine(o board.Outcome) string {
	if o.Applied {
		return styleApplied.Render(iconSuccess) + " " + string(o.Type) + " " + StyleValue.Render(o.ItemID)
	}
	return styleRejected.Render(iconError) + " " + string(o.Type) + " " + StyleValue.Render(o.ItemID) + " " + StyleDim.Render(string(o.Reason))
}

// printReplay prints every outcome and a one line tally.
func printReplay(res board.ReplayResult) {
	for _, o := range res.Outcomes {
		fmt.Println("  " + outcomeLine(o))
	}
	parts := []string{
		styleApplied.Render(strconv.Itoa(res.Applied) + " applied"),
		styleRejected.Render(strconv.Itoa(res.Rejected) + " rejected"),
	}
	fmt.Println("  " + strings.Join(parts, StyleDim.Render(" · ")))
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
}

// paletteTable lists catalog exhibits.
func paletteTable(cat *exhibit.Catalog) string {
	t := newTable("ID", "Kind", "Layout", "Title")
	for _, e := range cat.All() {
		t.Row(e.ID, string(e.Kind), string(e.Layout.OrDefault()), e.DisplayTitle())
	}
	return t.Render()
}

// entriesTable lists placed exhibits in export order.
func entriesTable(entries []export.Entry) string {
	t := newTable("Page", "Where", "ID", "Kind", "Title")
	for _, e := range entries {
		where := fmt.Sprintf("row %d, col %d-%d", e.Position.Row+1, e.Position.Column+1, e.Position.End())
		if e.Region != "" {
			where = e.Region.Name()
		}
		t.Row(strconv.Itoa(e.Page+1), where, e.ID, string(e.Kind), e.Title)
	}
	return t.Render()
}
