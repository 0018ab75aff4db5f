package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// ANSI 256 colours for command output.
var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorRed   = lipgloss.Color("167")
	colorWhite = lipgloss.Color("255")
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")
)

// Exported styles, shared with the tick and layout tables.
var (
	// StyleTitle marks table headers and the "Inner area" heading.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	// StyleDim marks render stats and cache paths.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)
	// StyleValue marks written artifact paths and bounds.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	// An artifact served from the cache versus one rendered this run.
	styleCached   = lipgloss.NewStyle().Foreground(colorGreen)
	styleComputed = lipgloss.NewStyle().Foreground(colorGray)

	styleKey = lipgloss.NewStyle().Foreground(colorGray).Width(12)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconInfo    = "›"
	iconArrow   = "→"
	iconCached  = "cached"
	iconFresh   = "rendered"
)

func printStatus(icon lipgloss.Style, mark, format string, args ...any) {
	fmt.Println(icon.Render(mark) + " " + fmt.Sprintf(format, args...))
}

// printSuccess reports a finished cache operation.
func printSuccess(format string, args ...any) {
	printStatus(styleIconSuccess, iconSuccess, format, args...)
}

// printError reports a failed watch-mode rerender without stopping the
// watch.
func printError(format string, args ...any) {
	printStatus(styleIconError, iconError, format, args...)
}

func printInfo(format string, args ...any) {
	printStatus(styleIconInfo, iconInfo, format, args...)
}

// printDetail prints an indented, dimmed line under a status line.
func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints the path of a written chart artifact.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// printKeyValue prints one row of `cache stats`.
func printKeyValue(key, value string) {
	fmt.Println(styleKey.Render(key) + " " + StyleValue.Render(value))
}
