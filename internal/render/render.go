// Package render draws the typing test to a terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/termitype/termitype/internal/model"
	"github.com/termitype/termitype/internal/stats"
)

// DefaultWidth is the wrap width used when none is configured.
const DefaultWidth = 80

const clearScreen = "\033[2J\033[H"

// StyleMap maps a character category to its presentation style. It is
// passed into the renderer so styling stays a pure lookup.
type StyleMap map[stats.Category]lipgloss.Style

// DefaultStyles returns the standard category palette.
func DefaultStyles() StyleMap {
	return StyleMap{
		stats.Correct:   lipgloss.NewStyle().Foreground(lipgloss.Color("86")),
		stats.Incorrect: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		stats.Cursor:    lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		stats.Pending:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

// Terminal renders the test screens with a full clear-and-redraw per call.
type Terminal struct {
	w      io.Writer
	width  int
	styles StyleMap
}

// NewTerminal constructs a renderer writing to w, wrapping the target at
// the given display width.
func NewTerminal(w io.Writer, width int, styles StyleMap) *Terminal {
	if width <= 0 {
		width = DefaultWidth
	}
	return &Terminal{w: w, width: width, styles: styles}
}

// RenderIntro draws the waiting-to-start screen.
func (t *Terminal) RenderIntro() {
	t.printf("%s\n", titleStyle.Render("=== Termitype - Typing Speed Test ==="))
	t.printf("Press any key to start...\n\n")
}

// RenderLive redraws the full screen: the wrapped target with per-character
// categories applied, then a live stats footer.
func (t *Terminal) RenderLive(target, typed []rune, live model.LiveStats) {
	t.printf("%s", clearScreen)

	idx := 0
	for _, line := range sliceLines(target, t.width) {
		var b strings.Builder
		for _, r := range line {
			category := stats.Classify(target, typed, idx)
			b.WriteString(t.styles[category].Render(string(r)))
			idx++
		}
		t.printf("%s\n", b.String())
	}

	t.printf("\n%s %.1f | %s %.1f%% | %s %.1fs\n",
		labelStyle.Render("WPM:"), live.WPM,
		labelStyle.Render("Accuracy:"), live.Accuracy,
		labelStyle.Render("Time:"), live.ElapsedSeconds)
}

// RenderFinal draws the results screen: summary numbers, the typed input
// overlaid against the target, and the target itself.
func (t *Terminal) RenderFinal(target, typed []rune, final model.LiveStats) {
	t.printf("%s", clearScreen)
	t.printf("%s\n\n", titleStyle.Render("=== Results ==="))

	t.printf("%s %.1f\n", labelStyle.Render("Speed (WPM):"), final.WPM)
	t.printf("%s %.1f%%\n", labelStyle.Render("Accuracy:"), final.Accuracy)
	t.printf("%s %d\n", labelStyle.Render("Errors:"), final.ErrorCount)
	t.printf("%s %.2f seconds\n", labelStyle.Render("Time:"), final.ElapsedSeconds)
	t.printf("%s %d/%d\n\n", labelStyle.Render("Characters:"), final.TypedCount, len(target))

	t.printf("%s\n", labelStyle.Render("Your input:"))
	overlay := typed
	if len(overlay) > len(target) {
		overlay = overlay[:len(target)]
	}
	var b strings.Builder
	for i, r := range overlay {
		if r == target[i] {
			b.WriteString(t.styles[stats.Correct].Render(string(r)))
		} else {
			b.WriteString(t.styles[stats.Incorrect].Render(string(r)))
		}
	}
	t.printf("%s\n\n", b.String())

	t.printf("%s\n%s\n", labelStyle.Render("Correct text:"), string(target))
}

// sliceLines splits the target into fixed-width lines by display columns.
// A break may fall inside a word: the live overlay relies on slicing that
// keeps on-screen positions aligned with character indices.
func sliceLines(target []rune, width int) [][]rune {
	if len(target) == 0 {
		return nil
	}
	if width <= 0 {
		return [][]rune{target}
	}
	var lines [][]rune
	line := make([]rune, 0, width)
	cols := 0
	for _, r := range target {
		w := runewidth.RuneWidth(r)
		if cols+w > width && len(line) > 0 {
			lines = append(lines, line)
			line = make([]rune, 0, width)
			cols = 0
		}
		line = append(line, r)
		cols += w
	}
	if len(line) > 0 {
		lines = append(lines, line)
	}
	return lines
}

func (t *Terminal) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(t.w, format, args...); err != nil {
		// Best-effort terminal output.
		_ = err
	}
}
