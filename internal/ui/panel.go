package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Panel draws a framed box around lines using the current theme. Widths are
// measured without ANSI sequences.
func Panel(w io.Writer, lines []string) {
	t := Current()
	maxw := 0
	for _, ln := range lines {
		if vw := lipgloss.Width(ln); vw > maxw {
			maxw = vw
		}
	}
	fmt.Fprintln(w, t.CornerTL+strings.Repeat(t.H, maxw+2)+t.CornerTR)
	for _, ln := range lines {
		fmt.Fprintln(w, t.V+" "+padRight(ln, maxw)+" "+t.V)
	}
	fmt.Fprintln(w, t.CornerBL+strings.Repeat(t.H, maxw+2)+t.CornerBR)
}

func padRight(s string, width int) string {
	if vw := lipgloss.Width(s); vw < width {
		return s + strings.Repeat(" ", width-vw)
	}
	return s
}

func padLeft(s string, width int) string {
	if vw := lipgloss.Width(s); vw < width {
		return strings.Repeat(" ", width-vw) + s
	}
	return s
}

// truncate shortens s to at most width cells, marking the cut with "...".
func truncate(s string, width int) string {
	r := []rune(s)
	if lipgloss.Width(s) <= width || width < 4 {
		return s
	}
	for lipgloss.Width(string(r)) > width-3 {
		r = r[:len(r)-1]
	}
	return string(r) + "..."
}
