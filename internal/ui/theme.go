package ui

import "strings"

// Theme bundles palette + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Title, Muted, Accent, Success, Error, Total string
	CornerTL, CornerTR, CornerBL, CornerBR      string
	H, V                                        string
	Rule                                        string
}

var current = classic()

func classic() Theme {
	return Theme{
		Title: bold, Muted: fgGray, Accent: fgBlue,
		Success: fgGreen, Error: fgRed, Total: bold + fgYellow,
		CornerTL: "┌", CornerTR: "┐", CornerBL: "└", CornerBR: "┘",
		H: "─", V: "│", Rule: "─",
	}
}

// SetTheme selects classic (default), neon or mono. mono also turns color off.
func SetTheme(name string) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "neon":
		current = Theme{
			Title: "\033[95m", // bright magenta
			Muted: fgGray, Accent: "\033[96m",
			Success: fgGreen, Error: fgRed, Total: "\033[93m",
			CornerTL: "╭", CornerTR: "╮", CornerBL: "╰", CornerBR: "╯",
			H: "─", V: "│", Rule: "┄",
		}
	case "mono":
		disableColor = true
		current = Theme{
			CornerTL: "+", CornerTR: "+", CornerBL: "+", CornerBR: "+",
			H: "-", V: "|", Rule: "-",
		}
	default:
		current = classic()
	}
}

// Expose what renderers need
func Current() Theme { return current }
