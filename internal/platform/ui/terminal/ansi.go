// internal/platform/ui/terminal/ansi.go
package terminal

import (
	"strings"
)

// ANSI Escape Codes
const (
	Reset = "\033[0m"

	// Cursor Control
	CursorHide = "\033[?25l"
	CursorShow = "\033[?25h"
	ClearLine  = "\033[2K"

	Gray         = "\033[90m"
	Yellow       = "\033[33m"
	BrightRed    = "\033[91m"
	BrightGreen  = "\033[92m"
	BrightYellow = "\033[93m"
)

// Colorize aplica un color a un texto
func Colorize(text, color string) string {
	return color + text + Reset
}

// StripANSI elimina los códigos de color y cursor de un string
func StripANSI(s string) string {
	inEscape := false
	var result strings.Builder

	for i := 0; i < len(s); i++ {
		if s[i] == '\033' {
			inEscape = true
			continue
		}

		if inEscape {
			// fin de secuencia CSI: cualquier letra
			if (s[i] >= 'a' && s[i] <= 'z') || (s[i] >= 'A' && s[i] <= 'Z') {
				inEscape = false
			}
			continue
		}

		result.WriteByte(s[i])
	}

	return result.String()
}

// VisualLength calcula el largo visual de un string (sin ANSI codes)
func VisualLength(s string) int {
	return len([]rune(StripANSI(s)))
}
