// internal/platform/ui/helpers.go
package ui

import (
	"fmt"
	"strings"
	"time"

	"subburst/internal/core/domain"
)

// formatDuration formatea una duración de manera legible
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	} else if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	} else {
		minutes := int(d.Minutes())
		seconds := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm%ds", minutes, seconds)
	}
}

// boolToString convierte booleano a string visual
func boolToString(b bool) string {
	if b {
		return StyleSuccess.Sprint("ON")
	}
	return StyleSecondary.Sprint("OFF")
}

// FormatFound renderiza un hallazgo para la terminal.
func FormatFound(res domain.ResolveResult) string {
	status := StatusForCode(res.Code())

	var b strings.Builder
	b.WriteString(status.Style().Sprint(status.Symbol()))
	b.WriteString(" ")
	b.WriteString(StylePrimary.Sprint(res.Domain))

	if len(res.Addresses) > 0 {
		b.WriteString(" " + accentText(strings.Join(res.Addresses, ", ")))
	}
	if len(res.CNAMEs) > 0 {
		b.WriteString(" " + mutedText("→ "+strings.Join(res.CNAMEs, " → ")))
	}
	if code := res.Code(); code != 0 {
		b.WriteString(" " + status.Style().Sprintf("[%d]", code))
	}
	if title := res.PageTitle(); title != "" {
		b.WriteString(" " + emberText(fmt.Sprintf("%q", title)))
	}
	return b.String()
}
