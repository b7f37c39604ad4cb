// internal/platform/ui/colors.go
package ui

import "github.com/pterm/pterm"

// Paleta
var (
	EmberOrange = pterm.NewRGB(255, 107, 53)
	MoltenGold  = pterm.NewRGB(255, 182, 39)
	AshGray     = pterm.NewRGB(128, 128, 128)
	GhostCyan   = pterm.NewRGB(0, 206, 209)
)

// Estilos preconfigurados
var (
	// StylePrimary headers y nombres descubiertos
	StylePrimary = pterm.NewStyle(pterm.FgLightRed, pterm.Bold)

	StyleSuccess   = pterm.NewStyle(pterm.FgGreen)
	StyleWarning   = pterm.NewStyle(pterm.FgYellow)
	StyleError     = pterm.NewStyle(pterm.FgRed)
	StyleSecondary = pterm.NewStyle(pterm.FgGray)
	StyleAccent    = pterm.NewStyle(pterm.FgCyan)
)

// RGB para textos que pterm soporta en true color
func emberText(s string) string  { return EmberOrange.Sprint(s) }
func accentText(s string) string { return GhostCyan.Sprint(s) }
func mutedText(s string) string  { return AshGray.Sprint(s) }
