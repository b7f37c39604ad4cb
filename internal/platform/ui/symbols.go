// internal/platform/ui/symbols.go
package ui

import (
	"github.com/pterm/pterm"

	"subburst/internal/platform/httpclient"
)

// Status clasifica un hallazgo para elegir símbolo y color
type Status int

const (
	StatusPending Status = iota
	StatusSuccess
	StatusWarning
	StatusError
)

// String convierte el status a string
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusSuccess:
		return "success"
	case StatusWarning:
		return "warning"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Symbol retorna el símbolo Unicode para cada estado
func (s Status) Symbol() string {
	switch s {
	case StatusPending:
		return "•"
	case StatusSuccess:
		return "✓"
	case StatusWarning:
		return "⚠"
	case StatusError:
		return "✗"
	default:
		return "?"
	}
}

// Style retorna el estilo pterm de cada estado
func (s Status) Style() *pterm.Style {
	switch s {
	case StatusSuccess:
		return StyleSuccess
	case StatusWarning:
		return StyleWarning
	case StatusError:
		return StyleError
	default:
		return StyleSecondary
	}
}

// StatusForCode clasifica un código HTTP; 0 (sin probe) es pending.
func StatusForCode(code int) Status {
	switch {
	case code == 0:
		return StatusPending
	case httpclient.IsSuccess(code):
		return StatusSuccess
	case code < 400:
		return StatusWarning
	default:
		return StatusError
	}
}

// Icons
var (
	IconTarget  = "🎯"
	IconWorkers = "⚙️"
	IconTime    = "⏱"
	IconFound   = "📦"
	IconDNS     = "🌐"
)

// Separadores
var (
	SeparatorHeavy = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"
	SeparatorLight = "────────────────────────────────────────────"
)
