// internal/platform/ui/presenter.go
package ui

import (
	"time"

	"subburst/internal/core/ports"
	"subburst/internal/platform/ui/terminal"
)

// UIMode define el modo de visualización
type UIMode string

const (
	UIModeCompact UIMode = "compact" // línea de estado + hallazgos en vivo (default)
	UIModeQuiet   UIMode = "quiet"   // logfmt sin UI visual
)

// Presenter presenta el progreso de la enumeración. Recibe los eventos del
// pipeline como Notifier, por lo que Notify se llama desde varias goroutines.
type Presenter interface {
	ports.Notifier

	// Start muestra la configuración y arranca el progreso en vivo
	Start(info ScanInfo)

	// Info muestra un mensaje informativo
	Info(msg string)

	// Warning muestra una advertencia
	Warning(msg string)

	// Error muestra un error
	Error(msg string)

	// Finish detiene el progreso y muestra el resumen
	Finish(stats ScanStats)

	// Close limpia recursos del presenter
	Close() error
}

// StatsFunc entrega los contadores actuales del pipeline.
type StatsFunc func() terminal.Counters

// ScanInfo contiene información inicial de la enumeración
type ScanInfo struct {
	Target      string
	Strategy    string
	Total       uint64 // candidatos esperados; 0 = desconocido
	Workers     int
	Nameservers []string
	Wildcard    bool
	Probe       bool
	Output      string
	Format      string
	Progress    StatsFunc
}

// ScanStats contiene estadísticas finales
type ScanStats struct {
	Duration      time.Duration
	Generated     int64
	Resolved      int64
	Hits          int64
	WriteFailures int64
	Output        string
	Interrupted   bool
}

// New crea el presenter para el modo indicado.
func New(mode UIMode) Presenter {
	if mode == UIModeQuiet {
		return NewRawPresenter(nil)
	}
	return NewPTermPresenter(nil)
}
