// internal/platform/ui/terminal/progress.go
package terminal

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Counters son los contadores del pipeline que muestra la línea de estado.
type Counters struct {
	Generated int64
	Resolved  int64
	Hits      int64
}

// ProgressBar renderiza la línea de estado de la enumeración.
// Sin total conocido (diccionario) muestra solo contadores y velocidad.
type ProgressBar struct {
	mu        sync.Mutex
	title     string
	total     uint64
	width     int
	spinner   *Spinner
	startTime time.Time
	counters  Counters
	completed bool

	fillChar  string
	emptyChar string
}

// NewProgressBar crea una progress bar; total 0 = desconocido.
func NewProgressBar(title string, total uint64) *ProgressBar {
	return &ProgressBar{
		title:     title,
		total:     total,
		width:     30,
		spinner:   NewSpinner("ember"),
		startTime: time.Now(),
		fillChar:  "█",
		emptyChar: "░",
	}
}

// Update actualiza los contadores
func (pb *ProgressBar) Update(c Counters) {
	pb.mu.Lock()
	defer pb.mu.Unlock()
	pb.counters = c
}

// Complete marca la progress bar como completada
func (pb *ProgressBar) Complete() {
	pb.mu.Lock()
	defer pb.mu.Unlock()
	pb.completed = true
}

// Render genera la línea. Cada llamada avanza el spinner.
func (pb *ProgressBar) Render() string {
	pb.mu.Lock()
	defer pb.mu.Unlock()

	color := BrightRed
	symbol := pb.spinner.Next()
	if pb.completed {
		color = BrightGreen
		symbol = "✓"
	}

	elapsed := time.Since(pb.startTime)
	parts := []string{fmt.Sprintf("  %s %s", Colorize(symbol, color), Colorize(pb.title, color))}

	if pb.total > 0 {
		pct := Percent(pb.counters.Resolved, pb.total)
		filled := pb.width * pct / 100
		bar := strings.Repeat(pb.fillChar, filled) + strings.Repeat(pb.emptyChar, pb.width-filled)
		parts = append(parts, Colorize("[", Gray)+Colorize(bar, color)+Colorize("]", Gray),
			Colorize(fmt.Sprintf("%3d%%", pct), percentColor(pct)))
	}

	stats := fmt.Sprintf("%d resolved", pb.counters.Resolved)
	if pb.total == 0 {
		stats = fmt.Sprintf("%d/%d resolved", pb.counters.Resolved, pb.counters.Generated)
	}
	stats += fmt.Sprintf(" · %s found · %s/s",
		Colorize(fmt.Sprintf("%d", pb.counters.Hits), BrightYellow),
		formatRate(pb.counters.Resolved, elapsed))

	parts = append(parts, "|", stats, "|", Colorize(formatDuration(elapsed), Gray))
	return strings.Join(parts, " ")
}

// Percent calcula el porcentaje [0,100] de done sobre total.
func Percent(done int64, total uint64) int {
	if total == 0 || done <= 0 {
		return 0
	}
	if uint64(done) >= total {
		return 100
	}
	return int(uint64(done) * 100 / total)
}

func percentColor(pct int) string {
	switch {
	case pct >= 100:
		return BrightGreen
	case pct >= 50:
		return Yellow
	default:
		return BrightRed
	}
}

func formatRate(n int64, d time.Duration) string {
	if d < time.Second {
		return "-"
	}
	return fmt.Sprintf("%.0f", float64(n)/d.Seconds())
}

// formatDuration formatea una duración de forma legible
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dm%ds", minutes, seconds)
}
