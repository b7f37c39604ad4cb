// internal/platform/ui/pterm_presenter.go
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/pterm/pterm"

	"subburst/internal/core/ports"
	"subburst/internal/platform/ui/terminal"
)

const renderInterval = 150 * time.Millisecond

// PTermPresenter implementa Presenter con pterm para header y resumen, y una
// línea de estado en vivo sobre la que se imprimen los hallazgos.
type PTermPresenter struct {
	mu  sync.Mutex
	out io.Writer

	info     ScanInfo
	bar      *terminal.ProgressBar
	renderer *terminal.Renderer
	started  time.Time
}

// NewPTermPresenter crea el presenter; out nil = stdout.
func NewPTermPresenter(out io.Writer) *PTermPresenter {
	if out == nil {
		out = os.Stdout
	}
	return &PTermPresenter{out: out}
}

// Start muestra el header y la configuración, y arranca la línea de estado.
func (p *PTermPresenter) Start(info ScanInfo) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.info = info
	p.started = time.Now()

	pterm.Fprintln(p.out, StylePrimary.Sprint(Banner))
	pterm.Fprintln(p.out, "  "+mutedText(Tagline))
	pterm.Fprintln(p.out)

	box := pterm.DefaultBox.
		WithTitle("Enumeration").
		WithTitleTopCenter().
		WithRightPadding(4).
		WithLeftPadding(4).
		WithBoxStyle(StyleAccent)

	total := "unknown"
	if info.Total > 0 {
		total = fmt.Sprintf("%d", info.Total)
	}
	content := fmt.Sprintf("%s Target: %s\n", IconTarget, accentText(info.Target))
	content += fmt.Sprintf("   Strategy: %s (%s candidates)\n", StyleWarning.Sprint(info.Strategy), total)
	content += fmt.Sprintf("%s Workers: %d\n", IconWorkers, info.Workers)
	content += fmt.Sprintf("%s Nameservers: %s\n", IconDNS, strings.Join(info.Nameservers, ", "))
	content += fmt.Sprintf("   Wildcard check: %s\n", boolToString(info.Wildcard))
	content += fmt.Sprintf("   HTTP probe: %s\n", boolToString(info.Probe))
	content += fmt.Sprintf("%s Output: %s (%s)", IconFound, info.Output, info.Format)
	pterm.Fprintln(p.out, box.Sprint(content))

	pterm.Fprintln(p.out)
	pterm.Fprintln(p.out, StyleSecondary.Sprint(SeparatorHeavy))

	p.bar = terminal.NewProgressBar("enumerating", info.Total)
	progress := info.Progress
	p.renderer = terminal.NewRenderer(p.out, func() string {
		if progress != nil {
			p.bar.Update(progress())
		}
		return p.bar.Render()
	})
	p.renderer.Start(renderInterval)
}

// Notify imprime hallazgos y resultados descartados; el resto de eventos
// se refleja en la línea de estado vía StatsFunc.
func (p *PTermPresenter) Notify(e ports.Event) {
	switch e.Type {
	case ports.EventResultFound:
		if e.Result != nil {
			p.println(FormatFound(*e.Result))
		}
	case ports.EventResultDropped:
		if e.Result != nil {
			p.println(pterm.Warning.Sprintf("%s not written: %v", e.Result.Domain, e.Err))
		}
	}
}

// Info muestra un mensaje informativo
func (p *PTermPresenter) Info(msg string) {
	p.println(pterm.Info.Sprint(msg))
}

// Warning muestra una advertencia
func (p *PTermPresenter) Warning(msg string) {
	p.println(pterm.Warning.Sprint(msg))
}

// Error muestra un error
func (p *PTermPresenter) Error(msg string) {
	p.println(pterm.Error.Sprint(msg))
}

// Finish detiene la línea de estado y muestra el resumen.
func (p *PTermPresenter) Finish(stats ScanStats) {
	p.mu.Lock()
	renderer, bar := p.renderer, p.bar
	p.mu.Unlock()

	if renderer != nil {
		if !stats.Interrupted {
			bar.Complete()
		}
		renderer.Stop()
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	pterm.Fprintln(p.out)
	header := pterm.DefaultHeader.
		WithBackgroundStyle(pterm.NewStyle(pterm.BgGreen)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack))
	title := "Enumeration Completed"
	if stats.Interrupted {
		header = header.WithBackgroundStyle(pterm.NewStyle(pterm.BgYellow))
		title = "Enumeration Interrupted"
	}
	pterm.Fprintln(p.out, header.Sprint(title))
	pterm.Fprintln(p.out)

	data := pterm.TableData{
		{"Metric", "Value"},
		{IconTime + " Duration", formatDuration(stats.Duration)},
		{"Candidates", fmt.Sprintf("%d", stats.Generated)},
		{"Resolved", fmt.Sprintf("%d", stats.Resolved)},
		{IconFound + " Subdomains", StyleSuccess.Sprintf("%d", stats.Hits)},
	}
	if stats.WriteFailures > 0 {
		data = append(data, []string{"Write failures", StyleError.Sprintf("%d", stats.WriteFailures)})
	}
	data = append(data, []string{"Output", stats.Output})

	table, err := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithData(data).
		Srender()
	if err == nil {
		pterm.Fprintln(p.out, table)
	}
}

// Close detiene la línea de estado si sigue activa
func (p *PTermPresenter) Close() error {
	p.mu.Lock()
	renderer := p.renderer
	p.mu.Unlock()

	if renderer != nil {
		renderer.Stop()
	}
	return nil
}

func (p *PTermPresenter) println(line string) {
	p.mu.Lock()
	renderer := p.renderer
	p.mu.Unlock()

	if renderer != nil {
		renderer.Println(line)
		return
	}
	pterm.Fprintln(p.out, line)
}
