// internal/platform/ui/terminal/renderer.go
package terminal

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Renderer mantiene una línea de estado al pie de la salida y permite imprimir
// líneas normales por encima sin que se mezclen.
type Renderer struct {
	out     io.Writer
	line    func() string
	mu      sync.Mutex
	ticker  *time.Ticker
	stopCh  chan struct{}
	done    chan struct{}
	running bool
	drawn   bool
}

// NewRenderer crea un renderer; line se evalúa en cada redibujado.
func NewRenderer(out io.Writer, line func() string) *Renderer {
	return &Renderer{
		out:  out,
		line: line,
	}
}

// Start inicia el loop de renderizado
func (r *Renderer) Start(interval time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running {
		return
	}

	r.ticker = time.NewTicker(interval)
	r.stopCh = make(chan struct{})
	r.done = make(chan struct{})
	r.running = true

	fmt.Fprint(r.out, CursorHide)
	r.renderLocked()

	go r.renderLoop(r.ticker, r.stopCh, r.done)
}

// Println imprime s por encima de la línea de estado.
func (r *Renderer) Println(s string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.clearLocked()
	fmt.Fprintln(r.out, s)
	if r.running {
		r.renderLocked()
	}
}

// Stop detiene el loop, deja la última línea de estado y muestra el cursor.
func (r *Renderer) Stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	r.running = false
	r.ticker.Stop()
	close(r.stopCh)
	done := r.done
	r.mu.Unlock()

	<-done

	r.mu.Lock()
	defer r.mu.Unlock()
	r.renderLocked()
	fmt.Fprint(r.out, "\n"+CursorShow)
	r.drawn = false
}

func (r *Renderer) renderLoop(ticker *time.Ticker, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	for {
		select {
		case <-ticker.C:
			r.mu.Lock()
			if r.running {
				r.renderLocked()
			}
			r.mu.Unlock()
		case <-stop:
			return
		}
	}
}

func (r *Renderer) renderLocked() {
	r.clearLocked()
	fmt.Fprint(r.out, r.line())
	r.drawn = true
}

func (r *Renderer) clearLocked() {
	if r.drawn {
		fmt.Fprint(r.out, "\r"+ClearLine)
		r.drawn = false
	}
}
