// internal/core/ports/prober.go
package ports

import "context"

// ProbeResult es lo que devuelve un sondeo HTTP exitoso.
type ProbeResult struct {
	StatusCode int
	Title      string // vacío si la página no tiene <title>
}

// Prober es el port para el sondeo HTTP de un nombre que resolvió.
type Prober interface {
	// Probe hace GET http://host/ y extrae código y título.
	// Cualquier fallo (conexión, timeout, cuerpo) retorna error y se descarta el sondeo.
	Probe(ctx context.Context, host string) (ProbeResult, error)
}

// ProberFactory crea un Prober por worker.
type ProberFactory func() (Prober, error)
