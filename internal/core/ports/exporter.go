// internal/core/ports/exporter.go
package ports

import "subburst/internal/core/domain"

// ResultWriter es el port de persistencia de resultados.
// Solo lo usa el sink, así que las implementaciones no necesitan ser thread-safe.
type ResultWriter interface {
	// Write persiste un resultado (una línea en los formatos soportados).
	Write(res domain.ResolveResult) error

	// Close vacía buffers y cierra el destino.
	Close() error
}
