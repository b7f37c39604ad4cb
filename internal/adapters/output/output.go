// internal/adapters/output/output.go
package output

import (
	"fmt"
	"io"
	"os"

	"subburst/internal/core/domain"
	"subburst/internal/core/ports"
)

// DefaultPath retorna la ruta de salida por defecto para un objetivo: "<target>.txt", "<target>.jsonl", ...
func DefaultPath(target string, format domain.OutputFormat) string {
	switch format {
	case domain.OutputJSONL:
		return target + ".jsonl"
	default:
		return target + ".txt"
	}
}

// Open crea (o trunca) el archivo de salida y retorna el writer del formato pedido.
func Open(path string, format domain.OutputFormat) (ports.ResultWriter, error) {
	if !format.IsValid() {
		return nil, fmt.Errorf("%w: unknown output format %q", domain.ErrInvalidConfig, format)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return NewWriter(f, format), nil
}

// NewWriter envuelve un destino ya abierto. Close cierra también el destino.
func NewWriter(w io.WriteCloser, format domain.OutputFormat) ports.ResultWriter {
	switch format {
	case domain.OutputJSONL:
		return NewJSONLWriter(w)
	case domain.OutputTable:
		return NewTableWriter(w)
	default:
		return NewTextWriter(w)
	}
}
