// internal/adapters/output/jsonl.go
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"subburst/internal/core/domain"
)

// JSONLWriter escribe un objeto JSON por línea (JSON Lines).
// Cada objeto se codifica en un buffer propio y se entrega con un único Write.
type JSONLWriter struct {
	w      io.Writer
	closer io.Closer
}

// NewJSONLWriter crea el writer. Si w implementa io.Closer se cierra en Close.
func NewJSONLWriter(w io.Writer) *JSONLWriter {
	jw := &JSONLWriter{w: w}
	if c, ok := w.(io.Closer); ok {
		jw.closer = c
	}
	return jw
}

// Write implementa ports.ResultWriter.
func (j *JSONLWriter) Write(res domain.ResolveResult) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("encode %s: %w", res.Domain, err)
	}
	if _, err := j.w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write %s: %w", res.Domain, err)
	}
	return nil
}

// Close implementa ports.ResultWriter.
func (j *JSONLWriter) Close() error {
	if j.closer != nil {
		return j.closer.Close()
	}
	return nil
}
