// internal/adapters/output/text.go
package output

import (
	"fmt"
	"io"
	"strings"

	"subburst/internal/core/domain"
)

// TextWriter escribe una línea por resultado:
//
//	www.example.com - [93.184.216.34] - ["edge.example.net"] - 200 - "Example Domain"
//
// Cada línea va al destino en una sola llamada a Write, sin buffer intermedio:
// un fallo afecta solo a esa línea.
type TextWriter struct {
	w      io.Writer
	closer io.Closer
}

// NewTextWriter crea el writer. Si w implementa io.Closer se cierra en Close.
func NewTextWriter(w io.Writer) *TextWriter {
	tw := &TextWriter{w: w}
	if c, ok := w.(io.Closer); ok {
		tw.closer = c
	}
	return tw
}

// Write implementa ports.ResultWriter.
func (t *TextWriter) Write(res domain.ResolveResult) error {
	if _, err := io.WriteString(t.w, FormatLine(res)+"\n"); err != nil {
		return fmt.Errorf("write %s: %w", res.Domain, err)
	}
	return nil
}

// Close implementa ports.ResultWriter.
func (t *TextWriter) Close() error {
	if t.closer != nil {
		return t.closer.Close()
	}
	return nil
}

// FormatLine serializa un resultado; código 0 y título vacío cuando no hubo sondeo.
func FormatLine(res domain.ResolveResult) string {
	cnames := make([]string, len(res.CNAMEs))
	for i, c := range res.CNAMEs {
		cnames[i] = fmt.Sprintf("%q", c)
	}

	return fmt.Sprintf("%s - [%s] - [%s] - %d - %q",
		res.Domain,
		strings.Join(res.Addresses, ", "),
		strings.Join(cnames, ", "),
		res.Code(),
		res.PageTitle(),
	)
}
