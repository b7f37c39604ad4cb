// internal/adapters/output/table.go
package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"subburst/internal/core/domain"
)

// TableWriter alinea los resultados en columnas. tabwriter necesita ver todas las filas
// para calcular anchos, así que la tabla se vuelca completa en Close.
type TableWriter struct {
	w      *tabwriter.Writer
	closer io.Closer
	rows   int
}

// NewTableWriter crea el writer. Si w implementa io.Closer se cierra en Close.
func NewTableWriter(w io.Writer) *TableWriter {
	tw := &TableWriter{w: tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)}
	if c, ok := w.(io.Closer); ok {
		tw.closer = c
	}
	fmt.Fprintln(tw.w, "DOMAIN\tADDRESSES\tCNAMES\tCODE\tTITLE")
	fmt.Fprintln(tw.w, "------\t---------\t------\t----\t-----")
	return tw
}

// Write implementa ports.ResultWriter.
func (t *TableWriter) Write(res domain.ResolveResult) error {
	code := "-"
	if res.HTTPCode != nil {
		code = strconv.Itoa(*res.HTTPCode)
	}

	_, err := fmt.Fprintf(t.w, "%s\t%s\t%s\t%s\t%s\n",
		res.Domain,
		orDash(strings.Join(res.Addresses, ",")),
		orDash(strings.Join(res.CNAMEs, ",")),
		code,
		orDash(res.PageTitle()),
	)
	if err != nil {
		return fmt.Errorf("write %s: %w", res.Domain, err)
	}
	t.rows++
	return nil
}

// Close implementa ports.ResultWriter.
func (t *TableWriter) Close() error {
	if t.rows == 0 {
		fmt.Fprintln(t.w, "No subdomains discovered.")
	}
	err := t.w.Flush()
	if err != nil {
		err = fmt.Errorf("failed to flush table: %w", err)
	}
	if t.closer != nil {
		if cerr := t.closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
