// internal/platform/ui/raw_presenter.go
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"subburst/internal/core/ports"
)

// RawPresenter implementa el Presenter para modo quiet: una línea logfmt por evento,
// apta para pipes y ficheros.
type RawPresenter struct {
	out       io.Writer
	mu        sync.Mutex
	startTime time.Time
}

// NewRawPresenter crea un RawPresenter; out nil = stderr.
func NewRawPresenter(out io.Writer) *RawPresenter {
	if out == nil {
		out = os.Stderr
	}
	return &RawPresenter{
		out:       out,
		startTime: time.Now(),
	}
}

// field mantiene el orden de salida (un map lo barajaría)
type field struct {
	key   string
	value any
}

// log escribe: timestamp LEVEL message key=value key2=value2
func (r *RawPresenter) log(level, message string, fields ...field) {
	r.mu.Lock()
	defer r.mu.Unlock()

	parts := []string{
		time.Now().UTC().Format(time.RFC3339),
		fmt.Sprintf("%-5s", level),
		message,
	}
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s=%s", f.key, formatValue(f.value)))
	}
	fmt.Fprintln(r.out, strings.Join(parts, " "))
}

// formatValue formatea valores para logfmt (entrecomilla strings con espacios)
func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		if val == "" || strings.ContainsAny(val, " \"=") {
			return fmt.Sprintf("%q", val)
		}
		return val
	case []string:
		return formatValue(strings.Join(val, ","))
	case time.Duration:
		return val.Round(time.Millisecond).String()
	default:
		return fmt.Sprintf("%v", val)
	}
}

// Start inicia la presentación
func (r *RawPresenter) Start(info ScanInfo) {
	r.startTime = time.Now()
	r.log("INFO", "enumeration_started",
		field{"target", info.Target},
		field{"strategy", info.Strategy},
		field{"candidates", info.Total},
		field{"workers", info.Workers},
		field{"nameservers", info.Nameservers},
		field{"wildcard_check", info.Wildcard},
		field{"probe", info.Probe},
		field{"output", info.Output},
	)
}

// Notify registra hallazgos y resultados descartados
func (r *RawPresenter) Notify(e ports.Event) {
	if e.Result == nil {
		return
	}
	res := e.Result

	switch e.Type {
	case ports.EventResultFound:
		fields := []field{
			{"domain", res.Domain},
			{"addresses", res.Addresses},
			{"cnames", res.CNAMEs},
		}
		if code := res.Code(); code != 0 {
			fields = append(fields, field{"code", code})
		}
		if title := res.PageTitle(); title != "" {
			fields = append(fields, field{"title", title})
		}
		r.log("INFO", "found", fields...)
	case ports.EventResultDropped:
		r.log("WARN", "dropped", field{"domain", res.Domain}, field{"error", fmt.Sprint(e.Err)})
	}
}

// Info muestra un mensaje informativo
func (r *RawPresenter) Info(msg string) {
	r.log("INFO", msg)
}

// Warning muestra una advertencia
func (r *RawPresenter) Warning(msg string) {
	r.log("WARN", msg)
}

// Error muestra un error
func (r *RawPresenter) Error(msg string) {
	r.log("ERROR", msg)
}

// Finish registra el resumen final
func (r *RawPresenter) Finish(stats ScanStats) {
	message := "enumeration_completed"
	if stats.Interrupted {
		message = "enumeration_interrupted"
	}
	r.log("INFO", message,
		field{"duration", stats.Duration},
		field{"generated", stats.Generated},
		field{"resolved", stats.Resolved},
		field{"found", stats.Hits},
		field{"write_failures", stats.WriteFailures},
		field{"output", stats.Output},
	)
}

// Close limpia recursos
func (r *RawPresenter) Close() error {
	return nil
}
