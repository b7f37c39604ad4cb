// internal/core/ports/notifier.go
package ports

import "subburst/internal/core/domain"

// Notifier recibe los eventos de progreso del pipeline (UI, logs).
// Notify se llama desde varias goroutines y no debe bloquear.
type Notifier interface {
	Notify(event Event)
}

// EventType define los tipos de eventos del pipeline.
type EventType string

const (
	// EventStageStarted una etapa pasó a Running
	EventStageStarted EventType = "stage.started"

	// EventStageStopped una etapa pasó a Stopped
	EventStageStopped EventType = "stage.stopped"

	// EventCandidateResolved un worker terminó un candidato (con o sin resultado)
	EventCandidateResolved EventType = "candidate.resolved"

	// EventResultFound un resultado llegó al sink y se persistió
	EventResultFound EventType = "result.found"

	// EventResultDropped un resultado no pudo persistirse
	EventResultDropped EventType = "result.dropped"
)

// Event representa un evento del pipeline.
type Event struct {
	Type   EventType
	Stage  domain.StageKind
	Worker int // solo para etapas worker
	Result *domain.ResolveResult
	Err    error
}

// NotifierFunc adapta una función a Notifier.
type NotifierFunc func(Event)

// Notify implementa Notifier.
func (f NotifierFunc) Notify(e Event) { f(e) }

// NopNotifier descarta todos los eventos.
type NopNotifier struct{}

// Notify implementa Notifier.
func (NopNotifier) Notify(Event) {}
