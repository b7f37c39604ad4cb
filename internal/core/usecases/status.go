// internal/core/usecases/status.go
package usecases

import (
	"fmt"
	"sort"
	"sync"

	"subburst/internal/core/domain"
	"subburst/internal/core/ports"
)

// StageID identifica una etapa del pipeline. Index distingue a los workers; es 0 para generator y sink.
type StageID struct {
	Kind  domain.StageKind
	Index int
}

// String retorna "worker-3", "generator-0", etc.
func (id StageID) String() string {
	return fmt.Sprintf("%s-%d", id.Kind, id.Index)
}

// StageStatus es la capacidad que recibe cada etapa para publicar su propio estado.
// Solo la etapa dueña escribe; el resto lee a través del Registry.
type StageStatus interface {
	MarkRunning()
	MarkStopped()
}

// StageSnapshot es el estado de una etapa en un instante.
type StageSnapshot struct {
	ID    StageID
	State domain.EngineState
}

// Registry guarda el estado de ciclo de vida de todas las etapas bajo un único lock.
// Ningún método mantiene el lock durante I/O ni al notificar.
type Registry struct {
	mu       sync.RWMutex
	states   map[StageID]domain.EngineState
	notifier ports.Notifier
}

// NewRegistry crea un registry vacío. notifier puede ser nil.
func NewRegistry(notifier ports.Notifier) *Registry {
	if notifier == nil {
		notifier = ports.NopNotifier{}
	}
	return &Registry{
		states:   make(map[StageID]domain.EngineState),
		notifier: notifier,
	}
}

// Register da de alta una etapa en Init y retorna su handle.
func (r *Registry) Register(kind domain.StageKind, index int) StageStatus {
	id := StageID{Kind: kind, Index: index}

	r.mu.Lock()
	r.states[id] = domain.StateInit
	r.mu.Unlock()

	return &stageHandle{registry: r, id: id}
}

// State retorna el estado de una etapa; ok=false si no está registrada.
func (r *Registry) State(id StageID) (domain.EngineState, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.states[id]
	return s, ok
}

// IsStopped reporta si la etapa terminó.
func (r *Registry) IsStopped(id StageID) bool {
	s, ok := r.State(id)
	return ok && s == domain.StateStopped
}

// AllStopped reporta si todas las etapas de un tipo terminaron. Sin etapas de ese tipo retorna true.
func (r *Registry) AllStopped(kind domain.StageKind) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for id, s := range r.states {
		if id.Kind == kind && s != domain.StateStopped {
			return false
		}
	}
	return true
}

// Count retorna cuántas etapas de un tipo están en el estado dado.
func (r *Registry) Count(kind domain.StageKind, state domain.EngineState) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for id, s := range r.states {
		if id.Kind == kind && s == state {
			n++
		}
	}
	return n
}

// Snapshot retorna una copia ordenada (generator, workers, sink).
func (r *Registry) Snapshot() []StageSnapshot {
	r.mu.RLock()
	out := make([]StageSnapshot, 0, len(r.states))
	for id, s := range r.states {
		out = append(out, StageSnapshot{ID: id, State: s})
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		ki, kj := kindOrder(out[i].ID.Kind), kindOrder(out[j].ID.Kind)
		if ki != kj {
			return ki < kj
		}
		return out[i].ID.Index < out[j].ID.Index
	})
	return out
}

func kindOrder(k domain.StageKind) int {
	switch k {
	case domain.StageGenerator:
		return 0
	case domain.StageWorker:
		return 1
	default:
		return 2
	}
}

// transition aplica el cambio si es válido. Las transiciones repetidas o hacia atrás se ignoran.
func (r *Registry) transition(id StageID, next domain.EngineState) {
	r.mu.Lock()
	cur := r.states[id]
	ok := cur.CanTransitionTo(next)
	if ok {
		r.states[id] = next
	}
	r.mu.Unlock()

	if !ok {
		return
	}

	evt := ports.Event{Type: ports.EventStageStarted, Stage: id.Kind, Worker: id.Index}
	if next == domain.StateStopped {
		evt.Type = ports.EventStageStopped
	}
	r.notifier.Notify(evt)
}

type stageHandle struct {
	registry *Registry
	id       StageID
}

func (h *stageHandle) MarkRunning() { h.registry.transition(h.id, domain.StateRunning) }
func (h *stageHandle) MarkStopped() { h.registry.transition(h.id, domain.StateStopped) }
