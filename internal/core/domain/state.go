// internal/core/domain/state.go
package domain

// EngineState es el ciclo de vida de una etapa: Init -> Running -> Stopped.
type EngineState int

const (
	StateInit EngineState = iota
	StateRunning
	StateStopped
)

// String retorna la representación string del estado.
func (s EngineState) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// CanTransitionTo reporta si el cambio de estado respeta el orden Init -> Running -> Stopped.
// Init -> Stopped se permite para etapas que terminan sin haber recibido trabajo.
func (s EngineState) CanTransitionTo(next EngineState) bool {
	switch s {
	case StateInit:
		return next == StateRunning || next == StateStopped
	case StateRunning:
		return next == StateStopped
	default:
		return false
	}
}
