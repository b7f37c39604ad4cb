// internal/platform/resilience/circuit_breaker.go
package resilience

import (
	"sync"
	"time"
)

// State representa el estado del circuit breaker.
type State int

const (
	StateClosed   State = iota // sano, se usa normalmente
	StateOpen                  // caído, se salta hasta que pase el cooldown
	StateHalfOpen              // a prueba tras el cooldown
)

// CircuitBreaker marca un upstream (un nameserver) como caído tras N fallos seguidos
// y lo vuelve a probar pasado el cooldown. No reintenta nada por sí mismo: solo
// responde a Allow para que el llamador elija otro upstream.
type CircuitBreaker struct {
	mu              sync.RWMutex
	state           State
	failureCount    int
	successCount    int
	lastFailureTime time.Time

	// Config
	failureThreshold int           // fallos consecutivos para abrir
	cooldown         time.Duration // espera antes de half-open
	halfOpenMax      int           // éxitos en half-open para cerrar
}

// NewCircuitBreaker crea un nuevo circuit breaker.
func NewCircuitBreaker(failureThreshold int, cooldown time.Duration, halfOpenMax int) *CircuitBreaker {
	if failureThreshold <= 0 {
		failureThreshold = 5
	}
	if cooldown <= 0 {
		cooldown = 30 * time.Second
	}
	if halfOpenMax <= 0 {
		halfOpenMax = 3
	}

	return &CircuitBreaker{
		state:            StateClosed,
		failureThreshold: failureThreshold,
		cooldown:         cooldown,
		halfOpenMax:      halfOpenMax,
	}
}

// Allow reporta si el upstream puede usarse ahora.
func (cb *CircuitBreaker) Allow() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateClosed:
		return true

	case StateOpen:
		if time.Since(cb.lastFailureTime) > cb.cooldown {
			cb.state = StateHalfOpen
			cb.successCount = 0
			cb.failureCount = 0
			return true
		}
		return false

	case StateHalfOpen:
		return cb.successCount < cb.halfOpenMax

	default:
		return false
	}
}

// RecordSuccess registra una respuesta del upstream (cualquier rcode cuenta).
func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateClosed:
		cb.failureCount = 0

	case StateHalfOpen:
		cb.successCount++
		if cb.successCount >= cb.halfOpenMax {
			cb.state = StateClosed
			cb.failureCount = 0
			cb.successCount = 0
		}
	}
}

// RecordFailure registra un timeout o error de conexión.
// Retorna true si esta llamada abrió el circuito.
func (cb *CircuitBreaker) RecordFailure() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.lastFailureTime = time.Now()
	cb.failureCount++

	switch cb.state {
	case StateClosed:
		if cb.failureCount >= cb.failureThreshold {
			cb.state = StateOpen
			return true
		}

	case StateHalfOpen:
		// un fallo en half-open reabre de inmediato
		cb.state = StateOpen
		cb.successCount = 0
		cb.failureCount = 0
		return true
	}
	return false
}

// State retorna el estado actual del circuit breaker.
func (cb *CircuitBreaker) State() State {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.state
}

// String retorna una representación legible del estado.
func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}
