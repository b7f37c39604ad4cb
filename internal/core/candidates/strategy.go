package candidates

import (
	"context"

	"subburst/internal/core/domain"
)

// Emit recibe cada candidato generado. Un error detiene la generación.
type Emit func(label string) error

// Strategy es una de las dos estrategias de generación: BruteForce o Dictionary.
// Se elige una sola vez al arrancar a partir de la configuración validada.
type Strategy interface {
	Mode() domain.GenerationMode
	Describe() string
	Generate(ctx context.Context, emit Emit) error
}

// Spec describe la estrategia pedida por configuración.
type Spec struct {
	// DictionaryEnabled selecciona el modo diccionario; DictionaryPath vacío = embebido.
	DictionaryEnabled bool
	DictionaryPath    string
	PlaceholderHyphen bool

	// MinLength/MaxLength se usan en modo fuerza bruta.
	MinLength int
	MaxLength int
}

// NewStrategy construye la estrategia. Los modos son excluyentes.
func NewStrategy(spec Spec) (Strategy, error) {
	hasLength := spec.MinLength > 0 || spec.MaxLength > 0
	switch {
	case spec.DictionaryEnabled && hasLength:
		return nil, domain.ErrModeConflict
	case spec.DictionaryEnabled:
		return NewDictionary(spec.DictionaryPath, DefaultPlaceholders(spec.PlaceholderHyphen)), nil
	case hasLength:
		return NewBruteForce(spec.MinLength, spec.MaxLength)
	default:
		return nil, domain.ErrModeMissing
	}
}
