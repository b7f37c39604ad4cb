// internal/core/domain/enums.go
package domain

// GenerationMode define la estrategia de generación de candidatos.
type GenerationMode string

const (
	// GenerationBruteForce enumera todas las etiquetas posibles en un rango de longitudes
	GenerationBruteForce GenerationMode = "bruteforce"

	// GenerationDictionary expande las líneas de un diccionario (con placeholders)
	GenerationDictionary GenerationMode = "dictionary"
)

// IsValid verifica si el modo de generación es válido.
func (m GenerationMode) IsValid() bool {
	switch m {
	case GenerationBruteForce, GenerationDictionary:
		return true
	default:
		return false
	}
}

// String retorna la representación string del modo.
func (m GenerationMode) String() string {
	return string(m)
}

// StageKind clasifica las etapas del pipeline.
type StageKind string

const (
	StageGenerator StageKind = "generator"
	StageWorker    StageKind = "worker"
	StageSink      StageKind = "sink"
)

// String retorna la representación string del tipo de etapa.
func (k StageKind) String() string {
	return string(k)
}

// OutputFormat define el formato de persistencia de resultados.
type OutputFormat string

const (
	// OutputText una línea "domain - addrs - cnames - code - title" por resultado
	OutputText OutputFormat = "text"

	// OutputJSONL un objeto JSON por línea
	OutputJSONL OutputFormat = "jsonl"

	// OutputTable columnas alineadas, escritas al terminar
	OutputTable OutputFormat = "table"
)

// IsValid verifica si el formato es soportado.
func (f OutputFormat) IsValid() bool {
	return f == OutputText || f == OutputJSONL || f == OutputTable
}
