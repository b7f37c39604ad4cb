// internal/platform/ui/terminal/spinner.go
package terminal

// SpinnerSequences define las secuencias de spinners
var SpinnerSequences = map[string][]string{
	"ember": {"◉", "◎", "○", "◎"}, // default
	"dots":  {"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
	"pulse": {"●", "◉", "○", "◉"},
}

// Spinner rota una secuencia de símbolos; lo avanza el renderer en cada tick.
// No es thread-safe: lo usa una sola goroutine.
type Spinner struct {
	sequence   []string
	currentIdx int
}

// NewSpinner crea un spinner con el tema indicado ("ember" si no existe).
func NewSpinner(theme string) *Spinner {
	sequence, exists := SpinnerSequences[theme]
	if !exists {
		sequence = SpinnerSequences["ember"]
	}
	return &Spinner{sequence: sequence}
}

// Next avanza y devuelve el símbolo actual.
func (s *Spinner) Next() string {
	sym := s.sequence[s.currentIdx]
	s.currentIdx = (s.currentIdx + 1) % len(s.sequence)
	return sym
}
