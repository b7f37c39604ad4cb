package candidates

import (
	"bufio"
	"context"
	"embed"
	"io"
	"os"
	"strings"

	"subburst/internal/core/domain"
	"subburst/internal/platform/cache"
	"subburst/internal/platform/errors"
)

//go:embed dicts/default.txt
var builtin embed.FS

const builtinPath = "dicts/default.txt"

// maxLineSize acota una línea de diccionario (bufio.Scanner usa 64KiB por defecto).
const maxLineSize = 1 << 20

// DefaultDedupeWindow etiquetas recientes recordadas para descartar repetidos.
const DefaultDedupeWindow = 1 << 20

// Dictionary expande cada línea de un diccionario con Expand.
// Path vacío usa el diccionario embebido. Las etiquetas repetidas (líneas duplicadas
// o expansiones que coinciden con otra línea) se emiten una sola vez dentro de DedupeWindow.
type Dictionary struct {
	Path         string
	Placeholders PlaceholderSet
	DedupeWindow int
}

// NewDictionary crea la estrategia; path vacío selecciona el diccionario por defecto.
func NewDictionary(path string, placeholders PlaceholderSet) *Dictionary {
	if placeholders == nil {
		placeholders = DefaultPlaceholders(false)
	}
	return &Dictionary{Path: path, Placeholders: placeholders, DedupeWindow: DefaultDedupeWindow}
}

// Mode implementa Strategy.
func (d *Dictionary) Mode() domain.GenerationMode {
	return domain.GenerationDictionary
}

// Describe implementa Strategy.
func (d *Dictionary) Describe() string {
	if d.Path == "" {
		return "dictionary builtin"
	}
	return "dictionary " + d.Path
}

// Builtin reporta si se usa el diccionario embebido.
func (d *Dictionary) Builtin() bool {
	return d.Path == ""
}

// Generate implementa Strategy. Un origen ilegible retorna ErrDictionaryUnavailable.
func (d *Dictionary) Generate(ctx context.Context, emit Emit) error {
	rc, err := d.open()
	if err != nil {
		return errors.Wrapf(errors.ErrDictionaryUnavailable, "open %s: %v", d.source(), err)
	}
	defer rc.Close()

	scanner := bufio.NewScanner(rc)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	seen := cache.NewLRU(d.DedupeWindow)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, ok := CleanLine(scanner.Text())
		if !ok {
			continue
		}
		for _, label := range Expand(line, d.Placeholders) {
			// DNS no distingue mayúsculas
			if !seen.Add(strings.ToLower(label)) {
				continue
			}
			if err := emit(label); err != nil {
				return err
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return errors.Wrapf(errors.ErrDictionaryUnavailable, "read %s: %v", d.source(), err)
	}
	return nil
}

func (d *Dictionary) open() (io.ReadCloser, error) {
	if d.Builtin() {
		return builtin.Open(builtinPath)
	}
	return os.Open(d.Path)
}

func (d *Dictionary) source() string {
	if d.Builtin() {
		return "builtin dictionary"
	}
	return d.Path
}
