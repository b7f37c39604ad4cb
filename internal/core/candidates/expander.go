package candidates

import "strings"

type scanState int

const (
	inLiteral scanState = iota
	inPlaceholder
)

// Expand convierte una línea de diccionario en los candidatos que denota.
// Es una función pura: no guarda estado entre llamadas.
//
// Los puntos finales se eliminan ("foo." == "foo"). Cada "%TOKEN%" conocido
// multiplica los candidatos acumulados por su conjunto de caracteres; un token
// desconocido se copia literal.
func Expand(line string, set PlaceholderSet) []string {
	line = strings.TrimRight(line, ".")
	if line == "" {
		return nil
	}

	out := []string{""}
	for _, seg := range tokenize(line) {
		chars, ok := set.Lookup(seg)
		if !ok {
			for i := range out {
				out[i] += seg
			}
			continue
		}

		next := make([]string, 0, len(out)*len(chars))
		for _, prefix := range out {
			for _, c := range chars {
				next = append(next, prefix+string(c))
			}
		}
		out = next
	}
	return out
}

// tokenize separa la línea en segmentos literales y "%...%".
// Un "%" sin cierre deja el resto de la línea como literal.
func tokenize(line string) []string {
	var (
		segments []string
		buf      strings.Builder
		state    = inLiteral
	)

	for _, c := range line {
		if c != '%' {
			buf.WriteRune(c)
			continue
		}

		switch state {
		case inLiteral:
			if buf.Len() > 0 {
				segments = append(segments, buf.String())
				buf.Reset()
			}
			buf.WriteRune(c)
			state = inPlaceholder
		case inPlaceholder:
			buf.WriteRune(c)
			segments = append(segments, buf.String())
			buf.Reset()
			state = inLiteral
		}
	}
	if buf.Len() > 0 {
		segments = append(segments, buf.String())
	}

	return segments
}
