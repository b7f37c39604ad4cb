// Package candidates genera las etiquetas que el pipeline prueba bajo el dominio objetivo.
package candidates

import "strings"

const (
	letters = "abcdefghijklmnopqrstuvwxyz"
	digits  = "0123456789"

	// CharacterPool es el alfabeto de fuerza bruta. El guion va al final:
	// así todas las etiquetas que empiezan por guion quedan agrupadas al final de cada longitud.
	CharacterPool = letters + digits + "-"
)

// Placeholder tokens reconocidos en las líneas de diccionario.
const (
	TokenNumber      = "%NUMBER%"
	TokenAlpha       = "%ALPHA%"
	TokenAlphaNumber = "%ALPHANUMBER%"
)

// PlaceholderSet asocia cada token a su conjunto de caracteres (en orden de expansión).
type PlaceholderSet map[string]string

// DefaultPlaceholders retorna las tres clases. Con withHyphen cada clase termina en "-".
func DefaultPlaceholders(withHyphen bool) PlaceholderSet {
	set := PlaceholderSet{
		TokenNumber:      digits,
		TokenAlpha:       letters,
		TokenAlphaNumber: digits + letters,
	}
	if withHyphen {
		for token, chars := range set {
			set[token] = chars + "-"
		}
	}
	return set
}

// Lookup retorna los caracteres de un token o ok=false si no es un placeholder conocido.
func (s PlaceholderSet) Lookup(token string) (string, bool) {
	chars, ok := s[token]
	return chars, ok && chars != ""
}

// CleanLine recorta la línea y descarta vacías y comentarios (#).
func CleanLine(raw string) (string, bool) {
	line := strings.TrimSpace(raw)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", false
	}
	return line, true
}
