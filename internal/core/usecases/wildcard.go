// internal/core/usecases/wildcard.go
package usecases

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"subburst/internal/core/domain"
	"subburst/internal/core/ports"
	"subburst/internal/platform/errors"
)

const (
	// WildcardProbeLabel es una etiqueta que no debería existir en ningún dominio.
	WildcardProbeLabel = "thisdomainneverexist"

	randomLabelLength = 5
	alphanumeric      = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// WildcardError indica que el objetivo resuelve etiquetas arbitrarias.
type WildcardError struct {
	Label     string
	Addresses []string
}

func (e *WildcardError) Error() string {
	return fmt.Sprintf("%s resolves to [%s]", e.Label, strings.Join(e.Addresses, ", "))
}

// Unwrap permite errors.Is(err, errors.ErrWildcardDetected).
func (e *WildcardError) Unwrap() error {
	return errors.ErrWildcardDetected
}

// CheckWildcard consulta dos etiquetas sintéticas (una fija y una aleatoria) bajo el objetivo.
// Si alguna resuelve a direcciones retorna *WildcardError. Los fallos de consulta cuentan como no resuelto.
func CheckWildcard(ctx context.Context, resolver ports.Resolver, target *domain.Target) error {
	for _, label := range []string{WildcardProbeLabel, randomLabel(randomLabelLength)} {
		fqdn := target.FQDN(label)
		addrs, err := resolver.LookupAddrs(ctx, fqdn)
		if err != nil && ctx.Err() != nil {
			return errors.Wrap(errors.ErrInterrupted, "wildcard check")
		}
		if len(addrs) > 0 {
			return &WildcardError{Label: fqdn, Addresses: addrs}
		}
	}
	return nil
}

func randomLabel(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphanumeric[rand.Intn(len(alphanumeric))]
	}
	return string(b)
}
