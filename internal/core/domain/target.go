// internal/core/domain/target.go
package domain

import (
	"fmt"

	"golang.org/x/net/publicsuffix"

	"subburst/internal/platform/validator"
)

// Target representa el dominio bajo enumeración.
type Target struct {
	// Root es el dominio al que se anteponen los candidatos
	Root string
}

// NewTarget crea un target normalizado.
func NewTarget(root string) *Target {
	return &Target{Root: validator.NormalizeDomain(root)}
}

// Validate verifica que el target sea un dominio con sufijo público conocido.
func (t *Target) Validate() error {
	if t.Root == "" {
		return ErrEmptyTarget
	}

	if !validator.IsDomain(t.Root) {
		return fmt.Errorf("%w: %s", ErrInvalidDomain, t.Root)
	}

	// "com" o "co.uk" no son enumerables: no hay eTLD+1
	if _, err := publicsuffix.EffectiveTLDPlusOne(t.Root); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidDomain, t.Root, err)
	}

	return nil
}

// FQDN construye el nombre completo de un candidato.
func (t *Target) FQDN(label string) string {
	return label + "." + t.Root
}

// String retorna una representación legible del target.
func (t *Target) String() string {
	return fmt.Sprintf("Target{root=%s}", t.Root)
}
