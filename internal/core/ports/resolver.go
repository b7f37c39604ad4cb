// internal/core/ports/resolver.go
package ports

import "context"

// Resolver es el port para consultas DNS de un worker.
// Cada worker obtiene su propia instancia vía ResolverFactory.
type Resolver interface {
	// LookupAddrs retorna las direcciones A y AAAA del nombre (IPv4 primero).
	// Un nombre inexistente retorna lista vacía y un error que cumple errors.IsNoAnswer.
	LookupAddrs(ctx context.Context, fqdn string) ([]string, error)

	// LookupCNAME retorna los destinos CNAME del nombre, sin punto final.
	LookupCNAME(ctx context.Context, fqdn string) ([]string, error)
}

// ResolverFactory crea un Resolver con la configuración de nameservers ya aplicada.
type ResolverFactory func() (Resolver, error)
