// internal/core/domain/result.go
package domain

// ResolveResult es un hallazgo positivo: un nombre que resolvió a direcciones y/o CNAMEs.
// Es inmutable una vez creado; el worker lo entrega al sink por valor.
type ResolveResult struct {
	Domain    string   `json:"domain"`
	Title     *string  `json:"title,omitempty"`
	HTTPCode  *int     `json:"http_code,omitempty"`
	Addresses []string `json:"addresses"`
	CNAMEs    []string `json:"cnames"`
}

// NewResolveResult crea un resultado solo si hay al menos una dirección o un CNAME.
// Un miss retorna ok=false y no produce registro.
func NewResolveResult(fqdn string, addrs, cnames []string) (ResolveResult, bool) {
	if len(addrs) == 0 && len(cnames) == 0 {
		return ResolveResult{}, false
	}
	return ResolveResult{
		Domain:    fqdn,
		Addresses: append([]string{}, addrs...),
		CNAMEs:    append([]string{}, cnames...),
	}, true
}

// WithProbe retorna una copia con el código HTTP y el título del probe.
// Un título vacío se conserva como ausente.
func (r ResolveResult) WithProbe(code int, title string) ResolveResult {
	r.HTTPCode = &code
	if title != "" {
		r.Title = &title
	}
	return r
}

// Code retorna el código HTTP o 0 si no hubo probe exitoso.
func (r ResolveResult) Code() int {
	if r.HTTPCode == nil {
		return 0
	}
	return *r.HTTPCode
}

// PageTitle retorna el título o "" si no se obtuvo.
func (r ResolveResult) PageTitle() string {
	if r.Title == nil {
		return ""
	}
	return *r.Title
}
