// internal/platform/validator/validator.go
package validator

import (
	"net"
	"regexp"
	"strconv"
	"strings"
)

var domainRegex = regexp.MustCompile(`^([a-zA-Z0-9]([a-zA-Z0-9\-]{0,61}[a-zA-Z0-9])?\.)*[a-zA-Z0-9]([a-zA-Z0-9\-]{0,61}[a-zA-Z0-9])?$`)

// Domain validators

// IsDomain verifica si un string es un dominio válido (sintaxis LDH, sin IPs).
func IsDomain(domain string) bool {
	if len(domain) == 0 || len(domain) > 253 {
		return false
	}

	if !domainRegex.MatchString(domain) {
		return false
	}

	// Verificar que no sea una IP
	if net.ParseIP(domain) != nil {
		return false
	}

	return true
}

// NormalizeDomain normaliza un dominio a su forma canónica (minúsculas, sin punto final).
func NormalizeDomain(domain string) string {
	domain = strings.ToLower(strings.TrimSpace(domain))
	return strings.TrimSuffix(domain, ".")
}

// Network validators

// IsIP verifica si un string es una dirección IP válida (v4 o v6).
func IsIP(ip string) bool {
	return net.ParseIP(ip) != nil
}

// IsPort valida que un puerto esté en el rango válido [1-65535].
func IsPort(portStr string) bool {
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return false
	}
	return port >= 1 && port <= 65535
}

// NormalizeIP normaliza una IP a su forma canónica.
// Si la IP es inválida, retorna string vacío.
func NormalizeIP(ip string) string {
	parsed := net.ParseIP(strings.TrimSpace(ip))
	if parsed == nil {
		return ""
	}
	return parsed.String()
}

// NormalizeNameserver convierte "ip" o "ip:port" ("[v6]:port") en "host:port".
// El puerto por defecto es 53. ok=false si la dirección no es una IP válida.
func NormalizeNameserver(addr string) (string, bool) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return "", false
	}

	if ip := NormalizeIP(addr); ip != "" {
		return net.JoinHostPort(ip, "53"), true
	}

	host, port, err := net.SplitHostPort(addr)
	if err != nil || !IsPort(port) {
		return "", false
	}
	ip := NormalizeIP(host)
	if ip == "" {
		return "", false
	}
	return net.JoinHostPort(ip, port), true
}
