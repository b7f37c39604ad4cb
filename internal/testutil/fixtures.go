// internal/testutil/fixtures.go
package testutil

// Fixture data para tests (valores primitivos solamente, sin dependencias de domain)

// FixtureDomains contiene dominios objetivo válidos.
var FixtureDomains = []string{
	"example.com",
	"test.example.com",
	"example.co.uk",
}

// FixtureInvalidDomains contiene dominios inválidos.
var FixtureInvalidDomains = []string{
	"",
	"not a domain",
	"192.168.1.1",
	"2001:db8::1",
	"-invalid.com",
	"invalid-.com",
	"example..com",
	"com",
}

// FixtureNameservers contiene IPs de resolvers públicos.
var FixtureNameservers = []string{
	"8.8.8.8",
	"1.1.1.1",
	"2001:4860:4860::8888",
}

// FixtureDictionary es un diccionario pequeño con comentarios, vacíos y patrones.
const FixtureDictionary = `# common labels
www
api.

mail
dev%NUMBER%
`
