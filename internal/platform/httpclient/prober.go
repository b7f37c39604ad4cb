package httpclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"

	"subburst/internal/core/ports"
	"subburst/internal/platform/logx"
)

// titleRe toma el primer <title> del documento; (?s) permite títulos en varias líneas.
var titleRe = regexp.MustCompile(`(?is)<title[^>]*>(.+?)</title>`)

// Prober implementa ports.Prober: GET http://host/ y extracción del título.
type Prober struct {
	client *Client
}

// NewProber crea un Prober sobre un Client.
func NewProber(client *Client) *Prober {
	return &Prober{client: client}
}

// NewProberFactory retorna una ports.ProberFactory; cada llamada crea su propio Client,
// así cada worker tiene su transporte y no comparte estado con los demás.
func NewProberFactory(config Config, logger logx.Logger) ports.ProberFactory {
	return func() (ports.Prober, error) {
		return NewProber(New(config, logger)), nil
	}
}

// Probe implementa ports.Prober.
func (p *Prober) Probe(ctx context.Context, host string) (ports.ProbeResult, error) {
	resp, err := p.client.Get(ctx, "http://"+host)
	if err != nil {
		return ports.ProbeResult{}, err
	}

	body, err := p.client.ReadBody(resp)
	if err != nil {
		return ports.ProbeResult{}, err
	}

	return ports.ProbeResult{
		StatusCode: resp.StatusCode,
		Title:      ExtractTitle(decode(body, resp.Header.Get("Content-Type"))),
	}, nil
}

// decode pasa el cuerpo a UTF-8 según Content-Type o <meta charset>.
func decode(body []byte, contentType string) string {
	r, err := charset.NewReader(bytes.NewReader(body), contentType)
	if err != nil {
		return string(body)
	}
	out, err := io.ReadAll(r)
	if err != nil {
		return string(body)
	}
	return string(out)
}

// ExtractTitle retorna el texto del primer <title>, sin entidades y con los espacios colapsados.
// Retorna "" si no hay título.
func ExtractTitle(doc string) string {
	m := titleRe.FindStringSubmatch(doc)
	if m == nil {
		return ""
	}
	return strings.Join(strings.Fields(html.UnescapeString(m[1])), " ")
}

// IsSuccess reporta si el código es 2xx. El sondeo registra cualquier código; esto solo se usa en la UI.
func IsSuccess(code int) bool {
	return code >= http.StatusOK && code < http.StatusMultipleChoices
}
