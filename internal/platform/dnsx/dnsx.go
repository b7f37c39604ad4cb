// Package dnsx implementa ports.Resolver sobre miekg/dns contra nameservers recursivos explícitos.
package dnsx

import (
	"context"
	"net"
	"sync/atomic"
	"time"

	"github.com/miekg/dns"
	"golang.org/x/time/rate"

	"subburst/internal/core/ports"
	"subburst/internal/platform/errors"
	"subburst/internal/platform/logx"
	"subburst/internal/platform/resilience"
	"subburst/internal/platform/validator"
)

// DefaultNameservers se usan cuando no se configura ninguno válido.
var DefaultNameservers = []string{"8.8.8.8:53", "8.8.4.4:53"}

// Salud de nameservers: tras unhealthyAfter timeouts/errores de conexión seguidos
// un servidor se salta durante unhealthyCooldown.
const (
	unhealthyAfter    = 10
	unhealthyCooldown = 30 * time.Second
	recoverAfter      = 3
)

// Config holds the resolver configuration.
type Config struct {
	// Nameservers "ip" o "ip:port"; las entradas inválidas se descartan con un warning.
	Nameservers []string

	// Timeout por consulta. Default: 5 segundos
	Timeout time.Duration

	// Limiter compartido entre todos los workers. nil = sin límite.
	Limiter *rate.Limiter
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Nameservers: DefaultNameservers,
		Timeout:     5 * time.Second,
	}
}

// NewLimiter crea el limiter de consultas por segundo; qps <= 0 no limita.
func NewLimiter(qps float64) *rate.Limiter {
	if qps <= 0 {
		return nil
	}
	burst := int(qps)
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(qps), burst)
}

// Resolver consulta A, AAAA y CNAME por UDP, reintentando por TCP si la respuesta viene truncada.
// Los nameservers se usan en round-robin saltando los marcados como caídos.
type Resolver struct {
	udp      *dns.Client
	tcp      *dns.Client
	servers  []string
	breakers []*resilience.CircuitBreaker // uno por servidor, mismo índice
	next     atomic.Uint32
	limiter  *rate.Limiter
	timeout  time.Duration
	logger   logx.Logger
}

// New crea un Resolver. Nunca falla por nameservers inválidos: cae a DefaultNameservers.
func New(cfg Config, logger logx.Logger) *Resolver {
	servers := Nameservers(cfg.Nameservers, logger)
	return newResolver(cfg, servers, newBreakers(len(servers)), logger)
}

// NewFactory retorna una ports.ResolverFactory: un Resolver propio por worker,
// todos con el mismo limiter y el mismo estado de salud por nameserver.
func NewFactory(cfg Config, logger logx.Logger) ports.ResolverFactory {
	servers := Nameservers(cfg.Nameservers, logger)
	breakers := newBreakers(len(servers))
	return func() (ports.Resolver, error) {
		return newResolver(cfg, servers, breakers, logger), nil
	}
}

func newResolver(cfg Config, servers []string, breakers []*resilience.CircuitBreaker, logger logx.Logger) *Resolver {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}

	return &Resolver{
		udp:      &dns.Client{Net: "udp", Timeout: cfg.Timeout},
		tcp:      &dns.Client{Net: "tcp", Timeout: cfg.Timeout},
		servers:  servers,
		breakers: breakers,
		limiter:  cfg.Limiter,
		timeout:  cfg.Timeout,
		logger:   logger.With("component", "resolver"),
	}
}

func newBreakers(n int) []*resilience.CircuitBreaker {
	out := make([]*resilience.CircuitBreaker, n)
	for i := range out {
		out[i] = resilience.NewCircuitBreaker(unhealthyAfter, unhealthyCooldown, recoverAfter)
	}
	return out
}

// Nameservers normaliza la lista a host:port. Las entradas inválidas se saltan con warning;
// si no queda ninguna se usan los públicos por defecto.
func Nameservers(raw []string, logger logx.Logger) []string {
	out := make([]string, 0, len(raw))
	seen := make(map[string]bool, len(raw))
	for _, ns := range raw {
		addr, ok := validator.NormalizeNameserver(ns)
		if !ok {
			logger.Warn("skipping invalid nameserver", "nameserver", ns)
			continue
		}
		if seen[addr] {
			continue
		}
		seen[addr] = true
		out = append(out, addr)
	}

	if len(out) == 0 {
		if len(raw) > 0 {
			logger.Warn("no valid nameserver left, using defaults", "defaults", DefaultNameservers)
		}
		return append([]string(nil), DefaultNameservers...)
	}
	return out
}

// Servers retorna los nameservers efectivos.
func (r *Resolver) Servers() []string {
	return append([]string(nil), r.servers...)
}

// LookupAddrs implementa ports.Resolver.
func (r *Resolver) LookupAddrs(ctx context.Context, fqdn string) ([]string, error) {
	var (
		addrs   []string
		lastErr error
	)
	seen := make(map[string]bool)

	for _, qtype := range []uint16{dns.TypeA, dns.TypeAAAA} {
		in, err := r.exchange(ctx, fqdn, qtype)
		if err != nil {
			lastErr = err
			continue
		}
		for _, rr := range in.Answer {
			var ip net.IP
			switch v := rr.(type) {
			case *dns.A:
				ip = v.A
			case *dns.AAAA:
				ip = v.AAAA
			default:
				continue
			}
			if s := ip.String(); !seen[s] {
				seen[s] = true
				addrs = append(addrs, s)
			}
		}
	}

	if len(addrs) > 0 {
		return addrs, nil
	}
	if lastErr == nil {
		lastErr = errors.Wrapf(errors.ErrNoAnswer, "%s has no address", fqdn)
	}
	return nil, lastErr
}

// LookupCNAME implementa ports.Resolver.
func (r *Resolver) LookupCNAME(ctx context.Context, fqdn string) ([]string, error) {
	in, err := r.exchange(ctx, fqdn, dns.TypeCNAME)
	if err != nil {
		return nil, err
	}

	var targets []string
	for _, rr := range in.Answer {
		if v, ok := rr.(*dns.CNAME); ok {
			targets = append(targets, RemoveLastDot(v.Target))
		}
	}
	if len(targets) == 0 {
		return nil, errors.Wrapf(errors.ErrNoAnswer, "%s has no cname", fqdn)
	}
	return targets, nil
}

func (r *Resolver) exchange(ctx context.Context, name string, qtype uint16) (*dns.Msg, error) {
	if r.limiter != nil {
		if err := r.limiter.Wait(ctx); err != nil {
			return nil, errors.Wrap(err, "rate limit wait failed")
		}
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	idx := r.pick()
	server := r.servers[idx]
	msg := queryMessage(name, qtype)

	in, _, err := r.udp.ExchangeContext(ctx, msg, server)
	if err == nil && in.Truncated {
		r.logger.Debug("truncated response, retrying over tcp", "name", name, "server", server)
		in, _, err = r.tcp.ExchangeContext(ctx, msg, server)
	}
	if err != nil {
		err = classify(err, name, server)
		r.recordFailure(ctx, idx, err)
		return nil, err
	}
	r.breakers[idx].RecordSuccess()

	switch in.Rcode {
	case dns.RcodeSuccess:
		return in, nil
	case dns.RcodeNameError:
		return nil, errors.Wrapf(errors.ErrNoAnswer, "%s: %s", name, dns.RcodeToString[in.Rcode])
	default:
		return nil, errors.Wrapf(errors.ErrConnectionFailed, "%s via %s: %s", name, server, dns.RcodeToString[in.Rcode])
	}
}

// pick retorna el índice del próximo servidor sano; si todos están caídos
// sigue el round-robin sin filtrar.
func (r *Resolver) pick() int {
	// el módulo se toma en uint32: el contador da la vuelta sin volverse negativo
	start := r.next.Add(1) - 1
	n := uint32(len(r.servers))
	for i := uint32(0); i < n; i++ {
		idx := int((start%n + i) % n)
		if r.breakers[idx].Allow() {
			return idx
		}
	}
	return int(start % n)
}

// recordFailure cuenta el fallo contra el servidor salvo que venga de una cancelación.
func (r *Resolver) recordFailure(ctx context.Context, idx int, err error) {
	if ctx.Err() != nil && !errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return
	}
	if r.breakers[idx].RecordFailure() {
		r.logger.Warn("nameserver marked unhealthy",
			"nameserver", r.servers[idx],
			"cooldown", unhealthyCooldown,
			"last_error", err.Error(),
		)
	}
}

// Health retorna el estado de salud por nameserver.
func (r *Resolver) Health() map[string]string {
	out := make(map[string]string, len(r.servers))
	for i, s := range r.servers {
		out[s] = r.breakers[i].State().String()
	}
	return out
}

func classify(err error, name, server string) error {
	var nerr net.Error
	if (errors.As(err, &nerr) && nerr.Timeout()) || errors.Is(err, context.DeadlineExceeded) {
		return errors.Wrapf(errors.ErrTimeout, "%s via %s", name, server)
	}
	return errors.Wrapf(errors.ErrConnectionFailed, "%s via %s: %v", name, server, err)
}

func queryMessage(name string, qtype uint16) *dns.Msg {
	m := &dns.Msg{
		MsgHdr: dns.MsgHdr{
			Id:               dns.Id(),
			RecursionDesired: true,
			Opcode:           dns.OpcodeQuery,
		},
		Question: []dns.Question{{
			Name:   dns.Fqdn(name),
			Qtype:  qtype,
			Qclass: dns.ClassINET,
		}},
	}
	m.SetEdns0(dns.DefaultMsgSize, false)
	return m
}

// RemoveLastDot elimina el punto final de un FQDN.
func RemoveLastDot(name string) string {
	if sz := len(name); sz > 0 && name[sz-1] == '.' {
		return name[:sz-1]
	}
	return name
}
