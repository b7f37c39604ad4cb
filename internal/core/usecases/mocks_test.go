// internal/core/usecases/mocks_test.go
package usecases

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"subburst/internal/core/candidates"
	"subburst/internal/core/domain"
	"subburst/internal/core/ports"
	perrors "subburst/internal/platform/errors"
)

// stubResolver responde desde mapas fijos. anyAddrs hace que cualquier nombre resuelva (wildcard).
type stubResolver struct {
	addrs    map[string][]string
	cnames   map[string][]string
	anyAddrs []string
	fail     map[string]error

	// gate, si no es nil, bloquea cada consulta hasta poder recibir de él
	gate <-chan struct{}

	addrCalls  atomic.Int64
	cnameCalls atomic.Int64
}

func (s *stubResolver) wait(ctx context.Context) error {
	if s.gate == nil {
		return nil
	}
	select {
	case <-s.gate:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *stubResolver) LookupAddrs(ctx context.Context, fqdn string) ([]string, error) {
	s.addrCalls.Add(1)
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	if err, ok := s.fail[fqdn]; ok {
		return nil, err
	}
	if len(s.anyAddrs) > 0 {
		return s.anyAddrs, nil
	}
	if a, ok := s.addrs[fqdn]; ok {
		return a, nil
	}
	return nil, perrors.ErrNoAnswer
}

func (s *stubResolver) LookupCNAME(ctx context.Context, fqdn string) ([]string, error) {
	s.cnameCalls.Add(1)
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	if c, ok := s.cnames[fqdn]; ok {
		return c, nil
	}
	return nil, perrors.ErrNoAnswer
}

func (s *stubResolver) factory() ports.ResolverFactory {
	return func() (ports.Resolver, error) { return s, nil }
}

// stubProber retorna un resultado fijo por host.
type stubProber struct {
	results map[string]ports.ProbeResult
	calls   atomic.Int64
}

func (p *stubProber) Probe(_ context.Context, host string) (ports.ProbeResult, error) {
	p.calls.Add(1)
	if r, ok := p.results[host]; ok {
		return r, nil
	}
	return ports.ProbeResult{}, perrors.ErrConnectionFailed
}

func (p *stubProber) factory() ports.ProberFactory {
	return func() (ports.Prober, error) { return p, nil }
}

// memoryWriter guarda los resultados en memoria.
type memoryWriter struct {
	mu      sync.Mutex
	results []domain.ResolveResult
	failOn  map[string]bool
	closed  bool
}

func (w *memoryWriter) Write(res domain.ResolveResult) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.failOn[res.Domain] {
		return errors.New("disk full")
	}
	w.results = append(w.results, res)
	return nil
}

func (w *memoryWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	return nil
}

func (w *memoryWriter) domains() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]string, 0, len(w.results))
	for _, r := range w.results {
		out = append(out, r.Domain)
	}
	return out
}

// recordingNotifier cuenta eventos por tipo.
type recordingNotifier struct {
	mu     sync.Mutex
	counts map[ports.EventType]int
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{counts: make(map[ports.EventType]int)}
}

func (n *recordingNotifier) Notify(e ports.Event) {
	n.mu.Lock()
	n.counts[e.Type]++
	n.mu.Unlock()
}

func (n *recordingNotifier) count(t ports.EventType) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.counts[t]
}

// sliceStrategy emite una lista fija de etiquetas.
type sliceStrategy struct {
	labels []string
	err    error
}

func (s *sliceStrategy) Mode() domain.GenerationMode { return domain.GenerationDictionary }
func (s *sliceStrategy) Describe() string            { return "slice" }
func (s *sliceStrategy) Generate(_ context.Context, emit candidates.Emit) error {
	for _, l := range s.labels {
		if err := emit(l); err != nil {
			return err
		}
	}
	return s.err
}
