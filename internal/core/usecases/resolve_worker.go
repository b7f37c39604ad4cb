// internal/core/usecases/resolve_worker.go
package usecases

import (
	"context"
	"sync/atomic"

	"subburst/internal/core/domain"
	"subburst/internal/core/ports"
	"subburst/internal/platform/errors"
	"subburst/internal/platform/logx"
)

// resolveWorker resuelve un candidato por llamada. Cada worker tiene su propio resolver y prober.
type resolveWorker struct {
	id       int
	target   *domain.Target
	resolver ports.Resolver
	prober   ports.Prober // nil = sin sondeo HTTP
	results  chan<- domain.ResolveResult
	notifier ports.Notifier
	resolved *atomic.Int64
	logger   logx.Logger
}

func (w *resolveWorker) handle(ctx context.Context, label string) {
	fqdn := w.target.FQDN(label)

	// CNAME y A/AAAA son independientes: un fallo en uno no invalida el otro
	cnames, err := w.resolver.LookupCNAME(ctx, fqdn)
	w.logLookup(err, fqdn, "cname")

	addrs, err := w.resolver.LookupAddrs(ctx, fqdn)
	w.logLookup(err, fqdn, "addrs")

	w.resolved.Add(1)
	w.notifier.Notify(ports.Event{Type: ports.EventCandidateResolved, Stage: domain.StageWorker, Worker: w.id})

	res, ok := domain.NewResolveResult(fqdn, addrs, cnames)
	if !ok {
		return
	}

	if len(addrs) > 0 && w.prober != nil {
		probe, err := w.prober.Probe(ctx, fqdn)
		if err != nil {
			w.logger.Debug("probe failed", "fqdn", fqdn, "error", err.Error())
		} else {
			res = res.WithProbe(probe.StatusCode, probe.Title)
		}
	}

	select {
	case w.results <- res:
	case <-ctx.Done():
		w.logger.Warn("result dropped", "fqdn", fqdn, "reason", ctx.Err())
	}
}

func (w *resolveWorker) logLookup(err error, fqdn, kind string) {
	if err == nil || errors.IsNoAnswer(err) {
		return
	}
	w.logger.Debug("lookup failed", "fqdn", fqdn, "type", kind, "error", err.Error())
}
