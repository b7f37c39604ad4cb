// internal/core/usecases/sink.go
package usecases

import (
	"sync/atomic"

	"subburst/internal/core/domain"
	"subburst/internal/core/ports"
	"subburst/internal/platform/logx"
)

// Sink es el único consumidor de la cola de resultados y el único que escribe la salida.
type Sink struct {
	writer   ports.ResultWriter
	status   StageStatus
	notifier ports.Notifier
	logger   logx.Logger

	hits     atomic.Int64
	failures atomic.Int64
}

// NewSink crea el sink. notifier puede ser nil.
func NewSink(writer ports.ResultWriter, status StageStatus, notifier ports.Notifier, logger logx.Logger) *Sink {
	if notifier == nil {
		notifier = ports.NopNotifier{}
	}
	return &Sink{
		writer:   writer,
		status:   status,
		notifier: notifier,
		logger:   logger.With("stage", domain.StageSink),
	}
}

// Drain consume resultados hasta que la cola se cierra (todos los workers terminaron),
// luego cierra el writer. Una escritura fallida se loguea y el resultado se descarta.
func (s *Sink) Drain(results <-chan domain.ResolveResult) {
	s.status.MarkRunning()
	defer s.status.MarkStopped()

	for res := range results {
		if err := s.writer.Write(res); err != nil {
			s.failures.Add(1)
			s.logger.Warn("write failed, result dropped", "domain", res.Domain, "error", err.Error())
			s.notifier.Notify(ports.Event{Type: ports.EventResultDropped, Stage: domain.StageSink, Result: &res, Err: err})
			continue
		}
		s.hits.Add(1)
		s.logger.Debug("result persisted", "domain", res.Domain)
		s.notifier.Notify(ports.Event{Type: ports.EventResultFound, Stage: domain.StageSink, Result: &res})
	}

	if err := s.writer.Close(); err != nil {
		s.logger.Err(err, "msg", "closing output")
	}
}

// Hits retorna los resultados persistidos.
func (s *Sink) Hits() int64 { return s.hits.Load() }

// Failures retorna los resultados descartados por error de escritura.
func (s *Sink) Failures() int64 { return s.failures.Load() }
