// internal/core/usecases/pipeline.go
package usecases

import (
	"context"
	"sync/atomic"
	"time"

	"subburst/internal/core/candidates"
	"subburst/internal/core/domain"
	"subburst/internal/core/ports"
	"subburst/internal/platform/errors"
	"subburst/internal/platform/logx"
	"subburst/internal/platform/workerpool"
)

const (
	DefaultWorkers         = 25
	DefaultTaskQueueSize   = 10000
	DefaultResultQueueSize = 1000
)

// Pipeline conecta Generator -> Task Queue -> Workers -> Result Queue -> Sink.
//
// La terminación va en cascada por cierre de canales: el generator cierra la cola de tareas
// al terminar, los workers salen cuando la cola está cerrada y vacía, y el último worker
// en salir provoca el cierre de la cola de resultados, que a su vez termina el sink.
type Pipeline struct {
	target          *domain.Target
	strategy        candidates.Strategy
	workers         int
	taskQueueSize   int
	resultQueueSize int
	resolvers       ports.ResolverFactory
	probers         ports.ProberFactory
	writer          ports.ResultWriter
	notifier        ports.Notifier
	logger          logx.Logger

	registry *Registry
	sink     atomic.Pointer[Sink]
	stats    pipelineStats
}

// PipelineOptions configura el pipeline.
type PipelineOptions struct {
	Target   *domain.Target
	Strategy candidates.Strategy

	Workers         int
	TaskQueueSize   int
	ResultQueueSize int

	Resolvers ports.ResolverFactory
	// Probers nil desactiva el sondeo HTTP.
	Probers ports.ProberFactory

	Writer   ports.ResultWriter
	Notifier ports.Notifier
	Logger   logx.Logger
}

// Summary resume una ejecución.
type Summary struct {
	Generated     int64
	Resolved      int64
	Hits          int64
	WriteFailures int64
	Elapsed       time.Duration
}

type pipelineStats struct {
	generated atomic.Int64
	resolved  atomic.Int64
}

// NewPipeline crea un pipeline listo para Run.
func NewPipeline(opts PipelineOptions) (*Pipeline, error) {
	switch {
	case opts.Target == nil:
		return nil, domain.ErrEmptyTarget
	case opts.Strategy == nil:
		return nil, domain.ErrModeMissing
	case opts.Resolvers == nil:
		return nil, errors.Wrap(domain.ErrInvalidConfig, "resolver factory is required")
	case opts.Writer == nil:
		return nil, errors.Wrap(domain.ErrInvalidConfig, "result writer is required")
	}

	if opts.Workers <= 0 {
		opts.Workers = DefaultWorkers
	}
	if opts.TaskQueueSize <= 0 {
		opts.TaskQueueSize = DefaultTaskQueueSize
	}
	if opts.ResultQueueSize <= 0 {
		opts.ResultQueueSize = DefaultResultQueueSize
	}
	if opts.Notifier == nil {
		opts.Notifier = ports.NopNotifier{}
	}
	if opts.Logger == nil {
		opts.Logger = logx.New()
	}

	return &Pipeline{
		target:          opts.Target,
		strategy:        opts.Strategy,
		workers:         opts.Workers,
		taskQueueSize:   opts.TaskQueueSize,
		resultQueueSize: opts.ResultQueueSize,
		resolvers:       opts.Resolvers,
		probers:         opts.Probers,
		writer:          opts.Writer,
		notifier:        opts.Notifier,
		logger:          opts.Logger.With("component", "pipeline"),
		registry:        NewRegistry(opts.Notifier),
	}, nil
}

// Registry expone el estado de las etapas.
func (p *Pipeline) Registry() *Registry {
	return p.registry
}

// Stats retorna los contadores actuales; seguro durante Run.
func (p *Pipeline) Stats() Summary {
	s := Summary{
		Generated: p.stats.generated.Load(),
		Resolved:  p.stats.resolved.Load(),
	}
	if sink := p.sink.Load(); sink != nil {
		s.Hits = sink.Hits()
		s.WriteFailures = sink.Failures()
	}
	return s
}

// Run ejecuta el pipeline hasta que todas las etapas terminan.
// Retorna error solo si la generación falla (diccionario ilegible) o ctx se cancela.
func (p *Pipeline) Run(ctx context.Context) (Summary, error) {
	start := time.Now()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	tasks := make(chan string, p.taskQueueSize)
	results := make(chan domain.ResolveResult, p.resultQueueSize)

	genStatus := p.registry.Register(domain.StageGenerator, 0)
	workerStatus := make([]StageStatus, p.workers)
	for i := range workerStatus {
		workerStatus[i] = p.registry.Register(domain.StageWorker, i)
	}
	sink := NewSink(p.writer, p.registry.Register(domain.StageSink, 0), p.notifier, p.logger)
	p.sink.Store(sink)

	p.logger.Info("pipeline starting",
		"target", p.target.Root,
		"strategy", p.strategy.Describe(),
		"workers", p.workers,
	)

	pool := workerpool.NewWorkerPool[string](workerpool.WorkerPoolConfig{
		Workers: p.workers,
		Logger:  p.logger,
		Hooks: workerpool.Hooks{
			OnStart: func(id int) { workerStatus[id].MarkRunning() },
			OnStop:  func(id int) { workerStatus[id].MarkStopped() },
		},
	})

	genErr := make(chan error, 1)
	go func() {
		err := p.generate(ctx, tasks, pool.Done(), genStatus)
		if err != nil && errors.IsFatal(err) {
			// sin candidatos pendientes que valga la pena resolver
			cancel()
		}
		genErr <- err
	}()

	pool.Start(ctx, tasks, p.newWorker(results))

	go func() {
		pool.Wait()
		close(results)
	}()

	sink.Drain(results)

	err := <-genErr
	switch {
	case err == nil && pool.Stats().Started == 0:
		err = errors.Wrapf(errors.ErrNoWorkers, "%d workers failed setup", p.workers)
	case err == nil && ctx.Err() != nil:
		// generación completa pero workers cortados a mitad de la cola
		err = errors.Wrap(errors.ErrInterrupted, "resolution")
	}
	summary := p.Stats()
	summary.Elapsed = time.Since(start)

	p.logger.Info("pipeline finished",
		"generated", summary.Generated,
		"resolved", summary.Resolved,
		"hits", summary.Hits,
		"elapsed", summary.Elapsed.Round(time.Millisecond),
	)
	return summary, err
}

// generate corre la estrategia empujando a la cola con backpressure.
// workersDone se cierra si no queda ningún worker consumiendo; la generación se corta ahí.
// Al retornar marca Stopped y cierra la cola, en ese orden.
func (p *Pipeline) generate(ctx context.Context, tasks chan<- string, workersDone <-chan struct{}, status StageStatus) error {
	defer close(tasks)
	defer status.MarkStopped()
	status.MarkRunning()

	logger := p.logger.With("stage", domain.StageGenerator)

	err := p.strategy.Generate(ctx, func(label string) error {
		select {
		case tasks <- label:
			p.stats.generated.Add(1)
			return nil
		case <-ctx.Done():
			return errors.Wrapf(errors.ErrInterrupted, "candidate %q dropped", label)
		case <-workersDone:
			if ctx.Err() != nil {
				// los workers salieron por la cancelación, no por fallo propio
				return errors.Wrapf(errors.ErrInterrupted, "candidate %q dropped", label)
			}
			return errors.Wrapf(errors.ErrNoWorkers, "candidate %q dropped", label)
		}
	})

	switch {
	case err == nil:
		logger.Debug("generation complete", "generated", p.stats.generated.Load())
		return nil
	case errors.Is(err, errors.ErrInterrupted):
		logger.Warn("generation interrupted", "reason", err.Error())
		return err
	case errors.Is(err, errors.ErrNoWorkers):
		logger.Warn("generation stopped, no worker left", "generated", p.stats.generated.Load())
		return err
	case ctx.Err() != nil:
		logger.Warn("generation interrupted", "reason", ctx.Err())
		return errors.Wrap(errors.ErrInterrupted, "generation")
	default:
		logger.Err(err, "generated", p.stats.generated.Load())
		return err
	}
}

func (p *Pipeline) newWorker(results chan<- domain.ResolveResult) workerpool.HandlerFactory[string] {
	return func(id int) (workerpool.Handler[string], error) {
		resolver, err := p.resolvers()
		if err != nil {
			return nil, errors.Wrap(err, "create resolver")
		}

		var prober ports.Prober
		if p.probers != nil {
			if prober, err = p.probers(); err != nil {
				return nil, errors.Wrap(err, "create prober")
			}
		}

		w := &resolveWorker{
			id:       id,
			target:   p.target,
			resolver: resolver,
			prober:   prober,
			results:  results,
			notifier: p.notifier,
			resolved: &p.stats.resolved,
			logger:   p.logger.With("stage", domain.StageWorker, "worker", id),
		}
		return w.handle, nil
	}
}
