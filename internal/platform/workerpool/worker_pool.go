// internal/platform/workerpool/worker_pool.go
package workerpool

import (
	"context"
	"sync"
	"sync/atomic"

	"subburst/internal/platform/logx"
)

// Handler procesa un item de la cola. Los errores por item los absorbe el propio handler.
type Handler[T any] func(ctx context.Context, item T)

// HandlerFactory prepara el estado propio de un worker (resolver, prober) y retorna su Handler.
// Si falla, ese worker no arranca; el resto sigue.
type HandlerFactory[T any] func(workerID int) (Handler[T], error)

// Hooks notifica el ciclo de vida de cada worker.
type Hooks struct {
	OnStart func(workerID int)
	OnStop  func(workerID int)
}

// WorkerPool consume una cola compartida con N goroutines hasta que la cola se cierra
// o el contexto se cancela.
type WorkerPool[T any] struct {
	workers int
	logger  logx.Logger
	hooks   Hooks

	wg        sync.WaitGroup
	done      chan struct{}
	started   atomic.Int32
	active    atomic.Int32
	processed atomic.Int64
}

// WorkerPoolConfig configura el worker pool.
type WorkerPoolConfig struct {
	Workers int
	Logger  logx.Logger
	Hooks   Hooks
}

// NewWorkerPool crea un nuevo worker pool.
func NewWorkerPool[T any](cfg WorkerPoolConfig) *WorkerPool[T] {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.Logger == nil {
		cfg.Logger = logx.New()
	}

	return &WorkerPool[T]{
		workers: cfg.Workers,
		logger:  cfg.Logger.With("component", "worker-pool"),
		hooks:   cfg.Hooks,
		done:    make(chan struct{}),
	}
}

// Start lanza los workers sobre queue. Retorna inmediatamente; usar Wait o Done.
func (wp *WorkerPool[T]) Start(ctx context.Context, queue <-chan T, factory HandlerFactory[T]) {
	wp.logger.Info("starting worker pool", "workers", wp.workers)

	for i := 0; i < wp.workers; i++ {
		wp.wg.Add(1)
		go wp.worker(ctx, i, queue, factory)
	}

	go func() {
		wp.wg.Wait()
		close(wp.done)
	}()
}

// worker es el goroutine que procesa items.
func (wp *WorkerPool[T]) worker(ctx context.Context, id int, queue <-chan T, factory HandlerFactory[T]) {
	defer wp.wg.Done()

	if wp.hooks.OnStart != nil {
		wp.hooks.OnStart(id)
	}
	defer func() {
		if wp.hooks.OnStop != nil {
			wp.hooks.OnStop(id)
		}
	}()

	handle, err := factory(id)
	if err != nil {
		wp.logger.Err(err, "worker_id", id, "msg", "worker setup failed")
		return
	}

	wp.started.Add(1)
	wp.active.Add(1)
	defer wp.active.Add(-1)
	wp.logger.Debug("worker started", "worker_id", id)

	for {
		select {
		case <-ctx.Done():
			wp.logger.Debug("worker stopped", "worker_id", id, "reason", ctx.Err())
			return

		case item, ok := <-queue:
			if !ok {
				wp.logger.Debug("task queue closed, worker stopping", "worker_id", id)
				return
			}
			handle(ctx, item)
			wp.processed.Add(1)
		}
	}
}

// Wait bloquea hasta que todos los workers terminan.
func (wp *WorkerPool[T]) Wait() {
	<-wp.done
}

// Done se cierra cuando el último worker termina.
func (wp *WorkerPool[T]) Done() <-chan struct{} {
	return wp.done
}

// Stats retorna estadísticas del worker pool.
func (wp *WorkerPool[T]) Stats() WorkerPoolStats {
	return WorkerPoolStats{
		Workers:   wp.workers,
		Started:   int(wp.started.Load()),
		Active:    int(wp.active.Load()),
		Processed: wp.processed.Load(),
	}
}

// WorkerPoolStats contiene estadísticas del worker pool.
type WorkerPoolStats struct {
	Workers   int
	Started   int // workers cuyo factory no falló
	Active    int
	Processed int64
}
