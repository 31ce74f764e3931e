package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

// Engine is the write-behind cache-persistence adapter: producers call
// Insert/Update/Delete, which enqueue onto an unbounded channel drained by a
// single background writeWorker; Read/Keys/FlushDB/LoadAll go straight to
// the foreground (read) connection. Grounded on the teacher pack's
// connection-owning hub that pairs a producer-facing API with one
// goroutine that owns the write side exclusively.
type Engine struct {
	traderKey string
	readStore Store

	commands *commandQueue
	closed   bool
	closeMu  sync.Mutex
	wg       sync.WaitGroup

	metrics *metrics
	logger  Logger
}

// NewEngine constructs an Engine and starts its write worker. readStore and
// writeStore may be the same client; they are kept as separate parameters
// because a deployment may prefer routing reads to a replica.
//
// If logger is nil, a no-op logger is used. If metricsRegisterer is nil, the
// engine's metrics are constructed but never registered with a Prometheus
// registry (safe, just unexported by that engine instance).
func NewEngine(traderID string, instanceID uuid.UUID, cfg Config, readStore, writeStore Store, logger Logger, metricsRegisterer prometheus.Registerer) (*Engine, error) {
	if readStore == nil || writeStore == nil {
		return nil, fmt.Errorf("cache: readStore and writeStore must both be non-nil")
	}
	if !cfg.validEncoding() {
		return nil, fmt.Errorf("cache: invalid encoding %q", cfg.Encoding)
	}
	installCryptographicProvider()
	if logger == nil {
		logger = noopLogger{}
	}

	key := traderKey(traderID, instanceID, cfg)
	m := newMetrics(metricsRegisterer)
	commands := newCommandQueue()

	e := &Engine{
		traderKey: key,
		readStore: readStore,
		commands:  commands,
		metrics:   m,
		logger:    logger,
	}

	worker := &writeWorker{
		store:          writeStore,
		traderKey:      key,
		commands:       commands.out,
		bufferInterval: cfg.BufferInterval(),
		metrics:        m,
		logger:         logger,
	}

	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		worker.run()
	}()

	return e, nil
}

// Insert enqueues an Insert command. Non-blocking: the command queue is
// unbounded. Returns ErrChannelClosed if the engine has been closed.
func (e *Engine) Insert(key string, payload [][]byte) error {
	return e.enqueue(Command{Op: OpInsert, Key: key, Payload: payload})
}

// Update enqueues an Update command.
func (e *Engine) Update(key string, payload [][]byte) error {
	return e.enqueue(Command{Op: OpUpdate, Key: key, Payload: payload})
}

// Delete enqueues a Delete command.
func (e *Engine) Delete(key string, payload [][]byte) error {
	return e.enqueue(Command{Op: OpDelete, Key: key, Payload: payload})
}

func (e *Engine) enqueue(cmd Command) error {
	e.closeMu.Lock()
	if e.closed {
		e.closeMu.Unlock()
		return ErrChannelClosed
	}
	e.commands.push(cmd)
	e.closeMu.Unlock()
	e.metrics.commandsEnqueued.Inc()
	return nil
}

// Close enqueues the close sentinel and blocks until the write worker has
// flushed everything buffered and returned. Idempotent: a second Close is a
// no-op. Read, Keys, FlushDB, and LoadAll remain usable after Close, since
// they never touch the command channel.
func (e *Engine) Close() error {
	e.closeMu.Lock()
	if e.closed {
		e.closeMu.Unlock()
		return nil
	}
	e.closed = true
	e.commands.push(closeCommand())
	e.commands.close()
	e.closeMu.Unlock()

	e.wg.Wait()
	return nil
}

// Flush blocks until a snapshot of currently-enqueued commands has drained.
// It gives callers read-your-writes: enqueue a write, call Flush, then Read
// observes it. The command queue has no synchronous "drained" signal of its
// own, so Flush enqueues a marker Insert against the health collection (a
// scalar that nothing else reads, harmless to overwrite) behind everything already
// queued, then polls Read until that marker is visible; callers that need
// strict ordering guarantees beyond best-effort should serialize writes
// through a single goroutine.
func (e *Engine) Flush(ctx context.Context) error {
	marker := uuid.NewString()
	if err := e.Insert("health:flush", [][]byte{[]byte(marker)}); err != nil {
		return err
	}
	for {
		values, err := e.Read(ctx, "health:flush")
		if err != nil {
			return err
		}
		if len(values) == 1 && string(values[0]) == marker {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(5 * time.Millisecond):
		}
	}
}
