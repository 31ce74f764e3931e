package cache

import (
	"context"
	"time"
)

// writeWorker drains the command channel, buffers commands, and flushes
// them as an atomic pipeline every bufferInterval or at shutdown. Modeled
// on the original Rust adapter's process_commands/drain_buffer pair, and
// on the teacher pack's putWorker ticker+channel select loop
// (other_examples: zerodha-fastcache stores/goredis/redis.go).
type writeWorker struct {
	store          Store
	traderKey      string
	commands       <-chan Command
	bufferInterval time.Duration
	metrics        *metrics
	logger         Logger
}

// run is the worker's main loop. It returns once the channel is closed or
// a Close command is observed, after a final flush of anything buffered.
func (w *writeWorker) run() {
	buffer := make([]Command, 0, 64)
	lastDrain := time.Now()

	for {
		if time.Since(lastDrain) >= w.bufferInterval {
			if len(buffer) > 0 {
				w.flush(buffer)
				buffer = buffer[:0]
				lastDrain = time.Now()
				continue
			}
		}

		cmd, ok := <-w.commands
		if !ok {
			break // producer half dropped: channel hung up
		}
		if cmd.Op == OpClose {
			break
		}
		buffer = append(buffer, cmd)
	}

	if len(buffer) > 0 {
		w.flush(buffer)
	}
}

// flush builds one atomic pipeline from buffer and submits it. A single
// ill-formed command is logged and skipped; the rest of the batch proceeds.
// A transport error on submit is logged; the worker never retries and
// never fails the engine.
func (w *writeWorker) flush(buffer []Command) {
	pipe := newPipeline(w.store)
	queued := 0

	for _, cmd := range buffer {
		collection, err := collectionOf(cmd.Key)
		if err != nil {
			w.logger.Error("dropping malformed command", "error", err, "key", cmd.Key, "op", cmd.Op.String())
			w.metrics.commandsDropped.Inc()
			continue
		}

		var tail string
		if collection == CollIndex {
			tail, err = indexTailOf(cmd.Key)
			if err != nil {
				w.logger.Error("dropping malformed index command", "error", err, "key", cmd.Key)
				w.metrics.commandsDropped.Inc()
				continue
			}
		}

		fullKey := w.traderKey + string(keyDelimiter) + cmd.Key

		switch cmd.Op {
		case OpInsert:
			err = dispatchInsert(pipe, collection, tail, fullKey, cmd.Payload)
		case OpUpdate:
			err = dispatchUpdate(pipe, collection, fullKey, cmd.Payload)
		case OpDelete:
			err = dispatchDelete(pipe, collection, tail, fullKey, cmd.Payload)
		default:
			continue
		}

		if err != nil {
			w.logger.Error("dropping rejected command", "error", err, "key", cmd.Key, "op", cmd.Op.String())
			w.metrics.commandsDropped.Inc()
			continue
		}
		queued++
	}

	if queued == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := execPipeline(ctx, pipe); err != nil {
		w.logger.Error("flush failed", "error", err, "commands", queued)
		w.metrics.flushErrors.Inc()
		return
	}
	w.metrics.flushesTotal.Inc()
	w.metrics.commandsFlushed.Add(float64(queued))
}
