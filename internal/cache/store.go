package cache

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// ctxBackground is used for pipeline command construction, where queuing a
// command onto a Pipeliner does not itself perform I/O -- only Exec does,
// and Exec is always called with the caller-supplied context.
var ctxBackground = context.Background()

// Store is the Redis-compatible client this engine depends on. It embeds
// the whole redis.UniversalClient interface, so it is satisfied directly by
// *redis.Client / *redis.ClusterClient, and a test double must implement
// that full interface.
//
// Modeled on the teacher pack's goredis.Store (other_examples: zerodha's
// stores/goredis/redis.go), which wraps redis.UniversalClient the same way.
type Store interface {
	redis.UniversalClient
}

// Pipeliner is the atomic-batch primitive a flush submits to. Matches
// redis.Pipeliner's Exec-on-submit shape: commands queued against it are
// not sent until Exec is called, and Exec sends them as a single MULTI/EXEC
// transaction (redis.Pipeliner backed by TxPipeline).
type Pipeliner = redis.Pipeliner

// newPipeline opens an atomic (MULTI/EXEC) pipeline on the store, mirroring
// the original Rust adapter's `redis::pipe().atomic()`.
func newPipeline(store Store) Pipeliner {
	return store.TxPipeline()
}

// execPipeline submits the accumulated pipeline. A transport failure is
// returned to the caller, who is responsible for logging and never retrying
// per spec.md §4.3.
func execPipeline(ctx context.Context, p Pipeliner) error {
	_, err := p.Exec(ctx)
	return err
}
