package cache

import (
	"fmt"
	"strings"
)

// indexTailName reduces a raw index tail ("orders_open:S-1") to the
// reserved index name used for dispatch-table lookups ("orders_open").
// Hash and set indices with no per-entity suffix (order_position,
// order_client) are returned unchanged since they contain no further ':'.
func indexTailName(tail string) string {
	if idx := strings.IndexByte(tail, keyDelimiter); idx >= 0 {
		return tail[:idx]
	}
	return tail
}

// dispatchInsert routes an Insert command to the matching primitive write,
// queuing it on pipe. fullKey is the trader-key-prefixed key; collection
// and tail are derived from the original (unprefixed) command key.
func dispatchInsert(pipe Pipeliner, collection, tail, fullKey string, payload [][]byte) error {
	if len(payload) == 0 {
		return fmt.Errorf("%w: insert into %q", ErrEmptyPayload, collection)
	}

	switch {
	case collection == CollIndex:
		name := indexTailName(tail)
		switch {
		case hashIndexTails[name]:
			if len(payload) != 2 {
				return fmt.Errorf("%w: hash insert into %q requires [field, value]", ErrEmptyPayload, name)
			}
			pipe.HSet(ctxBackground, fullKey, string(payload[0]), payload[1])
			return nil
		case transitionIndexTails[name], name == IndexOrderIDs, name == IndexOrders, name == IndexPositions:
			pipe.SAdd(ctxBackground, fullKey, payload[0])
			return nil
		default:
			return fmt.Errorf("%w: insert into index %q", ErrUnsupportedOp, name)
		}
	case scalarCollections[collection]:
		pipe.Set(ctxBackground, fullKey, payload[0], 0)
		return nil
	case listCollections[collection]:
		pipe.RPush(ctxBackground, fullKey, payload[0])
		return nil
	case collection == CollSnapshots:
		pipe.RPush(ctxBackground, fullKey, payload[0])
		return nil
	default:
		return fmt.Errorf("%w: insert into %q", ErrUnsupportedOp, collection)
	}
}

// dispatchUpdate routes an Update command. Only the three event-log
// collections support update, via RPUSHX (append only if the key exists).
func dispatchUpdate(pipe Pipeliner, collection, fullKey string, payload [][]byte) error {
	if len(payload) == 0 {
		return fmt.Errorf("%w: update into %q", ErrEmptyPayload, collection)
	}
	if !listCollections[collection] {
		return fmt.Errorf("%w: update into %q", ErrUnsupportedOp, collection)
	}
	pipe.RPushX(ctxBackground, fullKey, payload[0])
	return nil
}

// dispatchDelete routes a Delete command. Scalars actors/strategies delete
// the whole key; the six transition set-indices remove a single member.
func dispatchDelete(pipe Pipeliner, collection, tail, fullKey string, payload [][]byte) error {
	switch {
	case deletableScalarCollections[collection]:
		pipe.Del(ctxBackground, fullKey)
		return nil
	case collection == CollIndex:
		name := indexTailName(tail)
		if !transitionIndexTails[name] {
			return fmt.Errorf("%w: delete from index %q", ErrUnsupportedOp, name)
		}
		if len(payload) == 0 {
			return fmt.Errorf("%w: delete from %q requires the member in payload[0]", ErrEmptyPayload, name)
		}
		pipe.SRem(ctxBackground, fullKey, payload[0])
		return nil
	default:
		return fmt.Errorf("%w: delete from %q", ErrUnsupportedOp, collection)
	}
}
