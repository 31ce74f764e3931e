package cache

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) (*Engine, Store) {
	t.Helper()
	store, _ := newTestStore(t)
	e, err := NewEngine("T-1", uuid.New(), Config{}, store, store, noopLogger{}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = e.Close() })
	return e, store
}

func TestReadScalarCollection(t *testing.T) {
	e, _ := newTestEngine(t)
	ctx := context.Background()

	require.NoError(t, e.Insert("general:x", [][]byte{[]byte("v1")}))
	require.NoError(t, e.Flush(ctx))

	values, err := e.Read(ctx, "general:x")
	require.NoError(t, err)
	require.Equal(t, [][]byte{[]byte("v1")}, values)
}

func TestReadListCollection(t *testing.T) {
	e, _ := newTestEngine(t)
	ctx := context.Background()

	require.NoError(t, e.Insert("orders:O-1", [][]byte{[]byte("e1")}))
	require.NoError(t, e.Insert("orders:O-1", [][]byte{[]byte("e2")}))
	require.NoError(t, e.Flush(ctx))

	values, err := e.Read(ctx, "orders:O-1")
	require.NoError(t, err)
	require.Equal(t, [][]byte{[]byte("e1"), []byte("e2")}, values)
}

func TestReadHashIndexReturnsJSON(t *testing.T) {
	e, _ := newTestEngine(t)
	ctx := context.Background()

	require.NoError(t, e.Insert("index:order_position", [][]byte{[]byte("O-1"), []byte("P-1")}))
	require.NoError(t, e.Flush(ctx))

	values, err := e.Read(ctx, "index:order_position")
	require.NoError(t, err)
	require.Len(t, values, 1)

	var fields map[string]string
	require.NoError(t, json.Unmarshal(values[0], &fields))
	require.Equal(t, "P-1", fields["O-1"])
}

func TestReadUnsupportedCollection(t *testing.T) {
	e, _ := newTestEngine(t)
	_, err := e.Read(context.Background(), "snapshots:x")
	require.ErrorIs(t, err, ErrUnsupportedOp)
}

func TestKeysPrependsTraderKey(t *testing.T) {
	e, _ := newTestEngine(t)
	ctx := context.Background()

	require.NoError(t, e.Insert("general:x", [][]byte{[]byte("v1")}))
	require.NoError(t, e.Flush(ctx))

	keys, err := e.Keys(ctx, "general:*")
	require.NoError(t, err)
	require.Len(t, keys, 1)
}
