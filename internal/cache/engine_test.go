package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInsertFailsAfterClose(t *testing.T) {
	e, _ := newTestEngine(t)
	require.NoError(t, e.Close())
	require.NoError(t, e.Close()) // idempotent

	err := e.Insert("general:x", [][]byte{[]byte("v")})
	require.ErrorIs(t, err, ErrChannelClosed)
}

func TestSetIndexCardinalityUnchangedOnDuplicateMember(t *testing.T) {
	e, _ := newTestEngine(t)
	ctx := context.Background()

	require.NoError(t, e.Insert("index:orders_open:S-1", [][]byte{[]byte("O-1")}))
	require.NoError(t, e.Insert("index:orders_open:S-1", [][]byte{[]byte("O-1")}))
	require.NoError(t, e.Flush(ctx))

	members, err := e.Read(ctx, "index:orders_open:S-1")
	require.NoError(t, err)
	require.Len(t, members, 1)
}

func TestFlushDBClearsStore(t *testing.T) {
	e, _ := newTestEngine(t)
	ctx := context.Background()

	require.NoError(t, e.Insert("general:x", [][]byte{[]byte("v")}))
	require.NoError(t, e.Flush(ctx))

	e.FlushDB(ctx)

	keys, err := e.Keys(ctx, "*")
	require.NoError(t, err)
	require.Empty(t, keys)
}

func TestReadAfterCloseStillWorks(t *testing.T) {
	e, _ := newTestEngine(t)
	ctx := context.Background()

	require.NoError(t, e.Insert("general:x", [][]byte{[]byte("v")}))
	require.NoError(t, e.Flush(ctx))
	require.NoError(t, e.Close())

	values, err := e.Read(ctx, "general:x")
	require.NoError(t, err)
	require.Equal(t, [][]byte{[]byte("v")}, values)
}
