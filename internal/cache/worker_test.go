package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestWorker(t *testing.T, store Store, bufferInterval time.Duration) (*writeWorker, chan Command) {
	t.Helper()
	commands := make(chan Command, 64)
	w := &writeWorker{
		store:          store,
		traderKey:      "trader",
		commands:       commands,
		bufferInterval: bufferInterval,
		metrics:        newMetrics(nil),
		logger:         noopLogger{},
	}
	return w, commands
}

func TestWorkerAppliesListInsertsInEnqueueOrder(t *testing.T) {
	store, srv := newTestStore(t)
	w, commands := newTestWorker(t, store, 0)

	go w.run()

	commands <- Command{Op: OpInsert, Key: "orders:O-1", Payload: [][]byte{[]byte("e1")}}
	commands <- Command{Op: OpInsert, Key: "orders:O-1", Payload: [][]byte{[]byte("e2")}}
	commands <- Command{Op: OpInsert, Key: "index:orders_open:S-1", Payload: [][]byte{[]byte("O-1")}}
	commands <- closeCommand()

	require.Eventually(t, func() bool {
		values, err := srv.List("trader:orders:O-1")
		return err == nil && len(values) == 2
	}, time.Second, 5*time.Millisecond)

	values, err := srv.List("trader:orders:O-1")
	require.NoError(t, err)
	require.Equal(t, []string{"e1", "e2"}, values)

	members, err := srv.SMembers("trader:index:orders_open:S-1")
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"O-1"}, members)
}

func TestWorkerDropsRejectedCommandAndContinues(t *testing.T) {
	store, srv := newTestStore(t)
	w, commands := newTestWorker(t, store, 0)

	go w.run()

	commands <- Command{Op: OpUpdate, Key: "currencies:USD", Payload: [][]byte{[]byte("x")}}
	commands <- Command{Op: OpInsert, Key: "general:ok", Payload: [][]byte{[]byte("v")}}
	commands <- closeCommand()

	require.Eventually(t, func() bool {
		v, err := srv.Get("trader:general:ok")
		return err == nil && v == "v"
	}, time.Second, 5*time.Millisecond)

	_, err := srv.Get("trader:currencies:USD")
	require.Error(t, err)
}
