package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCommandQueuePreservesEnqueueOrder(t *testing.T) {
	q := newCommandQueue()

	q.push(Command{Op: OpInsert, Key: "orders:O-1", Payload: [][]byte{[]byte("e1")}})
	q.push(Command{Op: OpInsert, Key: "orders:O-1", Payload: [][]byte{[]byte("e2")}})
	q.push(Command{Op: OpInsert, Key: "orders:O-1", Payload: [][]byte{[]byte("e3")}})
	q.close()

	var got []string
	for cmd := range q.out {
		got = append(got, string(cmd.Payload[0]))
	}
	require.Equal(t, []string{"e1", "e2", "e3"}, got)
}

func TestCommandQueuePushNeverBlocks(t *testing.T) {
	q := newCommandQueue()
	defer q.close()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10_000; i++ {
			q.push(Command{Op: OpInsert, Key: "general:x", Payload: [][]byte{[]byte("v")}})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("push blocked for longer than expected with no consumer draining q.out")
	}
}
