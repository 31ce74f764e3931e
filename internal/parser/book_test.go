package parser

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseBookChangeMessage(t *testing.T) {
	var msg BookChangeMsg
	require.NoError(t, json.Unmarshal(loadTestJSON(t, "book_change.json"), &msg))

	deltas := ParseBookChangeMsg(msg, "")

	require.Len(t, deltas.Deltas, 1)
	require.Equal(t, "XBTUSD.BITMEX", deltas.InstrumentID)
	require.Equal(t, FlagLast, deltas.Flags)
	require.Equal(t, uint64(0), deltas.Sequence)
	require.EqualValues(t, 1571830193469000000, deltas.TsEvent)
	require.EqualValues(t, 1571830193469000000, deltas.TsInit)

	d := deltas.Deltas[0]
	require.Equal(t, BookActionUpdate, d.Action)
	require.Equal(t, 7985.0, d.Order.Price)
	require.Equal(t, 283318.0, d.Order.Size)
	require.EqualValues(t, 0, d.Order.OrderID)
	require.Equal(t, FlagLast, d.Flags)
}

func TestParseBookSnapshotMessage(t *testing.T) {
	var msg BookSnapshotMsg
	require.NoError(t, json.Unmarshal(loadTestJSON(t, "book_snapshot.json"), &msg))

	deltas := ParseBookSnapshotMsg(msg, "")

	require.Len(t, deltas.Deltas, 4)
	require.Equal(t, "XBTUSD.BITMEX", deltas.InstrumentID)
	require.Equal(t, FlagLast|FlagSnapshot, deltas.Flags)
	require.EqualValues(t, 1572010786950000000, deltas.TsEvent)
	require.EqualValues(t, 1572010786961000000, deltas.TsInit)

	first := deltas.Deltas[0]
	require.Equal(t, BookActionAdd, first.Action)
	require.Equal(t, 7633.5, first.Order.Price)
	require.Equal(t, 1906067.0, first.Order.Size)
	require.Equal(t, FlagSnapshot, first.Flags)

	for i, d := range deltas.Deltas {
		require.NotZero(t, d.Flags&FlagSnapshot, "delta %d missing SNAPSHOT flag", i)
	}
	lastFlagCount := 0
	for _, d := range deltas.Deltas {
		if d.Flags&FlagLast != 0 {
			lastFlagCount++
		}
	}
	require.Equal(t, 1, lastFlagCount)
}

func TestParseBookChangeMessageNoSnapshotFlag(t *testing.T) {
	var msg BookChangeMsg
	require.NoError(t, json.Unmarshal(loadTestJSON(t, "book_change.json"), &msg))

	deltas := ParseBookChangeMsg(msg, "")
	for _, d := range deltas.Deltas {
		require.Zero(t, d.Flags&FlagSnapshot)
	}
}
