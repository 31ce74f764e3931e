package parser

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseEnvelopeDerivativeTickerAndDisconnectYieldNoRecord(t *testing.T) {
	ticker, err := ParseEnvelope([]byte(`{"type":"derivative_ticker","exchange":"bitmex","symbol":"XBTUSD"}`), "")
	require.NoError(t, err)
	require.Nil(t, ticker)

	disconnect, err := ParseEnvelope([]byte(`{"type":"disconnect","exchange":"bitmex"}`), "")
	require.NoError(t, err)
	require.Nil(t, disconnect)
}

func TestParseEnvelopeRoutesBookChange(t *testing.T) {
	raw := loadTestJSON(t, "book_change.json")
	result, err := ParseEnvelope(raw, "")
	require.NoError(t, err)

	deltas, ok := result.(OrderBookDeltas)
	require.True(t, ok)
	require.Len(t, deltas.Deltas, 1)
}

func TestParseEnvelopeUnknownType(t *testing.T) {
	_, err := ParseEnvelope([]byte(`{"type":"unknown_thing"}`), "")
	require.Error(t, err)
}
