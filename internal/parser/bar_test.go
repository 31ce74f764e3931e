package parser

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseBarMessage(t *testing.T) {
	var msg BarMsg
	require.NoError(t, json.Unmarshal(loadTestJSON(t, "bar.json"), &msg))

	bar, err := ParseBarMsg(msg, "")
	require.NoError(t, err)

	require.Equal(t, "XBTUSD.BITMEX-10000-MILLISECOND-LAST-EXTERNAL", bar.BarType.String())
	require.Equal(t, 7623.5, bar.Open)
	require.Equal(t, 7623.5, bar.High)
	require.Equal(t, 7623.0, bar.Low)
	require.Equal(t, 7623.5, bar.Close)
	require.Equal(t, 37034.0, bar.Volume)
	require.EqualValues(t, 1572009100000000000, bar.TsEvent)
	require.EqualValues(t, 1572009100369000000, bar.TsInit)
}

func TestParseBarSpecRejectsMalformedName(t *testing.T) {
	_, err := parseBarSpec("not_a_valid_name")
	require.Error(t, err)
}
