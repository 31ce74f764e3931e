package cache

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpString(t *testing.T) {
	require.Equal(t, "Insert", OpInsert.String())
	require.Equal(t, "Update", OpUpdate.String())
	require.Equal(t, "Delete", OpDelete.String())
	require.Equal(t, "Close", OpClose.String())
}

func TestCloseCommandCarriesNoPayload(t *testing.T) {
	cmd := closeCommand()
	require.Equal(t, OpClose, cmd.Op)
	require.Empty(t, cmd.Key)
	require.Nil(t, cmd.Payload)
}
