package cache

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestCollectionOfReturnsSubstringBeforeFirstDelimiter(t *testing.T) {
	collection, err := collectionOf("orders:O-1")
	require.NoError(t, err)
	require.Equal(t, "orders", collection)

	collection, err = collectionOf("index:orders_open:S-1")
	require.NoError(t, err)
	require.Equal(t, "index", collection)
}

func TestCollectionOfRejectsKeyWithoutDelimiter(t *testing.T) {
	_, err := collectionOf("orders")
	require.ErrorIs(t, err, ErrInvalidKey)
}

func TestIndexTailOfRejectsKeyWithoutDelimiter(t *testing.T) {
	_, err := indexTailOf("index")
	require.ErrorIs(t, err, ErrInvalidKey)
}

func TestIndexTailOfReturnsFullRemainder(t *testing.T) {
	tail, err := indexTailOf("index:orders_open:S-1")
	require.NoError(t, err)
	require.Equal(t, "orders_open:S-1", tail)
}

func TestIndexTailNameStripsPerEntitySuffix(t *testing.T) {
	require.Equal(t, "orders_open", indexTailName("orders_open:S-1"))
	require.Equal(t, "order_position", indexTailName("order_position"))
}

func TestTraderKeyRespectsPrefixAndInstanceFlags(t *testing.T) {
	id := uuid.New()

	key := traderKey("T-1", id, Config{UseTraderPrefix: true, UseInstanceID: true})
	require.True(t, len(key) > 0 && key[:7] == "trader-")
	require.Contains(t, key, id.String())

	key = traderKey("T-1", id, Config{})
	require.Equal(t, "T-1", key)
}
