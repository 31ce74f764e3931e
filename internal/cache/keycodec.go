package cache

import (
	"strings"

	"github.com/google/uuid"
)

// keyDelimiter separates key segments. A single ASCII byte, matching the
// original Redis cache adapter's REDIS_DELIMITER.
const keyDelimiter = ':'

// traderKey builds the per-engine key prefix: "[trader-]<traderID>[:<instanceID>]".
func traderKey(traderID string, instanceID uuid.UUID, cfg Config) string {
	var b strings.Builder
	if cfg.UseTraderPrefix {
		b.WriteString("trader-")
	}
	b.WriteString(traderID)
	if cfg.UseInstanceID {
		b.WriteByte(keyDelimiter)
		b.WriteString(instanceID.String())
	}
	return b.String()
}

// collectionOf returns the substring of key before the first delimiter.
// Fails with ErrInvalidKey if key contains no delimiter.
func collectionOf(key string) (string, error) {
	idx := strings.IndexByte(key, keyDelimiter)
	if idx < 0 {
		return "", ErrInvalidKey
	}
	return key[:idx], nil
}

// indexTailOf returns the substring of key after the first delimiter.
// Callers pass the index entry's key without the trader prefix
// (e.g. "index:orders_open:S-1"), so this returns "orders_open:S-1" --
// the remainder after the first delimiter, same rule as collectionOf.
func indexTailOf(key string) (string, error) {
	idx := strings.IndexByte(key, keyDelimiter)
	if idx < 0 {
		return "", ErrInvalidKey
	}
	return key[idx+1:], nil
}
