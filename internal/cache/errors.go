package cache

import "errors"

// Error kinds surfaced to callers of the cache engine. Errors are compared
// with errors.Is against these sentinels; wrapping preserves the underlying
// cause (e.g. the transport error returned by the store).
var (
	// ErrInvalidKey is returned when a key is missing the required ':' delimiter.
	ErrInvalidKey = errors.New("cache: invalid key, missing ':' delimiter")

	// ErrUnsupportedOp is returned when an (op, collection[, index tail])
	// triple is not in the dispatch table.
	ErrUnsupportedOp = errors.New("cache: unsupported operation")

	// ErrEmptyPayload is returned when a payload is required but empty or absent.
	ErrEmptyPayload = errors.New("cache: empty payload")

	// ErrChannelClosed is returned by insert/update/delete once Close has
	// been called and the command channel no longer accepts commands.
	ErrChannelClosed = errors.New("cache: command channel closed")

	// ErrUnsupported is the explicit refusal returned by market-data and
	// snapshot APIs this adapter does not implement.
	ErrUnsupported = errors.New("cache: operation not supported by this adapter")
)
