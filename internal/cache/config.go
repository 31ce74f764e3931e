package cache

import "time"

// DatabaseConfig holds the connection parameters for the remote store.
// Opaque beyond the fields the engine itself needs to dial a connection;
// TLS, credentials, and pool tuning live on the client passed to NewEngine.
type DatabaseConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Database int
	UseTLS   bool
}

// Encoding identifies the payload deserialization scheme a caller intends
// to use. The engine validates this value but never deserializes a
// payload itself -- see SPEC_FULL.md's Open Questions.
type Encoding string

const (
	EncodingMsgPack Encoding = "msgpack"
	EncodingJSON    Encoding = "json"
)

// Config is the per-engine configuration passed to NewEngine. It mirrors
// spec.md's "Configuration" section: everything here is supplied by the
// caller, never parsed from the environment by this package.
type Config struct {
	Database DatabaseConfig

	// UseTraderPrefix prepends "trader-" to the trader key.
	UseTraderPrefix bool

	// UseInstanceID includes the per-engine instance UUID segment in the
	// trader key.
	UseInstanceID bool

	// BufferIntervalMS is the flush cadence in milliseconds. Zero means
	// "flush on every wake" -- the worker flushes as soon as it observes a
	// non-empty buffer with no additional coalescing delay.
	BufferIntervalMS int

	// Encoding is reserved for future typed-read support (see Open Questions
	// in SPEC_FULL.md). Currently validated only.
	Encoding Encoding
}

// BufferInterval returns the configured flush cadence as a time.Duration.
func (c Config) BufferInterval() time.Duration {
	return time.Duration(c.BufferIntervalMS) * time.Millisecond
}

func (c Config) validEncoding() bool {
	switch c.Encoding {
	case "", EncodingMsgPack, EncodingJSON:
		return true
	default:
		return false
	}
}
